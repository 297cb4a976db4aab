package api

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes attaches the auth middleware chain, the rendered pages and
// the API endpoints to the engine. Access control is enforced by the policy
// middleware, not by per-route guards, so the route table stays flat.
func (h *HTTPHandler) RegisterRoutes(r *gin.Engine) {
	r.Use(h.Authenticate())
	r.Use(h.Authorize())

	r.SetHTMLTemplate(LoadTemplates())

	// Pages
	r.GET("/", h.ShowHome)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/register", h.ShowRegister)
	r.POST("/register", h.RegisterUser)
	r.GET("/tasks", h.ShowTasks)
	r.GET("/admin", h.ShowAdmin)
	r.GET("/admin/tasks", h.ShowAdminTasks)
	r.GET("/admin/users", h.ShowAdminUsers)

	// Static assets
	r.GET("/css/style.css", h.ServeStyle)
	r.GET("/js/task-ajax.js", h.ServeTaskScript)

	// Task API
	apiGroup := r.Group("/api")
	apiGroup.GET("/tasks", h.GetAllTasks)
	apiGroup.POST("/tasks", h.AddTask)
	apiGroup.PUT("/tasks/:id", h.UpdateTask)
	apiGroup.DELETE("/tasks/:id", h.DeleteTask)
	apiGroup.GET("/tasks/filter", h.FilterTasks)
	apiGroup.GET("/check-role", h.CheckRole)

	// User API
	apiGroup.GET("/users", h.ListUsers)
	apiGroup.DELETE("/users/:id", h.DeleteUser)
}
