package api

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

//go:embed web
var webFS embed.FS

// LoadTemplates parses the embedded page templates for the gin engine.
func LoadTemplates() *template.Template {
	return template.Must(template.ParseFS(webFS, "web/*.html"))
}

// ServeStyle serves the embedded stylesheet.
func (h *HTTPHandler) ServeStyle(c *gin.Context) {
	c.FileFromFS("web/static/style.css", http.FS(webFS))
}

// ServeTaskScript serves the embedded task page script.
func (h *HTTPHandler) ServeTaskScript(c *gin.Context) {
	c.FileFromFS("web/static/task-ajax.js", http.FS(webFS))
}

// registerErrorMessages maps opaque redirect codes to the text shown on the
// registration page.
var registerErrorMessages = map[string]string{
	RegisterErrUsernameTaken:   "That username is already taken.",
	RegisterErrInvalidUsername: "Username must be 3-20 characters.",
	RegisterErrInvalidPassword: "Password must not be empty.",
	RegisterErrUnavailable:     "Registration is temporarily unavailable.",
	RegisterErrFailed:          "Registration failed. Please try again.",
}

// ShowHome redirects the root path to the login page.
func (h *HTTPHandler) ShowHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/login")
}

// ShowLogin renders the login page.
func (h *HTTPHandler) ShowLogin(c *gin.Context) {
	query := c.Request.URL.Query()
	c.HTML(http.StatusOK, "login.html", gin.H{
		"Registered": query.Has("registered"),
		"LoggedOut":  query.Has("logout"),
		"Error":      query.Has("error"),
	})
}

// ShowRegister renders the registration page.
func (h *HTTPHandler) ShowRegister(c *gin.Context) {
	message := ""
	if code := c.Query("error"); code != "" {
		message = registerErrorMessages[code]
		if message == "" {
			message = registerErrorMessages[RegisterErrFailed]
		}
	}
	c.HTML(http.StatusOK, "register.html", gin.H{
		"Error": message,
	})
}

// ShowTasks renders the task list page.
func (h *HTTPHandler) ShowTasks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskService.GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load tasks for view")
		c.String(serviceErrorStatus(err), "Error fetching tasks")
		return
	}
	c.HTML(http.StatusOK, "tasks.html", gin.H{
		"Tasks": tasks,
	})
}

// ShowAdmin renders the admin landing page.
func (h *HTTPHandler) ShowAdmin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin.html", gin.H{})
}

// ShowAdminTasks renders the admin task management page.
func (h *HTTPHandler) ShowAdminTasks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	tasks, err := h.taskService.GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load tasks for admin view")
		c.String(serviceErrorStatus(err), "Error fetching tasks")
		return
	}
	c.HTML(http.StatusOK, "admin_tasks.html", gin.H{
		"Tasks": tasks,
	})
}

// ShowAdminUsers renders the admin user management page.
func (h *HTTPHandler) ShowAdminUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userService.GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to load users for admin view")
		c.String(serviceErrorStatus(err), "Error fetching users")
		return
	}
	c.HTML(http.StatusOK, "admin_users.html", gin.H{
		"Users": users,
	})
}
