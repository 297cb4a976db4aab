package api

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// ListUsers returns all stored users as a JSON array. Password hashes are
// excluded by the entity's serialisation.
func (h *HTTPHandler) ListUsers(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	users, err := h.userService.GetAll(ctx)
	if err != nil {
		logrus.WithError(err).Error("failed to list users")
		c.String(serviceErrorStatus(err), "Error fetching users: %v", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

// DeleteUser removes a stored user by id.
func (h *HTTPHandler) DeleteUser(c *gin.Context) {
	idValue := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseUint(idValue, 10, 64)
	if err != nil || id == 0 {
		c.String(http.StatusBadRequest, "Error deleting user: invalid id")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if err := h.userService.Delete(ctx, uint(id)); err != nil {
		c.String(serviceErrorStatus(err), "Error deleting user: %v", err)
		return
	}
	c.String(http.StatusOK, "User deleted successfully")
}
