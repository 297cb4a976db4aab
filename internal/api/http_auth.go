package api

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/entity"
	"taskboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
)

// Login verifies form credentials against the user directory and starts a
// cookie session. Admins land on the admin page, everyone else on the task
// list.
func (h *HTTPHandler) Login(c *gin.Context) {
	var req entity.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	username := strings.TrimSpace(req.Username)
	password := req.Password
	if username == "" || password == "" {
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	principal, err := h.directory.Lookup(ctx, username)
	if err != nil {
		logrus.WithError(err).WithField("username", username).Warn("login attempt failed")
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	if err := auth.VerifyPassword(principal.PasswordHash, password); err != nil {
		logrus.WithField("username", username).Warn("password verification failed")
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	token, expiresAt, err := h.authManager.GenerateToken(principal)
	if err != nil {
		logrus.WithError(err).Error("failed to generate token")
		c.Redirect(http.StatusFound, "/login?error")
		return
	}

	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetCookie(tokenCookieName, token, maxAge, "/", "", false, true)

	if principal.Role == entity.RoleAdmin {
		c.Redirect(http.StatusFound, "/admin")
		return
	}
	c.Redirect(http.StatusFound, "/tasks")
}

// Logout clears the session cookie.
func (h *HTTPHandler) Logout(c *gin.Context) {
	c.SetCookie(tokenCookieName, "", -1, "/", "", false, true)
	c.Redirect(http.StatusFound, "/login?logout")
}

// RegisterUser handles public registration. The role is never taken from the
// caller; every account created here is a VISITOR. Failures redirect back with
// an opaque error code so no raw message ends up in the URL.
func (h *HTTPHandler) RegisterUser(c *gin.Context) {
	var req entity.RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		c.Redirect(http.StatusFound, "/register?error="+bindErrorCode(err))
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	if _, err := h.userService.Register(ctx, req.Username, req.Password, entity.RoleVisitor); err != nil {
		logrus.WithError(err).WithField("username", req.Username).Warn("registration failed")
		c.Redirect(http.StatusFound, "/register?error="+registerErrorCode(err))
		return
	}

	c.Redirect(http.StatusFound, "/login?registered")
}

// CheckRole returns the current principal's bare role name as plain text.
func (h *HTTPHandler) CheckRole(c *gin.Context) {
	principal := CurrentPrincipal(c)
	if principal == nil {
		Unauthorized(c, "authentication required")
		return
	}
	c.String(http.StatusOK, entity.StripRolePrefix(principal.Role))
}

func bindErrorCode(err error) string {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		switch fieldErrs[0].Field() {
		case "Username":
			return RegisterErrInvalidUsername
		case "Password":
			return RegisterErrInvalidPassword
		}
	}
	return RegisterErrFailed
}

func registerErrorCode(err error) string {
	switch {
	case errors.Is(err, service.ErrConflict):
		return RegisterErrUsernameTaken
	case errors.Is(err, service.ErrPasswordValidation):
		return RegisterErrInvalidPassword
	case errors.Is(err, service.ErrValidation):
		return RegisterErrInvalidUsername
	case errors.Is(err, service.ErrUnavailable):
		return RegisterErrUnavailable
	default:
		return RegisterErrFailed
	}
}
