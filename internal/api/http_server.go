package api

import (
	"time"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/entity"
	"taskboard/internal/model"
	"taskboard/internal/service"
)

// HTTPHandler holds the wired-up request handlers.
type HTTPHandler struct {
	cfg         config.Config
	authManager *auth.Manager
	directory   *auth.Directory
	policy      *Policy

	taskService *service.TaskService
	userService *service.UserService
}

// NewHTTPHandler creates the handler with the user directory layered over the
// built-in accounts and the credential store, in that order.
func NewHTTPHandler(cfg config.Config, repo model.Repository) (*HTTPHandler, error) {
	expiry := time.Duration(cfg.JWTExpirationMinutes) * time.Minute
	authManager, err := auth.NewManager(cfg.JWTSecret, cfg.JWTIssuer, expiry)
	if err != nil {
		return nil, err
	}

	memory, err := auth.NewMemoryProvider(builtinAccounts(cfg))
	if err != nil {
		return nil, err
	}
	directory := auth.NewDirectory(memory, auth.NewStoreProvider(repo))

	return &HTTPHandler{
		cfg:         cfg,
		authManager: authManager,
		directory:   directory,
		policy:      DefaultPolicy(),
		taskService: service.NewTaskService(repo),
		userService: service.NewUserService(repo),
	}, nil
}

// builtinAccounts returns the fixed principal set. These accounts exist only
// in process memory and stay reachable even when the store is empty.
func builtinAccounts(cfg config.Config) []auth.BuiltinAccount {
	return []auth.BuiltinAccount{
		{Username: "admin", Password: cfg.BuiltinAdminPassword, Role: entity.RoleAdmin},
		{Username: "director", Password: cfg.BuiltinDirectorPassword, Role: entity.RoleDirector},
		{Username: "economist", Password: cfg.BuiltinEconomistPassword, Role: entity.RoleEconomist},
		{Username: "accountant", Password: cfg.BuiltinAccountantPassword, Role: entity.RoleAccountant},
	}
}
