package api

import (
	"testing"

	"taskboard/internal/entity"
)

var allRoles = []string{
	entity.RoleAdmin,
	entity.RoleDirector,
	entity.RoleEconomist,
	entity.RoleAccountant,
	entity.RoleVisitor,
}

func decisionFor(allowed map[string]bool, role string) Decision {
	if allowed[role] {
		return DecisionAllow
	}
	return DecisionForbid
}

func TestPolicyMatrix(t *testing.T) {
	policy := DefaultPolicy()

	tests := []struct {
		method  string
		path    string
		allowed map[string]bool
	}{
		{"GET", "/admin", map[string]bool{entity.RoleAdmin: true}},
		{"GET", "/admin/tasks", map[string]bool{entity.RoleAdmin: true}},
		{"GET", "/admin/users", map[string]bool{entity.RoleAdmin: true}},
		{"GET", "/tasks", map[string]bool{
			entity.RoleDirector: true, entity.RoleEconomist: true,
			entity.RoleAccountant: true, entity.RoleVisitor: true, entity.RoleAdmin: true,
		}},
		{"GET", "/api/tasks", map[string]bool{
			entity.RoleDirector: true, entity.RoleEconomist: true,
			entity.RoleAccountant: true, entity.RoleVisitor: true, entity.RoleAdmin: true,
		}},
		{"POST", "/api/tasks", map[string]bool{
			entity.RoleDirector: true, entity.RoleAdmin: true,
		}},
		{"PUT", "/api/tasks/5", map[string]bool{
			entity.RoleDirector: true, entity.RoleAdmin: true,
		}},
		{"DELETE", "/api/tasks/5", map[string]bool{
			entity.RoleDirector: true, entity.RoleEconomist: true, entity.RoleAdmin: true,
		}},
		{"GET", "/api/tasks/filter", map[string]bool{
			entity.RoleDirector: true, entity.RoleEconomist: true,
			entity.RoleAccountant: true, entity.RoleAdmin: true,
		}},
		{"GET", "/api/users", map[string]bool{entity.RoleAdmin: true}},
		{"DELETE", "/api/users/3", map[string]bool{entity.RoleAdmin: true}},
	}

	for _, tt := range tests {
		for _, role := range allRoles {
			got := policy.Evaluate(tt.method, tt.path, role, true)
			want := decisionFor(tt.allowed, role)
			if got != want {
				t.Errorf("%s %s as %s: got %v, want %v", tt.method, tt.path, role, got, want)
			}
		}
	}
}

func TestPolicyPublicPaths(t *testing.T) {
	policy := DefaultPolicy()

	for _, path := range []string{"/", "/login", "/register", "/logout", "/css/style.css", "/js/task-ajax.js"} {
		if got := policy.Evaluate("GET", path, "", false); got != DecisionAllow {
			t.Errorf("expected %s to be public, got %v", path, got)
		}
	}
}

func TestPolicyUnauthenticatedProtectedPaths(t *testing.T) {
	policy := DefaultPolicy()

	for _, path := range []string{"/tasks", "/admin", "/api/tasks", "/api/check-role", "/some/other/page"} {
		if got := policy.Evaluate("GET", path, "", false); got != DecisionAuthenticate {
			t.Errorf("expected authentication signal for %s, got %v", path, got)
		}
	}
}

func TestPolicyRejectsUnknownRoles(t *testing.T) {
	policy := DefaultPolicy()

	for _, role := range []string{"OVERLORD", "ROLE_ADMIN", "admin", ""} {
		for _, path := range []string{"/tasks", "/api/tasks", "/api/check-role"} {
			if got := policy.Evaluate("GET", path, role, true); got != DecisionForbid {
				t.Errorf("expected %q on %s to be forbidden, got %v", role, path, got)
			}
		}
	}
}

func TestPolicyAnyAuthenticatedFallback(t *testing.T) {
	policy := DefaultPolicy()

	// Paths no explicit rule names require only an authenticated principal.
	for _, role := range allRoles {
		if got := policy.Evaluate("GET", "/api/check-role", role, true); got != DecisionAllow {
			t.Errorf("expected check-role to allow %s, got %v", role, got)
		}
	}
}

func TestMatchPath(t *testing.T) {
	tests := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"/login", "/login", true},
		{"/login", "/login2", false},
		{"/admin/**", "/admin", true},
		{"/admin/**", "/admin/users", true},
		{"/admin/**", "/administrator", false},
		{"/api/tasks/*", "/api/tasks/9", true},
		{"/api/tasks/*", "/api/tasks", false},
		{"/api/tasks/*", "/api/tasks/9/extra", false},
		{"/**", "/anything/at/all", true},
	}

	for _, tt := range tests {
		if got := matchPath(tt.pattern, tt.path); got != tt.want {
			t.Errorf("matchPath(%q, %q) = %v, want %v", tt.pattern, tt.path, got, tt.want)
		}
	}
}
