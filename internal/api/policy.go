package api

import (
	"strings"

	"taskboard/internal/entity"
)

// Decision is the outcome of evaluating the authorization policy.
type Decision int

const (
	// DecisionAllow lets the request through to its handler.
	DecisionAllow Decision = iota
	// DecisionAuthenticate rejects the request for lack of a principal.
	DecisionAuthenticate
	// DecisionForbid rejects an authenticated principal with the wrong role.
	DecisionForbid
)

// rule is one entry of the static authorization table. method "*" matches any
// verb. Exactly one of public/anyAuth/roles applies.
type rule struct {
	method  string
	pattern string
	public  bool
	anyAuth bool
	roles   map[string]struct{}
}

// Policy is a static, ordered rule table evaluated top to bottom; the first
// matching rule wins. Evaluation is pure: it never touches the data stores.
type Policy struct {
	rules []rule
}

func publicRule(method, pattern string) rule {
	return rule{method: method, pattern: pattern, public: true}
}

func roleRule(method, pattern string, roles ...string) rule {
	set := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return rule{method: method, pattern: pattern, roles: set}
}

func authenticatedRule() rule {
	return rule{method: "*", pattern: "/**", anyAuth: true}
}

// DefaultPolicy returns the access table for the application.
func DefaultPolicy() *Policy {
	return &Policy{rules: []rule{
		publicRule("*", "/"),
		publicRule("*", "/login"),
		publicRule("*", "/logout"),
		publicRule("*", "/register"),
		publicRule("*", "/css/**"),
		publicRule("*", "/js/**"),
		roleRule("*", "/admin/**", entity.RoleAdmin),
		roleRule("GET", "/tasks",
			entity.RoleDirector, entity.RoleEconomist, entity.RoleAccountant, entity.RoleVisitor, entity.RoleAdmin),
		roleRule("GET", "/api/tasks",
			entity.RoleDirector, entity.RoleEconomist, entity.RoleAccountant, entity.RoleVisitor, entity.RoleAdmin),
		roleRule("POST", "/api/tasks", entity.RoleDirector, entity.RoleAdmin),
		roleRule("PUT", "/api/tasks/*", entity.RoleDirector, entity.RoleAdmin),
		roleRule("DELETE", "/api/tasks/*", entity.RoleDirector, entity.RoleEconomist, entity.RoleAdmin),
		roleRule("GET", "/api/tasks/filter",
			entity.RoleDirector, entity.RoleEconomist, entity.RoleAccountant, entity.RoleAdmin),
		roleRule("GET", "/api/users", entity.RoleAdmin),
		roleRule("GET", "/api/users/*", entity.RoleAdmin),
		roleRule("DELETE", "/api/users/*", entity.RoleAdmin),
		authenticatedRule(),
	}}
}

// Evaluate decides access for (method, path) given the request's role.
// authenticated reports whether a principal was resolved; role is ignored when
// it is false. Roles outside the enumeration are always rejected.
func (p *Policy) Evaluate(method, path, role string, authenticated bool) Decision {
	if p == nil {
		return DecisionForbid
	}
	for _, r := range p.rules {
		if !r.matches(method, path) {
			continue
		}
		if r.public {
			return DecisionAllow
		}
		if !authenticated {
			return DecisionAuthenticate
		}
		if !entity.IsValidRole(role) {
			return DecisionForbid
		}
		if r.anyAuth {
			return DecisionAllow
		}
		if _, ok := r.roles[role]; ok {
			return DecisionAllow
		}
		return DecisionForbid
	}
	// Unreachable with the trailing catch-all, but fail closed regardless.
	if !authenticated {
		return DecisionAuthenticate
	}
	return DecisionForbid
}

func (r rule) matches(method, path string) bool {
	if r.method != "*" && r.method != method {
		return false
	}
	return matchPath(r.pattern, path)
}

// matchPath supports exact patterns, a trailing "/**" prefix match, and "*"
// for a single path segment.
func matchPath(pattern, path string) bool {
	if base, ok := strings.CutSuffix(pattern, "/**"); ok {
		if base == "" {
			return true
		}
		return path == base || strings.HasPrefix(path, base+"/")
	}
	if !strings.Contains(pattern, "*") {
		return pattern == path
	}
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(path, "/"), "/")
	if len(patternSegs) != len(pathSegs) {
		return false
	}
	for i, seg := range patternSegs {
		if seg == "*" {
			if pathSegs[i] == "" {
				return false
			}
			continue
		}
		if seg != pathSegs[i] {
			return false
		}
	}
	return true
}
