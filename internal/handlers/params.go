package handlers

import "net/http"

// getParam returns a path or query parameter value regardless of whether
// the router stores it with a leading colon or not. It also supports the
// standard net/http PathValue API available in recent Go versions.
func getParam(r *http.Request, name string) string {
	if r == nil {
		return ""
	}

	if val := r.URL.Query().Get(":" + name); val != "" {
		return val
	}

	if val := r.URL.Query().Get(name); val != "" {
		return val
	}

	return r.PathValue(name)
}

// callerID extracts the authenticated user id stored by the JWT middleware.
func callerID(r *http.Request) int {
	id, _ := r.Context().Value("user_id").(int)
	return id
}

// callerRole extracts the authenticated role stored by the JWT middleware.
func callerRole(r *http.Request) int {
	role, _ := r.Context().Value("role").(int)
	return role
}
