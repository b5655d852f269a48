package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
)

func claimsFromRequest(r *http.Request) (map[string]interface{}, error) {
	_, claims, err := jwtauth.FromContext(r.Context())
	return claims, err
}

func userIDFromRequest(r *http.Request) string {
	claims, err := claimsFromRequest(r)
	if err != nil {
		return ""
	}
	id, _ := claims["user_id"].(string)
	return id
}

// optionalQuery returns a query parameter as a pointer, nil when absent.
func optionalQuery(r *http.Request, key string) *string {
	v := r.URL.Query().Get(key)
	if v == "" {
		return nil
	}
	return &v
}
