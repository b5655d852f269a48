package http

import (
	"encoding/json"
	"net/http"

	"github.com/wagetrack/labour-backend-go/internal/domain/auth"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/response"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type authHandlerImpl struct {
	authService auth.Service
}

func NewAuthHandler(authService auth.Service) AuthHandler {
	return &authHandlerImpl{authService: authService}
}

// Login implements AuthHandler.
func (h *authHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Login successful", result)
}

// Me implements AuthHandler. Echoes the session claims so clients can restore
// state after a reload without decoding the token themselves.
func (h *authHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	claims, err := claimsFromRequest(r)
	if err != nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	response.Success(w, map[string]interface{}{
		"id":          claims["user_id"],
		"name":        claims["name"],
		"role":        claims["role"],
		"designation": claims["designation"],
	})
}
