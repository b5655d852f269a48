package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagetrack/labour-backend-go/internal/domain/user"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/response"
)

type UserHandler interface {
	CreateLabour(w http.ResponseWriter, r *http.Request)
	ListLabours(w http.ResponseWriter, r *http.Request)
	GetLabour(w http.ResponseWriter, r *http.Request)
	UpdateLabour(w http.ResponseWriter, r *http.Request)
	DeleteLabour(w http.ResponseWriter, r *http.Request)
	ResetPIN(w http.ResponseWriter, r *http.Request)

	CreateManager(w http.ResponseWriter, r *http.Request)
	ListManagers(w http.ResponseWriter, r *http.Request)
	UpdateManager(w http.ResponseWriter, r *http.Request)
	DeleteManager(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) UserHandler {
	return &userHandlerImpl{userService: userService}
}

// CreateLabour implements UserHandler.
func (h *userHandlerImpl) CreateLabour(w http.ResponseWriter, r *http.Request) {
	var req user.CreateLabourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.CreateLabour(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Labour created", result)
}

// ListLabours implements UserHandler.
func (h *userHandlerImpl) ListLabours(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListLabours(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetLabour implements UserHandler.
func (h *userHandlerImpl) GetLabour(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.GetLabour(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateLabour implements UserHandler.
func (h *userHandlerImpl) UpdateLabour(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateLabourRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.UpdateLabour(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labour updated", result)
}

// DeleteLabour implements UserHandler.
func (h *userHandlerImpl) DeleteLabour(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteLabour(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labour deleted", nil)
}

// ResetPIN implements UserHandler. The new PIN appears in this response and
// nowhere else.
func (h *userHandlerImpl) ResetPIN(w http.ResponseWriter, r *http.Request) {
	pin, err := h.userService.ResetPIN(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "PIN reset", map[string]string{"pin": pin})
}

// CreateManager implements UserHandler.
func (h *userHandlerImpl) CreateManager(w http.ResponseWriter, r *http.Request) {
	var req user.CreateManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.CreateManager(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Manager created", result)
}

// ListManagers implements UserHandler.
func (h *userHandlerImpl) ListManagers(w http.ResponseWriter, r *http.Request) {
	result, err := h.userService.ListManagers(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateManager implements UserHandler.
func (h *userHandlerImpl) UpdateManager(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateManagerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.userService.UpdateManager(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager updated", result)
}

// DeleteManager implements UserHandler.
func (h *userHandlerImpl) DeleteManager(w http.ResponseWriter, r *http.Request) {
	if err := h.userService.DeleteManager(r.Context(), chi.URLParam(r, "id"), userIDFromRequest(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Manager deleted", nil)
}
