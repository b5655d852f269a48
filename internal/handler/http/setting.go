package http

import (
	"encoding/json"
	"net/http"

	"github.com/wagetrack/labour-backend-go/internal/domain/setting"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/response"
)

type SettingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
}

type settingHandlerImpl struct {
	settingService setting.Service
}

func NewSettingHandler(settingService setting.Service) SettingHandler {
	return &settingHandlerImpl{settingService: settingService}
}

// List implements SettingHandler.
func (h *settingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	result, err := h.settingService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements SettingHandler.
func (h *settingHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req setting.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.settingService.Update(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Settings updated", nil)
}
