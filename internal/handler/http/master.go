package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagetrack/labour-backend-go/internal/domain/incentive"
	"github.com/wagetrack/labour-backend-go/internal/domain/master"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/client"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/holiday"
	"github.com/wagetrack/labour-backend-go/internal/domain/master/site"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/response"
)

type MasterHandler interface {
	CreateClient(w http.ResponseWriter, r *http.Request)
	ListClients(w http.ResponseWriter, r *http.Request)
	UpdateClient(w http.ResponseWriter, r *http.Request)
	DeleteClient(w http.ResponseWriter, r *http.Request)

	CreateSite(w http.ResponseWriter, r *http.Request)
	ListSites(w http.ResponseWriter, r *http.Request)
	UpdateSite(w http.ResponseWriter, r *http.Request)
	DeleteSite(w http.ResponseWriter, r *http.Request)

	CreateHoliday(w http.ResponseWriter, r *http.Request)
	ListHolidays(w http.ResponseWriter, r *http.Request)
	DeleteHoliday(w http.ResponseWriter, r *http.Request)

	CreateIncentiveRule(w http.ResponseWriter, r *http.Request)
	ListIncentiveRules(w http.ResponseWriter, r *http.Request)
	UpdateIncentiveRule(w http.ResponseWriter, r *http.Request)
	DeleteIncentiveRule(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.Service
}

func NewMasterHandler(masterService master.Service) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

// CreateClient implements MasterHandler.
func (h *masterHandlerImpl) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req client.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateClient(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Client created", result)
}

// ListClients implements MasterHandler.
func (h *masterHandlerImpl) ListClients(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListClients(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateClient implements MasterHandler.
func (h *masterHandlerImpl) UpdateClient(w http.ResponseWriter, r *http.Request) {
	var req client.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateClient(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client updated", result)
}

// DeleteClient implements MasterHandler.
func (h *masterHandlerImpl) DeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteClient(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Client deleted", nil)
}

// CreateSite implements MasterHandler.
func (h *masterHandlerImpl) CreateSite(w http.ResponseWriter, r *http.Request) {
	var req site.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateSite(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Site created", result)
}

// ListSites implements MasterHandler. Accepts an optional client_id filter.
func (h *masterHandlerImpl) ListSites(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListSites(r.Context(), optionalQuery(r, "client_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateSite implements MasterHandler.
func (h *masterHandlerImpl) UpdateSite(w http.ResponseWriter, r *http.Request) {
	var req site.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateSite(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site updated", result)
}

// DeleteSite implements MasterHandler.
func (h *masterHandlerImpl) DeleteSite(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteSite(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Site deleted", nil)
}

// CreateHoliday implements MasterHandler.
func (h *masterHandlerImpl) CreateHoliday(w http.ResponseWriter, r *http.Request) {
	var req holiday.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateHoliday(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Holiday created", result)
}

// ListHolidays implements MasterHandler.
func (h *masterHandlerImpl) ListHolidays(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListHolidays(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteHoliday implements MasterHandler.
func (h *masterHandlerImpl) DeleteHoliday(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteHoliday(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Holiday deleted", nil)
}

// CreateIncentiveRule implements MasterHandler.
func (h *masterHandlerImpl) CreateIncentiveRule(w http.ResponseWriter, r *http.Request) {
	var req incentive.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.CreateIncentiveRule(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Incentive rule created", result)
}

// ListIncentiveRules implements MasterHandler.
func (h *masterHandlerImpl) ListIncentiveRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.masterService.ListIncentiveRules(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateIncentiveRule implements MasterHandler.
func (h *masterHandlerImpl) UpdateIncentiveRule(w http.ResponseWriter, r *http.Request) {
	var req incentive.UpsertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.masterService.UpdateIncentiveRule(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive rule updated", result)
}

// DeleteIncentiveRule implements MasterHandler.
func (h *masterHandlerImpl) DeleteIncentiveRule(w http.ResponseWriter, r *http.Request) {
	if err := h.masterService.DeleteIncentiveRule(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Incentive rule deleted", nil)
}
