package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/wagetrack/labour-backend-go/internal/domain/attendance"
	"github.com/wagetrack/labour-backend-go/internal/handler/http/response"
	"github.com/wagetrack/labour-backend-go/internal/pkg/uaetime"
)

type AttendanceHandler interface {
	CheckIn(w http.ResponseWriter, r *http.Request)
	MyAttendance(w http.ResponseWriter, r *http.Request)
	MyDashboard(w http.ResponseWriter, r *http.Request)
	Estimate(w http.ResponseWriter, r *http.Request)

	Board(w http.ResponseWriter, r *http.Request)
	MarkPresent(w http.ResponseWriter, r *http.Request)
	MarkAbsent(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	VerifyBulk(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.Service
}

func NewAttendanceHandler(attendanceService attendance.Service) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// CheckIn implements AttendanceHandler. The labour id always comes from the
// token, never the body.
func (h *attendanceHandlerImpl) CheckIn(w http.ResponseWriter, r *http.Request) {
	var req attendance.CheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.CheckIn(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Attendance recorded", result)
}

// MyAttendance implements AttendanceHandler. period=week covers the last 7
// days; period=month (or nothing) is the current month to date; explicit
// start_date/end_date win.
func (h *attendanceHandlerImpl) MyAttendance(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")
	if startDate == "" && r.URL.Query().Get("period") == "week" {
		startDate = uaetime.DateStr(uaetime.Now().AddDate(0, 0, -6))
		endDate = uaetime.Today()
	}

	records, summary, err := h.attendanceService.MyAttendance(
		r.Context(), userIDFromRequest(r), startDate, endDate,
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, map[string]interface{}{
		"records": records,
		"summary": summary,
	})
}

// MyDashboard implements AttendanceHandler.
func (h *attendanceHandlerImpl) MyDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := h.attendanceService.MyDashboard(r.Context(), userIDFromRequest(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, dash)
}

// Estimate implements AttendanceHandler. Live pay preview; half-filled input
// returns the zero breakdown.
func (h *attendanceHandlerImpl) Estimate(w http.ResponseWriter, r *http.Request) {
	var req attendance.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Estimate(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Board implements AttendanceHandler.
func (h *attendanceHandlerImpl) Board(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")

	board, err := h.attendanceService.DailyBoard(r.Context(), date, optionalQuery(r, "client_id"), optionalQuery(r, "site_id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, board)
}

// MarkPresent implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkPresent(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkPresentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.MarkPresent(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Labour marked present", result)
}

// MarkAbsent implements AttendanceHandler.
func (h *attendanceHandlerImpl) MarkAbsent(w http.ResponseWriter, r *http.Request) {
	var req attendance.MarkAbsentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.attendanceService.MarkAbsent(r.Context(), userIDFromRequest(r), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Labour marked absent", nil)
}

// Get implements AttendanceHandler.
func (h *attendanceHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// Update implements AttendanceHandler.
func (h *attendanceHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req attendance.UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.attendanceService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance updated", result)
}

// Delete implements AttendanceHandler.
func (h *attendanceHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance deleted", nil)
}

// Verify implements AttendanceHandler.
func (h *attendanceHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	if err := h.attendanceService.Verify(r.Context(), chi.URLParam(r, "id"), userIDFromRequest(r)); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance verified", nil)
}

// VerifyBulk implements AttendanceHandler.
func (h *attendanceHandlerImpl) VerifyBulk(w http.ResponseWriter, r *http.Request) {
	var req attendance.BulkVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	verified, err := h.attendanceService.VerifyBulk(r.Context(), userIDFromRequest(r), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Attendance verified", map[string]int{"verified": verified})
}
