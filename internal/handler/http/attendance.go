package http

import (
	"log/slog"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/handler/http/response"
	attendanceService "github.com/talentbase/hrms-backend-go/internal/service/attendance"
)

type AttendanceHandler interface {
	Mark(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type AttendanceHandlerImpl struct {
	attendanceService attendanceService.AttendanceService
}

func NewAttendanceHandler(attendanceSvc attendanceService.AttendanceService) AttendanceHandler {
	return &AttendanceHandlerImpl{attendanceService: attendanceSvc}
}

// Mark implements AttendanceHandler. The request carries no body: the server
// decides the date and the status is always Present.
func (h *AttendanceHandlerImpl) Mark(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	record, err := h.attendanceService.Mark(r.Context(), caller.UserID)
	if err != nil {
		slog.Error("Mark attendance service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Attendance marked", "employee_id", record.EmployeeID, "date", record.Date)
	response.Created(w, "Attendance marked successfully", record)
}

// List implements AttendanceHandler.
func (h *AttendanceHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	records, err := h.attendanceService.List(r.Context(), caller.Role, caller.UserID)
	if err != nil {
		slog.Error("List attendance service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
