package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/domain/payroll"
	"github.com/talentbase/hrms-backend-go/internal/handler/http/response"
	payrollService "github.com/talentbase/hrms-backend-go/internal/service/payroll"
)

type PayrollHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type PayrollHandlerImpl struct {
	payrollService payrollService.PayrollService
}

func NewPayrollHandler(payrollSvc payrollService.PayrollService) PayrollHandler {
	return &PayrollHandlerImpl{payrollService: payrollSvc}
}

// Create implements PayrollHandler.
func (h *PayrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq payroll.CreatePayrollRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create payroll decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	record, err := h.payrollService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create payroll service error", "error", err, "employee_id", createReq.EmployeeID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Payroll record created", "payroll_id", record.ID, "employee_id", record.EmployeeID, "month", record.Month)
	response.Created(w, "Payroll record created successfully", record)
}

// List implements PayrollHandler.
func (h *PayrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	records, err := h.payrollService.List(r.Context(), caller.Role, caller.UserID)
	if err != nil {
		slog.Error("List payroll service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, records)
}
