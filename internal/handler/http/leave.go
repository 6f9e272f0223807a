package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/talentbase/hrms-backend-go/internal/domain/leave"
	"github.com/talentbase/hrms-backend-go/internal/handler/http/response"
	leaveService "github.com/talentbase/hrms-backend-go/internal/service/leave"
)

type LeaveHandler interface {
	Submit(w http.ResponseWriter, r *http.Request)
	ListOwn(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
	Decide(w http.ResponseWriter, r *http.Request)
}

type LeaveHandlerImpl struct {
	leaveService leaveService.LeaveService
}

func NewLeaveHandler(leaveSvc leaveService.LeaveService) LeaveHandler {
	return &LeaveHandlerImpl{leaveService: leaveSvc}
}

// Submit implements LeaveHandler.
func (h *LeaveHandlerImpl) Submit(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var submitReq leave.SubmitLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		slog.Error("Submit leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	request, err := h.leaveService.Submit(r.Context(), caller.UserID, submitReq)
	if err != nil {
		slog.Error("Submit leave service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request submitted", "request_id", request.ID, "employee_id", request.EmployeeID)
	response.Created(w, "Leave request submitted successfully", request)
}

// ListOwn implements LeaveHandler.
func (h *LeaveHandlerImpl) ListOwn(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	requests, err := h.leaveService.ListOwn(r.Context(), caller.UserID)
	if err != nil {
		slog.Error("List own leave service error", "error", err, "user_id", caller.UserID)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// ListPending implements LeaveHandler.
func (h *LeaveHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			response.BadRequest(w, "limit must be a non-negative integer", nil)
			return
		}
		limit = parsed
	}

	requests, err := h.leaveService.ListPending(r.Context(), limit)
	if err != nil {
		slog.Error("List pending leave service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, requests)
}

// Decide implements LeaveHandler.
func (h *LeaveHandlerImpl) Decide(w http.ResponseWriter, r *http.Request) {
	caller, ok := callerIdentity(r)
	if !ok {
		response.Unauthorized(w, "Invalid token claims")
		return
	}

	var decideReq leave.DecideLeaveRequest
	if err := json.NewDecoder(r.Body).Decode(&decideReq); err != nil {
		slog.Error("Decide leave decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	decideReq.RequestID = chi.URLParam(r, "id")

	request, err := h.leaveService.Decide(r.Context(), caller.UserID, decideReq)
	if err != nil {
		slog.Error("Decide leave service error", "error", err, "request_id", decideReq.RequestID)
		response.HandleError(w, err)
		return
	}

	slog.Info("Leave request decided", "request_id", request.ID, "status", request.Status, "decided_by", caller.UserID)
	response.SuccessWithMessage(w, "Leave request "+request.Status, request)
}
