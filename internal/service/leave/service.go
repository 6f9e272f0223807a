package leave

import (
	"context"
	"time"

	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/leave"
	"github.com/talentbase/hrms-backend-go/internal/pkg/validator"
)

const dateLayout = "2006-01-02"

type LeaveService interface {
	// Submit creates a request in Pending state for the caller.
	Submit(ctx context.Context, requesterUserID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error)

	// ListOwn returns the caller's requests, newest first, all statuses.
	ListOwn(ctx context.Context, requesterUserID string) (leave.ListLeaveResponse, error)

	// ListPending returns all Pending requests, newest first.
	ListPending(ctx context.Context, limit int) (leave.ListLeaveResponse, error)

	// Decide writes Approved or Rejected onto a request.
	Decide(ctx context.Context, deciderUserID string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error)
}

type leaveServiceImpl struct {
	leaveRepo    leave.LeaveRequestRepository
	employeeRepo employee.EmployeeRepository

	// strictTransitions enforces Pending as the only state decide may act on.
	// When false, a request already in a terminal state may be overwritten,
	// which is what the pre-redesign system did. Kept switchable until the
	// intended behavior is confirmed.
	strictTransitions bool
}

func NewLeaveService(leaveRepo leave.LeaveRequestRepository, employeeRepo employee.EmployeeRepository, strictTransitions bool) LeaveService {
	return &leaveServiceImpl{
		leaveRepo:         leaveRepo,
		employeeRepo:      employeeRepo,
		strictTransitions: strictTransitions,
	}
}

// Submit implements LeaveService.
func (s *leaveServiceImpl) Submit(ctx context.Context, requesterUserID string, req leave.SubmitLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	profile, err := s.employeeRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	startDate, _ := validator.IsValidDate(req.StartDate)
	endDate, _ := validator.IsValidDate(req.EndDate)

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		EmployeeID: profile.ID,
		StartDate:  startDate,
		EndDate:    endDate,
		Reason:     req.Reason,
		Status:     leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	created.EmployeeName = profile.Username
	return toResponse(created), nil
}

// ListOwn implements LeaveService.
func (s *leaveServiceImpl) ListOwn(ctx context.Context, requesterUserID string) (leave.ListLeaveResponse, error) {
	profile, err := s.employeeRepo.GetByUserID(ctx, requesterUserID)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	requests, err := s.leaveRepo.ListByEmployee(ctx, profile.ID)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	return toListResponse(requests), nil
}

// ListPending implements LeaveService.
func (s *leaveServiceImpl) ListPending(ctx context.Context, limit int) (leave.ListLeaveResponse, error) {
	requests, err := s.leaveRepo.ListPending(ctx, limit)
	if err != nil {
		return leave.ListLeaveResponse{}, err
	}

	return toListResponse(requests), nil
}

// Decide implements LeaveService.
func (s *leaveServiceImpl) Decide(ctx context.Context, deciderUserID string, req leave.DecideLeaveRequest) (leave.LeaveRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request, err := s.leaveRepo.GetByID(ctx, req.RequestID)
	if err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	if s.strictTransitions && request.Status.IsTerminal() {
		return leave.LeaveRequestResponse{}, leave.ErrLeaveRequestAlreadyProcessed
	}

	decision := leave.Status(req.Decision)
	if err := s.leaveRepo.UpdateStatus(ctx, request.ID, decision, deciderUserID); err != nil {
		return leave.LeaveRequestResponse{}, err
	}

	request.Status = decision
	request.DecidedBy = &deciderUserID
	decidedAt := time.Now()
	request.DecidedAt = &decidedAt

	return toResponse(request), nil
}

func toResponse(req leave.LeaveRequest) leave.LeaveRequestResponse {
	resp := leave.LeaveRequestResponse{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		StartDate:  req.StartDate.Format(dateLayout),
		EndDate:    req.EndDate.Format(dateLayout),
		Reason:     req.Reason,
		Status:     string(req.Status),
		CreatedAt:  req.CreatedAt.Format(time.RFC3339),
		DecidedBy:  req.DecidedBy,
	}
	if req.EmployeeName != nil {
		resp.EmployeeName = *req.EmployeeName
	}
	if req.DecidedAt != nil {
		decidedAt := req.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &decidedAt
	}
	return resp
}

func toListResponse(requests []leave.LeaveRequest) leave.ListLeaveResponse {
	responses := make([]leave.LeaveRequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, toResponse(req))
	}
	return leave.ListLeaveResponse{Requests: responses}
}
