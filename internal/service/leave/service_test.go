package leave

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/leave"
)

type fakeLeaveRepo struct {
	requests map[string]leave.LeaveRequest
	nextID   int
}

func newFakeLeaveRepo() *fakeLeaveRepo {
	return &fakeLeaveRepo{requests: make(map[string]leave.LeaveRequest), nextID: 1}
}

func (f *fakeLeaveRepo) Create(_ context.Context, request leave.LeaveRequest) (leave.LeaveRequest, error) {
	request.ID = string(rune('a' + f.nextID))
	request.CreatedAt = time.Now()
	f.nextID++
	f.requests[request.ID] = request
	return request, nil
}

func (f *fakeLeaveRepo) GetByID(_ context.Context, id string) (leave.LeaveRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return leave.LeaveRequest{}, leave.ErrLeaveRequestNotFound
	}
	return req, nil
}

func (f *fakeLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.EmployeeID == employeeID {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) ListPending(_ context.Context, limit int) ([]leave.LeaveRequest, error) {
	var out []leave.LeaveRequest
	for _, req := range f.requests {
		if req.Status == leave.StatusPending {
			out = append(out, req)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) UpdateStatus(_ context.Context, id string, status leave.Status, decidedBy string) error {
	req, ok := f.requests[id]
	if !ok {
		return leave.ErrLeaveRequestNotFound
	}
	now := time.Now()
	req.Status = status
	req.DecidedBy = &decidedBy
	req.DecidedAt = &now
	f.requests[id] = req
	return nil
}

type fakeEmployeeRepo struct {
	byUserID map[string]employee.EmployeeProfile
}

func (f *fakeEmployeeRepo) Create(_ context.Context, p employee.EmployeeProfile) (employee.EmployeeProfile, error) {
	return p, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.EmployeeProfile, error) {
	for _, p := range f.byUserID {
		if p.ID == id {
			return p, nil
		}
	}
	return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.EmployeeProfile, error) {
	p, ok := f.byUserID[userID]
	if !ok {
		return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
	}
	return p, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context) ([]employee.EmployeeProfile, error) {
	return nil, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _ employee.UpdateEmployeeRequest) (employee.EmployeeProfile, error) {
	return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _ string) error {
	return nil
}

func testEmployeeRepo() *fakeEmployeeRepo {
	username := "jdoe"
	return &fakeEmployeeRepo{byUserID: map[string]employee.EmployeeProfile{
		"user-1": {
			ID:       "emp-1",
			UserID:   "user-1",
			Salary:   decimal.NewFromInt(5000),
			Username: &username,
		},
	}}
}

func TestSubmitCreatesPendingRequest(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	resp, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "family trip",
	})
	require.NoError(t, err)

	assert.Equal(t, "emp-1", resp.EmployeeID)
	assert.Equal(t, string(leave.StatusPending), resp.Status)
	assert.Equal(t, "2025-07-01", resp.StartDate)
	assert.Equal(t, "2025-07-05", resp.EndDate)
	assert.Equal(t, "jdoe", resp.EmployeeName)
}

func TestSubmitAcceptsStartAfterEnd(t *testing.T) {
	// Date ordering is intentionally not validated.
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	_, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-10",
		EndDate:   "2025-07-01",
		Reason:    "backdated correction",
	})
	assert.NoError(t, err)
}

func TestSubmitRejectsBadDates(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	_, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "07/01/2025",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	assert.Error(t, err)
}

func TestSubmitWithoutProfile(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, &fakeEmployeeRepo{byUserID: map[string]employee.EmployeeProfile{}}, true)

	_, err := svc.Submit(context.Background(), "user-unknown", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestDecideApprovesPendingRequest(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	submitted, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: submitted.ID,
		Decision:  string(leave.StatusApproved),
	})
	require.NoError(t, err)

	assert.Equal(t, string(leave.StatusApproved), decided.Status)
	require.NotNil(t, decided.DecidedBy)
	assert.Equal(t, "manager-1", *decided.DecidedBy)
	assert.NotNil(t, decided.DecidedAt)
}

func TestDecideRejectsInvalidDecision(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	_, err := svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: "a",
		Decision:  "Pending",
	})
	assert.Error(t, err)

	_, err = svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: "a",
		Decision:  "approved",
	})
	assert.Error(t, err, "decision values are case sensitive")
}

func TestDecideUnknownRequest(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	_, err := svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: "missing",
		Decision:  string(leave.StatusApproved),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestNotFound)
}

func TestDecideTerminalRequestStrict(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	submitted, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: submitted.ID,
		Decision:  string(leave.StatusApproved),
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), "manager-2", leave.DecideLeaveRequest{
		RequestID: submitted.ID,
		Decision:  string(leave.StatusRejected),
	})
	assert.ErrorIs(t, err, leave.ErrLeaveRequestAlreadyProcessed)

	// The first decision stands.
	stored, err := leaveRepo.GetByID(context.Background(), submitted.ID)
	require.NoError(t, err)
	assert.Equal(t, leave.StatusApproved, stored.Status)
}

func TestDecideTerminalRequestPermissive(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), false)

	submitted, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: submitted.ID,
		Decision:  string(leave.StatusApproved),
	})
	require.NoError(t, err)

	decided, err := svc.Decide(context.Background(), "manager-2", leave.DecideLeaveRequest{
		RequestID: submitted.ID,
		Decision:  string(leave.StatusRejected),
	})
	require.NoError(t, err)
	assert.Equal(t, string(leave.StatusRejected), decided.Status)
}

func TestListPendingExcludesDecidedRequests(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	first, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	_, err = svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-08-01",
		EndDate:   "2025-08-02",
		Reason:    "appointment",
	})
	require.NoError(t, err)

	_, err = svc.Decide(context.Background(), "manager-1", leave.DecideLeaveRequest{
		RequestID: first.ID,
		Decision:  string(leave.StatusRejected),
	})
	require.NoError(t, err)

	pending, err := svc.ListPending(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, pending.Requests, 1)
	assert.Equal(t, string(leave.StatusPending), pending.Requests[0].Status)
}

func TestListOwnOnlyReturnsCallersRequests(t *testing.T) {
	leaveRepo := newFakeLeaveRepo()
	leaveRepo.requests["other"] = leave.LeaveRequest{
		ID:         "other",
		EmployeeID: "emp-2",
		Status:     leave.StatusPending,
	}
	svc := NewLeaveService(leaveRepo, testEmployeeRepo(), true)

	_, err := svc.Submit(context.Background(), "user-1", leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-05",
		Reason:    "trip",
	})
	require.NoError(t, err)

	list, err := svc.ListOwn(context.Background(), "user-1")
	require.NoError(t, err)
	require.Len(t, list.Requests, 1)
	assert.Equal(t, "emp-1", list.Requests[0].EmployeeID)
}
