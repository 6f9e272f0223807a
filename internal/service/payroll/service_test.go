package payroll

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/payroll"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
)

type fakePayrollRepo struct {
	records []payroll.Payroll
}

func (f *fakePayrollRepo) Create(_ context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	record.ID = "pay-1"
	f.records = append(f.records, record)
	return record, nil
}

func (f *fakePayrollRepo) ListByEmployee(_ context.Context, employeeID string) ([]payroll.Payroll, error) {
	var out []payroll.Payroll
	for _, rec := range f.records {
		if rec.EmployeeID == employeeID {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakePayrollRepo) ListAll(_ context.Context) ([]payroll.Payroll, error) {
	return f.records, nil
}

type fakeEmployeeRepo struct {
	profiles map[string]employee.EmployeeProfile // keyed by profile ID
}

func (f *fakeEmployeeRepo) Create(_ context.Context, p employee.EmployeeProfile) (employee.EmployeeProfile, error) {
	return p, nil
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string) (employee.EmployeeProfile, error) {
	p, ok := f.profiles[id]
	if !ok {
		return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
	}
	return p, nil
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, userID string) (employee.EmployeeProfile, error) {
	for _, p := range f.profiles {
		if p.UserID == userID {
			return p, nil
		}
	}
	return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
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

func testRepos() (*fakePayrollRepo, *fakeEmployeeRepo) {
	return &fakePayrollRepo{}, &fakeEmployeeRepo{profiles: map[string]employee.EmployeeProfile{
		"emp-1": {ID: "emp-1", UserID: "user-1"},
		"emp-2": {ID: "emp-2", UserID: "user-2"},
	}}
}

func TestCreateComputesTotal(t *testing.T) {
	payrollRepo, employeeRepo := testRepos()
	svc := NewPayrollService(payrollRepo, employeeRepo)

	resp, err := svc.Create(context.Background(), payroll.CreatePayrollRequest{
		EmployeeID: "emp-1",
		Month:      "2025-06",
		BaseSalary: decimal.NewFromInt(5000),
		Bonus:      decimal.NewFromInt(500),
		Deductions: decimal.NewFromInt(200),
	})
	require.NoError(t, err)

	assert.True(t, resp.TotalSalary.Equal(decimal.NewFromInt(5300)), "TotalSalary = %s", resp.TotalSalary)
	assert.Equal(t, "2025-06", resp.Month)
}

func TestCreateUnknownEmployee(t *testing.T) {
	payrollRepo, employeeRepo := testRepos()
	svc := NewPayrollService(payrollRepo, employeeRepo)

	_, err := svc.Create(context.Background(), payroll.CreatePayrollRequest{
		EmployeeID: "emp-missing",
		Month:      "2025-06",
		BaseSalary: decimal.NewFromInt(5000),
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, payrollRepo.records, "no record may be written for an unknown employee")
}

func TestListScopesByRole(t *testing.T) {
	payrollRepo, employeeRepo := testRepos()
	svc := NewPayrollService(payrollRepo, employeeRepo)

	for _, employeeID := range []string{"emp-1", "emp-2"} {
		_, err := svc.Create(context.Background(), payroll.CreatePayrollRequest{
			EmployeeID: employeeID,
			Month:      "2025-06",
			BaseSalary: decimal.NewFromInt(4000),
		})
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), user.RoleAdmin, "admin-user")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	own, err := svc.List(context.Background(), user.RoleEmployee, "user-2")
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, "emp-2", own[0].EmployeeID)
}
