package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/talentbase/hrms-backend-go/internal/domain/payroll"
	"github.com/talentbase/hrms-backend-go/internal/pkg/database"
)

type payrollRepositoryImpl struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepositoryImpl{db: db}
}

// Create implements payroll.PayrollRepository. Only the components are
// stored; the total is always derived on read.
func (r *payrollRepositoryImpl) Create(ctx context.Context, record payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payrolls (id, employee_id, month, base_salary, bonus, deductions)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Month,
		record.BaseSalary,
		record.Bonus,
		record.Deductions,
	).Scan(&record.CreatedAt)

	if err != nil {
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll record: %w", err)
	}

	return record, nil
}

const payrollSelect = `
	SELECT p.id, p.employee_id, p.month, p.base_salary, p.bonus, p.deductions, p.created_at,
		   u.username AS employee_name
	FROM payrolls p
	JOIN employee_profiles e ON e.id = p.employee_id
	JOIN users u ON u.id = e.user_id
`

func (r *payrollRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Payroll
	for rows.Next() {
		var rec payroll.Payroll
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Month, &rec.BaseSalary, &rec.Bonus, &rec.Deductions, &rec.CreatedAt, &rec.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListByEmployee implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]payroll.Payroll, error) {
	return r.queryRecords(ctx, payrollSelect+` WHERE p.employee_id = $1 ORDER BY p.created_at DESC`, employeeID)
}

// ListAll implements payroll.PayrollRepository.
func (r *payrollRepositoryImpl) ListAll(ctx context.Context) ([]payroll.Payroll, error) {
	return r.queryRecords(ctx, payrollSelect+` ORDER BY p.created_at DESC`)
}
