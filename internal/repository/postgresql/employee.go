package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

// Create implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, profile employee.EmployeeProfile) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	if profile.ID == "" {
		profile.ID = uuid.NewString()
	}

	query := `
		INSERT INTO employee_profiles (id, user_id, department, salary, performance_score)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		profile.ID,
		profile.UserID,
		profile.Department,
		profile.Salary,
		profile.PerformanceScore,
	).Scan(&profile.CreatedAt, &profile.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return employee.EmployeeProfile{}, employee.ErrProfileExists
		}
		return employee.EmployeeProfile{}, fmt.Errorf("failed to create employee profile: %w", err)
	}

	return profile, nil
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id string) (employee.EmployeeProfile, error) {
	return r.getByField(ctx, "e.id", id)
}

// GetByUserID implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) GetByUserID(ctx context.Context, userID string) (employee.EmployeeProfile, error) {
	return r.getByField(ctx, "e.user_id", userID)
}

func (r *employeeRepositoryImpl) getByField(ctx context.Context, field string, value string) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT e.id, e.user_id, e.department, e.salary, e.performance_score,
			   e.created_at, e.updated_at,
			   u.username, u.role
		FROM employee_profiles e
		JOIN users u ON u.id = e.user_id
		WHERE %s = $1
	`, field)

	var p employee.EmployeeProfile
	err := q.QueryRow(ctx, query, value).Scan(
		&p.ID, &p.UserID, &p.Department, &p.Salary, &p.PerformanceScore,
		&p.CreatedAt, &p.UpdatedAt,
		&p.Username, &p.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeProfile{}, fmt.Errorf("failed to get employee profile: %w", err)
	}

	return p, nil
}

// List implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) List(ctx context.Context) ([]employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.id, e.user_id, e.department, e.salary, e.performance_score,
			   e.created_at, e.updated_at,
			   u.username, u.role
		FROM employee_profiles e
		JOIN users u ON u.id = e.user_id
		ORDER BY u.username ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list employee profiles: %w", err)
	}
	defer rows.Close()

	var profiles []employee.EmployeeProfile
	for rows.Next() {
		var p employee.EmployeeProfile
		if err := rows.Scan(
			&p.ID, &p.UserID, &p.Department, &p.Salary, &p.PerformanceScore,
			&p.CreatedAt, &p.UpdatedAt,
			&p.Username, &p.Role,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee profile: %w", err)
		}
		profiles = append(profiles, p)
	}

	return profiles, rows.Err()
}

// Update implements employee.EmployeeRepository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (employee.EmployeeProfile, error) {
	q := GetQuerier(ctx, r.db)

	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	argIdx := 1

	if req.Department != nil {
		setClauses = append(setClauses, fmt.Sprintf("department = $%d", argIdx))
		args = append(args, *req.Department)
		argIdx++
	}
	if req.Salary != nil {
		setClauses = append(setClauses, fmt.Sprintf("salary = $%d", argIdx))
		args = append(args, *req.Salary)
		argIdx++
	}
	if req.PerformanceScore != nil {
		setClauses = append(setClauses, fmt.Sprintf("performance_score = $%d", argIdx))
		args = append(args, *req.PerformanceScore)
		argIdx++
	}

	query := fmt.Sprintf(`
		UPDATE employee_profiles
		SET %s
		WHERE id = $%d
		RETURNING id
	`, strings.Join(setClauses, ", "), argIdx)
	args = append(args, req.ID)

	var id string
	if err := q.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeProfile{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeProfile{}, fmt.Errorf("failed to update employee profile: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete implements employee.EmployeeRepository. Attendance, payroll and
// leave rows referencing the profile are removed by ON DELETE CASCADE.
func (r *employeeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM employee_profiles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete employee profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}

	return nil
}
