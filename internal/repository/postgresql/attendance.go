package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/talentbase/hrms-backend-go/internal/domain/attendance"
	"github.com/talentbase/hrms-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// CreateIfAbsent implements attendance.AttendanceRepository. Uniqueness of
// (employee_id, date) is enforced by the table constraint; ON CONFLICT DO
// NOTHING turns the race-prone check-then-act into one atomic statement.
func (a *attendanceRepositoryImpl) CreateIfAbsent(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	if record.ID == "" {
		record.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (employee_id, date) DO NOTHING
		RETURNING created_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		record.Status,
	).Scan(&record.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Conflict: a record for this employee and day already exists.
			return attendance.Attendance{}, attendance.ErrAlreadyMarked
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

const attendanceSelect = `
	SELECT a.id, a.employee_id, a.date, a.status, a.created_at, u.username AS employee_name
	FROM attendance_records a
	JOIN employee_profiles e ON e.id = a.employee_id
	JOIN users u ON u.id = e.user_id
`

func (a *attendanceRepositoryImpl) queryRecords(ctx context.Context, query string, args ...interface{}) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance records: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var rec attendance.Attendance
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt, &rec.EmployeeName); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

// ListAll implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListAll(ctx context.Context) ([]attendance.Attendance, error) {
	return a.queryRecords(ctx, attendanceSelect+` ORDER BY a.date DESC, a.created_at DESC`)
}

// ListByEmployee implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID string) ([]attendance.Attendance, error) {
	return a.queryRecords(ctx, attendanceSelect+` WHERE a.employee_id = $1 ORDER BY a.date DESC, a.created_at DESC`, employeeID)
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepositoryImpl) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT id, employee_id, date, status, created_at
		FROM attendance_records
		WHERE employee_id = $1 AND date = $2
		LIMIT 1
	`

	var rec attendance.Attendance
	err := q.QueryRow(ctx, query, employeeID, date).Scan(&rec.ID, &rec.EmployeeID, &rec.Date, &rec.Status, &rec.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	return &rec, nil
}
