package response

import (
	"errors"
	"net/http"

	"github.com/talentbase/hrms-backend-go/internal/domain/attendance"
	"github.com/talentbase/hrms-backend-go/internal/domain/auth"
	"github.com/talentbase/hrms-backend-go/internal/domain/employee"
	"github.com/talentbase/hrms-backend-go/internal/domain/leave"
	"github.com/talentbase/hrms-backend-go/internal/domain/payroll"
	"github.com/talentbase/hrms-backend-go/internal/domain/screening"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
	"github.com/talentbase/hrms-backend-go/internal/pkg/huggingface"
	"github.com/talentbase/hrms-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthStateMismatch):
		Unauthorized(w, "OAuth state mismatch")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUsernameExists):
		Conflict(w, "Username already registered")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrProfileExists):
		Conflict(w, "Employee profile already exists for this user")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyMarked):
		Conflict(w, "Attendance already marked for today")
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrLeaveRequestAlreadyProcessed):
		Conflict(w, "Leave request already processed")

	// Payroll domain errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll record not found")

	// Screening domain errors
	case errors.Is(err, screening.ErrUnsupportedFileType):
		BadRequest(w, "Resume must be a PDF or plain text file", nil)
	case errors.Is(err, screening.ErrUnreadableResume):
		BadRequest(w, "Could not extract text from resume", nil)

	// Inference upstream errors
	case errors.Is(err, huggingface.ErrMissingAPIKey):
		BadGateway(w, "Inference service is not configured")
	case errors.Is(err, huggingface.ErrUpstreamUnavailable),
		errors.Is(err, huggingface.ErrMalformedResponse):
		BadGateway(w, "Inference service is unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
