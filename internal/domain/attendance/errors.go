package attendance

import "errors"

var (
	ErrAlreadyMarked      = errors.New("attendance already marked for today")
	ErrAttendanceNotFound = errors.New("attendance record not found")
)
