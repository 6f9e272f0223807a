package attendance

type AttendanceResponse struct {
	ID           string `json:"id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Date         string `json:"date"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type ListAttendanceResponse struct {
	Records []AttendanceResponse `json:"records"`
}
