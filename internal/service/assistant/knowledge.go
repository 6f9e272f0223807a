package assistant

import "strings"

// The knowledge base the assistant answers from. Four fixed topic passages;
// retrieval is a keyword match checked in a fixed priority order, so a
// question touching several topics resolves to the first matching one.
const (
	passageLeavePolicy = `Our company's official leave policy states that all full-time employees are entitled to 20 days of annual paid leave. Sick leave is granted for up to 10 days per year with a doctor's note. Maternity leave is 12 weeks, and paternity leave is 2 weeks. All leave requests must be submitted through the HRMS portal at least one week in advance for annual leave.`

	passagePayroll = `Salaries are processed on the 25th of each month and are paid out on the 28th. Payslips are available for download in the HRMS portal on the 27th. For any payroll discrepancies, please contact the HR department by emailing hr@company.com. Bonuses are typically paid out in the December payroll cycle.`

	passageAttendance = `Employees are expected to mark their attendance daily through the HRMS portal upon starting their workday. The standard work hours are from 9:00 AM to 5:30 PM, with a 30-minute lunch break. Remote employees must also mark their attendance online. Failure to mark attendance for three consecutive days without notification may be considered an unauthorized absence.`

	passageExpenses = `To submit an expense report, employees must use the 'Expenses' section of the HRMS portal. All claims must be accompanied by a valid digital receipt. Reimbursements for approved expenses are processed within 5 business days and are paid with the next salary cycle.`
)

type topic struct {
	keywords []string
	passage  string
}

// Checked in order; first match wins.
var topics = []topic{
	{keywords: []string{"leave", "vacation", "sick", "holiday"}, passage: passageLeavePolicy},
	{keywords: []string{"salary", "pay", "payslip", "paid"}, passage: passagePayroll},
	{keywords: []string{"attendance", "present", "timing", "hours"}, passage: passageAttendance},
	{keywords: []string{"expense", "reimbursement", "receipt"}, passage: passageExpenses},
}

// relevantPassage picks the passage for a question by substring keyword
// match. Falls back to all passages concatenated when nothing matches.
func relevantPassage(question string) string {
	lower := strings.ToLower(question)

	for _, t := range topics {
		for _, kw := range t.keywords {
			if strings.Contains(lower, kw) {
				return t.passage
			}
		}
	}

	return strings.Join([]string{passageLeavePolicy, passagePayroll, passageAttendance, passageExpenses}, " ")
}
