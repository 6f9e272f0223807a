package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTotalSalary(t *testing.T) {
	cases := []struct {
		name       string
		base       string
		bonus      string
		deductions string
		want       string
	}{
		{"base plus bonus minus deductions", "5000", "500", "200", "5300"},
		{"zero everything", "0", "0", "0", "0"},
		{"deductions exceed income stays negative", "1000", "0", "1500", "-500"},
		{"cents are exact", "1000.10", "0.20", "0.30", "1000"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := Payroll{
				BaseSalary: decimal.RequireFromString(c.base),
				Bonus:      decimal.RequireFromString(c.bonus),
				Deductions: decimal.RequireFromString(c.deductions),
			}
			assert.True(t, p.TotalSalary().Equal(decimal.RequireFromString(c.want)),
				"TotalSalary() = %s, want %s", p.TotalSalary(), c.want)
		})
	}
}

func TestCreatePayrollRequestValidate(t *testing.T) {
	valid := CreatePayrollRequest{
		EmployeeID: "emp-1",
		Month:      "2025-06",
		BaseSalary: decimal.NewFromInt(5000),
	}
	assert.NoError(t, valid.Validate())

	missing := CreatePayrollRequest{}
	err := missing.Validate()
	assert.Error(t, err)

	negative := CreatePayrollRequest{
		EmployeeID: "emp-1",
		Month:      "2025-06",
		BaseSalary: decimal.NewFromInt(-1),
	}
	assert.Error(t, negative.Validate())
}
