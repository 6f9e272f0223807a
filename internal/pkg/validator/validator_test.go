package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2025-01-01", "2024-02-29", "1999-12-31"}
	invalid := []string{"", "2025-1-1", "01-01-2025", "2025-13-01", "2025-02-30", "not-a-date"}
	for _, date := range valid {
		if _, ok := IsValidDate(date); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", date)
		}
	}
	for _, date := range invalid {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"Admin", "Employee"}
	if !IsInSlice("Admin", slice) {
		t.Error("IsInSlice(\"Admin\") = false, want true")
	}
	if IsInSlice("admin", slice) {
		t.Error("IsInSlice(\"admin\") = true, want false")
	}
	if IsInSlice("Admin", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "username", Message: "username is required"},
		{Field: "password", Message: "password must be at least 8 characters"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["username"] != "username is required" {
		t.Errorf("ToMap()[\"username\"] = %q", m["username"])
	}
	if errs.Error() != "username: username is required; password: password must be at least 8 characters" {
		t.Errorf("Error() = %q", errs.Error())
	}
}
