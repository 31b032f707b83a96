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

func TestParseMonth(t *testing.T) {
	cases := []struct {
		input     string
		wantYear  int
		wantMonth int
		wantOK    bool
	}{
		{"2024-02", 2024, 2, true},
		{"1900-01", 1900, 1, true},
		{"2100-12", 2100, 12, true},
		{"2024-2", 0, 0, false},
		{"24-02", 0, 0, false},
		{"2024-13", 0, 0, false},
		{"2024-00", 0, 0, false},
		{"1899-06", 0, 0, false},
		{"2101-06", 0, 0, false},
		{"2024/02", 0, 0, false},
		{"2024-02-01", 0, 0, false},
		{"", 0, 0, false},
	}
	for _, c := range cases {
		year, month, ok := ParseMonth(c.input)
		if year != c.wantYear || month != c.wantMonth || ok != c.wantOK {
			t.Errorf("ParseMonth(%q) = (%d, %d, %v), want (%d, %d, %v)",
				c.input, year, month, ok, c.wantYear, c.wantMonth, c.wantOK)
		}
	}
}

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b",
		"123e4567-e89b-12d3-a456-426614174000",
		"123E4567-E89B-12D3-A456-426614174000",
	}
	invalid := []string{
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDateTime(t *testing.T) {
	valid := []string{
		"2024-01-15T10:30:00Z",
		"2024-01-15T10:30:00+07:00",
		"2024-01-15T10:30:00.123456789Z",
	}
	invalid := []string{
		"2024-01-15",
		"2024-01-15 10:30:00",
		"not-a-time",
		"",
	}
	for _, s := range valid {
		if _, ok := IsValidDateTime(s); !ok {
			t.Errorf("IsValidDateTime(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if _, ok := IsValidDateTime(s); ok {
			t.Errorf("IsValidDateTime(%q) = true, want false", s)
		}
	}
}
