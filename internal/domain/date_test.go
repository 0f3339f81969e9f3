package domain

import "testing"

func TestAddDaysMonthAndYearRollover(t *testing.T) {
	d, err := ParseDate("2026-12-30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := FormatDate(AddDays(d, 3)); got != "2027-01-02" {
		t.Errorf("AddDays across year = %s, want 2027-01-02", got)
	}
	if got := FormatDate(AddDays(d, -30)); got != "2026-11-30" {
		t.Errorf("AddDays backwards = %s, want 2026-11-30", got)
	}
}

func TestAddDaysLeapYear(t *testing.T) {
	leap, _ := ParseDate("2024-02-28")
	if got := FormatDate(AddDays(leap, 1)); got != "2024-02-29" {
		t.Errorf("leap year Feb 28 + 1 = %s, want 2024-02-29", got)
	}

	common, _ := ParseDate("2026-02-28")
	if got := FormatDate(AddDays(common, 1)); got != "2026-03-01" {
		t.Errorf("common year Feb 28 + 1 = %s, want 2026-03-01", got)
	}
}

func TestDaysBetweenRoundTrip(t *testing.T) {
	pairs := [][2]string{
		{"2026-01-01", "2026-01-01"},
		{"2026-01-01", "2026-01-10"},
		{"2026-01-10", "2026-01-01"},
		{"2024-02-01", "2024-03-01"},
		{"2025-12-25", "2026-01-05"},
		{"2026-03-07", "2026-03-10"}, // spans a US DST switch; UTC math must not care
	}

	for _, p := range pairs {
		a, _ := ParseDate(p[0])
		b, _ := ParseDate(p[1])

		n := DaysBetween(a, b)
		if got := FormatDate(AddDays(a, n)); got != p[1] {
			t.Errorf("AddDays(%s, DaysBetween(%s, %s)=%d) = %s, want %s", p[0], p[0], p[1], n, got, p[1])
		}
	}
}

func TestParseDateRejectsGarbage(t *testing.T) {
	for _, s := range []string{"", "not-a-date", "2026-13-01", "01/02/2026"} {
		if _, err := ParseDate(s); err == nil {
			t.Errorf("ParseDate(%q) should fail", s)
		}
	}
}
