package model

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestReadingDays(t *testing.T) {
	cases := []struct {
		name  string
		start *time.Time
		end   *time.Time
		want  *int
	}{
		{"two weeks", day(2024, 1, 1), day(2024, 1, 15), intp(14)},
		{"same day", day(2024, 1, 1), day(2024, 1, 1), intp(1)},
		{"partial day rounds up", day(2024, 1, 1), tp(time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC)), intp(2)},
		{"missing start", nil, day(2024, 1, 15), nil},
		{"missing end", day(2024, 1, 1), nil, nil},
		{"end before start", day(2024, 1, 15), day(2024, 1, 1), nil},
	}
	for _, tc := range cases {
		got := ReadingDays(tc.start, tc.end)
		if (got == nil) != (tc.want == nil) {
			t.Fatalf("%s: got %v; want %v", tc.name, got, tc.want)
		}
		if got != nil && *got != *tc.want {
			t.Fatalf("%s: got %d; want %d", tc.name, *got, *tc.want)
		}
	}
}

func TestReadingStatusValid(t *testing.T) {
	for _, s := range []ReadingStatus{StatusToRead, StatusReading, StatusFinished, StatusAbandoned} {
		if !s.Valid() {
			t.Fatalf("%s should be valid", s)
		}
	}
	if ReadingStatus("DONE").Valid() {
		t.Fatal("DONE should not be valid")
	}
	if ReadingStatus("").Valid() {
		t.Fatal("empty status should not be valid")
	}
}

func intp(v int) *int           { return &v }
func tp(v time.Time) *time.Time { return &v }
