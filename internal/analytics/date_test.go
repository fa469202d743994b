package analytics

import (
	"testing"
	"time"

	"github.com/goccy/go-json"
)

func TestParseDateLayouts(t *testing.T) {
	want := d(2026, time.March, 4)
	for _, s := range []string{"2026-03-04", "2026/03/04", "2026-03-04T23:10:00Z", "2026-03-04 08:00:00", " 2026-03-04 "} {
		got, err := ParseDate(s)
		if err != nil {
			t.Fatalf("ParseDate(%q): %v", s, err)
		}
		if got != want {
			t.Errorf("ParseDate(%q) = %v, want %v", s, got, want)
		}
	}
	if _, err := ParseDate("04.03.2026"); err == nil {
		t.Error("expected error for unsupported layout")
	}
}

func TestNormalizeDateKeepsLocalDay(t *testing.T) {
	loc := time.FixedZone("UTC+8", 8*3600)
	ts := time.Date(2026, 5, 1, 1, 30, 0, 0, loc)
	if got := NormalizeDate(ts); got != d(2026, time.May, 1) {
		t.Fatalf("got %v", got)
	}
}

func TestDateArithmetic(t *testing.T) {
	start := d(2024, time.February, 28)
	if got := start.AddDays(1); got != d(2024, time.February, 29) {
		t.Errorf("leap day: got %v", got)
	}
	if got := start.AddDays(2); got != d(2024, time.March, 1) {
		t.Errorf("month rollover: got %v", got)
	}
	if n := d(2025, time.January, 1).DaysSince(d(2024, time.December, 25)); n != 7 {
		t.Errorf("DaysSince = %d, want 7", n)
	}
	if got := DateOf(2025, 13, 1); got != d(2026, time.January, 1) {
		t.Errorf("overflow month: got %v", got)
	}
	if d(2025, 1, 1).Weekday() != time.Wednesday {
		t.Error("2025-01-01 should be a Wednesday")
	}
}

func TestDateJSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Day Date `json:"day"`
	}{Day: d(2026, time.January, 3)})
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `{"day":"2026-01-03"}` {
		t.Fatalf("got %s", b)
	}

	var out struct {
		Day Date `json:"day"`
	}
	if err := json.Unmarshal([]byte(`{"day":"2026-07-09"}`), &out); err != nil {
		t.Fatal(err)
	}
	if out.Day != d(2026, time.July, 9) {
		t.Fatalf("got %v", out.Day)
	}
}
