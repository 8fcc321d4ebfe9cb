package datemath_test

import (
	"testing"
	"time"

	"multi-agent-assistant/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	if _, err := datemath.NewParser("Asia/Singapore"); err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}
	if _, err := datemath.NewParser(""); err != nil {
		t.Fatalf("empty timezone should use Local: %v", err)
	}
	if _, err := datemath.NewParser("Invalid/Timezone"); err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestParse(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		relative string
		want     time.Time
		wantErr  bool
	}{
		{"today", startOfBase, false},
		{"Tomorrow", startOfBase.AddDate(0, 0, 1), false},
		{"yesterday", startOfBase.AddDate(0, 0, -1), false},
		{"in 3 days", startOfBase.AddDate(0, 0, 3), false},
		{"in 2 weeks", startOfBase.AddDate(0, 0, 14), false},
		{"in 1 month", startOfBase.AddDate(0, 1, 0), false},
		{"in a few days", baseTime, true},
		{"next monday", startOfBase.AddDate(0, 0, 5), false},
		{"next wednesday", startOfBase.AddDate(0, 0, 7), false},
		{"next funday", baseTime, true},
		{"some random day", startOfBase, false},
	}

	for _, tt := range tests {
		t.Run(tt.relative, func(t *testing.T) {
			got, err := parser.Parse(tt.relative, baseTime)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !got.Equal(tt.want) {
				t.Errorf("Parse() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDetect(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	baseTime := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC) // Wednesday

	tests := []struct {
		text      string
		wantDate  string
		wantFound bool
	}{
		{"What should I do today in Singapore?", "2024-05-01", true},
		{"Any events tomorrow in Singapore", "2024-05-02", true},
		{"Recommend something for next Saturday", "2024-05-04", true},
		{"what's on in 3 days", "2024-05-04", true},
		{"concerts in 2 weeks in Singapore", "2024-05-15", true},
		{"anything in 1 month", "2024-06-01", true},
		{"Recommend indoor activities", "2024-05-01", false},
		{"events in Singapore", "2024-05-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			got, found := parser.Detect(tt.text, baseTime)
			if found != tt.wantFound {
				t.Errorf("Detect() found = %v, want %v", found, tt.wantFound)
			}
			if s := got.Format(datemath.DateLayout); s != tt.wantDate {
				t.Errorf("Detect() = %s, want %s", s, tt.wantDate)
			}
		})
	}
}

func TestStripPhrases(t *testing.T) {
	tests := map[string]string{
		"events in Paris in 3 days":            "events in Paris",
		"What events in Singapore Tomorrow?":   "What events in Singapore ?",
		"concerts next Friday in Berlin":       "concerts in Berlin",
		"What should I do today in Singapore?": "What should I do in Singapore?",
		"outdoor events in London in 2 weeks":  "outdoor events in London",
		"Recommend indoor activities in Tokyo": "Recommend indoor activities in Tokyo",
	}
	for in, want := range tests {
		if got := datemath.StripPhrases(in); got != want {
			t.Errorf("StripPhrases(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestToday_UsesParserTimezone(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Singapore")
	// 20:00 UTC is already the next day in Singapore (UTC+8).
	base := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)

	if got := parser.Today(base).Format(datemath.DateLayout); got != "2024-05-02" {
		t.Errorf("Today() = %s, want 2024-05-02", got)
	}
}
