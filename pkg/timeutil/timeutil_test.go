package timeutil

import "testing"

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00:00"},
		{90, "0:01:30"},
		{4282, "1:11:22"},
		{-5, "0:00:00"},
	}

	for _, tt := range tests {
		if got := FormatTime(tt.seconds); got != tt.want {
			t.Errorf("FormatTime(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0, "0:00"},
		{7, "0:07"},
		{90.6, "1:30"},
		{750, "12:30"},
		{-1, "0:00"},
	}

	for _, tt := range tests {
		if got := FormatClock(tt.seconds); got != tt.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestParseTimeToSeconds(t *testing.T) {
	tests := []struct {
		input   string
		want    float64
		wantErr bool
	}{
		{"1:11:22", 4282, false},
		{"1:30", 90, false},
		{"42", 42, false},
		{"12.5", 12.5, false},
		{"abc", 0, true},
		{"1:2:3:4", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseTimeToSeconds(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseTimeToSeconds(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseTimeToSeconds(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseTimeToSeconds(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}
