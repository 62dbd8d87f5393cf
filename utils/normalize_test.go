package utils

import "testing"

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want *string
	}{
		{"empty string", "", nil},
		{"spaces only", "   ", nil},
		{"tab and newline", "\t\n", nil},
		{"valid date", "2025-04-01", strptr("2025-04-01")},
		{"date with padding", "  2025-04-01  ", strptr("2025-04-01")},
		// no date parsing happens, malformed input passes through
		{"malformed date", "31-31-9999", strptr("31-31-9999")},
		{"arbitrary text", "next tuesday", strptr("next tuesday")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeDate(tt.raw)
			if tt.want == nil {
				if got != nil {
					t.Errorf("NormalizeDate(%q) = %q, want nil", tt.raw, *got)
				}
				return
			}
			if got == nil {
				t.Fatalf("NormalizeDate(%q) = nil, want %q", tt.raw, *tt.want)
			}
			if *got != *tt.want {
				t.Errorf("NormalizeDate(%q) = %q, want %q", tt.raw, *got, *tt.want)
			}
		})
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{"nil slice", nil, ""},
		{"empty slice", []string{}, ""},
		{"single value", []string{"Pune"}, "Pune"},
		{"two values", []string{"Pune", "Mumbai"}, "Pune, Mumbai"},
		{"three values", []string{"a", "b", "c"}, "a, b, c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Flatten(tt.values); got != tt.want {
				t.Errorf("Flatten(%v) = %q, want %q", tt.values, got, tt.want)
			}
		})
	}
}

func strptr(s string) *string { return &s }
