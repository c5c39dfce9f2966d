package language

import "testing"

func TestToISO2(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		// 2-letter codes pass through
		{"en", "en"},
		{"HI", "hi"},
		// 3-letter codes convert
		{"eng", "en"},
		{"hin", "hi"},
		{"fre", "fr"},
		{"ger", "de"},
		{"per", "fa"},
		// Word forms
		{"english", "en"},
		{"Tamil", "ta"},
		{"BOLLYWOOD", "hi"},
		{"  korean ", "ko"},
		// Unknown 2-letter passes through
		{"xy", "xy"},
		// Unknown longer input is rejected
		{"klingon", ""},
		{"xyz", ""},
		{"", ""},
		{" ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := ToISO2(tt.input); got != tt.expected {
				t.Errorf("ToISO2(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"en", "English"},
		{"hin", "Hindi"},
		{"telugu", "Telugu"},
		{"xx", "XX"},
		{"", "Any"},
	}
	for _, tt := range tests {
		if got := DisplayName(tt.input); got != tt.expected {
			t.Errorf("DisplayName(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

