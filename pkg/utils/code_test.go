package utils

import (
	"strings"
	"testing"
)

func TestGenerateAutofillCode(t *testing.T) {
	code, err := GenerateAutofillCode(8)
	if err != nil {
		t.Fatalf("GenerateAutofillCode failed: %v", err)
	}
	if len(code) != 8 {
		t.Fatalf("expected 8 characters, got %d (%q)", len(code), code)
	}
	for _, ch := range code {
		if !strings.ContainsRune(AutofillCodeAlphabet, ch) {
			t.Fatalf("code %q contains %q outside the alphabet", code, ch)
		}
	}
}

func TestGenerateAutofillCodeInvalidLength(t *testing.T) {
	if _, err := GenerateAutofillCode(0); err == nil {
		t.Fatal("expected error for zero length")
	}
	if _, err := GenerateAutofillCode(-3); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestGenerateAutofillCodeUniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 1000; i++ {
		code, err := GenerateAutofillCode(8)
		if err != nil {
			t.Fatalf("GenerateAutofillCode failed: %v", err)
		}
		if seen[code] {
			t.Fatalf("duplicate code %q after %d generations", code, i)
		}
		seen[code] = true
	}
}

// Reducing random bytes modulo 36 would make A-D roughly 25% more likely
// than the rest of the alphabet. With 320k samples that skew is dozens of
// standard deviations wide, so a loose frequency-ratio bound catches it
// without flaking on honest randomness.
func TestGenerateAutofillCodeUniformity(t *testing.T) {
	counts := make(map[byte]int, len(AutofillCodeAlphabet))
	for i := 0; i < 40000; i++ {
		code, err := GenerateAutofillCode(8)
		if err != nil {
			t.Fatalf("GenerateAutofillCode failed: %v", err)
		}
		for j := 0; j < len(code); j++ {
			counts[code[j]]++
		}
	}

	min, max := -1, -1
	for i := 0; i < len(AutofillCodeAlphabet); i++ {
		n := counts[AutofillCodeAlphabet[i]]
		if n == 0 {
			t.Fatalf("character %q never generated", AutofillCodeAlphabet[i])
		}
		if min == -1 || n < min {
			min = n
		}
		if n > max {
			max = n
		}
	}

	if ratio := float64(max) / float64(min); ratio > 1.15 {
		t.Errorf("character frequency ratio %.3f, want <= 1.15 (min=%d max=%d)", ratio, min, max)
	}
}

func TestNormalizeAutofillCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"abc123de", "ABC123DE"},
		{"  ABC123DE  ", "ABC123DE"},
		{"\tAbC123dE\n", "ABC123DE"},
		{"ABC123DE", "ABC123DE"},
	}

	for _, tt := range tests {
		if got := NormalizeAutofillCode(tt.in); got != tt.want {
			t.Errorf("NormalizeAutofillCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsValidAutofillCode(t *testing.T) {
	tests := []struct {
		name string
		code string
		want bool
	}{
		{"valid", "ABC123DE", true},
		{"too short", "ABC123", false},
		{"too long", "ABC123DEF", false},
		{"lowercase", "abc123de", false},
		{"punctuation", "ABC-23DE", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidAutofillCode(tt.code, 8); got != tt.want {
				t.Errorf("IsValidAutofillCode(%q, 8) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}
