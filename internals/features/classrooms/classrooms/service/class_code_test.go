package service

import (
	"strings"
	"testing"
)

func TestGenerateClassCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		code, err := GenerateClassCode()
		if err != nil {
			t.Fatalf("GenerateClassCode() error: %v", err)
		}
		if len(code) != ClassCodeLength {
			t.Fatalf("len(%q) = %d, want %d", code, len(code), ClassCodeLength)
		}
		for _, r := range code {
			if !strings.ContainsRune(codeAlphabet, r) {
				t.Fatalf("code %q contains %q outside the alphabet", code, r)
			}
		}
		seen[code] = true
	}
	// 100 draws from 32^6 should not all collide
	if len(seen) < 90 {
		t.Fatalf("only %d distinct codes in 100 draws", len(seen))
	}
}

func TestNormalizeClassCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"abc234", "ABC234"},
		{"  XyZ987 ", "XYZ987"},
		{"ALREADY", "ALREADY"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := NormalizeClassCode(tc.in); got != tc.want {
			t.Errorf("NormalizeClassCode(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestCodeAlphabetAvoidsAmbiguousGlyphs(t *testing.T) {
	for _, r := range "0O1I" {
		if strings.ContainsRune(codeAlphabet, r) {
			t.Errorf("alphabet must not contain %q", r)
		}
	}
}
