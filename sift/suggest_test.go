package sift

import "testing"

func TestSuggest(t *testing.T) {
	p := New()
	p.AddParams("port", "level", "output")
	p.Parse([]string{"--verbose", "--tag=nightly"})

	tests := []struct {
		input    string
		expected string
	}{
		{"prot", "port"},      // registered param
		{"--prot", "port"},    // dashes in queries are ignored
		{"verbos", "verbose"}, // flag from the last parse
		{"tga", "tag"},        // param key from the last parse
		{"levle", "level"},
		{"port", ""}, // exact names need no suggestion
		{"zzz", ""},  // nothing close
		{"v", ""},    // too short to guess
	}

	for _, tt := range tests {
		if got := p.Suggest(tt.input); got != tt.expected {
			t.Errorf("Suggest(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestSuggestEmptyParser(t *testing.T) {
	p := New()
	if got := p.Suggest("anything"); got != "" {
		t.Errorf("Expected no suggestion from an empty parser, got %q", got)
	}
}
