package domain

import "testing"

func TestNormalizeText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "trim spaces", input: "  buy milk  ", want: "buy milk"},
		{name: "lowercase", input: "Buy Milk", want: "buy milk"},
		{name: "compress multiple spaces", input: "buy   milk", want: "buy milk"},
		{name: "tabs inside", input: "buy\t\tmilk", want: "buy milk"},
		{name: "diacritics preserved", input: "Café run", want: "café run"},
		{name: "apostrophes preserved", input: "don't forget", want: "don't forget"},
		{name: "empty string", input: "", want: ""},
		{name: "only spaces", input: "   ", want: ""},
		{name: "mixed", input: "  Buy   MILK  ", want: "buy milk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := NormalizeText(tt.input); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsDuplicate(t *testing.T) {
	t.Parallel()

	existing := []Todo{
		{ID: "a", Text: "Buy milk"},
		{ID: "b", Text: "  Walk   the dog "},
	}

	tests := []struct {
		name      string
		candidate string
		want      bool
	}{
		{name: "exact match", candidate: "Buy milk", want: true},
		{name: "case insensitive", candidate: "buy MILK", want: true},
		{name: "whitespace collapsed", candidate: " walk the  dog", want: true},
		{name: "different text", candidate: "Buy bread", want: false},
		{name: "empty never duplicate", candidate: "", want: false},
		{name: "whitespace only never duplicate", candidate: "   ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsDuplicate(tt.candidate, existing); got != tt.want {
				t.Errorf("IsDuplicate(%q) = %v, want %v", tt.candidate, got, tt.want)
			}
		})
	}
}

func TestIsDuplicate_EmptyList(t *testing.T) {
	t.Parallel()

	if IsDuplicate("anything", nil) {
		t.Error("IsDuplicate against an empty list should be false")
	}
}
