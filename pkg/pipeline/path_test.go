package pipeline

import (
	"errors"
	"testing"
)

func TestParsePath(t *testing.T) {
	segments, err := ParsePath("/this/is/the/path")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := []string{"this", "is", "the", "path"}
	if len(segments) != len(expected) {
		t.Fatalf("Expected segments %v, got %v", expected, segments)
	}
	for i := range expected {
		if segments[i] != expected[i] {
			t.Errorf("Expected segments[%d] to be %q, got %q", i, expected[i], segments[i])
		}
	}
}

func TestParsePathStripsEmptySegments(t *testing.T) {
	segments, err := ParsePath("/hello//world")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(segments) != 2 || segments[0] != "hello" || segments[1] != "world" {
		t.Errorf("Expected segments [hello world], got %v", segments)
	}
}

func TestParsePathRequiresLeadingSlash(t *testing.T) {
	_, err := ParsePath("this/is/the/path")
	if !errors.Is(err, ErrPathNoLeadingSlash) {
		t.Errorf("Expected ErrPathNoLeadingSlash, got %v", err)
	}
}

func TestParsePathRequiresNonEmpty(t *testing.T) {
	_, err := ParsePath("/")
	if !errors.Is(err, ErrPathEmpty) {
		t.Errorf("Expected ErrPathEmpty, got %v", err)
	}
}

func TestSplitPathToleratesMissingLeadingSlash(t *testing.T) {
	segments := SplitPath("example/path")
	if len(segments) != 2 || segments[0] != "example" || segments[1] != "path" {
		t.Errorf("Expected segments [example path], got %v", segments)
	}
}

func TestSegmentsHavePrefix(t *testing.T) {
	tests := []struct {
		name   string
		input  []string
		prefix []string
		want   bool
	}{
		{
			name:   "mismatched prefix",
			input:  []string{"api", "v1", "example"},
			prefix: []string{"api", "v2"},
			want:   false,
		},
		{
			name:   "equal length match",
			input:  []string{"api", "v2"},
			prefix: []string{"api", "v2"},
			want:   true,
		},
		{
			name:   "longer input",
			input:  []string{"api", "v2", "example", "path"},
			prefix: []string{"api", "v2"},
			want:   true,
		},
		{
			name:   "prefix longer than input",
			input:  []string{"api"},
			prefix: []string{"api", "v2"},
			want:   false,
		},
		{
			name:   "case sensitive",
			input:  []string{"API", "v2"},
			prefix: []string{"api", "v2"},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := segmentsHavePrefix(tt.input, tt.prefix); got != tt.want {
				t.Errorf("segmentsHavePrefix(%v, %v) = %v, want %v", tt.input, tt.prefix, got, tt.want)
			}
		})
	}
}
