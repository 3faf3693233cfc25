package render

import (
	"context"
	"strings"
	"testing"

	"github.com/matzehuels/dotkit/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"dot", FormatDOT, false},
		{"svg", FormatSVG, false},
		{"png", FormatPNG, false},
		{"pdf", "", true},
		{"", "", true},
		{"SVG", "", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseFormat(%q) expected error", tt.input)
				}
				if !errors.Is(err, errors.ErrCodeUnsupported) {
					t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseFormat(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestRenderDOTPassthrough(t *testing.T) {
	src := "digraph G {\n  Node0;\n}\n"
	out, err := Render(context.Background(), src, FormatDOT)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if string(out) != src {
		t.Errorf("dot passthrough mutated source:\n%s", out)
	}
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := Render(context.Background(), "digraph G {}", Format("pdf"))
	if err == nil {
		t.Fatal("Render() expected error for unknown format")
	}
	if !errors.Is(err, errors.ErrCodeUnsupported) {
		t.Errorf("error code = %v, want UNSUPPORTED", errors.GetCode(err))
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<?xml version="1.0"?>
<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg">
<g></g>
</svg>`)

	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="100" height="50"`) {
		t.Errorf("dimensions not rewritten: %s", out)
	}
}

func TestNormalizeViewBoxNoMatch(t *testing.T) {
	in := []byte("<svg><g/></svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Errorf("input without viewBox should pass through unchanged: %s", got)
	}
}
