package errors

import (
	"strings"
	"testing"
)

func TestValidateInputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"relative", "data/amazon-meta.txt", false},
		{"absolute", "/var/data/amazon-meta.txt.gz", false},
		{"json dataset", "graph.json", false},

		{"empty", "", true},
		{"whitespace", "   ", true},
		{"too long", strings.Repeat("a", 5000), true},
		{"null byte", "foo\x00bar", true},
		{"newline", "foo\nbar", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateInputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateInputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPath) {
				t.Errorf("ValidateInputPath(%q) code = %v, want %v", tt.input, GetCode(err), ErrCodeInvalidPath)
			}
		})
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"stdout", "", false},
		{"file", "report.json", false},
		{"directory", "out/", true},
		{"control char", "out\x01.svg", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidatePrecision(t *testing.T) {
	for _, p := range []int{0, 2, 12} {
		if err := ValidatePrecision(p); err != nil {
			t.Errorf("ValidatePrecision(%d) error = %v, want nil", p, err)
		}
	}
	for _, p := range []int{-1, 13} {
		if err := ValidatePrecision(p); err == nil {
			t.Errorf("ValidatePrecision(%d) error = nil, want error", p)
		}
	}
}
