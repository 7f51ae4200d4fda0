package normalizer

import (
	"errors"
	"testing"
)

func TestNewProcessor(t *testing.T) {
	p := NewProcessor()
	if p == nil {
		t.Fatal("NewProcessor returned nil")
	}
}

func TestProcessor_Process(t *testing.T) {
	p := NewProcessor()

	item, err := p.Process("Hello, World!")
	if err != nil {
		t.Fatalf("Process returned unexpected error: %v", err)
	}

	if item != "hello world" {
		t.Errorf("Process = %q, want %q", item, "hello world")
	}
}

func TestProcessor_Process_EmptyLine(t *testing.T) {
	p := NewProcessor()

	_, err := p.Process("")
	if !errors.Is(err, ErrEmptyLine) {
		t.Errorf("Process(\"\") = %v, want ErrEmptyLine", err)
	}
}

func TestProcessor_Process_Rejections(t *testing.T) {
	p := NewProcessor()

	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"short after normalization", "ab", ErrItemTooShort},
		{"symbols normalize to nothing", "!?!", ErrItemTooShort},
		{"no letters", "1 2 3", ErrItemNoLetter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Process(tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Process(%q) = %v, want %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
