package strbuf

import "testing"

func TestStripBOM(t *testing.T) {
	tests := []struct {
		name     string
		input    []byte
		stripped bool
		expected string
	}{
		{"bom then text", []byte{0xEF, 0xBB, 0xBF, 'h', 'i'}, true, "hi"},
		{"bom only", []byte{0xEF, 0xBB, 0xBF}, true, ""},
		{"no bom", []byte("hi"), false, "hi"},
		{"partial bom", []byte{0xEF, 0xBB}, false, "\xEF\xBB"},
		{"bom-like mid string", []byte{'x', 0xEF, 0xBB, 0xBF}, false, "x\xEF\xBB\xBF"},
		{"empty", nil, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromBytes(tt.input)
			if got := b.StripBOM(); got != tt.stripped {
				t.Errorf("StripBOM() = %v, want %v", got, tt.stripped)
			}
			if b.String() != tt.expected {
				t.Errorf("content %q, want %q", b.String(), tt.expected)
			}
		})
	}
}

func TestStripBOMIdempotent(t *testing.T) {
	b := NewFromBytes([]byte{0xEF, 0xBB, 0xBF, 'h', 'i'})
	if !b.StripBOM() {
		t.Fatal("first StripBOM returned false")
	}
	if b.StripBOM() {
		t.Error("second StripBOM returned true")
	}
	if b.String() != "hi" {
		t.Errorf("content %q after double strip, want %q", b.String(), "hi")
	}
}

func TestStripTrailingCRLF(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"crlf", "Hello\r\n", "Hello"},
		{"lf", "Hello\n", "Hello"},
		{"cr", "Hello\r", "Hello"},
		{"repeated crlf", "Hello\r\n\r\n", "Hello"},
		{"mixed tail", "Hello\n\r\r\n", "Hello"},
		{"no trailing", "Hello", "Hello"},
		{"interior newline kept", "a\nb\n", "a\nb"},
		{"only newlines", "\r\n\r\n", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewFromString(tt.input)
			b.StripTrailingCRLF()
			if b.String() != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, b.String())
			}

			// Stripping again must not change anything further.
			b.StripTrailingCRLF()
			if b.String() != tt.expected {
				t.Errorf("second strip changed content to %q", b.String())
			}
		})
	}
}

func TestNormalizersNeverGrow(t *testing.T) {
	b := NewFromBytes([]byte{0xEF, 0xBB, 0xBF, 'h', 'i', '\r', '\n'})
	prevCap := b.Cap()
	b.StripBOM()
	b.StripTrailingCRLF()
	if b.Cap() != prevCap {
		t.Errorf("normalizers changed capacity from %d to %d", prevCap, b.Cap())
	}
	if b.String() != "hi" {
		t.Errorf("content %q, want %q", b.String(), "hi")
	}
}

func TestNormalizeThenValidate(t *testing.T) {
	b := NewFromBytes([]byte{0xEF, 0xBB, 0xBF, 'o', 'k', '\r', '\n'})
	b.StripBOM()
	b.StripTrailingCRLF()
	if !b.Valid() {
		t.Error("normalized buffer reported invalid")
	}
	if b.String() != "ok" {
		t.Errorf("content %q, want %q", b.String(), "ok")
	}
}
