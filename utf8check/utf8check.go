// Package utf8check validates byte spans against RFC 3629: strict lead-byte
// ranges, continuation-byte form, and rejection of overlong encodings,
// surrogate codepoints, and codepoints beyond U+10FFFF.
package utf8check

import "fmt"

// Reason classifies why a byte span failed validation.
type Reason int

const (
	BadLeadByte Reason = iota
	TruncatedSequence
	BadContinuation
	OverlongEncoding
	SurrogateCodepoint
	CodepointOutOfRange
)

func (r Reason) String() string {
	switch r {
	case BadLeadByte:
		return "bad lead byte"
	case TruncatedSequence:
		return "truncated sequence"
	case BadContinuation:
		return "bad continuation byte"
	case OverlongEncoding:
		return "overlong encoding"
	case SurrogateCodepoint:
		return "surrogate codepoint"
	case CodepointOutOfRange:
		return "codepoint out of range"
	}
	return "unknown"
}

// DecodeError locates the first malformed sequence in a byte span. Offset
// is the position of the sequence's lead byte.
type DecodeError struct {
	Offset int
	Reason Reason
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid utf-8 at byte %d: %s", e.Offset, e.Reason)
}

// Check scans p left to right, without backtracking, and returns nil if it
// is well-formed UTF-8, or a *DecodeError for the first malformed sequence.
// An empty or nil span is valid. Check never allocates on valid input and
// never mutates p.
func Check(p []byte) error {
	i := 0
	for i < len(p) {
		b0 := p[i]

		// ASCII fast path.
		if b0 <= 0x7F {
			i++
			continue
		}

		var cp uint32
		var more int
		switch {
		case b0 >= 0xC2 && b0 <= 0xDF:
			more, cp = 1, uint32(b0&0x1F)
		case b0 >= 0xE0 && b0 <= 0xEF:
			more, cp = 2, uint32(b0&0x0F)
		case b0 >= 0xF0 && b0 <= 0xF4:
			more, cp = 3, uint32(b0&0x07)
		default:
			// Stray continuation (0x80-0xBF), overlong-only leads
			// (0xC0-0xC1), or 0xF5-0xFF.
			return &DecodeError{Offset: i, Reason: BadLeadByte}
		}

		if i+more >= len(p) {
			return &DecodeError{Offset: i, Reason: TruncatedSequence}
		}

		for j := 1; j <= more; j++ {
			bx := p[i+j]
			if bx&0xC0 != 0x80 {
				return &DecodeError{Offset: i, Reason: BadContinuation}
			}
			cp = cp<<6 | uint32(bx&0x3F)
		}

		switch more {
		case 1:
			if cp < 0x80 {
				return &DecodeError{Offset: i, Reason: OverlongEncoding}
			}
		case 2:
			if cp < 0x800 {
				return &DecodeError{Offset: i, Reason: OverlongEncoding}
			}
			if cp >= 0xD800 && cp <= 0xDFFF {
				return &DecodeError{Offset: i, Reason: SurrogateCodepoint}
			}
		case 3:
			if cp < 0x10000 {
				return &DecodeError{Offset: i, Reason: OverlongEncoding}
			}
			if cp > 0x10FFFF {
				return &DecodeError{Offset: i, Reason: CodepointOutOfRange}
			}
		}

		i += more + 1
	}
	return nil
}

// Valid reports whether p is well-formed UTF-8.
func Valid(p []byte) bool {
	return Check(p) == nil
}

// ValidString reports whether s is well-formed UTF-8.
func ValidString(s string) bool {
	return Check([]byte(s)) == nil
}
