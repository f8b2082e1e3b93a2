package storage

import (
	"encoding/binary"
	"fmt"
	"unicode/utf8"
)

// Kind identifies which rendering a byte sequence was classified as.
type Kind int

const (
	KindEmpty Kind = iota
	KindBool
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindText
	KindRaw
)

// Rendering is the typed best-guess interpretation of a raw byte sequence.
// Exactly one payload field is meaningful, selected by Kind.
type Rendering struct {
	Kind Kind
	Bool bool
	Uint uint64
	Text string
	Raw  []byte
}

// Classify maps an arbitrary byte sequence to a Rendering. It is total:
// every input, including nil, produces a result. Dispatch is on length
// alone, first match wins:
//
//	0 bytes         → Empty
//	1 byte, 0 or 1  → Bool
//	1 byte          → Uint8
//	2 bytes         → Uint16, little-endian
//	4 bytes         → Uint32, little-endian
//	8 bytes         → Uint64, little-endian
//	other, UTF-8    → Text
//	other           → Raw
//
// The thresholds and byte order are a compatibility contract: a 4-byte
// string and a u32 are indistinguishable, and that ambiguity is accepted.
func Classify(b []byte) Rendering {
	switch len(b) {
	case 0:
		return Rendering{Kind: KindEmpty}
	case 1:
		if b[0] == 0 || b[0] == 1 {
			return Rendering{Kind: KindBool, Bool: b[0] == 1}
		}
		return Rendering{Kind: KindUint8, Uint: uint64(b[0])}
	case 2:
		return Rendering{Kind: KindUint16, Uint: uint64(binary.LittleEndian.Uint16(b))}
	case 4:
		return Rendering{Kind: KindUint32, Uint: uint64(binary.LittleEndian.Uint32(b))}
	case 8:
		return Rendering{Kind: KindUint64, Uint: binary.LittleEndian.Uint64(b)}
	default:
		if utf8.Valid(b) {
			return Rendering{Kind: KindText, Text: string(b)}
		}
		return Rendering{Kind: KindRaw, Raw: b}
	}
}

// String formats the rendering for display.
func (r Rendering) String() string {
	switch r.Kind {
	case KindEmpty:
		return "Empty"
	case KindBool:
		return fmt.Sprintf("bool: %t", r.Bool)
	case KindUint8:
		return fmt.Sprintf("u8: %d", r.Uint)
	case KindUint16:
		return fmt.Sprintf("u16: %d", r.Uint)
	case KindUint32:
		return fmt.Sprintf("u32: %d", r.Uint)
	case KindUint64:
		return fmt.Sprintf("u64: %d", r.Uint)
	case KindText:
		return fmt.Sprintf("String: %s", r.Text)
	default:
		return fmt.Sprintf("Raw bytes: %v", r.Raw)
	}
}

// Interpret produces the display rendering for a raw byte sequence.
func Interpret(b []byte) string {
	return Classify(b).String()
}
