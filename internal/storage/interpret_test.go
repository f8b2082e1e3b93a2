package storage

import "testing"

// TestInterpretLengthDispatch verifies the fixed-format rendering for
// every length bucket in the dispatch table.
func TestInterpretLengthDispatch(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"nil", nil, "Empty"},
		{"empty", []byte{}, "Empty"},
		{"bool false", []byte{0}, "bool: false"},
		{"bool true", []byte{1}, "bool: true"},
		{"u8", []byte{2}, "u8: 2"},
		{"u8 max", []byte{255}, "u8: 255"},
		{"u16 little-endian", []byte{0x01, 0x02}, "u16: 513"},
		{"u16 max", []byte{0xff, 0xff}, "u16: 65535"},
		{"u32 little-endian", []byte{25, 0, 0, 0}, "u32: 25"},
		{"u32 high byte", []byte{0, 0, 0, 1}, "u32: 16777216"},
		{"u64 little-endian", []byte{1, 0, 0, 0, 0, 0, 0, 0}, "u64: 1"},
		{"u64 max", []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}, "u64: 18446744073709551615"},
		{"utf8 string", []byte("Alice"), "String: Alice"},
		{"utf8 multibyte", []byte("héllo"), "String: héllo"},
		{"invalid utf8", []byte{0xff, 0xfe, 0x01}, "Raw bytes: [255 254 1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Interpret(tt.in)
			if got != tt.want {
				t.Errorf("Interpret(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

// TestInterpretBooleanPrecedence verifies that single bytes 0 and 1 take
// the boolean form, never the u8 form.
func TestInterpretBooleanPrecedence(t *testing.T) {
	for _, b := range []byte{0, 1} {
		got := Classify([]byte{b})
		if got.Kind != KindBool {
			t.Errorf("Classify([%d]) kind = %d, want KindBool", b, got.Kind)
		}
	}
	if got := Classify([]byte{2}); got.Kind != KindUint8 {
		t.Errorf("Classify([2]) kind = %d, want KindUint8", got.Kind)
	}
}

// TestInterpretAmbiguousLengths documents the intentional lossiness:
// 4-byte text is rendered as u32, not as a string.
func TestInterpretAmbiguousLengths(t *testing.T) {
	got := Interpret([]byte("abcd"))
	// "abcd" little-endian = 0x64636261
	want := "u32: 1684234849"
	if got != want {
		t.Errorf("Interpret(\"abcd\") = %q, want %q", got, want)
	}
}

// TestInterpretIsTotal feeds a spread of lengths and contents and checks
// that a rendering is always produced.
func TestInterpretIsTotal(t *testing.T) {
	for size := 0; size < 32; size++ {
		b := make([]byte, size)
		for i := range b {
			b[i] = byte(i * 37)
		}
		if got := Interpret(b); got == "" {
			t.Errorf("Interpret(len %d) returned empty rendering", size)
		}
	}
}
