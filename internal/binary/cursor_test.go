package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestCursor_Sequential(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x00, 0x00, 0x01, 0x00, 0x00, 0x02, 0x01, 'A', 'B'})

	v8, err := c.Uint8("first byte")
	if err != nil || v8 != 0x01 {
		t.Fatalf("Uint8() = %#x, %v, want 0x01, nil", v8, err)
	}

	v32, err := c.Uint32("word")
	if err != nil || v32 != 0x00000100 {
		t.Fatalf("Uint32() = %#x, %v, want 0x100, nil", v32, err)
	}

	ss, err := c.Synchsafe("synchsafe")
	if err != nil {
		t.Fatalf("Synchsafe() error = %v", err)
	}
	// 0x00 0x02 0x01 0x41 -> 2<<7 | 1 ... the last byte is 'A' (0x41)
	if want := uint32(0x02)<<14 | uint32(0x01)<<7 | 0x41; ss != want {
		t.Errorf("Synchsafe() = %d, want %d", ss, want)
	}

	if c.Remaining() != 1 {
		t.Errorf("Remaining() = %d, want 1", c.Remaining())
	}
	if got := c.Rest(); !bytes.Equal(got, []byte("B")) {
		t.Errorf("Rest() = %q, want %q", got, "B")
	}
	if c.Remaining() != 0 {
		t.Errorf("Remaining() after Rest = %d, want 0", c.Remaining())
	}
}

func TestCursor_OutOfBounds(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})

	if _, err := c.Next(3, "frame header"); err == nil {
		t.Fatal("Next() error = nil, want bounds error")
	} else {
		var be *BoundsError
		if !errors.As(err, &be) {
			t.Fatalf("Next() error = %T, want *BoundsError", err)
		}
		if be.What != "frame header" {
			t.Errorf("BoundsError.What = %q, want %q", be.What, "frame header")
		}
	}

	if c.Offset() != 0 {
		t.Errorf("Offset() after failed read = %d, want 0", c.Offset())
	}

	peek, err := c.Peek(2, "peek")
	if err != nil || !bytes.Equal(peek, []byte{0x01, 0x02}) {
		t.Errorf("Peek() = %v, %v, want [1 2], nil", peek, err)
	}
	if err := c.Skip(-1, "negative"); err == nil {
		t.Error("Skip(-1) error = nil, want bounds error")
	}
}

func TestUnsync(t *testing.T) {
	tests := []struct {
		name   string
		raw    []byte
		synced []byte
	}{
		{"no false sync", []byte{0x01, 0xFF, 0x10}, []byte{0x01, 0xFF, 0x10}},
		{"false sync", []byte{0xFF, 0xE0}, []byte{0xFF, 0x00, 0xE0}},
		{"ff00", []byte{0xFF, 0x00}, []byte{0xFF, 0x00, 0x00}},
		{"trailing ff", []byte{0x01, 0xFF}, []byte{0x01, 0xFF, 0x00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyUnsync(tt.raw)
			if !bytes.Equal(got, tt.synced) {
				t.Errorf("ApplyUnsync() = %v, want %v", got, tt.synced)
			}
			if back := RemoveUnsync(got); !bytes.Equal(back, tt.raw) {
				t.Errorf("RemoveUnsync() = %v, want %v", back, tt.raw)
			}
		})
	}
}

func TestUint24(t *testing.T) {
	if got := DecodeUint24([]byte{0x01, 0x02, 0x03}); got != 0x010203 {
		t.Errorf("DecodeUint24() = %#x, want 0x010203", got)
	}
	if got := DecodeUint24([]byte{0x01}); got != 0 {
		t.Errorf("DecodeUint24(short) = %d, want 0", got)
	}
	if got := EncodeUint24(0xABCDEF); !bytes.Equal(got, []byte{0xAB, 0xCD, 0xEF}) {
		t.Errorf("EncodeUint24() = %v, want [AB CD EF]", got)
	}
}

func TestCursor_Uint32LE(t *testing.T) {
	c := NewCursor([]byte{0x04, 0x03, 0x02, 0x01, 0xFF})
	v, err := c.Uint32LE("vendor length")
	if err != nil || v != 0x01020304 {
		t.Fatalf("Uint32LE() = %#x, %v, want 0x01020304, nil", v, err)
	}
	if _, err := c.Uint32LE("short"); err == nil {
		t.Error("Uint32LE() on 1 byte error = nil, want bounds error")
	}
}
