package binary

import (
	"bytes"
	"testing"
)

func TestSafeWriter_WriteUint32BE(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	err := Write[uint32](sw, 0x12345678)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x12, 0x34, 0x56, 0x78}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
}

func TestSafeWriter_Offset(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	// Initial offset should be 0
	if sw.Offset() != 0 {
		t.Errorf("expected initial offset 0, got %d", sw.Offset())
	}

	// Write uint8 (1 byte)
	err := Write[uint8](sw, 0x01)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.Offset() != 1 {
		t.Errorf("expected offset 1 after writing uint8, got %d", sw.Offset())
	}

	// Write uint16 (2 bytes)
	err = Write[uint16](sw, 0x0203)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.Offset() != 3 {
		t.Errorf("expected offset 3 after writing uint16, got %d", sw.Offset())
	}

	// Write uint32 (4 bytes)
	err = Write[uint32](sw, 0x04050607)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.Offset() != 7 {
		t.Errorf("expected offset 7 after writing uint32, got %d", sw.Offset())
	}

	// Write uint64 (8 bytes)
	err = Write[uint64](sw, 0x08090A0B0C0D0E0F)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sw.Offset() != 15 {
		t.Errorf("expected offset 15 after writing uint64, got %d", sw.Offset())
	}
}

func TestSafeWriter_WriteString(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	err := sw.WriteString("test")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte("test")
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}

	if sw.Offset() != 4 {
		t.Errorf("expected offset 4 after writing string, got %d", sw.Offset())
	}
}

func TestSafeWriter_WriteBytes(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	data := []byte{0xDE, 0xAD, 0xBE, 0xEF}
	err := sw.WriteBytes(data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !bytes.Equal(buf.Bytes(), data) {
		t.Errorf("expected %v, got %v", data, buf.Bytes())
	}

	if sw.Offset() != 4 {
		t.Errorf("expected offset 4, got %d", sw.Offset())
	}
}

func TestSafeWriter_WriteUint8(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	err := Write[uint8](sw, 0x42)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x42}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
}

func TestSafeWriter_WriteUint16BE(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	err := Write[uint16](sw, 0xABCD)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Big-endian: most significant byte first
	expected := []byte{0xAB, 0xCD}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
}

func TestSafeWriter_WriteUint64BE(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	err := Write[uint64](sw, 0x0102030405060708)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
}

func TestSafeWriter_MultipleWrites(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	// Write a mix of types
	_ = Write[uint8](sw, 0x01)
	_ = Write[uint16](sw, 0x0203)
	_ = sw.WriteString("AB")
	_ = Write[uint32](sw, 0x04050607)

	expected := []byte{0x01, 0x02, 0x03, 'A', 'B', 0x04, 0x05, 0x06, 0x07}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}

	if sw.Offset() != 9 {
		t.Errorf("expected offset 9, got %d", sw.Offset())
	}
}

func TestSafeWriter_WriteSynchsafe(t *testing.T) {
	tests := []struct {
		name    string
		value   uint32
		want    []byte
		wantErr bool
	}{
		{"zero", 0, []byte{0, 0, 0, 0}, false},
		{"127", 127, []byte{0, 0, 0, 0x7F}, false},
		{"128", 128, []byte{0, 0, 0x01, 0x00}, false},
		{"max", MaxSynchsafe, []byte{0x7F, 0x7F, 0x7F, 0x7F}, false},
		{"overflow", MaxSynchsafe + 1, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			sw := NewSafeWriter(buf)
			err := sw.WriteSynchsafe(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("WriteSynchsafe() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if !bytes.Equal(buf.Bytes(), tt.want) {
				t.Errorf("WriteSynchsafe() = %v, want %v", buf.Bytes(), tt.want)
			}
			if got := DecodeSynchsafe(buf.Bytes()); got != tt.value {
				t.Errorf("DecodeSynchsafe() = %d, want %d", got, tt.value)
			}
		})
	}
}

func TestSafeWriter_WriteUint24(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := sw.WriteUint24(0x123456); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := []byte{0x12, 0x34, 0x56}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
	if got := DecodeUint24(buf.Bytes()); got != 0x123456 {
		t.Errorf("DecodeUint24() = %#x, want %#x", got, 0x123456)
	}

	if err := sw.WriteUint24(MaxUint24 + 1); err == nil {
		t.Error("expected error for value above 24 bits")
	}
}

func TestSafeWriter_WriteZeros(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := sw.WriteZeros(5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), make([]byte, 5)) {
		t.Errorf("expected 5 zero bytes, got %v", buf.Bytes())
	}
	if sw.Offset() != 5 {
		t.Errorf("expected offset 5, got %d", sw.Offset())
	}
}
