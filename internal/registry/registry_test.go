package registry

import (
	"io"
	"testing"

	"github.com/simonhull/audiotag/internal/types"
)

// mockCodec implements Decoder and Encoder for testing.
type mockCodec struct {
	name string
}

func (m *mockCodec) Decode(data []byte, o *types.Options) (types.Tag, error) {
	return nil, nil
}

func (m *mockCodec) Encode(t types.Tag, o *types.Options) ([]byte, error) {
	return []byte(m.name), nil
}

func TestRegisterAndGet(t *testing.T) {
	// Use a format that's unlikely to conflict with real registrations
	format := types.Format(999)
	codec := &mockCodec{name: "test"}

	Register(format, codec)

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil for registered format")
	}

	mc, ok := got.(*mockCodec)
	if !ok {
		t.Fatal("Get() returned wrong decoder type")
	}
	if mc.name != "test" {
		t.Errorf("Decoder name = %q, want %q", mc.name, "test")
	}
}

func TestGet_Unregistered(t *testing.T) {
	format := types.Format(998)

	if got := Get(format); got != nil {
		t.Errorf("Get() = %v for unregistered format, want nil", got)
	}
	if got := GetEncoder(format); got != nil {
		t.Errorf("GetEncoder() = %v for unregistered format, want nil", got)
	}
}

func TestRegister_Overwrites(t *testing.T) {
	format := types.Format(997)

	Register(format, &mockCodec{name: "first"})
	Register(format, &mockCodec{name: "second"})

	mc, ok := Get(format).(*mockCodec)
	if !ok {
		t.Fatal("Get() returned wrong decoder type")
	}
	if mc.name != "second" {
		t.Errorf("Decoder name = %q, want %q (should be overwritten)", mc.name, "second")
	}
}

func TestRegisterEncoder(t *testing.T) {
	format := types.Format(995)
	RegisterEncoder(format, &mockCodec{name: "enc"})

	e := GetEncoder(format)
	if e == nil {
		t.Fatal("GetEncoder() returned nil for registered format")
	}
	got, err := e.Encode(nil, nil)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if string(got) != "enc" {
		t.Errorf("Encode() = %q, want %q", got, "enc")
	}
}

// mockReader implements both Decoder and Reader.
type mockReader struct {
	mockCodec
}

func (m *mockReader) Read(r io.ReaderAt, size int64, path string, o *types.Options) (types.Tag, error) {
	return nil, nil
}

func TestReaderInterface(t *testing.T) {
	format := types.Format(996)
	Register(format, &mockReader{mockCodec: mockCodec{name: "reader"}})

	got := Get(format)
	if got == nil {
		t.Fatal("Get() returned nil")
	}
	if _, ok := got.(Reader); !ok {
		t.Fatal("Decoder should implement Reader")
	}
}
