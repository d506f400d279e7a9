package binary

import (
	"bytes"
	"errors"
	"testing"
)

func TestSafeWriter_Write(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := Write[uint8](sw, 0x01); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Write[uint16](sw, 0x0203); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := Write[uint32](sw, 0x04050607); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
	if sw.Offset() != 7 {
		t.Errorf("expected offset 7, got %d", sw.Offset())
	}
}

func TestSafeWriter_WriteString(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := sw.WriteString("ID3"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != "ID3" {
		t.Errorf("expected ID3, got %q", buf.String())
	}
}

func TestSafeWriter_WriteSynchsafe(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := sw.WriteSynchsafe(257); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []byte{0x00, 0x00, 0x02, 0x01}
	if !bytes.Equal(buf.Bytes(), expected) {
		t.Errorf("expected %v, got %v", expected, buf.Bytes())
	}
}

func TestSafeWriter_WriteZeros(t *testing.T) {
	buf := &bytes.Buffer{}
	sw := NewSafeWriter(buf)

	if err := sw.WriteZeros(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := sw.WriteZeros(16); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), make([]byte, 16)) {
		t.Errorf("expected 16 zero bytes, got %v", buf.Bytes())
	}
	if sw.Offset() != 16 {
		t.Errorf("expected offset 16, got %d", sw.Offset())
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestSafeWriter_PropagatesErrors(t *testing.T) {
	sw := NewSafeWriter(failingWriter{})

	if err := sw.WriteBytes([]byte("x")); err == nil {
		t.Fatal("expected error, got nil")
	}
	if sw.Offset() != 0 {
		t.Errorf("offset should not advance on failed write, got %d", sw.Offset())
	}
}
