package pi

import (
	"errors"
	"testing"
)

func TestBitSourcePullMSBFirst(t *testing.T) {
	bs := NewBitSource([]byte{0b10110001, 0xFF, 0xFF, 0xFF})

	want := []int{1, 0, 1, 1, 0, 0, 0, 1}
	for i, w := range want {
		got, err := bs.Pull()
		if err != nil {
			t.Fatalf("Pull() at bit %d: unexpected error %v", i, err)
		}
		if got != w {
			t.Errorf("Pull() at bit %d = %d, want %d", i, got, w)
		}
	}
}

func TestBitSourceTrailingZeroTrim(t *testing.T) {
	// Last 4 bytes all zero: trimmed from the readable range.
	body := []byte{0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}
	bs := NewBitSource(body)

	if bs.limit != 8*len(body)-32 {
		t.Fatalf("limit = %d, want %d", bs.limit, 8*len(body)-32)
	}

	for i := 0; i < 16; i++ {
		if _, err := bs.Pull(); err != nil {
			t.Fatalf("Pull() at bit %d: unexpected error %v", i, err)
		}
	}
	if !bs.Eof() {
		t.Error("Eof() = false after consuming all non-trimmed bits, want true")
	}
	if _, err := bs.Pull(); err == nil {
		t.Error("Pull() past trimmed tail: want error, got nil")
	}
}

func TestBitSourceNoTrimUnderFourBytes(t *testing.T) {
	body := []byte{0x00, 0x00, 0x00}
	bs := NewBitSource(body)
	if bs.limit != 8*len(body) {
		t.Errorf("limit = %d, want %d (no trim under 4 bytes)", bs.limit, 8*len(body))
	}
}

func TestBitSourcePullBits(t *testing.T) {
	bs := NewBitSource([]byte{0b10110001})
	v, err := bs.PullBits(4)
	if err != nil {
		t.Fatalf("PullBits(4): unexpected error %v", err)
	}
	if v != 0b1011 {
		t.Errorf("PullBits(4) = %#b, want %#b", v, 0b1011)
	}
}

func TestBitSourceEofError(t *testing.T) {
	bs := NewBitSource([]byte{0xFF})
	for i := 0; i < 8; i++ {
		if _, err := bs.Pull(); err != nil {
			t.Fatalf("Pull() at bit %d: unexpected error %v", i, err)
		}
	}
	_, err := bs.Pull()
	if err == nil {
		t.Fatal("Pull() at EOF: want error, got nil")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("Pull() error type = %T, want *DecodeError", err)
	}
	if de.Kind != UnexpectedEnd {
		t.Errorf("Pull() error kind = %v, want %v", de.Kind, UnexpectedEnd)
	}
}
