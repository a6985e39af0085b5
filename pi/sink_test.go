package pi

import "testing"

func TestSliceSinkFillFromIndices(t *testing.T) {
	pal := Palette{
		{0x10, 0x20, 0x30},
		{0x40, 0x50, 0x60},
	}
	indices := []byte{0, 1, 1, 0}
	sink := NewSliceSink(2, 2)

	FillFromIndices(sink, pal, indices, 2, 2)

	want := []byte{
		0x10, 0x20, 0x30, 0xFF,
		0x40, 0x50, 0x60, 0xFF,
		0x40, 0x50, 0x60, 0xFF,
		0x10, 0x20, 0x30, 0xFF,
	}
	if string(sink.Pix) != string(want) {
		t.Errorf("Pix = %v, want %v", sink.Pix, want)
	}
}

func TestSliceSinkSetOutOfBoundsIgnored(t *testing.T) {
	sink := NewSliceSink(1, 1)
	sink.Set(5, 5, [4]byte{1, 2, 3, 4})
	want := []byte{0, 0, 0, 0}
	if string(sink.Pix) != string(want) {
		t.Errorf("Pix after out-of-bounds Set = %v, want %v", sink.Pix, want)
	}
}

func TestPaletteRGBAOutOfRangeIndex(t *testing.T) {
	pal := Palette{{1, 2, 3}}
	out := pal.RGBA([]byte{0, 5})
	want := []byte{1, 2, 3, 0xFF, 0, 0, 0, 0xFF}
	if string(out) != string(want) {
		t.Errorf("RGBA() = %v, want %v", out, want)
	}
}
