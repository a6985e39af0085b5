package pi

import "encoding/binary"

// Header carries the metadata a PI container wraps around the body:
// screen geometry, plane count, palette, and a handful of fields kept
// only for diagnostic display. The core decoder trusts these values
// and never re-validates or re-reads hdr.Palette itself (the decoder
// produces palette indices, not colors).
type Header struct {
	Width, Height int
	Planes        int    // 4 or 8
	Mode          byte   // bit 7: palette data omitted from the file
	Ratio         float64
	Comment       string
	Editor        string // 4-byte "saver model" tag
	Palette       [][3]byte
	// BodyOffset is the byte offset, from the start of the file, at
	// which the compressed body begins.
	BodyOffset int
}

const magic = "Pi"

// ParseHeader parses a PI file's container and returns the header plus
// the body byte slice (data[hdr.BodyOffset:]).
func ParseHeader(data []byte) (*Header, []byte, error) {
	if len(data) < 2 || string(data[0:2]) != magic {
		return nil, nil, ErrNotAPiFile
	}

	cur := 2

	commentStart := cur
	for {
		if cur >= len(data) {
			return nil, nil, ErrHeaderTruncated
		}
		if data[cur] == 0x1A {
			break
		}
		cur++
	}
	comment := string(data[commentStart:cur])

	// Skip the editor-specific padding field: a run of bytes up to and
	// including the next 0x00. Semantics undocumented upstream;
	// preserved verbatim from original_source/pi.py.
	for {
		if cur >= len(data) {
			return nil, nil, ErrHeaderTruncated
		}
		if data[cur] == 0 {
			break
		}
		cur++
	}

	if cur+15 > len(data) {
		return nil, nil, ErrHeaderTruncated
	}

	mode := data[cur+1]
	n := data[cur+2]
	m := data[cur+3]
	planes := int(data[cur+4])
	if planes != 4 && planes != 8 {
		return nil, nil, ErrInvalidPlanes
	}

	ratio := 1.0
	if n != 0 || m != 0 {
		ratio = float64(n) / float64(m)
	}

	editor := string(data[cur+5 : cur+9])
	width := int(binary.BigEndian.Uint16(data[cur+11 : cur+13]))
	height := int(binary.BigEndian.Uint16(data[cur+13 : cur+15]))
	if width <= 0 || height <= 0 {
		return nil, nil, ErrInvalidDimensions
	}

	paletteSize := 16
	if planes == 8 {
		paletteSize = 256
	}

	paletteStart := cur + 15
	paletteEnd := paletteStart + 3*paletteSize
	if paletteEnd > len(data) {
		return nil, nil, ErrHeaderTruncated
	}
	raw := data[paletteStart:paletteEnd]

	palette := make([][3]byte, paletteSize)
	if allZero(raw) {
		copy(palette, defaultPaletteFor(planes))
	} else {
		for i := 0; i < paletteSize; i++ {
			copy(palette[i][:], raw[3*i:3*i+3])
		}
	}

	return &Header{
		Width:      width,
		Height:     height,
		Planes:     planes,
		Mode:       mode,
		Ratio:      ratio,
		Comment:    comment,
		Editor:     editor,
		Palette:    palette,
		BodyOffset: paletteEnd,
	}, data[paletteEnd:], nil
}

func allZero(b []byte) bool {
	for _, v := range b {
		if v != 0 {
			return false
		}
	}
	return true
}
