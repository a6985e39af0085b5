package pi

// defaultPalette16 is substituted whenever a file's 16-color palette
// region is all zero bytes. Transcribed from the reference decoder's
// built-in table (original source, not the format's own
// documentation), dropping its fourth (alpha) byte since this format's
// palette model is RGB triples only. Indices 0 and 8 are both black
// here; the source table marks them transparent, but that alpha is
// dropped and RGBA always emits opaque pixels.
var defaultPalette16 = [][3]byte{
	{0x00, 0x00, 0x00},
	{0x00, 0x00, 0x70},
	{0x70, 0x00, 0x00},
	{0x70, 0x00, 0x70},
	{0x00, 0x70, 0x00},
	{0x00, 0x70, 0x70},
	{0x70, 0x70, 0x00},
	{0x70, 0x70, 0x70},
	{0x00, 0x00, 0x00},
	{0x00, 0x00, 0xF0},
	{0xF0, 0x00, 0x00},
	{0xF0, 0x00, 0xF0},
	{0x00, 0xF0, 0x00},
	{0x00, 0xF0, 0xF0},
	{0xF0, 0xF0, 0x00},
	{0xF0, 0xF0, 0xF0},
}

// defaultPalette256 is the 8-plane default-palette substitute. The
// reference decoder only documents a 16-entry default; this extends it
// with a 6x6x6 color cube plus a grayscale ramp to fill out 256 entries
// for 8-plane files whose palette region is all zero.
var defaultPalette256 = buildDefaultPalette256()

func buildDefaultPalette256() [][3]byte {
	levels := [6]byte{0x00, 0x33, 0x66, 0x99, 0xCC, 0xFF}
	p := make([][3]byte, 0, 256)
	p = append(p, defaultPalette16...)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p = append(p, [3]byte{levels[r], levels[g], levels[b]})
			}
		}
	}
	for len(p) < 256 {
		gray := byte(len(p) - 16)
		p = append(p, [3]byte{gray, gray, gray})
	}
	return p[:256]
}

func defaultPaletteFor(planes int) [][3]byte {
	if planes == 8 {
		return defaultPalette256
	}
	return defaultPalette16
}

// Palette maps decoded palette indices to packed RGBA pixels.
type Palette [][3]byte

// RGBA expands a row-major slice of palette indices into a packed
// RGBA byte slice (4 bytes per pixel, alpha always 0xFF).
func (p Palette) RGBA(indices []byte) []byte {
	out := make([]byte, 4*len(indices))
	for i, idx := range indices {
		c := [3]byte{0, 0, 0}
		if int(idx) < len(p) {
			c = p[idx]
		}
		out[4*i+0] = c[0]
		out[4*i+1] = c[1]
		out[4*i+2] = c[2]
		out[4*i+3] = 0xFF
	}
	return out
}
