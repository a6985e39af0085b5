package pi

// Decoder drives the body bit stream through the EMIT_PAIR/REPEAT
// state machine described by the format, writing palette indices into
// a row-major pixel grid.
type Decoder struct {
	bits      *BitSource
	predictor *ColorPredictor
	repeat    *RepeatEngine
	grid      *pixelGrid
}

// NewDecoder constructs a Decoder for the given header and body bytes.
// The header is trusted as-is (validated upstream by ParseHeader); the
// core never inspects hdr.Palette.
func NewDecoder(hdr *Header, body []byte) *Decoder {
	return &Decoder{
		bits:      NewBitSource(body),
		predictor: NewColorPredictor(hdr.Planes),
		repeat:    NewRepeatEngine(),
		grid:      newPixelGrid(hdr.Width, hdr.Height),
	}
}

// Decode runs the decoder to completion and returns the palette-index
// grid, row-major, one byte per pixel. If the stream ends before every
// pixel is produced, it returns TruncatedStream alongside a
// best-effort partial image (remaining pixels are palette index 0).
func (d *Decoder) Decode() ([]byte, error) {
	target := d.grid.size()

	// The initial EMIT_PAIR is unconditional: exactly one pair, no
	// continuation bit, then fall straight through to REPEAT.
	w, err := d.emitOnePair(0)
	if err != nil {
		return d.partial(), err
	}

	for w < target && !d.bits.Eof() {
		w, err = d.repeatPhase(w, target)
		if err != nil {
			return d.partial(), err
		}
		if w >= target || d.bits.Eof() {
			break
		}

		w, err = d.emitPair(w, target)
		if err != nil {
			return d.partial(), err
		}
	}

	if w < target {
		return d.partial(), newDecodeError(TruncatedStream, d.bits.Offset())
	}
	return d.grid.data, nil
}

// emitOnePair decodes exactly one 2-dot color pair via the predictor
// and writes it at w, w+1.
func (d *Decoder) emitOnePair(w int) (int, error) {
	c1, err := d.predictor.DecodeColor(d.bits)
	if err != nil {
		return w, err
	}
	c2, err := d.predictor.DecodeColor(d.bits)
	if err != nil {
		return w, err
	}
	d.grid.set(w, byte(c1))
	d.grid.set(w+1, byte(c2))
	return w + 2, nil
}

// emitPair runs the EMIT_PAIR state: emit one pair, then read a
// continuation bit that decides whether to emit another pair (1) or
// fall through to REPEAT (0).
func (d *Decoder) emitPair(w int, target int) (int, error) {
	for {
		var err error
		w, err = d.emitOnePair(w)
		if err != nil {
			return w, err
		}

		if w >= target || d.bits.Eof() {
			return w, nil
		}

		cont, err := d.bits.Pull()
		if err != nil {
			return w, err
		}
		if cont == 0 {
			return w, nil
		}
	}
}

// repeatPhase repeatedly decodes and performs block copies until the
// position-equality rule voids an instruction (handing control back to
// EMIT_PAIR) or the grid/stream is exhausted.
func (d *Decoder) repeatPhase(w int, target int) (int, error) {
	for w < target && !d.bits.Eof() {
		code, length, ok, err := d.repeat.DecodeInstruction(d.bits)
		if err != nil {
			return w, err
		}
		if !ok {
			return w, nil
		}
		w = d.repeat.Copy(d.grid, w, code, length)
	}
	return w, nil
}

// partial returns the pixel data produced so far; unreached pixels
// keep their zero-initialized (palette index 0) value.
func (d *Decoder) partial() []byte {
	return d.grid.data
}

// Decode is a convenience entry point combining header parsing and
// body decoding. It returns the decoded palette-index grid along with
// the parsed header.
func Decode(data []byte) ([]byte, *Header, error) {
	hdr, body, err := ParseHeader(data)
	if err != nil {
		return nil, nil, err
	}
	pixels, err := NewDecoder(hdr, body).Decode()
	return pixels, hdr, err
}
