package pi

// positionCode selects the relative source of a 2-dot block copy. The
// original decoder's dispatch table of handler methods is replaced here
// with a plain int switch in RepeatEngine.Copy, per spec §9's redesign
// note.
type positionCode int

const (
	posTile positionCode = iota
	posOneLine
	posTwoLines
	posOneLineRight
	posOneLineLeft
	// posNone is a sentinel that never equals any decoded position
	// code; it is used both before the first repeat instruction and,
	// for exactly one following instruction, right after an accepted
	// code-0 (tile) repeat, to suppress the position-equality rule.
	posNone positionCode = -1
)

// positionPrefix is one entry of the position-code prefix table.
type positionPrefix struct {
	bits []int
	code positionCode
}

var positionPrefixes = []positionPrefix{
	{bits: []int{0, 0}, code: posTile},
	{bits: []int{0, 1}, code: posOneLine},
	{bits: []int{1, 0}, code: posTwoLines},
	{bits: []int{1, 1, 0}, code: posOneLineRight},
	{bits: []int{1, 1, 1}, code: posOneLineLeft},
}

// RepeatEngine decodes block-copy instructions (position + length) and
// performs the copy against the caller's pixel grid.
type RepeatEngine struct {
	prevPosCode     positionCode
	firstLengthSeen bool
}

// NewRepeatEngine returns a RepeatEngine with no prior instruction.
func NewRepeatEngine() *RepeatEngine {
	return &RepeatEngine{prevPosCode: posNone}
}

func (r *RepeatEngine) decodePosition(bs *BitSource) (positionCode, error) {
	start := bs.Offset()
	var matched []int
	for len(matched) < 3 {
		bit, err := bs.Pull()
		if err != nil {
			return 0, err
		}
		matched = append(matched, bit)
		for _, pp := range positionPrefixes {
			if prefixEqual(pp.bits, matched) {
				return pp.code, nil
			}
		}
	}
	return 0, wrapDecodeError(InvalidPrefix, start, "no position prefix matched bits %v", matched)
}

// decodeLength reads a unary-terminated Elias-gamma-like length: i
// leading zero bits, then a terminating 1, then i further MSB-first
// bits t; length = (1<<i) + t.
func (r *RepeatEngine) decodeLength(bs *BitSource) (int, error) {
	i := 0
	for {
		bit, err := bs.Pull()
		if err != nil {
			return 0, err
		}
		if bit == 1 {
			break
		}
		i++
	}
	t, err := bs.PullBits(i)
	if err != nil {
		return 0, err
	}
	length := (1 << uint(i)) + t
	if !r.firstLengthSeen {
		length--
		r.firstLengthSeen = true
	}
	return length, nil
}

// DecodeInstruction reads one repeat instruction. ok is false when the
// position-equality rule voided it (position equals the previous
// accepted position); the caller must fall back to EMIT_PAIR in that
// case, without performing any copy.
func (r *RepeatEngine) DecodeInstruction(bs *BitSource) (code positionCode, length int, ok bool, err error) {
	code, err = r.decodePosition(bs)
	if err != nil {
		return 0, 0, false, err
	}
	length, err = r.decodeLength(bs)
	if err != nil {
		return 0, 0, false, err
	}

	if code == r.prevPosCode {
		return code, length, false, nil
	}

	if code == posTile {
		// Suppress the equality rule for exactly the next instruction.
		r.prevPosCode = posNone
	} else {
		r.prevPosCode = code
	}
	return code, length, true, nil
}

// Copy performs the block copy named by code, writing length 2-dot
// blocks starting at cursor w and returning the cursor's new value.
func (r *RepeatEngine) Copy(grid *pixelGrid, w int, code positionCode, length int) int {
	if code == posTile {
		return r.copyTile(grid, w, length)
	}

	var off0, off1 int
	switch code {
	case posOneLine:
		off0, off1 = -grid.width, -grid.width+1
	case posTwoLines:
		off0, off1 = -2*grid.width, -2*grid.width+1
	case posOneLineRight:
		off0, off1 = -grid.width+1, -grid.width+2
	case posOneLineLeft:
		off0, off1 = -grid.width-1, -grid.width
	}

	for i := 0; i < length; i++ {
		src0 := w + off0
		src1 := w + off1
		grid.set(w, grid.dotAt(src0, 0))
		grid.set(w+1, grid.dotAt(src1, 1))
		w += 2
	}
	return w
}

// copyTile implements position 0, "a little special": inspect the
// previous two emitted pixels. If they are equal, or fewer than 4
// pixels have been emitted so far, tile width is 2 (repeat the
// previous 2 pixels); otherwise tile width is 4 (repeat the previous 4
// pixels cyclically).
func (r *RepeatEngine) copyTile(grid *pixelGrid, w int, length int) int {
	size := 4
	if w < 4 || grid.dotAt(w-1, 0) == grid.dotAt(w-2, 0) {
		size = 2
	}

	tile := make([]byte, size)
	for i := 0; i < size; i++ {
		tile[i] = grid.dotAt(w-size+i, 0)
	}

	for i := 0; i < length*2; i++ {
		grid.set(w, tile[i%size])
		w++
	}
	return w
}
