package pi

import "testing"

// TestRepeatEngineCodeZeroDistinctTile is half of seed scenario 6:
// four prior pixels a,b,a,b (a != b) under a code-0 length-2
// instruction must reproduce a,b,a,b (tile width 4, cyclic).
func TestRepeatEngineCodeZeroDistinctTile(t *testing.T) {
	g := newPixelGrid(8, 1)
	copy(g.data, []byte{1, 2, 1, 2})
	r := NewRepeatEngine()

	w := r.Copy(g, 4, posTile, 2)

	want := []byte{1, 2, 1, 2, 1, 2, 1, 2}
	if string(g.data) != string(want) {
		t.Errorf("grid = %v, want %v", g.data, want)
	}
	if w != 8 {
		t.Errorf("cursor = %d, want 8", w)
	}
}

// TestRepeatEngineCodeZeroEqualTile is the other half: four prior
// pixels a,a,a,a must still reproduce a,a,a,a via the size=2 branch.
func TestRepeatEngineCodeZeroEqualTile(t *testing.T) {
	g := newPixelGrid(8, 1)
	copy(g.data, []byte{3, 3, 3, 3})
	r := NewRepeatEngine()

	r.Copy(g, 4, posTile, 2)

	want := []byte{3, 3, 3, 3, 3, 3, 3, 3}
	if string(g.data) != string(want) {
		t.Errorf("grid = %v, want %v", g.data, want)
	}
}

func TestRepeatEnginePositionEqualityVoidsInstruction(t *testing.T) {
	bw := &bitWriter{}
	bw.push(0, 1) // position 1 (one line above)
	bw.push(1)    // length code "1" -> raw length 1
	bw.push(0, 1) // position 1 again
	bw.push(1)    // length code "1"
	bs := NewBitSource(bw.bytes())

	r := NewRepeatEngine()

	code, _, ok, err := r.DecodeInstruction(bs)
	if err != nil {
		t.Fatalf("first DecodeInstruction: unexpected error %v", err)
	}
	if !ok || code != posOneLine {
		t.Fatalf("first DecodeInstruction = (%v, ok=%v), want (posOneLine, true)", code, ok)
	}

	_, _, ok, err = r.DecodeInstruction(bs)
	if err != nil {
		t.Fatalf("second DecodeInstruction: unexpected error %v", err)
	}
	if ok {
		t.Error("second DecodeInstruction with repeated position code: want ok=false (voided)")
	}
}

func TestRepeatEngineCodeZeroSuppressesEqualityOnce(t *testing.T) {
	bw := &bitWriter{}
	bw.push(0, 0) // position 0 (tile)
	bw.push(1)    // length "1" -> raw 1, minus one-time adjustment -> 0
	bw.push(0, 0) // position 0 again
	bw.push(1)    // length "1"
	bs := NewBitSource(bw.bytes())

	r := NewRepeatEngine()

	_, _, ok, err := r.DecodeInstruction(bs)
	if err != nil {
		t.Fatalf("first DecodeInstruction: unexpected error %v", err)
	}
	if !ok {
		t.Fatal("first DecodeInstruction: want ok=true")
	}

	code, _, ok, err := r.DecodeInstruction(bs)
	if err != nil {
		t.Fatalf("second DecodeInstruction: unexpected error %v", err)
	}
	if !ok || code != posTile {
		t.Errorf("second DecodeInstruction after code 0 = (%v, ok=%v), want (posTile, true)", code, ok)
	}
}

func TestRepeatEngineLengthOneTimeAdjustment(t *testing.T) {
	bw := &bitWriter{}
	bw.push(0, 0)       // position 0 (tile)
	bw.push(0, 0, 1, 0, 0) // length code for raw 4 (i=2 leading zeros, terminator, t=0)
	bs := NewBitSource(bw.bytes())

	r := NewRepeatEngine()
	_, length, ok, err := r.DecodeInstruction(bs)
	if err != nil {
		t.Fatalf("DecodeInstruction: unexpected error %v", err)
	}
	if !ok {
		t.Fatal("DecodeInstruction: want ok=true")
	}
	if length != 3 {
		t.Errorf("length = %d, want 3 (4 minus one-time adjustment)", length)
	}
}
