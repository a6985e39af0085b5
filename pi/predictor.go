package pi

// rankCode describes one entry of a plane count's variable-length rank
// prefix table: prefix is the exact bit sequence that selects this
// entry (matched MSB-first as each bit is pulled), base is the rank
// value contributed by the prefix alone, and trailingBits is the
// number of further MSB-first bits forming the within-range offset
// added to base.
type rankCode struct {
	prefix       []int
	base         int
	trailingBits int
}

// rankTable4 is the prefix table for a 16-color (4-plane) palette.
var rankTable4 = []rankCode{
	{prefix: []int{1}, base: 0, trailingBits: 1},
	{prefix: []int{0, 0}, base: 2, trailingBits: 1},
	{prefix: []int{0, 1, 0}, base: 4, trailingBits: 2},
	{prefix: []int{0, 1, 1}, base: 8, trailingBits: 3},
}

// rankTable8 is the prefix table for a 256-color (8-plane) palette.
var rankTable8 = []rankCode{
	{prefix: []int{1}, base: 0, trailingBits: 1},
	{prefix: []int{0, 0}, base: 2, trailingBits: 1},
	{prefix: []int{0, 1, 0}, base: 4, trailingBits: 2},
	{prefix: []int{0, 1, 1, 0}, base: 8, trailingBits: 3},
	{prefix: []int{0, 1, 1, 1, 0}, base: 16, trailingBits: 4},
	{prefix: []int{0, 1, 1, 1, 1, 0}, base: 32, trailingBits: 5},
	{prefix: []int{0, 1, 1, 1, 1, 1, 0}, base: 64, trailingBits: 6},
	{prefix: []int{0, 1, 1, 1, 1, 1, 1, 0}, base: 128, trailingBits: 7},
}

func rankTableFor(planes int) []rankCode {
	if planes == 8 {
		return rankTable8
	}
	return rankTable4
}

// ColorPredictor maintains a per-previous-color move-to-front ranking
// table and translates a decoded rank plus the left-neighbor color
// into an absolute palette index.
//
// table[prev] is always a permutation of 0..N for every prev; the
// invariant is preserved by construction (see NewColorPredictor) and
// by the single mutation point, DecodeColor's move-to-front shift.
type ColorPredictor struct {
	n         int
	table     [][]int
	prevColor int
	ranks     []rankCode
}

// NewColorPredictor builds a ColorPredictor for the given plane count
// (4 or 8). table[prev][rank] starts at (prev-rank) mod N, i.e. row
// prev lists colors starting at prev and counting down.
func NewColorPredictor(planes int) *ColorPredictor {
	n := 1 << uint(planes)
	table := make([][]int, n)
	for prev := 0; prev < n; prev++ {
		row := make([]int, n)
		for rank := 0; rank < n; rank++ {
			row[rank] = ((prev-rank)%n + n) % n
		}
		table[prev] = row
	}
	return &ColorPredictor{n: n, table: table, ranks: rankTableFor(planes)}
}

// decodeRank reads a prefix-coded rank in [0, N) from bs.
func (p *ColorPredictor) decodeRank(bs *BitSource) (int, error) {
	start := bs.Offset()
	maxLen := 0
	for _, rc := range p.ranks {
		if len(rc.prefix) > maxLen {
			maxLen = len(rc.prefix)
		}
	}

	var matched []int
	for len(matched) < maxLen {
		bit, err := bs.Pull()
		if err != nil {
			return 0, err
		}
		matched = append(matched, bit)
		for _, rc := range p.ranks {
			if prefixEqual(rc.prefix, matched) {
				trailing, err := bs.PullBits(rc.trailingBits)
				if err != nil {
					return 0, err
				}
				return rc.base + trailing, nil
			}
		}
	}
	return 0, wrapDecodeError(InvalidPrefix, start, "no rank prefix matched bits %v", matched)
}

func prefixEqual(prefix, matched []int) bool {
	if len(prefix) != len(matched) {
		return false
	}
	for i, b := range prefix {
		if matched[i] != b {
			return false
		}
	}
	return true
}

// DecodeColor decodes one palette index: reads a rank, looks it up in
// the row for the current left-neighbor color, promotes it to rank 0
// (move-to-front), and updates prevColor to the decoded color.
func (p *ColorPredictor) DecodeColor(bs *BitSource) (int, error) {
	rank, err := p.decodeRank(bs)
	if err != nil {
		return 0, err
	}
	if rank < 0 || rank >= p.n {
		return 0, wrapDecodeError(InvalidPrefix, bs.Offset(), "rank %d out of range [0, %d)", rank, p.n)
	}

	row := p.table[p.prevColor]
	color := row[rank]
	copy(row[1:rank+1], row[0:rank])
	row[0] = color

	p.prevColor = color
	return color, nil
}
