package game

// Fingerprint identifies a board by its cells alone: the cells read row-major
// are the digits of a base-3 numeral, most significant first, with None, PlayerOne
// and PlayerTwo as the digits 0, 1 and 2. Distinct boards always have distinct
// fingerprints.
type Fingerprint int

// MaxFingerprint is the fingerprint of a board with player two in every cell.
const MaxFingerprint Fingerprint = 19682 // 3^9 - 1

// Encode returns the fingerprint of the given cells.
func Encode(cells [Cells]Owner) Fingerprint {
	var f Fingerprint
	for _, c := range cells {
		f = f*3 + Fingerprint(c)
	}
	return f
}

// Decode returns the cells of the board f was computed from.
func Decode(f Fingerprint) [Cells]Owner {
	var cells [Cells]Owner
	for i := Cells - 1; i >= 0; i-- {
		cells[i] = Owner(f % 3)
		f /= 3
	}
	return cells
}

// Fingerprint snapshots the current cells of b.
func (b *Board) Fingerprint() Fingerprint {
	return Encode(b.cells)
}

// Hash returns f itself; fingerprints are already collision free.
func (f Fingerprint) Hash() int { return int(f) }

// String renders the board f was computed from.
func (f Fingerprint) String() string {
	return render(Decode(f))
}
