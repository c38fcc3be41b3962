package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		require.Equal(t, Fingerprint(0), NewBoard().Fingerprint())
	})

	t.Run("first cell is the most significant digit", func(t *testing.T) {
		var cells [Cells]Owner
		cells[0] = PlayerOne
		require.Equal(t, Fingerprint(6561), Encode(cells), "1 * 3^8")

		cells = [Cells]Owner{}
		cells[Cells-1] = PlayerTwo
		require.Equal(t, Fingerprint(2), Encode(cells))
	})

	t.Run("largest fingerprint", func(t *testing.T) {
		var cells [Cells]Owner
		for i := range cells {
			cells[i] = PlayerTwo
		}
		require.Equal(t, MaxFingerprint, Encode(cells))
	})
}

func TestDecode(t *testing.T) {
	t.Run("round trip over every grid", func(t *testing.T) {
		seen := make(map[Fingerprint]bool)
		for f := Fingerprint(0); f <= MaxFingerprint; f++ {
			cells := Decode(f)
			require.Equal(t, f, Encode(cells))
			seen[Encode(cells)] = true
		}
		require.Len(t, seen, int(MaxFingerprint)+1, "Every grid should have its own fingerprint")
	})

	t.Run("decoding a played board", func(t *testing.T) {
		b := play(t, NewBoard(), Move{0, 0}, Move{1, 1}, Move{2, 2})

		want := [Cells]Owner{
			PlayerOne, None, None,
			None, PlayerTwo, None,
			None, None, PlayerOne,
		}
		if diff := cmp.Diff(want, Decode(b.Fingerprint())); diff != "" {
			t.Errorf("Decode() mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFingerprintIdentity(t *testing.T) {
	t.Run("separately built boards with the same cells", func(t *testing.T) {
		a := play(t, NewBoard(), Move{0, 0}, Move{1, 1}, Move{0, 1})
		b := play(t, NewBoard(), Move{0, 1}, Move{1, 1}, Move{0, 0})

		require.Equal(t, a.Fingerprint(), b.Fingerprint(), "Fingerprint should depend on the cells only")
		require.Equal(t, a.Fingerprint().Hash(), b.Fingerprint().Hash())
	})

	t.Run("boards differing in one cell", func(t *testing.T) {
		a := play(t, NewBoard(), Move{0, 0})
		b := play(t, NewBoard(), Move{0, 1})

		require.NotEqual(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("snapshot is unaffected by later moves", func(t *testing.T) {
		b := play(t, NewBoard(), Move{0, 0})
		snapshot := b.Fingerprint()

		play(t, b, Move{1, 1})

		require.Equal(t, Fingerprint(6561), snapshot)
		require.NotEqual(t, snapshot, b.Fingerprint())
	})

	t.Run("renders like the board", func(t *testing.T) {
		b := play(t, NewBoard(), Move{0, 2}, Move{2, 0})

		require.Equal(t, b.String(), b.Fingerprint().String())
	})
}
