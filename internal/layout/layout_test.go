package layout

import (
	"testing"

	"bingrid/internal/datatype"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}

func TestPrevPowerOfTwo(t *testing.T) {
	cases := map[int]int{0: 0, -3: 0, 1: 1, 2: 2, 3: 2, 7: 4, 8: 8, 9: 8, 1000: 512}
	for in, want := range cases {
		assert.Equal(t, want, PrevPowerOfTwo(in), "n=%d", in)
	}
}

func TestSolveFitsEveryWidth(t *testing.T) {
	for w := 0; w <= 400; w++ {
		for _, dt := range datatype.All {
			for _, base := range []datatype.DisplayBase{datatype.Decimal, datatype.Hexadecimal} {
				dw := datatype.DisplayWidth(dt, base)
				res := Solve(Rect{Width: w, Height: 10}, dw)

				if res.Columns != 0 {
					require.True(t, isPowerOfTwo(res.Columns), "w=%d %s/%s cols=%d", w, dt, base, res.Columns)
					need := AddressWidth + res.Columns*res.ColumnWidth + (res.Columns+1)*res.Gap + TrailingBorder
					require.LessOrEqual(t, need, w, "w=%d %s/%s", w, dt, base)
				}
				require.Len(t, res.Regions, res.Columns+2)

				last := res.Border()
				require.LessOrEqual(t, last.X+last.Width, w)
			}
		}
	}
}

func TestSolveEightByteColumns(t *testing.T) {
	dw := datatype.DisplayWidth(datatype.U8, datatype.Decimal) // 6
	// 12 + 1 + 8*6 = 61 leaves room for 8 but not 16 columns.
	res := Solve(Rect{X: 0, Y: 3, Width: 61, Height: 20}, dw)
	assert.Equal(t, 8, res.Columns)
	assert.Equal(t, 0, res.Gap)
	assert.Equal(t, Rect{X: 0, Y: 3, Width: 12, Height: 1}, res.Address())
	assert.Equal(t, Rect{X: 12, Y: 3, Width: 6, Height: 1}, res.Column(0))
	assert.Equal(t, Rect{X: 54, Y: 3, Width: 6, Height: 1}, res.Column(7))
	assert.Equal(t, Rect{X: 60, Y: 3, Width: 1, Height: 1}, res.Border())
}

func TestSolveGapsAndMargin(t *testing.T) {
	// 80 wide, 6 wide columns: raw 11 -> 8 columns, leftover 80-61=19,
	// gap 19/9=2, remainder 1 -> front margin 0.
	res := Solve(Rect{Width: 80}, 6)
	require.Equal(t, 8, res.Columns)
	assert.Equal(t, 2, res.Gap)
	assert.Equal(t, 0, res.Address().X)
	assert.Equal(t, 14, res.Column(0).X)

	// 83 wide: leftover 22, gap 2, remainder 4 -> front margin 2.
	res = Solve(Rect{Width: 83}, 6)
	assert.Equal(t, 2, res.Address().X)

	for i := 1; i < res.Columns; i++ {
		assert.Equal(t, res.Column(i-1).X+res.ColumnWidth+res.Gap, res.Column(i).X)
		assert.Equal(t, res.ColumnWidth, res.Column(i).Width)
	}
}

func TestSolveDegenerate(t *testing.T) {
	res := Solve(Rect{Width: 14}, 23)
	assert.Equal(t, 0, res.Columns)
	require.Len(t, res.Regions, 2)
	assert.Equal(t, AddressWidth, res.Address().Width)

	res = Solve(Rect{Width: 5}, 6)
	assert.Equal(t, 0, res.Columns)
	assert.Equal(t, 5, res.Address().Width)
	assert.Equal(t, 0, res.Border().Width)
}

func TestSolveColumnsClampsToFit(t *testing.T) {
	res := SolveColumns(Rect{Width: 61}, 6, 4)
	assert.Equal(t, 4, res.Columns)

	res = SolveColumns(Rect{Width: 61}, 6, 32)
	assert.Equal(t, 8, res.Columns)
}
