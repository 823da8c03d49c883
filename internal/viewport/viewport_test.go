package viewport

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func checkInvariant(t *testing.T, s *State) {
	t.Helper()
	require.GreaterOrEqual(t, s.RowOffset(), 0)
	require.LessOrEqual(t, s.RowOffset(), max(0, s.TotalRows()-s.VisibleRows()))
	require.GreaterOrEqual(t, s.ColOffset(), 0)
	if s.FixedCols() == 0 {
		require.Equal(t, 0, s.ColOffset())
	} else {
		require.LessOrEqual(t, s.ColOffset(), max(0, s.FixedCols()-s.VisibleCols()))
	}
}

func TestScenarioSixtyFourBytes(t *testing.T) {
	s := New()
	s.Measure(5, 8, 64, 1)
	assert.Equal(t, 8, s.TotalRows())

	s.GotoBottom()
	assert.Equal(t, 3, s.RowOffset())

	s.MoveDown()
	assert.Equal(t, 3, s.RowOffset(), "move down at bottom is a no-op")
}

func TestTotalRowsDiscardsRemainder(t *testing.T) {
	s := New()
	s.Measure(4, 4, 70, 2)
	assert.Equal(t, 8, s.TotalRows())

	s.Measure(4, 0, 70, 2)
	assert.Equal(t, 0, s.TotalRows())
}

func TestShortContentNeverScrolls(t *testing.T) {
	s := New()
	s.Measure(20, 8, 64, 1)
	s.MoveDown()
	s.ScrollDown()
	s.GotoBottom()
	assert.Equal(t, 0, s.RowOffset())
}

func TestScrollHalfPage(t *testing.T) {
	s := New()
	s.Measure(10, 4, 400, 1) // 100 rows
	s.ScrollDown()
	assert.Equal(t, 5, s.RowOffset())
	s.ScrollDown()
	assert.Equal(t, 10, s.RowOffset())
	s.ScrollUp()
	assert.Equal(t, 5, s.RowOffset())

	s.setRow(88)
	s.ScrollDown()
	assert.Equal(t, 90, s.RowOffset(), "snaps to last page")

	s.setRow(3)
	s.ScrollUp()
	assert.Equal(t, 0, s.RowOffset(), "snaps to top")
}

func TestHorizontalOnlyWhenPinned(t *testing.T) {
	s := New()
	s.Measure(10, 8, 1024, 1)
	s.MoveRight()
	s.GotoEnd()
	assert.Equal(t, 0, s.ColOffset())

	s.SetFixedCols(32)
	s.Measure(10, 8, 1024, 1)
	assert.Equal(t, 32, s.Columns())
	assert.Equal(t, 32, s.TotalRows())

	s.MoveRight()
	assert.Equal(t, 1, s.ColOffset())
	s.GotoEnd()
	assert.Equal(t, 24, s.ColOffset())
	s.MoveRight()
	assert.Equal(t, 24, s.ColOffset())
	s.GotoStart()
	assert.Equal(t, 0, s.ColOffset())
	s.MoveLeft()
	assert.Equal(t, 0, s.ColOffset())

	s.GotoEnd()
	s.SetFixedCols(0)
	assert.Equal(t, 0, s.ColOffset(), "unpinning clamps the column offset")
}

func TestSetFixedColsRoundsToPowerOfTwo(t *testing.T) {
	s := New()
	for in, want := range map[int]int{1: 1, 3: 2, 24: 16, 64: 64, 0: 0, -5: 0} {
		s.SetFixedCols(in)
		assert.Equal(t, want, s.FixedCols(), "n=%d", in)
	}
}

func TestMeasureReclampsAfterGeometryChange(t *testing.T) {
	s := New()
	s.Measure(10, 16, 1600, 1) // 100 rows
	s.GotoBottom()
	require.Equal(t, 90, s.RowOffset())

	// Switching to an 8 byte type shrinks the grid to 12 rows.
	s.Measure(10, 16, 1600, 8)
	assert.Equal(t, 12, s.TotalRows())
	assert.Equal(t, 2, s.RowOffset())
}

func TestRandomOperationsKeepInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := New()
	ops := []func(){
		s.MoveDown, s.MoveUp, s.MoveLeft, s.MoveRight,
		s.ScrollDown, s.ScrollUp,
		s.GotoTop, s.GotoBottom, s.GotoStart, s.GotoEnd,
	}

	for i := 0; i < 5000; i++ {
		switch rng.Intn(12) {
		case 10:
			s.Measure(rng.Intn(30), rng.Intn(17), rng.Intn(4096), []int{1, 2, 4, 8}[rng.Intn(4)])
		case 11:
			s.SetFixedCols(rng.Intn(40) - 5)
		default:
			ops[rng.Intn(len(ops))]()
		}
		checkInvariant(t, s)
	}
}
