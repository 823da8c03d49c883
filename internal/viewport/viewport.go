// Package viewport tracks which window of the virtual grid is on screen.
//
// Every operation clamps, so after any call
//
//	0 <= RowOffset() <= max(0, TotalRows()-VisibleRows())
//	0 <= ColOffset() <= max(0, FixedCols()-VisibleCols())
//
// and ColOffset() is 0 whenever no fixed column count is pinned.
package viewport

import "bingrid/internal/layout"

type State struct {
	rowOffset   int
	colOffset   int
	visibleRows int
	visibleCols int
	totalRows   int
	fixedCols   int
}

func New() *State {
	return &State{}
}

func (s *State) RowOffset() int   { return s.rowOffset }
func (s *State) ColOffset() int   { return s.colOffset }
func (s *State) VisibleRows() int { return s.visibleRows }
func (s *State) VisibleCols() int { return s.visibleCols }
func (s *State) TotalRows() int   { return s.totalRows }

// FixedCols is the pinned column count, 0 in auto-fit mode.
func (s *State) FixedCols() int { return s.fixedCols }

// Columns is the number of elements per virtual row.
func (s *State) Columns() int {
	if s.fixedCols > 0 {
		return s.fixedCols
	}
	return s.visibleCols
}

// SetFixedCols pins the grid to n columns, rounded down to a power of two
// so row addresses stay binary aligned; n <= 0 returns to auto-fit.
func (s *State) SetFixedCols(n int) {
	s.fixedCols = layout.PrevPowerOfTwo(n)
	s.clamp()
}

// Measure records the geometry of the latest redraw and re-clamps the
// offsets against it.
func (s *State) Measure(visibleRows, visibleCols, bufLen, byteWidth int) {
	s.visibleRows = max(visibleRows, 0)
	s.visibleCols = max(visibleCols, 0)

	s.totalRows = 0
	if perRow := byteWidth * s.Columns(); perRow > 0 && bufLen > 0 {
		s.totalRows = bufLen / perRow
	}
	s.clamp()
}

// Reset returns to the origin, keeping the pinned column count.
func (s *State) Reset() {
	s.rowOffset = 0
	s.colOffset = 0
}

func (s *State) maxRow() int {
	return max(0, s.totalRows-s.visibleRows)
}

func (s *State) maxCol() int {
	if s.fixedCols == 0 {
		return 0
	}
	return max(0, s.fixedCols-s.visibleCols)
}

func (s *State) clamp() {
	s.rowOffset = min(max(s.rowOffset, 0), s.maxRow())
	s.colOffset = min(max(s.colOffset, 0), s.maxCol())
}

func (s *State) setRow(n int) {
	s.rowOffset = n
	s.clamp()
}

func (s *State) setCol(n int) {
	s.colOffset = n
	s.clamp()
}

func (s *State) MoveDown() { s.setRow(s.rowOffset + 1) }
func (s *State) MoveUp()   { s.setRow(s.rowOffset - 1) }

func (s *State) MoveRight() {
	if s.fixedCols == 0 {
		return
	}
	s.setCol(s.colOffset + 1)
}

func (s *State) MoveLeft() {
	if s.fixedCols == 0 {
		return
	}
	s.setCol(s.colOffset - 1)
}

func (s *State) halfPage() int {
	return max(1, s.visibleRows/2)
}

// ScrollDown moves half a page, stopping at the last page.
func (s *State) ScrollDown() { s.setRow(s.rowOffset + s.halfPage()) }

// ScrollUp moves half a page back, stopping at the top.
func (s *State) ScrollUp() { s.setRow(s.rowOffset - s.halfPage()) }

func (s *State) GotoTop()    { s.setRow(0) }
func (s *State) GotoBottom() { s.setRow(s.maxRow()) }
func (s *State) GotoStart()  { s.setCol(0) }
func (s *State) GotoEnd()    { s.setCol(s.maxCol()) }
