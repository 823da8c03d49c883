// Package layout splits one terminal row into the address cell, the data
// columns and the trailing border.
package layout

import "math/bits"

const (
	AddressDigits  = 8
	AddressPadding = 2
	AddressBorder  = 2
	AddressWidth   = AddressDigits + AddressPadding + AddressBorder
	TrailingBorder = 1
)

type Rect struct {
	X, Y          int
	Width, Height int
}

// Result describes one row. Regions holds the address region, one region
// per column and the trailing border, in that order.
type Result struct {
	Columns     int
	ColumnWidth int
	Gap         int
	Regions     []Rect
}

func (r Result) Address() Rect { return r.Regions[0] }

func (r Result) Column(i int) Rect { return r.Regions[i+1] }

func (r Result) Border() Rect { return r.Regions[len(r.Regions)-1] }

// PrevPowerOfTwo rounds n down to a power of two; zero and negatives give 0.
func PrevPowerOfTwo(n int) int {
	if n <= 0 {
		return 0
	}
	return 1 << (bits.Len(uint(n)) - 1)
}

// FitColumns is the number of columns of width elemWidth that fit next to
// the address column and border, rounded down to a power of two.
func FitColumns(width, elemWidth int) int {
	avail := width - AddressWidth - TrailingBorder
	if avail <= 0 || elemWidth <= 0 {
		return 0
	}
	return PrevPowerOfTwo(avail / elemWidth)
}

// Solve lays out a single row of area. The leftover width is spread into
// cols+1 equal gaps; what cannot be split evenly goes in front of the
// address column, half of it as a centering margin.
func Solve(area Rect, elemWidth int) Result {
	return SolveColumns(area, elemWidth, FitColumns(area.Width, elemWidth))
}

// SolveColumns lays out exactly cols columns. cols is reduced to the
// fitting count when it does not fit.
func SolveColumns(area Rect, elemWidth, cols int) Result {
	if fit := FitColumns(area.Width, elemWidth); cols > fit || cols < 0 {
		cols = fit
	}

	used := AddressWidth + cols*elemWidth + TrailingBorder
	leftover := area.Width - used
	if leftover < 0 {
		leftover = 0
	}
	gap := leftover / (cols + 1)
	front := (leftover - gap*(cols+1)) / 2

	regions := make([]Rect, 0, cols+2)
	x := area.X + front

	addrWidth := AddressWidth
	if area.Width < addrWidth {
		addrWidth = max(area.Width, 0)
	}
	regions = append(regions, Rect{X: x, Y: area.Y, Width: addrWidth, Height: 1})
	x += addrWidth + gap

	for i := 0; i < cols; i++ {
		regions = append(regions, Rect{X: x, Y: area.Y, Width: elemWidth, Height: 1})
		x += elemWidth + gap
	}

	borderWidth := TrailingBorder
	if x+borderWidth > area.X+area.Width {
		borderWidth = 0
	}
	regions = append(regions, Rect{X: x, Y: area.Y, Width: borderWidth, Height: 1})

	return Result{
		Columns:     cols,
		ColumnWidth: elemWidth,
		Gap:         gap,
		Regions:     regions,
	}
}
