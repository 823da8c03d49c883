// Package grid turns a buffer, the active type/base/endianness and a
// viewport into positioned text cells.
package grid

import (
	"fmt"
	"strconv"

	"bingrid/internal/codec"
	"bingrid/internal/datatype"
	"bingrid/internal/layout"
	"bingrid/internal/viewport"
)

type Kind int

const (
	KindHeader Kind = iota
	KindAddress
	KindValue
	KindBorder
)

type Placement struct {
	Rect     layout.Rect
	Text     string
	Kind     Kind
	Centered bool
}

func (p Placement) IsHeader() bool { return p.Kind == KindHeader }

// Options is the active interpretation of the buffer.
type Options struct {
	Type   datatype.DataType
	Base   datatype.DisplayBase
	Endian datatype.Endianness
}

// HeaderRows is the number of area rows not used for data: the column
// header and the bottom border line.
const HeaderRows = 2

const (
	addressHeader = "│ Address  │"
	borderGlyph   = "│"
)

func addressLabel(addr int) string {
	return fmt.Sprintf("│ %08X │", addr)
}

// Render lays out area, updates the measured geometry of vp and returns
// the placements for one frame. It reads buf but never keeps it.
func Render(area layout.Rect, buf []byte, opts Options, vp *viewport.State) []Placement {
	elemWidth := datatype.DisplayWidth(opts.Type, opts.Base)

	var res layout.Result
	if fixed := vp.FixedCols(); fixed > 0 {
		res = layout.SolveColumns(area, elemWidth, fixed)
	} else {
		res = layout.Solve(area, elemWidth)
	}

	els := codec.Reinterpret(buf, opts.Type)
	vp.Measure(area.Height-HeaderRows, res.Columns, len(buf), els.Type().ByteWidth())

	placements := make([]Placement, 0, (res.Columns+2)*(vp.VisibleRows()+1))
	placements = append(placements, header(res, area.Y, vp.ColOffset())...)

	if res.Columns == 0 {
		return append(placements, skeleton(res, area.Y, vp.VisibleRows())...)
	}

	columns := vp.Columns()

rows:
	for r := 0; r < vp.VisibleRows(); r++ {
		row := vp.RowOffset() + r
		y := area.Y + 1 + r

		first := row*columns + vp.ColOffset()
		if first >= els.Len() {
			break
		}
		placements = append(placements, Placement{
			Rect: at(res.Address(), y),
			Text: addressLabel(row * columns),
			Kind: KindAddress,
		})

		exhausted := false
		for c := 0; c < res.Columns; c++ {
			el, ok := els.At(first + c)
			if !ok {
				exhausted = true
				break
			}
			placements = append(placements, Placement{
				Rect:     at(res.Column(c), y),
				Text:     codec.Format(el, opts.Base, opts.Endian),
				Kind:     KindValue,
				Centered: true,
			})
		}

		placements = append(placements, Placement{Rect: at(res.Border(), y), Text: borderGlyph, Kind: KindBorder})
		if exhausted {
			break rows
		}
	}

	return placements
}

func at(r layout.Rect, y int) layout.Rect {
	r.Y = y
	return r
}

func header(res layout.Result, y, colOffset int) []Placement {
	out := make([]Placement, 0, res.Columns+2)
	out = append(out, Placement{Rect: at(res.Address(), y), Text: addressHeader, Kind: KindHeader})
	for c := 0; c < res.Columns; c++ {
		out = append(out, Placement{
			Rect:     at(res.Column(c), y),
			Text:     strconv.Itoa(colOffset + c),
			Kind:     KindHeader,
			Centered: true,
		})
	}
	return append(out, Placement{Rect: at(res.Border(), y), Text: borderGlyph, Kind: KindBorder})
}

// skeleton fills the rows with empty address cells and borders when no
// data column fits.
func skeleton(res layout.Result, y, rows int) []Placement {
	out := make([]Placement, 0, 2*rows)
	for r := 0; r < rows; r++ {
		out = append(out,
			Placement{Rect: at(res.Address(), y+1+r), Text: "│          │", Kind: KindAddress},
			Placement{Rect: at(res.Border(), y+1+r), Text: borderGlyph, Kind: KindBorder},
		)
	}
	return out
}
