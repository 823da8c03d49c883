// Package datatype is the static catalog of element types the grid can show:
// byte widths and the fixed text width of every (type, base) pair.
package datatype

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknown = errors.New("unknown value")

type DataType int

const (
	U8 DataType = iota
	I8
	U16
	I16
	U32
	I32
	U64
	I64
	F32
	F64
)

// All lists every type in display order.
var All = [...]DataType{U8, I8, U16, I16, U32, I32, U64, I64, F32, F64}

type DisplayBase int

const (
	Decimal DisplayBase = iota
	Hexadecimal
)

type Endianness int

const (
	Little Endianness = iota
	Big
)

// SuffixWidth is the room every column reserves for the base subscript.
const SuffixWidth = 2

// Spacing is the single blank cell every column reserves after its value.
const Spacing = 1

var names = map[DataType]string{
	U8: "U8", I8: "I8", U16: "U16", I16: "I16", U32: "U32",
	I32: "I32", U64: "U64", I64: "I64", F32: "F32", F64: "F64",
}

func (t DataType) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("DataType(%d)", int(t))
}

// ByteWidth is the number of raw bytes one element occupies.
func (t DataType) ByteWidth() int {
	switch t {
	case U8, I8:
		return 1
	case U16, I16:
		return 2
	case U32, I32, F32:
		return 4
	case U64, I64, F64:
		return 8
	}
	return 1
}

func (t DataType) IsFloat() bool {
	return t == F32 || t == F64
}

func (t DataType) IsSigned() bool {
	switch t {
	case I8, I16, I32, I64, F32, F64:
		return true
	}
	return false
}

// ValueWidth is the fixed number of characters a formatted value takes,
// not counting the base suffix.
func ValueWidth(t DataType, b DisplayBase) int {
	if b == Hexadecimal {
		return 2 * t.ByteWidth()
	}
	switch t {
	case U8:
		return 3
	case I8:
		return 4
	case U16:
		return 5
	case I16:
		return 6
	case U32:
		return 10
	case I32:
		return 11
	case U64, I64:
		return 20
	case F32:
		// -d.ddddd×10⁻dd
		return 14
	case F64:
		// -d.dddddddddd×10⁻ddd
		return 20
	}
	return 0
}

// DisplayWidth is the column width the layout reserves for one element:
// the value, its base suffix and one spacing cell.
func DisplayWidth(t DataType, b DisplayBase) int {
	return ValueWidth(t, b) + SuffixWidth + Spacing
}

// Parse accepts names like "u8", "I32" or "f64".
func Parse(s string) (DataType, error) {
	key := strings.ToUpper(strings.TrimSpace(s))
	for t, n := range names {
		if n == key {
			return t, nil
		}
	}
	return U8, fmt.Errorf("data type %q: %w", s, ErrUnknown)
}

func (b DisplayBase) String() string {
	if b == Hexadecimal {
		return "Hexadecimal"
	}
	return "Decimal"
}

// Next cycles Decimal -> Hexadecimal -> Decimal.
func (b DisplayBase) Next() DisplayBase {
	if b == Decimal {
		return Hexadecimal
	}
	return Decimal
}

func ParseBase(s string) (DisplayBase, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "dec", "decimal", "10":
		return Decimal, nil
	case "hex", "hexadecimal", "16":
		return Hexadecimal, nil
	}
	return Decimal, fmt.Errorf("display base %q: %w", s, ErrUnknown)
}

func (e Endianness) String() string {
	if e == Big {
		return "Big"
	}
	return "Little"
}

func (e Endianness) Next() Endianness {
	if e == Little {
		return Big
	}
	return Little
}

func ParseEndianness(s string) (Endianness, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "little", "le":
		return Little, nil
	case "big", "be":
		return Big, nil
	}
	return Little, fmt.Errorf("endianness %q: %w", s, ErrUnknown)
}
