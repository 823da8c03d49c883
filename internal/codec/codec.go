// Package codec views a byte buffer as a sequence of typed elements and
// renders single elements as fixed-width text.
package codec

import (
	"encoding/binary"
	"math"

	"bingrid/internal/datatype"
)

// Elements is a read-only view of a buffer as elements of one type. It
// never copies the buffer; each Element slices into it.
type Elements struct {
	data  []byte
	dtype datatype.DataType
	n     int
}

// Element is the raw bytes of one value, in file order.
type Element struct {
	Type datatype.DataType
	Raw  []byte
}

// Reinterpret views buf as elements of t. A trailing partial element is
// dropped.
func Reinterpret(buf []byte, t datatype.DataType) Elements {
	return Elements{
		data:  buf,
		dtype: t,
		n:     len(buf) / t.ByteWidth(),
	}
}

func (e Elements) Len() int { return e.n }

func (e Elements) Type() datatype.DataType { return e.dtype }

// At returns element i. ok is false when i is outside the view.
func (e Elements) At(i int) (Element, bool) {
	if i < 0 || i >= e.n {
		return Element{}, false
	}
	w := e.dtype.ByteWidth()
	off := i * w
	return Element{Type: e.dtype, Raw: e.data[off : off+w : off+w]}, true
}

func byteOrder(e datatype.Endianness) binary.ByteOrder {
	if e == datatype.Big {
		return binary.BigEndian
	}
	return binary.LittleEndian
}

// Bits assembles the element bytes into an unsigned integer using the
// given byte order.
func (el Element) Bits(e datatype.Endianness) uint64 {
	order := byteOrder(e)
	switch len(el.Raw) {
	case 1:
		return uint64(el.Raw[0])
	case 2:
		return uint64(order.Uint16(el.Raw))
	case 4:
		return uint64(order.Uint32(el.Raw))
	case 8:
		return order.Uint64(el.Raw)
	}
	return 0
}

// Float decodes a float element; integers convert their numeric value.
func (el Element) Float(e datatype.Endianness) float64 {
	v := el.Bits(e)
	switch el.Type {
	case datatype.F32:
		return float64(math.Float32frombits(uint32(v)))
	case datatype.F64:
		return math.Float64frombits(v)
	case datatype.I8:
		return float64(int8(v))
	case datatype.I16:
		return float64(int16(v))
	case datatype.I32:
		return float64(int32(v))
	case datatype.I64:
		return float64(int64(v))
	}
	return float64(v)
}
