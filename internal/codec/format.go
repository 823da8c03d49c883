package codec

import (
	"math"
	"strconv"
	"strings"

	"bingrid/internal/datatype"
)

const (
	Sub10 = "₁₀"
	Sub16 = "₁₆"

	superMinus = '⁻'
)

var superDigits = [10]rune{
	'⁰', '¹', '²', '³', '⁴',
	'⁵', '⁶', '⁷', '⁸', '⁹',
}

// Mantissa digits after the decimal point.
const (
	Float32Precision = 5
	Float64Precision = 10
)

// Format renders el in the requested base. Integers are padded to the
// catalog width and carry a subscript base suffix; floats in decimal use
// Scientific, in hexadecimal their raw IEEE bits.
func Format(el Element, base datatype.DisplayBase, e datatype.Endianness) string {
	bits := el.Bits(e)
	width := datatype.ValueWidth(el.Type, base)

	if base == datatype.Hexadecimal {
		return hex(bits, width)
	}

	switch {
	case el.Type.IsFloat():
		return Scientific(el.Float(e), 8*el.Type.ByteWidth())
	case el.Type.IsSigned():
		return padLeft(strconv.FormatInt(signExtend(bits, len(el.Raw)), 10), width) + Sub10
	}
	return padLeft(strconv.FormatUint(bits, 10), width) + Sub10
}

// signExtend widens the low n bytes of v as a two's complement value.
func signExtend(v uint64, n int) int64 {
	shift := 64 - 8*n
	return int64(v<<shift) >> shift
}

func hex(v uint64, width int) string {
	s := strings.ToUpper(strconv.FormatUint(v, 16))
	if n := width - len(s); n > 0 {
		s = strings.Repeat("0", n) + s
	}
	return s + Sub16
}

func padLeft(s string, width int) string {
	if n := width - len(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// Scientific formats v as mantissa×10 with a superscript exponent, e.g.
// 1.50000×10⁰ or -2.50000×10⁻³. bitSize selects the float width and with
// it the mantissa precision.
func Scientific(v float64, bitSize int) string {
	prec := Float64Precision
	if bitSize == 32 {
		prec = Float32Precision
	}

	switch {
	case math.IsNaN(v):
		return "NAN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case v == 0:
		return "0." + strings.Repeat("0", prec) + "×10" + Superscript(0)
	}

	s := strconv.FormatFloat(v, 'e', prec, bitSize)
	i := strings.LastIndexByte(s, 'e')
	exp, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	return s[:i] + "×10" + Superscript(exp)
}

// Superscript writes n with unicode superscript digits.
func Superscript(n int) string {
	var b strings.Builder
	if n < 0 {
		b.WriteRune(superMinus)
		n = -n
	}
	for _, c := range strconv.Itoa(n) {
		b.WriteRune(superDigits[c-'0'])
	}
	return b.String()
}
