package viewer

import "bingrid/internal/datatype"

// Selecting a data type takes two keys: a category (u, i, f) and then a
// width (1-4 for integers, 1-2 for floats). Any other key cancels.

type category int

const (
	categoryUnsigned category = iota
	categorySigned
	categoryFloat
)

func (c category) String() string {
	switch c {
	case categorySigned:
		return "signed"
	case categoryFloat:
		return "float"
	}
	return "unsigned"
}

type chordState interface {
	chord()
}

type chordNormal struct{}

type chordAwaitCategory struct{}

type chordAwaitWidth struct {
	category category
}

func (chordNormal) chord()        {}
func (chordAwaitCategory) chord() {}
func (chordAwaitWidth) chord()    {}

var chordWidths = map[category]map[string]datatype.DataType{
	categoryUnsigned: {"1": datatype.U8, "2": datatype.U16, "3": datatype.U32, "4": datatype.U64},
	categorySigned:   {"1": datatype.I8, "2": datatype.I16, "3": datatype.I32, "4": datatype.I64},
	categoryFloat:    {"1": datatype.F32, "2": datatype.F64},
}

// stepChord feeds one key to the chord. resolved reports that a data type
// was chosen; the returned state is then chordNormal.
func stepChord(s chordState, k string) (next chordState, dt datatype.DataType, resolved bool) {
	switch s := s.(type) {
	case chordAwaitCategory:
		switch k {
		case "u":
			return chordAwaitWidth{categoryUnsigned}, 0, false
		case "i":
			return chordAwaitWidth{categorySigned}, 0, false
		case "f":
			return chordAwaitWidth{categoryFloat}, 0, false
		}
	case chordAwaitWidth:
		if dt, ok := chordWidths[s.category][k]; ok {
			return chordNormal{}, dt, true
		}
	}
	return chordNormal{}, 0, false
}

func chordPrompt(s chordState) string {
	switch s := s.(type) {
	case chordAwaitCategory:
		return "data type: [u]nsigned  [i] signed  [f]loat"
	case chordAwaitWidth:
		if s.category == categoryFloat {
			return "float width: [1] 32 bit  [2] 64 bit"
		}
		return s.category.String() + " width: [1] 8  [2] 16  [3] 32  [4] 64 bit"
	}
	return ""
}
