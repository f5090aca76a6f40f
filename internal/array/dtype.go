// Package array resolves element accessors for heterogeneous array-like values.
package array

import "fmt"

// DataType is the logical element type of an array-like value.
type DataType int

// Supported data types.
const (
	Float64 DataType = iota
	Float32
	Int64
	Int32
	Int16
	Int8
	Uint64
	Uint32
	Uint16
	Uint8
	Uint8c
	Complex128
	Complex64
	Bool
	Generic
)

var dataTypeNames = [...]string{
	Float64:    "float64",
	Float32:    "float32",
	Int64:      "int64",
	Int32:      "int32",
	Int16:      "int16",
	Int8:       "int8",
	Uint64:     "uint64",
	Uint32:     "uint32",
	Uint16:     "uint16",
	Uint8:      "uint8",
	Uint8c:     "uint8c",
	Complex128: "complex128",
	Complex64:  "complex64",
	Bool:       "bool",
	Generic:    "generic",
}

// String returns the data type tag.
func (dt DataType) String() string {
	if dt < 0 || int(dt) >= len(dataTypeNames) {
		return "unknown"
	}
	return dataTypeNames[dt]
}

// Size returns the byte size of one logical element.
// Generic arrays hold interface values and report 0.
func (dt DataType) Size() int {
	switch dt {
	case Float64, Int64, Uint64, Complex64:
		return 8
	case Float32, Int32, Uint32:
		return 4
	case Int16, Uint16:
		return 2
	case Int8, Uint8, Uint8c, Bool:
		return 1
	case Complex128:
		return 16
	case Generic:
		return 0
	default:
		panic("unknown data type")
	}
}

// IsComplex reports whether elements are complex numbers.
func (dt DataType) IsComplex() bool {
	return dt == Complex128 || dt == Complex64
}

// IsValid reports whether dt is one of the declared data types.
func (dt DataType) IsValid() bool {
	return dt >= Float64 && dt <= Generic
}

// ParseDataType returns the data type named by tag.
func ParseDataType(tag string) (DataType, error) {
	for i, name := range dataTypeNames {
		if name == tag {
			return DataType(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnrecognizedDataType, tag)
}

// DataTypes returns every supported data type in declaration order.
func DataTypes() []DataType {
	out := make([]DataType, len(dataTypeNames))
	for i := range out {
		out[i] = DataType(i)
	}
	return out
}
