package fbx

import "fmt"

// Attribute is a single typed value attached to a node. The dynamic type
// of Value is one of:
//
//	bool, int16, int32, int64, float32, float64, string, []byte
//	[]bool, []int32, []int64, []float32, []float64
//
// matching the FBX binary attribute type codes.
type Attribute struct {
	Value any
}

// TypeName returns a short name for the attribute's stored type, used in
// error messages and dumps.
func (a Attribute) TypeName() string {
	switch a.Value.(type) {
	case bool:
		return "bool"
	case int16:
		return "int16"
	case int32:
		return "int32"
	case int64:
		return "int64"
	case float32:
		return "float32"
	case float64:
		return "float64"
	case string:
		return "string"
	case []byte:
		return "bytes"
	case []bool:
		return "bool[]"
	case []int32:
		return "int32[]"
	case []int64:
		return "int64[]"
	case []float32:
		return "float32[]"
	case []float64:
		return "float64[]"
	default:
		return fmt.Sprintf("unknown(%T)", a.Value)
	}
}

// AsBool returns the value if it is a bool.
func (a Attribute) AsBool() (bool, bool) {
	v, ok := a.Value.(bool)
	return v, ok
}

// AsInt32 returns the value if it is an int32.
func (a Attribute) AsInt32() (int32, bool) {
	v, ok := a.Value.(int32)
	return v, ok
}

// AsInt64 returns the value if it is an int64.
func (a Attribute) AsInt64() (int64, bool) {
	v, ok := a.Value.(int64)
	return v, ok
}

// AsFloat64 returns the value if it is a float64.
func (a Attribute) AsFloat64() (float64, bool) {
	v, ok := a.Value.(float64)
	return v, ok
}

// AsString returns the value if it is a string.
func (a Attribute) AsString() (string, bool) {
	v, ok := a.Value.(string)
	return v, ok
}

// AsInt32Array returns the value if it is an int32 array.
func (a Attribute) AsInt32Array() ([]int32, bool) {
	v, ok := a.Value.([]int32)
	return v, ok
}

// AsInt64Array returns the value if it is an int64 array.
func (a Attribute) AsInt64Array() ([]int64, bool) {
	v, ok := a.Value.([]int64)
	return v, ok
}

// AsFloat64Array returns the value if it is a float64 array.
func (a Attribute) AsFloat64Array() ([]float64, bool) {
	v, ok := a.Value.([]float64)
	return v, ok
}

// String formats the attribute for tree dumps. Arrays are summarized by
// element count.
func (a Attribute) String() string {
	switch v := a.Value.(type) {
	case string:
		return fmt.Sprintf("%q", v)
	case []byte:
		return fmt.Sprintf("bytes(%d)", len(v))
	case []bool:
		return fmt.Sprintf("bool[%d]", len(v))
	case []int32:
		return fmt.Sprintf("int32[%d]", len(v))
	case []int64:
		return fmt.Sprintf("int64[%d]", len(v))
	case []float32:
		return fmt.Sprintf("float32[%d]", len(v))
	case []float64:
		return fmt.Sprintf("float64[%d]", len(v))
	default:
		return fmt.Sprintf("%v", v)
	}
}
