package typesense

import (
	"fmt"
	"reflect"
	"strconv"
)

// FieldType tags the declared type of a schema field and drives
// PrepareItemValue. The int32 and int64 tags coerce identically; the engine
// distinguishes them only in the schema declaration.
type FieldType string

const (
	FieldTypeBool   FieldType = "typesense_bool"
	FieldTypeFloat  FieldType = "typesense_float"
	FieldTypeInt32  FieldType = "typesense_int32"
	FieldTypeInt64  FieldType = "typesense_int64"
	FieldTypeString FieldType = "typesense_string"
)

// EngineType returns the type name the engine schema declares for this tag.
func (t FieldType) EngineType() string {
	switch t {
	case FieldTypeBool:
		return "bool"
	case FieldTypeFloat:
		return "float"
	case FieldTypeInt32:
		return "int32"
	case FieldTypeInt64:
		return "int64"
	default:
		return "string"
	}
}

// FieldTypeFromEngine maps an engine schema type name back onto a coercion
// tag. Unknown types (including array types like "string[]") return the
// empty tag, which PrepareItemValue treats as pass-through.
func FieldTypeFromEngine(engineType string) FieldType {
	switch engineType {
	case "bool":
		return FieldTypeBool
	case "float":
		return FieldTypeFloat
	case "int32":
		return FieldTypeInt32
	case "int64":
		return FieldTypeInt64
	case "string":
		return FieldTypeString
	}
	return ""
}

// PrepareItemValue coerces a raw field value onto its declared field type
// before indexing. It is pure: no remote call, no mutation of the input.
// Single-element slices are unwrapped first. Slices with more than one
// element pass through uncoerced; use PrepareItemValues when per-element
// coercion of a multi-valued field is wanted.
func PrepareItemValue(value any, fieldType FieldType) any {
	if elems, ok := asSlice(value); ok {
		if len(elems) != 1 {
			return value
		}
		value = elems[0]
	}

	switch fieldType {
	case FieldTypeBool:
		return toBool(value)
	case FieldTypeFloat:
		return toFloat(value)
	case FieldTypeInt32, FieldTypeInt64:
		return toInt(value)
	case FieldTypeString:
		return toString(value)
	}
	return value
}

// PrepareItemValues coerces every element of a multi-valued field.
func PrepareItemValues(values []any, fieldType FieldType) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = PrepareItemValue(v, fieldType)
	}
	return out
}

func asSlice(v any) ([]any, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}

func toBool(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		b, err := strconv.ParseBool(x)
		if err != nil {
			return false
		}
		return b
	case int:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case float32:
		return x != 0
	case float64:
		return x != 0
	}
	return false
}

func toFloat(v any) float64 {
	switch x := v.(type) {
	case float64:
		return x
	case float32:
		return float64(x)
	case int:
		return float64(x)
	case int32:
		return float64(x)
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		f, err := strconv.ParseFloat(x, 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func toInt(v any) int64 {
	switch x := v.(type) {
	case int64:
		return x
	case int:
		return int64(x)
	case int32:
		return int64(x)
	case float64:
		return int64(x)
	case float32:
		return int64(x)
	case bool:
		if x {
			return 1
		}
		return 0
	case string:
		i, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			// Tolerate decimal strings like "42.0".
			f, ferr := strconv.ParseFloat(x, 64)
			if ferr != nil {
				return 0
			}
			return int64(f)
		}
		return i
	}
	return 0
}

func toString(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case bool:
		return strconv.FormatBool(x)
	case int:
		return strconv.Itoa(x)
	case int32:
		return strconv.FormatInt(int64(x), 10)
	case int64:
		return strconv.FormatInt(x, 10)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	}
	return fmt.Sprintf("%v", v)
}
