package typesense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrepareItemValue(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		fieldType FieldType
		want      any
	}{
		{
			name:      "single-element string array to int32",
			value:     []string{"42"},
			fieldType: FieldTypeInt32,
			want:      int64(42),
		},
		{
			name:      "string to bool",
			value:     "true",
			fieldType: FieldTypeBool,
			want:      true,
		},
		{
			name:      "float to string",
			value:     3.14,
			fieldType: FieldTypeString,
			want:      "3.14",
		},
		{
			name:      "string to float",
			value:     "2.5",
			fieldType: FieldTypeFloat,
			want:      2.5,
		},
		{
			name:      "string to int64",
			value:     "9000000000",
			fieldType: FieldTypeInt64,
			want:      int64(9000000000),
		},
		{
			name:      "int to string",
			value:     7,
			fieldType: FieldTypeString,
			want:      "7",
		},
		{
			name:      "bool to int",
			value:     true,
			fieldType: FieldTypeInt32,
			want:      int64(1),
		},
		{
			name:      "numeric string with decimals to int",
			value:     "42.0",
			fieldType: FieldTypeInt32,
			want:      int64(42),
		},
		{
			name:      "unparseable string to int yields zero",
			value:     "not a number",
			fieldType: FieldTypeInt32,
			want:      int64(0),
		},
		{
			name:      "single-element any array to bool",
			value:     []any{"1"},
			fieldType: FieldTypeBool,
			want:      true,
		},
		{
			name:      "multi-element array passes through uncoerced",
			value:     []string{"1", "2"},
			fieldType: FieldTypeInt32,
			want:      []string{"1", "2"},
		},
		{
			name:      "empty array passes through uncoerced",
			value:     []any{},
			fieldType: FieldTypeString,
			want:      []any{},
		},
		{
			name:      "unknown tag passes through",
			value:     "anything",
			fieldType: "",
			want:      "anything",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrepareItemValue(tt.value, tt.fieldType)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPrepareItemValues(t *testing.T) {
	got := PrepareItemValues([]any{"1", "2", "3"}, FieldTypeInt32)
	assert.Equal(t, []any{int64(1), int64(2), int64(3)}, got)

	got = PrepareItemValues([]any{1, "yes"}, FieldTypeString)
	assert.Equal(t, []any{"1", "yes"}, got)
}

func TestFieldType_EngineType(t *testing.T) {
	tests := []struct {
		tag  FieldType
		want string
	}{
		{FieldTypeBool, "bool"},
		{FieldTypeFloat, "float"},
		{FieldTypeInt32, "int32"},
		{FieldTypeInt64, "int64"},
		{FieldTypeString, "string"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.tag.EngineType())
		assert.Equal(t, tt.tag, FieldTypeFromEngine(tt.want))
	}

	assert.Equal(t, FieldType(""), FieldTypeFromEngine("string[]"))
}
