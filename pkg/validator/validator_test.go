package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name     string   `validate:"required"`
	Category string   `validate:"category"`
	Levels   []string `validate:"dive,difficulty"`
	Mode     string   `validate:"quizmode"`
}

func TestValidateStruct(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      sample
		wantErr string
	}{
		{
			name: "valid",
			in:   sample{Name: "q", Category: "parking", Levels: []string{"easy", "hard"}, Mode: "test"},
		},
		{
			name:    "unknown category",
			in:      sample{Name: "q", Category: "boats", Mode: "test"},
			wantErr: "Tag: category",
		},
		{
			name:    "unknown difficulty inside slice",
			in:      sample{Name: "q", Category: "roads", Levels: []string{"easy", "brutal"}, Mode: "study"},
			wantErr: "Tag: difficulty",
		},
		{
			name:    "missing name",
			in:      sample{Category: "roads", Mode: "practice"},
			wantErr: "Tag: required",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := ValidateStruct(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidateVar(t *testing.T) {
	t.Parallel()

	require.NoError(t, ValidateVar("review", "required,quizmode"))
	require.Error(t, ValidateVar("exam", "required,quizmode"))
}

func TestEnumTagsRegistered(t *testing.T) {
	t.Parallel()

	for tag, values := range enums {
		tag, values := tag, values
		t.Run(tag, func(t *testing.T) {
			t.Parallel()

			for _, v := range values {
				assert.NoError(t, ValidateVar(v, tag))
			}
			assert.Error(t, ValidateVar("unknown", tag))
		})
	}
}
