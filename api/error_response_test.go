package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

// local validator, for Field() in ValidationErrors to return json-name
func newValidatorJSON() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func TestExtractErrorFields_NonValidationError(t *testing.T) {
	fields := ExtractErrorFields(errors.New("not a validation error"))
	require.Empty(t, fields)

	resp := NewErrorResponse(ErrNoFiles)
	require.Equal(t, ErrorResponse{Error: "no files were sent"}, resp)
}

// helper: validate struct, get single error and check fields
func checkSingleFieldError(t *testing.T, v *validator.Validate, s any, expectedField, expectedMsg string) {
	t.Helper()
	err := v.Struct(s)
	require.Error(t, err)

	fields := ExtractErrorFields(err)
	require.Len(t, fields, 1)
	require.Equal(t, expectedField, fields[0].FieldName)
	require.Equal(t, expectedMsg, fields[0].ErrorMessage)
}

func TestExtractErrorFields_TagMessages(t *testing.T) {
	v := newValidatorJSON()

	t.Run("required", func(t *testing.T) {
		type S struct {
			ID string `json:"id" validate:"required"`
		}
		checkSingleFieldError(t, v, S{}, "id", "this field is required")
	})

	t.Run("uuid", func(t *testing.T) {
		type S struct {
			ID string `json:"id" validate:"uuid"`
		}
		checkSingleFieldError(t, v, S{ID: "not-a-uuid"}, "id", "invalid UUID format")
	})

	t.Run("min", func(t *testing.T) {
		type S struct {
			Limit int32 `json:"limit" validate:"min=1"`
		}
		checkSingleFieldError(t, v, S{Limit: 0}, "limit", "value is too short")
	})

	t.Run("max", func(t *testing.T) {
		type S struct {
			Limit int32 `json:"limit" validate:"max=100"`
		}
		checkSingleFieldError(t, v, S{Limit: 101}, "limit", "value is too long")
	})

	t.Run("default_fallback_for_unknown_but_valid_tag", func(t *testing.T) {
		// using valid tag, which is not in mapping, to get into default case.
		type S struct {
			Color string `json:"color" validate:"hexcolor"`
		}
		checkSingleFieldError(t, v, S{Color: "not-hex"}, "color", "invalid input")
	})
}

func TestExtractErrorFromBuffer(t *testing.T) {
	exp := ErrorResponse{
		Error: "invalid params",
		Fields: []ErrorField{
			{FieldName: "limit", ErrorMessage: "value is too long"},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(exp))

	got, err := extractErrorFromBuffer(&buf)
	require.NoError(t, err)
	require.Equal(t, exp, *got)
}
