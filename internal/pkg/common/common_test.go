package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestCustomErrorResponse(t *testing.T) {
	cause := errors.New("unexpected EOF")
	e := NewError(ErrCodeInvalidRequest, "無效的請求", http.StatusBadRequest, cause)

	assert.Equal(t, "unexpected EOF", e.Error())
	assert.ErrorIs(t, e, cause)
	assert.Equal(t, ErrorResponse{Code: ErrCodeInvalidRequest, Message: "無效的請求"}, e.Response(false))
	assert.Equal(t, "unexpected EOF", e.Response(true).Details)
	assert.Equal(t, "請求內容過大", ErrPayloadTooLarge.Error())
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("recipe_text is required")
	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidationError(errors.New("other")))
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		A *string `json:"a"`
	}
	require.NoError(t, ParseJSON(`{"a":"x"}`, &v))
	require.NotNil(t, v.A)
	assert.Equal(t, "x", *v.A)

	assert.Error(t, ParseJSON(`{"a":"x"} {"a":"y"}`, &v))
	assert.Error(t, ParseJSON(`{"a":`, &v))

	s, err := ToJSON(map[string]int{"n": 1})
	require.NoError(t, err)
	assert.Equal(t, `{"n":1}`, s)
}

func TestFilterFields(t *testing.T) {
	fields := filterFields([]zap.Field{
		zap.String("recipe_text", "1 cup sugar"),
		zap.String("line_raw", "1 cup sugar"),
		zap.Int("行數", 1),
	})
	require.Len(t, fields, 1)
	assert.Equal(t, "行數", fields[0].Key)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel(" DEBUG "))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "b", FirstNonEmpty("", "b", "c"))
	assert.Equal(t, "", FirstNonEmpty())
	assert.Len(t, GenerateUUID(), 36)
}
