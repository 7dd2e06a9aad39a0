package errors_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	pkgerrors "github.com/agentstation/varstars/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := pkgerrors.New("test error")
	assert.NotNil(t, err)
	assert.Equal(t, "test error", err.Error())
}

func TestValidationError(t *testing.T) {
	t.Run("with field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{
			Field:   "max_magnitude",
			Message: "must be positive",
		}
		assert.Equal(t, "validation failed for field max_magnitude: must be positive", err.Error())
		assert.True(t, errors.Is(err, pkgerrors.ErrInvalidInput))
	})

	t.Run("without field", func(t *testing.T) {
		err := &pkgerrors.ValidationError{Message: "invalid configuration"}
		assert.Equal(t, "validation failed: invalid configuration", err.Error())
		assert.True(t, pkgerrors.IsValidationError(err))
	})

	t.Run("constructor", func(t *testing.T) {
		err := pkgerrors.NewValidationError("reference_jd", -1.0, "must be positive")
		assert.Contains(t, err.Error(), "reference_jd")
		assert.Equal(t, -1.0, err.Value)
	})
}

func TestConfigError(t *testing.T) {
	base := errors.New("bad value")
	err := pkgerrors.NewConfigError("logging", "invalid level", base)
	assert.Equal(t, "configuration error in logging: invalid level", err.Error())
	assert.ErrorIs(t, err, base)

	err = pkgerrors.NewConfigError("", "missing file", nil)
	assert.Equal(t, "configuration error: missing file", err.Error())
}

func TestParseError(t *testing.T) {
	t.Run("field error", func(t *testing.T) {
		err := pkgerrors.NewFieldError("gcvs", "period", "abc", pkgerrors.ErrInvalidInput)
		assert.Equal(t, `gcvs parse error: field period "abc": invalid input`, err.Error())
		assert.True(t, pkgerrors.IsParseError(err))
		assert.ErrorIs(t, err, pkgerrors.ErrInvalidInput)
	})

	t.Run("with line", func(t *testing.T) {
		err := pkgerrors.NewFieldError("krakow", "name", "XX", pkgerrors.ErrNoMatch)
		err.Line = 12
		assert.Equal(t, `krakow parse error at line 12: field name "XX": pattern mismatch`, err.Error())
		assert.ErrorIs(t, err, pkgerrors.ErrNoMatch)
	})

	t.Run("with file and line", func(t *testing.T) {
		err := &pkgerrors.ParseError{Format: "gcvs", File: "gcvs.dat", Line: 3, Message: "bad"}
		assert.Equal(t, "parse error in gcvs at gcvs.dat:3: bad", err.Error())
	})

	t.Run("wrapped", func(t *testing.T) {
		err := fmt.Errorf("decoding: %w", pkgerrors.WrapParse("json", "out.json", errors.New("eof")))
		assert.True(t, pkgerrors.IsParseError(err))
		assert.False(t, pkgerrors.IsIOError(err))
	})
}

func TestIOError(t *testing.T) {
	err := pkgerrors.NewIOError("open", "/missing", fs.ErrNotExist)
	assert.Equal(t, "IO error during open of /missing: file does not exist", err.Error())
	assert.ErrorIs(t, err, fs.ErrNotExist)
	assert.True(t, pkgerrors.IsIOError(fmt.Errorf("reading catalog: %w", err)))

	noPath := pkgerrors.NewIOError("read", "", errors.New("closed"))
	assert.Equal(t, "IO error during read: closed", noPath.Error())
}

func TestWrapHelpers(t *testing.T) {
	require.NoError(t, pkgerrors.WrapIO("read", "x", nil))
	require.NoError(t, pkgerrors.WrapParse("gcvs", "x", nil))
	require.NoError(t, pkgerrors.WrapValidation("x", nil))

	err := pkgerrors.WrapValidation("format", errors.New("unknown format"))
	assert.True(t, pkgerrors.IsValidationError(err))
	assert.Contains(t, err.Error(), "unknown format")
}
