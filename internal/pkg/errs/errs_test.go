package errs_test

import (
	"errors"
	"testing"

	"station/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("package", 17)

		assert.Equal(t, "package", err.ParamName)
		assert.Equal(t, 17, err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: package 17", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("bucket closed")
		err := errs.NewObjectNotFoundErrorWithCause("user", 1001, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "object not found: user 1001 (cause: bucket closed)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("shelf code")

		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: shelf code", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("PickedUp is not a valid status to pick up")
		err := errs.NewValueIsInvalidErrorWithCause("status is invalid", cause)

		assert.Equal(t,
			"value is invalid: status is invalid (cause: PickedUp is not a valid status to pick up)",
			err.Error())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("size", 7, 0, 4)

		assert.Equal(t, 7, err.Value)
		assert.Equal(t, "value is out of range: size is 7, min value is 0, max value is 4", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("too many attempts")
		err := errs.NewValueIsOutOfRangeErrorWithCause("shipping", 9, 0, 3, cause)

		assert.Equal(t,
			"value is out of range: shipping is 9, min value is 0, max value is 3 (cause: too many attempts)",
			err.Error())
	})

	t.Run("sanitize keeps the message on one line", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	err := errs.NewValueIsRequiredError("name")
	assert.Equal(t, "value is required: name", err.Error())

	withCause := errs.NewValueIsRequiredErrorWithCause("phone", errors.New("empty input"))
	assert.Equal(t, "value is required: phone (cause: empty input)", withCause.Error())
}

func TestVersionIsInvalidError(t *testing.T) {
	err := errs.NewVersionIsInvalidError("users")
	assert.Equal(t, "version is invalid: users", err.Error())

	withCause := errs.NewVersionIsInvalidErrorWithCause("users", errors.New("got 7, want 1"))
	assert.Equal(t, "version is invalid: users (cause: got 7, want 1)", withCause.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	require.ErrorIs(t, errs.NewObjectNotFoundError("user", 1), errs.ErrObjectNotFound)
	require.ErrorIs(t, errs.NewValueIsInvalidError("code"), errs.ErrValueIsInvalid)
	require.ErrorIs(t, errs.NewValueIsOutOfRangeError("size", 9, 0, 4), errs.ErrValueIsOutOfRange)
	require.ErrorIs(t, errs.NewValueIsRequiredError("name"), errs.ErrValueIsRequired)
	require.ErrorIs(t, errs.NewVersionIsInvalidError("ids"), errs.ErrVersionIsInvalid)

	var notFound *errs.ObjectNotFoundError
	wrapped := errors.Join(errors.New("lookup"), errs.NewObjectNotFoundError("package", 3))
	require.ErrorAs(t, wrapped, &notFound)
	assert.Equal(t, 3, notFound.ID)
}
