package commands_test

import (
	"strings"
	"testing"

	"station/internal/core/application/usecases/commands"
	"station/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterUserCommand(t *testing.T) {
	t.Run("should trim the name and phone", func(t *testing.T) {
		cmd, err := commands.NewRegisterUserCommand("  alice ", " 555-0100\n")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "alice", cmd.Name())
		assert.Equal(t, "555-0100", cmd.Phone())
	})

	t.Run("should require both fields", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(" ", "")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "name")
		assert.Contains(t, err.Error(), "phone")
	})

	t.Run("should reject a name longer than 49 characters", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand(strings.Repeat("a", 50), "1")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should reject a phone longer than 19 characters", func(t *testing.T) {
		_, err := commands.NewRegisterUserCommand("alice", strings.Repeat("1", 20))

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		require.ErrorIs(t, commands.RegisterUserCommand{}.Validate(), commands.ErrRegisterUserCommandIsNotConstructed)
	})
}
