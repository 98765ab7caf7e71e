package commands_test

import (
	"testing"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRateCommandHandler(t *testing.T) {
	t.Run("switches the selection", func(t *testing.T) {
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)
		handler := commands.NewSelectRateCommandHandler(store)

		cmd, err := commands.NewSelectRateCommand(sessionID, "r2")
		require.NoError(t, err)
		rate, err := handler.Handle(t.Context(), cmd)

		require.NoError(t, err)
		assert.Equal(t, "r2", rate.ProviderID())
		selected, ok := store.mustGet(t, sessionID).SelectedRate()
		require.True(t, ok)
		assert.Equal(t, "r2", selected.ProviderID())
	})

	t.Run("unknown rate", func(t *testing.T) {
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)
		handler := commands.NewSelectRateCommandHandler(store)

		cmd, _ := commands.NewSelectRateCommand(sessionID, "r9")
		_, err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("nothing quoted yet", func(t *testing.T) {
		store := newSessionStore()
		sessionID := seedSession(t, store)
		handler := commands.NewSelectRateCommandHandler(store)

		cmd, _ := commands.NewSelectRateCommand(sessionID, "r1")
		_, err := handler.Handle(t.Context(), cmd)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, shipment.Idle, store.mustGet(t, sessionID).Status())
	})
}

func TestNewSelectRateCommand(t *testing.T) {
	_, err := commands.NewSelectRateCommand(kernel.UUID{}, "  ")

	require.ErrorIs(t, err, errs.ErrValueIsRequired)
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	var cmd commands.SelectRateCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSelectRateCommandIsNotConstructed)
}
