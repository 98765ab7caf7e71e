package commands_test

import (
	"testing"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChangeCarriersCommandHandler(t *testing.T) {
	t.Run("different selection resets the quote", func(t *testing.T) {
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)
		handler := commands.NewChangeCarriersCommandHandler(store)

		custom, err := shipment.CustomCarriers("usps")
		require.NoError(t, err)
		cmd, err := commands.NewChangeCarriersCommand(sessionID, custom)
		require.NoError(t, err)

		require.NoError(t, handler.Handle(t.Context(), cmd))

		session := store.mustGet(t, sessionID)
		assert.Equal(t, shipment.Idle, session.Status())
		assert.True(t, session.Carriers().IsEqual(custom))
	})

	t.Run("same selection is not stored", func(t *testing.T) {
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)
		handler := commands.NewChangeCarriersCommandHandler(store)
		version := store.mustGet(t, sessionID).Version()

		cmd, _ := commands.NewChangeCarriersCommand(sessionID, shipment.AllCarriers())

		require.NoError(t, handler.Handle(t.Context(), cmd))

		session := store.mustGet(t, sessionID)
		assert.Equal(t, shipment.RateSelected, session.Status())
		assert.Equal(t, version, session.Version())
	})

	t.Run("refused while a label is requested", func(t *testing.T) {
		ctx := t.Context()
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)
		session := store.mustGet(t, sessionID)
		_, err := session.BeginPurchase()
		require.NoError(t, err)
		require.NoError(t, store.Update(ctx, session))
		version := store.mustGet(t, sessionID).Version()

		handler := commands.NewChangeCarriersCommandHandler(store)
		cmd, _ := commands.NewChangeCarriersCommand(sessionID, shipment.AllCarriers())

		err = handler.Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrStateIsInvalid)
		assert.Equal(t, version, store.mustGet(t, sessionID).Version())
	})
}
