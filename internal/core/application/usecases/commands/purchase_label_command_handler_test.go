package commands_test

import (
	"errors"
	"testing"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// seedSelectedSession stores a session that quoted r1 and r2 and selected r1.
func seedSelectedSession(t *testing.T, store *sessionStore) kernel.UUID {
	t.Helper()
	ctx := t.Context()
	id := seedSession(t, store)

	session := store.mustGet(t, id)
	pkg, err := packaging.NewCustomPackage(kernel.MustNewParcel(12, 10, 4, 1.5))
	require.NoError(t, err)
	require.NoError(t, session.ChangePackage(pkg))
	require.NoError(t, session.BeginRateRequest())
	require.NoError(t, session.CompleteRateRequest(shipment.NewQuoteResult(quoteRates(t, "r1", "r2"), nil)))
	_, err = session.SelectRate("r1")
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, session))
	return id
}

func purchaseHandler(store *sessionStore, provider *MockRateProvider, orderRepo *MockOrderRepository) commands.PurchaseLabelCommandHandler {
	uow := newTxUoW()
	uow.On("OrderRepository").Return(orderRepo)
	return commands.NewPurchaseLabelCommandHandler(orderUoWFactory{uow}, store, provider, discardLogger())
}

func TestPurchaseLabelCommandHandler_Success(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	provider := new(MockRateProvider)
	provider.On("Purchase", mock.Anything, "r1").
		Return(shipment.NewLabelTransaction(shipment.TransactionSuccess, "9400111", "https://labels/1.pdf"), nil).Once()

	orderRepo := new(MockOrderRepository)
	orderRepo.On("PersistLabel", mock.Anything, kernel.OrderID(1001), "9400111", "https://labels/1.pdf").Return(nil).Once()

	handler := purchaseHandler(store, provider, orderRepo)
	cmd, err := commands.NewPurchaseLabelCommand(sessionID)
	require.NoError(t, err)

	tx, err := handler.Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, "9400111", tx.TrackingNumber())

	session := store.mustGet(t, sessionID)
	assert.Equal(t, shipment.LabelIssued, session.Status())
	stored, ok := session.Transaction()
	require.True(t, ok)
	assert.Equal(t, shipment.TransactionSuccess, stored.Status())
	orderRepo.AssertExpectations(t)
}

func TestPurchaseLabelCommandHandler_QueuedIsIssued(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	provider := new(MockRateProvider)
	provider.On("Purchase", mock.Anything, "r1").
		Return(shipment.NewLabelTransaction(shipment.TransactionQueued, "9400222", "https://labels/2.pdf"), nil)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("PersistLabel", mock.Anything, kernel.OrderID(1001), "9400222", "https://labels/2.pdf").Return(nil)

	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
	_, err := purchaseHandler(store, provider, orderRepo).Handle(t.Context(), cmd)

	require.NoError(t, err)
	assert.Equal(t, shipment.LabelIssued, store.mustGet(t, sessionID).Status())
}

func TestPurchaseLabelCommandHandler_ErrorStatus(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	provider := new(MockRateProvider)
	provider.On("Purchase", mock.Anything, "r1").
		Return(shipment.NewLabelTransaction(shipment.TransactionError, "", "", "Rate expired"), nil)
	orderRepo := new(MockOrderRepository)

	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
	tx, err := purchaseHandler(store, provider, orderRepo).Handle(t.Context(), cmd)

	var providerErr *errs.ProviderError
	require.ErrorAs(t, err, &providerErr)
	assert.Equal(t, "Rate expired", providerErr.Message())
	assert.Equal(t, shipment.TransactionError, tx.Status())

	session := store.mustGet(t, sessionID)
	assert.Equal(t, shipment.LabelFailed, session.Status())
	assert.Equal(t, []string{"Rate expired"}, session.Messages())
	orderRepo.AssertNotCalled(t, "PersistLabel", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPurchaseLabelCommandHandler_TransportFailure(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	provider := new(MockRateProvider)
	provider.On("Purchase", mock.Anything, "r1").
		Return(shipment.LabelTransaction{}, errors.New("connection reset"))

	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
	_, err := purchaseHandler(store, provider, new(MockOrderRepository)).Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrProviderFailed)

	session := store.mustGet(t, sessionID)
	assert.Equal(t, shipment.LabelFailed, session.Status())
	stored, ok := session.Transaction()
	require.True(t, ok)
	assert.Equal(t, shipment.TransactionError, stored.Status())
	assert.Equal(t, "unknown provider error", stored.Message())
}

func TestPurchaseLabelCommandHandler_PersistFailureKeepsIssuedLabel(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	provider := new(MockRateProvider)
	provider.On("Purchase", mock.Anything, "r1").
		Return(shipment.NewLabelTransaction(shipment.TransactionSuccess, "9400333", "https://labels/3.pdf"), nil)
	orderRepo := new(MockOrderRepository)
	orderRepo.On("PersistLabel", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("db down"))

	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
	tx, err := purchaseHandler(store, provider, orderRepo).Handle(t.Context(), cmd)

	var notRecorded *errs.LabelNotRecordedError
	require.ErrorAs(t, err, &notRecorded)
	assert.Equal(t, "9400333", notRecorded.TrackingNumber)
	assert.Equal(t, "https://labels/3.pdf", notRecorded.LabelURL)
	assert.EqualError(t, notRecorded.Cause, "db down")
	assert.Equal(t, "9400333", tx.TrackingNumber())
	assert.Equal(t, shipment.LabelIssued, store.mustGet(t, sessionID).Status())
}

func TestPurchaseLabelCommandHandler_SecondPurchaseIsRejected(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	provider := new(MockRateProvider)
	provider.On("Purchase", mock.Anything, "r1").
		Return(shipment.NewLabelTransaction(shipment.TransactionSuccess, "9400444", "https://labels/4.pdf"), nil).Once()
	orderRepo := new(MockOrderRepository)
	orderRepo.On("PersistLabel", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	handler := purchaseHandler(store, provider, orderRepo)
	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)

	_, err := handler.Handle(t.Context(), cmd)
	require.NoError(t, err)

	_, err = handler.Handle(t.Context(), cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	provider.AssertNumberOfCalls(t, "Purchase", 1)
}

func TestPurchaseLabelCommandHandler_NoRateSelected(t *testing.T) {
	store := newSessionStore()
	sessionID := seedSession(t, store)
	provider := new(MockRateProvider)

	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
	_, err := purchaseHandler(store, provider, new(MockOrderRepository)).Handle(t.Context(), cmd)

	var stateErr *errs.StateIsInvalidError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "no rate selected", stateErr.Reason)
	provider.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything)
}

func TestPurchaseLabelCommandHandler_PackageChangeBlocksPurchase(t *testing.T) {
	ctx := t.Context()
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	changeHandler := commands.NewChangePackageCommandHandler(store, new(MockCatalog), "usps")
	spec, _ := commands.NewCustomPackageSpec(20, 10, 4, 1.5)
	changeCmd, _ := commands.NewChangePackageCommand(sessionID, spec)
	_, err := changeHandler.Handle(ctx, changeCmd)
	require.NoError(t, err)

	provider := new(MockRateProvider)
	cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
	_, err = purchaseHandler(store, provider, new(MockOrderRepository)).Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStateIsInvalid)
	provider.AssertNotCalled(t, "Purchase", mock.Anything, mock.Anything)
}

func TestPurchaseLabelCommandHandler_StaleSessionConflicts(t *testing.T) {
	ctx := t.Context()
	store := newSessionStore()
	sessionID := seedSelectedSession(t, store)

	stale := store.mustGet(t, sessionID)
	fresh := store.mustGet(t, sessionID)
	_, err := fresh.SelectRate("r2")
	require.NoError(t, err)
	require.NoError(t, store.Update(ctx, fresh))

	_, err = stale.BeginPurchase()
	require.NoError(t, err)

	err = store.Update(ctx, stale)

	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestPurchaseLabelCommandHandler_SessionTouchedDuringPurchase(t *testing.T) {
	t.Run("unchanged carrier selection is refused and not stored", func(t *testing.T) {
		ctx := t.Context()
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)
		changeCarriers := commands.NewChangeCarriersCommandHandler(store)

		var changeErr error
		provider := new(MockRateProvider)
		provider.On("Purchase", mock.Anything, "r1").
			Run(func(mock.Arguments) {
				changeCmd, _ := commands.NewChangeCarriersCommand(sessionID, shipment.AllCarriers())
				changeErr = changeCarriers.Handle(ctx, changeCmd)
			}).
			Return(shipment.NewLabelTransaction(shipment.TransactionSuccess, "9400555", "https://labels/5.pdf"), nil)
		orderRepo := new(MockOrderRepository)
		orderRepo.On("PersistLabel", mock.Anything, kernel.OrderID(1001), "9400555", "https://labels/5.pdf").Return(nil)

		cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
		_, err := purchaseHandler(store, provider, orderRepo).Handle(ctx, cmd)

		require.NoError(t, err)
		require.ErrorIs(t, changeErr, errs.ErrStateIsInvalid)
		assert.Equal(t, shipment.LabelIssued, store.mustGet(t, sessionID).Status())
	})

	t.Run("version bump during the call still records the label", func(t *testing.T) {
		ctx := t.Context()
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)

		provider := new(MockRateProvider)
		provider.On("Purchase", mock.Anything, "r1").
			Run(func(mock.Arguments) {
				concurrent := store.mustGet(t, sessionID)
				require.NoError(t, concurrent.Rules().Put(42, 5, kernel.MustNewParcel(9, 9, 9, 9)))
				require.NoError(t, store.Update(ctx, concurrent))
			}).
			Return(shipment.NewLabelTransaction(shipment.TransactionSuccess, "9400666", "https://labels/6.pdf"), nil)
		orderRepo := new(MockOrderRepository)
		orderRepo.On("PersistLabel", mock.Anything, kernel.OrderID(1001), "9400666", "https://labels/6.pdf").Return(nil)

		cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
		tx, err := purchaseHandler(store, provider, orderRepo).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.Equal(t, "9400666", tx.TrackingNumber())

		session := store.mustGet(t, sessionID)
		assert.Equal(t, shipment.LabelIssued, session.Status())
		stored, ok := session.Transaction()
		require.True(t, ok)
		assert.Equal(t, "9400666", stored.TrackingNumber())
		_, ok = session.Rules().Lookup(42, 5)
		assert.True(t, ok)
	})

	t.Run("version bump before a provider failure still fails the label", func(t *testing.T) {
		ctx := t.Context()
		store := newSessionStore()
		sessionID := seedSelectedSession(t, store)

		provider := new(MockRateProvider)
		provider.On("Purchase", mock.Anything, "r1").
			Run(func(mock.Arguments) {
				require.NoError(t, store.Update(ctx, store.mustGet(t, sessionID)))
			}).
			Return(shipment.LabelTransaction{}, errors.New("connection reset"))

		cmd, _ := commands.NewPurchaseLabelCommand(sessionID)
		_, err := purchaseHandler(store, provider, new(MockOrderRepository)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrProviderFailed)
		assert.NotErrorIs(t, err, errs.ErrVersionIsInvalid)
		assert.Equal(t, shipment.LabelFailed, store.mustGet(t, sessionID).Status())
	})
}
