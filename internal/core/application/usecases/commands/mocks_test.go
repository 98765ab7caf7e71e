package commands_test

import (
	"context"
	"sync"
	"testing"

	"shipdesk/internal/core/application/usecases/commands"
	"shipdesk/internal/core/domain/model/kernel"
	"shipdesk/internal/core/domain/model/order"
	"shipdesk/internal/core/domain/model/packaging"
	"shipdesk/internal/core/domain/model/shipment"
	"shipdesk/internal/core/ports"
	"shipdesk/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) PersistLabel(ctx context.Context, id kernel.OrderID, tracking, labelURL string) error {
	args := m.Called(ctx, id, tracking, labelURL)
	return args.Error(0)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) GetNativeDimensions(ctx context.Context, id kernel.ProductID) (kernel.Parcel, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(kernel.Parcel), args.Bool(1), args.Error(2)
}

type MockRuleRepository struct{ mock.Mock }

func (m *MockRuleRepository) Get(ctx context.Context, id kernel.ProductID) (*packaging.RuleSet, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*packaging.RuleSet), args.Error(1)
}

func (m *MockRuleRepository) Put(ctx context.Context, id kernel.ProductID, q kernel.Quantity, p kernel.Parcel) error {
	args := m.Called(ctx, id, q, p)
	return args.Error(0)
}

type MockRateProvider struct{ mock.Mock }

func (m *MockRateProvider) Quote(ctx context.Context, req ports.QuoteRequest) (ports.QuoteResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(ports.QuoteResponse), args.Error(1)
}

func (m *MockRateProvider) Purchase(ctx context.Context, rateID string) (shipment.LabelTransaction, error) {
	args := m.Called(ctx, rateID)
	return args.Get(0).(shipment.LabelTransaction), args.Error(1)
}

type MockCatalog struct{ mock.Mock }

func (m *MockCatalog) List(ctx context.Context, carrier string) (packaging.Catalog, error) {
	args := m.Called(ctx, carrier)
	return args.Get(0).(packaging.Catalog), args.Error(1)
}

// MockUoW implements every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) PackagingRuleRepository() ports.PackagingRuleRepository {
	args := m.Called()
	return args.Get(0).(ports.PackagingRuleRepository)
}

type uowFactory struct{ uow *MockUoW }

func (f uowFactory) Create() commands.UoW { return f.uow }

type orderUoWFactory struct{ uow *MockUoW }

func (f orderUoWFactory) Create() commands.OrderUoW { return f.uow }

type ruleUoWFactory struct{ uow *MockUoW }

func (f ruleUoWFactory) Create() commands.RuleUoW { return f.uow }

// newTxUoW returns a unit of work that accepts any Begin, Commit and Rollback.
func newTxUoW() *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Commit", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	return uow
}

// sessionStore is an in-memory session repository with version checks.
type sessionStore struct {
	mu      sync.Mutex
	states  map[string]shipment.SessionState
	updates int
}

func newSessionStore() *sessionStore {
	return &sessionStore{states: make(map[string]shipment.SessionState)}
}

func (s *sessionStore) Add(_ context.Context, session *shipment.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states[session.ID().String()] = session.State()
	return nil
}

func (s *sessionStore) Get(_ context.Context, id kernel.UUID) (*shipment.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("session", id.String())
	}
	return shipment.RestoreSession(st)
}

func (s *sessionStore) Update(_ context.Context, session *shipment.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	st, ok := s.states[session.ID().String()]
	if !ok {
		return errs.NewObjectNotFoundError("session", session.ID().String())
	}
	if st.Version != session.Version() {
		return errs.NewVersionIsInvalidError("session", st.Version, session.Version())
	}
	session.AdvanceVersion()
	s.states[session.ID().String()] = session.State()
	s.updates++
	return nil
}

func (s *sessionStore) mustGet(t *testing.T, id kernel.UUID) *shipment.Session {
	t.Helper()
	session, err := s.Get(t.Context(), id)
	require.NoError(t, err)
	return session
}

func shippingAddress() kernel.Address {
	return kernel.Address{
		Name:    "Mr Hippo",
		Street1: "965 Mission St",
		City:    "San Francisco",
		State:   "CA",
		Zip:     "94103",
		Country: "US",
	}
}

func storeOrigin() kernel.Address {
	return kernel.Address{
		Name:    "Shop",
		Street1: "215 Clayton St.",
		City:    "San Francisco",
		State:   "CA",
		Zip:     "94117",
		Country: "US",
	}
}

func testOrder(t *testing.T) *order.Order {
	t.Helper()
	line, err := order.NewLine(42, 3)
	require.NoError(t, err)
	o, err := order.NewOrder(1001, shippingAddress(), line)
	require.NoError(t, err)
	return o
}

func testCatalog(t *testing.T) packaging.Catalog {
	t.Helper()
	box, err := packaging.NewFlatRateTemplate(packaging.FlatRateTemplateParams{
		ID: "BoxA", DisplayName: "Box A", Carrier: "usps",
		Length: 12.5, Width: 9.5, Height: 0.75, MaxWeight: 70,
	})
	require.NoError(t, err)
	return packaging.MustNewCatalog(box)
}

// seedSession stores a fresh session for order 1001 and returns its id.
func seedSession(t *testing.T, store *sessionStore) kernel.UUID {
	t.Helper()
	s, err := shipment.NewSession(kernel.NewUUID(), 1001, nil)
	require.NoError(t, err)
	require.NoError(t, store.Add(t.Context(), s))
	return s.ID()
}
