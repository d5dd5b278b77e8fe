package commands_test

import (
	"context"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/reputation"
	"orderflow/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockHistoryRepository struct{ mock.Mock }

func (m *MockHistoryRepository) Add(ctx context.Context, h *order.History) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHistoryRepository) Append(ctx context.Context, h *order.History) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockHistoryRepository) Get(ctx context.Context, orderID kernel.UUID) (*order.History, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.History), args.Error(1)
}

type MockReputationRepository struct{ mock.Mock }

func (m *MockReputationRepository) Add(ctx context.Context, r *reputation.Reputation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReputationRepository) Update(ctx context.Context, r *reputation.Reputation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReputationRepository) Get(ctx context.Context, customerID kernel.UUID) (*reputation.Reputation, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reputation.Reputation), args.Error(1)
}

// MockUoW satisfies every unit-of-work shape the handlers need.
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

func (m *MockUoW) HistoryRepository() ports.HistoryRepository {
	args := m.Called()
	return args.Get(0).(ports.HistoryRepository)
}

func (m *MockUoW) ReputationRepository() ports.ReputationRepository {
	args := m.Called()
	return args.Get(0).(ports.ReputationRepository)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW { return f() }

type FuncReputationUoWFactory func() commands.ReputationUoW

func (f FuncReputationUoWFactory) Create() commands.ReputationUoW { return f() }

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW { return f() }

// stubClock returns a fixed timestamp.
type stubClock struct{ now uint64 }

func (c stubClock) Now() uint64 { return c.now }

// capturePublisher records every published event.
type capturePublisher struct{ events []order.Event }

func (p *capturePublisher) Publish(_ context.Context, event order.Event) {
	p.events = append(p.events, event)
}
