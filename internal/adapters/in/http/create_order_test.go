package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/core/application/usecases/queries"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/ports"
	"orderflow/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memOrderStore backs the fake unit of work with in-memory maps keyed by
// the aggregate identifier.
type memOrderStore struct {
	orders    map[string]*order.Order
	histories map[string]*order.History
}

func newMemOrderStore() *memOrderStore {
	return &memOrderStore{
		orders:    make(map[string]*order.Order),
		histories: make(map[string]*order.History),
	}
}

type memOrderRepo struct{ store *memOrderStore }

func (r memOrderRepo) Add(_ context.Context, aggregate *order.Order) error {
	id := aggregate.ID().String()
	if _, ok := r.store.orders[id]; ok {
		return errs.NewObjectAlreadyExistsError("order", id)
	}
	r.store.orders[id] = aggregate
	return nil
}

func (r memOrderRepo) Update(_ context.Context, aggregate *order.Order) error {
	r.store.orders[aggregate.ID().String()] = aggregate
	return nil
}

func (r memOrderRepo) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	o, ok := r.store.orders[id.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return o, nil
}

type memHistoryRepo struct{ store *memOrderStore }

func (r memHistoryRepo) Add(_ context.Context, aggregate *order.History) error {
	r.store.histories[aggregate.OrderID().String()] = aggregate
	return nil
}

func (r memHistoryRepo) Append(_ context.Context, aggregate *order.History) error {
	r.store.histories[aggregate.OrderID().String()] = aggregate
	return nil
}

func (r memHistoryRepo) Get(_ context.Context, orderID kernel.UUID) (*order.History, error) {
	h, ok := r.store.histories[orderID.String()]
	if !ok {
		return nil, errs.NewObjectNotFoundError("history", orderID.String())
	}
	return h, nil
}

type memOrderUoW struct{ store *memOrderStore }

func (u memOrderUoW) Begin(context.Context) error                { return nil }
func (u memOrderUoW) Commit(context.Context) error               { return nil }
func (u memOrderUoW) Rollback(context.Context) error             { return nil }
func (u memOrderUoW) OrderRepository() ports.OrderRepository     { return memOrderRepo{u.store} }
func (u memOrderUoW) HistoryRepository() ports.HistoryRepository { return memHistoryRepo{u.store} }

type memOrderUoWFactory struct{ store *memOrderStore }

func (f memOrderUoWFactory) Create() commands.OrderUoW { return memOrderUoW{f.store} }

type fixedClock struct{ now uint64 }

func (c fixedClock) Now() uint64 { return c.now }

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, order.Event) {}

func newCreateOrderServer(store *memOrderStore) *echo.Echo {
	handler := commands.NewCreateOrderCommandHandler(
		memOrderUoWFactory{store}, fixedClock{now: 1000}, noopPublisher{},
	)
	srv := NewServer(
		commands.CreateReputationCommandHandler{},
		handler,
		commands.UpdateOrderStatusCommandHandler{},
		queries.GetOrderQueryHandler{},
		queries.GetOrderHistoryQueryHandler{},
		queries.GetReputationQueryHandler{},
	)
	e := echo.New()
	srv.RegisterRoutes(e)
	return e
}

func postOrder(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateOrder_GeneratesIDWhenAbsent(t *testing.T) {
	store := newMemOrderStore()
	e := newCreateOrderServer(store)

	rec := postOrder(e, `{"customer_id":"`+kernel.NewUUID().String()+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp NewOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	_, err := kernel.UUIDFromString(resp.OrderID)
	require.NoError(t, err)
	assert.Contains(t, store.orders, resp.OrderID)
}

func TestCreateOrder_HonorsClientSuppliedID(t *testing.T) {
	store := newMemOrderStore()
	e := newCreateOrderServer(store)
	orderID := kernel.NewUUID().String()
	customerID := kernel.NewUUID().String()

	rec := postOrder(e, `{"order_id":"`+orderID+`","customer_id":"`+customerID+`"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp NewOrderResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, orderID, resp.OrderID)
	require.Contains(t, store.orders, orderID)
	assert.Equal(t, customerID, store.orders[orderID].CustomerID().String())
}

func TestCreateOrder_DuplicateClientSuppliedID(t *testing.T) {
	store := newMemOrderStore()
	e := newCreateOrderServer(store)
	orderID := kernel.NewUUID().String()

	first := postOrder(e, `{"order_id":"`+orderID+`","customer_id":"`+kernel.NewUUID().String()+`"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := postOrder(e, `{"order_id":"`+orderID+`","customer_id":"`+kernel.NewUUID().String()+`"}`)
	assert.Equal(t, http.StatusConflict, second.Code)
}

func TestCreateOrder_RejectsMalformedClientSuppliedID(t *testing.T) {
	store := newMemOrderStore()
	e := newCreateOrderServer(store)

	rec := postOrder(e, `{"order_id":"not-a-uuid","customer_id":"`+kernel.NewUUID().String()+`"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, store.orders)
}
