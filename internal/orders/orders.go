package orders

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ib-77/monads/pkg/monad/future"
	"github.com/ib-77/monads/pkg/monad/seq"
)

type User struct {
	ID   uuid.UUID
	Name string
}

type Product struct {
	ID    uuid.UUID
	Name  string
	Price decimal.Decimal
}

type Order struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Items  []Product
}

// Subtotal sums the item prices.
func (o Order) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, price := range seq.Map(o.Items, func(p Product) decimal.Decimal { return p.Price }) {
		total = total.Add(price)
	}
	return total
}

var vatMultiplier = decimal.NewFromFloat(1.2)

// Store simulates a remote user/order service. Fetches resolve after a
// fixed latency; there is no real I/O behind them.
type Store struct {
	users   map[uuid.UUID]User
	orders  map[uuid.UUID]Order
	latency time.Duration
}

func NewStore(latency time.Duration) *Store {
	return &Store{
		users:   make(map[uuid.UUID]User),
		orders:  make(map[uuid.UUID]Order),
		latency: latency,
	}
}

func (s *Store) AddUser(name string) User {
	u := User{ID: uuid.New(), Name: name}
	s.users[u.ID] = u
	return u
}

func (s *Store) AddOrder(user User, items ...Product) Order {
	o := Order{ID: uuid.New(), UserID: user.ID, Items: items}
	s.orders[user.ID] = o
	return o
}

// FetchUser resolves asynchronously with the user, or an error when the
// id is unknown.
func (s *Store) FetchUser(ctx context.Context, id uuid.UUID) *future.Future[User] {
	return future.Go(ctx, func(ctx context.Context) (User, error) {
		if err := s.simulate(ctx); err != nil {
			return User{}, err
		}
		u, ok := s.users[id]
		if !ok {
			return User{}, fmt.Errorf("user %s not found", id)
		}
		return u, nil
	})
}

// FetchOrder resolves asynchronously with the user's open order.
func (s *Store) FetchOrder(ctx context.Context, user User) *future.Future[Order] {
	return future.Go(ctx, func(ctx context.Context) (Order, error) {
		if err := s.simulate(ctx); err != nil {
			return Order{}, err
		}
		o, ok := s.orders[user.ID]
		if !ok {
			return Order{}, fmt.Errorf("no order for user %s", user.Name)
		}
		return o, nil
	})
}

func (s *Store) simulate(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	select {
	case <-time.After(s.latency):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OrderTotal chains the two asynchronous fetches, feeding the fetched
// user into the order fetch, then maps the numeric transform (subtotal
// with VAT) over the final result.
func OrderTotal(ctx context.Context, s *Store, userID uuid.UUID) *future.Future[decimal.Decimal] {
	user := s.FetchUser(ctx, userID)

	order := future.Bind(ctx, user, func(ctx context.Context, u User) *future.Future[Order] {
		return s.FetchOrder(ctx, u)
	})

	return future.Map(ctx, order, func(ctx context.Context, o Order) decimal.Decimal {
		return o.Subtotal().Mul(vatMultiplier).Round(2)
	})
}

// NewDemoStore seeds a store with one user and a small order for the
// demo CLI and tests.
func NewDemoStore(latency time.Duration) (*Store, User) {
	s := NewStore(latency)
	u := s.AddUser("ada")
	s.AddOrder(u,
		Product{ID: uuid.New(), Name: "keyboard", Price: decimal.NewFromFloat(59.90)},
		Product{ID: uuid.New(), Name: "mouse", Price: decimal.NewFromFloat(24.50)},
	)
	return s, u
}
