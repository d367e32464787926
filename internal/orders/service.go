package orders

import "context"

// Store is the persistence surface the service needs; *Repo satisfies it.
type Store interface {
	CreateOrder(ctx context.Context, in CreateOrderInput) (Confirmation, error)
	GetOrder(ctx context.Context, id int64) (Order, error)
}

type Service struct{ Store Store }

func NewService(store Store) *Service { return &Service{Store: store} }

// Create validates the cart and delegates the transactional write.
// Validation failures never reach storage.
func (s *Service) Create(ctx context.Context, in CreateOrderInput) (Confirmation, error) {
	if err := in.Validate(); err != nil {
		return Confirmation{}, err
	}
	return s.Store.CreateOrder(ctx, in)
}

func (s *Service) GetByID(ctx context.Context, id int64) (Order, error) {
	return s.Store.GetOrder(ctx, id)
}
