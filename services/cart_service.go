package services

import (
	"context"
	"sync"

	"github.com/Asian-Restaurant/backend/entity"
	"github.com/Asian-Restaurant/backend/pkg/apperr"
	"github.com/Asian-Restaurant/backend/repository"

	"go.uber.org/zap"
)

// DefaultCartKey is the legacy shared cart. Clients that send no X-Cart-ID
// all land here, so they share one cart exactly like the previous system
// did for everyone. Known quirk, kept for those clients.
const DefaultCartKey = "generic_cart"

// CartStore holds every in-memory cart. Carts live until process restart;
// there is no clear operation. All mutation runs under the mutex.
type CartStore struct {
	mu    sync.Mutex
	carts map[string]map[string]*entity.CartLine
}

func NewCartStore() *CartStore {
	return &CartStore{carts: make(map[string]map[string]*entity.CartLine)}
}

// Add accumulates one addition into the cart. Repeated additions of the
// same dish grow quantity and total price; the unit price and comment of
// the first addition stick. Negative and zero values pass through
// unchecked, as the previous system allowed.
func (s *CartStore) Add(cartKey, nameDish string, price, quantity float64, comment string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[cartKey]
	if !ok {
		cart = make(map[string]*entity.CartLine)
		s.carts[cartKey] = cart
	}

	if line, ok := cart[nameDish]; ok {
		line.Quantity += quantity
		line.TotalPrice += price * quantity
		return
	}
	cart[nameDish] = &entity.CartLine{
		NameDish:   nameDish,
		Comment:    comment,
		Price:      price,
		Quantity:   quantity,
		TotalPrice: price * quantity,
	}
}

// Lines returns the cart's lines, each carrying its dish name. Nil when
// the cart is absent or empty. Order is map iteration order, arbitrary.
func (s *CartStore) Lines(cartKey string) []entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart := s.carts[cartKey]
	if len(cart) == 0 {
		return nil
	}
	out := make([]entity.CartLine, 0, len(cart))
	for _, line := range cart {
		out = append(out, *line)
	}
	return out
}

// Snapshot copies the cart keyed by dish name, the shape /save_cart returns.
func (s *CartStore) Snapshot(cartKey string) map[string]entity.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(map[string]entity.CartLine, len(s.carts[cartKey]))
	for name, line := range s.carts[cartKey] {
		out[name] = *line
	}
	return out
}

// AddToCartIn mirrors the /cart POST body. A nil comment takes the
// default; an explicitly empty one is kept.
type AddToCartIn struct {
	NameDish string  `json:"name_dish"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Comment  *string `json:"comment"`
}

func (in *AddToCartIn) comment() string {
	if in.Comment == nil {
		return entity.DefaultCartComment
	}
	return *in.Comment
}

// SaveCartItem is one entry of the /save_cart payload.
type SaveCartItem struct {
	NameDish string  `json:"name_dish"`
	Price    float64 `json:"price"`
	Quantity float64 `json:"quantity"`
	Comment  *string `json:"comment"`
}

type CartService struct {
	store *CartStore
	lines *repository.CartLineRepository
	log   *zap.Logger
}

func NewCartService(store *CartStore, lines *repository.CartLineRepository, log *zap.Logger) *CartService {
	return &CartService{store: store, lines: lines, log: log}
}

// Add mutates the in-memory cart only; nothing is persisted.
func (s *CartService) Add(cartKey string, in *AddToCartIn) {
	s.store.Add(cartKey, in.NameDish, in.Price, in.Quantity, in.comment())
}

func (s *CartService) Get(cartKey string) ([]entity.CartLine, error) {
	lines := s.store.Lines(cartKey)
	if lines == nil {
		return nil, apperr.NotFound("Cart is empty")
	}
	return lines, nil
}

// SaveCart applies each item to the in-memory cart and appends a matching
// line to the durable carts collection. Items are validated one at a time,
// so an invalid item aborts mid-list with earlier items already applied,
// and a failed append leaves the in-memory cart ahead of the durable
// record. Both gaps match the previous system and are documented rather
// than fixed here.
func (s *CartService) SaveCart(ctx context.Context, cartKey string, items []SaveCartItem) (map[string]entity.CartLine, error) {
	for _, item := range items {
		// Zero price or quantity counts as missing, same as the
		// previous system's truthiness check.
		if item.NameDish == "" || item.Price == 0 || item.Quantity == 0 {
			return nil, apperr.Validation("Missing required fields")
		}

		comment := entity.DefaultCartComment
		if item.Comment != nil {
			comment = *item.Comment
		}

		s.store.Add(cartKey, item.NameDish, item.Price, item.Quantity, comment)

		line := &entity.CartLine{
			NameDish:   item.NameDish,
			Comment:    comment,
			Price:      item.Price,
			Quantity:   item.Quantity,
			TotalPrice: item.Price * item.Quantity,
		}
		if err := s.lines.Append(ctx, line); err != nil {
			s.log.Error("save_cart: durable append failed",
				zap.String("cart", cartKey), zap.String("dish", item.NameDish), zap.Error(err))
			return nil, apperr.Internal("Internal server error", err)
		}
	}
	return s.store.Snapshot(cartKey), nil
}
