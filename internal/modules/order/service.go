package order

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/modules/catalog"
)

// Automatic discount: 5% off when the subtotal strictly exceeds the
// threshold and the caller supplied no discount of their own.
var (
	autoDiscountRate      = decimal.RequireFromString("0.05")
	autoDiscountThreshold = decimal.RequireFromString("20.00")
)

// Clock supplies the fulfillment timestamp; injected so tests are
// deterministic.
type Clock func() time.Time

// Catalog is the slice of the catalog service fulfillment depends on.
type Catalog interface {
	FindProduct(ctx context.Context, id string) (catalog.Product, bool)
	ReserveStock(ctx context.Context, lines []catalog.Reservation) error
}

// Ledger credits loyalty points after a sale.
type Ledger interface {
	AccruePoints(ctx context.Context, customerID, orderID string, total decimal.Decimal) error
}

// Service defines order business logic.
type Service interface {
	// CreateOrder runs the fulfillment sequence: validate, assign
	// identity and timestamp, re-price against the catalog, reserve
	// stock, resolve the discount, persist, then credit loyalty
	// points best-effort.
	CreateOrder(ctx context.Context, draft Order) (Order, error)

	ListOrders(ctx context.Context) []Order
}

type service struct {
	repo    Repository
	catalog Catalog
	ledger  Ledger
	now     Clock
	log     *zap.Logger
}

// NewService creates the order service.
func NewService(repo Repository, cat Catalog, ledger Ledger, now Clock, log *zap.Logger) Service {
	return &service{repo: repo, catalog: cat, ledger: ledger, now: now, log: log}
}

func (s *service) ListOrders(ctx context.Context) []Order {
	return s.repo.FindAll(ctx)
}

func (s *service) CreateOrder(ctx context.Context, draft Order) (Order, error) {
	if len(draft.Items) == 0 {
		return Order{}, ErrEmptyCart
	}

	// Identity may come from the caller (idempotent retries); the
	// timestamp never does.
	if draft.ID == "" {
		draft.ID = uuid.NewString()
	}
	draft.Date = s.now()

	// Re-price from the catalog. Client-submitted prices are
	// discarded; unknown or archived ids are dropped with a warning
	// rather than failing the whole order, to tolerate stale tills.
	subtotal := decimal.Zero
	lines := make([]Line, 0, len(draft.Items))
	for _, item := range draft.Items {
		if item.Quantity <= 0 {
			return Order{}, fmt.Errorf("quantity must be positive for product %s", item.ProductID)
		}
		p, ok := s.catalog.FindProduct(ctx, item.ProductID)
		if !ok || p.Status == catalog.StatusArchived {
			s.log.Warn("unknown product dropped from order",
				zap.String("product_id", item.ProductID),
				zap.String("order_id", draft.ID))
			continue
		}
		lines = append(lines, Line{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  item.Quantity,
			Type:      p.Type,
		})
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	draft.Items = lines

	// Reserve stock for every resolved line in one shot; a failing
	// line leaves all stock untouched.
	reservations := make([]catalog.Reservation, 0, len(lines))
	for _, l := range lines {
		reservations = append(reservations, catalog.Reservation{ProductID: l.ProductID, Quantity: l.Quantity})
	}
	if err := s.catalog.ReserveStock(ctx, reservations); err != nil {
		return Order{}, err
	}

	// Discount: explicit caller override wins, otherwise the
	// automatic discount, otherwise none. Clamped to [0, subtotal].
	discount := draft.DiscountAmount
	if discount.IsZero() && subtotal.GreaterThan(autoDiscountThreshold) {
		discount = subtotal.Mul(autoDiscountRate).Round(2)
		draft.DiscountReason = fmt.Sprintf("Automatic %s%% discount (subtotal over %s)",
			autoDiscountRate.Mul(decimal.NewFromInt(100)).String(),
			autoDiscountThreshold.String())
	}
	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if discount.GreaterThan(subtotal) {
		discount = subtotal
	}

	draft.Subtotal = subtotal
	draft.DiscountAmount = discount
	draft.TotalAmount = subtotal.Sub(discount)

	saved := s.repo.Save(ctx, draft)
	s.log.Info("order created",
		zap.String("order_id", saved.ID),
		zap.String("subtotal", saved.Subtotal.String()),
		zap.String("discount", saved.DiscountAmount.String()),
		zap.String("total", saved.TotalAmount.String()))

	// Loyalty accrual is best-effort: the sale is the primary fact
	// and is already persisted, so a failure here is logged once and
	// never rolls anything back.
	if saved.CustomerID != "" {
		if err := s.ledger.AccruePoints(ctx, saved.CustomerID, saved.ID, saved.TotalAmount); err != nil {
			s.log.Warn("loyalty accrual failed",
				zap.String("order_id", saved.ID),
				zap.String("customer_id", saved.CustomerID),
				zap.Error(err))
		}
	}

	return saved, nil
}
