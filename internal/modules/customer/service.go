package customer

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Service defines customer and loyalty-ledger business logic.
type Service interface {
	ListCustomers(ctx context.Context) []Customer
	FindCustomer(ctx context.Context, id string) (Customer, bool)
	FindByPhone(ctx context.Context, phone string) (Customer, bool)
	SaveCustomer(ctx context.Context, c Customer) (Customer, error)
	DeleteCustomer(ctx context.Context, id string) bool

	// AccruePoints credits floor(total) * PointsPerEuro to the
	// account. Crediting the same order id twice is a no-op, so a
	// retried fulfillment cannot double-credit.
	AccruePoints(ctx context.Context, customerID, orderID string, total decimal.Decimal) error

	// RedeemPoints debits points and returns the earned discount.
	RedeemPoints(ctx context.Context, customerID string, points int) (decimal.Decimal, error)
}

type service struct {
	repo Repository
	log  *zap.Logger

	mu       sync.Mutex
	credited map[string]struct{} // order ids already credited this process
}

// NewService creates the customer service.
func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log, credited: make(map[string]struct{})}
}

func (s *service) ListCustomers(ctx context.Context) []Customer {
	return s.repo.FindAll(ctx)
}

func (s *service) FindCustomer(ctx context.Context, id string) (Customer, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) FindByPhone(ctx context.Context, phone string) (Customer, bool) {
	return s.repo.FindByPhone(ctx, phone)
}

func (s *service) SaveCustomer(ctx context.Context, c Customer) (Customer, error) {
	if strings.TrimSpace(c.Name) == "" {
		return Customer{}, errors.New("customer name is required")
	}
	if c.LoyaltyPoints < 0 {
		return Customer{}, errors.New("loyalty points must not be negative")
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
		s.log.Info("customer created", zap.String("name", c.Name), zap.String("phone", c.Phone))
	} else {
		s.log.Info("customer updated", zap.String("id", c.ID))
	}
	return s.repo.Save(ctx, c), nil
}

func (s *service) DeleteCustomer(ctx context.Context, id string) bool {
	deleted := s.repo.Delete(ctx, id)
	if deleted {
		s.log.Info("customer deleted", zap.String("id", id))
	}
	return deleted
}

func (s *service) AccruePoints(ctx context.Context, customerID, orderID string, total decimal.Decimal) error {
	// The order id is claimed before the balance moves so that two
	// concurrent retries cannot both pass the check and double-credit.
	// The claim is released again when the adjust fails.
	s.mu.Lock()
	if _, done := s.credited[orderID]; done {
		s.mu.Unlock()
		s.log.Info("loyalty accrual skipped, order already credited",
			zap.String("order_id", orderID))
		return nil
	}
	s.credited[orderID] = struct{}{}
	s.mu.Unlock()

	points := int(total.IntPart()) * PointsPerEuro
	c, err := s.repo.AdjustPoints(ctx, customerID, points)
	if err != nil {
		s.mu.Lock()
		delete(s.credited, orderID)
		s.mu.Unlock()
		return err
	}

	s.log.Info("loyalty points credited",
		zap.String("customer", c.Name),
		zap.Int("earned", points),
		zap.Int("balance", c.LoyaltyPoints))
	return nil
}

func (s *service) RedeemPoints(ctx context.Context, customerID string, points int) (decimal.Decimal, error) {
	if points <= 0 || points%PointsPerRedemption != 0 {
		return decimal.Zero, ErrInvalidRedemption
	}

	c, err := s.repo.AdjustPoints(ctx, customerID, -points)
	if err != nil {
		return decimal.Zero, err
	}

	slices := int64(points / PointsPerRedemption)
	discount := DiscountPerRedemption.Mul(decimal.NewFromInt(slices))

	s.log.Info("loyalty points redeemed",
		zap.String("customer", c.Name),
		zap.Int("points", points),
		zap.String("discount", discount.String()),
		zap.Int("balance", c.LoyaltyPoints))
	return discount, nil
}
