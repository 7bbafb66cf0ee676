package catalog

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrNotFound is returned when an id resolves to no catalog entry.
var ErrNotFound = errors.New("product not found")

// Service defines catalog business logic.
type Service interface {
	ListProducts(ctx context.Context) []Product
	FindProduct(ctx context.Context, id string) (Product, bool)

	// SaveProduct validates and upserts a product, assigning an id to
	// new entries.
	SaveProduct(ctx context.Context, p Product) (Product, error)

	// ArchiveProduct soft-deletes a product so historical orders keep
	// a resolvable id.
	ArchiveProduct(ctx context.Context, id string) error

	// ReserveStock atomically checks and decrements stock for all
	// lines; no line is applied when any line cannot be covered.
	ReserveStock(ctx context.Context, lines []Reservation) error
}

type service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates the catalog service.
func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) ListProducts(ctx context.Context) []Product {
	return s.repo.FindAll(ctx)
}

func (s *service) FindProduct(ctx context.Context, id string) (Product, bool) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) SaveProduct(ctx context.Context, p Product) (Product, error) {
	if strings.TrimSpace(p.Name) == "" {
		return Product{}, errors.New("product name is required")
	}
	if p.Price.LessThan(decimal.Zero) {
		return Product{}, errors.New("product price must not be negative")
	}
	switch p.Type {
	case KindDish, KindDrink:
	default:
		return Product{}, errors.New("product type must be DISH or DRINK")
	}

	isNew := p.ID == ""
	if isNew {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = StatusDraft
	}

	saved := s.repo.Save(ctx, p)
	if isNew {
		s.log.Info("product created",
			zap.String("id", saved.ID),
			zap.String("name", saved.Name),
			zap.String("price", saved.Price.String()))
	} else {
		s.log.Info("product updated", zap.String("id", saved.ID))
	}
	return saved, nil
}

func (s *service) ArchiveProduct(ctx context.Context, id string) error {
	p, ok := s.repo.FindByID(ctx, id)
	if !ok {
		return ErrNotFound
	}
	if p.Status == StatusArchived {
		return nil
	}
	p.Status = StatusArchived
	s.repo.Save(ctx, p)
	s.log.Info("product archived", zap.String("id", id), zap.String("name", p.Name))
	return nil
}

func (s *service) ReserveStock(ctx context.Context, lines []Reservation) error {
	return s.repo.Reserve(ctx, lines)
}
