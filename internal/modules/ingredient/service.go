package ingredient

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Service defines ingredient business logic.
type Service interface {
	ListIngredients(ctx context.Context) []Ingredient
	SaveIngredient(ctx context.Context, ing Ingredient) (Ingredient, error)
	DeleteIngredient(ctx context.Context, id string) bool
}

type service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates the ingredient service.
func NewService(repo Repository, log *zap.Logger) Service {
	return &service{repo: repo, log: log}
}

func (s *service) ListIngredients(ctx context.Context) []Ingredient {
	return s.repo.FindAll(ctx)
}

func (s *service) SaveIngredient(ctx context.Context, ing Ingredient) (Ingredient, error) {
	if strings.TrimSpace(ing.Name) == "" {
		return Ingredient{}, errors.New("ingredient name is required")
	}
	if ing.Stock < 0 {
		return Ingredient{}, errors.New("ingredient stock must not be negative")
	}
	if ing.ID == "" {
		ing.ID = uuid.NewString()
		s.log.Info("ingredient created", zap.String("name", ing.Name))
	}
	return s.repo.Save(ctx, ing), nil
}

func (s *service) DeleteIngredient(ctx context.Context, id string) bool {
	deleted := s.repo.Delete(ctx, id)
	if deleted {
		s.log.Info("ingredient deleted", zap.String("id", id))
	}
	return deleted
}
