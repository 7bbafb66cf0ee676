package staff

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const tokenTTL = 24 * time.Hour

// Service defines staff account and till-authentication logic.
type Service interface {
	ListStaff(ctx context.Context) []Salesperson
	SaveStaff(ctx context.Context, req SaveRequest) (Salesperson, error)
	DeleteStaff(ctx context.Context, id string) bool

	// Login verifies a PIN and issues a signed session token.
	Login(ctx context.Context, id, pin string) (string, error)
}

type service struct {
	repo   Repository
	hasher PinHasher
	jwtKey []byte
	log    *zap.Logger
}

// NewService creates the staff service with the injected PIN hasher
// and token signing key.
func NewService(repo Repository, hasher PinHasher, jwtKey []byte, log *zap.Logger) Service {
	return &service{repo: repo, hasher: hasher, jwtKey: jwtKey, log: log}
}

func (s *service) ListStaff(ctx context.Context) []Salesperson {
	return s.repo.FindAll(ctx)
}

func (s *service) SaveStaff(ctx context.Context, req SaveRequest) (Salesperson, error) {
	if strings.TrimSpace(req.FirstName) == "" {
		return Salesperson{}, errors.New("first name is required")
	}
	switch req.Role {
	case RoleAdmin, RoleServer:
	default:
		return Salesperson{}, errors.New("role must be ADMIN or SERVER")
	}

	sp := Salesperson{
		ID:          req.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Role:        req.Role,
		Active:      true,
		Permissions: req.Permissions,
	}
	if sp.ID == "" {
		sp.ID = uuid.NewString()
	} else if existing, ok := s.repo.FindByID(ctx, sp.ID); ok {
		sp.PinHash = existing.PinHash
		if sp.Permissions == nil {
			sp.Permissions = existing.Permissions
		}
	}
	if req.Active != nil {
		sp.Active = *req.Active
	}
	if sp.Permissions == nil {
		sp.Permissions = DefaultPermissions(sp.Role)
	}

	if req.PinCode != "" {
		digest, err := s.hasher.Hash(req.PinCode)
		if err != nil {
			return Salesperson{}, err
		}
		sp.PinHash = digest
	}
	// Without a digest the account could never log in. This catches
	// both a fresh account and a caller-supplied id that matches no
	// existing record.
	if sp.PinHash == "" {
		return Salesperson{}, errors.New("a PIN is required for a new account")
	}

	saved := s.repo.Save(ctx, sp)
	s.log.Info("salesperson saved", zap.String("id", saved.ID), zap.String("role", saved.Role))
	return saved, nil
}

func (s *service) DeleteStaff(ctx context.Context, id string) bool {
	deleted := s.repo.Delete(ctx, id)
	if deleted {
		s.log.Info("salesperson deleted", zap.String("id", id))
	}
	return deleted
}

func (s *service) Login(ctx context.Context, id, pin string) (string, error) {
	sp, ok := s.repo.FindByID(ctx, id)
	if !ok || !sp.Active {
		return "", ErrBadCredentials
	}
	if !s.hasher.Verify(sp.PinHash, pin) {
		s.log.Warn("failed login attempt", zap.String("id", id))
		return "", ErrBadCredentials
	}

	claims := &jwt.StandardClaims{
		Subject:   sp.ID,
		ExpiresAt: time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtKey)
	if err != nil {
		return "", err
	}

	s.log.Info("salesperson logged in", zap.String("id", sp.ID))
	return signed, nil
}
