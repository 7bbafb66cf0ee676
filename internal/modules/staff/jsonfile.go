package staff

import (
	"context"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/pizzeria-pos/backend/internal/jsondb"
)

const fileName = "salesperson.json"

type jsonRepo struct {
	store *jsondb.Store[Salesperson]
}

// NewJSONRepository opens the staff file under dataDir. On first run
// it seeds an admin and a server account whose default PINs ("1234"
// and "0000") are digested with the injected hasher before ever
// touching disk.
func NewJSONRepository(dataDir string, hasher PinHasher, log *zap.Logger) Repository {
	sink := jsondb.NewFileSink[Salesperson](filepath.Join(dataDir, fileName))
	store := jsondb.New(sink, func(s Salesperson) string { return s.ID }, log)
	store.Load(func() []Salesperson { return seedAccounts(hasher, log) })
	return &jsonRepo{store: store}
}

func (r *jsonRepo) FindAll(ctx context.Context) []Salesperson {
	return r.store.All()
}

func (r *jsonRepo) FindByID(ctx context.Context, id string) (Salesperson, bool) {
	return r.store.Get(id)
}

func (r *jsonRepo) Save(ctx context.Context, s Salesperson) Salesperson {
	return r.store.Put(s)
}

func (r *jsonRepo) Delete(ctx context.Context, id string) bool {
	return r.store.Delete(id)
}

func seedAccounts(hasher PinHasher, log *zap.Logger) []Salesperson {
	hash := func(pin string) string {
		h, err := hasher.Hash(pin)
		if err != nil {
			log.Error("seed pin hash failed", zap.Error(err))
		}
		return h
	}

	return []Salesperson{
		{
			ID:          "admin-01",
			FirstName:   "Admin",
			LastName:    "System",
			Role:        RoleAdmin,
			PinHash:     hash("1234"),
			Active:      true,
			Permissions: DefaultPermissions(RoleAdmin),
		},
		{
			ID:          "staff-01",
			FirstName:   "Mario",
			LastName:    "Rossi",
			Role:        RoleServer,
			PinHash:     hash("0000"),
			Active:      true,
			Permissions: DefaultPermissions(RoleServer),
		},
	}
}
