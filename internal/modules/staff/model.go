package staff

import "errors"

// Roles a salesperson can hold at the till.
const (
	RoleAdmin  = "ADMIN"
	RoleServer = "SERVER"
)

// Salesperson is a staff account. PinHash is the one-way digest of the
// access PIN; the clear PIN is never stored and the digest is never
// returned by the API (see response type in the handler).
type Salesperson struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Role        string          `json:"role"`
	PinHash     string          `json:"pinCode"`
	Active      bool            `json:"isActive"`
	Permissions map[string]bool `json:"permissions"`
}

// Clone deep-copies the permissions map so store reads never alias
// staff state.
func (s Salesperson) Clone() Salesperson {
	if s.Permissions != nil {
		perms := make(map[string]bool, len(s.Permissions))
		for k, v := range s.Permissions {
			perms[k] = v
		}
		s.Permissions = perms
	}
	return s
}

// SaveRequest is the admin payload for creating or updating an
// account. PinCode is the raw PIN; when empty on update, the existing
// digest is kept.
type SaveRequest struct {
	ID          string          `json:"id"`
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	Role        string          `json:"role"`
	PinCode     string          `json:"pinCode,omitempty"`
	Active      *bool           `json:"isActive,omitempty"`
	Permissions map[string]bool `json:"permissions,omitempty"`
}

// LoginRequest carries till login credentials.
type LoginRequest struct {
	ID      string `json:"id"`
	PinCode string `json:"pinCode"`
}

// ErrBadCredentials is returned for any login failure: unknown id,
// inactive account or wrong PIN, indistinguishably.
var ErrBadCredentials = errors.New("invalid credentials")

// ErrNotFound is returned when a staff id resolves to no account.
var ErrNotFound = errors.New("salesperson not found")

// DefaultPermissions returns the permission set granted to a role when
// the request does not spell one out.
func DefaultPermissions(role string) map[string]bool {
	admin := role == RoleAdmin
	return map[string]bool{
		"manage_stock": admin,
		"manage_menu":  admin,
		"manage_users": admin,
		"cash_out":     true,
	}
}
