package staff

import "golang.org/x/crypto/bcrypt"

// PinHasher is the injected one-way digest capability for access PINs.
type PinHasher interface {
	Hash(pin string) (string, error)
	Verify(digest, pin string) bool
}

// BcryptHasher implements PinHasher with bcrypt at the default cost.
type BcryptHasher struct{}

func NewBcryptHasher() BcryptHasher { return BcryptHasher{} }

func (BcryptHasher) Hash(pin string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (BcryptHasher) Verify(digest, pin string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pin)) == nil
}
