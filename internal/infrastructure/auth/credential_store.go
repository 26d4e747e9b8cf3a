package auth

import (
	"context"
	"crypto/subtle"
	"errors"

	"github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/jimlawless/whereami"
	"golang.org/x/crypto/bcrypt"
)

// BcryptCredentialStore хранит одного администратора с bcrypt-хэшем пароля.
type BcryptCredentialStore struct {
	username string
	hash     []byte
}

// NewBcryptCredentialStore берёт готовый хэш из конфигурации,
// иначе хэширует пароль в открытом виде при старте.
func NewBcryptCredentialStore(cfg *cfg.AdminCfg) (*BcryptCredentialStore, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &BcryptCredentialStore{
		username: cfg.Username,
		hash:     hash,
	}, nil
}

func (s *BcryptCredentialStore) Verify(ctx context.Context, username, password string) (bool, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	err := bcrypt.CompareHashAndPassword(s.hash, []byte(password))
	switch {
	case err == nil:
		return userOK, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, e.Wrap(whereami.WhereAmI(), err)
	}
}
