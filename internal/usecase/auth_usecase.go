package usecase

import (
	"context"

	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

const adminUserID = 1

// AuthUseCase выдаёт статический токен после проверки учётных данных.
type AuthUseCase struct {
	credentials CredentialStore
	token       string
	logger      logger.Logger
}

func NewAuthUC(credentials CredentialStore, token string, logger logger.Logger) *AuthUseCase {
	return &AuthUseCase{
		credentials: credentials,
		token:       token,
		logger:      logger,
	}
}

func (a *AuthUseCase) Login(ctx context.Context, req *LoginReq) (*LoginRes, error) {
	const op = "AuthUseCase.Login"

	if req.Username == "" || req.Password == "" {
		var fields []e.FieldError
		if req.Username == "" {
			fields = append(fields, e.FieldError{Field: "username", Rule: "required"})
		}
		if req.Password == "" {
			fields = append(fields, e.FieldError{Field: "password", Rule: "required"})
		}
		return nil, e.Wrap(op, e.NewValidationError(fields...))
	}

	ok, err := a.credentials.Verify(ctx, req.Username, req.Password)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !ok {
		a.logger.Warnf("Failed login attempt for user %q", req.Username)
		return nil, e.Wrap(op, e.ErrInvalidCredentials)
	}

	return &LoginRes{
		Token: a.token,
		User:  domain.AdminUser{ID: adminUserID, Username: req.Username},
	}, nil
}
