package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

type AuthHandler struct {
	authUsecase usecase.AuthUC
	logger      logger.Logger
}

func NewAuthHandler(authUsecase usecase.AuthUC, logger logger.Logger) *AuthHandler {
	return &AuthHandler{authUsecase: authUsecase, logger: logger}
}

// login
//
//	@Summary		Вход администратора
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		loginRequest	true	"Логин и пароль"
//	@Success		200			{object}	loginResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		401			{object}	ErrorResponse
//	@Router			/auth/login [post]
func (a *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(a.logger, w, r, err)
		return
	}

	res, err := a.authUsecase.Login(r.Context(), &usecase.LoginReq{Username: req.Username, Password: req.Password})
	if err != nil {
		respondError(a.logger, w, r, err)
		return
	}

	WriteSuccess(w, http.StatusOK, loginResponse{
		Message: "Login successful",
		Token:   res.Token,
		User:    adminUserResponse(res.User),
	})
}
