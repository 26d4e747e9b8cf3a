package http

import (
	"net/http"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
)

const (
	maxUploadImages     = 10
	maxUploadFileSize   = 15 << 20
	maxTotalRequestSize = 150 << 20
	maxMultipartMemory  = 32 << 20
)

type UploadHandler struct {
	imageUsecase usecase.ImageUC
	logger       logger.Logger
}

func NewUploadHandler(imageUsecase usecase.ImageUC, logger logger.Logger) *UploadHandler {
	return &UploadHandler{imageUsecase: imageUsecase, logger: logger}
}

// uploadImages
//
//	@Summary		Загрузка изображений
//	@Description	Загружает изображения товаров, логотип или иконку в хранилище и возвращает публичные ссылки
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			images	formData	file	true	"Изображения (jpeg, png, webp, gif)"
//	@Param			prefix	formData	string	false	"Префикс ключа, например products или store"
//	@Success		201		{object}	uploadImagesResponse
//	@Failure		400		{object}	ErrorResponse
//	@Router			/uploads/images [post]
func (u *UploadHandler) uploadImages(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMultipartMemory); err != nil {
		respondError(u.logger, w, r, err)
		return
	}
	defer r.MultipartForm.RemoveAll()

	images, err := parseImages(r.MultipartForm.File["images"], maxUploadImages, maxUploadFileSize)
	if err != nil {
		respondError(u.logger, w, r, err)
		return
	}

	res, err := u.imageUsecase.UploadImages(r.Context(), usecase.NewUploadImagesReq(r.FormValue("prefix"), images))
	if err != nil {
		respondError(u.logger, w, r, err)
		return
	}

	u.logger.Infof("%d images uploaded", len(res.URLs))
	WriteSuccess(w, http.StatusCreated, uploadImagesResponse{URLs: res.URLs})
}
