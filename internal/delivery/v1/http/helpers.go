package http

import (
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"strconv"
	"strings"

	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/gabriel-vasile/mimetype"
	"github.com/go-chi/chi/v5"
	"github.com/jimlawless/whereami"
)

const maxJSONBodySize = 1 << 20

type ErrorResponse struct {
	Code    int            `json:"code"`
	Message string         `json:"message"`
	Errors  []e.FieldError `json:"errors,omitempty"`
}

func NewErrorResponse(code int, message string, fields []e.FieldError) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  fields,
	}
}

var badRequestErrors = []error{
	e.ErrStatusBadRequest,
	e.ErrInvalidJSON,
	e.ErrInvalidID,
	e.ErrInvalidDate,
	e.ErrInvalidDateRange,
	e.ErrExpectedMultipart,
	e.ErrNoImages,
	e.ErrTooManyImages,
	e.ErrFileTooLarge,
	e.ErrUnsupportedMediaType,
	e.ErrEmptyCart,
	e.ErrProductUnavailable,
}

// ToHTTPResponse переводит ошибку слоя usecase в код ответа и безопасное сообщение.
func ToHTTPResponse(err error) (int, string, []e.FieldError) {
	var vErr *e.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest, "validation failed", vErr.Fields
	}

	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest, target.Error(), nil
		}
	}

	switch {
	case errors.Is(err, e.ErrInvalidCredentials):
		return http.StatusUnauthorized, e.ErrInvalidCredentials.Error(), nil
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error(), nil
	case errors.Is(err, e.ErrPromotionNotFound):
		return http.StatusNotFound, e.ErrPromotionNotFound.Error(), nil
	case errors.Is(err, e.ErrProductHasSales):
		return http.StatusConflict, e.ErrProductHasSales.Error(), nil
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error(), nil
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg, fields := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(NewErrorResponse(code, msg, fields))
}

func WriteSuccess(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// respondError пишет ошибку в ответ; 5xx логируются как ошибки, остальное — как предупреждения.
func respondError(log logger.Logger, w http.ResponseWriter, r *http.Request, err error) {
	code, _, _ := ToHTTPResponse(err)
	if code >= http.StatusInternalServerError {
		log.Errorf(err, "%s %s", r.Method, r.URL.Path)
	} else {
		log.Warnf("%d %s %s: %v", code, r.Method, r.URL.Path, err)
	}
	WriteError(w, err)
}

// decodeJSON читает тело запроса строго по схеме dst и валидирует его.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodySize)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		switch {
		case errors.Is(err, e.ErrInvalidDate):
			return e.Wrap(whereami.WhereAmI(), e.ErrInvalidDate)
		case errors.Is(err, io.EOF):
			return e.Wrap("empty body", e.ErrInvalidJSON)
		default:
			return e.Wrap(err.Error(), e.ErrInvalidJSON)
		}
	}

	return validateStruct(dst)
}

func parseID(r *http.Request, param string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || id <= 0 {
		return 0, e.Wrap(chi.URLParam(r, param), e.ErrInvalidID)
	}
	return id, nil
}

// clientIP возвращает адрес клиента без порта (RemoteAddr уже поправлен middleware.RealIP).
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func ensureMultipartForm(r *http.Request, maxMemory int64) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		return e.Wrap(whereami.WhereAmI(), e.ErrExpectedMultipart)
	}
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return e.Wrap(whereami.WhereAmI(), e.ErrFileTooLarge)
		}
		return e.Wrap(err.Error(), e.ErrStatusBadRequest)
	}
	return nil
}

func parseImages(files []*multipart.FileHeader, maxImageCount int, maxFileSize int64) ([]usecase.ProductImage, error) {
	if len(files) == 0 {
		return nil, e.ErrNoImages
	}
	if len(files) > maxImageCount {
		return nil, e.ErrTooManyImages
	}

	images := make([]usecase.ProductImage, 0, len(files))
	for _, fh := range files {
		data, mimeType, err := readFile(fh, maxFileSize)
		if err != nil {
			return nil, err
		}
		images = append(images, *usecase.NewProductImage(data, mimeType, int64(len(data)), fh.Filename))
	}
	return images, nil
}

// readFile читает файл формы; тип определяется по содержимому, а не по заголовку клиента.
func readFile(fh *multipart.FileHeader, maxSize int64) ([]byte, string, error) {
	if fh.Size > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), err)
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, maxSize+1))
	if err != nil {
		return nil, "", e.Wrap(whereami.WhereAmI(), err)
	}
	if int64(len(data)) > maxSize {
		return nil, "", e.Wrap(fh.Filename, e.ErrFileTooLarge)
	}

	return data, mimetype.Detect(data).String(), nil
}
