package usecase

import (
	"context"

	"github.com/DRSN-tech/soares-modas/pkg/e"
)

const defaultImagePrefix = "images"

// Допустимые префиксы ключей в бакете.
var imagePrefixes = map[string]struct{}{
	defaultImagePrefix: {},
	"products":         {},
	"store":            {},
}

type ImageUseCase struct {
	imagesInfra ImagesInfra
	maxImages   int
}

func NewImageUC(imagesInfra ImagesInfra, maxImages int) *ImageUseCase {
	return &ImageUseCase{
		imagesInfra: imagesInfra,
		maxImages:   maxImages,
	}
}

// UploadImages сохраняет изображения и возвращает их публичные адреса.
func (i *ImageUseCase) UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error) {
	const op = "ImageUseCase.UploadImages"

	if len(req.Images) == 0 {
		return nil, e.Wrap(op, e.ErrNoImages)
	}
	if i.maxImages > 0 && len(req.Images) > i.maxImages {
		return nil, e.Wrap(op, e.ErrTooManyImages)
	}
	if req.Prefix == "" {
		req.Prefix = defaultImagePrefix
	}
	if _, ok := imagePrefixes[req.Prefix]; !ok {
		return nil, e.NewValidationError(e.FieldError{Field: "prefix", Rule: "oneof", Param: "images products store"})
	}

	res, err := i.imagesInfra.UploadImages(ctx, req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if len(res.URLs) != len(res.ImagesKeys) {
		urls := make([]string, 0, len(res.ImagesKeys))
		for _, key := range res.ImagesKeys {
			urls = append(urls, i.imagesInfra.PublicURL(key))
		}
		res.URLs = urls
	}

	return res, nil
}
