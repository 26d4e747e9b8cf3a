package usecase

import "context"

type ImagesInfra interface {
	UploadImages(ctx context.Context, req *UploadImagesReq) (*UploadImagesRes, error)
	CleanupImages(keys []string)
	// PublicURL и KeyFromURL переводят ключ объекта в публичный URL и обратно.
	PublicURL(key string) string
	KeyFromURL(url string) (string, bool)
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
}

// CredentialStore проверяет учётные данные администратора.
type CredentialStore interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}
