package minio

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/infrastructure"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/jitter"
	"github.com/DRSN-tech/soares-modas/pkg/logger"

	"github.com/google/uuid"
)

const (
	cleanupAttempts    = 3
	cleanupBaseBackoff = time.Second
	cleanupMaxBackoff  = 8 * time.Second
	cleanupTimeout     = 30 * time.Second
)

// MinioInfrastructure управляет загрузкой и очисткой изображений в MinIO.
type MinioInfrastructure struct {
	minioRepo         usecase.ImageRepository
	cfg               *cfg.MinIOCfg
	logger            logger.Logger
	shutdownCtx       context.Context
	wg                sync.WaitGroup
	uploadImagesLimit int
	baseBackoff       time.Duration
}

func NewMinioInfrastructure(minioRepo usecase.ImageRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	limit := cfg.UploadImagesLimit
	if limit <= 0 {
		limit = 1
	}

	return &MinioInfrastructure{
		minioRepo:         minioRepo,
		cfg:               cfg,
		logger:            logger,
		shutdownCtx:       shutdownCtx,
		uploadImagesLimit: limit,
		baseBackoff:       cleanupBaseBackoff,
	}
}

// UploadImages загружает изображения в MinIO параллельно с ограничением одновременных операций.
// В случае ошибки отменяет остальные загрузки и запускает очистку уже загруженных файлов.
// Ключи и URL возвращаются в порядке изображений запроса.
func (m *MinioInfrastructure) UploadImages(ctx context.Context, req *usecase.UploadImagesReq) (*usecase.UploadImagesRes, error) {
	const op = "MinioInfrastructure.UploadImages"

	// Проверяем типы до начала загрузки
	exts := make([]string, len(req.Images))
	for i, image := range req.Images {
		ext, err := infrastructure.GetExtensionFromMIME(image.MimeType)
		if err != nil {
			return nil, e.Wrap(op, fmt.Errorf("%w: %s (%s)", err, image.MimeType, image.Name))
		}
		exts[i] = ext
	}

	// Отмена остальных загрузок при первой ошибке
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type uploaded struct {
		idx int
		key string
	}

	keyCh := make(chan uploaded, len(req.Images))
	errCh := make(chan error, len(req.Images))
	sem := make(chan struct{}, m.uploadImagesLimit)

	var uploadWg sync.WaitGroup
	for i, image := range req.Images {
		uploadWg.Add(1)
		go func() {
			defer uploadWg.Done()
			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-sem }()

			imageID := uuid.NewString()
			objKey := fmt.Sprintf("%s/%s.%s", req.Prefix, imageID, exts[i])
			newImage := domain.NewImage(imageID, m.cfg.BucketName, objKey, image.Data, image.MimeType)

			key, err := m.minioRepo.Upload(ctx, newImage)
			if err != nil {
				errCh <- fmt.Errorf("upload %s failed: %w", image.Name, err)
				return
			}

			keyCh <- uploaded{idx: i, key: key}
		}()
	}

	done := make(chan struct{})
	go func() {
		uploadWg.Wait()
		close(done)
	}()

	keys := make([]string, len(req.Images))
	var firstErr error
	for completed := 0; completed < len(req.Images) && firstErr == nil; {
		select {
		case u := <-keyCh:
			keys[u.idx] = u.key
			completed++
		case err := <-errCh:
			firstErr = err
		case <-ctx.Done():
			firstErr = ctx.Err()
		}
	}

	if firstErr != nil {
		cancel()
		// Дожидаемся оставшихся загрузок, чтобы не потерять их ключи
		<-done
		close(keyCh)
		for u := range keyCh {
			keys[u.idx] = u.key
		}
		m.CleanupImages(nonEmpty(keys))
		return nil, e.Wrap(op, firstErr)
	}

	urls := make([]string, len(keys))
	for i, key := range keys {
		urls[i] = m.PublicURL(key)
	}

	return usecase.NewUploadImagesRes(keys, urls), nil
}

// PublicURL возвращает адрес объекта, доступный клиентам витрины.
func (m *MinioInfrastructure) PublicURL(key string) string {
	return m.urlPrefix() + key
}

// KeyFromURL извлекает ключ объекта из URL нашего бакета.
// Для чужих адресов возвращает false.
func (m *MinioInfrastructure) KeyFromURL(url string) (string, bool) {
	key, ok := strings.CutPrefix(url, m.urlPrefix())
	if !ok || key == "" {
		return "", false
	}
	return key, true
}

func (m *MinioInfrastructure) urlPrefix() string {
	return strings.TrimRight(m.cfg.PublicURL, "/") + "/" + m.cfg.BucketName + "/"
}

// CleanupImages запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupImages(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done()
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: cleaning up %d keys", op, len(keys))

	ctx, cancel := context.WithTimeout(m.shutdownCtx, cleanupTimeout)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < cleanupAttempts; attempt++ {
			err := m.minioRepo.Delete(ctx, key)
			if err == nil {
				break
			}

			if attempt == cleanupAttempts-1 {
				m.logger.Errorf(err, "%s: giving up on key=%s", op, key)
				break
			}

			select {
			case <-time.After(jitter.ExponentialBackoff(m.baseBackoff, cleanupMaxBackoff, attempt, jitter.DefaultJitter)):
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}

func nonEmpty(keys []string) []string {
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}
