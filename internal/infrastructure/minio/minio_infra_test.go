package minio

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/soares-modas/internal/cfg"
	"github.com/DRSN-tech/soares-modas/internal/domain"
	"github.com/DRSN-tech/soares-modas/internal/usecase"
	"github.com/DRSN-tech/soares-modas/pkg/e"
	"github.com/DRSN-tech/soares-modas/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memImageRepo struct {
	mu        sync.Mutex
	objects   map[string]*domain.Image
	failOn    string
	deleteErr int
}

func newMemImageRepo() *memImageRepo {
	return &memImageRepo{objects: map[string]*domain.Image{}}
}

func (r *memImageRepo) Upload(ctx context.Context, image *domain.Image) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failOn != "" && string(image.Bytes) == r.failOn {
		return "", errors.New("s3 unavailable")
	}
	r.objects[image.ObjectKey] = image
	return image.ObjectKey, nil
}

func (r *memImageRepo) Delete(ctx context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deleteErr > 0 {
		r.deleteErr--
		return errors.New("temporary")
	}
	delete(r.objects, key)
	return nil
}

func (r *memImageRepo) len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.objects)
}

func newInfra(repo usecase.ImageRepository) *MinioInfrastructure {
	m := NewMinioInfrastructure(repo, &cfg.MinIOCfg{
		BucketName:        "soares-modas",
		PublicURL:         "http://localhost:9000/",
		UploadImagesLimit: 2,
	}, logger.NewNopLogger(), context.Background())
	m.baseBackoff = time.Millisecond
	return m
}

func image(data, mime string) usecase.ProductImage {
	return *usecase.NewProductImage([]byte(data), mime, int64(len(data)), data+".img")
}

func TestUploadImages(t *testing.T) {
	repo := newMemImageRepo()
	m := newInfra(repo)

	res, err := m.UploadImages(context.Background(), usecase.NewUploadImagesReq("products", []usecase.ProductImage{
		image("a", "image/png"),
		image("b", "image/jpeg"),
		image("c", "image/webp"),
	}))
	require.NoError(t, err)

	require.Len(t, res.ImagesKeys, 3)
	assert.True(t, strings.HasPrefix(res.ImagesKeys[0], "products/"))
	assert.True(t, strings.HasSuffix(res.ImagesKeys[0], ".png"))
	assert.True(t, strings.HasSuffix(res.ImagesKeys[1], ".jpg"))
	assert.Equal(t, "http://localhost:9000/soares-modas/"+res.ImagesKeys[2], res.URLs[2])
	assert.Equal(t, 3, repo.len())
	assert.Equal(t, "image/png", repo.objects[res.ImagesKeys[0]].ContentType)
}

func TestUploadImages_UnsupportedType(t *testing.T) {
	repo := newMemImageRepo()
	m := newInfra(repo)

	_, err := m.UploadImages(context.Background(), usecase.NewUploadImagesReq("products", []usecase.ProductImage{
		image("a", "image/png"),
		image("b", "text/plain"),
	}))
	assert.ErrorIs(t, err, e.ErrUnsupportedMediaType)
	assert.Equal(t, 0, repo.len())
}

func TestUploadImages_FailureCleansUp(t *testing.T) {
	repo := newMemImageRepo()
	repo.failOn = "bad"
	m := newInfra(repo)

	_, err := m.UploadImages(context.Background(), usecase.NewUploadImagesReq("products", []usecase.ProductImage{
		image("a", "image/png"),
		image("bad", "image/png"),
		image("c", "image/png"),
	}))
	require.Error(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.WaitForCleanup(ctx))
	assert.Equal(t, 0, repo.len())
}

func TestCleanupImages_Retries(t *testing.T) {
	repo := newMemImageRepo()
	repo.objects["products/x.png"] = &domain.Image{}
	repo.deleteErr = 2
	m := newInfra(repo)

	m.CleanupImages([]string{"products/x.png"})

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	require.NoError(t, m.WaitForCleanup(ctx))
	assert.Equal(t, 0, repo.len())
}

func TestKeyFromURL(t *testing.T) {
	m := newInfra(newMemImageRepo())

	key, ok := m.KeyFromURL("http://localhost:9000/soares-modas/products/x.png")
	assert.True(t, ok)
	assert.Equal(t, "products/x.png", key)

	_, ok = m.KeyFromURL("https://images.unsplash.com/photo-1")
	assert.False(t, ok)

	_, ok = m.KeyFromURL("http://localhost:9000/soares-modas/")
	assert.False(t, ok)
}
