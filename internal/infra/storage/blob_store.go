// Package storage persists donation photos in a blob bucket and serves
// them through a public base URL.
package storage

import (
	"context"
	"log/slog"
	"strings"

	"foodlink/config"
	"foodlink/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// bucket driver for local development
	_ "gocloud.dev/blob/gcsblob"  // gs:// bucket driver
	_ "gocloud.dev/blob/memblob"  // mem:// bucket driver for tests
)

// blobImageStore implements ImageStore on top of a gocloud.dev bucket, so the
// same code serves GCS in production and the filesystem in development.
type blobImageStore struct {
	bucket        *blob.Bucket
	publicBaseURL string
	logger        *slog.Logger
}

// Params holds dependencies for the ImageStore, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New creates an ImageStore backed by the configured bucket URL.
func New(params Params) (service.ImageStore, error) {
	cfg := params.Config.ImageStorage
	if cfg == nil || cfg.BucketURL == "" {
		return nil, errors.New("image storage bucket URL must be configured")
	}

	bucket, err := blob.OpenBucket(params.Ctx, cfg.BucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", cfg.BucketURL)
	}

	params.Logger.Info("Image store initialized",
		slog.String("bucket_url", cfg.BucketURL),
	)

	store := &blobImageStore{
		bucket:        bucket,
		publicBaseURL: strings.TrimSuffix(cfg.PublicBaseURL, "/"),
		logger:        params.Logger,
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}

// Save writes the image under the given key and returns its public URL.
func (s *blobImageStore) Save(ctx context.Context, key string, contentType string, image []byte) (string, error) {
	opts := &blob.WriterOptions{
		ContentType: contentType,
	}
	if err := s.bucket.WriteAll(ctx, key, image, opts); err != nil {
		return "", errors.Wrapf(err, "failed to write image %s", key)
	}

	s.logger.Debug("Image stored",
		slog.String("key", key),
		slog.Int("size_bytes", len(image)),
	)

	return s.publicBaseURL + "/" + key, nil
}

// Close releases the underlying bucket.
func (s *blobImageStore) Close() error {
	return errors.WithStack(s.bucket.Close())
}
