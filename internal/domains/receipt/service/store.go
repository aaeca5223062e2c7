package service

//go:generate go run go.uber.org/mock/mockgen -source=./store.go -destination=../mocks/store_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"busbooking/config"
	"busbooking/infras/s3"
	"busbooking/shared/constant"
	"busbooking/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	StorageLocal = "local"
	StorageS3    = "s3"

	receiptRoute = "/v1/receipts/"
)

// Store keeps rendered receipts. Put returns where the browser can fetch the file.
type Store interface {
	Put(ctx context.Context, fileName string, data []byte) (location string, err error)
	Get(ctx context.Context, fileName string) ([]byte, error)
}

// NewStore picks the backend named by the receipt storage setting.
func NewStore(cfg *config.Config, s3Client s3.S3) Store {
	if cfg.Receipt.Storage == StorageS3 {
		log.Info().Str("bucket", cfg.External.S3.BucketName).Msg("Receipts stored in S3")

		return &s3Store{client: s3Client, directory: cfg.Receipt.S3Dir}
	}

	log.Info().Str("dir", cfg.Receipt.LocalDir).Msg("Receipts stored on local disk")

	return &localStore{dir: cfg.Receipt.LocalDir}
}

type localStore struct {
	dir string
}

func NewLocalStore(dir string) Store {
	return &localStore{dir: dir}
}

func (l *localStore) Put(_ context.Context, fileName string, data []byte) (string, error) {
	if err := os.MkdirAll(l.dir, 0o750); err != nil {
		return constant.Empty, fmt.Errorf("failed to create receipt directory: %w", err)
	}

	if err := os.WriteFile(filepath.Join(l.dir, fileName), data, 0o600); err != nil {
		return constant.Empty, fmt.Errorf("failed to write receipt: %w", err)
	}

	return receiptRoute + fileName, nil
}

func (l *localStore) Get(_ context.Context, fileName string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.dir, fileName))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, failure.NotFound("receipt not found") //nolint:wrapcheck
		}

		return nil, fmt.Errorf("failed to read receipt: %w", err)
	}

	return data, nil
}

type s3Store struct {
	client    s3.S3
	directory string
}

func (s *s3Store) Put(ctx context.Context, fileName string, data []byte) (string, error) {
	url, err := s.client.UploadFileBytes(ctx, constant.Empty, s.directory, fileName, constant.ContentTypePDF, data)
	if err != nil {
		return constant.Empty, fmt.Errorf("failed to upload receipt: %w", err)
	}

	return url, nil
}

func (s *s3Store) Get(ctx context.Context, fileName string) ([]byte, error) {
	data, err := s.client.GetFile(ctx, constant.Empty, s.directory, fileName)
	if err != nil {
		return nil, fmt.Errorf("failed to download receipt: %w", err)
	}

	return data, nil
}
