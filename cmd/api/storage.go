package main

import (
	"context"
	"strings"

	"growbraz/internal/adapters/storage/file"
	mem "growbraz/internal/adapters/storage/memory"
	pg "growbraz/internal/adapters/storage/postgres"
	s3store "growbraz/internal/adapters/storage/s3"
	"growbraz/internal/adapters/storage/sqlite"
	"growbraz/internal/platform/config"
	"growbraz/internal/ports/kv"
)

func storageDriver(c config.StorageConfig) string {
	d := strings.ToLower(strings.TrimSpace(c.Driver))
	if d == "" {
		return config.DriverMemory
	}
	return d
}

// openStore elige el adaptador kv según storage.driver. El closer nunca es nil.
func openStore(ctx context.Context, c config.StorageConfig) (kv.Store, func() error, error) {
	noop := func() error { return nil }

	switch storageDriver(c) {
	case config.DriverFile:
		s, err := file.New(c.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(c.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil

	case config.DriverPostgres:
		db, err := pg.Open(ctx, c.DSN, pg.DefaultPool())
		if err != nil {
			return nil, noop, err
		}
		s, err := pg.NewKVStore(ctx, db)
		if err != nil {
			_ = db.Close()
			return nil, noop, err
		}
		return s, db.Close, nil

	case config.DriverS3:
		s, err := s3store.New(ctx, s3store.Config{
			Region:    c.S3.Region,
			Bucket:    c.S3.Bucket,
			Prefix:    c.S3.Prefix,
			Endpoint:  c.S3.Endpoint,
			PathStyle: c.S3.PathStyle,

			AccessKeyID:     c.S3.AccessKeyID,
			SecretAccessKey: c.S3.SecretAccessKey,
		})
		if err != nil {
			return nil, noop, err
		}
		return s, noop, nil

	default:
		return mem.NewKV(), noop, nil
	}
}
