package main

import (
	"context"
	"midcar/internal/api/handler/v1handler"
	"midcar/internal/config"
	"midcar/internal/content"
	"midcar/internal/crm"
	"midcar/internal/dashboard"
	"midcar/internal/insurance"
	"midcar/internal/inventory"
	"midcar/pkg/logger"
	"midcar/pkg/photostore/s3"
	"midcar/pkg/storage/postgres"
	"midcar/pkg/vindecoder"
	"midcar/pkg/vindecoder/nhtsa"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// retryDelay is the first backoff of VIN decode retries.
const retryDelay = 500 * time.Millisecond

type services struct {
	v1handler.Deps

	storage *postgres.PgSQL
}

// newVINDecoder builds the vPIC client, cached when a TTL is configured.
func newVINDecoder(cfg *config.Config) vindecoder.Client {
	var client vindecoder.Client = nhtsa.New(
		&http.Client{Timeout: cfg.VIN.Timeout},
		nhtsa.WithBaseURL(cfg.VIN.BaseURL),
		nhtsa.WithRetry(cfg.VIN.Retries, retryDelay),
	)
	if cfg.VIN.CacheTTL > 0 {
		client = vindecoder.NewCached(client, cfg.VIN.CacheTTL)
	}

	return client
}

func newPhotoStore(ctx context.Context, cfg *config.Config) *s3.Store {
	store, err := s3.New(s3.Options{
		Bucket:          cfg.Photos.Bucket,
		Region:          cfg.Photos.Region,
		Endpoint:        cfg.Photos.Endpoint,
		PathStyle:       cfg.Photos.PathStyle,
		AccessKeyID:     cfg.Photos.AccessKeyID,
		SecretAccessKey: cfg.Photos.SecretAccessKey,
		PublicBaseURL:   cfg.Photos.PublicBaseURL,
	})
	if err != nil {
		logger.Fatal(ctx, "could not create photo store", zap.Error(err))
	}

	return store
}

// newServices wires every domain service on top of strg. The dashboard is
// invalidated by inventory and CRM writes.
func newServices(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) *services {
	dash := dashboard.New(strg, cfg.Dashboard.CacheTTL, time.Now)

	return &services{
		Deps: v1handler.Deps{
			Inventory: inventory.New(strg, newVINDecoder(cfg), newPhotoStore(ctx, cfg), dash, inventory.NewOptions(cfg)),
			CRM:       crm.New(strg, dash, time.Now),
			Insurance: insurance.New(strg, time.Now),
			Content:   content.New(strg, time.Now),
			Dashboard: dash,
		},
		storage: strg,
	}
}
