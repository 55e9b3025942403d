package objectstore

import (
	"context"
	"log/slog"

	"go.uber.org/fx"

	"github.com/jayeshsingh-11/creative-cascade/internal/config"
)

// Module exposes the object store client to the fx graph.
var Module = fx.Provide(newStore)

type storeParams struct {
	fx.In

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

func newStore(p storeParams) (Store, error) {
	buckets := []string{p.Config.FilesBucket, p.Config.MediaBucket, p.Config.AvatarBucket}
	return NewClient(p.Ctx, p.Config.S3Endpoint, p.Config.S3AccessKey, p.Config.S3SecretKey, p.Config.S3UseSSL, buckets, p.Logger)
}
