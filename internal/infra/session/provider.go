package session

import (
	"log/slog"

	"otobiznes/config"
	"otobiznes/internal/domain/service"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

// StoreParams defines the parameters required for the token store
type StoreParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	Redis  *redis.Client `optional:"true"`
}

// NewTokenStore picks the redis store when a client is configured, the in-memory store otherwise.
func NewTokenStore(params StoreParams) service.TokenStore {
	if params.Redis != nil {
		return NewRedisTokenStore(params.Redis, params.Config.Session.TTL)
	}

	params.Logger.Warn("Session tokens are kept in memory and will not survive a restart")

	return NewMemoryTokenStore(params.Config.Session.TTL)
}
