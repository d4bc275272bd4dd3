package impl

import (
	"context"
	"io"
	"log/slog"

	deliverycontext "otobiznes/internal/delivery/context"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// bearer matches a context carrying the given API token.
func bearer(token string) interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool {
		return deliverycontext.GetAPIToken(ctx) == token
	})
}
