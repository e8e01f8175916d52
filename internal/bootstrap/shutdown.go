package bootstrap

import (
	"context"
	"log/slog"
)

// stopper is the part of the HTTP server the shutdown sequence needs
type stopper interface {
	Stop(ctx context.Context) error
}

// GracefulShutdown stops the server, which drains in-flight requests before
// shutting the planner's worker pool down. Errors are logged, not returned.
func GracefulShutdown(ctx context.Context, srv stopper) {
	slog.Info(LogMsgShuttingDownServer)

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
		return
	}

	slog.Info(LogMsgServerStopped)
}
