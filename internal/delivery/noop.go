package delivery

import (
	"context"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
)

type implNoop struct {
	reason string
	logger logger.Logger
}

// NewNoop creates a Sender that only logs why nothing was sent.
func NewNoop(reason string, log logger.Logger) Sender {
	return &implNoop{reason: reason, logger: log}
}

func (n *implNoop) Send(ctx context.Context, d Delivery) error {
	n.logger.Info(ctx, "Delivery skipped (%s): %s", n.reason, d.VideoPath)
	return nil
}
