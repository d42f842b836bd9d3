package background

import (
	"net/http"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/config"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
)

type implProvider struct {
	cfg    config.BackgroundConfig
	video  config.VideoConfig
	client *http.Client
	logger logger.Logger
}

// New creates a Provider for the configured background mode.
// client may be nil, in which case a client with a 2 minute timeout is used.
func New(cfg config.BackgroundConfig, video config.VideoConfig, client *http.Client, log logger.Logger) Provider {
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	return &implProvider{
		cfg:    cfg,
		video:  video,
		client: client,
		logger: log,
	}
}
