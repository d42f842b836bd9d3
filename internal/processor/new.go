package processor

import (
	"net/http"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/background"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/config"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/delivery"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/narration"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/speech"
	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/executor"
)

// Dependencies are the pluggable stages of the pipeline.
type Dependencies struct {
	// Narrator may be nil, in which case the fallback template is always used.
	Narrator    narration.Generator
	Synthesizer speech.Synthesizer
	Prober      speech.Prober
	Background  background.Provider
	Sender      delivery.Sender
	// HTTPClient downloads music beds; nil means a client with a 2 minute timeout.
	HTTPClient *http.Client
}

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	logger      logger.Logger
	narrator    narration.Generator
	synthesizer speech.Synthesizer
	prober      speech.Prober
	background  background.Provider
	sender      delivery.Sender
	client      *http.Client
}

// New creates a new Processor instance
func New(cfg *config.Config, exec executor.Executor, log logger.Logger, deps Dependencies) Processor {
	client := deps.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 2 * time.Minute}
	}
	sender := deps.Sender
	if sender == nil {
		sender = delivery.NewNoop("no sender configured", log)
	}
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		logger:      log,
		narrator:    deps.Narrator,
		synthesizer: deps.Synthesizer,
		prober:      deps.Prober,
		background:  deps.Background,
		sender:      sender,
		client:      client,
	}
}
