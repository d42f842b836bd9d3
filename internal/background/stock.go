package background

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/pkg/download"
)

// stock downloads one of the configured clips and loops it for the whole video.
func (p *implProvider) stock(ctx context.Context, dir string, index int) (Input, error) {
	if len(p.cfg.StockURLs) == 0 {
		return Input{}, fmt.Errorf("no stock_urls configured")
	}
	url := p.cfg.StockURLs[index%len(p.cfg.StockURLs)]
	path := filepath.Join(dir, "stock"+download.Ext(url, ".mp4"))

	p.logger.Info(ctx, "Downloading stock background: %s", url)
	if err := download.File(ctx, p.client, url, path); err != nil {
		return Input{}, err
	}

	return Input{
		Args: []string{"-stream_loop", "-1", "-i", path},
		Path: path,
	}, nil
}
