// Package delivery hands finished videos to the messaging endpoint.
package delivery

import "context"

// Delivery describes one finished video.
type Delivery struct {
	VideoPath   string
	Title       string
	Topic       string
	VariationID string
	Duration    float64
}

// Sender delivers a finished video.
type Sender interface {
	Send(ctx context.Context, d Delivery) error
}
