package narration

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	name  string
	text  string
	err   error
	calls int
}

func (f *fakeGenerator) Name() string { return f.name }

func (f *fakeGenerator) Generate(ctx context.Context, topic string) (string, error) {
	f.calls++
	return f.text, f.err
}

var goodText = strings.Repeat("Report UPI fraud within the first hour. ", 4)

func TestChainFallsThrough(t *testing.T) {
	failing := &fakeGenerator{name: "down", err: errors.New("503")}
	short := &fakeGenerator{name: "short", text: "Too short."}
	good := &fakeGenerator{name: "good", text: goodText}
	unused := &fakeGenerator{name: "unused", text: goodText}

	chain := NewChain([]Generator{failing, short, good, unused}, 0, 100, logger.New("error", "text"))

	text, err := chain.Generate(context.Background(), "UPI fraud")
	require.NoError(t, err)
	assert.Equal(t, goodText, text)
	assert.Equal(t, 1, failing.calls)
	assert.Equal(t, 1, short.calls)
	assert.Equal(t, 1, good.calls)
	assert.Equal(t, 0, unused.calls)
}

func TestChainExhausted(t *testing.T) {
	chain := NewChain([]Generator{
		&fakeGenerator{name: "a", err: errors.New("429 quota")},
		&fakeGenerator{name: "b", text: "nope"},
	}, 0, 100, logger.New("error", "text"))

	_, err := chain.Generate(context.Background(), "UPI fraud")
	assert.ErrorIs(t, err, ErrNoNarration)
}

func TestChainEmpty(t *testing.T) {
	chain := NewChain(nil, 0, 100, logger.New("error", "text"))
	_, err := chain.Generate(context.Background(), "UPI fraud")
	assert.ErrorIs(t, err, ErrNoNarration)
	assert.Equal(t, "chain[]", chain.Name())
}

func TestChainHonoursCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	chain := NewChain([]Generator{&fakeGenerator{name: "a", text: goodText}}, time.Hour, 100, logger.New("error", "text"))
	_, err := chain.Generate(ctx, "UPI fraud")
	assert.Error(t, err)
}

func TestIsRateLimited(t *testing.T) {
	assert.True(t, isRateLimited(errors.New("Error 429, Message: Resource has been exhausted")))
	assert.True(t, isRateLimited(errors.New("RESOURCE_EXHAUSTED")))
	assert.False(t, isRateLimited(errors.New("400 bad request")))
}
