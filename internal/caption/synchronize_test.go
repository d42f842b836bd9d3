package caption

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-6

func noClamps() Config {
	return Config{}
}

// assertCoverage checks the invariants every successful result must hold.
func assertCoverage(t *testing.T, chunks []Chunk, total float64) {
	t.Helper()
	require.NotEmpty(t, chunks)
	assert.Equal(t, 0.0, chunks[0].Start)
	assert.InDelta(t, total, chunks[len(chunks)-1].End, tolerance)
	for i, c := range chunks {
		assert.Greater(t, c.End, c.Start, "chunk %d has no duration", i)
		assert.NotEmpty(t, strings.TrimSpace(c.Text), "chunk %d has no text", i)
		if i+1 < len(chunks) {
			assert.Equal(t, c.End, chunks[i+1].Start, "gap between chunk %d and %d", i, i+1)
		}
	}
}

func TestSynchronizeSingleUnit(t *testing.T) {
	chunks, err := Synchronize("Only one sentence here", 10.0, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 0.0, chunks[0].Start)
	assert.Equal(t, 10.0, chunks[0].End)
}

func TestSynchronizeSingleUnitIgnoresClamps(t *testing.T) {
	chunks, err := Synchronize("A single sentence that is long enough.", 30.0, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assert.Equal(t, 30.0, chunks[0].End)
}

func TestSynchronizeProportional(t *testing.T) {
	text := "Short. This sentence has many more words in it than the first one."
	chunks, err := Synchronize(text, 12.0, noClamps())
	require.NoError(t, err)
	require.Len(t, chunks, 2)
	assertCoverage(t, chunks, 12.0)

	// 1 word vs 12 words
	assert.InDelta(t, 12.0*1/13, chunks[0].Duration(), tolerance)
	assert.InDelta(t, 12.0*12/13, chunks[1].Duration(), tolerance)
	assert.Greater(t, chunks[1].Duration(), 5*chunks[0].Duration())
}

func TestSynchronizeClampRedistribute(t *testing.T) {
	long := "one two three four five six seven eight nine ten eleven twelve thirteen fourteen fifteen sixteen seventeen eighteen nineteen twenty."
	text := "Wait! " + long + " " + long
	cfg := Config{MinChunkSeconds: 2.0, MaxChunkSeconds: 12.0}

	chunks, err := Synchronize(text, 20.0, cfg)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assertCoverage(t, chunks, 20.0)

	assert.InDelta(t, 2.0, chunks[0].Duration(), tolerance)
	assert.InDelta(t, 9.0, chunks[1].Duration(), tolerance)
	assert.InDelta(t, 9.0, chunks[2].Duration(), tolerance)
}

func TestSynchronizeResidualGoesToLast(t *testing.T) {
	text := "First one here. Second one here. Third one here."
	cfg := Config{MinChunkSeconds: 1.0, MaxChunkSeconds: 5.0}

	chunks, err := Synchronize(text, 30.0, cfg)
	require.NoError(t, err)
	require.Len(t, chunks, 3)
	assertCoverage(t, chunks, 30.0)

	assert.InDelta(t, 5.0, chunks[0].Duration(), tolerance)
	assert.InDelta(t, 5.0, chunks[1].Duration(), tolerance)
	assert.InDelta(t, 20.0, chunks[2].Duration(), tolerance)
}

func TestSynchronizeInfeasibleFloor(t *testing.T) {
	text := "A. B. C. D. E. F. G. H. I. J."
	chunks, err := Synchronize(text, 5.0, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, chunks, 10)
	assertCoverage(t, chunks, 5.0)
	for _, c := range chunks {
		assert.InDelta(t, 0.5, c.Duration(), tolerance)
	}
}

func TestSynchronizeOrderPreserved(t *testing.T) {
	text := "Report the fraud within one hour! Call 1930 immediately. Keep screenshots of every transaction? Yes, always."
	chunks, err := Synchronize(text, 24.0, DefaultConfig())
	require.NoError(t, err)
	assertCoverage(t, chunks, 24.0)

	var joined []string
	for _, c := range chunks {
		joined = append(joined, strings.Fields(c.Text)...)
	}
	assert.Equal(t, strings.Fields(text), joined)
}

func TestSynchronizeWrapsWithoutChangingTiming(t *testing.T) {
	text := "Consumer rights cover refunds, returns and compensation for defective goods. Act quickly."
	wrapped, err := Synchronize(text, 10.0, Config{MaxCharsPerLine: 12})
	require.NoError(t, err)
	flat, err := Synchronize(text, 10.0, Config{})
	require.NoError(t, err)

	require.Len(t, wrapped, len(flat))
	for i := range wrapped {
		assert.Equal(t, flat[i].Start, wrapped[i].Start)
		assert.Equal(t, flat[i].End, wrapped[i].End)
		for _, line := range strings.Split(wrapped[i].Text, "\n") {
			assert.LessOrEqual(t, len([]rune(line)), 12)
		}
	}
}

func TestSynchronizeErrors(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		duration float64
		wantErr  error
	}{
		{"empty text", "", 10.0, ErrEmptyInput},
		{"whitespace text", " \n\t ", 10.0, ErrEmptyInput},
		{"zero duration", "text", 0.0, ErrInvalidDuration},
		{"negative duration", "text", -3.0, ErrInvalidDuration},
		{"nan duration", "text", math.NaN(), ErrInvalidDuration},
		{"infinite duration", "text", math.Inf(1), ErrInvalidDuration},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks, err := Synchronize(tt.text, tt.duration, DefaultConfig())
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, chunks)
		})
	}
}

func TestSynchronizeIdempotent(t *testing.T) {
	text := "Tenant deposits must be returned. Landlords cannot keep them without reason! Ask for a receipt."
	first, err := Synchronize(text, 17.3, DefaultConfig())
	require.NoError(t, err)
	second, err := Synchronize(text, 17.3, DefaultConfig())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSynchronizeNoPunctuation(t *testing.T) {
	chunks, err := Synchronize("no punctuation at all just words", 7.5, DefaultConfig())
	require.NoError(t, err)
	require.Len(t, chunks, 1)
	assertCoverage(t, chunks, 7.5)
}
