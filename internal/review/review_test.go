package review

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/harshitanudurumati-art/Legal---shorts---autopilot/internal/caption"
)

func TestTimelineLines(t *testing.T) {
	chunks := []caption.Chunk{
		{Text: "Report UPI fraud\nwithin one hour.", Start: 0, End: 3.46},
		{Text: "Call 1930.", Start: 3.46, End: 61.25},
	}

	got := TimelineLines(chunks)
	want := []string{
		"00:00.0 – 00:03.5  Report UPI fraud within one hour.",
		"00:03.5 – 01:01.3  Call 1930.",
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TimelineLines()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestWriteDocx(t *testing.T) {
	path := filepath.Join(t.TempDir(), "review.docx")

	err := WriteDocx(path, Document{
		Title:     "Consumer rights: refund / return / compensation",
		Topic:     "Consumer rights: refund / return / compensation",
		Source:    "fallback",
		Narration: "Know your rights. Keep every receipt.",
		Duration:  6.2,
		Chunks: []caption.Chunk{
			{Text: "Know your rights.", Start: 0, End: 3},
			{Text: "Keep every receipt.", Start: 3, End: 6.2},
		},
	})
	if err != nil {
		t.Fatalf("WriteDocx() error = %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("review document missing: %v", err)
	}
	if info.Size() == 0 {
		t.Error("review document is empty")
	}
}
