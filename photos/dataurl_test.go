package photos

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
)

type memSource struct {
	data []byte
	err  error
}

func (m memSource) Open() (io.ReadCloser, error) {
	if m.err != nil {
		return nil, m.err
	}
	return io.NopCloser(bytes.NewReader(m.data)), nil
}

// 最小的 PNG / GIF 头足够让 mimetype 识别
var (
	pngBytes = append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 16)...)
	gifBytes = []byte("GIF89a\x01\x00\x01\x00\x00\x00\x00;")
)

func TestToDataURLs_SkipsNonImages(t *testing.T) {
	got := ToDataURLs(context.Background(), []Source{
		memSource{data: pngBytes},
		memSource{data: []byte("just some text, not an image")},
		memSource{err: errors.New("disk gone")},
		memSource{data: gifBytes},
		memSource{data: nil},
	})
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2 (%v)", len(got), got)
	}
	if !strings.HasPrefix(got[0], "data:image/png;base64,") {
		t.Errorf("got[0] = %.40q, want png data URL first", got[0])
	}
	if !strings.HasPrefix(got[1], "data:image/gif;base64,") {
		t.Errorf("got[1] = %.40q, want gif data URL second", got[1])
	}
}

func TestToDataURLs_TooLarge(t *testing.T) {
	big := append(append([]byte{}, pngBytes...), make([]byte, MaxFileSize)...)
	if got := ToDataURLs(context.Background(), []Source{memSource{data: big}}); len(got) != 0 {
		t.Errorf("oversized file accepted: %d results", len(got))
	}
}

func TestToDataURLs_Empty(t *testing.T) {
	if got := ToDataURLs(context.Background(), nil); len(got) != 0 {
		t.Errorf("ToDataURLs(nil) = %v", got)
	}
}
