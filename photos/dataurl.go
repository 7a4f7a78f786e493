// Package photos turns uploaded image files into data URLs so they can be
// stored inline on sell / rent-out requests.
package photos

import (
	"context"
	"encoding/base64"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/sync/errgroup"
)

const (
	MaxFileSize   = 5 * 1024 * 1024
	MaxFilesCount = 10
)

// Source 一个待读取的文件；multipart.FileHeader 通过 FromHeaders 适配
type Source interface {
	Open() (io.ReadCloser, error)
}

type headerSource struct{ fh *multipart.FileHeader }

func (h headerSource) Open() (io.ReadCloser, error) { return h.fh.Open() }

func FromHeaders(files []*multipart.FileHeader) []Source {
	out := make([]Source, 0, len(files))
	for _, fh := range files {
		out = append(out, headerSource{fh})
	}
	return out
}

// ToDataURLs 每个文件单独读取，全部结束后按输入顺序合并。
// 不是图片、超过大小或读取失败的文件直接跳过，不报错。
func ToDataURLs(ctx context.Context, files []Source) []string {
	if len(files) > MaxFilesCount {
		files = files[:MaxFilesCount]
	}
	results := make([]string, len(files))

	g, ctx := errgroup.WithContext(ctx)
	for i, src := range files {
		g.Go(func() error {
			if ctx.Err() != nil {
				return nil
			}
			results[i] = readOne(src)
			return nil
		})
	}
	_ = g.Wait()

	out := make([]string, 0, len(results))
	for _, r := range results {
		if r != "" {
			out = append(out, r)
		}
	}
	return out
}

func readOne(src Source) string {
	rc, err := src.Open()
	if err != nil {
		return ""
	}
	defer rc.Close()

	b, err := io.ReadAll(io.LimitReader(rc, MaxFileSize+1))
	if err != nil || len(b) == 0 || len(b) > MaxFileSize {
		return ""
	}
	mt := mimetype.Detect(b)
	if !strings.HasPrefix(mt.String(), "image/") {
		return ""
	}
	return "data:" + mt.String() + ";base64," + base64.StdEncoding.EncodeToString(b)
}
