package service

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/jakechampion/site/internal/storage"
)

const (
	cacheControlHTML   = "public, max-age=0, must-revalidate"
	cacheControlAssets = "public, max-age=31536000, immutable"
)

// PublishService uploads a built output directory to object storage.
type PublishService struct {
	storage storage.Storage
	prefix  string
}

type PublishReport struct {
	Objects int
	URL     string
}

func NewPublishService(storage storage.Storage, prefix string) *PublishService {
	return &PublishService{
		storage: storage,
		prefix:  strings.Trim(prefix, "/"),
	}
}

// Publish uploads every regular file below dir. Keys are the slash-separated path
// relative to dir, under the configured prefix.
func (s *PublishService) Publish(ctx context.Context, dir string) (*PublishReport, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to stat output directory (run build first?): %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	report := &PublishReport{URL: s.storage.URL(s.Key("index.html"))}
	err = filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		key := s.Key(filepath.ToSlash(rel))

		f, err := os.Open(p)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", p, err)
		}
		defer f.Close()

		err = s.storage.Save(ctx, storage.Object{
			Key:          key,
			Body:         f,
			ContentType:  ContentType(rel),
			CacheControl: cacheControl(rel),
		})
		if err != nil {
			return err
		}

		slog.Debug("uploaded object", "key", key)
		report.Objects++
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to publish %s: %w", dir, err)
	}

	slog.Info("site published", "objects", report.Objects, "url", report.URL)
	return report, nil
}

// Key maps a path relative to the output directory to an object key.
func (s *PublishService) Key(rel string) string {
	if s.prefix == "" {
		return rel
	}
	return path.Join(s.prefix, rel)
}

// ContentType guesses a MIME type from the file extension.
func ContentType(name string) string {
	ct := mime.TypeByExtension(filepath.Ext(name))
	if ct == "" {
		return "application/octet-stream"
	}
	return ct
}

func cacheControl(name string) string {
	switch filepath.Ext(name) {
	case ".html", ".xml", ".txt":
		return cacheControlHTML
	default:
		return cacheControlAssets
	}
}
