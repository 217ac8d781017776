package catalog

import (
	"context"
	"fmt"
	"path"
	"strings"
	"sync"
	"time"

	"image-rotator/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// resolveBatchSize bounds concurrent link resolutions per batch to respect
// provider rate limits.
const resolveBatchSize = 25

// Entry is a single image file in the remote library.
type Entry struct {
	// Path is the full object key, unique across the library.
	Path string
	// Name is the file name without directories.
	Name string
}

// Library enumerates the remote image library and resolves shareable links.
type Library interface {
	// ListImages lists all image files under root, recursively, grouped by
	// their parent folder path.
	ListImages(ctx context.Context, root string) (map[string][]Entry, error)

	// ResolvePublicURLs resolves shareable links for the given paths.
	// Best effort: paths whose link could not be generated are omitted
	// from the result, never failing the whole call.
	ResolvePublicURLs(ctx context.Context, paths []string) (map[string]string, error)
}

var imageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

func isImage(name string) bool {
	_, ok := imageExtensions[strings.ToLower(path.Ext(name))]
	return ok
}

// StorageLibrary is a Library backed by the object storage bucket.
type StorageLibrary struct {
	client  storage.Client
	bucket  string
	linkTTL time.Duration
	logger  *zap.Logger
}

// NewStorageLibrary creates a Library over the given bucket.
func NewStorageLibrary(client storage.Client, bucket string, linkTTL time.Duration, logger *zap.Logger) *StorageLibrary {
	return &StorageLibrary{
		client:  client,
		bucket:  bucket,
		linkTTL: linkTTL,
		logger:  logger,
	}
}

// ListImages lists all objects under root and groups image files by folder.
func (l *StorageLibrary) ListImages(ctx context.Context, root string) (map[string][]Entry, error) {
	exists, err := l.client.BucketExists(ctx, l.bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check library bucket: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("library bucket %q does not exist", l.bucket)
	}

	prefix := strings.TrimSuffix(root, "/")
	if prefix != "" {
		prefix += "/"
	}

	byFolder := make(map[string][]Entry)
	for obj := range l.client.ListObjects(ctx, l.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list library objects: %w", obj.Err)
		}
		if !isImage(obj.Key) {
			continue
		}
		folder := path.Dir(obj.Key)
		byFolder[folder] = append(byFolder[folder], Entry{
			Path: obj.Key,
			Name: path.Base(obj.Key),
		})
	}

	return byFolder, nil
}

// ResolvePublicURLs generates presigned links in bounded batches.
// Failed resolutions are logged and omitted; they will be retried on the
// next sync because the image never makes it into the catalog.
func (l *StorageLibrary) ResolvePublicURLs(ctx context.Context, paths []string) (map[string]string, error) {
	urls := make(map[string]string, len(paths))
	if len(paths) == 0 {
		return urls, nil
	}

	var mu sync.Mutex
	for start := 0; start < len(paths); start += resolveBatchSize {
		end := start + resolveBatchSize
		if end > len(paths) {
			end = len(paths)
		}

		g, gctx := errgroup.WithContext(ctx)
		for _, p := range paths[start:end] {
			p := p
			g.Go(func() error {
				u, err := l.client.PresignedGetObject(gctx, l.bucket, p, l.linkTTL, nil)
				if err != nil {
					l.logger.Warn("Link resolution failed, skipping image",
						zap.String("path", p),
						zap.Error(err),
					)
					return nil
				}
				mu.Lock()
				urls[p] = u.String()
				mu.Unlock()
				return nil
			})
		}
		// Await the whole batch before starting the next one.
		if err := g.Wait(); err != nil {
			return nil, err
		}
	}

	return urls, nil
}
