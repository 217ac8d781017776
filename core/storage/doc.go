// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client to provide a simplified interface for the operations
// the application needs: listing the image library, generating shareable (presigned)
// links, and uploading report exports. This abstraction supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (as seen in core/storage/mocks).
//
// # Usage
//
//	client, err := storage.NewClient(cfg.Storage)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	link, err := client.PresignedGetObject(ctx, cfg.Storage.Bucket, "library/dogs/rex.jpg", cfg.Storage.LinkTTL(), nil)
package storage
