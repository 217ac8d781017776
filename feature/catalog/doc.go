// Package catalog keeps the image catalog in sync with the remote library.
//
// A sync run lists the library (grouped by folder), diffs the listing's path
// set against the catalog's, resolves shareable links for new images only,
// and applies the plan in a single transaction: deletions first, then folder
// upserts, then image creations. Link-resolution misses are tolerated per
// item; they are logged, skipped, and retried on the next run. Any repository
// error rolls back the whole transaction and surfaces as ErrSyncFailed.
package catalog
