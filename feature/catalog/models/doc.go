// Package models defines the persisted catalog entities: folders, images,
// delivery logs, and per-period delivery history. All features share these
// models; only the catalog feature creates or prunes folders and images.
package models
