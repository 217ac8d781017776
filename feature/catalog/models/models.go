package models

import "time"

// Delivery statuses for a DeliveryLog entry.
const (
	StatusSent        = "SENT"
	StatusDelivered   = "DELIVERED"
	StatusUndelivered = "UNDELIVERED"
	StatusFailed      = "FAILED"
)

// Folder is a remote container of images, keyed by its unique remote path.
// Folders are created on first sighting during a catalog sync and never
// deleted automatically; only their images are pruned.
type Folder struct {
	ID         int     `gorm:"primaryKey;autoIncrement"`
	Name       string  `gorm:"size:255;not null"`
	RemotePath string  `gorm:"uniqueIndex;size:512;not null"`
	Images     []Image `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

// Image is a single library entry with a resolved shareable URL.
// WasShown tracks the current non-repeating cycle for its folder;
// IsTodaysPick is a day-scoped flag cleared and reset on every selection run.
type Image struct {
	ID           int       `gorm:"primaryKey;autoIncrement"`
	RemotePath   string    `gorm:"uniqueIndex;size:512;not null"`
	URL          string    `gorm:"type:text;not null"`
	WasShown     bool      `gorm:"not null;default:false"`
	IsTodaysPick bool      `gorm:"not null;default:false"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt    time.Time `gorm:"not null;autoUpdateTime"`
	FolderID     int       `gorm:"index;not null"`
	Folder       *Folder   `gorm:"foreignKey:FolderID;constraint:OnDelete:CASCADE"`
}

// DeliveryLog records one send attempt. MessageID carries the provider message
// id and correlates asynchronous delivery-status callbacks to the entry.
type DeliveryLog struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	Action    string    `gorm:"size:64;not null"`
	MessageID *string   `gorm:"index;size:64"`
	ImageID   int       `gorm:"index;not null"`
	Image     *Image    `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
	Status    string    `gorm:"size:20;not null;default:SENT"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// History counts confirmed deliveries of an image within one reporting period.
// One row per (image, month, year).
type History struct {
	ID        int       `gorm:"primaryKey;autoIncrement"`
	ImageID   int       `gorm:"uniqueIndex:idx_image_period;not null"`
	Image     *Image    `gorm:"foreignKey:ImageID;constraint:OnDelete:CASCADE"`
	Count     int       `gorm:"not null;default:0"`
	Month     string    `gorm:"uniqueIndex:idx_image_period;size:16;not null"`
	Year      int       `gorm:"uniqueIndex:idx_image_period;not null"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime"`
}

// All returns every catalog model for schema migration.
func All() []any {
	return []any{&Folder{}, &Image{}, &DeliveryLog{}, &History{}}
}

// Tables lists the table names behind All, for schema presence checks.
func Tables() []string {
	return []string{"folders", "images", "delivery_logs", "histories"}
}
