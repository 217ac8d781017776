package storage

import "time"

// Config holds configuration for the storage provider.
type Config struct {
	// Endpoint is the URL of the storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket that holds the image library.
	Bucket string `mapstructure:"bucket" default:"images"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
	// RootPrefix is the prefix under which the image library lives.
	RootPrefix string `mapstructure:"root_prefix" default:"library"`
	// ReportPrefix is the prefix under which report exports are written.
	ReportPrefix string `mapstructure:"report_prefix" default:"reports"`
	// LinkTTLHours is how long generated shareable links stay valid.
	LinkTTLHours int `mapstructure:"link_ttl_hours" default:"168"`
}

// LinkTTL returns the shareable link lifetime as a duration.
func (c Config) LinkTTL() time.Duration {
	if c.LinkTTLHours <= 0 {
		return 168 * time.Hour
	}
	return time.Duration(c.LinkTTLHours) * time.Hour
}
