// Package utils provides common utility functions for the image-rotator application.
// It currently holds the reporting-period helpers shared by the delivery and
// report features.
package utils
