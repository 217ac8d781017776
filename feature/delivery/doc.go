// Package delivery sends picked images over SMS/MMS and tracks outcomes.
//
// A send creates a DeliveryLog entry in status SENT, correlated to the
// provider by message id. The provider's asynchronous status callbacks move
// the entry to DELIVERED, UNDELIVERED, or FAILED; the first DELIVERED
// transition increments the image's monthly history counter used by the
// report feature.
package delivery
