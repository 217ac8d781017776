// Package notify sends image messages through an SMS/MMS provider.
//
// It speaks the Twilio-compatible REST messaging API: an authenticated form POST
// creates a message and returns a provider message id (SID). The provider later
// reports delivery progress to the configured status callback URL, which the
// delivery feature consumes.
//
// # Notifier Interface
//
// The Notifier interface abstracts the provider, making it easy to mock sends
// in unit tests (see core/notify/mocks).
package notify
