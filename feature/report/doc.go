// Package report ranks confirmed deliveries per calendar month and exports
// the result as CSV to object storage. Delivery counts come from the history
// table maintained by the delivery feature; reporting periods are resolved in
// the fixed UTC-5 zone so a month boundary lands where operators expect it.
package report
