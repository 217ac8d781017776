// Package picker selects the daily image rotation.
//
// Every run clears all previous picks, then independently selects up to three
// images per folder from the pool of images not yet shown in the current
// cycle. When a folder's unshown pool can no longer fill the quota, the cycle
// resets and the whole folder becomes eligible again. Selection is a uniform
// random shuffle without replacement; no image repeats within a cycle.
package picker
