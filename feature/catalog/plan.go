package catalog

import "sort"

// Plan is the computed difference between the remote library and the catalog.
type Plan struct {
	// ToAdd are remote paths not yet in the catalog.
	ToAdd []string `json:"to_add"`
	// ToRemove are catalog paths no longer present remotely.
	ToRemove []string `json:"to_remove"`
	// Summary provides aggregate counts.
	Summary Summary `json:"summary"`
}

// Summary provides aggregate statistics for a sync plan.
type Summary struct {
	// RemoteItems is the number of image files in the remote library.
	RemoteItems int `json:"remote_items"`
	// CatalogItems is the number of images currently in the catalog.
	CatalogItems int `json:"catalog_items"`
	// Additions counts planned image creations.
	Additions int `json:"additions"`
	// Removals counts planned image deletions.
	Removals int `json:"removals"`
}

// Empty reports whether the plan contains no mutations.
func (p *Plan) Empty() bool {
	return len(p.ToAdd) == 0 && len(p.ToRemove) == 0
}

// BuildPlan diffs the remote listing against the catalog's path set.
// Both inputs are snapshots, so a path can never appear in both ToAdd and
// ToRemove. Output slices are sorted for deterministic logs and tests.
func BuildPlan(remote map[string][]Entry, catalogPaths []string) *Plan {
	remoteSet := make(map[string]struct{})
	for _, entries := range remote {
		for _, e := range entries {
			remoteSet[e.Path] = struct{}{}
		}
	}

	catalogSet := make(map[string]struct{}, len(catalogPaths))
	for _, p := range catalogPaths {
		catalogSet[p] = struct{}{}
	}

	plan := &Plan{}
	for p := range remoteSet {
		if _, ok := catalogSet[p]; !ok {
			plan.ToAdd = append(plan.ToAdd, p)
		}
	}
	for p := range catalogSet {
		if _, ok := remoteSet[p]; !ok {
			plan.ToRemove = append(plan.ToRemove, p)
		}
	}

	sort.Strings(plan.ToAdd)
	sort.Strings(plan.ToRemove)

	plan.Summary = Summary{
		RemoteItems:  len(remoteSet),
		CatalogItems: len(catalogSet),
		Additions:    len(plan.ToAdd),
		Removals:     len(plan.ToRemove),
	}
	return plan
}
