package models

// ViewResult reports counter state after a view is recorded.
type ViewResult struct {
	ViewCount       int64 `json:"view_count"`
	UniqueViewCount int64 `json:"unique_view_count"`
}

// LikeResult reports the like state after a toggle.
type LikeResult struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

// PlatformShare is one row of the per-platform share breakdown.
type PlatformShare struct {
	Platform string `json:"platform"`
	Count    int64  `json:"count"`
}

// ShareResult reports counter state after a share is recorded, including the
// breakdown across every recognized platform.
type ShareResult struct {
	Platform       string          `json:"platform"`
	ShareCount     int64           `json:"share_count"`
	PlatformCount  int64           `json:"platform_count"`
	PlatformShares []PlatformShare `json:"platform_shares"`
}

// FullShareBreakdown expands stored share rows to cover every recognized
// platform, zero-filling the ones never shared to.
func FullShareBreakdown(rows []PlatformShare) []PlatformShare {
	counts := make(map[string]int64, len(rows))
	for _, row := range rows {
		counts[row.Platform] = row.Count
	}
	out := make([]PlatformShare, 0, len(SharePlatforms))
	for _, p := range SharePlatforms {
		out = append(out, PlatformShare{Platform: p, Count: counts[p]})
	}
	return out
}
