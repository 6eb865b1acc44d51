package pipeline

import (
	"sort"

	"artreport/domain/art"
)

// RankTop selects the n latest-year records with the greatest observed
// value, sorted descending. Records with a missing observation are excluded
// before ranking. When fewer than n eligible records exist, all of them are
// returned. The sort is stable, so equal values keep their original order.
func RankTop(records []art.MergedRecord, n int) []art.MergedRecord {
	latest := SelectLatest(records)

	eligible := make([]art.MergedRecord, 0, len(latest))
	for _, rec := range latest {
		if rec.HasObs {
			eligible = append(eligible, rec)
		}
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return eligible[i].ObsValue > eligible[j].ObsValue
	})

	if len(eligible) > n {
		eligible = eligible[:n]
	}
	return eligible
}
