package search

import (
	"sort"

	"github.com/competia/searchapi/internal/domain/entity"
	domsearch "github.com/competia/searchapi/internal/domain/search"
)

// groupByType buckets the full merged result set by entity type. Groups
// appear in first-seen order of the ranked input and each group is
// re-sorted by score so a group's head is its best hit.
func groupByType(items []domsearch.ResultItem) []domsearch.Group {
	var order []entity.Type
	buckets := make(map[entity.Type][]domsearch.ResultItem)
	for _, item := range items {
		if _, seen := buckets[item.EntityType]; !seen {
			order = append(order, item.EntityType)
		}
		buckets[item.EntityType] = append(buckets[item.EntityType], item)
	}

	groups := make([]domsearch.Group, 0, len(order))
	for _, t := range order {
		bucket := buckets[t]
		sort.SliceStable(bucket, func(i, j int) bool {
			return bucket[i].Score > bucket[j].Score
		})
		groups = append(groups, domsearch.Group{
			Type:  t,
			Count: len(bucket),
			Items: bucket,
		})
	}
	return groups
}
