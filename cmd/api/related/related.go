// Package related selects "related posts" for detail-page sidebars.
package related

import "streamgearhub/cmd/api/dto"

// Select picks up to limit candidates related to the record identified by
// excludeSlug. Two passes over the candidate pool:
//
//  1. same category (string equality on the candidate's category list)
//  2. tag overlap, over candidates pass 1 did not take
//
// The record itself is always excluded, each pass preserves the pool's input
// order, and the result is never padded with unrelated content.
func Select(candidates []dto.PostSummaryDTO, excludeSlug, category string, tags []string, limit int) []dto.PostSummaryDTO {
	if limit <= 0 {
		return []dto.PostSummaryDTO{}
	}

	selected := make([]dto.PostSummaryDTO, 0, limit)
	taken := make(map[string]bool, limit)

	for _, c := range candidates {
		if len(selected) >= limit {
			break
		}
		if c.Slug == excludeSlug {
			continue
		}
		if contains(c.Categories, category) {
			selected = append(selected, c)
			taken[c.Slug] = true
		}
	}

	if len(selected) < limit {
		for _, c := range candidates {
			if len(selected) >= limit {
				break
			}
			if c.Slug == excludeSlug || taken[c.Slug] {
				continue
			}
			if intersects(c.Tags, tags) {
				selected = append(selected, c)
				taken[c.Slug] = true
			}
		}
	}

	return selected
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func intersects(a, b []string) bool {
	for _, v := range a {
		if contains(b, v) {
			return true
		}
	}
	return false
}
