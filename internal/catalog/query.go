// Package catalog implements the filter, sort and pagination contract shared by
// every store backend.
package catalog

import (
	"slices"
	"strings"

	"toolverse/internal/models"
)

// ToolFilter selects tools. Zero-valued string fields and nil pointers are not applied.
type ToolFilter struct {
	Category string
	Pricing  string
	Search   string
	Featured *bool
	Limit    *int
	Offset   *int
}

// BlogFilter selects blog posts. Zero-valued string fields and nil pointers are not applied.
type BlogFilter struct {
	Category string
	Featured *bool
	Limit    *int
	Offset   *int
}

// Page is the [offset, offset+limit) window applied after sorting.
type Page struct {
	Limit  *int
	Offset *int
}

// Page returns the pagination window of the filter.
func (f ToolFilter) Page() Page { return Page{Limit: f.Limit, Offset: f.Offset} }

// Page returns the pagination window of the filter.
func (f BlogFilter) Page() Page { return Page{Limit: f.Limit, Offset: f.Offset} }

// MatchesTool reports whether t satisfies every predicate present in f.
func MatchesTool(t *models.Tool, f ToolFilter) bool {
	if f.Category != "" && t.Category != f.Category {
		return false
	}
	if f.Pricing != "" && string(t.Pricing) != f.Pricing {
		return false
	}
	if f.Search != "" {
		q := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(t.Name), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) &&
			!strings.Contains(strings.ToLower(t.ShortDescription), q) {
			return false
		}
	}
	if f.Featured != nil && t.Featured != *f.Featured {
		return false
	}
	return true
}

// MatchesPost reports whether p satisfies every predicate present in f.
func MatchesPost(p *models.BlogPost, f BlogFilter) bool {
	if f.Category != "" && p.Category != f.Category {
		return false
	}
	if f.Featured != nil && p.Featured != *f.Featured {
		return false
	}
	return true
}

// FilterTools returns the tools matching f, preserving input order.
func FilterTools(tools []*models.Tool, f ToolFilter) []*models.Tool {
	out := make([]*models.Tool, 0, len(tools))
	for _, t := range tools {
		if MatchesTool(t, f) {
			out = append(out, t)
		}
	}
	return out
}

// FilterPosts returns the posts matching f, preserving input order.
func FilterPosts(posts []*models.BlogPost, f BlogFilter) []*models.BlogPost {
	out := make([]*models.BlogPost, 0, len(posts))
	for _, p := range posts {
		if MatchesPost(p, f) {
			out = append(out, p)
		}
	}
	return out
}

// CompareTools orders featured tools first, then by rating descending.
func CompareTools(a, b *models.Tool) int {
	if c := compareFeatured(a.Featured, b.Featured); c != 0 {
		return c
	}
	switch {
	case a.Rating > b.Rating:
		return -1
	case a.Rating < b.Rating:
		return 1
	}
	return 0
}

// ComparePosts orders featured posts first, then newest first.
func ComparePosts(a, b *models.BlogPost) int {
	if c := compareFeatured(a.Featured, b.Featured); c != 0 {
		return c
	}
	return b.CreatedAt.Compare(a.CreatedAt)
}

func compareFeatured(a, b bool) int {
	switch {
	case a && !b:
		return -1
	case !a && b:
		return 1
	}
	return 0
}

// SortTools sorts in place. Ties keep their input order.
func SortTools(tools []*models.Tool) {
	slices.SortStableFunc(tools, CompareTools)
}

// SortPosts sorts in place. Ties keep their input order.
func SortPosts(posts []*models.BlogPost) {
	slices.SortStableFunc(posts, ComparePosts)
}

// Paginate returns items[offset:offset+limit] clamped to the slice bounds.
// A nil limit means no cap. A negative limit or an offset that is negative or
// past the end yields an empty result.
func Paginate[T any](items []T, p Page) []T {
	offset := 0
	if p.Offset != nil {
		offset = *p.Offset
	}
	if offset < 0 || offset >= len(items) {
		return []T{}
	}

	end := len(items)
	if p.Limit != nil {
		if *p.Limit < 0 {
			return []T{}
		}
		if offset+*p.Limit < end {
			end = offset + *p.Limit
		}
	}
	return items[offset:end]
}

// QueryTools filters, sorts and paginates tools. The input slice is not modified.
func QueryTools(tools []*models.Tool, f ToolFilter) []*models.Tool {
	out := FilterTools(tools, f)
	SortTools(out)
	return Paginate(out, f.Page())
}

// QueryPosts filters, sorts and paginates posts. The input slice is not modified.
func QueryPosts(posts []*models.BlogPost, f BlogFilter) []*models.BlogPost {
	out := FilterPosts(posts, f)
	SortPosts(out)
	return Paginate(out, f.Page())
}
