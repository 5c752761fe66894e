package normalizer

import "streamgearhub/cmd/api/clients/wpclient"

// termGroup finds the embedded term group for a taxonomy. Modern responses
// carry the taxonomy name on every term, so lookup is by name first. Older
// responses omit the name and only guarantee the positional convention
// (group 0 = category, group 1 = tag); fallbackIndex covers those. Pass a
// negative fallbackIndex to disable the positional path (guides' difficulty
// taxonomy has no stable position).
func termGroup(emb *wpclient.Embedded, taxonomy string, fallbackIndex int) []wpclient.Term {
	if emb == nil {
		return nil
	}
	named := false
	for _, group := range emb.Terms {
		for _, t := range group {
			if t.Taxonomy != "" {
				named = true
			}
			if t.Taxonomy == taxonomy {
				return group
			}
		}
	}
	if named {
		// taxonomy names are present but none matched
		return nil
	}
	if fallbackIndex >= 0 && fallbackIndex < len(emb.Terms) {
		return emb.Terms[fallbackIndex]
	}
	return nil
}

// categoryName resolves the display category: first term of the category
// taxonomy, else the content-type default.
func categoryName(emb *wpclient.Embedded, def string) string {
	group := termGroup(emb, "category", 0)
	if len(group) > 0 && group[0].Name != "" {
		return group[0].Name
	}
	return def
}

// categoryNames returns all category term names, or nil.
func categoryNames(emb *wpclient.Embedded) []string {
	group := termGroup(emb, "category", 0)
	names := make([]string, 0, len(group))
	for _, t := range group {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	return names
}

// tagNames resolves the tag name list, else the content-type default list.
func tagNames(emb *wpclient.Embedded, def []string) []string {
	group := termGroup(emb, "post_tag", 1)
	names := make([]string, 0, len(group))
	for _, t := range group {
		if t.Name != "" {
			names = append(names, t.Name)
		}
	}
	if len(names) == 0 {
		out := make([]string, len(def))
		copy(out, def)
		return out
	}
	return names
}

// authorName resolves the embedded author display name.
func authorName(emb *wpclient.Embedded) string {
	if emb != nil && len(emb.Author) > 0 && emb.Author[0].Name != "" {
		return emb.Author[0].Name
	}
	return defaultAuthor
}

// featuredMediaURL returns the embedded featured-media source URL, or "".
func featuredMediaURL(emb *wpclient.Embedded) string {
	if emb != nil && len(emb.FeaturedMedia) > 0 {
		return emb.FeaturedMedia[0].SourceURL
	}
	return ""
}
