package related

import (
	"testing"

	"streamgearhub/cmd/api/dto"
)

func candidate(slug string, categories, tags []string) dto.PostSummaryDTO {
	return dto.PostSummaryDTO{Slug: slug, Title: slug, Categories: categories, Tags: tags}
}

func slugs(posts []dto.PostSummaryDTO) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}

func assertSlugs(t *testing.T, got []dto.PostSummaryDTO, want ...string) {
	t.Helper()
	gotSlugs := slugs(got)
	if len(gotSlugs) != len(want) {
		t.Fatalf("Select() = %v, want %v", gotSlugs, want)
	}
	for i := range want {
		if gotSlugs[i] != want[i] {
			t.Fatalf("Select() = %v, want %v", gotSlugs, want)
		}
	}
}

func TestSelectExcludesSelf(t *testing.T) {
	pool := []dto.PostSummaryDTO{
		candidate("self", []string{"Audio"}, nil),
		candidate("other", []string{"Audio"}, nil),
	}

	got := Select(pool, "self", "Audio", nil, 3)
	assertSlugs(t, got, "other")
}

func TestSelectCategoryPassFirst(t *testing.T) {
	pool := []dto.PostSummaryDTO{
		candidate("tag-match", []string{"Video"}, []string{"mic"}),
		candidate("cat-match-1", []string{"Audio"}, nil),
		candidate("cat-match-2", []string{"Audio", "Video"}, nil),
	}

	// category matches fill first even though the tag match comes earlier
	got := Select(pool, "self", "Audio", []string{"mic"}, 3)
	assertSlugs(t, got, "cat-match-1", "cat-match-2", "tag-match")
}

func TestSelectTagPassSkipsTaken(t *testing.T) {
	pool := []dto.PostSummaryDTO{
		candidate("both", []string{"Audio"}, []string{"mic"}),
		candidate("tag-only", []string{"Video"}, []string{"mic"}),
	}

	got := Select(pool, "self", "Audio", []string{"mic"}, 3)
	assertSlugs(t, got, "both", "tag-only")
}

func TestSelectHonorsLimit(t *testing.T) {
	pool := []dto.PostSummaryDTO{
		candidate("a", []string{"Audio"}, nil),
		candidate("b", []string{"Audio"}, nil),
		candidate("c", []string{"Audio"}, nil),
		candidate("d", []string{"Audio"}, nil),
	}

	got := Select(pool, "self", "Audio", nil, 3)
	assertSlugs(t, got, "a", "b", "c")
}

func TestSelectNeverPads(t *testing.T) {
	pool := []dto.PostSummaryDTO{
		candidate("unrelated-1", []string{"Video"}, []string{"camera"}),
		candidate("related", []string{"Audio"}, nil),
		candidate("unrelated-2", []string{"IRL"}, nil),
	}

	got := Select(pool, "self", "Audio", []string{"mic"}, 3)
	assertSlugs(t, got, "related")
}

func TestSelectEmptyPool(t *testing.T) {
	got := Select(nil, "self", "Audio", []string{"mic"}, 3)
	if got == nil || len(got) != 0 {
		t.Fatalf("Select(nil pool) = %v, want empty slice", got)
	}
}

func TestSelectZeroLimit(t *testing.T) {
	pool := []dto.PostSummaryDTO{candidate("a", []string{"Audio"}, nil)}
	if got := Select(pool, "self", "Audio", nil, 0); len(got) != 0 {
		t.Fatalf("Select(limit=0) = %v, want empty", got)
	}
}
