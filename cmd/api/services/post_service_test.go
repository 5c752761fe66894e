package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"streamgearhub/cmd/api/clients/wpclient"
)

// fakeCMS emulates the subset of the WordPress REST API the services touch.
type fakeCMS struct {
	posts      string // body for /posts without a slug filter
	postBySlug map[string]string
	gearFeed   string
	failAll    bool
}

func (f *fakeCMS) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/wp-json/wp/v2/posts", func(w http.ResponseWriter, r *http.Request) {
		if f.failAll {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if slug := r.URL.Query().Get("slug"); slug != "" {
			if body, ok := f.postBySlug[slug]; ok {
				w.Write([]byte(body))
				return
			}
			w.Write([]byte("[]"))
			return
		}
		w.Write([]byte(f.posts))
	})
	mux.HandleFunc("/wp-json/streamgearhub/v1/products", func(w http.ResponseWriter, r *http.Request) {
		if f.failAll || f.gearFeed == "" {
			http.Error(w, "boom", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(f.gearFeed))
	})
	return mux
}

func newPostService(t *testing.T, cms *fakeCMS) *PostService {
	t.Helper()
	srv := httptest.NewServer(cms.handler())
	t.Cleanup(srv.Close)
	client := wpclient.NewWithBaseURLs(srv.URL+"/wp-json/wp/v2", srv.URL+"/wp-json/streamgearhub/v1")
	return NewPostService(client, NewGearService(client))
}

func postJSON(slug, category, products string) string {
	return `{
		"id": 1,
		"slug": "` + slug + `",
		"date": "2025-03-04T10:30:00",
		"title": {"rendered": "` + slug + `"},
		"content": {"rendered": "<p>body</p>"},
		"excerpt": {"rendered": "<p>excerpt</p>"},
		"_embedded": {
			"wp:term": [
				[{"id": 5, "name": "` + category + `", "slug": "cat", "taxonomy": "category"}],
				[{"id": 7, "name": "mic", "slug": "mic", "taxonomy": "post_tag"}]
			]
		},
		"mini_recommended_products": ` + products + `
	}`
}

func TestPostListDegradesToEmpty(t *testing.T) {
	svc := newPostService(t, &fakeCMS{failAll: true})

	got := svc.List(context.Background(), 1)
	if got == nil {
		t.Fatal("List() returned nil, want empty slice")
	}
	assert.Empty(t, got)
}

func TestPostListMapsSummaries(t *testing.T) {
	cms := &fakeCMS{posts: "[" + postJSON("first-post", "Audio", `"[]"`) + "]"}
	svc := newPostService(t, cms)

	got := svc.List(context.Background(), 1)
	if len(got) != 1 {
		t.Fatalf("List() returned %d posts, want 1", len(got))
	}
	assert.Equal(t, "first-post", got[0].Slug)
	assert.Equal(t, "Audio", got[0].Category)
	assert.Equal(t, "March 4, 2025", got[0].Date)
}

func TestGetBySlugNotFound(t *testing.T) {
	svc := newPostService(t, &fakeCMS{posts: "[]", postBySlug: map[string]string{}})

	_, err := svc.GetBySlug(context.Background(), "no-such-post")
	if err == nil {
		t.Fatal("expected an error for an unknown slug")
	}
}

func TestGetBySlugRewritesEmbeddedProducts(t *testing.T) {
	products := `"[{\"title\":\"Blue Yeti\",\"amazonUrl\":\"https://amazon.com/dp/B00N1YPXW2\"}]"`
	cms := &fakeCMS{
		posts:      "[]",
		postBySlug: map[string]string{"mic-guide": "[" + postJSON("mic-guide", "Audio", products) + "]"},
		gearFeed:   `[]`,
	}
	svc := newPostService(t, cms)

	post, err := svc.GetBySlug(context.Background(), "mic-guide")
	if err != nil {
		t.Fatal(err)
	}
	if len(post.Recommended) != 1 {
		t.Fatalf("got %d recommended products, want 1", len(post.Recommended))
	}
	assert.Equal(t, "https://amazon.com/dp/B00N1YPXW2?tag=streamgearh09-20", post.Recommended[0].AmazonURL)
}

func TestGetBySlugFallsBackToGearFeed(t *testing.T) {
	cms := &fakeCMS{
		posts:      "[]",
		postBySlug: map[string]string{"mic-guide": "[" + postJSON("mic-guide", "Audio", `"[]"`) + "]"},
		gearFeed:   `[{"title": "Stream Deck", "amazon_url": "https://amazon.com/dp/B06XKNZT1P"}]`,
	}
	svc := newPostService(t, cms)

	post, err := svc.GetBySlug(context.Background(), "mic-guide")
	if err != nil {
		t.Fatal(err)
	}
	if len(post.Recommended) != 1 {
		t.Fatalf("got %d recommended products, want 1 from the feed", len(post.Recommended))
	}
	assert.Equal(t, "Stream Deck", post.Recommended[0].Title)
	assert.Equal(t, "https://amazon.com/dp/B06XKNZT1P?tag=streamgearh09-20", post.Recommended[0].AmazonURL)
}

func TestGetBySlugRelatedExcludesSelf(t *testing.T) {
	pool := "[" +
		postJSON("mic-guide", "Audio", `"[]"`) + "," +
		postJSON("same-category", "Audio", `"[]"`) + "," +
		postJSON("other-category", "Video", `"[]"`) +
		"]"
	cms := &fakeCMS{
		posts:      pool,
		postBySlug: map[string]string{"mic-guide": "[" + postJSON("mic-guide", "Audio", `"[]"`) + "]"},
		gearFeed:   `[]`,
	}
	svc := newPostService(t, cms)

	post, err := svc.GetBySlug(context.Background(), "mic-guide")
	if err != nil {
		t.Fatal(err)
	}
	for _, rel := range post.RelatedPosts {
		if rel.Slug == "mic-guide" {
			t.Error("related posts include the post itself")
		}
	}
	// same-category first, other-category taken by the tag pass
	if len(post.RelatedPosts) != 2 {
		t.Fatalf("got %d related posts, want 2", len(post.RelatedPosts))
	}
	assert.Equal(t, "same-category", post.RelatedPosts[0].Slug)
	assert.Equal(t, "other-category", post.RelatedPosts[1].Slug)
}
