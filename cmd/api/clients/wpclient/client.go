package wpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"streamgearhub/cmd/api/httpclient"
	"streamgearhub/cmd/api/metrics"
	"streamgearhub/config"
)

// Client is a thin client for the headless WordPress REST API.
//
// - It knows nothing about view models; it only fetches raw CMS records.
// - Every field of a response is treated as optional; the normalizer is
//   responsible for defaults.
//
// rest base example: http://localhost/mylocalwp/wp-json/wp/v2

type Client struct {
	rest   *httpclient.BaseClient
	custom *httpclient.BaseClient
}

var ErrNotFound = errors.New("resource not found")

func New() *Client {
	wp := config.GetConfig().WordPress
	return &Client{
		rest:   httpclient.NewBaseClient(wp.RestURL()),
		custom: httpclient.NewBaseClient(wp.CustomURL()),
	}
}

// NewWithBaseURLs builds a client against explicit endpoints; used by tests.
func NewWithBaseURLs(restURL, customURL string) *Client {
	return &Client{
		rest:   httpclient.NewBaseClient(restURL),
		custom: httpclient.NewBaseClient(customURL),
	}
}

// getJSON runs a GET against the standard REST namespace and decodes into out.
func (c *Client) getJSON(ctx context.Context, base *httpclient.BaseClient, relPath string, q url.Values, out any) error {
	req, err := base.NewRequest(ctx, http.MethodGet, relPath, q, nil)
	if err != nil {
		return err
	}

	resp, err := base.Do(req)
	if err != nil {
		metrics.CMSRequestsTotal.WithLabelValues(relPath, "error").Inc()
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		metrics.CMSRequestsTotal.WithLabelValues(relPath, "not_found").Inc()
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		metrics.CMSRequestsTotal.WithLabelValues(relPath, "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("wordpress %s: status=%d body=%s", relPath, resp.StatusCode, string(body))
	}

	metrics.CMSRequestsTotal.WithLabelValues(relPath, "ok").Inc()
	return json.NewDecoder(resp.Body).Decode(out)
}

func listQuery(page, perPage int, embed bool) url.Values {
	q := url.Values{}
	if embed {
		// _embed pulls featured media, author and term side-channels along.
		q.Set("_embed", "")
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if perPage > 0 {
		q.Set("per_page", strconv.Itoa(perPage))
	}
	return q
}

// -------------------- Posts --------------------

type ListPostsParams struct {
	Page    int
	PerPage int
	// TagID filters posts by tag term ID (resolved via FindTagBySlug).
	TagID int
}

func (c *Client) ListPosts(ctx context.Context, params ListPostsParams) ([]Post, error) {
	q := listQuery(params.Page, params.PerPage, true)
	if params.TagID > 0 {
		q.Set("tags", strconv.Itoa(params.TagID))
	}
	var out []Post
	if err := c.getJSON(ctx, c.rest, "/posts", q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GetPostBySlug resolves a single post by its slug.
// Returns ErrNotFound when no post matches.
func (c *Client) GetPostBySlug(ctx context.Context, slug string) (Post, error) {
	q := listQuery(0, 0, true)
	q.Set("slug", slug)
	var out []Post
	if err := c.getJSON(ctx, c.rest, "/posts", q, &out); err != nil {
		return Post{}, err
	}
	if len(out) == 0 {
		return Post{}, ErrNotFound
	}
	return out[0], nil
}

// FindTagBySlug resolves a tag slug into its term record.
// Returns ErrNotFound when the tag does not exist.
func (c *Client) FindTagBySlug(ctx context.Context, slug string) (TagTerm, error) {
	q := url.Values{}
	q.Set("slug", slug)
	var out []TagTerm
	if err := c.getJSON(ctx, c.rest, "/tags", q, &out); err != nil {
		return TagTerm{}, err
	}
	if len(out) == 0 {
		return TagTerm{}, ErrNotFound
	}
	return out[0], nil
}

// -------------------- Reviews --------------------

func (c *Client) ListReviews(ctx context.Context, page, perPage int) ([]Review, error) {
	var out []Review
	if err := c.getJSON(ctx, c.rest, "/review", listQuery(page, perPage, true), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetReviewBySlug(ctx context.Context, slug string) (Review, error) {
	q := listQuery(0, 0, true)
	q.Set("slug", slug)
	var out []Review
	if err := c.getJSON(ctx, c.rest, "/review", q, &out); err != nil {
		return Review{}, err
	}
	if len(out) == 0 {
		return Review{}, ErrNotFound
	}
	return out[0], nil
}

// -------------------- Guides --------------------

func (c *Client) ListGuides(ctx context.Context, page, perPage int) ([]Guide, error) {
	var out []Guide
	if err := c.getJSON(ctx, c.rest, "/guides", listQuery(page, perPage, true), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetGuideBySlug(ctx context.Context, slug string) (Guide, error) {
	q := listQuery(0, 0, true)
	q.Set("slug", slug)
	var out []Guide
	if err := c.getJSON(ctx, c.rest, "/guides", q, &out); err != nil {
		return Guide{}, err
	}
	if len(out) == 0 {
		return Guide{}, ErrNotFound
	}
	return out[0], nil
}

// -------------------- Streamers --------------------

func (c *Client) ListStreamers(ctx context.Context, page, perPage int) ([]Streamer, error) {
	var out []Streamer
	if err := c.getJSON(ctx, c.rest, "/streamer", listQuery(page, perPage, true), &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetStreamerBySlug(ctx context.Context, slug string) (Streamer, error) {
	q := listQuery(0, 0, true)
	q.Set("slug", slug)
	var out []Streamer
	if err := c.getJSON(ctx, c.rest, "/streamer", q, &out); err != nil {
		return Streamer{}, err
	}
	if len(out) == 0 {
		return Streamer{}, ErrNotFound
	}
	return out[0], nil
}

// -------------------- Media --------------------

// SearchMedia returns the source URL of the first media item matching the
// search term, or "" when nothing matches.
func (c *Client) SearchMedia(ctx context.Context, search string) (string, error) {
	q := url.Values{}
	q.Set("search", search)
	var out []Media
	if err := c.getJSON(ctx, c.rest, "/media", q, &out); err != nil {
		return "", err
	}
	if len(out) == 0 {
		return "", nil
	}
	return out[0].SourceURL, nil
}

// -------------------- Gear feed --------------------

// ListGearProducts fetches the curated fallback-products feed from the custom
// namespace. Used when a record carries no usable structured product field.
func (c *Client) ListGearProducts(ctx context.Context) ([]GearProduct, error) {
	var out []GearProduct
	if err := c.getJSON(ctx, c.custom, "/products", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Health probes the REST root to confirm the CMS is reachable.
func (c *Client) Health(ctx context.Context) error {
	req, err := c.rest.NewRequest(ctx, http.MethodGet, "", nil, nil)
	if err != nil {
		return err
	}

	resp, err := c.rest.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("wordpress health: status=%d body=%s", resp.StatusCode, string(body))
	}
	return nil
}
