package services

import (
	"context"

	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/normalizer"
	"streamgearhub/cmd/api/related"
	"streamgearhub/cmd/internal/logger"
	"streamgearhub/config"
)

// PostService encapsulates blog-post fetching and view-model mapping.
//
// List paths degrade to empty collections when the CMS is unreachable:
// editorial pages prefer "nothing to show" over an error page.
type PostService struct {
	client *wpclient.Client
	gear   *GearService
}

func NewPostService(client *wpclient.Client, gear *GearService) *PostService {
	return &PostService{client: client, gear: gear}
}

// List returns one page of post summaries.
func (s *PostService) List(ctx context.Context, page int) []dto.PostSummaryDTO {
	cfg := config.GetConfig().Fetch
	posts, err := s.client.ListPosts(ctx, wpclient.ListPostsParams{Page: page, PerPage: cfg.PostsPerPage})
	if err != nil {
		logger.WarnWithFields("post list fetch failed, serving empty collection", logger.Fields{"error": err.Error()})
		return []dto.PostSummaryDTO{}
	}
	return summarize(posts)
}

// ListByTag resolves a tag slug and returns the posts carrying that tag.
// An unknown tag yields an empty collection, not an error.
func (s *PostService) ListByTag(ctx context.Context, tagSlug string) []dto.PostSummaryDTO {
	tag, err := s.client.FindTagBySlug(ctx, tagSlug)
	if err != nil {
		logger.WarnWithFields("tag lookup failed, serving empty collection", logger.Fields{"tag": tagSlug, "error": err.Error()})
		return []dto.PostSummaryDTO{}
	}

	cfg := config.GetConfig().Fetch
	posts, err := s.client.ListPosts(ctx, wpclient.ListPostsParams{PerPage: cfg.ArchivePerPage, TagID: tag.ID})
	if err != nil {
		logger.WarnWithFields("tagged post fetch failed, serving empty collection", logger.Fields{"tag": tagSlug, "error": err.Error()})
		return []dto.PostSummaryDTO{}
	}
	return summarize(posts)
}

// GetBySlug builds the full post view model: normalized record, sidebar
// recommendations (falling back to the curated gear feed when the record's
// structured field is empty) and related posts.
func (s *PostService) GetBySlug(ctx context.Context, slug string) (*dto.PostDTO, error) {
	p, err := s.client.GetPostBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	vm := normalizer.Post(p)
	vm.Recommended = rewriteProducts(vm.Recommended)
	if len(vm.Recommended) == 0 {
		vm.Recommended = s.fallbackProducts(ctx)
	}
	vm.RelatedPosts = s.relatedPosts(ctx, vm.Slug, vm.Category, vm.Tags)
	return &vm, nil
}

// fallbackProducts serves the curated feed in place of an empty structured
// field. A feed failure degrades to no recommendations.
func (s *PostService) fallbackProducts(ctx context.Context) []dto.ProductDTO {
	products, err := s.gear.Products(ctx)
	if err != nil {
		logger.WarnWithFields("gear feed fallback failed, serving no recommendations", logger.Fields{"error": err.Error()})
		return []dto.ProductDTO{}
	}
	return products
}

// relatedPosts selects sidebar entries from a recent-post candidate pool.
// Pool fetch failures degrade to an empty sidebar.
func (s *PostService) relatedPosts(ctx context.Context, slug, category string, tags []string) []dto.RelatedPostDTO {
	cfg := config.GetConfig().Fetch
	candidates, err := s.client.ListPosts(ctx, wpclient.ListPostsParams{PerPage: cfg.ArchivePerPage})
	if err != nil {
		logger.WarnWithFields("related candidate fetch failed, serving empty sidebar", logger.Fields{"slug": slug, "error": err.Error()})
		return []dto.RelatedPostDTO{}
	}

	selected := related.Select(summarize(candidates), slug, category, tags, cfg.RelatedLimit)
	out := make([]dto.RelatedPostDTO, 0, len(selected))
	for _, c := range selected {
		out = append(out, dto.RelatedPostDTO{
			Title: c.Title,
			Date:  c.Date,
			Slug:  c.Slug,
			Image: c.FeaturedImage,
		})
	}
	return out
}

func summarize(posts []wpclient.Post) []dto.PostSummaryDTO {
	out := make([]dto.PostSummaryDTO, 0, len(posts))
	for _, p := range posts {
		out = append(out, normalizer.PostSummary(p))
	}
	return out
}
