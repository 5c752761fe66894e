package services

import (
	"context"

	"streamgearhub/cmd/api/affiliate"
	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/normalizer"
	"streamgearhub/cmd/internal/logger"
	"streamgearhub/config"
)

// ReviewService maps gear-review records into view models with
// affiliate-rewritten purchase links.
type ReviewService struct {
	client *wpclient.Client
}

func NewReviewService(client *wpclient.Client) *ReviewService {
	return &ReviewService{client: client}
}

func (s *ReviewService) List(ctx context.Context, page int) []dto.ReviewDTO {
	cfg := config.GetConfig().Fetch
	reviews, err := s.client.ListReviews(ctx, page, cfg.ArchivePerPage)
	if err != nil {
		logger.WarnWithFields("review list fetch failed, serving empty collection", logger.Fields{"error": err.Error()})
		return []dto.ReviewDTO{}
	}

	out := make([]dto.ReviewDTO, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, mapReview(r))
	}
	return out
}

func (s *ReviewService) GetBySlug(ctx context.Context, slug string) (*dto.ReviewDTO, error) {
	r, err := s.client.GetReviewBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	vm := mapReview(r)
	return &vm, nil
}

func mapReview(r wpclient.Review) dto.ReviewDTO {
	vm := normalizer.Review(r)
	if vm.AmazonURL == "" {
		vm.AmazonURL = "#"
	} else {
		vm.AmazonURL = affiliate.AppendTag(vm.AmazonURL)
	}
	return vm
}
