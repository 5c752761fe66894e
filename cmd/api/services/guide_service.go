package services

import (
	"context"

	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/normalizer"
	"streamgearhub/cmd/internal/logger"
	"streamgearhub/config"
)

// GuideService maps tutorial records into view models.
type GuideService struct {
	client *wpclient.Client
	gear   *GearService
}

func NewGuideService(client *wpclient.Client, gear *GearService) *GuideService {
	return &GuideService{client: client, gear: gear}
}

func (s *GuideService) List(ctx context.Context, page int) []dto.GuideDTO {
	cfg := config.GetConfig().Fetch
	guides, err := s.client.ListGuides(ctx, page, cfg.ArchivePerPage)
	if err != nil {
		logger.WarnWithFields("guide list fetch failed, serving empty collection", logger.Fields{"error": err.Error()})
		return []dto.GuideDTO{}
	}

	out := make([]dto.GuideDTO, 0, len(guides))
	for _, g := range guides {
		vm := normalizer.Guide(g)
		vm.Recommended = rewriteProducts(vm.Recommended)
		out = append(out, vm)
	}
	return out
}

func (s *GuideService) GetBySlug(ctx context.Context, slug string) (*dto.GuideDTO, error) {
	g, err := s.client.GetGuideBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	vm := normalizer.Guide(g)
	vm.Recommended = rewriteProducts(vm.Recommended)
	if len(vm.Recommended) == 0 {
		products, err := s.gear.Products(ctx)
		if err != nil {
			logger.WarnWithFields("gear feed fallback failed, serving no recommendations", logger.Fields{"slug": slug, "error": err.Error()})
			products = []dto.ProductDTO{}
		}
		vm.Recommended = products
	}
	return &vm, nil
}
