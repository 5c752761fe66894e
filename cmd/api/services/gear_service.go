package services

import (
	"context"

	"streamgearhub/cmd/api/affiliate"
	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/normalizer"
)

// GearService serves the curated recommended-products feed. It doubles as the
// fallback source when a record carries no usable structured product field.
type GearService struct {
	client *wpclient.Client
}

func NewGearService(client *wpclient.Client) *GearService {
	return &GearService{client: client}
}

// Products returns the curated feed with field defaults applied and outbound
// links affiliate-rewritten.
func (s *GearService) Products(ctx context.Context) ([]dto.ProductDTO, error) {
	feed, err := s.client.ListGearProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ProductDTO, 0, len(feed))
	for _, p := range feed {
		out = append(out, rewriteProduct(normalizer.GearProduct(p)))
	}
	return out, nil
}

// rewriteProduct applies the affiliate tag to a product's outbound link.
func rewriteProduct(p dto.ProductDTO) dto.ProductDTO {
	p.AmazonURL = affiliate.AppendTag(p.AmazonURL)
	return p
}

func rewriteProducts(products []dto.ProductDTO) []dto.ProductDTO {
	for i := range products {
		products[i] = rewriteProduct(products[i])
	}
	return products
}
