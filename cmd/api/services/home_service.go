package services

import (
	"context"
	"math/rand"
	"sync"

	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/internal/logger"
)

const (
	homeRecentPosts  = 3
	homeFeaturedGear = 3
	heroMediaSearch  = "hero-setup"
)

// HomeService composes the landing page: recent posts, featured products and
// the hero image. The three fetches run concurrently and each degrades
// independently, so a single upstream failure never blanks the whole page.
type HomeService struct {
	posts *PostService
	gear  *GearService
	media *wpclient.Client
}

func NewHomeService(posts *PostService, gear *GearService, media *wpclient.Client) *HomeService {
	return &HomeService{posts: posts, gear: gear, media: media}
}

func (s *HomeService) Home(ctx context.Context) dto.HomeDTO {
	var (
		wg       sync.WaitGroup
		recent   []dto.PostSummaryDTO
		featured []dto.ProductDTO
		hero     string
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		recent = s.posts.List(ctx, 1)
		if len(recent) > homeRecentPosts {
			recent = recent[:homeRecentPosts]
		}
	}()
	go func() {
		defer wg.Done()
		products, err := s.gear.Products(ctx)
		if err != nil {
			logger.WarnWithFields("featured product fetch failed, serving empty section", logger.Fields{"error": err.Error()})
			products = []dto.ProductDTO{}
		}
		// rotate the feature slots between visits
		rand.Shuffle(len(products), func(i, j int) {
			products[i], products[j] = products[j], products[i]
		})
		if len(products) > homeFeaturedGear {
			products = products[:homeFeaturedGear]
		}
		featured = products
	}()
	go func() {
		defer wg.Done()
		url, err := s.media.SearchMedia(ctx, heroMediaSearch)
		if err != nil {
			logger.WarnWithFields("hero image lookup failed, serving empty hero", logger.Fields{"error": err.Error()})
			return
		}
		hero = url
	}()
	wg.Wait()

	return dto.HomeDTO{
		HeroImage:   hero,
		RecentPosts: recent,
		Featured:    featured,
	}
}
