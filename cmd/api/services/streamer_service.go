package services

import (
	"context"

	"streamgearhub/cmd/api/clients/wpclient"
	"streamgearhub/cmd/api/dto"
	"streamgearhub/cmd/api/normalizer"
	"streamgearhub/cmd/internal/logger"
	"streamgearhub/config"
)

// StreamerService maps streamer-profile records into setup view models.
type StreamerService struct {
	client *wpclient.Client
}

func NewStreamerService(client *wpclient.Client) *StreamerService {
	return &StreamerService{client: client}
}

func (s *StreamerService) List(ctx context.Context, page int) []dto.StreamerDTO {
	cfg := config.GetConfig().Fetch
	streamers, err := s.client.ListStreamers(ctx, page, cfg.ArchivePerPage)
	if err != nil {
		logger.WarnWithFields("streamer list fetch failed, serving empty collection", logger.Fields{"error": err.Error()})
		return []dto.StreamerDTO{}
	}

	out := make([]dto.StreamerDTO, 0, len(streamers))
	for _, st := range streamers {
		out = append(out, mapStreamer(st))
	}
	return out
}

func (s *StreamerService) GetBySlug(ctx context.Context, slug string) (*dto.StreamerDTO, error) {
	st, err := s.client.GetStreamerBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	vm := mapStreamer(st)
	return &vm, nil
}

func mapStreamer(st wpclient.Streamer) dto.StreamerDTO {
	vm := normalizer.Streamer(st)
	for i := range vm.Equipment {
		vm.Equipment[i].Items = rewriteProducts(vm.Equipment[i].Items)
	}
	return vm
}
