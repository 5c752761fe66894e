package dto

// StreamerDTO is the streamer-setup view model.
type StreamerDTO struct {
	Name       string              `json:"name"`
	Slug       string              `json:"slug"`
	Image      string              `json:"image"`
	Bio        string              `json:"bio,omitempty"`
	Info       string              `json:"info,omitempty"`
	Platforms  []string            `json:"platforms"`
	Categories []string            `json:"categories"`
	Equipment  []EquipmentGroupDTO `json:"equipment"`
}

// EquipmentGroupDTO groups a streamer's gear by category (audio, video, ...).
type EquipmentGroupDTO struct {
	Category string       `json:"category"`
	Items    []ProductDTO `json:"items"`
}
