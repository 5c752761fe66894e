package normalizer

import (
	"bytes"
	"encoding/json"
	"sort"

	"streamgearhub/cmd/api/dto"
)

// equipmentOrder is the display order of the well-known gear categories;
// anything else follows alphabetically.
var equipmentOrder = []string{"audio", "video", "computer", "accessories"}

// EquipmentGroups decodes a streamer's equipment custom field, a map of gear
// category to product list. The per-category payloads go through the same
// polymorphic product decoder as recommended products. Unparseable input
// yields an empty group list.
func EquipmentGroups(raw json.RawMessage) []dto.EquipmentGroupDTO {
	return equipmentGroups(raw, true)
}

func equipmentGroups(raw json.RawMessage, allowString bool) []dto.EquipmentGroupDTO {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return []dto.EquipmentGroupDTO{}
	}

	var keyed map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		if allowString {
			var s string
			if err := json.Unmarshal(trimmed, &s); err == nil {
				return equipmentGroups(json.RawMessage(s), false)
			}
		}
		return []dto.EquipmentGroupDTO{}
	}

	groups := make([]dto.EquipmentGroupDTO, 0, len(keyed))
	for _, category := range orderedCategories(keyed) {
		items := DecodeProducts(keyed[category])
		if len(items) == 0 {
			continue
		}
		groups = append(groups, dto.EquipmentGroupDTO{Category: category, Items: items})
	}
	return groups
}

func orderedCategories(keyed map[string]json.RawMessage) []string {
	seen := make(map[string]bool, len(keyed))
	ordered := make([]string, 0, len(keyed))
	for _, c := range equipmentOrder {
		if _, ok := keyed[c]; ok {
			ordered = append(ordered, c)
			seen[c] = true
		}
	}
	rest := make([]string, 0, len(keyed))
	for c := range keyed {
		if !seen[c] {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	return append(ordered, rest...)
}
