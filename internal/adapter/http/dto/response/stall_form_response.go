package response

import (
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/format"
)

type StallSlotResponse struct {
	entities.StallSlot
	StallSizeLabel string `json:"stallSizeLabel"`
	UnitPriceLabel string `json:"unitPriceLabel"`
}

// StallsFormResponse is the validated form context with its window banner.
type StallsFormResponse struct {
	Fair            entities.FormFair   `json:"fair"`
	Window          entities.FormWindow `json:"window"`
	Banner          entities.FormBanner `json:"banner"`
	Owner           entities.FormOwner  `json:"owner"`
	StallsQty       int                 `json:"stallsQty"`
	StallSlots      []StallSlotResponse `json:"stallSlots"`
	LinkedStallIDs  []string            `json:"linkedStallIds"`
	LinkedStallsQty int                 `json:"linkedStallsQty"`
	RemainingSlots  int                 `json:"remainingSlots"`
}

func FromStallsFormView(v entities.StallsFormView) StallsFormResponse {
	fc := v.Context
	res := StallsFormResponse{
		Fair:            fc.Fair,
		Window:          fc.Window,
		Banner:          v.Banner,
		Owner:           fc.Owner,
		StallsQty:       fc.StallsQty,
		StallSlots:      make([]StallSlotResponse, 0, len(fc.StallSlots)),
		LinkedStallIDs:  fc.LinkedStallIDs,
		LinkedStallsQty: fc.LinkedStallsQty,
		RemainingSlots:  fc.RemainingSlots(),
	}
	if res.LinkedStallIDs == nil {
		res.LinkedStallIDs = []string{}
	}
	for _, s := range fc.StallSlots {
		res.StallSlots = append(res.StallSlots, StallSlotResponse{
			StallSlot:      s,
			StallSizeLabel: s.StallSize.Label(),
			UnitPriceLabel: format.CentsToBrl(s.UnitPriceCents),
		})
	}
	return res
}

type FormStallResponse struct {
	StallResponse
	Linked         bool   `json:"linked"`
	UpdatedAtLabel string `json:"updatedAtLabel"`
}

type FormStallsResponse struct {
	Stalls []FormStallResponse `json:"stalls"`
}

func FromFormStalls(stalls []entities.FormStall) FormStallsResponse {
	res := FormStallsResponse{Stalls: make([]FormStallResponse, 0, len(stalls))}
	for _, s := range stalls {
		res.Stalls = append(res.Stalls, FormStallResponse{
			StallResponse:  FromStall(s.Stall),
			Linked:         s.Linked,
			UpdatedAtLabel: format.FormatDateBRDateOnly(s.UpdatedAt),
		})
	}
	return res
}
