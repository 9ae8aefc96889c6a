package response

import (
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/format"
)

type FairResponse struct {
	entities.FairView
	FairStatusLabel      string `json:"fairStatusLabel"`
	OwnerFairStatusLabel string `json:"ownerFairStatusLabel"`
	DueUrgencyLabel      string `json:"dueUrgencyLabel"`
	TotalLabel           string `json:"totalLabel"`
	PaidLabel            string `json:"paidLabel"`
	RemainingLabel       string `json:"remainingLabel"`
}

func FromFairView(v entities.FairView) FairResponse {
	return FairResponse{
		FairView:             v,
		FairStatusLabel:      v.FairStatus.Label(),
		OwnerFairStatusLabel: v.OwnerFairStatus.Label(),
		DueUrgencyLabel:      v.DueUrgency.Label(),
		TotalLabel:           format.CentsToBrl(v.Totals.TotalCents),
		PaidLabel:            format.CentsToBrl(v.Totals.PaidCents),
		RemainingLabel:       format.CentsToBrl(v.Totals.RemainingCents),
	}
}

type FairListResponse struct {
	Items []FairResponse `json:"items"`
}

func FromFairViews(views []entities.FairView) FairListResponse {
	res := FairListResponse{Items: make([]FairResponse, 0, len(views))}
	for _, v := range views {
		res.Items = append(res.Items, FromFairView(v))
	}
	return res
}
