package request

import (
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/domain/wizard"
)

// StartWizardRequest opens a create wizard, or an edit wizard when StallID is set.
type StartWizardRequest struct {
	StallID string `json:"stallId"`
}

type BasicRequest struct {
	PdvName           string `json:"pdvName"`
	MachinesQty       int    `json:"machinesQty"`
	BannerName        string `json:"bannerName"`
	MainCategory      string `json:"mainCategory"`
	MainCategoryOther string `json:"mainCategoryOther"`
	StallType         string `json:"stallType"`
	StallSize         string `json:"stallSize"`
	TeamQty           int    `json:"teamQty"`
}

func (r BasicRequest) ToDraft() wizard.BasicDraft {
	return wizard.BasicDraft{
		PdvName:           r.PdvName,
		MachinesQty:       r.MachinesQty,
		BannerName:        r.BannerName,
		MainCategory:      r.MainCategory,
		MainCategoryOther: r.MainCategoryOther,
		StallType:         entities.StallType(r.StallType),
		StallSize:         entities.StallSize(r.StallSize),
		TeamQty:           r.TeamQty,
	}
}

type EquipmentRequest struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

type InfraRequest struct {
	Outlets110   int                `json:"outlets110"`
	Outlets220   int                `json:"outlets220"`
	OutletsOther int                `json:"outletsOther"`
	NeedsGas     bool               `json:"needsGas"`
	GasNotes     string             `json:"gasNotes"`
	Notes        string             `json:"notes"`
	Equipments   []EquipmentRequest `json:"equipments"`
}

func (r InfraRequest) ToDraft() wizard.InfraDraft {
	eq := make([]wizard.EquipmentDraft, 0, len(r.Equipments))
	for _, e := range r.Equipments {
		eq = append(eq, wizard.EquipmentDraft{Name: e.Name, Qty: e.Qty})
	}
	return wizard.InfraDraft{
		Outlets110:   r.Outlets110,
		Outlets220:   r.Outlets220,
		OutletsOther: r.OutletsOther,
		NeedsGas:     r.NeedsGas,
		GasNotes:     r.GasNotes,
		Notes:        r.Notes,
		Equipments:   eq,
	}
}

type CategoryRequest struct {
	Name string `json:"name"`
}

// ProductRequest carries the price as typed, e.g. "12,50".
type ProductRequest struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

func (r ProductRequest) ToDraft() wizard.ProductDraft {
	return wizard.ProductDraft{Name: r.Name, Price: r.Price}
}

type ProductsRequest struct {
	Products []ProductRequest `json:"products" binding:"required,min=1"`
}

func (r ProductsRequest) ToDrafts() []wizard.ProductDraft {
	out := make([]wizard.ProductDraft, 0, len(r.Products))
	for _, p := range r.Products {
		out = append(out, p.ToDraft())
	}
	return out
}

// DragRequest drives the menu drag state machine. Index is the grabbed row on
// start and the row under the pointer on move.
type DragRequest struct {
	Kind          string `json:"kind" binding:"required,oneof=category product"`
	CategoryIndex int    `json:"categoryIndex" binding:"min=0"`
	Index         *int   `json:"index" binding:"required,min=0"`
}
