// Package wizard holds the stall registration wizard: the three draft slices, the
// per-step validators, the menu reducers and drag state machine, and the payload
// builder that turns a finished draft into an entities.UpsertStall.
package wizard

import "portal_expositor/internal/domain/entities"

// CategoryOther is the mainCategory value that asks for a typed category.
const CategoryOther = "OTHER"

type CategoryOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// MainCategories are the selectable main categories, in display order.
var MainCategories = []CategoryOption{
	{Value: "PASTEL", Label: "Pastel"},
	{Value: "HAMBURGUER", Label: "Hambúrguer"},
	{Value: "PIZZA", Label: "Pizza"},
	{Value: "CHURROS", Label: "Churros"},
	{Value: "DOCES", Label: "Doces"},
	{Value: "BEBIDAS", Label: "Bebidas"},
	{Value: "SORVETE", Label: "Sorvete / Açaí"},
	{Value: "PORCOES", Label: "Porções"},
	{Value: "COMIDA_BRASILEIRA", Label: "Comida brasileira"},
	{Value: "COMIDA_ARABE", Label: "Comida árabe"},
	{Value: "COMIDA_JAPONESA", Label: "Comida japonesa"},
	{Value: "VEGANO", Label: "Vegano / Saudável"},
	{Value: CategoryOther, Label: "Outro (digitar)"},
}

// BasicDraft is step 0. StallSize stays empty while StallType is TRAILER.
type BasicDraft struct {
	PdvName           string             `json:"pdvName"`
	MachinesQty       int                `json:"machinesQty"`
	BannerName        string             `json:"bannerName"`
	MainCategory      string             `json:"mainCategory"`
	MainCategoryOther string             `json:"mainCategoryOther"`
	StallType         entities.StallType `json:"stallType"`
	StallSize         entities.StallSize `json:"stallSize"`
	TeamQty           int                `json:"teamQty"`
}

// ProductDraft keeps the price as typed ("12,50") until the payload is built.
type ProductDraft struct {
	Name  string `json:"name"`
	Price string `json:"price"`
}

// CategoryDraft is ordered by its position in the menu slice.
type CategoryDraft struct {
	Name     string         `json:"name"`
	Products []ProductDraft `json:"products"`
}

type EquipmentDraft struct {
	Name string `json:"name"`
	Qty  int    `json:"qty"`
}

// InfraDraft is step 2.
type InfraDraft struct {
	Outlets110   int              `json:"outlets110"`
	Outlets220   int              `json:"outlets220"`
	OutletsOther int              `json:"outletsOther"`
	NeedsGas     bool             `json:"needsGas"`
	GasNotes     string           `json:"gasNotes"`
	Notes        string           `json:"notes"`
	Equipments   []EquipmentDraft `json:"equipments"`
}

func (d InfraDraft) totalOutlets() int {
	return d.Outlets110 + d.Outlets220 + d.OutletsOther
}

func NewBasicDraft() BasicDraft {
	return BasicDraft{TeamQty: entities.TeamQtyMin}
}

func cloneMenu(cats []CategoryDraft) []CategoryDraft {
	out := make([]CategoryDraft, len(cats))
	for i, c := range cats {
		prods := make([]ProductDraft, len(c.Products))
		copy(prods, c.Products)
		out[i] = CategoryDraft{Name: c.Name, Products: prods}
	}
	return out
}
