package wizard

import (
	"cmp"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/pkg/format"
	"slices"
	"strings"
)

type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusCancelled Status = "cancelled"
	StatusFinished  Status = "finished"
)

// Wizard owns the three draft slices and the current step. Steps only move
// forward through Next, which is gated by the current step's validator.
type Wizard struct {
	Mode    Mode            `json:"mode"`
	StallID string          `json:"stallId,omitempty"`
	Step    Step            `json:"step"`
	Status  Status          `json:"status"`
	Basic   BasicDraft      `json:"basic"`
	Menu    []CategoryDraft `json:"menu"`
	Infra   InfraDraft      `json:"infra"`
	Drag    DragState       `json:"drag"`
}

// New starts an empty create wizard.
func New() *Wizard {
	return &Wizard{
		Mode:   ModeCreate,
		Step:   StepBasic,
		Status: StatusActive,
		Basic:  NewBasicDraft(),
		Menu:   []CategoryDraft{},
		Infra:  InfraDraft{Equipments: []EquipmentDraft{}},
	}
}

// FromStall seeds an edit wizard from a saved stall. Categories and products are
// sorted by their saved order and prices go back to "12,5" strings.
func FromStall(s entities.Stall) *Wizard {
	w := New()
	w.Mode = ModeEdit
	w.StallID = s.ID

	w.Basic = BasicDraft{
		PdvName:     s.PdvName,
		MachinesQty: s.MachinesQty,
		BannerName:  deref(s.BannerName),
		StallType:   s.StallType,
		TeamQty:     s.TeamQty,
	}
	w.Basic.MainCategory, w.Basic.MainCategoryOther = seedMainCategory(deref(s.MainCategory))
	if s.StallSize != entities.StallSizeTrailer {
		w.Basic.StallSize = s.StallSize
	}

	cats := slices.Clone(s.Categories)
	slices.SortStableFunc(cats, func(a, b entities.MenuCategory) int { return cmp.Compare(a.Order, b.Order) })
	for _, c := range cats {
		prods := slices.Clone(c.Products)
		slices.SortStableFunc(prods, func(a, b entities.MenuProduct) int { return cmp.Compare(a.Order, b.Order) })
		cd := CategoryDraft{Name: c.Name, Products: make([]ProductDraft, 0, len(prods))}
		for _, p := range prods {
			cd.Products = append(cd.Products, ProductDraft{Name: p.Name, Price: format.CentsToPriceInput(p.PriceCents)})
		}
		w.Menu = append(w.Menu, cd)
	}

	for _, e := range s.Equipments {
		w.Infra.Equipments = append(w.Infra.Equipments, EquipmentDraft{Name: e.Name, Qty: e.Qty})
	}
	if pn := s.PowerNeed; pn != nil {
		w.Infra.Outlets110 = pn.Outlets110
		w.Infra.Outlets220 = pn.Outlets220
		w.Infra.OutletsOther = pn.OutletsOther
		w.Infra.NeedsGas = pn.NeedsGas
		w.Infra.GasNotes = deref(pn.GasNotes)
		w.Infra.Notes = deref(pn.Notes)
	}
	return w
}

// seedMainCategory maps a saved category back to the picker. A value that is not
// one of the known options was typed under OTHER.
func seedMainCategory(saved string) (string, string) {
	if saved == "" {
		return "", ""
	}
	for _, opt := range MainCategories {
		if opt.Value == saved && opt.Value != CategoryOther {
			return saved, ""
		}
	}
	return CategoryOther, saved
}

func (w *Wizard) validate(step Step) error {
	switch step {
	case StepBasic:
		return ValidateBasic(w.Basic)
	case StepMenu:
		return ValidateMenu(w.Menu)
	default:
		return ValidateInfra(w.Infra)
	}
}

// Next advances one step when the current step is valid. The step index does not
// move on failure.
func (w *Wizard) Next() error {
	if w.Status != StatusActive {
		return ErrNotActive
	}
	if w.Step >= StepInfra {
		return ErrNoNextStep
	}
	if err := w.validate(w.Step); err != nil {
		return err
	}
	w.Step++
	return nil
}

// Back goes one step back without validating. Back on the first step cancels
// the wizard.
func (w *Wizard) Back() error {
	if w.Status != StatusActive {
		return ErrNotActive
	}
	if w.Step == StepBasic {
		w.Status = StatusCancelled
		return nil
	}
	w.Step--
	w.Drag = DragState{}
	return nil
}

// PrepareSubmit re-runs every validator in step order. It is only available on
// the infra step. The first failure moves the wizard to the failing step;
// otherwise the payload is returned.
func (w *Wizard) PrepareSubmit() (entities.UpsertStall, error) {
	if w.Status != StatusActive {
		return entities.UpsertStall{}, ErrNotActive
	}
	if w.Step != StepInfra {
		return entities.UpsertStall{}, ErrNotLastStep
	}
	for _, step := range []Step{StepBasic, StepMenu, StepInfra} {
		if err := w.validate(step); err != nil {
			w.Step = step
			return entities.UpsertStall{}, err
		}
	}
	return w.BuildPayload(), nil
}

// Finish marks the wizard done after the backend accepted the payload.
func (w *Wizard) Finish(stallID string) {
	w.Status = StatusFinished
	if stallID != "" {
		w.StallID = stallID
	}
}

// BuildPayload converts the drafts to the upsert contract. It clamps every bounded
// number on its own, so the payload stays inside the server limits even for a
// draft no validator looked at.
func (w *Wizard) BuildPayload() entities.UpsertStall {
	b := w.Basic

	categories := make([]entities.UpsertMenuCategory, 0, len(w.Menu))
	for _, c := range w.Menu {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			continue
		}
		cat := entities.UpsertMenuCategory{Name: name, Order: len(categories), Products: []entities.UpsertMenuProduct{}}
		for _, p := range c.Products {
			pn := strings.TrimSpace(p.Name)
			if pn == "" {
				continue
			}
			cat.Products = append(cat.Products, entities.UpsertMenuProduct{
				Name:       pn,
				PriceCents: format.BrlToCents(p.Price),
				Order:      len(cat.Products),
			})
		}
		categories = append(categories, cat)
	}

	equipments := make([]entities.UpsertEquipment, 0, len(w.Infra.Equipments))
	for _, e := range w.Infra.Equipments {
		name := strings.TrimSpace(e.Name)
		if name == "" {
			continue
		}
		equipments = append(equipments, entities.UpsertEquipment{
			Name: name,
			Qty:  clamp(e.Qty, entities.EquipmentQtyMin, entities.EquipmentQtyMax),
		})
	}

	mainCategory := strings.TrimSpace(b.MainCategory)
	if b.MainCategory == CategoryOther {
		mainCategory = strings.TrimSpace(b.MainCategoryOther)
	}

	size := entities.StallSize3x3
	switch {
	case b.StallType == entities.StallTypeTrailer:
		size = entities.StallSizeTrailer
	case b.StallSize.Physical():
		size = b.StallSize
	}

	power := &entities.UpsertPower{
		Outlets110:   max(0, w.Infra.Outlets110),
		Outlets220:   max(0, w.Infra.Outlets220),
		OutletsOther: max(0, w.Infra.OutletsOther),
		NeedsGas:     w.Infra.NeedsGas,
		Notes:        strings.TrimSpace(w.Infra.Notes),
	}
	if w.Infra.NeedsGas {
		power.GasNotes = strings.TrimSpace(w.Infra.GasNotes)
	}

	return entities.UpsertStall{
		PdvName:      strings.TrimSpace(b.PdvName),
		MachinesQty:  clamp(b.MachinesQty, entities.MachinesQtyMin, entities.MachinesQtyMax),
		BannerName:   strings.TrimSpace(b.BannerName),
		MainCategory: mainCategory,
		StallType:    b.StallType,
		StallSize:    size,
		TeamQty:      clamp(b.TeamQty, entities.TeamQtyMin, entities.TeamQtyMax),
		Categories:   categories,
		Equipments:   equipments,
		Power:        power,
	}
}

func clamp(v, lo, hi int) int {
	return min(hi, max(lo, v))
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
