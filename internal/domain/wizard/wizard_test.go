package wizard

import (
	"portal_expositor/internal/domain/entities"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validBasic() BasicDraft {
	return BasicDraft{
		PdvName:      "Pastel do Zé - PDV 1",
		MachinesQty:  2,
		BannerName:   "Pastel do Zé",
		MainCategory: "PASTEL",
		StallType:    entities.StallTypeOpen,
		StallSize:    entities.StallSize3x3,
		TeamQty:      3,
	}
}

func validMenu() []CategoryDraft {
	return []CategoryDraft{
		{Name: "Pastéis", Products: []ProductDraft{{Name: "Carne", Price: "12,50"}, {Name: "Queijo", Price: "11"}}},
		{Name: "Bebidas", Products: []ProductDraft{{Name: "Caldo de cana", Price: "8,00"}}},
	}
}

func validInfra() InfraDraft {
	return InfraDraft{Outlets220: 1, Equipments: []EquipmentDraft{{Name: "Fritadeira", Qty: 2}}}
}

func filledWizard() *Wizard {
	w := New()
	w.Basic = validBasic()
	w.Menu = validMenu()
	w.Infra = validInfra()
	return w
}

func requireNotice(t *testing.T, err error, step Step) *Notice {
	t.Helper()
	n, ok := AsNotice(err)
	require.True(t, ok, "expected a *Notice, got %v", err)
	require.Equal(t, step, n.Step)
	return n
}

func TestValidateBasic(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateBasic(validBasic()))
	})

	t.Run("open stall without size blocks", func(t *testing.T) {
		d := validBasic()
		d.StallSize = ""
		n := requireNotice(t, ValidateBasic(d), StepBasic)
		assert.Equal(t, "Informe o tamanho", n.Title)
	})

	t.Run("trailer needs no size", func(t *testing.T) {
		d := ApplyStallTypeChange(validBasic(), entities.StallTypeTrailer)
		assert.NoError(t, ValidateBasic(d))
	})

	t.Run("rules run in order", func(t *testing.T) {
		cases := []struct {
			name  string
			edit  func(*BasicDraft)
			title string
		}{
			{"pdv", func(d *BasicDraft) { d.PdvName = "  " }, "Informe o nome interno (PDV)"},
			{"machines", func(d *BasicDraft) { d.MachinesQty = 6 }, "Quantidade de máquinas inválida"},
			{"banner", func(d *BasicDraft) { d.BannerName = "" }, "Informe o nome do banner"},
			{"category", func(d *BasicDraft) { d.MainCategory = "" }, "Informe a categoria principal"},
			{"other", func(d *BasicDraft) { d.MainCategory = CategoryOther }, "Informe a categoria"},
			{"team low", func(d *BasicDraft) { d.TeamQty = 0 }, "Informe pessoas na equipe"},
			{"team high", func(d *BasicDraft) { d.TeamQty = 16 }, "Informe pessoas na equipe"},
			{"type", func(d *BasicDraft) { d.StallType = "" }, "Informe o tipo da barraca"},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				d := validBasic()
				tc.edit(&d)
				n := requireNotice(t, ValidateBasic(d), StepBasic)
				assert.Equal(t, tc.title, n.Title)
			})
		}
	})
}

func TestBasicReducers(t *testing.T) {
	t.Run("trailer clears size", func(t *testing.T) {
		d := ApplyStallTypeChange(validBasic(), entities.StallTypeTrailer)
		assert.Equal(t, entities.StallSize(""), d.StallSize)
	})

	t.Run("non other category drops typed text", func(t *testing.T) {
		d := validBasic()
		d.MainCategory = CategoryOther
		d.MainCategoryOther = "Tapioca"
		d = ApplyMainCategoryChange(d, "DOCES")
		assert.Equal(t, "", d.MainCategoryOther)
	})

	t.Run("apply change composes both", func(t *testing.T) {
		prev := validBasic()
		next := prev
		next.StallType = entities.StallTypeTrailer
		next.MainCategory = "PIZZA"
		next.MainCategoryOther = "left over"
		got := ApplyBasicChange(prev, next)
		assert.Equal(t, entities.StallSize(""), got.StallSize)
		assert.Equal(t, "", got.MainCategoryOther)
		assert.Equal(t, "PIZZA", got.MainCategory)
	})

	t.Run("other keeps typed text", func(t *testing.T) {
		prev := validBasic()
		next := prev
		next.MainCategory = CategoryOther
		next.MainCategoryOther = "Tapioca"
		assert.Equal(t, "Tapioca", ApplyBasicChange(prev, next).MainCategoryOther)
	})
}

func TestValidateMenu(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, ValidateMenu(validMenu()))
	})

	t.Run("empty menu", func(t *testing.T) {
		n := requireNotice(t, ValidateMenu(nil), StepMenu)
		assert.Equal(t, "Adicione pelo menos 1 categoria para continuar.", n.Subtitle)
	})

	t.Run("category without products names it", func(t *testing.T) {
		menu := append(validMenu(), CategoryDraft{Name: "Lanches"})
		n := requireNotice(t, ValidateMenu(menu), StepMenu)
		assert.Contains(t, n.Subtitle, "Lanches")
		assert.Equal(t, "Complete o cardápio", n.Title)
	})

	t.Run("product rules name the category", func(t *testing.T) {
		long := strings.Repeat("x", 41)
		for _, p := range []ProductDraft{{Name: " ", Price: "1"}, {Name: long, Price: "1"}, {Name: "Coxinha", Price: "1.2"}} {
			menu := []CategoryDraft{{Name: "Salgados", Products: []ProductDraft{p}}}
			n := requireNotice(t, ValidateMenu(menu), StepMenu)
			assert.Contains(t, n.Subtitle, `"Salgados"`)
		}
	})

	t.Run("forty runes is fine", func(t *testing.T) {
		menu := []CategoryDraft{{Name: "Doces", Products: []ProductDraft{{Name: strings.Repeat("ç", 40), Price: "3"}}}}
		assert.NoError(t, ValidateMenu(menu))
	})
}

func TestMenuCRUD(t *testing.T) {
	menu := validMenu()

	t.Run("add category", func(t *testing.T) {
		out, err := AddCategory(menu, "  Lanches ")
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, "Lanches", out[2].Name)
		assert.Len(t, menu, 2, "input must not be mutated")

		_, err = AddCategory(menu, " ")
		requireNotice(t, err, StepMenu)
	})

	t.Run("rename and remove category", func(t *testing.T) {
		out, err := RenameCategory(menu, 1, "Sucos")
		require.NoError(t, err)
		assert.Equal(t, "Sucos", out[1].Name)
		assert.Equal(t, "Bebidas", menu[1].Name)

		out, err = RemoveCategory(menu, 0)
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, "Bebidas", out[0].Name)

		_, err = RemoveCategory(menu, 5)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})

	t.Run("add products is all or nothing", func(t *testing.T) {
		_, err := AddProducts(menu, 0, []ProductDraft{{Name: "Palmito", Price: "13"}, {Name: "Frango", Price: "abc"}})
		n := requireNotice(t, err, StepMenu)
		assert.Equal(t, "Preço inválido", n.Title)

		out, err := AddProducts(menu, 0, []ProductDraft{{Name: " Palmito ", Price: " 13,00 "}})
		require.NoError(t, err)
		require.Len(t, out[0].Products, 3)
		assert.Equal(t, ProductDraft{Name: "Palmito", Price: "13,00"}, out[0].Products[2])
		assert.Len(t, menu[0].Products, 2)
	})

	t.Run("edit and remove product", func(t *testing.T) {
		_, err := EditProduct(menu, 0, 0, ProductDraft{Name: strings.Repeat("a", 41), Price: "1"})
		n := requireNotice(t, err, StepMenu)
		assert.Equal(t, "Nome do produto muito grande", n.Title)

		out, err := EditProduct(menu, 0, 1, ProductDraft{Name: "Queijo e orégano", Price: "12"})
		require.NoError(t, err)
		assert.Equal(t, "Queijo e orégano", out[0].Products[1].Name)

		out, err = RemoveProduct(menu, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, []ProductDraft{{Name: "Queijo", Price: "11"}}, out[0].Products)

		_, err = RemoveProduct(menu, 1, 3)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
	})
}

func TestArrayMove(t *testing.T) {
	in := []int{0, 1, 2, 3, 4}
	assert.Equal(t, []int{1, 2, 3, 0, 4}, ArrayMove(in, 0, 3))
	assert.Equal(t, []int{3, 0, 1, 2, 4}, ArrayMove(in, 3, 0))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, ArrayMove(in, 2, 2))
	assert.Equal(t, []int{0, 1, 2, 3, 4}, in, "input must not be mutated")
}

func TestDragState(t *testing.T) {
	names := func(cats []CategoryDraft) []string {
		out := make([]string, len(cats))
		for i, c := range cats {
			out[i] = c.Name
		}
		return out
	}
	five := []CategoryDraft{{Name: "0"}, {Name: "1"}, {Name: "2"}, {Name: "3"}, {Name: "4"}}

	t.Run("category drag follows the cursor", func(t *testing.T) {
		s := DragState{}.Start(DragCategory, 0, 0)
		s = s.Move(DragCategory, 0, 1)
		s = s.Move(DragCategory, 0, 3)
		out, s := s.End(five)
		assert.Equal(t, []string{"1", "2", "3", "0", "4"}, names(out))
		assert.False(t, s.Active)
	})

	t.Run("drop on start is a no-op", func(t *testing.T) {
		s := DragState{}.Start(DragCategory, 0, 2)
		out, _ := s.End(five)
		assert.Equal(t, names(five), names(out))
	})

	t.Run("move while idle is ignored", func(t *testing.T) {
		assert.Equal(t, DragState{}, DragState{}.Move(DragCategory, 0, 3))
	})

	t.Run("product drag stays in its category", func(t *testing.T) {
		menu := validMenu()
		s := DragState{}.Start(DragProduct, 0, 0)
		s = s.Move(DragProduct, 1, 0)
		assert.Equal(t, 0, s.OverIndex)
		s = s.Move(DragCategory, 0, 1)
		assert.Equal(t, 0, s.OverIndex)
		s = s.Move(DragProduct, 0, 1)
		out, _ := s.End(menu)
		assert.Equal(t, "Queijo", out[0].Products[0].Name)
		assert.Equal(t, "Carne", out[0].Products[1].Name)
		assert.Equal(t, "Carne", menu[0].Products[0].Name)
	})

	t.Run("cancel keeps the menu", func(t *testing.T) {
		s := DragState{}.Start(DragCategory, 0, 0).Move(DragCategory, 0, 4)
		assert.Equal(t, DragState{}, s.Cancel())
	})

	t.Run("stale indexes are dropped", func(t *testing.T) {
		s := DragState{}.Start(DragCategory, 0, 0).Move(DragCategory, 0, 9)
		out, s := s.End(five)
		assert.Equal(t, names(five), names(out))
		assert.False(t, s.Active)
	})
}

func TestValidateInfra(t *testing.T) {
	t.Run("nothing requested needs an explicit note", func(t *testing.T) {
		d := InfraDraft{}
		n := requireNotice(t, ValidateInfra(d), StepInfra)
		assert.Equal(t, "Preencha as observações gerais", n.Title)

		d.Notes = "Não vou precisar de energia"
		assert.NoError(t, ValidateInfra(d))
	})

	t.Run("unnamed equipment does not count", func(t *testing.T) {
		d := InfraDraft{Equipments: []EquipmentDraft{{Name: " ", Qty: 1}}}
		n := requireNotice(t, ValidateInfra(d), StepInfra)
		assert.Equal(t, "Preencha as observações gerais", n.Title)
	})

	t.Run("gas needs notes", func(t *testing.T) {
		d := InfraDraft{NeedsGas: true}
		n := requireNotice(t, ValidateInfra(d), StepInfra)
		assert.Equal(t, "Observações sobre gás", n.Title)
		d.GasNotes = "botijão P13"
		assert.NoError(t, ValidateInfra(d))
	})

	t.Run("equipment qty bounds", func(t *testing.T) {
		for _, q := range []int{0, 100} {
			d := InfraDraft{Equipments: []EquipmentDraft{{Name: "Chapa", Qty: q}}}
			n := requireNotice(t, ValidateInfra(d), StepInfra)
			assert.Equal(t, "Quantidade inválida", n.Title)
		}
	})
}

func TestWizardNavigation(t *testing.T) {
	t.Run("next blocked keeps the step", func(t *testing.T) {
		w := New()
		w.Basic = validBasic()
		w.Basic.StallSize = ""
		err := w.Next()
		requireNotice(t, err, StepBasic)
		assert.Equal(t, StepBasic, w.Step)
	})

	t.Run("next and back", func(t *testing.T) {
		w := filledWizard()
		require.NoError(t, w.Next())
		require.NoError(t, w.Next())
		assert.Equal(t, StepInfra, w.Step)
		assert.ErrorIs(t, w.Next(), ErrNoNextStep)

		w.Menu = nil
		require.NoError(t, w.Back(), "back never validates")
		assert.Equal(t, StepMenu, w.Step)
		require.NoError(t, w.Back())
		require.NoError(t, w.Back())
		assert.Equal(t, StatusCancelled, w.Status)
		assert.ErrorIs(t, w.Next(), ErrNotActive)
	})

	t.Run("submit jumps to the first failing step", func(t *testing.T) {
		w := filledWizard()
		w.Step = StepInfra
		w.Menu = append(w.Menu, CategoryDraft{Name: "Lanches"})
		_, err := w.PrepareSubmit()
		requireNotice(t, err, StepMenu)
		assert.Equal(t, StepMenu, w.Step)
	})

	t.Run("empty infra blocks submit until opt-out", func(t *testing.T) {
		w := filledWizard()
		w.Step = StepInfra
		w.Infra = InfraDraft{}
		_, err := w.PrepareSubmit()
		requireNotice(t, err, StepInfra)

		w.Infra.Notes = NoPowerNote
		_, err = w.PrepareSubmit()
		assert.NoError(t, err)
	})

	t.Run("submit only from the infra step", func(t *testing.T) {
		w := filledWizard()
		_, err := w.PrepareSubmit()
		assert.ErrorIs(t, err, ErrNotLastStep)

		require.NoError(t, w.Next())
		_, err = w.PrepareSubmit()
		assert.ErrorIs(t, err, ErrNotLastStep)
		assert.Equal(t, StepMenu, w.Step)

		require.NoError(t, w.Next())
		_, err = w.PrepareSubmit()
		assert.NoError(t, err)
	})

	t.Run("equipment quantities snap into range as entered", func(t *testing.T) {
		w := filledWizard()
		w.Step = StepInfra
		require.NoError(t, w.SetInfra(InfraDraft{
			Outlets110: -2,
			Outlets220: 1,
			Equipments: []EquipmentDraft{{Name: "Freezer", Qty: 150}, {Name: "Chapa", Qty: 0}},
		}))
		assert.Equal(t, 0, w.Infra.Outlets110)
		assert.Equal(t, []EquipmentDraft{{Name: "Freezer", Qty: 99}, {Name: "Chapa", Qty: 1}}, w.Infra.Equipments)

		p, err := w.PrepareSubmit()
		require.NoError(t, err)
		require.Len(t, p.Equipments, 2)
		assert.Equal(t, 99, p.Equipments[0].Qty)
		assert.Equal(t, 1, p.Equipments[1].Qty)
	})

	t.Run("nil equipments become an empty list", func(t *testing.T) {
		w := filledWizard()
		w.Step = StepInfra
		require.NoError(t, w.SetInfra(InfraDraft{Notes: NoPowerNote}))
		assert.NotNil(t, w.Infra.Equipments)
		assert.Empty(t, w.Infra.Equipments)
	})

	t.Run("edits only reach the step on screen", func(t *testing.T) {
		w := filledWizard()
		assert.ErrorIs(t, w.AddCategory("Lanches"), ErrWrongStep)
		assert.ErrorIs(t, w.SetInfra(InfraDraft{}), ErrWrongStep)
		require.NoError(t, w.Next())
		require.NoError(t, w.AddCategory("Lanches"))
		require.NoError(t, w.StartDrag(DragCategory, 0, 2))
		require.NoError(t, w.MoveDrag(DragCategory, 0, 0))
		require.NoError(t, w.EndDrag())
		assert.Equal(t, "Lanches", w.Menu[0].Name)
		assert.ErrorIs(t, w.StartDrag(DragProduct, 0, 0), ErrIndexOutOfRange)
	})
}

func TestBuildPayload(t *testing.T) {
	t.Run("trailer always sends TRAILER", func(t *testing.T) {
		w := filledWizard()
		w.Basic.StallSize = entities.StallSize3x6
		w.Basic.StallType = entities.StallTypeTrailer
		assert.Equal(t, entities.StallSizeTrailer, w.BuildPayload().StallSize)
	})

	t.Run("missing size defaults to 3x3", func(t *testing.T) {
		w := filledWizard()
		w.Basic.StallSize = ""
		assert.Equal(t, entities.StallSize3x3, w.BuildPayload().StallSize)
	})

	t.Run("numbers are clamped", func(t *testing.T) {
		w := filledWizard()
		w.Basic.MachinesQty = 9
		w.Basic.TeamQty = 0
		w.Infra.Equipments = []EquipmentDraft{{Name: "Freezer", Qty: 150}, {Name: "Chapa", Qty: 0}}
		p := w.BuildPayload()
		assert.Equal(t, 5, p.MachinesQty)
		assert.Equal(t, 1, p.TeamQty)
		assert.Equal(t, 99, p.Equipments[0].Qty)
		assert.Equal(t, 1, p.Equipments[1].Qty)
	})

	t.Run("other category resolves to the typed text", func(t *testing.T) {
		w := filledWizard()
		w.Basic.MainCategory = CategoryOther
		w.Basic.MainCategoryOther = "  Tapioca "
		assert.Equal(t, "Tapioca", w.BuildPayload().MainCategory)
	})

	t.Run("gas notes only travel with gas", func(t *testing.T) {
		w := filledWizard()
		w.Infra.GasNotes = "P13"
		assert.Equal(t, "", w.BuildPayload().Power.GasNotes)
		w.Infra.NeedsGas = true
		assert.Equal(t, "P13", w.BuildPayload().Power.GasNotes)
	})

	t.Run("order is contiguous after drags and blanks", func(t *testing.T) {
		w := filledWizard()
		w.Menu = []CategoryDraft{
			{Name: "A", Products: []ProductDraft{{Name: "a1", Price: "1"}, {Name: " ", Price: "2"}, {Name: "a3", Price: "3"}}},
			{Name: " "},
			{Name: "B", Products: []ProductDraft{{Name: "b1", Price: "1.234,5"}}},
			{Name: "C", Products: []ProductDraft{{Name: "c1", Price: "0,99"}}},
		}
		w.Menu = ArrayMove(w.Menu, 3, 0)
		p := w.BuildPayload()

		want := []entities.UpsertMenuCategory{
			{Name: "C", Order: 0, Products: []entities.UpsertMenuProduct{{Name: "c1", PriceCents: 99, Order: 0}}},
			{Name: "A", Order: 1, Products: []entities.UpsertMenuProduct{
				{Name: "a1", PriceCents: 100, Order: 0},
				{Name: "a3", PriceCents: 300, Order: 1},
			}},
			{Name: "B", Order: 2, Products: []entities.UpsertMenuProduct{{Name: "b1", PriceCents: 123450, Order: 0}}},
		}
		if diff := cmp.Diff(want, p.Categories); diff != "" {
			t.Fatalf("categories mismatch (-want +got):\n%s", diff)
		}
	})
}

func TestFromStall(t *testing.T) {
	banner := "Pastel do Zé"
	category := "Tapioca"
	gas := "P13"
	s := entities.Stall{
		ID:           "stall-1",
		PdvName:      "PDV 1",
		MachinesQty:  1,
		BannerName:   &banner,
		MainCategory: &category,
		StallType:    entities.StallTypeTrailer,
		StallSize:    entities.StallSizeTrailer,
		TeamQty:      4,
		Categories: []entities.MenuCategory{
			{Name: "Segunda", Order: 1, Products: []entities.MenuProduct{{Name: "b", PriceCents: 1250, Order: 1}, {Name: "a", PriceCents: 1200, Order: 0}}},
			{Name: "Primeira", Order: 0, Products: []entities.MenuProduct{{Name: "c", PriceCents: 99, Order: 0}}},
		},
		Equipments: []entities.Equipment{{Name: "Chapa", Qty: 2}},
		PowerNeed:  &entities.PowerNeed{Outlets110: 2, NeedsGas: true, GasNotes: &gas},
	}

	w := FromStall(s)
	assert.Equal(t, ModeEdit, w.Mode)
	assert.Equal(t, "stall-1", w.StallID)
	assert.Equal(t, entities.StallSize(""), w.Basic.StallSize)
	assert.Equal(t, CategoryOther, w.Basic.MainCategory)
	assert.Equal(t, "Tapioca", w.Basic.MainCategoryOther)
	require.Len(t, w.Menu, 2)
	assert.Equal(t, "Primeira", w.Menu[0].Name)
	assert.Equal(t, []ProductDraft{{Name: "a", Price: "12"}, {Name: "b", Price: "12,5"}}, w.Menu[1].Products)
	assert.Equal(t, "P13", w.Infra.GasNotes)

	_, err := w.PrepareSubmit()
	require.ErrorIs(t, err, ErrNotLastStep)
	assert.Equal(t, StepBasic, w.Step)

	w.Step = StepInfra
	p, err := w.PrepareSubmit()
	require.NoError(t, err)
	assert.Equal(t, entities.StallSizeTrailer, p.StallSize)
	assert.Equal(t, "Tapioca", p.MainCategory)
	assert.Equal(t, int64(1250), p.Categories[1].Products[1].PriceCents)
}
