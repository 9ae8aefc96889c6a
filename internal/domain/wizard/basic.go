package wizard

import (
	"portal_expositor/internal/domain/entities"
	"strings"
)

// ValidateBasic checks step 0 and returns the first failing rule as a *Notice.
func ValidateBasic(d BasicDraft) error {
	if strings.TrimSpace(d.PdvName) == "" {
		return notice(StepBasic, "Informe o nome interno (PDV)", subtitleRequired)
	}
	if d.MachinesQty < entities.MachinesQtyMin || d.MachinesQty > entities.MachinesQtyMax {
		return notice(StepBasic, "Quantidade de máquinas inválida", "Informe um número entre 0 e 5.")
	}
	if strings.TrimSpace(d.BannerName) == "" {
		return notice(StepBasic, "Informe o nome do banner", subtitleRequired)
	}
	if strings.TrimSpace(d.MainCategory) == "" {
		return notice(StepBasic, "Informe a categoria principal", subtitleRequired)
	}
	if d.MainCategory == CategoryOther && strings.TrimSpace(d.MainCategoryOther) == "" {
		return notice(StepBasic, "Informe a categoria", `Ao selecionar "Outro", você precisa digitar a categoria.`)
	}
	if d.TeamQty < entities.TeamQtyMin || d.TeamQty > entities.TeamQtyMax {
		return notice(StepBasic, "Informe pessoas na equipe", "Mínimo 1, máximo 15.")
	}
	if !d.StallType.Valid() {
		return notice(StepBasic, "Informe o tipo da barraca", "Selecione: Aberta, Fechada ou Trailer.")
	}
	if d.StallType != entities.StallTypeTrailer && !d.StallSize.Physical() {
		return notice(StepBasic, "Informe o tamanho", "Selecione o tamanho da barraca.")
	}
	return nil
}

// ApplyStallTypeChange sets the stall type. A trailer has no size to pick, so
// choosing TRAILER clears any size selected before.
func ApplyStallTypeChange(d BasicDraft, t entities.StallType) BasicDraft {
	d.StallType = t
	if t == entities.StallTypeTrailer {
		d.StallSize = ""
	}
	return d
}

// ApplyMainCategoryChange sets the main category and drops the typed category
// unless OTHER is selected.
func ApplyMainCategoryChange(d BasicDraft, category string) BasicDraft {
	d.MainCategory = category
	if category != CategoryOther {
		d.MainCategoryOther = ""
	}
	return d
}

// ApplyBasicChange moves from prev to next running the corrections keyed on the
// fields that changed. A trailer never carries a picked size and the typed
// category only survives while OTHER is selected.
func ApplyBasicChange(prev, next BasicDraft) BasicDraft {
	if next.StallType != prev.StallType || next.StallType == entities.StallTypeTrailer {
		next = ApplyStallTypeChange(next, next.StallType)
	}
	if next.MainCategory != prev.MainCategory || next.MainCategory != CategoryOther {
		next = ApplyMainCategoryChange(next, next.MainCategory)
	}
	if next.StallSize == entities.StallSizeTrailer {
		next.StallSize = ""
	}
	return next
}
