package wizard

import (
	"portal_expositor/internal/domain/entities"
	"strings"
)

// NoPowerNote is the text suggested to exhibitors who need no infrastructure.
const NoPowerNote = "Não vou precisar de energia"

// ApplyInfraChange corrects numbers as they are entered: outlet counts never go
// below 0 and equipment quantities snap into [1,99] (150 becomes 99, 0 becomes 1).
func ApplyInfraChange(next InfraDraft) InfraDraft {
	next.Outlets110 = max(next.Outlets110, 0)
	next.Outlets220 = max(next.Outlets220, 0)
	next.OutletsOther = max(next.OutletsOther, 0)

	equipments := make([]EquipmentDraft, len(next.Equipments))
	for i, e := range next.Equipments {
		e.Qty = clamp(e.Qty, entities.EquipmentQtyMin, entities.EquipmentQtyMax)
		equipments[i] = e
	}
	next.Equipments = equipments
	return next
}

// ValidateInfra checks step 2, the terminal step. Asking for nothing at all is
// only accepted when the exhibitor says so in the notes.
func ValidateInfra(d InfraDraft) error {
	if d.Outlets110 < 0 || d.Outlets220 < 0 || d.OutletsOther < 0 {
		return notice(StepInfra, "Quantidade de tomadas inválida", "Informe um número maior ou igual a 0.")
	}

	named := 0
	for _, e := range d.Equipments {
		if strings.TrimSpace(e.Name) != "" {
			named++
		}
	}
	if d.totalOutlets() == 0 && named == 0 && !d.NeedsGas && strings.TrimSpace(d.Notes) == "" {
		return notice(StepInfra, "Preencha as observações gerais", `Se não precisar de energia, escreva: "`+NoPowerNote+`".`)
	}

	if d.NeedsGas && strings.TrimSpace(d.GasNotes) == "" {
		return notice(StepInfra, "Observações sobre gás", "Você marcou que precisa de gás. Descreva rapidamente (ex.: botijão P13).")
	}

	for _, e := range d.Equipments {
		if strings.TrimSpace(e.Name) == "" {
			return notice(StepInfra, "Equipamento sem nome", "Preencha o nome dos equipamentos ou remova o item.")
		}
		if e.Qty < entities.EquipmentQtyMin || e.Qty > entities.EquipmentQtyMax {
			return notice(StepInfra, "Quantidade inválida", "A quantidade do equipamento deve ser entre 1 e 99.")
		}
	}
	return nil
}
