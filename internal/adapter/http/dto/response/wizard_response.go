package response

import (
	"portal_expositor/internal/domain/wizard"
	"time"
)

// WizardResponse is the whole wizard state the client renders from.
type WizardResponse struct {
	ID             string                  `json:"id"`
	Mode           wizard.Mode             `json:"mode"`
	StallID        string                  `json:"stallId,omitempty"`
	Step           wizard.Step             `json:"step"`
	StepLabel      string                  `json:"stepLabel"`
	Status         wizard.Status           `json:"status"`
	Submitting     bool                    `json:"submitting"`
	Basic          wizard.BasicDraft       `json:"basic"`
	Menu           []wizard.CategoryDraft  `json:"menu"`
	Infra          wizard.InfraDraft       `json:"infra"`
	Drag           wizard.DragState        `json:"drag"`
	MainCategories []wizard.CategoryOption `json:"mainCategories"`
	ExpiresAt      time.Time               `json:"expiresAt"`
}

func FromWizardSession(s wizard.Session) WizardResponse {
	res := WizardResponse{
		ID:             s.ID,
		Submitting:     s.Submitting,
		MainCategories: wizard.MainCategories,
		ExpiresAt:      s.ExpiresAt,
	}
	if w := s.Wizard; w != nil {
		res.Mode = w.Mode
		res.StallID = w.StallID
		res.Step = w.Step
		res.StepLabel = w.Step.Label()
		res.Status = w.Status
		res.Basic = w.Basic
		res.Menu = w.Menu
		res.Infra = w.Infra
		res.Drag = w.Drag
	}
	return res
}

// SubmitResponse is the finished wizard plus the success notification.
type SubmitResponse struct {
	Title    string         `json:"title"`
	Subtitle string         `json:"subtitle"`
	Wizard   WizardResponse `json:"wizard"`
}

func FromSubmitted(s wizard.Session) SubmitResponse {
	res := SubmitResponse{Title: "Barraca criada", Subtitle: "Cadastro salvo com sucesso.", Wizard: FromWizardSession(s)}
	if s.Wizard != nil && s.Wizard.Mode == wizard.ModeEdit {
		res.Title, res.Subtitle = "Barraca atualizada", "Alterações salvas com sucesso."
	}
	return res
}
