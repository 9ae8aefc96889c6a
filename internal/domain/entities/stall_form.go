package entities

import (
	"context"
	"portal_expositor/pkg/format"
	"time"
)

// FormAccess is what the public stall form knows about its visitor: the fair
// of the link and the CPF/CNPJ typed on the first screen, digits only.
type FormAccess struct {
	FairID   string
	Document string
}

func (a FormAccess) Valid() bool {
	return a.FairID != "" && a.Document == format.OnlyDigits(a.Document) && format.IsCpfOrCnpj(a.Document)
}

type formAccessKey struct{}

func ContextWithFormAccess(ctx context.Context, a FormAccess) context.Context {
	return context.WithValue(ctx, formAccessKey{}, a)
}

func FormAccessFromContext(ctx context.Context) (FormAccess, bool) {
	a, ok := ctx.Value(formAccessKey{}).(FormAccess)
	return a, ok
}

type FormFair struct {
	ID     string     `json:"id" validate:"required"`
	Name   string     `json:"name"`
	Status FairStatus `json:"status" validate:"oneof=ATIVA FINALIZADA CANCELADA"`
}

// FormWindow is the period the organizer opened the stall form for.
type FormWindow struct {
	Enabled  bool   `json:"enabled"`
	StartsAt string `json:"startsAt"`
	EndsAt   string `json:"endsAt"`
}

// FormOwner is the exhibitor found by document, as the interest form knows it.
type FormOwner struct {
	PersonType     PersonType `json:"personType" validate:"oneof=PF PJ"`
	Document       string     `json:"document" validate:"required"`
	FullName       string     `json:"fullName"`
	Email          string     `json:"email"`
	Phone          string     `json:"phone"`
	AddressFull    *string    `json:"addressFull,omitempty"`
	AddressCity    *string    `json:"addressCity,omitempty"`
	AddressState   *string    `json:"addressState,omitempty"`
	AddressZipcode *string    `json:"addressZipcode,omitempty"`
}

// StallSlot is one bought size line the visitor may fill with stalls.
type StallSlot struct {
	StallSize      StallSize `json:"stallSize" validate:"oneof=SIZE_2X2 SIZE_3X3 SIZE_3X6 TRAILER"`
	Qty            int       `json:"qty" validate:"min=0"`
	UnitPriceCents int64     `json:"unitPriceCents" validate:"min=0"`
}

// StallsFormContext is the answer to a document validated on the public form.
type StallsFormContext struct {
	Fair            FormFair    `json:"fair"`
	Window          FormWindow  `json:"window"`
	Owner           FormOwner   `json:"owner"`
	StallsQty       int         `json:"stallsQty" validate:"min=0"`
	StallSlots      []StallSlot `json:"stallSlots" validate:"dive"`
	LinkedStallIDs  []string    `json:"linkedStallIds"`
	LinkedStallsQty int         `json:"linkedStallsQty" validate:"min=0"`
}

func (c StallsFormContext) Linked(stallID string) bool {
	for _, id := range c.LinkedStallIDs {
		if id == stallID {
			return true
		}
	}
	return false
}

// RemainingSlots is how many more stalls the visitor can still link.
func (c StallsFormContext) RemainingSlots() int {
	return max(0, c.StallsQty-c.LinkedStallsQty)
}

type FormWindowState string

const (
	FormWindowOpen       FormWindowState = "OPEN"
	FormWindowFairClosed FormWindowState = "FAIR_NOT_ACTIVE"
	FormWindowDisabled   FormWindowState = "DISABLED"
	FormWindowNotStarted FormWindowState = "NOT_STARTED"
	FormWindowEnded      FormWindowState = "ENDED"
)

// FormBanner tells the visitor whether the form is taking registrations.
type FormBanner struct {
	State  FormWindowState `json:"state"`
	Title  string          `json:"title"`
	Detail string          `json:"detail"`
}

// brazilTime is the fixed offset the window is shown in; Brazil has no DST.
var brazilTime = time.FixedZone("BRT", -3*60*60)

// Banner reads the window at now. A fair that is not active wins over any
// window; an unreadable date leaves that bound open.
func (c StallsFormContext) Banner(now time.Time) FormBanner {
	startsAt, hasStart := parseInstant(c.Window.StartsAt)
	endsAt, hasEnd := parseInstant(c.Window.EndsAt)

	switch {
	case c.Fair.Status != FairStatusAtiva:
		return FormBanner{FormWindowFairClosed, "Feira não está ativa", "O cadastro de barracas está disponível apenas para feiras ativas."}
	case !c.Window.Enabled:
		return FormBanner{FormWindowDisabled, "Cadastro não liberado", "O organizador ainda não habilitou este formulário para a feira."}
	case hasStart && now.Before(startsAt):
		return FormBanner{FormWindowNotStarted, "Cadastro ainda não liberado", "As inscrições iniciam em " + format.FormatDateTimeShort(startsAt.In(brazilTime)) + "."}
	case hasEnd && now.After(endsAt):
		return FormBanner{FormWindowEnded, "Inscrições encerradas", "O prazo terminou em " + format.FormatDateTimeShort(endsAt.In(brazilTime)) + "."}
	}

	detail := "Inscrições abertas."
	if hasStart && hasEnd {
		detail = "Período: " + format.FormatWindowPeriod(startsAt.In(brazilTime), endsAt.In(brazilTime))
	}
	return FormBanner{FormWindowOpen, "Inscrições em andamento", detail}
}

func parseInstant(iso string) (time.Time, bool) {
	t, err := time.Parse(time.RFC3339, iso)
	return t, err == nil
}

// StallsFormView is a validated form context plus how its window reads now.
type StallsFormView struct {
	Context StallsFormContext
	Banner  FormBanner
}

// OwnerStalls lists every stall of the document, linked to the fair or not.
type OwnerStalls struct {
	Stalls []Stall `json:"stalls" validate:"dive"`
}

type StallFairLink struct {
	StallFairID string `json:"stallFairId" validate:"required"`
}

// FormStall is one of the document's stalls and whether it is linked to the
// fair of the form.
type FormStall struct {
	Stall
	Linked bool
}
