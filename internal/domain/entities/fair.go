package entities

import (
	"portal_expositor/pkg/format"
	"sort"
	"strconv"
	"strings"
	"time"
)

type FairStatus string

const (
	FairStatusAtiva      FairStatus = "ATIVA"
	FairStatusFinalizada FairStatus = "FINALIZADA"
	FairStatusCancelada  FairStatus = "CANCELADA"
)

func (s FairStatus) Label() string {
	switch s {
	case FairStatusAtiva:
		return "Ativa"
	case FairStatusFinalizada:
		return "Finalizada"
	case FairStatusCancelada:
		return "Cancelada"
	}
	return string(s)
}

type OwnerFairStatus string

const (
	OwnerFairStatusSelecionado          OwnerFairStatus = "SELECIONADO"
	OwnerFairStatusAguardandoPagamento  OwnerFairStatus = "AGUARDANDO_PAGAMENTO"
	OwnerFairStatusAguardandoAssinatura OwnerFairStatus = "AGUARDANDO_ASSINATURA"
	OwnerFairStatusConcluido            OwnerFairStatus = "CONCLUIDO"
)

func (s OwnerFairStatus) Label() string {
	switch s {
	case OwnerFairStatusSelecionado:
		return "Selecionado"
	case OwnerFairStatusAguardandoPagamento:
		return "Aguardando pagamento"
	case OwnerFairStatusAguardandoAssinatura:
		return "Aguardando assinatura"
	case OwnerFairStatusConcluido:
		return "Concluído"
	}
	return string(s)
}

// PaymentStatus mirrors the backend's OwnerFairPaymentStatus.
type PaymentStatus string

const (
	PaymentStatusPending       PaymentStatus = "PENDING"
	PaymentStatusPartiallyPaid PaymentStatus = "PARTIALLY_PAID"
	PaymentStatusPaid          PaymentStatus = "PAID"
	PaymentStatusOverdue       PaymentStatus = "OVERDUE"
	PaymentStatusCancelled     PaymentStatus = "CANCELLED"
)

func (s PaymentStatus) Label() string {
	switch s {
	case PaymentStatusPaid:
		return "Pago"
	case PaymentStatusPartiallyPaid:
		return "Parcial"
	case PaymentStatusPending:
		return "Em aberto"
	case PaymentStatusOverdue:
		return "Atrasado"
	case PaymentStatusCancelled:
		return "Cancelado"
	}
	return string(s)
}

type ContractStatus string

const (
	ContractStatusNotIssued         ContractStatus = "NOT_ISSUED"
	ContractStatusIssued            ContractStatus = "ISSUED"
	ContractStatusAwaitingSignature ContractStatus = "AWAITING_SIGNATURE"
	ContractStatusSigned            ContractStatus = "SIGNED"
)

func (s ContractStatus) Label() string {
	switch s {
	case ContractStatusNotIssued:
		return "Não emitido"
	case ContractStatusIssued:
		return "Emitido"
	case ContractStatusAwaitingSignature:
		return "Aguardando assinatura"
	case ContractStatusSigned:
		return "Assinado"
	}
	return string(s)
}

type Installment struct {
	Number          int     `json:"number" validate:"min=1"`
	DueDate         string  `json:"dueDate"`
	AmountCents     int64   `json:"amountCents" validate:"min=0"`
	PaidAt          *string `json:"paidAt,omitempty"`
	PaidAmountCents *int64  `json:"paidAmountCents,omitempty"`
}

func (i Installment) Paid() bool {
	return i.PaidAt != nil && *i.PaidAt != ""
}

// Purchase is one bought slot line of a given stall size inside a fair.
type Purchase struct {
	ID                string        `json:"id" validate:"required"`
	StallSize         StallSize     `json:"stallSize" validate:"oneof=SIZE_2X2 SIZE_3X3 SIZE_3X6 TRAILER"`
	Qty               int           `json:"qty" validate:"min=0"`
	UsedQty           int           `json:"usedQty" validate:"min=0"`
	UnitPriceCents    int64         `json:"unitPriceCents" validate:"min=0"`
	TotalCents        int64         `json:"totalCents" validate:"min=0"`
	PaidCents         int64         `json:"paidCents" validate:"min=0"`
	InstallmentsCount int           `json:"installmentsCount" validate:"min=0"`
	Status            PaymentStatus `json:"status"`
	Installments      []Installment `json:"installments" validate:"dive"`
}

func (p Purchase) RemainingQty() int {
	return max(0, p.Qty-p.UsedQty)
}

type LinkedStall struct {
	StallID    string    `json:"stallId" validate:"required"`
	PdvName    string    `json:"pdvName"`
	StallSize  StallSize `json:"stallSize"`
	LinkedAt   string    `json:"linkedAt"`
	PurchaseID *string   `json:"purchaseId,omitempty"`
}

type Contract struct {
	Status  ContractStatus `json:"status"`
	SignURL *string        `json:"signUrl,omitempty"`
	PdfPath *string        `json:"pdfPath,omitempty"`
}

// PaymentSummary is the aggregate payment plan the backend reports per fair.
type PaymentSummary struct {
	Status            PaymentStatus `json:"status"`
	TotalCents        int64         `json:"totalCents" validate:"min=0"`
	InstallmentsCount int           `json:"installmentsCount" validate:"min=0"`
	PaidCount         int           `json:"paidCount" validate:"min=0"`
	NextDueDate       *string       `json:"nextDueDate,omitempty"`
	Installments      []Installment `json:"installments" validate:"dive"`
}

// ExhibitorFair is a fair the owner takes part in, with the purchases, contract and
// linked stalls the backend tracks for it.
type ExhibitorFair struct {
	FairID             string          `json:"fairId" validate:"required"`
	FairName           string          `json:"fairName"`
	FairStatus         FairStatus      `json:"fairStatus" validate:"oneof=ATIVA FINALIZADA CANCELADA"`
	OwnerFairStatus    OwnerFairStatus `json:"ownerFairStatus"`
	StallsQtyPurchased int             `json:"stallsQtyPurchased" validate:"min=0"`
	StallsLinkedQty    int             `json:"stallsLinkedQty" validate:"min=0"`
	LinkedStalls       []LinkedStall   `json:"linkedStalls" validate:"dive"`
	Purchases          []Purchase      `json:"purchases" validate:"dive"`
	Contract           *Contract       `json:"contract,omitempty"`
	PaymentSummary     *PaymentSummary `json:"paymentSummary,omitempty"`
}

type FairList struct {
	Items []ExhibitorFair `json:"items" validate:"dive"`
}

// OKResult is the {ok} body returned by link, unlink and delete endpoints.
type OKResult struct {
	OK bool `json:"ok"`
}

// DueUrgency is the badge derived from the next due date of a fair.
type DueUrgency string

const (
	DueUrgencyOverdue  DueUrgency = "OVERDUE"
	DueUrgencyDueToday DueUrgency = "DUE_TODAY"
	DueUrgencyOpen     DueUrgency = "OPEN"
	DueUrgencyNone     DueUrgency = "NONE"
)

func (u DueUrgency) Label() string {
	switch u {
	case DueUrgencyOverdue:
		return "Atrasado"
	case DueUrgencyDueToday:
		return "Vence hoje"
	case DueUrgencyOpen:
		return "Em aberto"
	}
	return "—"
}

// DueUrgencyFor compares the calendar date of nextDueISO with today's calendar
// date in today's location. Times and zones of the ISO string are ignored.
func DueUrgencyFor(nextDueISO string, today time.Time) DueUrgency {
	due := format.DateOnly(nextDueISO)
	if due == "" {
		return DueUrgencyNone
	}
	ymd := today.Format("2006-01-02")
	switch {
	case due < ymd:
		return DueUrgencyOverdue
	case due == ymd:
		return DueUrgencyDueToday
	default:
		return DueUrgencyOpen
	}
}

// PurchaseView is a purchase enriched with what the exhibitor actually needs to read.
type PurchaseView struct {
	Purchase
	PaidTotalCents         int64   `json:"paidTotalCents"`
	RemainingCents         int64   `json:"remainingCents"`
	InstallmentsPaidCount  int     `json:"installmentsPaidCount"`
	InstallmentsTotalCount int     `json:"installmentsTotalCount"`
	NextDueDate            *string `json:"nextDueDate"`
	RemainingQty           int     `json:"remainingQty"`
}

type UpcomingInstallment struct {
	PurchaseID  string    `json:"purchaseId"`
	StallSize   StallSize `json:"stallSize"`
	Number      int       `json:"number"`
	DueDate     string    `json:"dueDate"`
	AmountCents int64     `json:"amountCents"`
}

type FairTotals struct {
	TotalCents     int64                 `json:"totalCents"`
	PaidCents      int64                 `json:"paidCents"`
	RemainingCents int64                 `json:"remainingCents"`
	Upcoming       []UpcomingInstallment `json:"upcoming"`
}

// FairView is an ExhibitorFair plus the figures computed from its purchases.
type FairView struct {
	ExhibitorFair
	Purchases       []PurchaseView `json:"purchases"`
	Totals          FairTotals     `json:"totals"`
	CanLinkMore     bool           `json:"canLinkMore"`
	LinkProgressPct int            `json:"linkProgressPct"`
	SizesLabel      string         `json:"sizesLabel"`
	DueUrgency      DueUrgency     `json:"dueUrgency"`
}

const upcomingLimit = 3

// BuildFairView derives the per-purchase and per-fair figures of f. Paid totals add
// the down payment (paidCents) to every paid installment, taking paidAmountCents
// when the backend reported it and the nominal amount otherwise.
func BuildFairView(f ExhibitorFair, today time.Time) FairView {
	v := FairView{ExhibitorFair: f, Purchases: make([]PurchaseView, 0, len(f.Purchases))}

	var upcoming []UpcomingInstallment
	for _, p := range f.Purchases {
		pv := PurchaseView{Purchase: p, InstallmentsTotalCount: p.InstallmentsCount, RemainingQty: p.RemainingQty()}
		var paidInstallments int64
		var unpaid []Installment
		for _, inst := range p.Installments {
			if !inst.Paid() {
				unpaid = append(unpaid, inst)
				upcoming = append(upcoming, UpcomingInstallment{
					PurchaseID:  p.ID,
					StallSize:   p.StallSize,
					Number:      inst.Number,
					DueDate:     inst.DueDate,
					AmountCents: inst.AmountCents,
				})
				continue
			}
			pv.InstallmentsPaidCount++
			if inst.PaidAmountCents != nil {
				paidInstallments += *inst.PaidAmountCents
			} else {
				paidInstallments += inst.AmountCents
			}
		}
		pv.PaidTotalCents = p.PaidCents + paidInstallments
		pv.RemainingCents = max(0, p.TotalCents-pv.PaidTotalCents)
		sortByDueDate(unpaid, func(i Installment) string { return i.DueDate })
		if len(unpaid) > 0 {
			due := unpaid[0].DueDate
			pv.NextDueDate = &due
		}

		v.Totals.TotalCents += p.TotalCents
		v.Totals.PaidCents += pv.PaidTotalCents
		v.Purchases = append(v.Purchases, pv)
	}
	v.Totals.RemainingCents = max(0, v.Totals.TotalCents-v.Totals.PaidCents)

	sortByDueDate(upcoming, func(u UpcomingInstallment) string { return u.DueDate })
	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}
	v.Totals.Upcoming = upcoming

	v.CanLinkMore = f.StallsLinkedQty < f.StallsQtyPurchased
	if f.StallsQtyPurchased > 0 {
		pct := int(float64(f.StallsLinkedQty)/float64(f.StallsQtyPurchased)*100 + 0.5)
		v.LinkProgressPct = min(100, pct)
	}
	v.SizesLabel = sizesLabel(f.Purchases)

	v.DueUrgency = DueUrgencyNone
	if f.PaymentSummary != nil && f.PaymentSummary.NextDueDate != nil {
		v.DueUrgency = DueUrgencyFor(*f.PaymentSummary.NextDueDate, today)
	}
	return v
}

// CompatiblePurchases lists the purchases of size that still have room for a stall.
func (f ExhibitorFair) CompatiblePurchases(size StallSize) []Purchase {
	var out []Purchase
	for _, p := range f.Purchases {
		if p.StallSize == size && p.RemainingQty() > 0 {
			out = append(out, p)
		}
	}
	return out
}

func sizesLabel(purchases []Purchase) string {
	totals := make(map[StallSize]int)
	var order []StallSize
	for _, p := range purchases {
		if _, seen := totals[p.StallSize]; !seen {
			order = append(order, p.StallSize)
		}
		totals[p.StallSize] += p.Qty
	}
	parts := make([]string, 0, len(order))
	for _, size := range order {
		if totals[size] > 0 {
			parts = append(parts, size.Label()+": "+strconv.Itoa(totals[size]))
		}
	}
	if len(parts) == 0 {
		return "—"
	}
	return strings.Join(parts, " • ")
}

// sortByDueDate orders by calendar date; entries without a usable date go last.
func sortByDueDate[T any](items []T, due func(T) string) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := format.DateOnly(due(items[i])), format.DateOnly(due(items[j]))
		if a == "" {
			return false
		}
		if b == "" {
			return true
		}
		return a < b
	})
}
