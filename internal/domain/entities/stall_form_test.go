package entities

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStallsFormContext_Banner(t *testing.T) {
	fc := StallsFormContext{
		Fair:   FormFair{ID: "f1", Name: "Feira", Status: FairStatusAtiva},
		Window: FormWindow{Enabled: true, StartsAt: "2026-03-01T12:00:00Z", EndsAt: "2026-03-10T21:00:00Z"},
	}
	during := time.Date(2026, 3, 5, 12, 0, 0, 0, time.UTC)

	open := fc.Banner(during)
	assert.Equal(t, FormWindowOpen, open.State)
	assert.Equal(t, "Período: 01/03/2026 09:00 — 10/03/2026 18:00", open.Detail)

	before := fc.Banner(time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, FormWindowNotStarted, before.State)
	assert.Equal(t, "As inscrições iniciam em 01/03/2026 09:00.", before.Detail)

	assert.Equal(t, FormWindowEnded, fc.Banner(time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)).State)

	disabled := fc
	disabled.Window.Enabled = false
	assert.Equal(t, FormWindowDisabled, disabled.Banner(during).State)

	cancelled := fc
	cancelled.Fair.Status = FairStatusCancelada
	cancelled.Window.Enabled = false
	assert.Equal(t, FormWindowFairClosed, cancelled.Banner(during).State)

	undated := fc
	undated.Window = FormWindow{Enabled: true}
	assert.Equal(t, FormBanner{State: FormWindowOpen, Title: "Inscrições em andamento", Detail: "Inscrições abertas."}, undated.Banner(during))
}

func TestStallsFormContext_Slots(t *testing.T) {
	fc := StallsFormContext{StallsQty: 2, LinkedStallIDs: []string{"s1", "s2", "s3"}, LinkedStallsQty: 3}
	assert.Equal(t, 0, fc.RemainingSlots())
	assert.True(t, fc.Linked("s2"))
	assert.False(t, fc.Linked("s9"))
}

func TestFormAccess(t *testing.T) {
	assert.True(t, FormAccess{FairID: "f1", Document: "12345678901"}.Valid())
	assert.True(t, FormAccess{FairID: "f1", Document: "12345678000190"}.Valid())
	assert.False(t, FormAccess{FairID: "f1", Document: "123.456.789-01"}.Valid())
	assert.False(t, FormAccess{FairID: "", Document: "12345678901"}.Valid())
	assert.False(t, FormAccess{FairID: "f1", Document: "1234567890"}.Valid())

	ctx := ContextWithFormAccess(context.Background(), FormAccess{FairID: "f1", Document: "12345678901"})
	got, ok := FormAccessFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "f1", got.FairID)
	_, ok = FormAccessFromContext(context.Background())
	assert.False(t, ok)
}
