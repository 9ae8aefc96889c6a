package handlers

import (
	"encoding/json"
	"net/http"
	"portal_expositor/internal/adapter/http/handlers/mocks"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newFairRouter(uc *mocks.MockIFairUseCase) *gin.Engine {
	h := NewFairHandler(uc)
	r := gin.New()
	r.GET("/v1/fairs", h.ListFairs)
	r.POST("/v1/fairs/:fair_id/stalls/:stall_id", h.LinkStall)
	r.DELETE("/v1/fairs/:fair_id/stalls/:stall_id", h.UnlinkStall)
	return r
}

func TestFairHandler_ListFairs(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIFairUseCase(ctrl)
	r := newFairRouter(uc)

	uc.EXPECT().List(gomock.Any()).Return([]entities.FairView{{
		ExhibitorFair: entities.ExhibitorFair{FairID: "f1", FairName: "Feira do Centro", FairStatus: entities.FairStatusAtiva, OwnerFairStatus: entities.OwnerFairStatusAguardandoPagamento},
		Totals:        entities.FairTotals{TotalCents: 150000, PaidCents: 50000, RemainingCents: 100000},
		DueUrgency:    entities.DueUrgencyOverdue,
	}}, nil)

	w := performRequest(r, http.MethodGet, "/v1/fairs", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body response.FairListResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	item := body.Items[0]
	assert.Equal(t, "Ativa", item.FairStatusLabel)
	assert.Equal(t, "Aguardando pagamento", item.OwnerFairStatusLabel)
	assert.Equal(t, "Atrasado", item.DueUrgencyLabel)
	assert.Equal(t, "R$ 1.000,00", item.RemainingLabel)
}

func TestFairHandler_LinkStall(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("purchase from query", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFairUseCase(ctrl)
		r := newFairRouter(uc)

		uc.EXPECT().LinkStall(gomock.Any(), "f1", "s1", "p2").Return(nil)

		w := performRequest(r, http.MethodPost, "/v1/fairs/f1/stalls/s1?purchaseId=p2", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok":true}`, w.Body.String())
	})

	t.Run("no slot left", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFairUseCase(ctrl)
		r := newFairRouter(uc)

		uc.EXPECT().LinkStall(gomock.Any(), "f1", "s1", "").Return(usecase.ErrNoPurchaseAvailable)

		w := performRequest(r, http.MethodPost, "/v1/fairs/f1/stalls/s1", "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "NO_PURCHASE_AVAILABLE", decodeError(t, w).Code)
	})

	t.Run("stall errors still map", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIFairUseCase(ctrl)
		r := newFairRouter(uc)

		uc.EXPECT().UnlinkStall(gomock.Any(), "f1", "s9").Return(usecase.ErrStallNotFound)

		w := performRequest(r, http.MethodDelete, "/v1/fairs/f1/stalls/s9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
