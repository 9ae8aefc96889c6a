package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/adapter/http/handlers/mocks"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg/upstream"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newStallFormRouter(uc *mocks.MockIStallFormUseCase) *gin.Engine {
	h := NewStallFormHandler(uc)
	r := gin.New()
	forms := r.Group("/v1/public/fairs/:fair_id/forms/stalls")
	forms.POST("/validate", h.Validate)
	forms.GET("", h.ListStalls)
	forms.DELETE("/:stall_id", h.DeleteStall)
	forms.POST("/:stall_id/select", h.SelectStall)
	forms.POST("/:stall_id/unlink", h.UnlinkStall)
	return r
}

func TestStallFormHandler_Validate(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newStallFormRouter(mocks.NewMockIStallFormUseCase(ctrl))

		w := performRequest(r, http.MethodPost, "/v1/public/fairs/f1/forms/stalls/validate", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("context with banner and labels", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStallFormUseCase(ctrl)
		r := newStallFormRouter(uc)

		uc.EXPECT().Open(gomock.Any(), "f1", "123.456.789-01").Return(entities.StallsFormView{
			Context: entities.StallsFormContext{
				Fair:            entities.FormFair{ID: "f1", Name: "Feira", Status: entities.FairStatusAtiva},
				StallsQty:       3,
				StallSlots:      []entities.StallSlot{{StallSize: entities.StallSize3x3, Qty: 3, UnitPriceCents: 50000}},
				LinkedStallsQty: 1,
			},
			Banner: entities.FormBanner{State: entities.FormWindowOpen, Title: "Inscrições em andamento"},
		}, nil)

		w := performRequest(r, http.MethodPost, "/v1/public/fairs/f1/forms/stalls/validate", `{"document":"123.456.789-01"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var body response.StallsFormResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, entities.FormWindowOpen, body.Banner.State)
		assert.Equal(t, 2, body.RemainingSlots)
		assert.Equal(t, "3m x 3m", body.StallSlots[0].StallSizeLabel)
		assert.Equal(t, "R$ 500,00", body.StallSlots[0].UnitPriceLabel)
		assert.NotNil(t, body.LinkedStallIDs)
	})

	t.Run("invalid document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStallFormUseCase(ctrl)
		r := newStallFormRouter(uc)

		_, invalid := usecase.NewFormAccess("f1", "123")
		require.Error(t, invalid)
		uc.EXPECT().Open(gomock.Any(), "f1", "123").Return(entities.StallsFormView{}, invalid)

		w := performRequest(r, http.MethodPost, "/v1/public/fairs/f1/forms/stalls/validate", `{"document":"123"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "VALIDATION_FAILED", decodeError(t, w).Code)
	})

	t.Run("a refused document is not an expired session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStallFormUseCase(ctrl)
		r := newStallFormRouter(uc)

		refused := fmt.Errorf("%w: %w", usecase.ErrFormRefused, &upstream.APIError{Status: http.StatusUnauthorized, Kind: upstream.KindHTTP})
		uc.EXPECT().Open(gomock.Any(), "f1", gomock.Any()).Return(entities.StallsFormView{}, refused)

		w := performRequest(r, http.MethodPost, "/v1/public/fairs/f1/forms/stalls/validate", `{"document":"12345678901"}`)
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ACCESS_DENIED", decodeError(t, w).Code)
	})
}

func TestStallFormHandler_Stalls(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list marks linked stalls and dates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStallFormUseCase(ctrl)
		r := newStallFormRouter(uc)

		uc.EXPECT().ListStalls(gomock.Any()).Return([]entities.FormStall{
			{Stall: entities.Stall{ID: "s1", PdvName: "Pastel", StallSize: entities.StallSize2x2, UpdatedAt: "2026-02-04T00:00:00.000Z"}, Linked: true},
			{Stall: entities.Stall{ID: "s2"}},
		}, nil)

		w := performRequest(r, http.MethodGet, "/v1/public/fairs/f1/forms/stalls", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body response.FormStallsResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		require.Len(t, body.Stalls, 2)
		assert.True(t, body.Stalls[0].Linked)
		assert.Equal(t, "04/02/2026", body.Stalls[0].UpdatedAtLabel)
		assert.Equal(t, "2m x 2m", body.Stalls[0].StallSizeLabel)
		assert.Equal(t, "—", body.Stalls[1].UpdatedAtLabel)
	})

	t.Run("missing access", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStallFormUseCase(ctrl)
		r := newStallFormRouter(uc)

		uc.EXPECT().ListStalls(gomock.Any()).Return(nil, usecase.ErrFormAccessRequired)

		w := performRequest(r, http.MethodGet, "/v1/public/fairs/f1/forms/stalls", "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("select unlink and delete", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStallFormUseCase(ctrl)
		r := newStallFormRouter(uc)

		uc.EXPECT().SelectStall(gomock.Any(), "s1").Return(entities.StallFairLink{StallFairID: "sf1"}, nil)
		uc.EXPECT().UnlinkStall(gomock.Any(), "s1").Return(nil)
		uc.EXPECT().DeleteStall(gomock.Any(), "s9").Return(usecase.ErrStallNotFound)

		w := performRequest(r, http.MethodPost, "/v1/public/fairs/f1/forms/stalls/s1/select", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"stallFairId":"sf1"`)

		w = performRequest(r, http.MethodPost, "/v1/public/fairs/f1/forms/stalls/s1/unlink", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = performRequest(r, http.MethodDelete, "/v1/public/fairs/f1/forms/stalls/s9", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
