package handlers

import (
	"encoding/json"
	"net/http"
	"portal_expositor/internal/adapter/http/handlers/mocks"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/domain/entities"
	"portal_expositor/internal/domain/wizard"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg/upstream"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newWizardRouter(uc *mocks.MockIWizardUseCase) *gin.Engine {
	h := NewWizardHandler(uc)
	r := gin.New()
	wz := r.Group("/v1/stalls/wizard")
	wz.POST("", h.StartWizard)
	wz.GET("/:wizard_id", h.GetWizard)
	wz.DELETE("/:wizard_id", h.CancelWizard)
	wz.PUT("/:wizard_id/basic", h.SetBasic)
	wz.POST("/:wizard_id/menu/categories", h.AddCategory)
	wz.PATCH("/:wizard_id/menu/categories/:cat/products/:prod", h.EditProduct)
	wz.POST("/:wizard_id/menu/categories/:cat/products", h.AddProducts)
	wz.POST("/:wizard_id/menu/drag/start", h.StartDrag)
	wz.POST("/:wizard_id/menu/drag/end", h.EndDrag)
	wz.POST("/:wizard_id/next", h.Next)
	wz.POST("/:wizard_id/submit", h.Submit)
	return r
}

func wizardSession(id string) wizard.Session {
	return wizard.Session{ID: id, OwnerID: "o1", Wizard: wizard.New()}
}

func TestWizardHandler_Start(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("create without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Start(gomock.Any(), "").Return(wizardSession("w1"), nil)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard", "")
		require.Equal(t, http.StatusCreated, w.Code)

		var body response.WizardResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "w1", body.ID)
		assert.Equal(t, wizard.ModeCreate, body.Mode)
		assert.Equal(t, "Básico", body.StepLabel)
		assert.NotEmpty(t, body.MainCategories)
	})

	t.Run("a document refused by the fair", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Start(gomock.Any(), "").Return(wizard.Session{}, usecase.ErrFormRefused)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard", "")
		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "ACCESS_DENIED", decodeError(t, w).Code)
	})

	t.Run("edit of a missing stall", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Start(gomock.Any(), "s9").Return(wizard.Session{}, usecase.ErrStallNotFound)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard", `{"stallId":"s9"}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWizardHandler_Edits(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("basic draft is forwarded", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().SetBasic(gomock.Any(), "w1", wizard.BasicDraft{
			PdvName: "Pastel 1", MainCategory: "PASTEL", StallType: entities.StallTypeTrailer, TeamQty: 3,
		}).Return(wizardSession("w1"), nil)

		w := performRequest(r, http.MethodPut, "/v1/stalls/wizard/w1/basic", `{"pdvName":"Pastel 1","mainCategory":"PASTEL","stallType":"TRAILER","teamQty":3}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("menu notice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().AddCategory(gomock.Any(), "w1", " ").Return(wizardSession("w1"),
			&wizard.Notice{Step: wizard.StepMenu, Title: "Informe o nome da categoria", Subtitle: "Esse campo é obrigatório."})

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/menu/categories", `{"name":" "}`)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Informe o nome da categoria", body.Message)
		require.NotNil(t, body.Step)
		assert.Equal(t, 1, *body.Step)
	})

	t.Run("indexes come from the path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().EditProduct(gomock.Any(), "w1", 2, 0, wizard.ProductDraft{Name: "Coxinha", Price: "7,50"}).Return(wizardSession("w1"), nil)

		w := performRequest(r, http.MethodPatch, "/v1/stalls/wizard/w1/menu/categories/2/products/0", `{"name":"Coxinha","price":"7,50"}`)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("bad index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWizardRouter(mocks.NewMockIWizardUseCase(ctrl))

		w := performRequest(r, http.MethodPatch, "/v1/stalls/wizard/w1/menu/categories/x/products/0", `{"name":"Coxinha"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("products list must not be empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWizardRouter(mocks.NewMockIWizardUseCase(ctrl))

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/menu/categories/0/products", `{"products":[]}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("index out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().AddProducts(gomock.Any(), "w1", 5, []wizard.ProductDraft{{Name: "Pastel", Price: "10"}}).Return(wizardSession("w1"), wizard.ErrIndexOutOfRange)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/menu/categories/5/products", `{"products":[{"name":"Pastel","price":"10"}]}`)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("unknown wizard", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Get(gomock.Any(), "nope").Return(wizard.Session{}, usecase.ErrWizardNotFound)

		w := performRequest(r, http.MethodGet, "/v1/stalls/wizard/nope", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWizardHandler_Drag(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("start needs an index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		r := newWizardRouter(mocks.NewMockIWizardUseCase(ctrl))

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/menu/drag/start", `{"kind":"category"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("start and end", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		gomock.InOrder(
			uc.EXPECT().StartDrag(gomock.Any(), "w1", wizard.DragProduct, 1, 0).Return(wizardSession("w1"), nil),
			uc.EXPECT().EndDrag(gomock.Any(), "w1").Return(wizardSession("w1"), nil),
		)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/menu/drag/start", `{"kind":"product","categoryIndex":1,"index":0}`)
		require.Equal(t, http.StatusOK, w.Code)
		w = performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/menu/drag/end", "")
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func TestWizardHandler_Submit(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("created", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		done := wizardSession("w1")
		done.Wizard.Finish("s1")
		uc.EXPECT().Submit(gomock.Any(), "w1").Return(done, nil)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/submit", "")
		require.Equal(t, http.StatusOK, w.Code)

		var body response.SubmitResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, "Barraca criada", body.Title)
		assert.Equal(t, "s1", body.Wizard.StallID)
		assert.Equal(t, wizard.StatusFinished, body.Wizard.Status)
	})

	t.Run("in progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "w1").Return(wizard.Session{}, usecase.ErrSubmitInProgress)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/submit", "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "SUBMIT_IN_PROGRESS", decodeError(t, w).Code)
	})

	t.Run("before the last step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "w1").Return(wizardSession("w1"), wizard.ErrNotLastStep)

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/submit", "")
		require.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, "WIZARD_STATE_CONFLICT", decodeError(t, w).Code)
	})

	t.Run("backend rejection is titled as a failed save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "w1").Return(wizardSession("w1"),
			&upstream.APIError{Kind: upstream.KindHTTP, Status: 400, Message: "pdvName já existe"})

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/submit", "")
		require.Equal(t, http.StatusBadRequest, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "UPSTREAM_REJECTED", body.Code)
		assert.Equal(t, "Não foi possível salvar", body.Message)
		assert.Equal(t, "pdvName já existe", body.Details)
	})

	t.Run("blocked by a step", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWizardUseCase(ctrl)
		r := newWizardRouter(uc)

		uc.EXPECT().Submit(gomock.Any(), "w1").Return(wizardSession("w1"),
			&wizard.Notice{Step: wizard.StepInfra, Title: "Quantidade inválida", Subtitle: "A quantidade do equipamento deve ser entre 1 e 99."})

		w := performRequest(r, http.MethodPost, "/v1/stalls/wizard/w1/submit", "")
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		body := decodeError(t, w)
		assert.Equal(t, "Quantidade inválida", body.Message)
		require.NotNil(t, body.Step)
		assert.Equal(t, 2, *body.Step)
	})
}
