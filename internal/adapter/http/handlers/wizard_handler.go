package handlers

import (
	"errors"
	"net/http"
	request "portal_expositor/internal/adapter/http/dto/request"
	response "portal_expositor/internal/adapter/http/dto/response"
	"portal_expositor/internal/domain/wizard"
	"portal_expositor/internal/usecase"
	"portal_expositor/pkg"
	"portal_expositor/pkg/upstream"
	"strconv"

	"github.com/gin-gonic/gin"
)

var (
	errWizardNotFound   = pkg.NewDomainErrorSimple("NOT_FOUND", "Cadastro não encontrado.", http.StatusNotFound).WithDetails("Abra o cadastro da barraca novamente.")
	errSubmitInProgress = pkg.NewDomainErrorSimple("SUBMIT_IN_PROGRESS", "Salvando…", http.StatusConflict).WithDetails("Aguarde o envio terminar.")
	errMenuItemNotFound = pkg.NewDomainErrorSimple("NOT_FOUND", "Item do cardápio não encontrado.", http.StatusNotFound)
	errWizardState      = pkg.NewDomainErrorSimple("WIZARD_STATE_CONFLICT", "Ação indisponível nesta etapa.", http.StatusConflict)
	errInvalidIndex     = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Verifique os campos", http.StatusBadRequest).WithDetails("Índice inválido.")
)

// WizardHandler drives the stall registration wizard. Every mutation answers
// with the whole wizard state.
type WizardHandler struct {
	usecase usecase.IWizardUseCase
}

func NewWizardHandler(uc usecase.IWizardUseCase) *WizardHandler {
	return &WizardHandler{usecase: uc}
}

// StartWizard
//
// @Summary   Start stall wizard
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     body body request.StartWizardRequest false "stallId to edit"
// @Success   201 {object} response.WizardResponse
// @Router    /stalls/wizard [post]
func (h *WizardHandler) StartWizard(c *gin.Context) {
	var payload request.StartWizardRequest
	if c.Request.ContentLength != 0 && !bindJSON(c, &payload) {
		return
	}

	s, err := h.usecase.Start(c.Request.Context(), payload.StallID)
	if err != nil {
		fail(c, "wizard", err, mapWizardError)
		return
	}
	c.JSON(http.StatusCreated, response.FromWizardSession(s))
}

// GetWizard
//
// @Summary   Wizard state
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   200 {object} response.WizardResponse
// @Failure   404 {object} pkg.HTTPError
// @Router    /stalls/wizard/{wizard_id} [get]
func (h *WizardHandler) GetWizard(c *gin.Context) {
	h.respond(c)(h.usecase.Get(c.Request.Context(), c.Param("wizard_id")))
}

// CancelWizard drops the drafts.
//
// @Summary   Cancel wizard
// @Tags      wizard
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   204
// @Router    /stalls/wizard/{wizard_id} [delete]
func (h *WizardHandler) CancelWizard(c *gin.Context) {
	if err := h.usecase.Cancel(c.Request.Context(), c.Param("wizard_id")); err != nil {
		fail(c, "wizard", err, mapWizardError)
		return
	}
	c.Status(http.StatusNoContent)
}

// SetBasic replaces the basic draft. Changing the stall type or the main
// category resets the fields that depend on it.
//
// @Summary   Edit basic step
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     body body request.BasicRequest true "Basic draft"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/basic [put]
func (h *WizardHandler) SetBasic(c *gin.Context) {
	var payload request.BasicRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.SetBasic(c.Request.Context(), c.Param("wizard_id"), payload.ToDraft()))
}

// SetInfra
//
// @Summary   Edit infra step
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     body body request.InfraRequest true "Infra draft"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/infra [put]
func (h *WizardHandler) SetInfra(c *gin.Context) {
	var payload request.InfraRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.SetInfra(c.Request.Context(), c.Param("wizard_id"), payload.ToDraft()))
}

// AddCategory
//
// @Summary   Add menu category
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     body body request.CategoryRequest true "Category"
// @Success   200 {object} response.WizardResponse
// @Failure   422 {object} pkg.HTTPError
// @Router    /stalls/wizard/{wizard_id}/menu/categories [post]
func (h *WizardHandler) AddCategory(c *gin.Context) {
	var payload request.CategoryRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.AddCategory(c.Request.Context(), c.Param("wizard_id"), payload.Name))
}

// RenameCategory
//
// @Summary   Rename menu category
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     cat path int true "Category index"
// @Param     body body request.CategoryRequest true "Category"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/categories/{cat} [patch]
func (h *WizardHandler) RenameCategory(c *gin.Context) {
	cat, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	var payload request.CategoryRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.RenameCategory(c.Request.Context(), c.Param("wizard_id"), cat, payload.Name))
}

// RemoveCategory
//
// @Summary   Remove menu category
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     cat path int true "Category index"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/categories/{cat} [delete]
func (h *WizardHandler) RemoveCategory(c *gin.Context) {
	cat, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	h.respond(c)(h.usecase.RemoveCategory(c.Request.Context(), c.Param("wizard_id"), cat))
}

// AddProducts appends one or more products to a category.
//
// @Summary   Add products
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     cat path int true "Category index"
// @Param     body body request.ProductsRequest true "Products"
// @Success   200 {object} response.WizardResponse
// @Failure   422 {object} pkg.HTTPError
// @Router    /stalls/wizard/{wizard_id}/menu/categories/{cat}/products [post]
func (h *WizardHandler) AddProducts(c *gin.Context) {
	cat, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	var payload request.ProductsRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.AddProducts(c.Request.Context(), c.Param("wizard_id"), cat, payload.ToDrafts()))
}

// EditProduct
//
// @Summary   Edit product
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     cat path int true "Category index"
// @Param     prod path int true "Product index"
// @Param     body body request.ProductRequest true "Product"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/categories/{cat}/products/{prod} [patch]
func (h *WizardHandler) EditProduct(c *gin.Context) {
	cat, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	prod, ok := indexParam(c, "prod")
	if !ok {
		return
	}
	var payload request.ProductRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.EditProduct(c.Request.Context(), c.Param("wizard_id"), cat, prod, payload.ToDraft()))
}

// RemoveProduct
//
// @Summary   Remove product
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     cat path int true "Category index"
// @Param     prod path int true "Product index"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/categories/{cat}/products/{prod} [delete]
func (h *WizardHandler) RemoveProduct(c *gin.Context) {
	cat, ok := indexParam(c, "cat")
	if !ok {
		return
	}
	prod, ok := indexParam(c, "prod")
	if !ok {
		return
	}
	h.respond(c)(h.usecase.RemoveProduct(c.Request.Context(), c.Param("wizard_id"), cat, prod))
}

// StartDrag grabs a category or a product row.
//
// @Summary   Start menu drag
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     body body request.DragRequest true "Grabbed row"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/drag/start [post]
func (h *WizardHandler) StartDrag(c *gin.Context) {
	var payload request.DragRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.StartDrag(c.Request.Context(), c.Param("wizard_id"), wizard.DragKind(payload.Kind), payload.CategoryIndex, *payload.Index))
}

// MoveDrag follows the row under the pointer.
//
// @Summary   Move menu drag
// @Tags      wizard
// @Accept    json
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Param     body body request.DragRequest true "Row under the pointer"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/drag/move [post]
func (h *WizardHandler) MoveDrag(c *gin.Context) {
	var payload request.DragRequest
	if !bindJSON(c, &payload) {
		return
	}
	h.respond(c)(h.usecase.MoveDrag(c.Request.Context(), c.Param("wizard_id"), wizard.DragKind(payload.Kind), payload.CategoryIndex, *payload.Index))
}

// EndDrag drops the grabbed row.
//
// @Summary   Drop menu drag
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/drag/end [post]
func (h *WizardHandler) EndDrag(c *gin.Context) {
	h.respond(c)(h.usecase.EndDrag(c.Request.Context(), c.Param("wizard_id")))
}

// CancelDrag
//
// @Summary   Cancel menu drag
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/menu/drag/cancel [post]
func (h *WizardHandler) CancelDrag(c *gin.Context) {
	h.respond(c)(h.usecase.CancelDrag(c.Request.Context(), c.Param("wizard_id")))
}

// Next advances when the current step is valid. A failing step answers 422
// with the notice and the step to show.
//
// @Summary   Next step
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   200 {object} response.WizardResponse
// @Failure   422 {object} pkg.HTTPError
// @Router    /stalls/wizard/{wizard_id}/next [post]
func (h *WizardHandler) Next(c *gin.Context) {
	h.respond(c)(h.usecase.Next(c.Request.Context(), c.Param("wizard_id")))
}

// Back goes one step back. On the first step the wizard is cancelled.
//
// @Summary   Previous step
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   200 {object} response.WizardResponse
// @Router    /stalls/wizard/{wizard_id}/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	h.respond(c)(h.usecase.Back(c.Request.Context(), c.Param("wizard_id")))
}

// Submit saves the stall. The wizard is gone once this answers 200.
//
// @Summary   Submit wizard
// @Tags      wizard
// @Produce   json
// @Security  Bearer
// @Param     wizard_id path string true "Wizard ID"
// @Success   200 {object} response.SubmitResponse
// @Failure   409 {object} pkg.HTTPError
// @Failure   422 {object} pkg.HTTPError
// @Router    /stalls/wizard/{wizard_id}/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	s, err := h.usecase.Submit(c.Request.Context(), c.Param("wizard_id"))
	if err != nil {
		fail(c, "wizard", err, mapSubmitError)
		return
	}
	c.JSON(http.StatusOK, response.FromSubmitted(s))
}

// respond writes the outcome of a wizard call: h.respond(c)(h.usecase.Next(...)).
func (h *WizardHandler) respond(c *gin.Context) func(wizard.Session, error) {
	return func(s wizard.Session, err error) {
		if err != nil {
			fail(c, "wizard", err, mapWizardError)
			return
		}
		c.JSON(http.StatusOK, response.FromWizardSession(s))
	}
}

func indexParam(c *gin.Context, name string) (int, bool) {
	i, err := strconv.Atoi(c.Param(name))
	if err != nil || i < 0 {
		respondError(c, errInvalidIndex)
		return 0, false
	}
	return i, true
}

func mapWizardError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrWizardNotFound):
		return errWizardNotFound
	case errors.Is(err, usecase.ErrSubmitInProgress):
		return errSubmitInProgress
	case errors.Is(err, usecase.ErrFormRefused):
		return errFormRefused
	case errors.Is(err, wizard.ErrIndexOutOfRange):
		return errMenuItemNotFound
	case errors.Is(err, wizard.ErrNoNextStep), errors.Is(err, wizard.ErrNotLastStep),
		errors.Is(err, wizard.ErrNotActive), errors.Is(err, wizard.ErrWrongStep):
		return errWizardState
	default:
		return mapStallError(err)
	}
}

// mapSubmitError titles backend rejections the way the save notification does.
func mapSubmitError(err error) *pkg.AppError {
	appErr := mapWizardError(err)
	if _, ok := upstream.As(err); !ok || appErr.Code == errSessionExpired.Code {
		return appErr
	}
	details := appErr.Details
	if details == "" {
		details = appErr.Message
	}
	return pkg.NewDomainError(appErr.Code, "Não foi possível salvar", err, appErr.HTTPStatus).WithDetails(details)
}
