package invoice

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Emizy/fitness-club-manager-api/internal/api"
	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/membership"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Create an invoice
// @Description  Provisions a monthly invoice for a membership and replenishes
// @Description  its credit account.
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        request body CreateInvoiceRequest true "Invoice details"
// @Success      201 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/invoice [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FieldErrors(c, http.StatusBadRequest, api.BindErrors(err))
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req.Membership, req.Amount)
	if err != nil {
		switch err {
		case membership.ErrMembershipNotFound:
			api.Message(c, http.StatusNotFound, err.Error())
		case ErrMembershipCancelled, ErrAmountInvalid:
			api.Message(c, http.StatusBadRequest, err.Error())
		default:
			api.Message(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	api.DataWithMessage(c, http.StatusCreated, "Invoice created", inv)
}

// @Summary      List invoices
// @Tags         invoice
// @Produce      json
// @Success      200 {object} api.Envelope
// @Router       /api/invoice [get]
func (h *Handler) List(c *gin.Context) {
	invoices, err := h.service.List(c.Request.Context(), listing.FromContext(c))
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.DataWithMessage(c, http.StatusOK, "OK", invoices)
}

// @Summary      Get an invoice
// @Description  Returns the invoice with its rows attached.
// @Tags         invoice
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      200 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/invoice/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrInvoiceNotFound {
			api.Message(c, http.StatusNotFound, err.Error())
			return
		}
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.Data(c, http.StatusOK, inv)
}

// @Summary      Add a row to an invoice
// @Tags         invoice
// @Accept       json
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Param        request body AddRowRequest true "Row details"
// @Success      200 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/invoice/{id}/add_row [put]
func (h *Handler) AddRow(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	var req AddRowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FieldErrors(c, http.StatusBadRequest, api.BindErrors(err))
		return
	}

	row, err := h.service.AddRow(c.Request.Context(), id, req.Amount, req.Description)
	if err != nil {
		switch err {
		case ErrInvoiceNotFound:
			api.Message(c, http.StatusNotFound, err.Error())
		case ErrAlreadyVoid, ErrMembershipCancelled, ErrRowAmountInvalid:
			api.Message(c, http.StatusBadRequest, err.Error())
		default:
			api.Message(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	api.DataWithMessage(c, http.StatusOK, "Row added", row)
}

// @Summary      Void an invoice
// @Description  Marks the invoice void. Credit already granted on the
// @Description  membership is not reclaimed.
// @Tags         invoice
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      204 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/invoice/{id}/void [put]
func (h *Handler) Void(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	if err := h.service.Void(c.Request.Context(), id); err != nil {
		switch err {
		case ErrInvoiceNotFound:
			api.Message(c, http.StatusNotFound, err.Error())
		case ErrAlreadyVoid:
			api.Message(c, http.StatusBadRequest, err.Error())
		default:
			api.Message(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary      Delete an invoice
// @Tags         invoice
// @Produce      json
// @Param        id path int true "Invoice ID"
// @Success      204 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/invoice/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid invoice ID")
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if err == ErrInvoiceNotFound {
			api.Message(c, http.StatusNotFound, err.Error())
			return
		}
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	c.Status(http.StatusNoContent)
}
