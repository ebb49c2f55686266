package membership

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Emizy/fitness-club-manager-api/internal/api"
	"github.com/Emizy/fitness-club-manager-api/internal/listing"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      List memberships
// @Tags         membership
// @Produce      json
// @Success      200 {object} api.Envelope
// @Router       /api/membership [get]
func (h *Handler) List(c *gin.Context) {
	memberships, err := h.service.List(c.Request.Context(), listing.FromContext(c))
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.DataWithMessage(c, http.StatusOK, "OK", memberships)
}

// @Summary      Get a membership
// @Tags         membership
// @Produce      json
// @Param        id path int true "Membership ID"
// @Success      200 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/membership/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	m, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrMembershipNotFound {
			api.Message(c, http.StatusNotFound, err.Error())
			return
		}
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.Data(c, http.StatusOK, m)
}

// @Summary      Cancel a membership
// @Description  Terminal transition: a cancelled membership never comes back
// @Description  through this endpoint.
// @Tags         membership
// @Produce      json
// @Param        id path int true "Membership ID"
// @Success      204 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/membership/{id}/cancel [put]
func (h *Handler) Cancel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid membership ID")
		return
	}

	if err := h.service.Cancel(c.Request.Context(), id); err != nil {
		switch err {
		case ErrMembershipNotFound:
			api.Message(c, http.StatusNotFound, err.Error())
		case ErrAlreadyCancelled:
			api.Message(c, http.StatusBadRequest, err.Error())
		default:
			api.Message(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	c.Status(http.StatusNoContent)
}
