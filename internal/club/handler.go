package club

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

// @Summary      Create a fitness club
// @Tags         fitnessclub
// @Accept       json
// @Produce      json
// @Param        request body club.CreateClubRequest true "Club payload"
// @Success      201 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Router       /api/fitnessclub [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateClubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FieldErrors(c, http.StatusBadRequest, api.BindErrors(err))
		return
	}

	created, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.Data(c, http.StatusCreated, created)
}

// @Summary      List fitness clubs
// @Tags         fitnessclub
// @Produce      json
// @Success      200 {object} api.Envelope
// @Router       /api/fitnessclub [get]
func (h *Handler) List(c *gin.Context) {
	clubs, err := h.service.List(c.Request.Context(), listing.FromContext(c))
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.DataWithMessage(c, http.StatusOK, "OK", clubs)
}

// @Summary      Get a fitness club
// @Tags         fitnessclub
// @Produce      json
// @Param        id path int true "Club ID"
// @Success      200 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/fitnessclub/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid club ID")
		return
	}

	found, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		if err == ErrClubNotFound {
			api.Message(c, http.StatusNotFound, err.Error())
			return
		}
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.Data(c, http.StatusOK, found)
}
