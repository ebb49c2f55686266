package checkin

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Emizy/fitness-club-manager-api/internal/api"
	"github.com/Emizy/fitness-club-manager-api/internal/club"
	"github.com/Emizy/fitness-club-manager-api/internal/listing"
	"github.com/Emizy/fitness-club-manager-api/internal/user"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// @Summary      Check a member in
// @Description  Consumes one credit; the first check-in of an unbilled
// @Description  membership provisions the monthly invoice first.
// @Tags         checkin
// @Accept       json
// @Produce      json
// @Param        request body CheckInRequest true "Member and club"
// @Success      201 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/checkin [post]
func (h *Handler) Create(c *gin.Context) {
	var req CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FieldErrors(c, http.StatusBadRequest, api.BindErrors(err))
		return
	}

	ci, err := h.service.CheckIn(c.Request.Context(), req.User, req.Club)
	if err != nil {
		switch err {
		case user.ErrUserNotFound, club.ErrClubNotFound:
			api.Message(c, http.StatusNotFound, err.Error())
		case ErrMembershipCancelled, ErrNoCredit, ErrExpired:
			api.Message(c, http.StatusBadRequest, err.Error())
		default:
			api.Message(c, http.StatusBadRequest, err.Error())
		}
		return
	}

	api.DataWithMessage(c, http.StatusCreated, "Checkin successful", ci)
}

// @Summary      List check-ins
// @Tags         checkin
// @Produce      json
// @Param        user_id query int false "Filter by user"
// @Success      200 {object} api.Envelope
// @Router       /api/checkin [get]
func (h *Handler) List(c *gin.Context) {
	var userID *int
	if raw := c.Query("user_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			api.Message(c, http.StatusBadRequest, "Invalid user_id")
			return
		}
		userID = &id
	}

	checkins, err := h.service.List(c.Request.Context(), userID, listing.FromContext(c))
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.DataWithMessage(c, http.StatusOK, "OK", checkins)
}
