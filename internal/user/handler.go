package user

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

// @Summary      Onboard a user
// @Description  Creates a user together with its membership account.
// @Tags         user
// @Accept       json
// @Produce      json
// @Param        request body user.CreateUserRequest true "User payload"
// @Success      201 {object} api.Envelope
// @Failure      400 {object} api.Envelope
// @Router       /api/user [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.FieldErrors(c, http.StatusBadRequest, api.BindErrors(err))
		return
	}

	u, err := h.service.Register(c.Request.Context(), req)
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.Data(c, http.StatusCreated, u)
}

// @Summary      List users
// @Tags         user
// @Produce      json
// @Success      200 {object} api.Envelope
// @Router       /api/user [get]
func (h *Handler) List(c *gin.Context) {
	users, err := h.service.List(c.Request.Context(), listing.FromContext(c))
	if err != nil {
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.DataWithMessage(c, http.StatusOK, "OK", users)
}

// @Summary      Get a user
// @Tags         user
// @Produce      json
// @Param        id path int true "User ID"
// @Success      200 {object} api.Envelope
// @Failure      404 {object} api.Envelope
// @Router       /api/user/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		api.Message(c, http.StatusBadRequest, "Invalid user ID")
		return
	}

	u, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == ErrUserNotFound {
			api.Message(c, http.StatusNotFound, err.Error())
			return
		}
		api.Message(c, http.StatusBadRequest, err.Error())
		return
	}

	api.Data(c, http.StatusOK, u)
}
