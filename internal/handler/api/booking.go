package api

import (
	"net/http"

	reqdto "hotel-booking/internal/handler/dto/request"
	resdto "hotel-booking/internal/handler/dto/response"
	"hotel-booking/internal/handler/httperr"
	"hotel-booking/internal/handler/middleware"
	"hotel-booking/internal/usecase/commands"
	"hotel-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	cmds commands.BookingCommands
	q    queries.BookingQueries
}

func NewBookingHandler(cmds commands.BookingCommands, q queries.BookingQueries) *BookingHandler {
	return &BookingHandler{cmds: cmds, q: q}
}

// @Summary Create booking
// @Description Book one or more rooms of a hotel for a stay
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Create booking request"
// @Success 201 {object} resdto.BookingConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return
	}
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	confirmation, err := h.cmds.CreateBooking(c.Request.Context(), req, userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	res, err := resdto.FromBookingConfirmation(confirmation)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.Header("Location", "/api/bookings/"+confirmation.ID.String())
	c.JSON(http.StatusCreated, res)
}

// @Summary Get booking
// @Description Get the confirmation of an own booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingConfirmationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) Get(c *gin.Context) {
	bookingID, userID, ok := bookingParams(c)
	if !ok {
		return
	}

	confirmation, err := h.q.GetConfirmation(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	res, err := resdto.FromBookingConfirmation(confirmation)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get invoice
// @Description Get the per-room and aggregate price breakdown of an own booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.InvoiceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/invoice [get]
func (h *BookingHandler) GetInvoice(c *gin.Context) {
	bookingID, userID, ok := bookingParams(c)
	if !ok {
		return
	}

	inv, err := h.q.GetInvoice(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	res, err := resdto.FromInvoice(inv)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Download invoice
// @Description Download the invoice of an own booking as PDF
// @Tags bookings
// @Produce application/pdf
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {file} file
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id}/invoice/document [get]
func (h *BookingHandler) GetInvoiceDocument(c *gin.Context) {
	bookingID, userID, ok := bookingParams(c)
	if !ok {
		return
	}

	doc, err := h.q.GetInvoiceDocument(c.Request.Context(), bookingID, userID)
	if err != nil {
		httperr.AbortWithKind(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+doc.FileName+`"`)
	c.Data(http.StatusOK, doc.ContentType, doc.Content)
}

func bookingParams(c *gin.Context) (bookingID, userID uuid.UUID, ok bool) {
	bookingID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, uuid.Nil, false
	}
	userID, ok = middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, nil, "Unauthorized", nil)
		return uuid.Nil, uuid.Nil, false
	}
	return bookingID, userID, true
}
