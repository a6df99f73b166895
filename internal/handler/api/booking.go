package api

import (
	"errors"
	"net/http"

	"weekboard/internal/domain/booking"
	reqdto "weekboard/internal/handler/dto/request"
	resdto "weekboard/internal/handler/dto/response"
	"weekboard/internal/handler/httperr"
	"weekboard/internal/handler/view"
	"weekboard/internal/usecase/commands"
	"weekboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary Weekly grid
// @Description Render the booking grid for a week (current week by default)
// @Tags bookings
// @Produce html
// @Param week query string false "ISO week identifier (YYYY-Www)"
// @Success 200 {string} string "HTML grid"
// @Router / [get]
func (h *BookingHandler) GridPage(c *gin.Context) {
	week := booking.WeekID(c.Query("week"))
	if week == "" {
		week = h.bookingQueries.CurrentWeek()
	}

	grid, err := h.bookingQueries.GridForWeek(c.Request.Context(), week)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "grid.html", view.NewGridPage(grid))
}

// @Summary Create bookings
// @Description Reserve one or more slots under a display name
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.CreateBookingsRequest true "Booking request"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /book [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.CreateBookingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No JSON data")
		return
	}

	if err := h.bookingCommands.CreateBookings(c.Request.Context(), req.ToParams()); err != nil {
		switch {
		case errors.Is(err, commands.ErrNoSlots):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "No slots in request")
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid slot")
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		}
		return
	}

	c.JSON(http.StatusOK, resdto.OK())
}

// @Summary Delete booking
// @Description Delete a booking by id, authorized by its PIN
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.DeleteBookingRequest true "Delete request"
// @Success 200 {object} resdto.StatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 500 {object} httperr.Response
// @Router /delete [post]
func (h *BookingHandler) Delete(c *gin.Context) {
	var req reqdto.DeleteBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "No JSON data")
		return
	}

	if err := h.bookingCommands.DeleteBooking(c.Request.Context(), req.ID, req.PIN); err != nil {
		// Missing booking and wrong PIN answer identically on purpose
		if errors.Is(err, commands.ErrNotAuthorized) {
			httperr.AbortWithError(c, http.StatusForbidden, err, "Feil PIN")
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error")
		return
	}

	c.JSON(http.StatusOK, resdto.Deleted())
}
