package httperr

import (
	"net/http"
	"time"

	"hotel-booking/internal/domain/booking"
	"hotel-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

type UnavailableRoomDetail struct {
	RoomID   string `json:"roomId"`
	CheckIn  string `json:"checkIn"`
	CheckOut string `json:"checkOut"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		err = errs.New(msg)
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// AbortWithKind maps the error kind to a status. Errors without a kind are
// server errors and their text never reaches the client.
func AbortWithKind(c *gin.Context, err error) {
	status, msg, detail := Classify(err)
	AbortWithError(c, status, err, msg, detail)
}

func Classify(err error) (status int, msg string, detail any) {
	var unavailable *booking.UnavailableRoomError
	switch {
	case errs.As(err, &unavailable):
		return http.StatusConflict, "Room is not available for the requested dates", UnavailableRoomDetail{
			RoomID:   unavailable.RoomID.String(),
			CheckIn:  unavailable.CheckIn.Format(time.DateOnly),
			CheckOut: unavailable.CheckOut.Format(time.DateOnly),
		}
	case errs.Is(err, errs.ErrUnavailableRoom):
		return http.StatusConflict, "Room is not available for the requested dates", nil
	case errs.Is(err, errs.ErrNotFound):
		return http.StatusNotFound, err.Error(), nil
	case errs.Is(err, errs.ErrUnauthorized):
		return http.StatusForbidden, "Access to this booking is not allowed", nil
	case errs.Is(err, errs.ErrBadRequest):
		return http.StatusBadRequest, err.Error(), nil
	default:
		return http.StatusInternalServerError, "Internal server error", nil
	}
}
