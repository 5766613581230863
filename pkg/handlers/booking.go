package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"cardoctor/pkg/booking"
	"cardoctor/pkg/claims"

	"github.com/gorilla/mux"
)

type BookingHandler struct {
	Service booking.ServiceBooking
	Logger  *slog.Logger
}

func NewBookingHandler(service booking.ServiceBooking, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		Service: service,
		Logger:  logger,
	}
}

// GetBookings runs behind the session gate and the email authorization
// check. It filters by the granted scope, if any.
func (h *BookingHandler) GetBookings(w http.ResponseWriter, r *http.Request) {
	owner, ok := claims.FromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, typeMessage, "Unauthorized access")
		return
	}

	var scope *claims.Scope
	if s, ok := claims.ScopeFromContext(r.Context()); ok {
		scope = &s
	}

	bookings, err := h.Service.List(r.Context(), scope)
	if err != nil {
		writeStorageError(w, h.Logger, "GetBookings", err)
		return
	}

	if ok := writeJSON(w, h.Logger, bookings); ok {
		h.Logger.Info("bookings listed", "token_owner", owner.Email, "scoped", scope != nil, "count", len(bookings))
	}
}

func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var newBooking booking.Booking
	if ok := DecodeJSONBody(w, r, &newBooking); !ok {
		return
	}

	res, err := h.Service.Create(r.Context(), &newBooking)
	if errors.Is(err, booking.ErrMissingEmail) {
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	}
	if err != nil {
		writeStorageError(w, h.Logger, "CreateBooking", err)
		return
	}

	if ok := writeJSON(w, h.Logger, res); ok {
		h.Logger.Info("new booking created", "id", res.InsertedID.Hex(), "email", newBooking.Email)
	}
}

func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	var update booking.StatusUpdate
	if ok := DecodeJSONBody(w, r, &update); !ok {
		return
	}

	res, err := h.Service.UpdateStatus(r.Context(), id, update)
	switch {
	case errors.Is(err, booking.ErrInvalidID):
		writeError(w, http.StatusBadRequest, typeMessage, "invalid booking id")
		return
	case errors.Is(err, booking.ErrMissingStatus):
		writeError(w, http.StatusBadRequest, typeError, err.Error())
		return
	case err != nil:
		writeStorageError(w, h.Logger, "UpdateBooking", err)
		return
	}

	if ok := writeJSON(w, h.Logger, res); ok {
		h.Logger.Info("booking status updated", muxVarID, id, "status", update.Status)
	}
}

func (h *BookingHandler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}

	res, err := h.Service.Delete(r.Context(), id)
	if errors.Is(err, booking.ErrInvalidID) {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid booking id")
		return
	}
	if err != nil {
		writeStorageError(w, h.Logger, "DeleteBooking", err)
		return
	}

	if ok := writeJSON(w, h.Logger, res); ok {
		h.Logger.Info("booking delete", muxVarID, id, "deleted", res.DeletedCount)
	}
}

func bookingID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id, ok := mux.Vars(r)[muxVarID]
	if !ok || len(id) != lenID {
		writeError(w, http.StatusBadRequest, typeMessage, "invalid booking id")
		return "", false
	}
	return id, true
}
