package http

import (
	"context"
	"net/http"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

type BookingHandler struct {
	svc    service.BookingService
	caller *CallerResolver
}

func NewBookingHandler(svc service.BookingService, caller *CallerResolver) *BookingHandler {
	return &BookingHandler{svc: svc, caller: caller}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req bookingCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	if req.ItemID <= 0 || req.Start == nil || req.End == nil {
		writeError(w, domain.NewValidation("Fields item_id, start and end are required"))
		return
	}

	booking, err := h.svc.CreateBooking(r.Context(), userID, req.ItemID, *req.Start, *req.End)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Decide(w http.ResponseWriter, r *http.Request) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var approved bool
	switch r.URL.Query().Get("approved") {
	case "true":
		approved = true
	case "false":
		approved = false
	default:
		writeError(w, domain.NewValidation("Parameter approved must be true or false"))
		return
	}

	booking, err := h.svc.DecideBooking(r.Context(), userID, id, approved)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.svc.GetBooking(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) ListForBooker(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListForBooker)
}

func (h *BookingHandler) ListForOwner(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.ListForOwner)
}

type bookingListFn func(ctx context.Context, userID int64, state domain.BookingState, offset, limit int) ([]domain.Booking, error)

func (h *BookingHandler) list(w http.ResponseWriter, r *http.Request, listFn bookingListFn) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	from, size, err := paging(r)
	if err != nil {
		writeError(w, err)
		return
	}

	stateToken := r.URL.Query().Get("state")
	if stateToken == "" {
		stateToken = string(domain.StateAll)
	}
	state, err := domain.ParseBookingState(stateToken)
	if err != nil {
		writeError(w, err)
		return
	}

	bookings, err := listFn(r.Context(), userID, state, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if bookings == nil {
		bookings = []domain.Booking{}
	}
	writeJSON(w, http.StatusOK, bookings)
}
