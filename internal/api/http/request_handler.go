package http

import (
	"net/http"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

type ItemRequestHandler struct {
	svc    service.ItemRequestService
	caller *CallerResolver
}

func NewItemRequestHandler(svc service.ItemRequestService, caller *CallerResolver) *ItemRequestHandler {
	return &ItemRequestHandler{svc: svc, caller: caller}
}

func (h *ItemRequestHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req requestCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	description, err := requireText(&req.Description, "description")
	if err != nil {
		writeError(w, err)
		return
	}

	request, err := h.svc.CreateRequest(r.Context(), userID, description)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, request)
}

func (h *ItemRequestHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	requests, err := h.svc.ListOwnRequests(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) ListOthers(w http.ResponseWriter, r *http.Request) {
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

	requests, err := h.svc.ListOtherRequests(r.Context(), userID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if requests == nil {
		requests = []domain.ItemRequest{}
	}
	writeJSON(w, http.StatusOK, requests)
}

func (h *ItemRequestHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	request, err := h.svc.GetRequest(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, request)
}
