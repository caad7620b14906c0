package http

import (
	"net/http"

	"gearshare-backend/internal/domain"
	"gearshare-backend/internal/service"
)

type ItemHandler struct {
	svc    service.ItemService
	caller *CallerResolver
}

func NewItemHandler(svc service.ItemService, caller *CallerResolver) *ItemHandler {
	return &ItemHandler{svc: svc, caller: caller}
}

func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := h.caller.CallerID(r)
	if err != nil {
		writeError(w, err)
		return
	}
	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	name, err := requireText(req.Name, "name")
	if err != nil {
		writeError(w, err)
		return
	}
	description, err := requireText(req.Description, "description")
	if err != nil {
		writeError(w, err)
		return
	}
	if req.Available == nil {
		writeError(w, domain.NewValidation("Field available is required"))
		return
	}

	item, err := h.svc.CreateItem(r.Context(), userID, name, description, *req.Available, req.RequestID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
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
	var req itemRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	patch := service.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
		RequestID:   req.RequestID,
	}
	item, err := h.svc.UpdateItem(r.Context(), userID, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
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

	details, err := h.svc.GetItem(r.Context(), userID, id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, details)
}

func (h *ItemHandler) ListOwn(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.svc.ListOwnItems(r.Context(), userID, from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.ItemDetails{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) Search(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.svc.SearchItems(r.Context(), userID, r.URL.Query().Get("text"), from, size)
	if err != nil {
		writeError(w, err)
		return
	}
	if items == nil {
		items = []domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *ItemHandler) AddComment(w http.ResponseWriter, r *http.Request) {
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
	var req commentCreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}
	text, err := requireText(&req.Text, "text")
	if err != nil {
		writeError(w, err)
		return
	}

	comment, err := h.svc.AddComment(r.Context(), userID, id, text)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, comment)
}
