package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gearshare-backend/internal/domain"

	"github.com/gorilla/mux"
)

type userRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

type itemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
	RequestID   *int64  `json:"request_id"`
}

type bookingCreateRequest struct {
	ItemID int64      `json:"item_id"`
	Start  *time.Time `json:"start"`
	End    *time.Time `json:"end"`
}

type commentCreateRequest struct {
	Text string `json:"text"`
}

type requestCreateRequest struct {
	Description string `json:"description"`
}

func decodeBody(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.NewValidation("Invalid request body: %v", err)
	}
	return nil
}

func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidation("Invalid %s: %s", name, raw)
	}
	return id, nil
}

// paging parses the from/size query parameters: from >= 0, 1 <= size <= 100.
func paging(r *http.Request) (int, int, error) {
	from := 0
	size := 20

	if raw := r.URL.Query().Get("from"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 0 {
			return 0, 0, domain.NewValidation("Invalid from parameter: %s", raw)
		}
		from = v
	}
	if raw := r.URL.Query().Get("size"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 || v > 100 {
			return 0, 0, domain.NewValidation("Invalid size parameter: %s", raw)
		}
		size = v
	}
	return from, size, nil
}

func requireText(value *string, field string) (string, error) {
	if value == nil || strings.TrimSpace(*value) == "" {
		return "", domain.NewValidation("Field %s must not be blank", field)
	}
	return *value, nil
}
