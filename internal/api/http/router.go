package http

import (
	"net/http"

	"gearshare-backend/internal/service"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter wires the REST surface. Bookings, items, comments and requests
// all resolve the caller from the user-id header or a bearer token; user
// management is caller-less.
func NewRouter(
	userSvc service.UserService,
	itemSvc service.ItemService,
	bookingSvc service.BookingService,
	requestSvc service.ItemRequestService,
	caller *CallerResolver,
) *mux.Router {
	userHandler := NewUserHandler(userSvc)
	itemHandler := NewItemHandler(itemSvc, caller)
	bookingHandler := NewBookingHandler(bookingSvc, caller)
	requestHandler := NewItemRequestHandler(requestSvc, caller)

	r := mux.NewRouter()
	r.Use(RequestLogging)

	r.HandleFunc("/users", userHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/users", userHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", userHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/users/{id:[0-9]+}", userHandler.Update).Methods(http.MethodPatch)
	r.HandleFunc("/users/{id:[0-9]+}", userHandler.Delete).Methods(http.MethodDelete)

	r.HandleFunc("/items", itemHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/items", itemHandler.ListOwn).Methods(http.MethodGet)
	r.HandleFunc("/items/search", itemHandler.Search).Methods(http.MethodGet)
	r.HandleFunc("/items/{id:[0-9]+}", itemHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/items/{id:[0-9]+}", itemHandler.Update).Methods(http.MethodPatch)
	r.HandleFunc("/items/{id:[0-9]+}/comment", itemHandler.AddComment).Methods(http.MethodPost)

	r.HandleFunc("/bookings", bookingHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/bookings", bookingHandler.ListForBooker).Methods(http.MethodGet)
	r.HandleFunc("/bookings/owner", bookingHandler.ListForOwner).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/bookings/{id:[0-9]+}", bookingHandler.Decide).Methods(http.MethodPatch)

	r.HandleFunc("/requests", requestHandler.Create).Methods(http.MethodPost)
	r.HandleFunc("/requests", requestHandler.ListOwn).Methods(http.MethodGet)
	r.HandleFunc("/requests/all", requestHandler.ListOthers).Methods(http.MethodGet)
	r.HandleFunc("/requests/{id:[0-9]+}", requestHandler.Get).Methods(http.MethodGet)

	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return r
}
