package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/ray-remotestate/tillpoint/handlers"
	"github.com/ray-remotestate/tillpoint/middlewares"
)

type Server struct {
	Router *mux.Router
	server *http.Server
}

const (
	readTimeout       = 5 * time.Minute
	readHeaderTimeout = 30 * time.Second
	writeTimeout      = 5 * time.Minute
)

func SetupRoutes(api *handlers.API) *Server {
	router := mux.NewRouter()
	router.Use(middlewares.Recovery, middlewares.RequestLogger)

	router.HandleFunc("/health", api.Health).Methods("GET")
	router.HandleFunc("/menu", api.GetMenu).Methods("GET")

	router.HandleFunc("/order", api.GetOrder).Methods("GET")
	router.HandleFunc("/order", api.ClearOrder).Methods("DELETE")
	router.HandleFunc("/order/bill", api.GetBill).Methods("GET")
	router.HandleFunc("/order/items", api.AddOrderItem).Methods("POST")
	router.HandleFunc("/order/items/{id}", api.ChangeOrderItem).Methods("PATCH")
	router.HandleFunc("/order/items/{id}", api.RemoveOrderItem).Methods("DELETE")
	router.HandleFunc("/order/discount", api.SetDiscount).Methods("PUT")
	router.HandleFunc("/order/table", api.SetTable).Methods("PUT")
	router.HandleFunc("/order/payment-method", api.SetPaymentMethod).Methods("PUT")
	router.HandleFunc("/order/checkout", api.Checkout).Methods("POST")

	return &Server{
		Router: router,
	}
}

func (svr *Server) Run(port string) error {
	svr.server = &http.Server{
		Addr:              port,
		Handler:           svr.Router,
		ReadTimeout:       readTimeout,
		ReadHeaderTimeout: readHeaderTimeout,
		WriteTimeout:      writeTimeout,
	}
	return svr.server.ListenAndServe()
}

func (svr *Server) Shutdown(timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return svr.server.Shutdown(ctx)
}
