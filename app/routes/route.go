package routes

import (
	"net/http"

	"github.com/Rakhulsr/go-logistics/app/handlers"
	"github.com/Rakhulsr/go-logistics/app/helpers"
	"github.com/Rakhulsr/go-logistics/app/middlewares"
	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"go.uber.org/zap"
)

func NewRouter(engine handlers.Quoter, valuator handlers.Valuer, rnd *render.Render, logger *zap.Logger) *mux.Router {
	router := mux.NewRouter()
	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.RecoverMiddleware(logger))
	router.Use(middlewares.AccessLogMiddleware(logger))

	shipping := handlers.NewShippingHandler(engine, rnd, logger)
	exchange := handlers.NewExchangeHandler(valuator, rnd, logger)

	router.HandleFunc("/healthz", handlers.Healthz(rnd)).Methods("GET")

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/shipping/quotes", shipping.Quote).Methods("POST")
	api.HandleFunc("/shipping/carriers", shipping.Carriers).Methods("GET")
	api.HandleFunc("/exchange/valuations", exchange.Valuate).Methods("POST")

	router.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rnd.JSON(w, http.StatusNotFound, helpers.Fail("route not found", r.Header.Get(helpers.RequestIDHeader)))
	})

	return router
}
