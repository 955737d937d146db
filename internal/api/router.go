package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/api/apierr"
	"github.com/mcoot/sugoroku/internal/api/handler"
	"github.com/mcoot/sugoroku/internal/api/middleware"
	"github.com/mcoot/sugoroku/internal/api/response"
	"github.com/mcoot/sugoroku/internal/services/board"
	"github.com/mcoot/sugoroku/internal/services/results"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	World          *board.World
	Printer        *message.Printer
	ResultsService results.ServiceInterface
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	boardHandler := handler.NewBoardHandler(cfg.World, cfg.Printer)
	resultsHandler := handler.NewResultsHandler(cfg.ResultsService)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	api.HandleFunc("/board", boardHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/board/areas/{index}", boardHandler.GetArea).Methods(http.MethodGet)

	api.HandleFunc("/results", resultsHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/results/{id}", resultsHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/leaderboard", resultsHandler.Leaderboard).Methods(http.MethodGet)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		apierr.WriteError(w, apierr.NewNotFoundError())
	})

	return r
}

func healthHandler(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, response.Health{Status: "ok"})
}
