package handler

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/sugoroku/internal/api/request"
	"github.com/mcoot/sugoroku/internal/api/response"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/results"
)

// ResultsHandler serves archived games and the leaderboard
type ResultsHandler struct {
	results results.ServiceInterface
}

// NewResultsHandler creates a new results handler
func NewResultsHandler(resultsService results.ServiceInterface) *ResultsHandler {
	return &ResultsHandler{results: resultsService}
}

// List handles GET /results
func (h *ResultsHandler) List(w http.ResponseWriter, r *http.Request) {
	query, err := request.ParseListQuery(r)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	summaries, err := h.results.List(r.Context(), query.Limit)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultListFromModel(summaries))
}

// Get handles GET /results/{id}
func (h *ResultsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := model.GameID(mux.Vars(r)["id"])

	summary, err := h.results.Get(r.Context(), id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.ResultFromModel(summary))
}

// Leaderboard handles GET /leaderboard
func (h *ResultsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	query, err := request.ParseListQuery(r)
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	standings, err := h.results.Leaderboard(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	if len(standings) > query.Limit {
		standings = standings[:query.Limit]
	}

	response.JSON(w, http.StatusOK, response.LeaderboardFromStandings(standings))
}
