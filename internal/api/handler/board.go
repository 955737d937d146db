package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"golang.org/x/text/message"

	"github.com/mcoot/sugoroku/internal/api/request"
	"github.com/mcoot/sugoroku/internal/api/response"
	"github.com/mcoot/sugoroku/internal/model"
	"github.com/mcoot/sugoroku/internal/services/board"
)

// BoardHandler serves a read-only view of one world
type BoardHandler struct {
	world   *board.World
	printer *message.Printer
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(world *board.World, printer *message.Printer) *BoardHandler {
	return &BoardHandler{
		world:   world,
		printer: printer,
	}
}

// Get handles GET /board
func (h *BoardHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, response.BoardFromWorld(h.world, h.printer))
}

// GetArea handles GET /board/areas/{index}
func (h *BoardHandler) GetArea(w http.ResponseWriter, r *http.Request) {
	index, err := request.ParseIndex(mux.Vars(r)["index"])
	if err != nil {
		WriteError(w, NewInvalidRequestError(err.Error()))
		return
	}

	area, ok := h.world.Area(index)
	if !ok {
		WriteError(w, fmt.Errorf("%w: area %d", model.ErrPositionOutOfRange, index))
		return
	}

	response.JSON(w, http.StatusOK, response.AreaFromModel(index, area, h.printer))
}
