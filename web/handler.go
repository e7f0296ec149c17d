// Package web serves the blackjack game as server-rendered HTML.
//
// Every mutating route answers with 303 See Other back to the game page, so
// a browser refresh never repeats an action.
package web

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

// HistoryReader exposes finished games for the history page.
type HistoryReader interface {
	Blocks() []ledger.Block
}

// Handler routes browser requests to the game service.
type Handler struct {
	service *application.GameService
	history HistoryReader
	logger  *slog.Logger
	mux     *http.ServeMux
}

// NewHandler creates a Handler. history and logger may be nil.
func NewHandler(service *application.GameService, history HistoryReader, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &Handler{
		service: service,
		history: history,
		logger:  logger,
		mux:     http.NewServeMux(),
	}
	h.mux.HandleFunc("GET /{$}", h.index)
	h.mux.HandleFunc("POST /game", h.startGame)
	h.mux.HandleFunc("GET /game/{id}", h.gameView)
	h.mux.HandleFunc("POST /game/{id}/hit", h.hitCommand)
	h.mux.HandleFunc("POST /game/{id}/stand", h.standCommand)
	h.mux.HandleFunc("GET /history", h.historyView)
	h.mux.HandleFunc("GET "+StylesheetPath, h.stylesheet)
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func gamePath(id int64) string {
	return fmt.Sprintf("/game/%d", id)
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	templ.Handler(c, templ.WithStatus(status)).ServeHTTP(w, r)
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, application.ErrGameNotFound):
		status = http.StatusNotFound
	case errors.Is(err, blackjack.ErrIllegalStateTransition):
		status = http.StatusConflict
	default:
		h.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	h.render(w, r, status, ErrorPage(status, err.Error()))
}

func (h *Handler) gameID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		h.render(w, r, http.StatusBadRequest, ErrorPage(http.StatusBadRequest, "invalid game id"))
		return 0, false
	}
	return id, true
}

func (h *Handler) index(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, IndexPage())
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	game, err := h.service.StartGame()
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, gamePath(game.ID()), http.StatusSeeOther)
}

func (h *Handler) gameView(w http.ResponseWriter, r *http.Request) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	var view GameView
	err := h.service.View(id, func(g *blackjack.Game) error {
		var err error
		view, err = NewGameView(g)
		return err
	})
	if err != nil {
		h.renderError(w, r, err)
		return
	}
	h.render(w, r, http.StatusOK, GamePage(view))
}

func (h *Handler) hitCommand(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.service.Hit)
}

func (h *Handler) standCommand(w http.ResponseWriter, r *http.Request) {
	h.command(w, r, h.service.Stand)
}

func (h *Handler) command(w http.ResponseWriter, r *http.Request, action func(int64) error) {
	id, ok := h.gameID(w, r)
	if !ok {
		return
	}
	if err := action(id); err != nil {
		h.renderError(w, r, err)
		return
	}
	http.Redirect(w, r, gamePath(id), http.StatusSeeOther)
}

func (h *Handler) historyView(w http.ResponseWriter, r *http.Request) {
	var blocks []ledger.Block
	if h.history != nil {
		blocks = h.history.Blocks()
	}
	h.render(w, r, http.StatusOK, HistoryPage(blocks))
}

func (h *Handler) stylesheet(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	_, _ = io.WriteString(w, stylesheet)
}
