package web

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/luca-patrignani/blackjack/application"
	"github.com/luca-patrignani/blackjack/domain/blackjack"
	"github.com/luca-patrignani/blackjack/ledger"
)

const faceDownCard = `<div class="card face-down">`

func newTestHandler(firstID int64, source application.SourceFactory) (*Handler, *application.GameService, *ledger.Ledger) {
	history := ledger.New()
	repo := application.NewInMemoryGameRepository(application.NewIDGenerator(firstID))
	service := application.NewGameService(source, repo, application.WithMonitor(history))
	return NewHandler(service, history, nil), service, history
}

func stub(build func() *blackjack.StubDeck) application.SourceFactory {
	return func() blackjack.CardSource {
		return build()
	}
}

func do(h http.Handler, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func assertRedirect(t *testing.T, rec *httptest.ResponseRecorder, location string) {
	t.Helper()
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if got := rec.Header().Get("Location"); got != location {
		t.Fatalf("expected redirect to %s, got %s", location, got)
	}
}

func TestStartGameCreatesGameAndDoesInitialDeal(t *testing.T) {
	h, service, _ := newTestHandler(41, stub(blackjack.PlayerNotDealtBlackjackHitsAndDoesNotGoBust))

	rec := do(h, http.MethodPost, "/game")

	assertRedirect(t, rec, "/game/41")
	game, err := service.GameFor(41)
	if err != nil {
		t.Fatal(err)
	}
	if game.PlayerHand().Len() != 2 {
		t.Fatalf("expected 2 cards, got %d", game.PlayerHand().Len())
	}
}

func TestGameViewForGameInProgress(t *testing.T) {
	h, _, _ := newTestHandler(13, stub(blackjack.PlayerNotDealtBlackjackHitsAndDoesNotGoBust))
	do(h, http.MethodPost, "/game")

	rec := do(h, http.MethodGet, "/game/13")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `data-template="game-in-progress"`) {
		t.Fatalf("expected the in-progress template, got %s", body)
	}
	if !strings.Contains(body, `data-game-id="13"`) {
		t.Fatal("expected the game id in the page")
	}
	if !strings.Contains(body, `action="/game/13/hit"`) || !strings.Contains(body, `action="/game/13/stand"`) {
		t.Fatal("expected hit and stand forms")
	}
	if n := strings.Count(body, faceDownCard); n != 1 {
		t.Fatalf("expected exactly one hidden dealer card, got %d", n)
	}
}

func TestGameViewForDoneGameShowsOutcome(t *testing.T) {
	h, _, _ := newTestHandler(0, stub(blackjack.PlayerDealtBlackjack))
	do(h, http.MethodPost, "/game")

	rec := do(h, http.MethodGet, "/game/0")

	body := rec.Body.String()
	if !strings.Contains(body, `data-template="game-over"`) {
		t.Fatalf("expected the game-over template, got %s", body)
	}
	if !strings.Contains(body, "Player Blackjack") {
		t.Fatal("expected the outcome label")
	}
	if strings.Contains(body, faceDownCard) {
		t.Fatal("dealer cards must be visible once the game is over")
	}
}

func TestHitCommandPlayerIsNotDone(t *testing.T) {
	h, service, _ := newTestHandler(10, stub(blackjack.PlayerNotDealtBlackjackHitsAndDoesNotGoBust))
	do(h, http.MethodPost, "/game")

	rec := do(h, http.MethodPost, "/game/10/hit")

	assertRedirect(t, rec, "/game/10")
	game, _ := service.GameFor(10)
	if game.PlayerHand().Len() != 3 {
		t.Fatalf("expected 3 cards, got %d", game.PlayerHand().Len())
	}
	if game.IsPlayerDone() {
		t.Fatal("player must still be able to act")
	}
}

func TestPlayerHitsGoesBustAndIsRecorded(t *testing.T) {
	h, service, history := newTestHandler(18, stub(blackjack.PlayerNotDealtBlackjackHitsAndGoesBust))
	do(h, http.MethodPost, "/game")

	rec := do(h, http.MethodPost, "/game/18/hit")

	assertRedirect(t, rec, "/game/18")
	game, _ := service.GameFor(18)
	if !game.IsPlayerDone() {
		t.Fatal("player must be done after busting")
	}
	if history.Len() != 1 || history.Latest().Record.Outcome != string(blackjack.PlayerBust) {
		t.Fatalf("expected the bust in the history, got %+v", history.Blocks())
	}
}

func TestPlayerHitsForOneGameDoesNotAffectOtherGame(t *testing.T) {
	h, service, _ := newTestHandler(15, stub(blackjack.PlayerNotDealtBlackjackHitsAndGoesBust))
	do(h, http.MethodPost, "/game")
	do(h, http.MethodPost, "/game")

	do(h, http.MethodPost, "/game/15/hit")

	second, _ := service.GameFor(16)
	if second.PlayerHand().Len() != 2 {
		t.Fatalf("expected 2 cards, got %d", second.PlayerHand().Len())
	}
}

func TestPlayerStandsAndIsDone(t *testing.T) {
	h, service, _ := newTestHandler(73, stub(blackjack.PlayerStandsAndDealerWins))
	do(h, http.MethodPost, "/game")

	rec := do(h, http.MethodPost, "/game/73/stand")

	assertRedirect(t, rec, "/game/73")
	game, _ := service.GameFor(73)
	if !game.IsPlayerDone() {
		t.Fatal("player must be done after standing")
	}
	body := do(h, http.MethodGet, "/game/73").Body.String()
	if !strings.Contains(body, "Dealer Wins") {
		t.Fatalf("expected the outcome label, got %s", body)
	}
}

func TestActionOnFinishedGameIsConflict(t *testing.T) {
	h, _, _ := newTestHandler(0, stub(blackjack.PlayerDealtBlackjack))
	do(h, http.MethodPost, "/game")

	for _, path := range []string{"/game/0/hit", "/game/0/stand"} {
		rec := do(h, http.MethodPost, path)
		if rec.Code != http.StatusConflict {
			t.Fatalf("%s: expected 409, got %d", path, rec.Code)
		}
	}
}

func TestUnknownAndInvalidGameIDs(t *testing.T) {
	h, _, _ := newTestHandler(0, nil)
	tests := []struct {
		method string
		path   string
		status int
	}{
		{http.MethodGet, "/game/0", http.StatusNotFound},
		{http.MethodPost, "/game/5/hit", http.StatusNotFound},
		{http.MethodPost, "/game/5/stand", http.StatusNotFound},
		{http.MethodGet, "/game/abc", http.StatusBadRequest},
		{http.MethodPost, "/game/abc/hit", http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			if rec := do(h, tt.method, tt.path); rec.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, rec.Code)
			}
		})
	}
}

func TestIndexAndHistoryPages(t *testing.T) {
	h, _, _ := newTestHandler(0, stub(blackjack.PlayerDealtBlackjack))
	rec := do(h, http.MethodGet, "/")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), `action="/game"`) {
		t.Fatalf("expected the start form, got %d %s", rec.Code, rec.Body.String())
	}

	rec = do(h, http.MethodGet, "/history")
	if !strings.Contains(rec.Body.String(), "No finished games yet.") {
		t.Fatal("expected an empty history")
	}

	do(h, http.MethodPost, "/game")
	rec = do(h, http.MethodGet, "/history")
	if !strings.Contains(rec.Body.String(), "player_blackjack") {
		t.Fatalf("expected the finished game in the history, got %s", rec.Body.String())
	}
}

func TestWrongMethodIsRejected(t *testing.T) {
	h, _, _ := newTestHandler(0, nil)
	if rec := do(h, http.MethodGet, "/game/0/hit"); rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestInterruptedGameIsNotOfferedActions(t *testing.T) {
	short := func() *blackjack.StubDeck {
		return blackjack.NewStubDeck(blackjack.Ten, blackjack.Two, blackjack.Eight, blackjack.Three)
	}
	h, _, history := newTestHandler(0, stub(short))
	do(h, http.MethodPost, "/game")

	if rec := do(h, http.MethodPost, "/game/0/stand"); rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 when the dealer cannot draw, got %d", rec.Code)
	}

	rec := do(h, http.MethodGet, "/game/0")
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if body := rec.Body.String(); strings.Contains(body, `action="/game/0/hit"`) {
		t.Fatalf("interrupted game must not offer actions, got %s", body)
	}
	if history.Len() != 0 {
		t.Fatalf("interrupted game must not be recorded, got %d rounds", history.Len())
	}
}

func TestStylesheetIsServedSeparately(t *testing.T) {
	h, _, _ := newTestHandler(0, nil)

	rec := do(h, http.MethodGet, StylesheetPath)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/css") {
		t.Fatalf("expected a css content type, got %q", ct)
	}
	if !strings.Contains(rec.Body.String(), ".card.face-down") {
		t.Fatal("expected the card rules in the stylesheet")
	}

	page := do(h, http.MethodGet, "/").Body.String()
	if !strings.Contains(page, `<link rel="stylesheet" href="`+StylesheetPath+`">`) {
		t.Fatalf("expected the page to link the stylesheet, got %s", page)
	}
	if strings.Contains(page, "<style>") {
		t.Fatal("expected no inline styles")
	}
}
