package blackjack

import (
	"errors"
	"testing"
)

func newTestGame(t *testing.T, source CardSource) *Game {
	t.Helper()
	g, err := NewGame(source)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func assertOutcome(t *testing.T, g *Game, want Outcome) {
	t.Helper()
	if g.State() != Done {
		t.Fatalf("expected state %s, got %s", Done, g.State())
	}
	got, ok := g.Outcome()
	if !ok {
		t.Fatal("expected an outcome once done")
	}
	if got != want {
		t.Fatalf("expected outcome %s, got %s", want, got)
	}
}

func TestInitialDealOrder(t *testing.T) {
	g := newTestGame(t, NewStubDeck(Two, Three, Four, Five))
	player := g.PlayerHand().Cards()
	dealer := g.DealerHand().Cards()
	if player[0].Rank() != Two || player[1].Rank() != Four {
		t.Fatalf("player dealt %v, want 2 and 4", player)
	}
	if dealer[0].Rank() != Three || dealer[1].Rank() != Five {
		t.Fatalf("dealer dealt %v, want 3 and 5", dealer)
	}
	if g.State() != PlayerTurn {
		t.Fatalf("expected %s, got %s", PlayerTurn, g.State())
	}
	if _, ok := g.Outcome(); ok {
		t.Fatal("outcome must be absent before the game is done")
	}
}

func TestInitialDealNaturals(t *testing.T) {
	tests := []struct {
		name    string
		source  *StubDeck
		outcome Outcome
	}{
		{"player natural", PlayerDealtBlackjack(), PlayerBlackjack},
		{"dealer natural", NewStubDeck(Ten, Ace, Nine, King), DealerWins},
		{"both natural", NewStubDeck(Ace, Ace, King, Queen), Push},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.source)
			assertOutcome(t, g, tt.outcome)
			if !g.IsPlayerDone() {
				t.Fatal("player must be done after a natural")
			}
		})
	}
}

func TestPlayerHitsAndDoesNotGoBust(t *testing.T) {
	g := newTestGame(t, PlayerNotDealtBlackjackHitsAndDoesNotGoBust())
	if err := g.Hit(); err != nil {
		t.Fatal(err)
	}
	if g.PlayerHand().Len() != 3 {
		t.Fatalf("expected 3 cards, got %d", g.PlayerHand().Len())
	}
	if g.IsPlayerDone() {
		t.Fatal("player scoring 21 after a hit may still act")
	}
}

func TestPlayerHitsAndGoesBust(t *testing.T) {
	g := newTestGame(t, PlayerNotDealtBlackjackHitsAndGoesBust())
	if err := g.Hit(); err != nil {
		t.Fatal(err)
	}
	if g.PlayerHand().Score() != 27 {
		t.Fatalf("expected 27, got %d", g.PlayerHand().Score())
	}
	assertOutcome(t, g, PlayerBust)
	if g.DealerHand().Len() != 2 {
		t.Fatal("dealer must not draw after the player busts")
	}
}

func TestPlayerStandsDealerWins(t *testing.T) {
	g := newTestGame(t, PlayerStandsAndDealerWins())
	if err := g.Stand(); err != nil {
		t.Fatal(err)
	}
	if g.DealerHand().Score() != 19 {
		t.Fatalf("expected dealer 19, got %d", g.DealerHand().Score())
	}
	assertOutcome(t, g, DealerWins)
}

func TestStandOutcomes(t *testing.T) {
	tests := []struct {
		name    string
		source  *StubDeck
		outcome Outcome
		dealer  int
	}{
		// player 10+9=19, dealer 10+7=17 stands
		{"player wins", NewStubDeck(Ten, Ten, Nine, Seven), PlayerWins, 17},
		// player 10+7=17, dealer 10+6=16 draws 10
		{"dealer bust", NewStubDeck(Ten, Ten, Seven, Six, Ten), DealerBust, 26},
		// player 10+8=18, dealer 9+9=18
		{"push", NewStubDeck(Ten, Nine, Eight, Nine), Push, 18},
		// dealer Ace+6 is soft 17 and stands
		{"dealer stands on soft 17", NewStubDeck(Ten, Ace, Eight, Six), PlayerWins, 17},
		// dealer 2+3 draws 2, 2, Ace (soft 20)
		{"dealer draws several", NewStubDeck(Ten, Two, Nine, Three, Two, Two, Ace), DealerWins, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGame(t, tt.source)
			if err := g.Stand(); err != nil {
				t.Fatal(err)
			}
			assertOutcome(t, g, tt.outcome)
			if got := g.DealerHand().Score(); got != tt.dealer {
				t.Fatalf("expected dealer score %d, got %d", tt.dealer, got)
			}
		})
	}
}

func TestDealerNeverDrawsAtSeventeenOrMore(t *testing.T) {
	for i := 0; i < 200; i++ {
		g := newTestGame(t, NewShuffledDeck())
		if g.State() == Done {
			continue
		}
		initial := g.DealerHand().Len()
		if err := g.Stand(); err != nil {
			t.Fatal(err)
		}
		dealer := g.DealerHand()
		if dealer.Score() < 17 {
			t.Fatalf("dealer stopped at %d with %s", dealer.Score(), dealer)
		}
		cards := dealer.Cards()
		for n := initial; n < len(cards); n++ {
			before := NewHand(cards[:n]...)
			if before.Score() >= 17 {
				t.Fatalf("dealer drew with %d: %s", before.Score(), dealer)
			}
		}
	}
}

func TestActionsAfterDoneAreRejected(t *testing.T) {
	games := map[string]func(t *testing.T) *Game{
		"after natural": func(t *testing.T) *Game {
			return newTestGame(t, PlayerDealtBlackjack())
		},
		"after bust": func(t *testing.T) *Game {
			g := newTestGame(t, PlayerNotDealtBlackjackHitsAndGoesBust())
			if err := g.Hit(); err != nil {
				t.Fatal(err)
			}
			return g
		},
		"after stand": func(t *testing.T) *Game {
			g := newTestGame(t, PlayerStandsAndDealerWins())
			if err := g.Stand(); err != nil {
				t.Fatal(err)
			}
			return g
		},
	}
	for name, build := range games {
		t.Run(name, func(t *testing.T) {
			g := build(t)
			before, _ := g.Outcome()
			if err := g.Hit(); !errors.Is(err, ErrIllegalStateTransition) {
				t.Fatalf("Hit: expected ErrIllegalStateTransition, got %v", err)
			}
			if err := g.Stand(); !errors.Is(err, ErrIllegalStateTransition) {
				t.Fatalf("Stand: expected ErrIllegalStateTransition, got %v", err)
			}
			assertOutcome(t, g, before)
		})
	}
}

func TestIndependentGamesDoNotShareState(t *testing.T) {
	first := newTestGame(t, PlayerNotDealtBlackjackHitsAndDoesNotGoBust())
	second := newTestGame(t, PlayerNotDealtBlackjackHitsAndDoesNotGoBust())
	if err := first.Hit(); err != nil {
		t.Fatal(err)
	}
	if second.PlayerHand().Len() != 2 {
		t.Fatalf("second game changed: %s", second.PlayerHand())
	}
	if err := second.Hit(); err != nil {
		t.Fatal(err)
	}
	if second.PlayerHand().Cards()[2].Rank() != Three {
		t.Fatal("second game must draw from its own source")
	}
}

func TestExhaustedSourceIsReported(t *testing.T) {
	if _, err := NewGame(NewStubDeck(Ten, Seven, Eight)); !errors.Is(err, ErrSourceExhausted) {
		t.Fatalf("expected ErrSourceExhausted on deal, got %v", err)
	}
	g := newTestGame(t, NewStubDeck(Ten, Seven, Eight, Six))
	if err := g.Hit(); !errors.Is(err, ErrSourceExhausted) {
		t.Fatalf("expected ErrSourceExhausted on hit, got %v", err)
	}
}

func TestHandViewsAreReadOnly(t *testing.T) {
	g := newTestGame(t, PlayerStandsAndDealerWins())
	h := g.PlayerHand()
	h.add(MustCard(Spade, King))
	if g.PlayerHand().Len() != 2 {
		t.Fatal("PlayerHand must return a copy")
	}
}

func TestOutcomeLabel(t *testing.T) {
	tests := map[Outcome]string{
		PlayerBlackjack: "Player Blackjack",
		PlayerBust:      "Player Bust",
		DealerBust:      "Dealer Bust",
		PlayerWins:      "Player Wins",
		DealerWins:      "Dealer Wins",
		Push:            "Push",
	}
	for o, want := range tests {
		if got := o.Label(); got != want {
			t.Errorf("%s.Label() = %q, want %q", o, got, want)
		}
	}
}
