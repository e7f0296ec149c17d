// Package blackjack implements the domain logic for a single round of
// Blackjack between one player and an automated dealer.
//
// # Core Types
//
// Card: An immutable playing card with suit and rank.
//
// CardSource: Produces cards one at a time. Deck presents all 52 cards in an
// order fixed at construction, StubDeck replays a literal sequence of ranks.
//
// Hand: The ordered cards held by the player or the dealer, with scoring.
//
// Game: One round. It owns both hands, its card source and the turn state.
//
// # Game Flow
//
// A game deals two cards each (player, dealer, player, dealer) and checks for
// naturals. The player then hits or stands while in PlayerTurn. Standing hands
// control to the dealer, who draws until reaching 17, after which the outcome
// is fixed and the game is Done.
//
// # Scoring
//
// Aces count as 1 and are promoted to 11 one at a time while the total stays
// at or below 21, so Ace+6 scores 17 and Ace+Ace+9 scores 21.
package blackjack
