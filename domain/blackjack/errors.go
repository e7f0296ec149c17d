package blackjack

import "errors"

var (
	// ErrSourceExhausted is returned when a card source has no cards left.
	ErrSourceExhausted = errors.New("card source exhausted")
	// ErrIllegalStateTransition is returned by Hit and Stand outside PlayerTurn.
	ErrIllegalStateTransition = errors.New("illegal state transition")
)
