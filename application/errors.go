package application

import "errors"

// ErrGameNotFound is returned when no game is registered under an id.
var ErrGameNotFound = errors.New("game not found")
