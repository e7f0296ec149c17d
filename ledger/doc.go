// Package ledger keeps a tamper-evident history of finished blackjack games.
//
// # Core Components
//
// Ledger: An append-only, hash-chained log of game records. It implements
// application.GameMonitor, so the game service appends one block per game
// that reaches Done.
//
// Block: A single finished game together with the hash of the previous
// block.
//
// # Security Properties
//
// Any modification of a recorded block breaks the hash chain, which Verify
// reports. The ledger lives in memory for the lifetime of the process.
package ledger
