package ledger

// Block is one entry of the ledger.
type Block struct {
	Index     int    `json:"index"`
	Timestamp int64  `json:"timestamp"`
	PrevHash  string `json:"prev_hash"`
	Hash      string `json:"hash"`
	Record    Record `json:"record"`
}

// Record is the snapshot of a finished game.
type Record struct {
	GameID      int64    `json:"game_id"`
	PlayerCards []string `json:"player_cards"`
	DealerCards []string `json:"dealer_cards"`
	PlayerScore int      `json:"player_score"`
	DealerScore int      `json:"dealer_score"`
	Outcome     string   `json:"outcome"`
}
