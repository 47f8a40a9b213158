package ledger

// CreateRequest is the payload for creating a ledger entry. Amount is a
// pointer so a missing field is distinguishable from an explicit zero. Type
// is consumed at creation time only; the store keeps just the signed amount.
type CreateRequest struct {
	Title  string   `json:"title"`
	Amount *float64 `json:"amount"`
	Type   string   `json:"type"`
}

// Summary is the net balance of a session's ledger. An empty session reports
// zero, never an absent value.
type Summary struct {
	Amount float64 `json:"amount"`
}
