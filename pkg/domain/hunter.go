package domain

// Hunter represents a responder eligible to be notified about posts
type Hunter struct {
	UserID      string
	Approved    bool
	Skills      []string
	RewardTotal int64 // cumulative, never decreases
}

// MatchCandidate is a hunter selected for a post, produced by matching and consumed by dispatch
type MatchCandidate struct {
	HunterID string
	PostID   string
	AuthorID string
	Keywords []string
	Rank     int64 // reward total of the hunter at match time
}
