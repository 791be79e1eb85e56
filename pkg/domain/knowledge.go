package domain

import "time"

// SnippetLength is the maximum number of characters returned in a suggestion snippet
const SnippetLength = 500

// SolvedKnowledge is the indexed document of a solved post, one per post id
type SolvedKnowledge struct {
	PostID    string
	Content   string
	UpdatedAt time.Time
}

// Suggestion is a snippet of a solved post matching a query
type Suggestion struct {
	PostID  string `json:"postId"`
	Snippet string `json:"snippet"`
}

// Snippet returns the first SnippetLength characters of the document
func (k *SolvedKnowledge) Snippet() string {
	runes := []rune(k.Content)
	if len(runes) <= SnippetLength {
		return k.Content
	}
	return string(runes[:SnippetLength])
}
