package domain

import "time"

// PostStatus represents lifecycle state of a post
type PostStatus string

const (
	PostOpen   PostStatus = "open"
	PostSolved PostStatus = "solved"
)

// Post represents a work item posted by a user
type Post struct {
	ID        string
	Title     string
	Body      string
	AuthorID  string
	Status    PostStatus
	CreatedAt time.Time
}

// Text returns the text used for keyword extraction, title and body joined by a newline
func (p *Post) Text() string {
	return p.Title + "\n" + p.Body
}

// Solution represents a solution submitted for a post
type Solution struct {
	PostID   string
	Text     string
	Approved bool
}

// SolvedPost is a post joined with its approved solution
type SolvedPost struct {
	Post
	SolutionText string
}
