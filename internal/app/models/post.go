package models

import "time"

// Post defines the post model based on the 'posts' table.
// LikedBy holds the ids of users with an active like; its cardinality
// always equals Likes and it contains no duplicates. Both fields are
// mutated together by a single atomic toggle statement.
type Post struct {
	ID        int64     `json:"id" db:"id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	Hashtags  []string  `json:"hashtags" db:"hashtags"`
	Likes     int       `json:"likes" db:"likes"`
	LikedBy   []int64   `json:"likedBy" db:"liked_by"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
	Author    *User     `json:"author,omitempty"`   // Relation, no db tag
	Comments  []Comment `json:"comments,omitempty"` // Relation, no db tag
}

// LikedByUser reports whether the given user currently likes the post.
func (p *Post) LikedByUser(userID int64) bool {
	for _, id := range p.LikedBy {
		if id == userID {
			return true
		}
	}
	return false
}

// Comment defines the comment model based on the 'comments' table.
type Comment struct {
	ID        int64     `json:"id" db:"id"`
	PostID    int64     `json:"postId" db:"post_id"`
	UserID    int64     `json:"userId" db:"user_id"`
	Content   string    `json:"content" db:"content"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Author    *User     `json:"author,omitempty"` // Relation, no db tag
}
