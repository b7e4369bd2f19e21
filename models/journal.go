package models

// Journal is a private on-device journal entry. Journals never leave the
// local database.
type Journal struct {
	ID        string `json:"id" db:"id"`
	UserID    int64  `json:"user_id" db:"user_id"`
	Humor     string `json:"humor" db:"humor"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
	IsPinned  bool   `json:"is_pinned" db:"is_pinned"`
	Color     string `json:"color" db:"color"`
	CreatedAt int64  `json:"created_at" db:"created_at"`
	UpdatedAt int64  `json:"updated_at" db:"updated_at"`
}
