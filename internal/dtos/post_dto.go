package dtos

type PostRead struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	CreatedAt string `json:"created_at"`
}

type PostListResponse struct {
	Posts []PostRead `json:"posts"`
}
