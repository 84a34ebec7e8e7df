package entity

// Image holds the binary payload uploaded with an article. It has no
// lifecycle of its own: rows are inserted in the article creation transaction
// and never touched again.
type Image struct {
	ID        int64  `json:"id"`
	ArticleID int64  `json:"article_id"`
	Filename  string `json:"filename"`
	Data      []byte `json:"-"`
}
