package types

// PostTypeJournal is the content type journal entries are published under.
const PostTypeJournal = "hair_journal"

const (
	META_HEALTH_RATING = "health_rating"
	META_ANALYSIS_DATA = "analysis_data"
)

// JournalEntry is a user authored hair-care log post. Entries are written by an
// external authoring flow and only ever read here.
type JournalEntry struct {
	ID        string `json:"id" db:"id"`
	AuthorID  string `json:"author_id" db:"author_id"`
	PostType  string `json:"post_type" db:"post_type"`
	Title     string `json:"title" db:"title"`
	Content   string `json:"content" db:"content"`
	Thumbnail string `json:"thumbnail" db:"thumbnail"`
	Status    string `json:"status" db:"status"`
	CreatedAt int64  `json:"created_at" db:"created_at"`

	Meta map[string]string `json:"meta" db:"-"`
}

// MetaValue returns the metadata value stored under key and whether it was present.
func (e JournalEntry) MetaValue(key string) (string, bool) {
	if e.Meta == nil {
		return "", false
	}
	v, ok := e.Meta[key]
	return v, ok
}

type PostMeta struct {
	PostID    string `db:"post_id"`
	MetaKey   string `db:"meta_key"`
	MetaValue string `db:"meta_value"`
}

type ActivityItem struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Date         string `json:"date"`
	Excerpt      string `json:"excerpt"`
	HealthRating *int   `json:"health_rating,omitempty"`
	Thumbnail    string `json:"thumbnail,omitempty"`
}

type HealthSummary struct {
	Ratings []int   `json:"ratings"`
	Count   int     `json:"count"`
	Average float64 `json:"average"`
	Trend   string  `json:"trend"`
}
