package trivia

// Question is a trivia question as stored and as delivered to clients.
// The category field holds the referenced category id; it is not validated
// against the categories table at write time.
type Question struct {
	ID         int    `json:"id"`
	Question   string `json:"question"`
	Answer     string `json:"answer"`
	Category   int    `json:"category"`
	Difficulty int    `json:"difficulty"`
}

// Category labels a group of questions. Categories are read-only from this
// service's perspective and are seeded externally.
type Category struct {
	ID   int    `json:"id"`
	Type string `json:"type"`
}
