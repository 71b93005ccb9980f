package domain

// TimeData is the showroom clock payload scraped from the world-clock page,
// with a server-side fallback when the scrape fails.
type TimeData struct {
	Time      string `json:"time"`
	Date      string `json:"date"`
	Timezone  string `json:"timezone"`
	Timestamp string `json:"timestamp"`
	FetchedAt string `json:"fetchedAt"`
}
