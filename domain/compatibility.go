package domain

type SharedPlace struct {
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	PhotoURL   string `json:"photo_url,omitempty"`
	Intent     string `json:"intent"`
}

// CompatibilityResult is computed per request and never stored.
type CompatibilityResult struct {
	Score         int           `json:"score"`
	SharedCount   int           `json:"shared_count"`
	SharedIntents []string      `json:"shared_intents"`
	SharedPrice   *string       `json:"shared_price"`
	SharedPlaces  []SharedPlace `json:"shared_places"`
	NoData        bool          `json:"no_data"`
}
