package models

// Concierge response sources.
const (
	SourceTemplate = "template"       // reasoning produced by local heuristics
	SourceExternal = "external-model" // top reasoning replaced by generated text
)

// IntentProfile is what a free-text question is asking for, derived per
// request by keyword matching and discarded after synthesis.
type IntentProfile struct {
	WantsVegan        bool
	WantsRomantic     bool
	WantsFamily       bool
	WantsWork         bool
	WantsLateNight    bool
	WantsHalal        bool
	WantsSeafood      bool
	WantsExperimental bool

	Budget            string   // one of the price tiers, "" when not stated
	CuisineHints      []string // matched cuisine-signal labels
	NeighborhoodHints []string // catalogue neighborhoods found in the question
}

// ScoredCandidate pairs a restaurant with its relevance score and the
// positive match explanations collected while scoring. Exists only during
// ranking.
type ScoredCandidate struct {
	Restaurant *Restaurant
	Score      float64
	Reasons    []string
}

// Suggestion is one shortlist entry of the concierge response.
type Suggestion struct {
	ID             string   `json:"id"` // restaurant id + rank position
	Title          string   `json:"title"`
	Recommendation string   `json:"recommendation"`
	Confidence     float64  `json:"confidence"`
	Restaurants    []string `json:"restaurants"`
	Reasoning      string   `json:"reasoning"`
}

// ConciergeResponse is the final payload of POST /api/ai/suggest.
// Suggestions is always present, possibly empty, never null.
type ConciergeResponse struct {
	Suggestions []Suggestion `json:"suggestions"`
	TokensUsed  int          `json:"tokensUsed"`
	LatencyMs   int64        `json:"latencyMs"`
	Source      string       `json:"source"`
}

// ConciergeRequest is the boundary input. Context is an opaque key-value
// bag the core does not interpret.
type ConciergeRequest struct {
	Question string         `json:"question" validate:"required,min=4"`
	Context  map[string]any `json:"context,omitempty"`
}
