package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"restaurant_finder/logger"
	"restaurant_finder/models"
	"restaurant_finder/utils"
)

// Synthetic latency and token-estimate knobs. The latency target simulates
// model "thinking" time; the response is held back until it has elapsed.
const (
	baseLatencyMs     = 650
	baseJitterMs      = 250
	perWordLatencyMs  = 35
	complexityCapMs   = 650
	thinkPadMs        = 120
	thinkJitterMs     = 180
	tokensPerChar     = 4
	tokensPerEntry    = 80
	tokenEstimateCap  = 640
	externalTokenCap  = 512
	confidenceTop     = 0.8
	confidenceStep    = 0.12
	confidenceFloor   = 0.45
	confidenceCeiling = 0.92
)

// ConciergeService turns a free-text question into a ranked shortlist of
// restaurant suggestions.
type ConciergeService struct {
	catalogue      Catalogue
	generator      TextGenerator
	rng            RandomSource
	maxSuggestions int

	// replaced in tests to avoid real waits
	delay func(ctx context.Context, d time.Duration)
}

// NewConciergeService wires the synthesizer. rng may be nil, in which case a
// time-seeded source is used.
func NewConciergeService(catalogue Catalogue, generator TextGenerator, rng RandomSource, maxSuggestions int) *ConciergeService {
	if rng == nil {
		rng = NewRandomSource(time.Now().UnixNano())
	}
	if maxSuggestions <= 0 {
		maxSuggestions = 3
	}
	return &ConciergeService{
		catalogue:      catalogue,
		generator:      generator,
		rng:            rng,
		maxSuggestions: maxSuggestions,
		delay:          sleepContext,
	}
}

// Ask runs the full pipeline: intent extraction, scoring of every catalogue
// record, ranking, shortlist synthesis, optional external text merge, and
// the latency hold. It never fails; an empty catalogue yields an empty
// suggestions list.
func (s *ConciergeService) Ask(ctx context.Context, question string) models.ConciergeResponse {
	start := time.Now()

	restaurants := s.catalogue.ListAll()
	intent := DeriveIntent(question, s.catalogue.Neighborhoods())

	scored := make([]models.ScoredCandidate, 0, len(restaurants))
	for i := range restaurants {
		r := &restaurants[i]
		if !r.Valid() {
			// one malformed record must not deny the whole request
			logger.Warn("Skipping invalid catalogue record", "id", r.ID, "name", r.Name)
			continue
		}
		score, reasons := ScoreRestaurant(r, intent, s.rng)
		scored = append(scored, models.ScoredCandidate{Restaurant: r, Score: score, Reasons: reasons})
	}

	// jitter already breaks ties, ordering does not depend on sort stability
	sort.Slice(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if len(scored) > s.maxSuggestions {
		scored = scored[:s.maxSuggestions]
	}

	suggestions := make([]models.Suggestion, 0, len(scored))
	for rank, candidate := range scored {
		suggestions = append(suggestions, models.Suggestion{
			ID:             fmt.Sprintf("%s-%d", candidate.Restaurant.ID, rank),
			Title:          candidate.Restaurant.Name,
			Recommendation: candidate.Restaurant.AISummary,
			Confidence:     confidenceFor(rank, candidate.Score),
			Restaurants:    []string{candidate.Restaurant.ID},
			Reasoning:      reasoningFor(candidate, intent),
		})
	}

	tokens := 0
	if len(suggestions) > 0 {
		tokens = minInt(len(question)*tokensPerChar+len(suggestions)*tokensPerEntry, tokenEstimateCap)
	}

	source := models.SourceTemplate
	if len(suggestions) > 0 && s.generator != nil {
		if text, ok := s.generator.Generate(ctx, question); ok {
			// only the top suggestion's reasoning is replaced
			suggestions[0].Reasoning = text
			source = models.SourceExternal
			tokens = minInt(len(text), externalTokenCap)
		}
	}

	target := s.targetLatency(question)
	if remaining := target - time.Since(start); remaining > 0 {
		s.delay(ctx, remaining)
	}

	latency := time.Since(start).Milliseconds()
	if targetMs := target.Milliseconds(); targetMs > latency {
		latency = targetMs
	}

	logger.Info("Concierge response synthesized",
		"suggestions", len(suggestions),
		"source", source,
		"latency_ms", latency,
		"tokens", tokens)

	return models.ConciergeResponse{
		Suggestions: suggestions,
		TokensUsed:  tokens,
		LatencyMs:   latency,
		Source:      source,
	}
}

// targetLatency computes the synthetic latency for a question: a jittered
// base plus a capped complexity term proportional to the word count.
func (s *ConciergeService) targetLatency(question string) time.Duration {
	words := len(strings.Fields(question))
	ms := baseLatencyMs + s.rng.Intn(baseJitterMs) +
		minInt(words*perWordLatencyMs, complexityCapMs) +
		thinkPadMs + s.rng.Intn(thinkJitterMs)
	return time.Duration(ms) * time.Millisecond
}

// confidenceFor decays monotonically by rank with a small score-dependent
// bonus, clamped to a believable range. Not a calibrated probability.
func confidenceFor(rank int, score float64) float64 {
	confidence := confidenceTop - float64(rank)*confidenceStep + min(score/100, 0.08)
	return utils.Clamp(confidence, confidenceFloor, confidenceCeiling)
}

// reasoningFor joins the recorded match reasons; with none, it falls back to
// the rating, plus the budget band and sustainability when applicable.
func reasoningFor(candidate models.ScoredCandidate, intent models.IntentProfile) string {
	if len(candidate.Reasons) > 0 {
		return fmt.Sprintf("Matched cues: %s.", strings.Join(candidate.Reasons, ", "))
	}

	r := candidate.Restaurant
	parts := []string{
		fmt.Sprintf("rated %.1f across %d reviews", r.Rating, r.ReviewCount),
	}
	if intent.Budget != "" && intent.Budget == r.PriceTier {
		parts = append(parts, fmt.Sprintf("within the %s budget band", r.PriceTier))
	}
	if r.SustainabilityScore >= 80 {
		parts = append(parts, "strong sustainability record")
	}
	return "Selected based on " + strings.Join(parts, "; ") + "."
}

// sleepContext waits for d without blocking other requests and returns early
// when the client goes away.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
