package services

import (
	"fmt"
	"math/rand"
	"regexp"
	"strings"
	"sync"

	"restaurant_finder/models"
)

// Signal patterns matched against restaurant tags, amenities, cuisines and
// opening hours during scoring.
var (
	romanticTagPattern     = regexp.MustCompile(`(?i)panoramic|rooftop|date|candle`)
	familySignalPattern    = regexp.MustCompile(`(?i)family|children|kids|play`)
	workTagPattern         = regexp.MustCompile(`(?i)work|focus|makerspace|remote`)
	connectivityPattern    = regexp.MustCompile(`(?i)wifi|wi-fi|meeting|power|outlet`)
	seafoodCuisinePattern  = regexp.MustCompile(`(?i)seafood|pescatarian|fish`)
	experimentalTagPattern = regexp.MustCompile(`(?i)lab|test|immersi|tasting|experimental`)
)

// lateHourTokens mark opening hours that reach into the night.
var lateHourTokens = []string{"02:00", "24:00", "00:30", "01:00"}

// scoring weights
const (
	reviewCountCap      = 400.0
	budgetMatchBonus    = 0.9
	budgetHardPenalty   = 0.9
	budgetSoftPenalty   = 0.3
	cuisineHintBonus    = 0.5
	neighborhoodBonus   = 0.6
	veganBonus          = 1.2
	veganPenalty        = 0.5
	halalBonus          = 1.0
	halalPenalty        = 0.4
	romanticBonus       = 0.7
	familyBonus         = 0.7
	workBonus           = 0.8
	lateNightBonus      = 0.6
	seafoodBonus        = 0.6
	experimentalBonus   = 0.7
	sustainabilityBonus = 0.25
	jitterCeiling       = 0.05
)

// ScoreRestaurant computes the relevance of one restaurant for one intent
// profile. Returns the numeric score and the positive match explanations in
// evaluation order; penalty branches leave no reason behind. The record is
// never mutated.
//
// The rng contributes only the tie-breaking jitter in [0, 0.05) — calling
// twice with the same inputs yields scores within the jitter bound and an
// identical reasons list.
func ScoreRestaurant(r *models.Restaurant, intent models.IntentProfile, rng RandomSource) (float64, []string) {
	score := r.Rating*1.1 + min(float64(r.ReviewCount), reviewCountCap)/reviewCountCap
	var reasons []string

	// budget
	if intent.Budget != "" {
		switch {
		case intent.Budget == r.PriceTier:
			score += budgetMatchBonus
			reasons = append(reasons, "fits stated budget")
		case intent.Budget == models.TierLow && r.PriceTier == models.TierHigh:
			score -= budgetHardPenalty
		case intent.Budget == models.TierLow && r.PriceTier == models.TierMid:
			score -= budgetSoftPenalty
		case intent.Budget == models.TierHigh && r.PriceTier == models.TierLow:
			score -= budgetSoftPenalty
		}
	}

	// cuisine hints
	if matched := matchCuisineHints(r.Cuisines, intent.CuisineHints); len(matched) > 0 {
		score += cuisineHintBonus * float64(len(matched))
		reasons = append(reasons, fmt.Sprintf("cuisine match: %s", strings.Join(matched, ", ")))
	}

	// neighborhood
	for _, hint := range intent.NeighborhoodHints {
		if hint == r.Location.Neighborhood {
			score += neighborhoodBonus
			reasons = append(reasons, fmt.Sprintf("located in %s", hint))
			break
		}
	}

	if intent.WantsVegan {
		if containsString(r.Dietary, "Vegan") {
			score += veganBonus
			reasons = append(reasons, "verified vegan options")
		} else {
			score -= veganPenalty
		}
	}

	if intent.WantsHalal {
		if containsString(r.Dietary, "Halal") {
			score += halalBonus
			reasons = append(reasons, "halal-certified kitchen")
		} else {
			score -= halalPenalty
		}
	}

	if intent.WantsRomantic && anyMatch(r.Tags, romanticTagPattern) {
		score += romanticBonus
		reasons = append(reasons, "romantic ambiance cues")
	}

	if intent.WantsFamily && (anyMatch(r.Tags, familySignalPattern) || anyMatch(r.Amenities, familySignalPattern)) {
		score += familyBonus
		reasons = append(reasons, "family-friendly infrastructure")
	}

	if intent.WantsWork && (anyMatch(r.Tags, workTagPattern) || anyMatch(r.Amenities, connectivityPattern)) {
		score += workBonus
		reasons = append(reasons, "work-friendly amenities")
	}

	if intent.WantsLateNight && hasLateHours(r.Schedule) {
		score += lateNightBonus
		reasons = append(reasons, "extended late-night hours")
	}

	if intent.WantsSeafood && anyMatch(r.Cuisines, seafoodCuisinePattern) {
		score += seafoodBonus
		reasons = append(reasons, "specialized seafood menu")
	}

	if intent.WantsExperimental && anyMatch(r.Tags, experimentalTagPattern) {
		score += experimentalBonus
		reasons = append(reasons, "experimental formats")
	}

	// not gated on intent
	if r.SustainabilityScore >= 80 {
		score += sustainabilityBonus
		reasons = append(reasons, "strong sustainability record")
	}

	// tie-breaking jitter, too small to reorder distinct candidates
	score += rng.Float64() * jitterCeiling

	return score, reasons
}

// matchCuisineHints returns the hints appearing (case-insensitive) as a
// substring of any cuisine tag.
func matchCuisineHints(cuisines, hints []string) []string {
	var matched []string
	for _, hint := range hints {
		lowerHint := strings.ToLower(hint)
		for _, cuisine := range cuisines {
			if strings.Contains(strings.ToLower(cuisine), lowerHint) {
				matched = append(matched, hint)
				break
			}
		}
	}
	return matched
}

func hasLateHours(schedule []models.ScheduleEntry) bool {
	for _, slot := range schedule {
		for _, token := range lateHourTokens {
			if strings.Contains(slot.Hours, token) {
				return true
			}
		}
	}
	return false
}

func anyMatch(values []string, pattern *regexp.Regexp) bool {
	for _, v := range values {
		if pattern.MatchString(v) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// lockedRand is the default RandomSource, safe for concurrent requests.
type lockedRand struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomSource returns a seedable RandomSource.
func NewRandomSource(seed int64) RandomSource {
	return &lockedRand{rng: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Float64()
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.rng.Intn(n)
}
