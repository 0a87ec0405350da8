package services

import (
	"regexp"
	"strings"

	"restaurant_finder/models"
)

// Keyword families for the boolean intent flags.
var (
	veganPattern        = regexp.MustCompile(`vegan|plant[ -]?based|herbivore|meat[ -]?free`)
	romanticPattern     = regexp.MustCompile(`romantic|date night|date|anniversary|proposal`)
	familyPattern       = regexp.MustCompile(`family|kids|children|stroller|play area`)
	workPattern         = regexp.MustCompile(`remote|work|laptop|focus|cowork|brunch|meeting`)
	lateNightPattern    = regexp.MustCompile(`night|late|midnight|after hours|club|cocktail`)
	halalPattern        = regexp.MustCompile(`halal|muslim|zabiha`)
	seafoodPattern      = regexp.MustCompile(`seafood|fish|oyster|pescatarian`)
	experimentalPattern = regexp.MustCompile(`experimental|innovative|tasting|degustation|lab`)
)

// Budget keyword groups, tested in priority order: cheap wins over mid wins
// over fancy. No match leaves the budget unset.
var budgetGroups = []struct {
	pattern *regexp.Regexp
	tier    string
}{
	{regexp.MustCompile(`cheap|budget|student|affordable|under \d+`), models.TierLow},
	{regexp.MustCompile(`mid[ -]?range|casual|weekday|lunch`), models.TierMid},
	{regexp.MustCompile(`fancy|premium|anniversary|splurge|tasting|rooftop|fine dining|upscale`), models.TierHigh},
}

// Cuisine-signal groups. Not mutually exclusive: every matching label is
// collected.
var cuisineGroups = []struct {
	pattern *regexp.Regexp
	label   string
}{
	{regexp.MustCompile(`ramen|noodle`), "Japanese"},
	{regexp.MustCompile(`bbq|barbecue|smoked|smokehouse`), "Smokehouse"},
	{regexp.MustCompile(`oyster|seafood`), "Seafood"},
	{regexp.MustCompile(`brunch|bakery|pastry`), "Bakery"},
	{regexp.MustCompile(`vegan|plant[ -]?based`), "Plant-based"},
	{regexp.MustCompile(`coffee|cafe|espresso`), "Cafe"},
	{regexp.MustCompile(`georgian|khachapuri|khinkali`), "Modern Georgian"},
	{regexp.MustCompile(`family|kids`), "Family"},
}

// DeriveIntent builds an IntentProfile from a free-text question. Pure
// keyword matching, deterministic, and safe on empty or pathological input:
// a query with no cues yields a profile with every flag off.
//
// neighborhoods is the deduplicated set of catalogue neighborhoods; the ones
// found verbatim (case-insensitive) in the question become hints.
func DeriveIntent(question string, neighborhoods []string) models.IntentProfile {
	text := strings.ToLower(question)

	intent := models.IntentProfile{
		WantsVegan:        veganPattern.MatchString(text),
		WantsRomantic:     romanticPattern.MatchString(text),
		WantsFamily:       familyPattern.MatchString(text),
		WantsWork:         workPattern.MatchString(text),
		WantsLateNight:    lateNightPattern.MatchString(text),
		WantsHalal:        halalPattern.MatchString(text),
		WantsSeafood:      seafoodPattern.MatchString(text),
		WantsExperimental: experimentalPattern.MatchString(text),
		CuisineHints:      []string{},
		NeighborhoodHints: []string{},
	}

	for _, group := range budgetGroups {
		if group.pattern.MatchString(text) {
			intent.Budget = group.tier
			break
		}
	}

	for _, group := range cuisineGroups {
		if group.pattern.MatchString(text) {
			intent.CuisineHints = append(intent.CuisineHints, group.label)
		}
	}

	for _, neighborhood := range neighborhoods {
		if neighborhood == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(neighborhood)) {
			intent.NeighborhoodHints = append(intent.NeighborhoodHints, neighborhood)
		}
	}

	return intent
}
