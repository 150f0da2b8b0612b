package service

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/omarshaarawi/sleeperstats/internal/models"
)

const matchThreshold = 0.7

// bestPlayerMatch returns the id of the player whose full name is most similar
// to query by normalized Levenshtein distance. Ties go to the lowest id.
func bestPlayerMatch(players map[string]models.Player, query string) (string, bool) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return "", false
	}

	ids := make([]string, 0, len(players))
	for id := range players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	bestID := ""
	bestScore := -1.0
	for _, id := range ids {
		fullName := strings.ToLower(strings.TrimSpace(players[id].Name()))
		if fullName == "" {
			continue
		}

		distance := fuzzy.LevenshteinDistance(query, fullName)
		maxLen := float64(max(len(query), len(fullName)))
		similarity := 1 - float64(distance)/maxLen

		if similarity > matchThreshold && similarity > bestScore {
			bestScore = similarity
			bestID = id
		}
	}
	return bestID, bestID != ""
}
