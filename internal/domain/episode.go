package domain

import (
	"math"
	"strconv"
	"strings"
)

// EngagementLevel is a coarse display tier derived from mean article score.
type EngagementLevel string

const (
	EngagementLow      EngagementLevel = "LOW"
	EngagementMedium   EngagementLevel = "MEDIUM"
	EngagementHigh     EngagementLevel = "HIGH"
	EngagementVeryHigh EngagementLevel = "VERY HIGH"
	EngagementError    EngagementLevel = "ERROR"
)

// EngagementFor maps a mean score onto its tier.
func EngagementFor(avg float64) EngagementLevel {
	switch {
	case avg > 10:
		return EngagementVeryHigh
	case avg > 7:
		return EngagementHigh
	case avg > 4:
		return EngagementMedium
	default:
		return EngagementLow
	}
}

// Hosts is the persona pair voicing an episode.
type Hosts struct {
	Main   string `json:"main"`
	Expert string `json:"expert"`
}

// Episode is one generated script plus metadata for a category/language/date.
type Episode struct {
	ID              string          `json:"id"`
	Category        string          `json:"bunch"`
	Language        string          `json:"language"`
	Date            string          `json:"date"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Script          string          `json:"script"`
	Duration        string          `json:"duration"`
	Articles        []Article       `json:"articles"`
	EngagementLevel EngagementLevel `json:"engagementLevel"`
	TotalScore      int             `json:"totalScore"`
	AverageScore    float64         `json:"averageScore"`
	HostsUsed       Hosts           `json:"hostsUsed"`
	AudioURL        *string         `json:"audioUrl"`
	RSSURL          string          `json:"rssUrl,omitempty"`
	Error           string          `json:"error,omitempty"`
}

// WordsPerMinute is the reading rate used for duration estimates.
const WordsPerMinute = 150

// EstimateDuration converts a script into "M:00" at WordsPerMinute.
func EstimateDuration(script string) string {
	words := len(strings.Fields(script))
	minutes := int(math.Ceil(float64(words) / WordsPerMinute))
	return strconv.Itoa(minutes) + ":00"
}

// DisplayName turns a category key into its on-air name, e.g. "ai-tech" -> "AI TECH".
func DisplayName(category string) string {
	return strings.ToUpper(SpokenName(category))
}

// SpokenName is the lower-case form used inside sentences, e.g. "ai tech".
func SpokenName(category string) string {
	return strings.Replace(category, "-", " ", 1)
}
