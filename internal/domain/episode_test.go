package domain

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestEstimateDuration(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		words int
		want  string
	}{
		{name: "single word rounds up", words: 1, want: "1:00"},
		{name: "exact multiple", words: 450, want: "3:00"},
		{name: "one over", words: 151, want: "2:00"},
		{name: "empty", words: 0, want: "0:00"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			script := strings.TrimSpace(strings.Repeat("word ", tc.words))
			if got := EstimateDuration(script); got != tc.want {
				t.Fatalf("EstimateDuration(%d words) = %s, want %s", tc.words, got, tc.want)
			}
		})
	}
}

func TestEstimateDurationCountsAcrossNewlines(t *testing.T) {
	t.Parallel()

	script := "Alex: hello there\n\nDr. Sarah: hi"
	if got := EstimateDuration(script); got != "1:00" {
		t.Fatalf("unexpected duration: %s", got)
	}
}

func TestEngagementFor(t *testing.T) {
	t.Parallel()

	cases := map[float64]EngagementLevel{
		0:    EngagementLow,
		4:    EngagementLow,
		4.1:  EngagementMedium,
		7:    EngagementMedium,
		7.5:  EngagementHigh,
		10:   EngagementHigh,
		10.1: EngagementVeryHigh,
	}

	for avg, want := range cases {
		if got := EngagementFor(avg); got != want {
			t.Fatalf("EngagementFor(%v) = %s, want %s", avg, got, want)
		}
	}
}

func TestDisplayName(t *testing.T) {
	t.Parallel()

	if got := DisplayName("finance-business"); got != "FINANCE BUSINESS" {
		t.Fatalf("unexpected display name: %s", got)
	}
	if got := SpokenName("ai-tech"); got != "ai tech" {
		t.Fatalf("unexpected spoken name: %s", got)
	}
}

func TestEpisodeJSONFieldNames(t *testing.T) {
	t.Parallel()

	raw, err := json.Marshal(Episode{Category: "ai-tech", Duration: "3:00"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["bunch"] != "ai-tech" || fields["duration"] != "3:00" {
		t.Fatalf("unexpected field names: %s", raw)
	}
	if _, ok := fields["audioUrl"]; !ok {
		t.Fatalf("audioUrl must be serialized as null: %s", raw)
	}
	for _, absent := range []string{"durationEstimate", "category", "rssUrl", "error"} {
		if _, ok := fields[absent]; ok {
			t.Fatalf("unexpected field %q: %s", absent, raw)
		}
	}
}
