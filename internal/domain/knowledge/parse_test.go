package knowledge

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	apperrors "github.com/harborview/concierge/pkg/errors"
)

func TestParseCorpusFlatArray(t *testing.T) {
	input := `[
		{"question": "What time is check-in?", "answer": "Check-in starts at 3:00 PM."},
		{"question": "Is breakfast included?", "answer": "Yes"},
		{"question": "Is breakfast included?", "answer": "Yes"}
	]`

	corpus, err := ParseCorpus(strings.NewReader(input))
	require.NoError(t, err)
	// Duplicates are legal in the flat form and simply add retrieval mass.
	require.Equal(t, 3, corpus.Len())
	require.Equal(t, "What time is check-in?", corpus.Entries[0].Question)
	require.Equal(t, "Check-in starts at 3:00 PM.", corpus.Entries[0].Answer)
}

func TestParseCorpusRejectsMissingFields(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "missing answer", input: `[{"question": "Hi?"}]`},
		{name: "blank question", input: `[{"question": "   ", "answer": "Hello"}]`},
		{name: "invalid json", input: `[{"question": "Hi?"`},
		{name: "scalar root", input: `42`},
		{name: "empty input", input: ``},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCorpus(strings.NewReader(tc.input))
			require.Error(t, err)
			require.True(t, apperrors.IsCode(err, "parse_error"))
		})
	}
}

func TestParseCorpusEmptyArray(t *testing.T) {
	corpus, err := ParseCorpus(strings.NewReader(`[]`))
	require.NoError(t, err)
	require.Equal(t, 0, corpus.Len())
}

func TestParseCorpusToleratesBOM(t *testing.T) {
	corpus, err := ParseCorpus(strings.NewReader("\xef\xbb\xbf[{\"question\":\"Hi?\",\"answer\":\"Hello\"}]"))
	require.NoError(t, err)
	require.Equal(t, 1, corpus.Len())
}

func TestParseCorpusDocumentForm(t *testing.T) {
	input := `{
		"db_version": "2025-06-01",
		"faq": [
			{"question": "What time is check-in?", "answer": "3 PM.", "alts": ["When can I check in?"]}
		],
		"hotel_policies": {"pet_policy": "Small pets are welcome."},
		"rooms": [{"room_type": "family suite", "description": "Two bedrooms."}],
		"amenities": [{"amenity_name": "pool", "description": "Rooftop pool.", "rules": {"timings": "7 AM to 9 PM"}}],
		"menus": {"dinner": [{"name": "grilled salmon", "description": "With rice."}]}
	}`

	corpus, err := ParseCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, "2025-06-01", corpus.Version)

	byQuestion := make(map[string]string, corpus.Len())
	for _, entry := range corpus.Entries {
		byQuestion[entry.Question] = entry.Answer
	}
	require.Equal(t, "3 PM.", byQuestion["What time is check-in?"])
	require.Equal(t, "3 PM.", byQuestion["When can I check in?"])
	require.Equal(t, "Small pets are welcome.", byQuestion["pet policy"])
	require.Equal(t, "Small pets are welcome.", byQuestion["what is pet policy"])
	require.Equal(t, "Two bedrooms.", byQuestion["tell me about family suite"])
	require.Equal(t, "7 AM to 9 PM", byQuestion["pool timings"])
	require.Equal(t, "With rice.", byQuestion["what is in grilled salmon"])
	require.Equal(t, "Dinner menu available.", byQuestion["what is in dinner menu"])
}

func TestParseCorpusDocumentOrderIsStable(t *testing.T) {
	input := `{
		"hotel_policies": {
			"pets": "Small pets are welcome.",
			"check_out": "Check-out is at 11 AM.",
			"smoking": "Smoking rooms on request.",
			"cancellation": "Free until 48 hours before arrival.",
			"parking": "On-site parking costs $15."
		},
		"menus": {
			"dinner": [{"name": "grilled salmon", "description": "With rice."}],
			"breakfast": [{"name": "omelette", "description": "Three eggs."}],
			"lunch": [{"name": "club sandwich", "description": "With fries."}]
		}
	}`

	first, err := ParseCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.NotZero(t, first.Len())

	// Corpus order fixes the tie-break between equal scores, so repeated
	// loads of the same file must produce identical entry order.
	for i := 0; i < 10; i++ {
		next, err := ParseCorpus(strings.NewReader(input))
		require.NoError(t, err)
		require.Equal(t, first.Entries, next.Entries)
	}
}

func TestParseCorpusDocumentDeduplicates(t *testing.T) {
	input := `{
		"faq": [
			{"question": "Is breakfast included?", "answer": "Yes", "alts": ["Is breakfast included"]}
		]
	}`

	corpus, err := ParseCorpus(strings.NewReader(input))
	require.NoError(t, err)
	// The alt normalizes to the same question, so only one entry survives.
	require.Equal(t, 1, corpus.Len())
}

func TestParseCorpusDocumentSkipsBlankRecords(t *testing.T) {
	input := `{
		"faq": [{"question": "", "answer": "orphan"}],
		"rooms": [{"room_type": "suite", "description": ""}]
	}`

	corpus, err := ParseCorpus(strings.NewReader(input))
	require.NoError(t, err)
	require.Equal(t, 0, corpus.Len())
}
