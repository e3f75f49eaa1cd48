package knowledge

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/harborview/concierge/internal/domain/retrieval"
	apperrors "github.com/harborview/concierge/pkg/errors"
)

// ParseCorpus reads a knowledge base from JSON. Two shapes are accepted:
//
//   - a flat array of {"question","answer"} objects, kept verbatim including
//     duplicates;
//   - a hotel document object whose faq, hotel_policies, rooms, amenities and
//     menus sections are synthesized into question/answer entries.
//
// A missing or empty question/answer in the flat form fails the whole load;
// no partial corpus is ever returned.
func ParseCorpus(r io.Reader) (Corpus, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Corpus{}, apperrors.Wrap("parse_error", "read knowledge base", err)
	}
	data = bytes.TrimPrefix(bytes.TrimSpace(data), []byte("\xef\xbb\xbf"))
	if len(data) == 0 {
		return Corpus{}, apperrors.Wrap("parse_error", "knowledge base is empty", nil)
	}

	switch data[0] {
	case '[':
		return parseFlat(data)
	case '{':
		return parseDocument(data)
	default:
		return Corpus{}, apperrors.Wrap("parse_error", "knowledge base root must be a JSON array or object", nil)
	}
}

func parseFlat(data []byte) (Corpus, error) {
	var raw []Entry
	if err := json.Unmarshal(data, &raw); err != nil {
		return Corpus{}, apperrors.Wrap("parse_error", "invalid knowledge base JSON", err)
	}
	entries := make([]Entry, 0, len(raw))
	for i, entry := range raw {
		question := strings.TrimSpace(entry.Question)
		answer := strings.TrimSpace(entry.Answer)
		if question == "" || answer == "" {
			return Corpus{}, apperrors.Wrap("parse_error", fmt.Sprintf("entry %d lacks a question or answer", i), nil)
		}
		entries = append(entries, Entry{Question: question, Answer: answer})
	}
	return Corpus{Entries: entries}, nil
}

type document struct {
	DBVersion     any                           `json:"db_version"`
	FAQ           []documentFAQ                 `json:"faq"`
	HotelPolicies map[string]string             `json:"hotel_policies"`
	Rooms         []documentRoom                `json:"rooms"`
	Amenities     []documentAmenity             `json:"amenities"`
	Menus         map[string][]documentMenuItem `json:"menus"`
}

type documentFAQ struct {
	Question   string   `json:"question"`
	Answer     string   `json:"answer"`
	Alts       []string `json:"alts"`
	Alternates []string `json:"alternates"`
}

type documentRoom struct {
	RoomType    string `json:"room_type"`
	Description string `json:"description"`
}

type documentAmenity struct {
	AmenityName string `json:"amenity_name"`
	Description string `json:"description"`
	Rules       struct {
		Timings string `json:"timings"`
	} `json:"rules"`
}

type documentMenuItem struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// parseDocument flattens the rich hotel document into entries. Sections with
// blank names or descriptions are skipped rather than failing the load, and
// synthesized entries are de-duplicated on (normalized question, answer).
func parseDocument(data []byte) (Corpus, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Corpus{}, apperrors.Wrap("parse_error", "invalid knowledge base JSON", err)
	}

	builder := newEntryBuilder()

	for _, item := range doc.FAQ {
		answer := strings.TrimSpace(item.Answer)
		if answer == "" {
			continue
		}
		builder.add(item.Question, answer)
		for _, alt := range append(item.Alts, item.Alternates...) {
			builder.add(alt, answer)
		}
	}

	// Map sections are walked in sorted key order so the corpus, and with it
	// the tie-break between equal scores, is identical on every load.
	for _, key := range sortedKeys(doc.HotelPolicies) {
		policy := strings.TrimSpace(doc.HotelPolicies[key])
		if policy == "" {
			continue
		}
		topic := strings.TrimSpace(strings.ReplaceAll(key, "_", " "))
		builder.add(topic, policy)
		builder.add("what is "+topic, policy)
	}

	for _, room := range doc.Rooms {
		roomType := strings.TrimSpace(room.RoomType)
		if roomType == "" || strings.TrimSpace(room.Description) == "" {
			continue
		}
		builder.add(roomType, room.Description)
		builder.add("what is "+roomType, room.Description)
		builder.add("tell me about "+roomType, room.Description)
	}

	for _, amenity := range doc.Amenities {
		name := strings.TrimSpace(amenity.AmenityName)
		if name == "" {
			continue
		}
		if strings.TrimSpace(amenity.Description) != "" {
			builder.add(name, amenity.Description)
			builder.add("tell me about "+name, amenity.Description)
		}
		if timings := strings.TrimSpace(amenity.Rules.Timings); timings != "" {
			builder.add(name+" timings", timings)
		}
	}

	for _, meal := range sortedKeys(doc.Menus) {
		for _, item := range doc.Menus[meal] {
			name := strings.TrimSpace(item.Name)
			if name == "" || strings.TrimSpace(item.Description) == "" {
				continue
			}
			builder.add("what is in "+name, item.Description)
			builder.add(name, item.Description)
		}
		builder.add("what is in "+meal+" menu", titleCase(meal)+" menu available.")
	}

	corpus := Corpus{Entries: builder.entries}
	if doc.DBVersion != nil {
		corpus.Version = strings.TrimSpace(fmt.Sprint(doc.DBVersion))
	}
	return corpus, nil
}

type entryBuilder struct {
	entries []Entry
	seen    map[string]struct{}
}

func newEntryBuilder() *entryBuilder {
	return &entryBuilder{seen: make(map[string]struct{})}
}

func (b *entryBuilder) add(question, answer string) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" || answer == "" {
		return
	}
	key := retrieval.Normalize(question) + "\x00" + answer
	if _, dup := b.seen[key]; dup {
		return
	}
	b.seen[key] = struct{}{}
	b.entries = append(b.entries, Entry{Question: question, Answer: answer})
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
