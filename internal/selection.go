package internal

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/score-law/litigation-analytics/specs"
)

// SelectionQueryParam is the query parameter carrying a selection token.
const SelectionQueryParam = "selections"

var errInvalidUTF8 = errors.New("token is not valid UTF-8")

type selectionWire struct {
	Type  string             `json:"type"`
	Value selectionValueWire `json:"value"`
}

type selectionValueWire struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// decodedSelection accepts any JSON shape so a bad entry only voids its own slot.
type decodedSelection struct {
	Type  *string `json:"type"`
	Value *struct {
		ID   *json.Number    `json:"id"`
		Name json.RawMessage `json:"name"`
	} `json:"value"`
}

// EncodeSelections implements specs.EncodeSelections.
func EncodeSelections(selections []*specs.SelectionSpec) string {
	wire := make([]selectionWire, 0, specs.MaxSelections)
	for _, s := range selections {
		if s == nil || s.Type == "" {
			continue
		}
		if len(wire) == specs.MaxSelections {
			break
		}
		wire = append(wire, selectionWire{
			Type:  s.Type,
			Value: selectionValueWire{ID: s.Value.ID, Name: s.Value.Name},
		})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(wire); err != nil {
		pipelineLogger().Error("encoding selections", "error", err)
		return ""
	}
	return base64.RawURLEncoding.EncodeToString(bytes.TrimRight(buf.Bytes(), "\n"))
}

// DecodeSelections implements specs.DecodeSelections.
func DecodeSelections(token string) [specs.MaxSelections]*specs.SelectionSpec {
	var out [specs.MaxSelections]*specs.SelectionSpec

	entries, err := decodeSelectionEntries(token)
	if err != nil {
		pipelineLogger().Debug("rejecting selection token", "error", err)
		return out
	}

	for i := 0; i < len(entries) && i < specs.MaxSelections; i++ {
		out[i] = decodeSelection(entries[i])
	}
	return out
}

func decodeSelectionEntries(token string) ([]json.RawMessage, error) {
	normalized := strings.NewReplacer("+", "-", "/", "_").Replace(strings.TrimSpace(token))
	normalized = strings.TrimRight(normalized, "=")

	raw, err := base64.RawURLEncoding.DecodeString(normalized)
	if err != nil {
		return nil, err
	}
	if !utf8.Valid(raw) {
		return nil, errInvalidUTF8
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// decodeSelection returns nil unless the entry has a non-empty type and an
// integral value.id.
func decodeSelection(entry json.RawMessage) *specs.SelectionSpec {
	var d decodedSelection
	if err := json.Unmarshal(entry, &d); err != nil {
		return nil
	}
	if d.Type == nil || *d.Type == "" || d.Value == nil || d.Value.ID == nil {
		return nil
	}

	id, ok := integralID(*d.Value.ID)
	if !ok {
		return nil
	}

	// Non-string names decode as empty.
	var name string
	_ = json.Unmarshal(d.Value.Name, &name)

	return &specs.SelectionSpec{
		Type:  *d.Type,
		Value: specs.SelectionValueSpec{ID: id, Name: name},
	}
}

func integralID(n json.Number) (int64, bool) {
	if id, err := n.Int64(); err == nil {
		return id, true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// SelectionsFromQuery decodes the selection token of a result link.
func SelectionsFromQuery(values url.Values) [specs.MaxSelections]*specs.SelectionSpec {
	return DecodeSelections(values.Get(SelectionQueryParam))
}

// SelectionsQuery builds the query values of a result link.
func SelectionsQuery(selections []*specs.SelectionSpec) url.Values {
	return url.Values{SelectionQueryParam: []string{EncodeSelections(selections)}}
}
