package specs

// MaxSelections is the number of concurrently active filter selections.
const MaxSelections = 2

// SelectionSpec is a user's chosen filter entity.
//
// Selections are carried in shareable result links as a compact URL-safe
// token (see EncodeSelections). Only the fields below survive a round trip.
type SelectionSpec struct {
	// Entity type. Examples: "Courts", "Judges", "Charges".
	Type string `json:"type"`

	// Chosen entity.
	Value SelectionValueSpec `json:"value"`
}

// SelectionValueSpec identifies the chosen entity.
type SelectionValueSpec struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// EncodeSelections encodes up to MaxSelections selections into a URL-safe token.
//
// Nil and incomplete entries are dropped before encoding. The token contains
// no '+', '/' or '=' characters.
type EncodeSelections func(selections []*SelectionSpec) string

// DecodeSelections decodes a token produced by EncodeSelections.
//
// Total over arbitrary input: malformed tokens decode to two nil slots and
// malformed entries decode to a nil slot.
type DecodeSelections func(token string) [MaxSelections]*SelectionSpec
