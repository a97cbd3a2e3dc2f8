package guess

import (
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
)

// Property is a single inferred fact and how sure the engine is about it.
type Property struct {
	Value      any
	Confidence float64
}

// Guess is a set of inferred properties keyed by name.
// Keys iterate in insertion order so merges and renderings are reproducible.
type Guess struct {
	keys  []string
	props map[string]Property
}

// New returns an empty guess.
func New() *Guess {
	return &Guess{
		props: make(map[string]Property),
	}
}

// FromProps builds a guess where every property shares one confidence.
// Keys are inserted in sorted order so construction is deterministic.
func FromProps(props map[string]any, confidence float64) *Guess {
	g := New()
	keys := make([]string, 0, len(props))
	for k := range props {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		g.Set(k, props[k], confidence)
	}
	return g
}

// Set stores a property, clamping confidence to [0,1].
func (g *Guess) Set(key string, value any, confidence float64) {
	if g.props == nil {
		g.props = make(map[string]Property)
	}
	if _, ok := g.props[key]; !ok {
		g.keys = append(g.keys, key)
	}
	g.props[key] = Property{Value: value, Confidence: clamp(confidence)}
}

// Value returns the raw value for key.
func (g *Guess) Value(key string) (any, bool) {
	if g == nil {
		return nil, false
	}
	p, ok := g.props[key]
	return p.Value, ok
}

// Str returns the value for key when it is a string.
func (g *Guess) Str(key string) (string, bool) {
	v, ok := g.Value(key)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the value for key when it is an int.
func (g *Guess) Int(key string) (int, bool) {
	v, ok := g.Value(key)
	if !ok {
		return 0, false
	}
	i, ok := v.(int)
	return i, ok
}

// Confidence returns the confidence for key, 0 when absent.
func (g *Guess) Confidence(key string) float64 {
	if g == nil {
		return 0
	}
	return g.props[key].Confidence
}

// Has reports whether key is present.
func (g *Guess) Has(key string) bool {
	if g == nil {
		return false
	}
	_, ok := g.props[key]
	return ok
}

// Keys returns the property names in insertion order.
func (g *Guess) Keys() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.keys))
	copy(out, g.keys)
	return out
}

// Len returns the number of properties.
func (g *Guess) Len() int {
	if g == nil {
		return 0
	}
	return len(g.keys)
}

// String renders the guess as "{key: value (confidence), ...}" in key order.
func (g *Guess) String() string {
	if g == nil || len(g.keys) == 0 {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{")
	for i, k := range g.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		p := g.props[k]
		fmt.Fprintf(&b, "%s: %v (%.2f)", k, p.Value, p.Confidence)
	}
	b.WriteString("}")
	return b.String()
}

// MarshalJSON renders property values without confidences.
func (g *Guess) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, len(g.keys))
	for k, p := range g.props {
		m[k] = p.Value
	}
	return json.Marshal(m)
}

// MergeAll folds guesses into one. The result carries the union of all keys.
// A contested key goes to the strictly higher confidence; on an exact tie the
// earliest value wins, and when tied values are equal their confidences
// reinforce each other. Inputs are never mutated; nil inputs are skipped.
func MergeAll(guesses []*Guess) *Guess {
	merged := New()
	for _, g := range guesses {
		if g == nil {
			continue
		}
		for _, k := range g.keys {
			p := g.props[k]
			cur, ok := merged.props[k]
			if !ok {
				merged.Set(k, p.Value, p.Confidence)
				continue
			}
			switch {
			case p.Confidence > cur.Confidence:
				merged.props[k] = Property{Value: p.Value, Confidence: p.Confidence}
			case p.Confidence == cur.Confidence && reflect.DeepEqual(cur.Value, p.Value):
				merged.props[k] = Property{Value: cur.Value, Confidence: reinforce(cur.Confidence, p.Confidence)}
			}
		}
	}
	return merged
}

// reinforce combines two confidences for agreeing values.
func reinforce(a, b float64) float64 {
	return 1 - (1-a)*(1-b)
}

func clamp(c float64) float64 {
	if c < 0 {
		return 0
	}
	if c > 1 {
		return 1
	}
	return c
}
