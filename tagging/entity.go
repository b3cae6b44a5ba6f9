package tagging

import (
	"strings"
	"unicode/utf8"
)

// NoneType is the type of a non-entity unit. Every token tagged O becomes a
// singleton entity of this type.
const NoneType = "None"

// TokenLength returns the character length of a token in runes.
func TokenLength(token string) int {
	return utf8.RuneCountInString(token)
}

// Entity is an ordered run of tokens sharing one type.
// The zero Entity is the empty sentinel: no tokens, length 0.
type Entity struct {
	Type   string
	Tokens []string
}

// NewEntity returns an entity of the given type holding tokens.
func NewEntity(typ string, tokens ...string) Entity {
	return Entity{Type: typ, Tokens: tokens}
}

// Len returns the span length: the sum of the token character lengths.
func (e Entity) Len() int {
	n := 0
	for _, tok := range e.Tokens {
		n += TokenLength(tok)
	}
	return n
}

// IsNone reports whether e is a non-entity unit.
func (e Entity) IsNone() bool {
	return e.Type == NoneType
}

// Equal reports whether e and other have the same type and token sequence.
func (e Entity) Equal(other Entity) bool {
	if e.Type != other.Type || len(e.Tokens) != len(other.Tokens) {
		return false
	}
	for i := range e.Tokens {
		if e.Tokens[i] != other.Tokens[i] {
			return false
		}
	}
	return true
}

// Text joins the tokens with single spaces.
func (e Entity) Text() string {
	return strings.Join(e.Tokens, " ")
}

func (e Entity) String() string {
	return "[" + e.Text() + "] " + e.Type
}

// Sentence is an ordered list of entities whose tokens, concatenated,
// reconstruct the sentence's token stream.
type Sentence []Entity

// Len returns the character length of the sentence.
func (s Sentence) Len() int {
	n := 0
	for _, e := range s {
		n += e.Len()
	}
	return n
}

// Tokens returns the sentence's token stream.
func (s Sentence) Tokens() []string {
	var toks []string
	for _, e := range s {
		toks = append(toks, e.Tokens...)
	}
	return toks
}

// Document is an ordered list of sentences.
type Document []Sentence

// Entities returns every entity in the document whose type is not None,
// in document order.
func (d Document) Entities() []Entity {
	var out []Entity
	for _, sent := range d {
		for _, e := range sent {
			if !e.IsNone() {
				out = append(out, e)
			}
		}
	}
	return out
}
