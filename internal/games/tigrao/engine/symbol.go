// Package engine implements the Tigrão match-3 simulation: grid generation,
// run detection and scoring, gravity with refill, terminal detection, and the
// session state machine that ties them together.
//
// The package has no dependencies on the platform layer. It never sleeps and
// never logs; callers decide how to pace and display each pass.
package engine

import "math/rand"

// Symbol is a single tile value. The zero value is Empty.
type Symbol uint8

const (
	Empty Symbol = iota
	Tiger
	Diamond
	Slot
	Cherry
	Star
)

// SymbolCount is the size of the playable alphabet (Empty excluded).
const SymbolCount = 5

// Alphabet lists the playable symbols in draw order.
var Alphabet = [SymbolCount]Symbol{Tiger, Diamond, Slot, Cherry, Star}

// Valid reports whether s is a member of the alphabet.
func (s Symbol) Valid() bool {
	return s >= Tiger && s <= Star
}

// String returns the symbol name.
func (s Symbol) String() string {
	switch s {
	case Empty:
		return "empty"
	case Tiger:
		return "tiger"
	case Diamond:
		return "diamond"
	case Slot:
		return "slot"
	case Cherry:
		return "cherry"
	case Star:
		return "star"
	default:
		return "invalid"
	}
}

// Glyph returns the emoji used to draw the symbol. Every glyph occupies two
// terminal columns.
func (s Symbol) Glyph() rune {
	switch s {
	case Tiger:
		return '🐯'
	case Diamond:
		return '💎'
	case Slot:
		return '🎰'
	case Cherry:
		return '🍒'
	case Star:
		return '⭐'
	default:
		return '⬜'
	}
}

// Short returns the one-character fixture name of the symbol.
func (s Symbol) Short() byte {
	switch s {
	case Tiger:
		return 'T'
	case Diamond:
		return 'D'
	case Slot:
		return 'S'
	case Cherry:
		return 'C'
	case Star:
		return '*'
	default:
		return '.'
	}
}

// ParseSymbol maps a fixture character back to its symbol.
func ParseSymbol(b byte) (Symbol, bool) {
	switch b {
	case 'T', 't':
		return Tiger, true
	case 'D', 'd':
		return Diamond, true
	case 'S', 's':
		return Slot, true
	case 'C', 'c':
		return Cherry, true
	case '*':
		return Star, true
	case '.':
		return Empty, true
	default:
		return Empty, false
	}
}

// SymbolSource supplies new tiles for the initial fill and for refills.
type SymbolSource interface {
	Next() Symbol
}

// IntNSource is the part of *rand.Rand a RandSource needs.
type IntNSource interface {
	Intn(n int) int
}

// RandSource draws symbols uniformly and independently.
type RandSource struct {
	rng IntNSource
}

// NewRandSource creates a uniform source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// NewRandSourceFrom wraps an existing generator, sharing its state.
func NewRandSourceFrom(rng IntNSource) *RandSource {
	return &RandSource{rng: rng}
}

// Next returns a uniformly chosen alphabet member.
func (r *RandSource) Next() Symbol {
	return Alphabet[r.rng.Intn(SymbolCount)]
}

// SequenceSource replays a fixed list of symbols, wrapping around at the end.
type SequenceSource struct {
	seq []Symbol
	pos int
}

// NewSequenceSource creates a scripted source. An empty list yields Tiger
// forever; Empty entries are skipped so the source never produces holes.
func NewSequenceSource(symbols ...Symbol) *SequenceSource {
	seq := make([]Symbol, 0, len(symbols))
	for _, s := range symbols {
		if s.Valid() {
			seq = append(seq, s)
		}
	}
	if len(seq) == 0 {
		seq = append(seq, Tiger)
	}
	return &SequenceSource{seq: seq}
}

// Next returns the next scripted symbol.
func (s *SequenceSource) Next() Symbol {
	sym := s.seq[s.pos]
	s.pos = (s.pos + 1) % len(s.seq)
	return sym
}

// Drawn returns how many symbols have been handed out modulo the cycle length.
func (s *SequenceSource) Drawn() int {
	return s.pos
}
