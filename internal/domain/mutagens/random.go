package mutagens

import (
	"hash/fnv"
	"math/rand/v2"
	"strconv"
	"strings"

	"gauntlet.dev/pkg/gauntlet/internal/ir"
	m "gauntlet.dev/pkg/gauntlet/internal/model"
)

// Alphabet is the character pool for char and string replacements.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// StringLength is the length of generated replacement strings.
const StringLength = 32

// Generator hands out random sources keyed by candidate position, so two
// analyses of byte-identical programs draw identical replacements.
type Generator struct {
	seed uint64
}

// NewGenerator creates a Generator for a session seed.
func NewGenerator(seed uint64) *Generator {
	return &Generator{seed: seed}
}

// For returns the random source of the candidate at position within
// (member, group).
func (g *Generator) For(member string, group m.GroupID, position int) *Draw {
	h := fnv.New64a()
	_, _ = h.Write([]byte(member))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(group))
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(strconv.Itoa(position)))

	return &Draw{rng: rand.New(rand.NewPCG(g.seed, h.Sum64()))}
}

// Draw produces replacement values that never equal the original.
type Draw struct {
	rng *rand.Rand
}

// ChangeBool returns the negation of b.
func (d *Draw) ChangeBool(b bool) bool {
	return !b
}

// ChangeChar draws from alphabet until the result differs from r. If the
// alphabet holds no other character, r is returned unchanged.
func (d *Draw) ChangeChar(r rune, alphabet string) rune {
	pool := []rune(alphabet)

	if !strings.ContainsFunc(alphabet, func(c rune) bool { return c != r }) {
		return r
	}

	for {
		c := pool[d.rng.IntN(len(pool))]
		if c != r {
			return c
		}
	}
}

// RandomString returns a fresh string of n characters from alphabet.
func (d *Draw) RandomString(n int, alphabet string) string {
	pool := []rune(alphabet)

	var b strings.Builder

	for range n {
		b.WriteRune(pool[d.rng.IntN(len(pool))])
	}

	return b.String()
}

// ChangeNumber draws integers converted to v's width until the result
// differs from v. Floats must also differ numerically, so -0.0 never
// becomes +0.0.
func (d *Draw) ChangeNumber(v ir.Value) ir.Value {
	for {
		var raw int64
		if v.Type.Bits() == 64 && !v.Type.IsFloat() {
			raw = d.rng.Int64()
		} else {
			raw = int64(d.rng.Int32())
		}

		if d.rng.IntN(2) == 0 {
			raw = -raw
		}

		next := ir.FromInt64(v.Type, raw)
		if next == v {
			continue
		}

		if v.Type.IsFloat() && next.AsFloat() == v.AsFloat() {
			continue
		}

		return next
	}
}

// Change returns a value of the same type as v that is not equal to v.
// Unsupported types are returned unchanged with ok=false.
func (d *Draw) Change(v ir.Value) (ir.Value, bool) {
	switch {
	case v.Type == ir.TypeBool:
		return ir.Bool(d.ChangeBool(v.AsBool())), true
	case v.Type == ir.TypeChar:
		return ir.Char(d.ChangeChar(v.AsChar(), Alphabet)), true
	case v.Type == ir.TypeString:
		return ir.String(d.RandomString(StringLength, Alphabet)), true
	case v.Type.IsNumeric():
		return d.ChangeNumber(v), true
	default:
		return v, false
	}
}
