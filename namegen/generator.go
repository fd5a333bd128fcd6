package namegen

import (
	"fmt"
	"strings"
)

// maxRejections bounds how many candidates a reject filter may turn down
// before Generate gives up and returns the last one.
const maxRejections = 100

// Name is one composed candidate. Adjective is the bare stem and is empty
// when the candidate uses a plain noun; Qualifier may be empty.
type Name struct {
	Adjective string
	Noun      string
	Qualifier string
}

// HasAdjective reports whether n was composed from an adjective stem and an
// agreeing noun.
func (n Name) HasAdjective() bool { return n.Adjective != "" }

// String assembles the name. The stem and its agreeing noun are glued
// together ("Zaklet" + "á krypta"), the qualifier is separated by one space.
func (n Name) String() string {
	var b strings.Builder
	b.WriteString(n.Adjective)
	b.WriteString(n.Noun)
	if n.Qualifier != "" {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(n.Qualifier)
	}
	return strings.TrimSpace(b.String())
}

// odds is a Bernoulli draw that succeeds hits times out of total.
type odds struct {
	hits, total int
}

func (o odds) draw(src Source) bool {
	return src.IntN(o.total) < o.hits
}

func (o odds) probability() float64 {
	return float64(o.hits) / float64(o.total)
}

// adjectiveOdds reproduces drawing an index from [0, 2*(n-1)] and keeping it
// only when it falls inside a table of n entries.
func adjectiveOdds(n int) odds {
	return odds{hits: n, total: 2*(n-1) + 1}
}

// qualifierOdds reproduces drawing an index from [0, floor(1.5*(n-1))] and
// keeping it only when it falls inside a table of n entries.
func qualifierOdds(n int) odds {
	return odds{hits: n, total: 3*(n-1)/2 + 1}
}

// Generator composes names from a Vocabulary. It holds no mutable state of
// its own and is safe for concurrent use as long as its Source is.
type Generator struct {
	vocab    Vocabulary
	src      Source
	reject   func(name string) bool
	adjOdds  odds
	qualOdds odds
}

// Option configures a Generator.
type Option func(*Generator)

// WithSource makes the Generator draw from src instead of the process-wide
// random generator.
func WithSource(src Source) Option {
	return func(g *Generator) {
		g.src = src
	}
}

// WithSeed is a shorthand for WithSource(NewSeededSource(seed)).
func WithSeed(seed uint64) Option {
	return WithSource(NewSeededSource(seed))
}

// WithReject installs a filter: candidates for which reject returns true are
// discarded and drawn again, up to 100 times.
func WithReject(reject func(name string) bool) Option {
	return func(g *Generator) {
		g.reject = reject
	}
}

// New validates v and returns a Generator over a private copy of it.
func New(v Vocabulary, opts ...Option) (*Generator, error) {
	if err := v.Validate(); err != nil {
		return nil, fmt.Errorf("invalid vocabulary: %w", err)
	}

	g := &Generator{
		vocab: v.Clone(),
		src:   globalSource{},
	}
	for _, opt := range opts {
		opt(g)
	}
	g.adjOdds = adjectiveOdds(len(g.vocab.Adjectives))
	g.qualOdds = qualifierOdds(len(g.vocab.Qualifiers))
	return g, nil
}

// MustNew is like New but panics on an invalid vocabulary.
func MustNew(v Vocabulary, opts ...Option) *Generator {
	g, err := New(v, opts...)
	if err != nil {
		panic(err)
	}
	return g
}

// Vocabulary returns a copy of the tables g draws from.
func (g *Generator) Vocabulary() Vocabulary {
	return g.vocab.Clone()
}

// AdjectiveProbability is the chance that a candidate uses an adjective.
func (g *Generator) AdjectiveProbability() float64 {
	return g.adjOdds.probability()
}

// AdjectiveOdds returns the adjective probability as a fraction.
func (g *Generator) AdjectiveOdds() (hits, total int) {
	return g.adjOdds.hits, g.adjOdds.total
}

// QualifierOdds returns the qualifier probability as a fraction.
func (g *Generator) QualifierOdds() (hits, total int) {
	return g.qualOdds.hits, g.qualOdds.total
}

// QualifierProbability is the chance that an adjective-based candidate gets
// a qualifier. Plain-noun candidates always get one.
func (g *Generator) QualifierProbability() float64 {
	return g.qualOdds.probability()
}

// Compose draws exactly one candidate. The draws happen in a fixed order:
// adjective odds, stem (if any), noun, qualifier odds (adjective only),
// qualifier (if any).
func (g *Generator) Compose() Name {
	var n Name
	v := &g.vocab

	if g.adjOdds.draw(g.src) {
		n.Adjective = pick(g.src, v.Adjectives)
		n.Noun = pick(g.src, v.AgreeingNouns)
		if g.qualOdds.draw(g.src) {
			n.Qualifier = pick(g.src, v.Qualifiers)
		}
		return n
	}

	n.Noun = pick(g.src, v.PlainNouns)
	n.Qualifier = pick(g.src, v.Qualifiers)
	return n
}

// Generate returns a non-empty name. Empty candidates are drawn again until
// one is not; a candidate turned down by the reject filter is drawn again
// until the filter accepts one or gives up after 100 rejections.
func (g *Generator) Generate() string {
	rejected := 0
	for {
		name := g.Compose().String()
		if name == "" {
			continue
		}
		if g.reject == nil || !g.reject(name) {
			return name
		}
		rejected++
		if rejected >= maxRejections {
			return name
		}
	}
}

// Deterministic returns a stable name derived from id: the same id always
// yields the same name for the same vocabulary.
func (g *Generator) Deterministic(id string) string {
	d := *g
	d.src = NewSeededSource(seedFromID(id))
	return d.Generate()
}

func pick(src Source, table []string) string {
	return table[src.IntN(len(table))]
}

var defaultGenerator = MustNew(DefaultVocabulary())

// Default returns the Generator backing the package-level functions.
func Default() *Generator {
	return defaultGenerator
}

// Generate returns a random name from the built-in tables, e.g.
// "Zapomenutá krypta hrůzy" or "Věž zkázy".
func Generate() string {
	return defaultGenerator.Generate()
}

// Deterministic returns a stable name for id from the built-in tables.
func Deterministic(id string) string {
	return defaultGenerator.Deterministic(id)
}
