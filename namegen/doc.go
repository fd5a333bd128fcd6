// Package namegen composes dungeon names such as "Zapomenutá krypta hrůzy"
// or "Věž zkázy" from four vocabulary tables.
//
// A candidate is drawn in three steps:
//
//   - With probability n/(2n-1), n being the number of adjective stems, an
//     adjective stem is drawn and glued to an agreeing noun ("Zaklet" +
//     "á krypta"). Otherwise a plain noun ("Krypta") is drawn.
//   - An adjective-based candidate gets a qualifier with probability
//     m/(floor(1.5(m-1))+1), m being the number of qualifiers (34/50 with
//     the built-in tables). A plain-noun candidate always gets one.
//   - The qualifier is appended after a single space.
//
// Generate keeps drawing until the candidate is non-empty, so it never fails
// and never returns "". Tables are validated once when a Generator is built.
//
// Usage:
//
//	name := namegen.Generate()
//
//	g, err := namegen.New(vocab, namegen.WithSeed(42))
//	if err != nil {
//		return err
//	}
//	name := g.Generate()
package namegen
