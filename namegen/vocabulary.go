package namegen

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Vocabulary holds the four tables a name is composed from. The YAML tags
// match the vocabulary file format.
type Vocabulary struct {
	// Adjective stems without their ending, e.g. "Zaklet".
	Adjectives []string `yaml:"adjectives,omitempty"`

	// Ending followed by the noun it agrees with, e.g. "á krypta". The
	// ending is glued to the stem without a space.
	AgreeingNouns []string `yaml:"agreeingNouns,omitempty"`

	// Fully inflected nouns used when no adjective is drawn, e.g. "Krypta".
	PlainNouns []string `yaml:"plainNouns,omitempty"`

	// Trailing genitive phrases, e.g. "hrůzy".
	Qualifiers []string `yaml:"qualifiers,omitempty"`
}

// DefaultVocabulary returns a copy of the built-in tables.
func DefaultVocabulary() Vocabulary {
	return Vocabulary{
		Adjectives:    slices.Clone(adjectives),
		AgreeingNouns: slices.Clone(agreeingNouns),
		PlainNouns:    slices.Clone(plainNouns),
		Qualifiers:    slices.Clone(qualifiers),
	}
}

// Clone returns a deep copy of v.
func (v Vocabulary) Clone() Vocabulary {
	return Vocabulary{
		Adjectives:    slices.Clone(v.Adjectives),
		AgreeingNouns: slices.Clone(v.AgreeingNouns),
		PlainNouns:    slices.Clone(v.PlainNouns),
		Qualifiers:    slices.Clone(v.Qualifiers),
	}
}

// Table names as they appear in the vocabulary file and in errors.
const (
	TableAdjectives    = "adjectives"
	TableAgreeingNouns = "agreeingNouns"
	TablePlainNouns    = "plainNouns"
	TableQualifiers    = "qualifiers"
)

// TableError describes one defect found by Validate. Index is -1 when the
// defect concerns the table as a whole.
type TableError struct {
	Table  string
	Index  int
	Reason string
}

func (e *TableError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %s", e.Table, e.Reason)
	}
	return fmt.Sprintf("%s[%d]: %s", e.Table, e.Index, e.Reason)
}

// Validate reports every defect in v, joined with errors.Join. A valid
// vocabulary guarantees that Generate never composes an empty or badly
// spaced name.
func (v Vocabulary) Validate() error {
	var errs []error
	check := func(table string, entries []string, extra func(string) string) {
		if len(entries) == 0 {
			errs = append(errs, &TableError{Table: table, Index: -1, Reason: "must not be empty"})
			return
		}
		for i, e := range entries {
			reason := entryDefect(e)
			if reason == "" && extra != nil {
				reason = extra(e)
			}
			if reason != "" {
				errs = append(errs, &TableError{Table: table, Index: i, Reason: reason})
			}
		}
	}

	check(TableAdjectives, v.Adjectives, nil)
	check(TableAgreeingNouns, v.AgreeingNouns, agreeingNounDefect)
	check(TablePlainNouns, v.PlainNouns, nil)
	check(TableQualifiers, v.Qualifiers, nil)

	return errors.Join(errs...)
}

func entryDefect(e string) string {
	switch {
	case e == "":
		return "empty entry"
	case strings.TrimSpace(e) != e:
		return fmt.Sprintf("%q has leading or trailing whitespace", e)
	case strings.Contains(e, "  "):
		return fmt.Sprintf("%q contains a doubled space", e)
	case strings.ContainsAny(e, "\t\n\r"):
		return fmt.Sprintf("%q contains a tab or newline", e)
	}
	return ""
}

// An agreeing noun starts with the lowercase ending that completes the
// adjective stem, then a space, then the noun.
func agreeingNounDefect(e string) string {
	r, _ := utf8.DecodeRuneInString(e)
	if !unicode.IsLower(r) {
		return fmt.Sprintf("%q must start with a lowercase agreement ending", e)
	}
	if !strings.Contains(e, " ") {
		return fmt.Sprintf("%q must separate the ending from the noun with a space", e)
	}
	return ""
}
