package namegen

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultVocabulary(t *testing.T) {
	v := DefaultVocabulary()
	require.NoError(t, v.Validate())

	assert.Len(t, v.Adjectives, 27)
	assert.Len(t, v.AgreeingNouns, 40)
	assert.Len(t, v.PlainNouns, 40)
	assert.Len(t, v.Qualifiers, 34)

	assert.Equal(t, "Zaklet", v.Adjectives[0])
	assert.Equal(t, "á krypta", v.AgreeingNouns[0])
	assert.Equal(t, "hrůzy", v.Qualifiers[0])

	// Each call hands out its own copy.
	v.Adjectives[0] = "Jin"
	assert.Equal(t, "Zaklet", DefaultVocabulary().Adjectives[0])
}

func TestVocabulary_Validate(t *testing.T) {
	valid := func() Vocabulary {
		return Vocabulary{
			Adjectives:    []string{"Temn"},
			AgreeingNouns: []string{"á věž"},
			PlainNouns:    []string{"Věž"},
			Qualifiers:    []string{"zkázy"},
		}
	}

	tests := []struct {
		name      string
		mutate    func(v *Vocabulary)
		wantTable string
		wantIndex int
		wantErr   string
	}{
		{
			name:      "empty adjectives",
			mutate:    func(v *Vocabulary) { v.Adjectives = nil },
			wantTable: TableAdjectives,
			wantIndex: -1,
			wantErr:   "adjectives: must not be empty",
		},
		{
			name:      "empty qualifiers",
			mutate:    func(v *Vocabulary) { v.Qualifiers = []string{} },
			wantTable: TableQualifiers,
			wantIndex: -1,
			wantErr:   "qualifiers: must not be empty",
		},
		{
			name:      "empty entry",
			mutate:    func(v *Vocabulary) { v.PlainNouns = append(v.PlainNouns, "") },
			wantTable: TablePlainNouns,
			wantIndex: 1,
			wantErr:   "plainNouns[1]: empty entry",
		},
		{
			name:      "stem with trailing space",
			mutate:    func(v *Vocabulary) { v.Adjectives[0] = "Temn " },
			wantTable: TableAdjectives,
			wantIndex: 0,
			wantErr:   `adjectives[0]: "Temn " has leading or trailing whitespace`,
		},
		{
			name:      "doubled space",
			mutate:    func(v *Vocabulary) { v.Qualifiers[0] = "krále  goblinů" },
			wantTable: TableQualifiers,
			wantIndex: 0,
			wantErr:   `qualifiers[0]: "krále  goblinů" contains a doubled space`,
		},
		{
			name:      "tab in entry",
			mutate:    func(v *Vocabulary) { v.PlainNouns[0] = "Věž\tzkázy" },
			wantTable: TablePlainNouns,
			wantIndex: 0,
			wantErr:   `plainNouns[0]: "Věž\tzkázy" contains a tab or newline`,
		},
		{
			name:      "agreeing noun without ending",
			mutate:    func(v *Vocabulary) { v.AgreeingNouns[0] = "Věž" },
			wantTable: TableAgreeingNouns,
			wantIndex: 0,
			wantErr:   `agreeingNouns[0]: "Věž" must start with a lowercase agreement ending`,
		},
		{
			name:      "agreeing noun without space",
			mutate:    func(v *Vocabulary) { v.AgreeingNouns[0] = "ávěž" },
			wantTable: TableAgreeingNouns,
			wantIndex: 0,
			wantErr:   `agreeingNouns[0]: "ávěž" must separate the ending from the noun with a space`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := valid()
			tt.mutate(&v)

			err := v.Validate()
			require.Error(t, err)
			assert.EqualError(t, err, tt.wantErr)

			var tableErr *TableError
			require.True(t, errors.As(err, &tableErr))
			assert.Equal(t, tt.wantTable, tableErr.Table)
			assert.Equal(t, tt.wantIndex, tableErr.Index)
		})
	}
}

func TestVocabulary_ValidateReportsEveryDefect(t *testing.T) {
	v := Vocabulary{
		AgreeingNouns: []string{"Krypta", "á krypta", " á hrobka"},
		PlainNouns:    []string{"Krypta"},
	}

	err := v.Validate()
	require.Error(t, err)
	assert.EqualError(t, err, `adjectives: must not be empty
agreeingNouns[0]: "Krypta" must start with a lowercase agreement ending
agreeingNouns[2]: " á hrobka" has leading or trailing whitespace
qualifiers: must not be empty`)
}

func TestNew_InvalidVocabulary(t *testing.T) {
	g, err := New(Vocabulary{})
	require.Error(t, err)
	assert.Nil(t, g)
	assert.ErrorContains(t, err, "invalid vocabulary: adjectives: must not be empty")

	assert.Panics(t, func() { MustNew(Vocabulary{}) })
}

func TestNew_SingleEntryTables(t *testing.T) {
	// With one entry per table every branch is certain.
	g := MustNew(Vocabulary{
		Adjectives:    []string{"Temn"},
		AgreeingNouns: []string{"á věž"},
		PlainNouns:    []string{"Věž"},
		Qualifiers:    []string{"zkázy"},
	}, WithSeed(3))

	assert.Equal(t, 1.0, g.AdjectiveProbability())
	assert.Equal(t, 1.0, g.QualifierProbability())
	for i := 0; i < 20; i++ {
		assert.Equal(t, "Temná věž zkázy", g.Generate())
	}
}
