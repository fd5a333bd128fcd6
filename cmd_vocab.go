package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/fatih/color"
	"github.com/goccy/go-yaml/lexer"
	"github.com/goccy/go-yaml/printer"
	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/maelvls/dungeonname/vocabfile"
	"github.com/maelvls/undent"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var allTables = []string{
	namegen.TableAdjectives,
	namegen.TableAgreeingNouns,
	namegen.TablePlainNouns,
	namegen.TableQualifiers,
}

func vocabCmd(groupID string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Inspect, check and scaffold vocabulary files",
		Long: undent.Undent(`
			A vocabulary file is a YAML document with up to four tables:

			  adjectives:     adjective stems without their ending ("Zaklet")
			  agreeingNouns:  an ending, a space, and the noun it agrees with ("á krypta")
			  plainNouns:     nouns used without an adjective ("Krypta")
			  qualifiers:     phrases appended after the noun ("hrůzy")

			Tables missing from the file are taken from the built-in ones. Use
			it with --vocab or DUNGEONNAME_VOCAB.
		`),
		GroupID:       groupID,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.AddCommand(
		vocabShowCmd(),
		vocabCheckCmd(),
		vocabInitCmd(),
	)
	return cmd
}

func vocabShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the vocabulary in use as YAML",
		Long: undent.Undent(`
			Print the vocabulary in use as YAML: the built-in tables, or the
			ones from --vocab merged with the built-in tables.
		`),
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getToolConfig(cmd)
			if err != nil {
				return err
			}
			v, err := loadVocabulary(conf)
			if err != nil {
				return err
			}
			data, err := vocabfile.Marshal(v)
			if err != nil {
				return fmt.Errorf("while marshalling vocabulary: %w", err)
			}
			coloredYAMLPrint(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	return cmd
}

func vocabCheckCmd() *cobra.Command {
	var (
		samples int
		seed    uint64
	)
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate a vocabulary file and show what it produces",
		Long: undent.Undent(`
			Validate a vocabulary file, then print the size of each table, the
			odds of each branch, the number of distinct names, and a few sample
			names. Without a file, the vocabulary in use is checked.
		`),
		Example: undent.Undent(`
			dungeonname vocab check my-words.yaml
			dungeonname vocab check my-words.yaml --samples 10 --seed 3
		`),
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, err := getToolConfig(cmd)
			if err != nil {
				return err
			}
			if len(args) == 1 {
				conf.VocabPath = args[0]
			}
			g, err := newGenerator(conf, namegen.WithSeed(seed))
			if err != nil {
				return err
			}
			return printVocabReport(cmd.OutOrStdout(), g, samples)
		},
	}
	cmd.Flags().IntVar(&samples, "samples", 5, "Number of sample names to print")
	cmd.Flags().Uint64Var(&seed, "seed", 1, "Seed used for the sample names")
	return cmd
}

func printVocabReport(w io.Writer, g *namegen.Generator, samples int) error {
	v := g.Vocabulary()
	adjHits, adjTotal := g.AdjectiveOdds()
	qualHits, qualTotal := g.QualifierOdds()

	fmt.Fprintf(w, "%-16s %d\n", namegen.TableAdjectives+":", len(v.Adjectives))
	fmt.Fprintf(w, "%-16s %d\n", namegen.TableAgreeingNouns+":", len(v.AgreeingNouns))
	fmt.Fprintf(w, "%-16s %d\n", namegen.TablePlainNouns+":", len(v.PlainNouns))
	fmt.Fprintf(w, "%-16s %d\n", namegen.TableQualifiers+":", len(v.Qualifiers))
	fmt.Fprintf(w, "%-16s %.1f%% (%d/%d)\n", "with adjective:", 100*g.AdjectiveProbability(), adjHits, adjTotal)
	fmt.Fprintf(w, "%-16s %.1f%% (%d/%d) after an adjective, always after a plain noun\n", "with qualifier:", 100*g.QualifierProbability(), qualHits, qualTotal)
	fmt.Fprintf(w, "%-16s %d\n", "distinct names:", distinctNames(v))

	if samples > 0 {
		fmt.Fprintln(w, "samples:")
		for range samples {
			fmt.Fprintf(w, "  %s\n", g.Generate())
		}
	}
	return nil
}

// distinctNames counts the distinct strings the tables can produce.
func distinctNames(v namegen.Vocabulary) int {
	seen := make(map[string]struct{})
	for _, adj := range v.Adjectives {
		for _, noun := range v.AgreeingNouns {
			n := namegen.Name{Adjective: adj, Noun: noun}
			seen[n.String()] = struct{}{}
			for _, q := range v.Qualifiers {
				n.Qualifier = q
				seen[n.String()] = struct{}{}
			}
		}
	}
	for _, noun := range v.PlainNouns {
		for _, q := range v.Qualifiers {
			seen[namegen.Name{Noun: noun, Qualifier: q}.String()] = struct{}{}
		}
	}
	return len(seen)
}

func vocabInitCmd() *cobra.Command {
	var (
		tables []string
		force  bool
	)
	cmd := &cobra.Command{
		Use:   "init FILE",
		Short: "Write a vocabulary file to start from",
		Long: undent.Undent(`
			Write a vocabulary file containing a copy of the built-in tables so
			that you can edit them. Tables left out of the file keep using the
			built-in ones.

			Without --table, you are asked which tables to include when running
			in a terminal; otherwise all four tables are written.
		`),
		Example: undent.Undent(`
			dungeonname vocab init my-words.yaml
			dungeonname vocab init my-words.yaml --table qualifiers
		`),
		Args:          cobra.ExactArgs(1),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(tables) == 0 {
				var err error
				tables, err = selectTables()
				if err != nil {
					return err
				}
			}
			return writeVocabFile(args[0], tables, force)
		},
	}
	cmd.Flags().StringSliceVar(&tables, "table", nil, fmt.Sprintf("Table to include, can be repeated (%s)", strings.Join(allTables, ", ")))
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite the file if it already exists")
	return cmd
}

// selectTables asks which tables to include, or returns all of them when
// stdin is not a terminal.
func selectTables() ([]string, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return allTables, nil
	}

	var opts []huh.Option[string]
	for _, table := range allTables {
		opts = append(opts, huh.NewOption(table, table).Selected(true))
	}

	var selected []string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().Options(opts...).Value(&selected),
		).Title("Select the tables to copy into the file"),
	)
	if err := form.Run(); err != nil {
		return nil, fmt.Errorf("while selecting tables: %w", err)
	}
	if len(selected) == 0 {
		return nil, errutil.Fixable(errors.New("no table selected"))
	}
	return selected, nil
}

func writeVocabFile(path string, tables []string, force bool) error {
	v, err := pickTables(tables)
	if err != nil {
		return err
	}
	data, err := vocabfile.Marshal(v)
	if err != nil {
		return fmt.Errorf("while marshalling vocabulary: %w", err)
	}

	flags := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flags, 0o644)
	switch {
	case errors.Is(err, fs.ErrExist):
		return errutil.Fixable(fmt.Errorf("%s already exists, use --force to overwrite it", path))
	case err != nil:
		return fmt.Errorf("while creating vocabulary file: %w", err)
	}
	defer f.Close()

	if _, err := f.Write(data); err != nil {
		return fmt.Errorf("while writing %s: %w", path, err)
	}
	return f.Close()
}

// pickTables copies the named built-in tables into an otherwise empty
// Vocabulary.
func pickTables(tables []string) (namegen.Vocabulary, error) {
	def := namegen.DefaultVocabulary()
	var v namegen.Vocabulary
	for _, table := range tables {
		switch table {
		case namegen.TableAdjectives:
			v.Adjectives = def.Adjectives
		case namegen.TableAgreeingNouns:
			v.AgreeingNouns = def.AgreeingNouns
		case namegen.TablePlainNouns:
			v.PlainNouns = def.PlainNouns
		case namegen.TableQualifiers:
			v.Qualifiers = def.Qualifiers
		default:
			return namegen.Vocabulary{}, errutil.Fixable(fmt.Errorf("unknown table %q, expected one of: %s", table, strings.Join(allTables, ", ")))
		}
	}
	return v, nil
}

// coloredYAMLPrint writes the YAML to w, colored when w is a terminal.
func coloredYAMLPrint(w io.Writer, yamlStr string) {
	f, ok := w.(*os.File)
	if !ok || !isatty.IsTerminal(f.Fd()) {
		fmt.Fprint(w, yamlStr)
		return
	}
	_, _ = colorable.NewColorable(f).Write([]byte(colorizeYAML(yamlStr)))
}

func colorizeYAML(yamlStr string) string {
	const escape = "\x1b"
	format := func(attr color.Attribute) string {
		return fmt.Sprintf("%s[%dm", escape, attr)
	}
	prop := func(attr color.Attribute) printer.PrintFunc {
		return func() *printer.Property {
			return &printer.Property{
				Prefix: format(attr),
				Suffix: format(color.Reset),
			}
		}
	}

	var p printer.Printer
	p.Bool = prop(color.FgHiMagenta)
	p.Number = prop(color.FgHiMagenta)
	p.MapKey = prop(color.FgHiCyan)
	p.Anchor = prop(color.FgHiYellow)
	p.Alias = prop(color.FgHiYellow)
	p.String = prop(color.FgHiGreen)
	p.Comment = prop(color.FgHiBlack)
	out := p.PrintTokens(lexer.Tokenize(yamlStr))

	// The printer drops the final newline.
	if strings.HasSuffix(yamlStr, "\n") && !strings.HasSuffix(out, "\n") {
		out += "\n"
	}
	return out
}
