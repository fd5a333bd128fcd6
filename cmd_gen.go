package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/dungeonname/namegen"
	"github.com/maelvls/undent"
	"github.com/spf13/cobra"
)

type genOptions struct {
	count  int
	id     string
	seed   uint64
	asJSON bool
}

func genCmd(groupID string) *cobra.Command {
	opts := &genOptions{}

	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Print one or more dungeon names",
		Long: undent.Undent(`
			Print one or more dungeon names, one per line.

			With --id, the name is derived from the given identifier: the same
			identifier always gives the same name for the same vocabulary. With
			--seed, the whole sequence of names is reproducible.
		`),
		Example: undent.Undent(`
			dungeonname gen
			dungeonname gen -n 10
			dungeonname gen --id campaign-42
			dungeonname gen -n 3 --seed 7 --json
		`),
		Args:          cobra.NoArgs,
		GroupID:       groupID,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			seedSet := cmd.Flags().Changed("seed")
			if opts.id != "" && (seedSet || cmd.Flags().Changed("count")) {
				return errutil.Fixable(fmt.Errorf("--id cannot be used with --seed or --count"))
			}
			if opts.count < 1 {
				return errutil.Fixable(fmt.Errorf("--count must be at least 1, got %d", opts.count))
			}

			conf, err := getToolConfig(cmd)
			if err != nil {
				return err
			}

			var genOpts []namegen.Option
			if seedSet {
				genOpts = append(genOpts, namegen.WithSeed(opts.seed))
			}
			g, err := newGenerator(conf, genOpts...)
			if err != nil {
				return err
			}

			return runGen(cmd.OutOrStdout(), g, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "Number of names to print")
	cmd.Flags().StringVar(&opts.id, "id", "", "Derive a stable name from this identifier")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed the random generator to get a reproducible sequence")
	cmd.Flags().BoolVar(&opts.asJSON, "json", false, "Print a JSON array instead of one name per line")

	return cmd
}

func runGen(w io.Writer, g *namegen.Generator, opts *genOptions) error {
	var names []string
	if opts.id != "" {
		names = append(names, g.Deterministic(opts.id))
	} else {
		for range opts.count {
			names = append(names, g.Generate())
		}
	}

	if opts.asJSON {
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(names); err != nil {
			return fmt.Errorf("while encoding names: %w", err)
		}
		return nil
	}

	for _, name := range names {
		fmt.Fprintln(w, name)
	}
	return nil
}
