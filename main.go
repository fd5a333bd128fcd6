package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/maelvls/dungeonname/errutil"
	"github.com/maelvls/undent"
	"github.com/njayp/ophis"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=...".
var version = ""

func userAgent() string {
	v := version
	if v == "" {
		v = "dev"
	}
	return "dungeonname/" + v
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dungeonname",
		Short: "Generate names for dungeons, crypts and other dreadful places.",
		Long: undent.Undent(`
			Generate names for dungeons, crypts and other dreadful places, such
			as "Zapomenutá krypta hrůzy" or "Věž zkázy".

			Names are composed from four vocabulary tables: adjective stems,
			nouns that agree with them, plain nouns, and qualifiers. The
			built-in tables are Czech; use --vocab to load your own.

			Environment variables:
			  DUNGEONNAME_VOCAB     same as --vocab
			  DUNGEONNAME_API_URL   same as --api-url (default http://localhost:8080)
			  DUNGEONNAME_LISTEN    same as --listen (default :8080)
			  DUNGEONNAME_DEBUG     same as --debug
		`),
		Example: undent.Undent(`
			dungeonname gen
			dungeonname gen -n 5 --json
			dungeonname ui
			dungeonname serve --listen :9000
		`),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "Print debug logs, including HTTP requests and responses")
	cmd.PersistentFlags().String("vocab", "", "Path to a YAML vocabulary file; missing tables fall back to the built-in ones")

	cmd.AddGroup(
		&cobra.Group{ID: "names", Title: "Names"},
		&cobra.Group{ID: "api", Title: "API"},
	)
	cmd.AddCommand(
		genCmd("names"),
		uiCmd("names"),
		vocabCmd("names"),
		serveCmd("api"),
		apiCmd("api"),
		ophis.Command(nil),
	)
	return cmd
}

func main() {
	err := fang.Execute(context.Background(), rootCmd(),
		fang.WithVersion(version),
		fang.WithErrorHandler(errorHandler),
		fang.WithNotifySignal(os.Interrupt, syscall.SIGTERM),
	)
	if err != nil {
		os.Exit(1)
	}
}

// errorHandler prints the error the way fang does, plus a hint when the user
// can fix the problem on their side.
func errorHandler(w io.Writer, styles fang.Styles, err error) {
	fang.DefaultErrorHandler(w, styles, err)
	if errutil.ErrIsFixable(err) {
		fmt.Fprintln(w, "Fix the input mentioned above and run the command again.")
	}
}
