// Package cli — cards.go implements the "atmospec cards" command.
//
// cards is a dry run: it performs parameter translation and card-deck
// formatting and prints the exact solver input file, without staging a
// working directory or invoking the solver. It is the fastest way to
// inspect what a parameter set actually asks the solver to do.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aoyama-geo/atmospec/internal/smarts"
)

// NewCardsCommand creates the "cards" cobra command.
func NewCardsCommand() *cobra.Command {
	flags := &modelFlags{}

	cmd := &cobra.Command{
		Use:   "cards",
		Short: "Print the solver input card deck without running the solver",
		Long: `Translate the configured parameters into the SMARTS short-code vocabulary,
format them as the solver's card deck, and print the deck to stdout.

No working directory is created and no process is spawned, so this works
without the solver installed. Inline comments after "!" are for human
traceability only; the solver ignores them.

Examples:
  atmospec cards
  atmospec cards --params scene.jsonc --preset moderate
  atmospec cards --lat 44 --lon 2 --time 2020-02-11T12:00:00Z`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runCards(cmd, flags)
		},
	}

	addModelFlags(cmd, flags)

	return cmd
}

// runCards builds the parameter set and prints the formatted deck. The
// resource root is deliberately not required here: the dry run never
// touches the filesystem.
func runCards(cmd *cobra.Command, flags *modelFlags) error {
	set, err := flags.buildSet(cmd)
	if err != nil {
		return err
	}

	m := smarts.New(smarts.Config{
		Params: set,
		WarnUnknown: func(name string) {
			VerboseLog("unknown parameter %q ignored", name)
		},
	})

	deck, err := m.Cards()
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), deck.String())
	return nil
}
