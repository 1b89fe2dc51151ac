package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/dmyersturnbull/tyranno/internal/clean"
)

// NewCleanCommand creates the "clean" cobra command.
func NewCleanCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "clean",
		Short: "Removes unwanted files",
		Long: `Remove files and directories matching the trash patterns in the
settings (clean.trash). Patterns use gitignore syntax; .git is never
entered.

Under --dry-run the matching paths are listed and nothing is removed.

Examples:
  tyranno clean
  tyranno clean --dry-run`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runClean(global)
		},
	}
}

// runClean drives the cleaner and reports the removed-path count.
func runClean(global *globalFlags) error {
	ctx, err := newRunContext(global)
	if err != nil {
		return err
	}

	trashed, err := clean.NewCleaner(ctx).Run()
	if err != nil {
		return err
	}

	if ctx.DryRun && len(trashed) > 0 {
		renderCleanTable(messenger.out, trashed)
	}

	messenger.Info(fmt.Sprintf("Trashed %d paths.", len(trashed)))
	return nil
}

// renderCleanTable lists the matched paths, shown under dry-run.
func renderCleanTable(w io.Writer, trashed []string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Would remove"})

	for _, path := range trashed {
		table.Append([]string{path})
	}
	table.Render()
}
