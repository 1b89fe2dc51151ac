package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	metasync "github.com/dmyersturnbull/tyranno/internal/sync"
)

// NewSyncCommand creates the "sync" cobra command.
func NewSyncCommand(global *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Sync project metadata between configured files",
		Long: `Rewrite lines tagged with :tyranno: marker comments across the files
listed in the settings (sync.targets), substituting ${...} references
from the project identity and user data.

Under --dry-run the planned substitutions are listed and nothing is
written.

Examples:
  tyranno sync
  tyranno sync --dry-run -v`,

		Args: cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(global)
		},
	}
}

// runSync drives the sync engine and reports the target count.
func runSync(global *globalFlags) error {
	ctx, err := newRunContext(global)
	if err != nil {
		return err
	}

	messenger.Info("Syncing metadata...")

	results, err := metasync.NewSyncer(ctx).Run()
	if err != nil {
		return err
	}

	if ctx.DryRun && len(results) > 0 {
		renderSyncTable(messenger.out, results)
	}

	messenger.Success(fmt.Sprintf("Done. Synced to %d targets.", len(results)))
	return nil
}

// renderSyncTable lists per-target sync results, shown under dry-run.
func renderSyncTable(w io.Writer, results []metasync.Result) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Target", "Managed lines", "Changed"})

	for _, r := range results {
		table.Append([]string{
			r.Path,
			strconv.Itoa(r.Replacements),
			strconv.FormatBool(r.Changed),
		})
	}
	table.Render()
}
