package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/dmyersturnbull/tyranno/internal/scaffold"
)

// newFlags holds the flag values for the new command.
type newFlags struct {
	name    string // --name: full project name
	license string // --license: SPDX id for the LICENSE file
}

// NewNewCommand creates the "new" cobra command.
func NewNewCommand(global *globalFlags) *cobra.Command {
	flags := &newFlags{}

	cmd := &cobra.Command{
		Use:   "new [PATH]",
		Short: "Scaffold a new project repository",
		Long: `Create a new project skeleton: README.md, LICENSE, .gitignore, a
.tyranno.yaml settings file, and an initialized git repository with an
initial commit.

With a PATH argument the project is created there; otherwise it is
created under ./<name>.

Examples:
  tyranno new my-tool
  tyranno new --name genomics-pipeline --license MIT
  tyranno new ~/code/widget --license BSD-3-Clause --dry-run`,

		Args: cobra.MaximumNArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			return runNew(cmd, args, global, flags)
		},
	}

	cmd.Flags().StringVar(&flags.name, "name", "my-project", "Full project name")
	cmd.Flags().StringVar(&flags.license, "license", "Apache-2.0", "SPDX license id")

	return cmd
}

// runNew scaffolds the project. Invoked with neither a PATH nor an
// explicit --name there is nothing to do: it returns success before
// the run context is ever built.
func runNew(cmd *cobra.Command, args []string, global *globalFlags, flags *newFlags) error {
	nameSet := cmd.Flags().Changed("name")
	if len(args) == 0 && !nameSet {
		return nil
	}

	ctx, err := newRunContext(global)
	if err != nil {
		return err
	}

	root, name := resolveProject(ctx.Cwd, args, flags.name, nameSet)

	scaffolder := scaffold.NewScaffolder(ctx)
	err = wait("Scaffolding "+name, stdoutIsTerminal() && !ctx.DryRun, func() error {
		_, scaffoldErr := scaffolder.Scaffold(scaffold.Spec{
			Root:      root,
			Name:      name,
			LicenseID: flags.license,
		})
		return scaffoldErr
	})
	if err != nil {
		return err
	}

	messenger.Info(fmt.Sprintf("Done! Created a new repository under %s", name))
	messenger.Success("See " + docsURL)
	return nil
}

// resolveProject decides the project root and name from the optional
// PATH argument and the --name flag. A given PATH is the root; its
// basename names the project unless --name was set explicitly. With
// no PATH, the project goes under cwd/<name>.
func resolveProject(cwd string, args []string, name string, nameSet bool) (root, projectName string) {
	if len(args) > 0 {
		root = args[0]
		if !filepath.IsAbs(root) {
			root = filepath.Join(cwd, root)
		}
		if nameSet {
			return root, name
		}
		return root, filepath.Base(root)
	}
	return filepath.Join(cwd, name), name
}
