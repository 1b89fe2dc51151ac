package clean

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"

	"github.com/dmyersturnbull/tyranno/internal/model"
)

// Cleaner walks a project tree and removes paths matching the trash
// patterns from the run context's settings.
type Cleaner struct {
	ctx     *model.Context
	matcher gitignore.Matcher
}

// NewCleaner builds a Cleaner for the given run context. The trash
// patterns are compiled once; an empty list yields a cleaner that
// removes nothing.
func NewCleaner(ctx *model.Context) *Cleaner {
	patterns := make([]gitignore.Pattern, 0, len(ctx.Settings.Clean.Trash))
	for _, raw := range ctx.Settings.Clean.Trash {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(raw, nil))
	}
	return &Cleaner{ctx: ctx, matcher: gitignore.NewMatcher(patterns)}
}

// Run removes every matching path under the context root and returns
// the removed paths, relative to the root, in walk order. Under
// dry-run the same paths are returned but nothing is removed.
func (c *Cleaner) Run() ([]string, error) {
	root := c.ctx.Root()
	c.ctx.Log.Info("cleaning project tree", "root", root, "dry_run", c.ctx.DryRun)

	var trashed []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return model.WrapCLIError(model.ExitCleanError, fmt.Sprintf("failed to walk %s", path), walkErr)
		}
		if path == root {
			return nil
		}

		// Never reach into the repository's own metadata.
		if d.IsDir() && d.Name() == ".git" {
			return fs.SkipDir
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return model.WrapCLIError(model.ExitCleanError, fmt.Sprintf("failed to relativize %s", path), err)
		}
		c.ctx.Log.Trace("visiting", "path", rel)

		if !c.matcher.Match(splitPath(rel), d.IsDir()) {
			return nil
		}

		c.ctx.Log.Debug("matched trash pattern", "path", rel, "dir", d.IsDir())
		if !c.ctx.DryRun {
			if err := os.RemoveAll(path); err != nil {
				return model.WrapCLIError(model.ExitCleanError, fmt.Sprintf("failed to remove %s", rel), err)
			}
		}
		trashed = append(trashed, rel)

		// A removed directory has nothing left to visit.
		if d.IsDir() {
			return fs.SkipDir
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.ctx.Log.Success("clean finished", "trashed", len(trashed))
	return trashed, nil
}

// splitPath converts a relative path into the segment form go-git's
// gitignore matcher expects.
func splitPath(rel string) []string {
	return strings.Split(filepath.ToSlash(rel), "/")
}
