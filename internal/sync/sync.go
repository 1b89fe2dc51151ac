package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/dmyersturnbull/tyranno/internal/model"
)

// markerPattern matches a marker comment line. Group 1 is the
// template; an optional trailing "-->" closes HTML-style markers.
var markerPattern = regexp.MustCompile(`^\s*(?:#|//|;|--|<!--)\s*:tyranno:\s*(.*?)\s*(?:-->)?\s*$`)

// varPattern matches a ${dotted.path} substitution inside a template.
var varPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// Result describes one synchronized target file.
type Result struct {
	// Path is the file's path relative to the project root.
	Path string

	// Replacements is the number of marker-managed lines in the file.
	Replacements int

	// Changed reports whether the rendered content differs from what
	// was on disk.
	Changed bool
}

// Syncer rewrites marker-managed lines across the configured targets.
type Syncer struct {
	ctx  *model.Context
	vars map[string]string
}

// NewSyncer builds a Syncer for the given run context.
func NewSyncer(ctx *model.Context) *Syncer {
	return &Syncer{ctx: ctx, vars: ctx.Settings.Vars()}
}

// Run processes every file matched by the sync.targets globs and
// returns one Result per file that contains at least one marker.
// Files are written only when changed and not under dry-run.
func (s *Syncer) Run() ([]Result, error) {
	root := s.ctx.Root()
	s.ctx.Log.Info("syncing metadata", "root", root, "dry_run", s.ctx.DryRun)

	paths, err := s.expandTargets(root)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, path := range paths {
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			rel = path
		}

		result, err := s.syncFile(path, rel)
		if err != nil {
			return nil, err
		}
		if result != nil {
			results = append(results, *result)
		}
	}

	s.ctx.Log.Success("sync finished", "targets", len(results))
	return results, nil
}

// expandTargets resolves the target globs against root into a sorted,
// deduplicated list of file paths.
func (s *Syncer) expandTargets(root string) ([]string, error) {
	seen := map[string]bool{}
	var paths []string

	for _, pattern := range s.ctx.Settings.Sync.Targets {
		matches, err := filepath.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
		if err != nil {
			return nil, model.WrapCLIError(model.ExitSyncError, fmt.Sprintf("invalid sync target pattern %q", pattern), err)
		}
		if len(matches) == 0 {
			s.ctx.Log.Warn("sync target matched nothing", "pattern", pattern)
			continue
		}
		for _, match := range matches {
			info, statErr := os.Stat(match)
			if statErr != nil || info.IsDir() {
				continue
			}
			if !seen[match] {
				seen[match] = true
				paths = append(paths, match)
			}
		}
	}

	sort.Strings(paths)
	return paths, nil
}

// syncFile rewrites one target. Returns nil when the file contains no
// rewritable markers. A marker is skipped with a warning when nothing
// follows it, or when the following line is itself a marker (rewriting
// would destroy the second marker).
func (s *Syncer) syncFile(path, rel string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitSyncError, fmt.Sprintf("failed to read sync target %s", rel), err)
	}

	lines := strings.Split(string(data), "\n")
	replacements := 0

	for i, line := range lines {
		m := markerPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		// A trailing empty segment after the final newline is not a
		// real line; a marker above it dangles just like one on the
		// last line of an unterminated file.
		if i+1 >= len(lines) || (i+2 == len(lines) && lines[i+1] == "") {
			s.ctx.Log.Warn("marker on last line has nothing to rewrite", "file", rel, "line", i+1)
			continue
		}
		if markerPattern.MatchString(lines[i+1]) {
			s.ctx.Log.Warn("marker directly below another marker; not rewriting", "file", rel, "line", i+1)
			continue
		}

		rendered, err := s.render(m[1], rel, i+1)
		if err != nil {
			return nil, err
		}

		// Keep a CRLF line ending out of the rewrite so files with
		// Windows endings stay consistent.
		next, eol := lines[i+1], ""
		if strings.HasSuffix(next, "\r") {
			next, eol = next[:len(next)-1], "\r"
		}
		indent := leadingWhitespace(next)
		replaced := indent + rendered + eol
		if replaced != lines[i+1] {
			s.ctx.Log.Debug("rewriting managed line", "file", rel, "line", i+2, "value", rendered)
		}
		lines[i+1] = replaced
		replacements++
	}

	if replacements == 0 {
		s.ctx.Log.Trace("no markers in target", "file", rel)
		return nil, nil
	}

	updated := strings.Join(lines, "\n")
	changed := updated != string(data)

	if changed && !s.ctx.DryRun {
		info, statErr := os.Stat(path)
		mode := os.FileMode(0o644)
		if statErr == nil {
			mode = info.Mode()
		}
		if err := os.WriteFile(path, []byte(updated), mode); err != nil {
			return nil, model.WrapCLIError(model.ExitSyncError, fmt.Sprintf("failed to write sync target %s", rel), err)
		}
	}

	return &Result{Path: rel, Replacements: replacements, Changed: changed}, nil
}

// render substitutes ${key} references in template from the settings
// vars. An unknown key is an error naming the key and its location.
func (s *Syncer) render(template, rel string, lineNo int) (string, error) {
	var missing []string
	rendered := varPattern.ReplaceAllStringFunc(template, func(match string) string {
		key := strings.TrimSpace(varPattern.FindStringSubmatch(match)[1])
		value, ok := s.vars[key]
		if !ok {
			missing = append(missing, key)
			return match
		}
		return value
	})

	if len(missing) > 0 {
		return "", model.NewCLIError(
			model.ExitSyncError,
			fmt.Sprintf("unknown substitution %q in %s line %d", strings.Join(missing, ", "), rel, lineNo),
		)
	}
	return rendered, nil
}

// leadingWhitespace returns the run of spaces and tabs opening s.
func leadingWhitespace(s string) string {
	for i, r := range s {
		if r != ' ' && r != '\t' {
			return s[:i]
		}
	}
	return s
}
