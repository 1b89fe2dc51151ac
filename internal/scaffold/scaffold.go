package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"gopkg.in/yaml.v3"

	"github.com/dmyersturnbull/tyranno/internal/config"
	"github.com/dmyersturnbull/tyranno/internal/model"
)

// Spec names what to scaffold and where.
type Spec struct {
	// Root is the directory to create the project in.
	Root string

	// Name is the project name.
	Name string

	// LicenseID is the SPDX id for the LICENSE file.
	LicenseID string
}

// Scaffolder creates project skeletons.
type Scaffolder struct {
	ctx *model.Context

	// now is stubbed in tests to pin the copyright year.
	now func() time.Time
}

// NewScaffolder builds a Scaffolder for the given run context.
func NewScaffolder(ctx *model.Context) *Scaffolder {
	return &Scaffolder{ctx: ctx, now: time.Now}
}

// templateData is the value rendered into the file templates.
type templateData struct {
	Name        string
	Version     string
	Description string
	License     License
	Year        int
}

// Scaffold creates the project skeleton described by spec and returns
// the created file paths relative to spec.Root, in creation order.
// Under dry-run the same plan is returned without touching anything.
func (s *Scaffolder) Scaffold(spec Spec) ([]string, error) {
	lic, err := LookupLicense(spec.LicenseID)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitScaffoldError, "cannot scaffold project", err)
	}

	root, err := filepath.Abs(spec.Root)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitScaffoldError, "failed to resolve project root", err)
	}

	if err := checkTarget(root); err != nil {
		return nil, err
	}

	data := templateData{
		Name:    spec.Name,
		Version: "0.1.0",
		License: lic,
		Year:    s.now().Year(),
	}

	files, err := renderFiles(data)
	if err != nil {
		return nil, err
	}

	created := make([]string, 0, len(files))
	for _, f := range files {
		created = append(created, f.name)
	}

	s.ctx.Log.Info("scaffolding project", "root", root, "name", spec.Name, "license", lic.ID, "dry_run", s.ctx.DryRun)
	if s.ctx.DryRun {
		for _, name := range created {
			s.ctx.Log.Debug("would create", "path", name)
		}
		return created, nil
	}

	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, model.WrapCLIError(model.ExitScaffoldError, fmt.Sprintf("failed to create project root %s", root), err)
	}

	for _, f := range files {
		path := filepath.Join(root, f.name)
		if err := os.WriteFile(path, f.content, 0o644); err != nil {
			return nil, model.WrapCLIError(model.ExitScaffoldError, fmt.Sprintf("failed to write %s", f.name), err)
		}
		s.ctx.Log.Debug("created", "path", f.name)
	}

	if err := s.initRepository(root, spec.Name); err != nil {
		return nil, err
	}

	s.ctx.Log.Success("project scaffolded", "root", root, "files", len(created))
	return created, nil
}

// renderedFile pairs a relative file name with its rendered content.
type renderedFile struct {
	name    string
	content []byte
}

// renderFiles produces the skeleton file set for data.
func renderFiles(data templateData) ([]renderedFile, error) {
	readme, err := render("readme", readmeTemplate, data)
	if err != nil {
		return nil, err
	}
	license, err := render("license", licenseTemplate, data)
	if err != nil {
		return nil, err
	}

	settings, err := seedSettings(data)
	if err != nil {
		return nil, err
	}

	return []renderedFile{
		{name: "README.md", content: readme},
		{name: "LICENSE", content: license},
		{name: ".gitignore", content: []byte(gitignoreTemplate)},
		{name: ".tyranno.yaml", content: settings},
	}, nil
}

// render executes one text/template against data.
func render(name, text string, data templateData) ([]byte, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitScaffoldError, fmt.Sprintf("invalid %s template", name), err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, model.WrapCLIError(model.ExitScaffoldError, fmt.Sprintf("failed to render %s", name), err)
	}
	return buf.Bytes(), nil
}

// seedSettings serializes the .tyranno.yaml written into new
// projects: the chosen identity, README as the first sync target, and
// the default trash patterns.
func seedSettings(data templateData) ([]byte, error) {
	seeded := config.Defaults()
	seeded.Project.Name = data.Name
	seeded.Project.Version = data.Version
	seeded.Project.License = data.License.ID
	seeded.Sync.Targets = []string{"README.md"}

	out, err := yaml.Marshal(seeded)
	if err != nil {
		return nil, model.WrapCLIError(model.ExitScaffoldError, "failed to serialize project settings", err)
	}
	return out, nil
}

// checkTarget rejects a root that exists and is non-empty.
func checkTarget(root string) error {
	entries, err := os.ReadDir(root)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return model.WrapCLIError(model.ExitScaffoldError, fmt.Sprintf("failed to inspect %s", root), err)
	}
	if len(entries) > 0 {
		return model.NewCLIError(model.ExitScaffoldError, fmt.Sprintf("directory %s already exists and is not empty", root))
	}
	return nil
}

// initRepository creates the git repository and the initial commit.
func (s *Scaffolder) initRepository(root, name string) error {
	repo, err := git.PlainInit(root, false)
	if err != nil {
		return model.WrapCLIError(model.ExitGitError, "failed to initialize git repository", err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return model.WrapCLIError(model.ExitGitError, "failed to open git worktree", err)
	}

	if err := wt.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return model.WrapCLIError(model.ExitGitError, "failed to stage scaffolded files", err)
	}

	// An explicit author keeps the commit independent of any host git
	// configuration.
	_, err = wt.Commit(fmt.Sprintf("Scaffold %s", name), &git.CommitOptions{
		Author: &object.Signature{
			Name:  "tyranno",
			Email: "tyranno@localhost",
			When:  s.now(),
		},
	})
	if err != nil {
		return model.WrapCLIError(model.ExitGitError, "failed to create initial commit", err)
	}

	s.ctx.Log.Debug("initialized git repository", "root", root)
	return nil
}
