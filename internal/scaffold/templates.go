package scaffold

import "fmt"

// License describes a supported SPDX license id.
type License struct {
	// ID is the SPDX identifier, e.g. "Apache-2.0".
	ID string

	// Name is the full display name.
	Name string

	// URL points at the canonical license text.
	URL string
}

// licenses is the registry of SPDX ids `new --license` accepts.
var licenses = map[string]License{
	"Apache-2.0": {
		ID:   "Apache-2.0",
		Name: "Apache License 2.0",
		URL:  "https://www.apache.org/licenses/LICENSE-2.0",
	},
	"MIT": {
		ID:   "MIT",
		Name: "MIT License",
		URL:  "https://opensource.org/license/mit",
	},
	"BSD-3-Clause": {
		ID:   "BSD-3-Clause",
		Name: "BSD 3-Clause License",
		URL:  "https://opensource.org/license/bsd-3-clause",
	},
	"GPL-3.0-only": {
		ID:   "GPL-3.0-only",
		Name: "GNU General Public License v3.0",
		URL:  "https://www.gnu.org/licenses/gpl-3.0.txt",
	},
	"Unlicense": {
		ID:   "Unlicense",
		Name: "The Unlicense",
		URL:  "https://unlicense.org/UNLICENSE",
	},
}

// LookupLicense resolves an SPDX id against the registry.
func LookupLicense(id string) (License, error) {
	lic, ok := licenses[id]
	if !ok {
		return License{}, fmt.Errorf("unsupported license id %q (supported: Apache-2.0, MIT, BSD-3-Clause, GPL-3.0-only, Unlicense)", id)
	}
	return lic, nil
}

// readmeTemplate seeds the project README. The :tyranno: marker keeps
// the title line managed by `tyranno sync`.
const readmeTemplate = `<!-- :tyranno: # ${project.name} v${project.version} -->
# {{.Name}} v{{.Version}}

{{if .Description}}{{.Description}}{{else}}A new project scaffolded by tyranno.{{end}}

## License

Licensed under the {{.License.Name}} ({{.License.ID}}).

## Maintenance

Project metadata is kept in ` + "`.tyranno.yaml`" + ` and synchronized with
` + "`tyranno sync`" + `. Build artifacts are removed with ` + "`tyranno clean`" + `.
`

// licenseTemplate is the LICENSE file body. The full canonical text
// is referenced by URL rather than embedded.
const licenseTemplate = `{{.License.Name}}

SPDX-License-Identifier: {{.License.ID}}

Copyright {{.Year}}, Contributors to {{.Name}}

The full license text is available at:
{{.License.URL}}
`

// gitignoreTemplate mirrors the default trash patterns so a fresh
// clone ignores what `tyranno clean` would remove anyway.
const gitignoreTemplate = `.tyranno/
.DS_Store
Thumbs.db
*.tmp
*.orig
*~
`
