// Package config loads the tyranno settings file, the read-only
// "global variable set" that every command invocation receives.
//
// Settings live in .tyranno.yaml, .tyranno.yml, or .tyranno.json,
// discovered by walking upward from the working directory. The JSON
// form may contain comments and trailing commas (JSONC), matching how
// editors write config files; github.com/tidwall/jsonc strips them
// before parsing. Both formats decode into a generic map first and
// then into the Settings struct via mapstructure, so the schema is
// declared exactly once.
//
// When no settings file exists, Load returns built-in defaults. There
// is no package-level singleton: the loaded Settings value is threaded
// explicitly through the run context.
package config
