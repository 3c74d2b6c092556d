// Package branding provides compile-time identity values for both binaries.
//
// The values live in branding.yaml next to this file and are baked into the
// binary with //go:embed. Hard defaults cover a missing or empty file.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName       string `yaml:"cli_name"`
	BootstrapName string `yaml:"bootstrap_name"`
	DisplayName   string `yaml:"display_name"`
	Description   string `yaml:"description"`
	HomeDir       string `yaml:"home_dir"`
	EnvPrefix     string `yaml:"env_prefix"`
	GoModule      string `yaml:"go_module"`
	AliasName     string `yaml:"alias_name"`
	ArtifactName  string `yaml:"artifact_name"`
	ProjectFile   string `yaml:"project_file"`
}

func load() {
	once.Do(func() {
		defaults = brand{
			CLIName:       "kls",
			BootstrapName: "kls-bootstrap",
			DisplayName:   "kls",
			Description:   "List directory contents with colors and long-format details",
			HomeDir:       ".kls",
			EnvPrefix:     "KLS",
			GoModule:      "github.com/kls-dev/kls",
			AliasName:     "kls",
			ArtifactName:  "kls",
			ProjectFile:   "kls-bootstrap.yaml",
		}
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the lister's command name (e.g., "kls").
func CLIName() string { load(); return defaults.CLIName }

// BootstrapName returns the bootstrap command name (e.g., "kls-bootstrap").
func BootstrapName() string { load(); return defaults.BootstrapName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".kls").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "KLS").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path.
func GoModule() string { load(); return defaults.GoModule }

// AliasName returns the default name of the convenience link created by
// the bootstrap step.
func AliasName() string { load(); return defaults.AliasName }

// ArtifactName returns the default binary name under target/debug/.
func ArtifactName() string { load(); return defaults.ArtifactName }

// ProjectFile returns the name of the optional per-project bootstrap config.
func ProjectFile() string { load(); return defaults.ProjectFile }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("color") → "KLS_COLOR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
