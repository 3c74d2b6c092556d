package project

import (
	"path/filepath"

	"github.com/kls-dev/kls/internal/branding"
)

// Supported toolchain identifiers.
const (
	ToolchainGo    = "go"
	ToolchainCargo = "cargo"
)

// DebugDir is the build-tool convention for debug artifacts, relative to
// the project root.
var DebugDir = filepath.Join("target", "debug")

// Config is the decoded kls-bootstrap.yaml.
type Config struct {
	Toolchain  string   `yaml:"toolchain"`
	Artifact   string   `yaml:"artifact"`
	Alias      string   `yaml:"alias"`
	Package    string   `yaml:"package"`
	MinVersion string   `yaml:"min_version,omitempty"`
	BuildArgs  []string `yaml:"build_args,omitempty"`
}

// Default returns the configuration used when no project file exists.
func Default() *Config {
	return &Config{
		Toolchain: ToolchainGo,
		Artifact:  branding.ArtifactName(),
		Alias:     branding.AliasName(),
		Package:   ".",
	}
}

// ArtifactPath returns the artifact location relative to the project root.
func (c *Config) ArtifactPath() string {
	return filepath.Join(DebugDir, c.Artifact)
}

// fillDefaults sets every empty field from Default.
func (c *Config) fillDefaults() {
	d := Default()
	if c.Toolchain == "" {
		c.Toolchain = d.Toolchain
	}
	if c.Artifact == "" {
		c.Artifact = d.Artifact
	}
	if c.Alias == "" {
		c.Alias = d.Alias
	}
	if c.Package == "" {
		c.Package = d.Package
	}
}
