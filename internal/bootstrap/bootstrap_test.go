package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kls-dev/kls/internal/alias"
	"github.com/kls-dev/kls/internal/logging"
	"github.com/kls-dev/kls/internal/platform"
	"github.com/kls-dev/kls/internal/project"
	"github.com/kls-dev/kls/internal/toolchain"
)

// fakeToolchain writes the artifact on success or fails with a build error.
type fakeToolchain struct {
	output  string
	fail    bool
	version string
	builds  int
}

func (f *fakeToolchain) Name() string { return "fake" }
func (f *fakeToolchain) CommandLine() string { return "fake build" }

func (f *fakeToolchain) Version(context.Context) (string, error) {
	return f.version, nil
}

func (f *fakeToolchain) Build(_ context.Context, dir string) error {
	f.builds++
	if f.fail {
		return &toolchain.BuildError{Command: "fake build", ExitCode: 101}
	}
	path := filepath.Join(dir, f.output)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(fmt.Sprintf("build %d", f.builds)), 0755)
}

func setup(t *testing.T) (string, *project.Config, *fakeToolchain) {
	t.Helper()
	if !platform.IsSymlinkSupported() {
		t.Skip("symlinks not supported on this platform")
	}
	cfg := project.Default()
	return t.TempDir(), cfg, &fakeToolchain{output: cfg.ArtifactPath()}
}

func TestRunCleanDirectory(t *testing.T) {
	dir, cfg, tc := setup(t)

	var logs bytes.Buffer
	logger, err := logging.New(&logs, "", "info", "text")
	if err != nil {
		t.Fatal(err)
	}

	res, err := Run(context.Background(), Options{Dir: dir, Project: cfg, Toolchain: tc, Logger: logger})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != alias.OutcomeCreated {
		t.Errorf("Outcome = %v, want created", res.Outcome)
	}

	target, err := os.Readlink(filepath.Join(dir, "kls"))
	if err != nil {
		t.Fatalf("alias not created: %v", err)
	}
	if want := filepath.Join("target", "debug", "kls"); target != want {
		t.Errorf("alias target = %q, want %q", target, want)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("directory has %d entries, want target/ and kls", len(entries))
	}

	out := logs.String()
	build := strings.Index(out, "Building")
	link := strings.Index(out, "Linking")
	if build < 0 || link < 0 || build > link {
		t.Errorf("trace lines missing or out of order: %q", out)
	}
}

func TestRunRepeatedKeepsTarget(t *testing.T) {
	dir, cfg, tc := setup(t)

	for i := 0; i < 3; i++ {
		if _, err := Run(context.Background(), Options{Dir: dir, Project: cfg, Toolchain: tc}); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}
	if tc.builds != 3 {
		t.Errorf("builds = %d, want 3", tc.builds)
	}

	target, err := os.Readlink(filepath.Join(dir, "kls"))
	if err != nil {
		t.Fatal(err)
	}
	if target != cfg.ArtifactPath() {
		t.Errorf("alias target = %q after repeated runs", target)
	}
}

func TestRunExistingPlainFile(t *testing.T) {
	dir, cfg, tc := setup(t)

	aliasPath := filepath.Join(dir, "kls")
	if err := os.WriteFile(aliasPath, nil, 0644); err != nil {
		t.Fatal(err)
	}

	res, err := Run(context.Background(), Options{Dir: dir, Project: cfg, Toolchain: tc})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Outcome != alias.OutcomeExisting {
		t.Errorf("Outcome = %v, want existing", res.Outcome)
	}

	info, err := os.Lstat(aliasPath)
	if err != nil {
		t.Fatal(err)
	}
	if !info.Mode().IsRegular() || info.Size() != 0 {
		t.Errorf("plain file modified: mode %v size %d", info.Mode(), info.Size())
	}
}

func TestRunBuildFailureSkipsLink(t *testing.T) {
	dir, cfg, tc := setup(t)
	tc.fail = true

	_, err := Run(context.Background(), Options{Dir: dir, Project: cfg, Toolchain: tc})
	var buildErr *toolchain.BuildError
	if !errors.As(err, &buildErr) {
		t.Fatalf("err = %v, want *toolchain.BuildError", err)
	}

	if _, err := os.Lstat(filepath.Join(dir, "kls")); !os.IsNotExist(err) {
		t.Errorf("alias exists after failed build: %v", err)
	}
}

func TestRunToolchainTooOld(t *testing.T) {
	dir, cfg, tc := setup(t)
	cfg.MinVersion = "1.22"
	tc.version = "1.20.1"

	_, err := Run(context.Background(), Options{Dir: dir, Project: cfg, Toolchain: tc})
	if !errors.Is(err, toolchain.ErrTooOld) {
		t.Fatalf("err = %v, want ErrTooOld", err)
	}
	if tc.builds != 0 {
		t.Error("build ran despite version check failure")
	}
	if _, err := os.Lstat(filepath.Join(dir, "kls")); !os.IsNotExist(err) {
		t.Error("alias created despite version check failure")
	}
}

func TestRunReadsProjectFile(t *testing.T) {
	dir, _, _ := setup(t)
	if err := os.WriteFile(filepath.Join(dir, "kls-bootstrap.yaml"), []byte("alias: k\nartifact: lister\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tc := &fakeToolchain{output: filepath.Join("target", "debug", "lister")}

	res, err := Run(context.Background(), Options{Dir: dir, Toolchain: tc})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.Alias != "k" {
		t.Errorf("Alias = %q, want k", res.Alias)
	}
	target, err := os.Readlink(filepath.Join(dir, "k"))
	if err != nil {
		t.Fatal(err)
	}
	if target != filepath.Join("target", "debug", "lister") {
		t.Errorf("alias target = %q", target)
	}
}

func TestRunInvalidProjectFile(t *testing.T) {
	dir, _, tc := setup(t)
	if err := os.WriteFile(filepath.Join(dir, "kls-bootstrap.yaml"), []byte("toolchain: make\n"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Run(context.Background(), Options{Dir: dir, Toolchain: tc})
	var verr *project.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("err = %v, want *project.ValidationError", err)
	}
	if tc.builds != 0 {
		t.Error("build ran with an invalid project file")
	}
}

func TestCheck(t *testing.T) {
	dir, cfg, tc := setup(t)

	st, err := Check(dir, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if st.Kind != alias.KindMissing {
		t.Errorf("Kind = %q before run", st.Kind)
	}

	if _, err := Run(context.Background(), Options{Dir: dir, Project: cfg, Toolchain: tc}); err != nil {
		t.Fatal(err)
	}

	st, err = Check(dir, cfg)
	if err != nil {
		t.Fatal(err)
	}
	if st.Kind != alias.KindSymlink || !st.Matches || st.Dangling {
		t.Errorf("status after run = %+v", st)
	}
}
