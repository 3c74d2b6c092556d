package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// runKls executes the kls command with an isolated home directory.
func runKls(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("LS_COLORS", "")

	var out, errOut bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = execute(cmd, "kls")
	return out.String(), errOut.String(), err
}

func makeProject(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range []string{"main.go", "go.mod", ".gitignore"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "internal"), 0755); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestListShort(t *testing.T) {
	dir := makeProject(t)

	out, _, err := runKls(t, "--color", "never", dir)
	if err != nil {
		t.Fatalf("kls: %v", err)
	}
	if want := ".gitignore  go.mod  internal  main.go\n"; out != want {
		t.Errorf("output = %q, want %q", out, want)
	}
}

func TestListDefaultsToCurrentDirectory(t *testing.T) {
	dir := makeProject(t)
	t.Chdir(dir)

	out, _, err := runKls(t, "--color=never")
	if err != nil {
		t.Fatalf("kls: %v", err)
	}
	if !strings.Contains(out, "main.go") {
		t.Errorf("output = %q, want current directory listing", out)
	}
}

func TestListCombinedShortFlags(t *testing.T) {
	dir := makeProject(t)

	out, _, err := runKls(t, "-la", "--color", "never", dir)
	if err != nil {
		t.Fatalf("kls: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if !strings.HasPrefix(lines[0], "total ") {
		t.Errorf("first line = %q, want total", lines[0])
	}
	// total + "." + ".." + 4 entries
	if len(lines) != 7 {
		t.Fatalf("got %d lines:\n%s", len(lines), out)
	}
	if !strings.HasSuffix(lines[1], " .") || !strings.HasSuffix(lines[2], " ..") {
		t.Errorf("dot entries missing:\n%s", out)
	}
	if !strings.HasPrefix(lines[1], "d") {
		t.Errorf("'.' is not shown as a directory: %q", lines[1])
	}
}

func TestListMissingPath(t *testing.T) {
	dir := makeProject(t)
	missing := filepath.Join(dir, "nope")

	out, errOut, err := runKls(t, "--color", "never", missing, dir)
	if err == nil {
		t.Fatal("expected error for missing path")
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		t.Errorf("err = %T, want *reportedError", err)
	}
	if ExitCode(err) != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode(err))
	}

	want := "kls: cannot access '" + missing + "': No such file or directory.\n"
	if errOut != want {
		t.Errorf("stderr = %q, want %q", errOut, want)
	}
	// The remaining path is still listed, with its header since two were given.
	if !strings.Contains(out, "main.go") {
		t.Errorf("existing path not listed: %q", out)
	}
}

func TestListAllMissing(t *testing.T) {
	dir := t.TempDir()
	_, errOut, err := runKls(t, filepath.Join(dir, "a"), filepath.Join(dir, "b"))
	if err == nil {
		t.Fatal("expected error")
	}
	if strings.Count(errOut, "cannot access") != 2 {
		t.Errorf("stderr = %q, want two access errors", errOut)
	}
}

func TestListUnknownFlag(t *testing.T) {
	_, errOut, err := runKls(t, "--bogus")
	if err == nil {
		t.Fatal("expected error for unknown flag")
	}
	if !strings.Contains(errOut, "bogus") {
		t.Errorf("stderr = %q, want flag name", errOut)
	}
}

func TestListInvalidColor(t *testing.T) {
	_, _, err := runKls(t, "--color", "sometimes", t.TempDir())
	if err == nil {
		t.Fatal("expected error for invalid color mode")
	}
}

func TestListColorFromEnv(t *testing.T) {
	dir := makeProject(t)
	t.Setenv("KLS_COLOR", "always")

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{dir})
	t.Setenv("HOME", t.TempDir())
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Errorf("KLS_COLOR=always not honored: %q", out.String())
	}
}

func TestVersionFlag(t *testing.T) {
	setBuildInfo("1.2.3", "abc123", "2026-10-19")
	t.Cleanup(func() { setBuildInfo("dev", "unknown", "unknown") })

	out, _, err := runKls(t, "--version")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "1.2.3") || !strings.Contains(out, "abc123") {
		t.Errorf("version output = %q", out)
	}
}
