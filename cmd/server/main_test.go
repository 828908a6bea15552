package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveScenarioRoot_UsesConfigured(t *testing.T) {
	if got := resolveScenarioRoot(" /tmp/custom-scenarios "); got != "/tmp/custom-scenarios" {
		t.Fatalf("resolveScenarioRoot()=%q want %q", got, "/tmp/custom-scenarios")
	}
}

func TestResolveScenarioRoot_UsesRootScenariosWhenPresent(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scenarios"), 0o755); err != nil {
		t.Fatalf("mkdir scenarios: %v", err)
	}
	chdir(t, dir)

	if got := resolveScenarioRoot(""); got != "./scenarios" {
		t.Fatalf("resolveScenarioRoot()=%q want %q", got, "./scenarios")
	}
}

func TestResolveScenarioRoot_FindsRepoRootFromCmdDir(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "scenarios"), 0o755); err != nil {
		t.Fatalf("mkdir scenarios: %v", err)
	}
	cmdDir := filepath.Join(dir, "cmd", "server")
	if err := os.MkdirAll(cmdDir, 0o755); err != nil {
		t.Fatalf("mkdir cmd: %v", err)
	}
	chdir(t, cmdDir)

	if got := resolveScenarioRoot(""); got != "../../scenarios" {
		t.Fatalf("resolveScenarioRoot()=%q want %q", got, "../../scenarios")
	}
}

func TestResolveScenarioRoot_DefaultsWhenMissing(t *testing.T) {
	chdir(t, t.TempDir())

	if got := resolveScenarioRoot(""); got != "scenarios" {
		t.Fatalf("resolveScenarioRoot()=%q want %q", got, "scenarios")
	}
}

func chdir(t *testing.T, dir string) {
	t.Helper()
	prevWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(prevWD) })
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
}
