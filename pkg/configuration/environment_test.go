package configuration

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadEnv_FallsBackToGoModRoot(t *testing.T) {
	tmp := t.TempDir()

	requireWriteFile(t, filepath.Join(tmp, "go.mod"), "module example.com/test\n\ngo 1.22\n")
	requireWriteFile(t, filepath.Join(tmp, ".env.local"), "FMSTACK_TEST_ENV_LOAD=ok\n")

	sub := filepath.Join(tmp, "pkg", "navigation")
	requireMkdirAll(t, sub)

	origWd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(sub); err != nil {
		t.Fatalf("chdir: %v", err)
	}

	_ = os.Unsetenv("FMSTACK_TEST_ENV_LOAD")

	n, err := LoadEnv([]string{".env", ".env.local"})
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 env file loaded, got %d", n)
	}
	if got := os.Getenv("FMSTACK_TEST_ENV_LOAD"); got != "ok" {
		t.Fatalf("expected env var loaded from repo root, got %q", got)
	}
}

func TestNavigationOptions_ParsesLists(t *testing.T) {
	opts := NavigationOptions{
		DevHosts:        "localhost, dev.fmstack.local,,",
		TenantAllowlist: "11111111-1111-1111-1111-111111111111,not-a-uuid",
	}

	hosts := opts.DevHostList()
	if len(hosts) != 2 || hosts[0] != "localhost" || hosts[1] != "dev.fmstack.local" {
		t.Fatalf("unexpected dev hosts: %v", hosts)
	}

	ids := opts.TenantAllowlistIDs()
	if len(ids) != 1 {
		t.Fatalf("expected invalid UUID entries to be skipped, got %v", ids)
	}
}

func TestNavigationOptions_ParsesHostRoutes(t *testing.T) {
	opts := NavigationOptions{
		HostRoutes: "vendors.=/gate-passes, occupants.=/projects,broken,=/nowhere,missing=",
	}

	pairs := opts.HostRoutePairs()
	if len(pairs) != 2 {
		t.Fatalf("expected malformed entries to be skipped, got %v", pairs)
	}
	if pairs[0].HostContains != "vendors." || pairs[0].Route != "/gate-passes" {
		t.Fatalf("unexpected first pair: %+v", pairs[0])
	}
	if pairs[1].HostContains != "occupants." || pairs[1].Route != "/projects" {
		t.Fatalf("unexpected second pair: %+v", pairs[1])
	}
}

func TestValidateNavigation_RejectsMalformedHostRoutes(t *testing.T) {
	c := &Configuration{}
	c.Navigation = NavigationOptions{
		DefaultRoute: "/assets",
		HostRoutes:   "vendors.=gate-passes",
	}

	if err := c.validateNavigation(); err == nil {
		t.Fatal("expected host route without an absolute path to be rejected")
	}

	c.Navigation.HostRoutes = "vendors.=/gate-passes"
	if err := c.validateNavigation(); err != nil {
		t.Fatalf("validateNavigation: %v", err)
	}
}

func requireWriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func requireMkdirAll(t *testing.T, path string) {
	t.Helper()
	if err := os.MkdirAll(path, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", path, err)
	}
}
