package goapkmirror

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeRegistry(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apps.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestLoadApps(t *testing.T) {
	path := writeRegistry(t, `
apps:
  - name: Telegram
    category: telegram
    format: apk
    priority:
      - all: [apk, nodpi, arm64-v8a]
        none: [bundle]
      - all: [apk, nodpi, armeabi-v7a]
`)
	apps, err := LoadApps(path)
	if err != nil {
		t.Fatalf("LoadApps: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("got %d apps, want 1", len(apps))
	}
	app := apps[0]
	if app.Name != "Telegram" || app.Category != "telegram" || app.Format != FormatAPK {
		t.Errorf("unexpected app: %+v", app)
	}
	if len(app.Priority) != 2 {
		t.Fatalf("got %d priority rules, want 2", len(app.Priority))
	}
	if len(app.Priority[0].None) != 1 || app.Priority[0].None[0] != "bundle" {
		t.Errorf("negative tags not parsed: %+v", app.Priority[0])
	}
	if app.VersionSlug("10.0.1") != "telegram-10-0-1-release" {
		t.Errorf("slug = %q", app.VersionSlug("10.0.1"))
	}
}

func TestLoadAppsValidation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    error
	}{
		{
			"missing name",
			"apps:\n  - category: telegram\n    format: apk\n    priority:\n      - all: [apk]\n",
			ErrAppNameMissing,
		},
		{
			"missing category",
			"apps:\n  - name: Telegram\n    format: apk\n    priority:\n      - all: [apk]\n",
			ErrCategoryMissing,
		},
		{
			"bad format",
			"apps:\n  - name: Telegram\n    category: telegram\n    format: zip\n    priority:\n      - all: [apk]\n",
			ErrUnknownFormat,
		},
		{
			"no priority rules",
			"apps:\n  - name: Telegram\n    category: telegram\n    format: apk\n",
			ErrPriorityMissing,
		},
		{
			"empty rule",
			"apps:\n  - name: Telegram\n    category: telegram\n    format: apk\n    priority:\n      - none: [bundle]\n",
			ErrEmptyRule,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeRegistry(t, tt.content)
			_, err := LoadApps(path)
			if !errors.Is(err, tt.want) {
				t.Errorf("got %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadAppsMissingFile(t *testing.T) {
	if _, err := LoadApps(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected an error for a missing registry file")
	}
}
