package goapkmirror

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Sentinel errors for app registry validation.
var (
	ErrAppNameMissing  = errors.New("app name is required")
	ErrCategoryMissing = errors.New("app category is required")
	ErrUnknownFormat   = errors.New("format must be apk or apkm")
	ErrPriorityMissing = errors.New("at least one priority rule is required")
	ErrEmptyRule       = errors.New("priority rule needs at least one tag")
)

type registryFile struct {
	Apps []App `yaml:"apps"`
}

// LoadApps reads additional app definitions from a YAML registry file, so a
// pipeline can track new mirror apps without recompiling.
//
//	apps:
//	  - name: Telegram
//	    category: telegram
//	    format: apk
//	    priority:
//	      - all: [apk, nodpi, arm64-v8a]
//	        none: [bundle]
func LoadApps(path string) ([]App, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read app registry: %w", err)
	}
	var reg registryFile
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("failed to parse app registry: %w", err)
	}
	for i, app := range reg.Apps {
		if err := validateApp(app); err != nil {
			return nil, fmt.Errorf("app %d (%s): %w", i, app.Name, err)
		}
	}
	return reg.Apps, nil
}

func validateApp(a App) error {
	if a.Name == "" {
		return ErrAppNameMissing
	}
	if a.Category == "" {
		return ErrCategoryMissing
	}
	switch a.Format {
	case FormatAPK, FormatBundle:
	default:
		return ErrUnknownFormat
	}
	if len(a.Priority) == 0 {
		return ErrPriorityMissing
	}
	for _, rule := range a.Priority {
		if len(rule.All) == 0 {
			return ErrEmptyRule
		}
	}
	return nil
}
