package goapkmirror

import (
	"fmt"
	"strings"
)

// Format is the package format of the release artifact, which doubles as the
// file extension of the downloaded artifact.
type Format string

const (
	FormatAPK    Format = "apk"  // single-file package
	FormatBundle Format = "apkm" // multi-part bundle
)

// VariantRule matches one variant row of a release page. Every All tag must
// appear in the row text and no None tag may. Tags are matched as substrings
// against the lower-cased, whitespace-normalized row text.
type VariantRule struct {
	All  []string `yaml:"all"`
	None []string `yaml:"none,omitempty"`
}

// App describes one application the mirror tracks: how its uploads are
// categorized, how its release slugs are built and which binary variants are
// acceptable, most preferred first.
type App struct {
	Name     string        `yaml:"name"`
	Category string        `yaml:"category"`
	Format   Format        `yaml:"format"`
	Priority []VariantRule `yaml:"priority"`
}

// VersionSlug builds the mirror's URL slug for a release: the category name
// followed by the version with dots turned into dashes and the release
// suffix. Same version always yields the same slug.
func (a App) VersionSlug(version string) string {
	return fmt.Sprintf("%s-%s-release", a.Category, strings.ReplaceAll(version, ".", "-"))
}

// FileName is the deterministic local name of the downloaded artifact.
func (a App) FileName(version string) string {
	return fmt.Sprintf("%s-%s.%s", a.Name, version, a.Format)
}

var YouTube = App{
	Name:     "YouTube",
	Category: "youtube",
	Format:   FormatAPK,
	Priority: []VariantRule{
		{All: []string{"apk", "nodpi", "universal"}, None: []string{"bundle"}},
	},
}

var Music = App{
	Name:     "Music",
	Category: "youtube-music",
	Format:   FormatAPK,
	Priority: []VariantRule{
		{All: []string{"apk", "nodpi", "arm64-v8a"}},
		{All: []string{"apk", "nodpi", "armeabi-v7a"}},
	},
}

var Reddit = App{
	Name:     "Reddit",
	Category: "reddit",
	Format:   FormatBundle,
	Priority: []VariantRule{
		{All: []string{"bundle", "universal", "120-640dpi"}},
		{All: []string{"bundle", "arm64-v8a", "120-640dpi"}},
		{All: []string{"bundle", "universal", "480dpi"}},
		{All: []string{"bundle", "arm64-v8a", "480dpi"}},
	},
}

var BuiltinApps = []App{YouTube, Music, Reddit}

// LookupApp finds an app by name or category, case-insensitively. Entries in
// extra take precedence over the built-in definitions.
func LookupApp(name string, extra []App) (App, bool) {
	name = strings.ToLower(name)
	for _, apps := range [][]App{extra, BuiltinApps} {
		for _, a := range apps {
			if strings.ToLower(a.Name) == name || a.Category == name {
				return a, true
			}
		}
	}
	return App{}, false
}
