package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/ark3us/goapkmirror"
)

func main() {
	app := &cli.App{
		Name:  "goapkmirror",
		Usage: "Fetch a specific app release from apkmirror.com",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "app",
				Aliases:  []string{"a"},
				Usage:    "application to fetch (youtube, youtube-music, reddit, or a registry entry)",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "version",
				Aliases: []string{"v"},
				Usage:   "target version; falls back to the {APP}_VERSION environment variable",
			},
			&cli.StringFlag{
				Name:  "out-dir",
				Value: "tmp",
				Usage: "directory for the downloaded file",
			},
			&cli.StringFlag{
				Name:    "registry",
				Usage:   "YAML file with additional app definitions",
				EnvVars: []string{"GOAPKMIRROR_REGISTRY"},
			},
			&cli.BoolFlag{
				Name:  "print-path",
				Usage: "emit the downloaded file path as APK_PATH=... for workflow consumption",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "enable debug logging",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "ERROR:", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	goapkmirror.EnableDebug(c.Bool("debug"))

	var extra []goapkmirror.App
	if path := c.String("registry"); path != "" {
		apps, err := goapkmirror.LoadApps(path)
		if err != nil {
			return err
		}
		extra = apps
	}

	name := c.String("app")
	app, ok := goapkmirror.LookupApp(name, extra)
	if !ok {
		return fmt.Errorf("unknown app %q", name)
	}

	version := c.String("version")
	if version == "" {
		version = os.Getenv(versionEnvVar(app))
	}
	if version == "" {
		return fmt.Errorf("%w for %s: pass --version or set %s", goapkmirror.ErrVersionMissing, app.Name, versionEnvVar(app))
	}

	client := goapkmirror.NewClient()
	path, err := client.Sync(app, version, c.String("out-dir"))
	if err != nil {
		return err
	}
	if c.Bool("print-path") {
		fmt.Printf("APK_PATH=%s\n", path)
	}
	return nil
}

// versionEnvVar maps an app to the environment variable the CI pipeline sets,
// e.g. YOUTUBE_VERSION or MUSIC_VERSION.
func versionEnvVar(app goapkmirror.App) string {
	name := strings.NewReplacer(" ", "_", "-", "_").Replace(app.Name)
	return strings.ToUpper(name) + "_VERSION"
}
