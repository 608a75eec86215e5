package goapkmirror

import (
	"os"
	"path/filepath"
)

// Sync runs the full retrieval for one app version: locate the release page,
// select a variant, resolve the redirect chain, download the artifact into
// outDir. Stages run strictly in order and the first failure ends the run;
// the returned error carries the failing stage. On success the path of the
// written file is returned.
func (c *Client) Sync(app App, version, outDir string) (string, error) {
	if version == "" {
		return "", ErrVersionMissing
	}
	logInfo.Printf("Target %s version: %s", app.Name, version)

	releaseURL, err := c.FindReleasePage(app, version)
	if err != nil {
		return "", &SyncError{Stage: StageLocate, Err: err}
	}
	logInfo.Println("Found release page:", releaseURL)

	variantURL, err := c.SelectVariant(releaseURL, app.Priority)
	if err != nil {
		return "", &SyncError{Stage: StageSelect, Err: err}
	}

	finalURL, err := c.ResolveDownloadURL(variantURL)
	if err != nil {
		return "", &SyncError{Stage: StageResolve, Err: err}
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", &SyncError{Stage: StageDownload, Err: err}
	}
	dest := filepath.Join(outDir, app.FileName(version))
	logInfo.Println("Downloading", dest)
	if err := c.DownloadTo(finalURL, dest); err != nil {
		return "", &SyncError{Stage: StageDownload, Err: err}
	}
	logInfo.Println("Download complete:", dest)
	return dest, nil
}
