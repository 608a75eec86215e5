package goapkmirror

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FindReleasePage scans the uploads index of the app's category, page 1
// first, for the first anchor whose target contains the version slug. Pages
// past a match are never fetched; a fetch failure on any page aborts the scan.
func (c *Client) FindReleasePage(app App, version string) (string, error) {
	slug := app.VersionSlug(version)
	logInfo.Println("Looking for slug:", slug)

	for page := 1; page <= maxUploadPages; page++ {
		pageURL := c.uploadsPageURL(app.Category, page)
		logInfo.Println("Scanning uploads page", page)

		body, err := c.pages.FetchPage(pageURL)
		if err != nil {
			return "", fmt.Errorf("uploads page %d: %w", page, err)
		}
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
		if err != nil {
			return "", fmt.Errorf("uploads page %d: %w", page, err)
		}

		var href string
		doc.Find("a[href]").EachWithBreak(func(_ int, a *goquery.Selection) bool {
			h := a.AttrOr("href", "")
			if strings.Contains(h, slug) {
				href = h
				return false
			}
			return true
		})
		if href != "" {
			logDebug.Println("Slug match on page", page, "->", href)
			return c.resolveURL(href), nil
		}
	}
	return "", fmt.Errorf("slug %s after %d pages: %w", slug, maxUploadPages, ErrVersionNotFound)
}

func (c *Client) uploadsPageURL(category string, page int) string {
	if page == 1 {
		return fmt.Sprintf("%s/uploads/?appcategory=%s", c.BaseURL, category)
	}
	return fmt.Sprintf("%s/uploads/page/%d/?appcategory=%s", c.BaseURL, page, category)
}
