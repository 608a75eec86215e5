package goapkmirror

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	downloadButtonSelector = "a.downloadButton"
	// The mirror marks the genuine final-download anchor with rel=nofollow.
	finalLinkSelector = `a[rel="nofollow"]`
)

// ResolveDownloadURL walks the fixed two hops from the selected variant page
// to the final binary URL: variant page -> download confirmation page ->
// binary. A missing element at either hop terminates the resolution; there is
// no alternate-path search.
func (c *Client) ResolveDownloadURL(variantURL string) (string, error) {
	confirmURL, err := c.findHop(variantURL, downloadButtonSelector, "download button")
	if err != nil {
		return "", err
	}
	logDebug.Println("Download confirmation page:", confirmURL)

	finalURL, err := c.findHop(confirmURL, finalLinkSelector, "final download link")
	if err != nil {
		return "", err
	}
	logInfo.Println("Final download URL resolved")
	return finalURL, nil
}

func (c *Client) findHop(pageURL, selector, what string) (string, error) {
	body, err := c.pages.FetchPage(pageURL)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", err
	}
	href := doc.Find(selector).First().AttrOr("href", "")
	if href == "" {
		return "", fmt.Errorf("%s missing on %s: %w", what, pageURL, ErrChainBroken)
	}
	return c.resolveURL(href), nil
}
