package goapkmirror

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const variantRowSelector = "div.table-row"

// Matches reports whether the normalized row text satisfies the rule: all
// positive tags present, no excluded tag present.
func (r VariantRule) Matches(text string) bool {
	for _, tag := range r.All {
		if !strings.Contains(text, tag) {
			return false
		}
	}
	for _, tag := range r.None {
		if strings.Contains(text, tag) {
			return false
		}
	}
	return true
}

func normalizeRowText(row *goquery.Selection) string {
	return strings.ToLower(strings.Join(strings.Fields(row.Text()), " "))
}

// SelectVariant fetches the release page and picks the variant row for the
// highest-priority rule that matches any row. Rows are scanned in display
// order; a matching row without a link is skipped. The returned URL is the
// row's first anchor resolved against the mirror origin.
func (c *Client) SelectVariant(releaseURL string, rules []VariantRule) (string, error) {
	body, err := c.pages.FetchPage(releaseURL)
	if err != nil {
		return "", err
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(body))
	if err != nil {
		return "", err
	}

	rows := doc.Find(variantRowSelector)
	logDebug.Println("Found", rows.Length(), "variant rows on", releaseURL)

	for _, rule := range rules {
		for i := 0; i < rows.Length(); i++ {
			row := rows.Eq(i)
			if !rule.Matches(normalizeRowText(row)) {
				continue
			}
			href := row.Find("a[href]").First().AttrOr("href", "")
			if href == "" {
				logWarn.Println("Variant row", i, "matches but has no link, skipping")
				continue
			}
			variantURL := c.resolveURL(href)
			logInfo.Println("Selected variant:", variantURL)
			return variantURL, nil
		}
	}
	return "", ErrNoVariant
}
