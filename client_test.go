package goapkmirror

import (
	"fmt"
	"net/http"
	"strings"
)

const testBase = "https://mirror.test"

// fakeFetcher serves fixture HTML by URL and records every fetch. Unknown
// URLs fail like a transport error would.
type fakeFetcher struct {
	pages   map[string]string
	fetched []string
}

func (f *fakeFetcher) FetchPage(url string) (string, error) {
	f.fetched = append(f.fetched, url)
	body, ok := f.pages[url]
	if !ok {
		return "", fmt.Errorf("received non-200 status code: %d", 404)
	}
	return body, nil
}

func newTestClient(pages map[string]string) (*Client, *fakeFetcher) {
	f := &fakeFetcher{pages: pages}
	c := &Client{
		BaseURL: testBase,
		headers: map[string]string{},
		pages:   f,
		binary:  &http.Client{},
	}
	return c, f
}

func uploadsURL(category string, page int) string {
	if page == 1 {
		return fmt.Sprintf("%s/uploads/?appcategory=%s", testBase, category)
	}
	return fmt.Sprintf("%s/uploads/page/%d/?appcategory=%s", testBase, page, category)
}

func listingPage(hrefs ...string) string {
	var b strings.Builder
	b.WriteString("<html><body>")
	for _, h := range hrefs {
		fmt.Fprintf(&b, `<a href="%s">upload</a>`, h)
	}
	b.WriteString("</body></html>")
	return b.String()
}

func variantRow(text, href string) string {
	if href == "" {
		return fmt.Sprintf(`<div class="table-row"><span>%s</span></div>`, text)
	}
	return fmt.Sprintf(`<div class="table-row"><span>%s</span> <a href="%s">download</a></div>`, text, href)
}

func releasePage(rows ...string) string {
	return "<html><body>" + strings.Join(rows, "\n") + "</body></html>"
}
