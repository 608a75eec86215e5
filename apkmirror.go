// Package goapkmirror fetches release artifacts for specific app versions
// from apkmirror.com: it walks the uploads index to the release page, picks a
// binary variant by priority, follows the redirect chain and downloads the
// final APK or APKM file.
package goapkmirror

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/Danny-Dasilva/CycleTLS/cycletls"
	"github.com/RomainMichau/cloudscraper_go/cloudscraper"
)

const URL_BASE = "https://www.apkmirror.com"

const (
	maxUploadPages = 25
	pageTimeoutSec = 30
	binaryTimeout  = 120 * time.Second
	chunkSize      = 8 * 1024
)

// Browser-like headers: apkmirror.com answers 403 to bare clients.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Referer":         "https://www.apkmirror.com/",
	"Connection":      "keep-alive",
}

var logDebug = log.New(io.Discard, "[D] ", log.LstdFlags|log.Lshortfile)
var logInfo = log.New(log.Writer(), "[I] ", log.LstdFlags|log.Lshortfile)
var logError = log.New(log.Writer(), "[E] ", log.LstdFlags|log.Lshortfile)
var logWarn = log.New(log.Writer(), "[W] ", log.LstdFlags|log.Lshortfile)

func EnableDebug(enable bool) {
	if enable {
		logDebug.SetOutput(log.Writer())
	} else {
		logDebug.SetOutput(io.Discard)
	}
}

// PageFetcher retrieves an HTML document by URL. It returns an error on any
// transport failure or non-success status.
type PageFetcher interface {
	FetchPage(url string) (string, error)
}

type cloudscraperFetcher struct {
	headers map[string]string
}

func (f *cloudscraperFetcher) FetchPage(pageURL string) (string, error) {
	client, err := cloudscraper.Init(false, false)
	if err != nil {
		logError.Println("Failed to initialize cloudscraper client:", err)
		return "", err
	}
	options := cycletls.Options{
		Headers: f.headers,
		Timeout: pageTimeoutSec,
	}
	res, err := client.Do(pageURL, options, "GET")
	if err != nil {
		logError.Println("Error fetching URL:", pageURL, "->", err)
		return "", err
	}
	if res.Status != 200 {
		logError.Println("Received non-200 status code:", res.Status, "for URL:", pageURL)
		return "", fmt.Errorf("received non-200 status code: %d", res.Status)
	}
	return res.Body, nil
}

// Client holds the immutable per-run configuration: mirror origin, header set
// and the two transports (HTML pages and the binary stream). Separate Clients
// do not share state, so several apps can be fetched from one process.
type Client struct {
	BaseURL string
	headers map[string]string
	pages   PageFetcher
	binary  *http.Client
}

func NewClient() *Client {
	return &Client{
		BaseURL: URL_BASE,
		headers: defaultHeaders,
		pages:   &cloudscraperFetcher{headers: defaultHeaders},
		binary:  &http.Client{Timeout: binaryTimeout},
	}
}

// resolveURL resolves href against the mirror origin. Absolute hrefs pass
// through unchanged.
func (c *Client) resolveURL(href string) string {
	base, err := url.Parse(c.BaseURL)
	if err != nil {
		logWarn.Println("Invalid base URL:", c.BaseURL, "->", err)
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		logWarn.Println("Invalid href:", href, "->", err)
		return href
	}
	return base.ResolveReference(ref).String()
}
