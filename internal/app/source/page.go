package source

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// PageTitleFunc looks up a human-readable title for a video page.
type PageTitleFunc func(ctx context.Context, url string) (string, error)

var defaultHTTPClient = &http.Client{Timeout: 15 * time.Second}

// NewPageTitleFunc returns a PageTitleFunc that scrapes og:title, falling back to <title>.
func NewPageTitleFunc(client *http.Client) PageTitleFunc {
	if client == nil {
		client = defaultHTTPClient
	}
	return func(ctx context.Context, url string) (string, error) {
		return PageTitle(ctx, client, url)
	}
}

// PageTitle fetches url and returns its og:title or <title>, without a
// trailing " - YouTube".
func PageTitle(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("GET %s: unexpected status %s", url, resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", err
	}

	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	if strings.TrimSpace(title) == "" {
		title = doc.Find("title").First().Text()
	}
	title = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(title), "- YouTube"))
	if title == "" {
		return "", fmt.Errorf("no title found at %s", url)
	}
	return title, nil
}
