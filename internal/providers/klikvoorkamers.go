package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/vholovko/kamer-notifier/internal/dal"
)

// The portal rejects requests without a browser-like User-Agent.
const defaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.4.1 Safari/605.1.15"

const requestTimeout = 30 * time.Second

// Credentials are the optional portal account used for auto-applying.
type Credentials struct {
	Username string
	Password string
}

// KlikvoorkamersProvider fetches the currently advertised rooms from the
// klikvoorkamers portal. The portal keeps an anti-bot session: the public
// listings page must be loaded first (cookies) and the JSON frontend is
// called with the page as referer.
type KlikvoorkamersProvider struct {
	listingsURL string
	portalURL   string
	creds       Credentials

	do func(ctx context.Context, method, u, referer string, form url.Values) ([]byte, error)
}

func NewKlikvoorkamersProvider(listingsURL, portalURL string, creds Credentials) *KlikvoorkamersProvider {
	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar:     jar,
		Timeout: requestTimeout,
	}

	p := &KlikvoorkamersProvider{
		listingsURL: listingsURL,
		portalURL:   strings.TrimSuffix(portalURL, "/"),
		creds:       creds,
	}
	p.do = func(ctx context.Context, method, u, referer string, form url.Values) ([]byte, error) {
		return doRequest(ctx, client, method, u, referer, form)
	}

	return p
}

// CanApply reports whether portal credentials are configured.
func (p *KlikvoorkamersProvider) CanApply() bool {
	return p.creds.Username != "" && p.creds.Password != ""
}

// Listings fetches the current sequence of advertised rooms. When the JSON
// frontend serves something unparseable, the already-loaded public page is
// parsed as a best-effort fallback before the cycle is failed.
func (p *KlikvoorkamersProvider) Listings(ctx context.Context) ([]dal.Listing, error) {
	page, err := p.do(ctx, http.MethodGet, p.listingsURL, "", nil)
	if err != nil {
		return nil, fmt.Errorf("load listings page: %w", err)
	}

	body, err := p.do(ctx, http.MethodGet, p.objectURL("getallobjects"), p.listingsURL, nil)
	if err != nil {
		return nil, fmt.Errorf("load listings api: %w", err)
	}

	listings, err := parseListings(body, p.listingsURL)
	if err != nil {
		if fallback, fErr := parseListingsHTML(page, p.listingsURL); fErr == nil && len(fallback) > 0 {
			return fallback, nil
		}
		return nil, fmt.Errorf("parse listings response: %w", err)
	}

	return listings, nil
}

func (p *KlikvoorkamersProvider) objectURL(action string) string {
	return p.portalURL + "/object/frontend/" + action + "/format/json"
}

func (p *KlikvoorkamersProvider) accountURL(action string) string {
	return p.portalURL + "/account/frontend/" + action + "/format/json"
}

func (p *KlikvoorkamersProvider) coreURL(action string) string {
	return p.portalURL + "/core/frontend/" + action + "/format/json"
}

func doRequest(ctx context.Context, client *http.Client, method, u, referer string, form url.Values) ([]byte, error) {
	var reqBody io.Reader
	if form != nil {
		reqBody = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("create request for url=%s: %w", u, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	if referer != "" {
		req.Header.Set("Referer", referer)
	}
	if form != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request url=%s: %w", u, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("request url=%s: status=%s", u, resp.Status)
	}

	var res bytes.Buffer
	if _, err = res.ReadFrom(resp.Body); err != nil {
		return nil, fmt.Errorf("read response from url=%s: %w", u, err)
	}

	return res.Bytes(), nil
}

func parseListings(body []byte, listingsURL string) ([]dal.Listing, error) {
	var res struct {
		Result []map[string]any `json:"result"`
	}

	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()
	if err := dec.Decode(&res); err != nil {
		return nil, fmt.Errorf("%w: decode body: %w", ErrSchemaChanged, err)
	}
	if res.Result == nil {
		return nil, fmt.Errorf("%w: result field is missing", ErrSchemaChanged)
	}

	listings := make([]dal.Listing, 0, len(res.Result))
	for i, item := range res.Result {
		id := scalarString(item["id"])
		if id == "" {
			return nil, fmt.Errorf("%w: listing %d has no id", ErrSchemaChanged, i)
		}

		detailURL := listingsURL
		urlKey := scalarString(item["urlKey"])
		if urlKey != "" {
			detailURL = listingsURL + "/details/" + urlKey
		}

		listings = append(listings, dal.Listing{
			ID:    id,
			AltID: urlKey,
			URL:   detailURL,
			Price: scalarString(item["totalRent"]),
		})
	}

	return listings, nil
}

// parseListingsHTML extracts listings from the public page markup. The JSON
// ids are not present in the markup, so the detail url key serves as the
// identifier. The JSON path records the url key as the alternate identifier
// of every listing, so listings stay recognizable across both paths.
func parseListingsHTML(page []byte, listingsURL string) ([]dal.Listing, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("parse listings page: %w", err)
	}

	seen := make(map[string]struct{})
	var listings []dal.Listing

	doc.Find("a[href*='/details/']").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok {
			return
		}
		key := href[strings.LastIndex(href, "/details/")+len("/details/"):]
		key = strings.Trim(key, "/")
		if key == "" {
			return
		}
		if _, dup := seen[key]; dup {
			return
		}
		seen[key] = struct{}{}

		listings = append(listings, dal.Listing{
			ID:    key,
			URL:   listingsURL + "/details/" + key,
			Price: strings.TrimSpace(a.Find(".object-price").First().Text()),
		})
	})

	if len(listings) == 0 {
		return nil, fmt.Errorf("%w: no listing anchors found on page", ErrSchemaChanged)
	}

	return listings, nil
}

func scalarString(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case json.Number:
		return t.String()
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return ""
	}
}
