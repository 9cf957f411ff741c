// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"s1fetch/cli/internal/errors"
	"s1fetch/cli/internal/logging"
)

// Client implements API over the DHuS REST endpoints using HTTP basic auth.
// One client is constructed per run; credentials are resolved once and held
// for the lifetime of the session.
type Client struct {
	// baseURL is the catalog root (e.g. "https://scihub.copernicus.eu/dhus")
	baseURL string
	// user and password authenticate every request
	user     string
	password string
	// pageSize is the rows-per-page limit for search pagination
	pageSize int
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// New creates a catalog client for the given endpoint and credentials.
func New(baseURL, user, password string, timeout time.Duration, pageSize int) *Client {
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 100
	}
	return &Client{
		baseURL:  strings.TrimRight(baseURL, "/"),
		user:     user,
		password: password,
		pageSize: pageSize,
		client:   &http.Client{Timeout: timeout},
	}
}

// searchFeed mirrors the OpenSearch JSON response envelope. The entry field
// is an array normally but a bare object when exactly one product matches.
type searchFeed struct {
	Feed struct {
		TotalResults string          `json:"opensearch:totalResults"`
		Entry        json.RawMessage `json:"entry"`
	} `json:"feed"`
}

// searchEntry is one product row of the OpenSearch response. Typed attributes
// arrive as name/content pairs grouped by type.
type searchEntry struct {
	Title string `json:"title"`
	ID    string `json:"id"`
	Date  []struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	} `json:"date"`
	Str []struct {
		Name    string `json:"name"`
		Content string `json:"content"`
	} `json:"str"`
}

// Query searches the catalog, paginating until every matching row has been
// fetched. Results keep the catalog's iteration order.
func (c *Client) Query(ctx context.Context, params SearchParams) (*ResultSet, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	q := buildQuery(params)
	rs := &ResultSet{}
	for start := 0; ; start += c.pageSize {
		page, total, err := c.searchPage(ctx, q, start)
		if err != nil {
			return nil, err
		}
		rs.Total = total
		rs.Products = append(rs.Products, page...)
		if len(page) == 0 || len(rs.Products) >= total {
			break
		}
	}
	return rs, nil
}

func (c *Client) searchPage(ctx context.Context, query string, start int) ([]Product, int, error) {
	v := url.Values{}
	v.Set("q", query)
	v.Set("format", "json")
	v.Set("rows", strconv.Itoa(c.pageSize))
	v.Set("start", strconv.Itoa(start))
	u := c.baseURL + "/search?" + v.Encode()

	log.Debug().Str("url", logging.Mask(u)).Int("start", start).Msg("catalog search")

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, 0, errors.Wrap(errors.QueryFailed, "catalog search request", err)
	}
	defer body.Close()

	var feed searchFeed
	if err := json.NewDecoder(body).Decode(&feed); err != nil {
		return nil, 0, errors.Wrap(errors.QueryFailed, "decode catalog search response", err)
	}

	total, err := strconv.Atoi(strings.TrimSpace(feed.Feed.TotalResults))
	if err != nil {
		return nil, 0, errors.Wrap(errors.QueryFailed, "parse result count", err)
	}

	entries, err := decodeEntries(feed.Feed.Entry)
	if err != nil {
		return nil, 0, errors.Wrap(errors.QueryFailed, "decode catalog search entries", err)
	}

	products := make([]Product, 0, len(entries))
	for _, e := range entries {
		products = append(products, e.product())
	}
	return products, total, nil
}

// decodeEntries handles the catalog's single-result quirk: entry is an array
// for many rows, a bare object for one row, and absent for zero rows.
func decodeEntries(raw json.RawMessage) ([]searchEntry, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var entries []searchEntry
	if err := json.Unmarshal(raw, &entries); err == nil {
		return entries, nil
	}
	var single searchEntry
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []searchEntry{single}, nil
}

func (e searchEntry) product() Product {
	p := Product{ID: e.ID, Title: e.Title}
	for _, d := range e.Date {
		t, err := time.Parse(time.RFC3339, d.Content)
		if err != nil {
			continue
		}
		switch d.Name {
		case "beginposition":
			p.BeginPosition = t
		case "ingestiondate":
			p.IngestionDate = t
		}
	}
	for _, s := range e.Str {
		if s.Name == "size" {
			p.Size = s.Content
		}
	}
	return p
}

// odataEnvelope mirrors the OData v1 JSON response for a single product.
type odataEnvelope struct {
	D struct {
		ID     string `json:"Id"`
		Name   string `json:"Name"`
		Online bool   `json:"Online"`
	} `json:"d"`
}

// ProductInfo retrieves the availability status for one product by id.
func (c *Client) ProductInfo(ctx context.Context, id string) (*ProductStatus, error) {
	u := fmt.Sprintf("%s/odata/v1/Products('%s')?$format=json", c.baseURL, id)

	log.Debug().Str("url", logging.Mask(u)).Msg("product status lookup")

	body, err := c.get(ctx, u)
	if err != nil {
		return nil, errors.Wrap(errors.StatusCheckFailed, fmt.Sprintf("status lookup for product %s", id), err)
	}
	defer body.Close()

	var env odataEnvelope
	if err := json.NewDecoder(body).Decode(&env); err != nil {
		return nil, errors.Wrap(errors.StatusCheckFailed, "decode product status response", err)
	}
	return &ProductStatus{ID: env.D.ID, Title: env.D.Name, Online: env.D.Online}, nil
}

// Download streams the product archive into dir. The file is written to a
// .part temp name and renamed once complete so an interrupted run never
// leaves a truncated archive behind under the final name.
func (c *Client) Download(ctx context.Context, id, title, dir string) (string, error) {
	u := fmt.Sprintf("%s/odata/v1/Products('%s')/$value", c.baseURL, id)

	log.Debug().Str("url", logging.Mask(u)).Str("dir", dir).Msg("product download")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrap(errors.DownloadFailed, "create output directory", err)
	}

	body, err := c.get(ctx, u)
	if err != nil {
		return "", errors.Wrap(errors.DownloadFailed, fmt.Sprintf("download request for product %s", id), err)
	}
	defer body.Close()

	final := filepath.Join(dir, title+".zip")
	part := final + ".part"

	out, err := os.Create(part)
	if err != nil {
		return "", errors.Wrap(errors.DownloadFailed, "create local file", err)
	}
	if _, err := io.Copy(out, body); err != nil {
		out.Close()
		os.Remove(part)
		return "", errors.Wrap(errors.DownloadFailed, fmt.Sprintf("write product %s", title), err)
	}
	if err := out.Close(); err != nil {
		os.Remove(part)
		return "", errors.Wrap(errors.DownloadFailed, "close local file", err)
	}
	if err := os.Rename(part, final); err != nil {
		return "", errors.Wrap(errors.DownloadFailed, "finalize local file", err)
	}
	return final, nil
}

// CheckCredentials issues a zero-row probe query to verify the configured
// credentials without transferring any products.
func (c *Client) CheckCredentials(ctx context.Context) error {
	v := url.Values{}
	v.Set("q", "platformname:Sentinel-1")
	v.Set("format", "json")
	v.Set("rows", "0")
	u := c.baseURL + "/search?" + v.Encode()

	body, err := c.get(ctx, u)
	if err != nil {
		return err
	}
	body.Close()
	return nil
}

// get issues an authenticated GET and returns the response body on 200.
func (c *Client) get(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.SetBasicAuth(c.user, c.password)
	req.Header.Set("User-Agent", "s1fetch-cli/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		if resp.StatusCode == http.StatusUnauthorized {
			return nil, fmt.Errorf("unauthorized: check the catalog username and password")
		}
		return nil, fmt.Errorf("catalog returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(b)))
	}
	return resp.Body, nil
}
