// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package download

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"s1fetch/cli/internal/catalog"
)

// mockAPI implements catalog.API and records download calls.
type mockAPI struct {
	online      map[string]bool
	downloads   map[string]int
	statusCalls int
	downloadErr error
}

func newMockAPI(online map[string]bool) *mockAPI {
	return &mockAPI{online: online, downloads: map[string]int{}}
}

func (m *mockAPI) Query(ctx context.Context, params catalog.SearchParams) (*catalog.ResultSet, error) {
	return nil, errors.New("not used")
}

func (m *mockAPI) ProductInfo(ctx context.Context, id string) (*catalog.ProductStatus, error) {
	m.statusCalls++
	return &catalog.ProductStatus{ID: id, Title: "TITLE-" + id, Online: m.online[id]}, nil
}

func (m *mockAPI) Download(ctx context.Context, id, title, dir string) (string, error) {
	if m.downloadErr != nil {
		return "", m.downloadErr
	}
	m.downloads[id]++
	return filepath.Join(dir, title+".zip"), nil
}

func products(ids ...string) []catalog.Product {
	var out []catalog.Product
	for _, id := range ids {
		out = append(out, catalog.Product{ID: id, Title: "TITLE-" + id})
	}
	return out
}

func TestRunEmptyResultSet(t *testing.T) {
	api := newMockAPI(nil)
	if err := New(api, t.TempDir()).Run(context.Background(), nil); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if api.statusCalls != 0 || len(api.downloads) != 0 {
		t.Errorf("status calls = %d, downloads = %v, want none", api.statusCalls, api.downloads)
	}
}

func TestRunDownloadsOnlineSkipsOffline(t *testing.T) {
	api := newMockAPI(map[string]bool{"a": true, "b": false, "c": true})
	if err := New(api, t.TempDir()).Run(context.Background(), products("a", "b", "c")); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	if api.downloads["a"] != 1 || api.downloads["c"] != 1 {
		t.Errorf("downloads = %v, want exactly one call for a and c", api.downloads)
	}
	if _, ok := api.downloads["b"]; ok {
		t.Errorf("offline product b was downloaded")
	}
	if api.statusCalls != 3 {
		t.Errorf("status calls = %d, want 3", api.statusCalls)
	}
}

func TestRunPropagatesDownloadError(t *testing.T) {
	api := newMockAPI(map[string]bool{"a": true})
	api.downloadErr = errors.New("disk full")
	if err := New(api, t.TempDir()).Run(context.Background(), products("a")); err == nil {
		t.Fatal("Run() expected error")
	}
}
