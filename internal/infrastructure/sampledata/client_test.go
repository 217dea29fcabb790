package sampledata

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestFetchSample(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/test/data/orders" {
			t.Errorf("path = %q, want /v1/test/data/orders", r.URL.Path)
		}
		w.Write([]byte(`[{"id": 1, "total": 12.5}]`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	sample, err := client.FetchSample(context.Background(), "/data", "orders")
	if err != nil {
		t.Fatalf("FetchSample failed: %v", err)
	}
	if sample != `[{"id": 1, "total": 12.5}]` {
		t.Errorf("sample = %q", sample)
	}
}

func TestFetchSampleServicesPath(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/test/services/customers" {
			t.Errorf("path = %q, want /v1/test/services/customers", r.URL.Path)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	if _, err := client.FetchSample(context.Background(), "/services", "customers"); err != nil {
		t.Fatalf("FetchSample failed: %v", err)
	}
}

func TestFetchSampleError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	_, err := client.FetchSample(context.Background(), "/data", "orders")
	if err == nil {
		t.Fatal("expected error for 502 response")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error should carry the status code: %v", err)
	}
}

func TestTriggerExport(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/test/data/orders" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.Query().Get("export") != "true" {
			t.Errorf("export flag missing: %q", r.URL.RawQuery)
		}
		w.Write([]byte(`{"status": "started"}`))
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	if err := client.TriggerExport(context.Background(), "orders"); err != nil {
		t.Fatalf("TriggerExport failed: %v", err)
	}
}

func TestTriggerExportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(server.URL)

	if err := client.TriggerExport(context.Background(), "orders"); err == nil {
		t.Fatal("expected error for 500 response")
	}
}
