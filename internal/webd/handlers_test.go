package webd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/paulmach/orb/geojson"

	"honnef.co/go/venn/descriptor"
)

const testDiagrams = `{
	"diagrams_list": ["rect", "square"],
	"rect": {"name": "Rectangles", "n": 2, "curve": "M -0.5 -1 L 1.5 -1 L 1.5 1 L -0.5 1 Z"},
	"square": {"name": "Square", "n": 2, "curve": "M -1 -1 L 1 -1 L 1 1 L -1 1 Z"}
}`

func newTestWebDaemon(t *testing.T) *WebDaemon {
	t.Helper()
	c, err := descriptor.Parse([]byte(testDiagrams))
	if err != nil {
		t.Fatal(err)
	}
	d, err := NewWebDaemon(nil, c)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func get(t *testing.T, h http.Handler, url string) (*http.Response, []byte) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	resp := w.Result()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	return resp, body
}

func TestWebDaemon_ping(t *testing.T) {
	resp, body := get(t, newTestWebDaemon(t).NewRouter(), "http://venn.test/ping")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if string(body) != "pong" {
		t.Errorf("body is not pong: %s", body)
	}
}

func TestWebDaemon_listDiagrams(t *testing.T) {
	resp, body := get(t, newTestWebDaemon(t).NewRouter(), "http://venn.test/diagrams")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("got content type %q", ct)
	}
	var got []diagramSummary
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	want := []diagramSummary{
		{Key: "rect", Name: "Rectangles", N: 2, Regions: 3},
		{Key: "square", Name: "Square", N: 2, Regions: 3},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("unexpected diagrams (-want +got):\n%s", d)
	}
}

func TestWebDaemon_diagramCatalog(t *testing.T) {
	s := newTestWebDaemon(t)
	router := s.NewRouter()
	// Lookup falls back to the diagram's name.
	for _, name := range []string{"rect", "rectangles"} {
		resp, body := get(t, router, "http://venn.test/diagrams/"+name)
		if resp.StatusCode != http.StatusOK {
			t.Fatalf("%s: got status %d: %s", name, resp.StatusCode, body)
		}
		var got catalogResponse
		if err := json.Unmarshal(body, &got); err != nil {
			t.Fatal(err)
		}
		if got.Name != "Rectangles" || got.N != 2 {
			t.Errorf("got diagram %q with %d curves", got.Name, got.N)
		}
		if len(got.Regions) != 4 || got.Regions[0] != "" {
			t.Fatalf("unexpected regions %q", got.Regions)
		}
		for i, p := range got.Regions[1:] {
			if !strings.HasPrefix(p, "M") || !strings.HasSuffix(p, "Z") {
				t.Errorf("region %d has path %q", i+1, p)
			}
		}
	}
	if n := s.cache.Len(); n != 1 {
		t.Errorf("got %d cached catalogs, want 1", n)
	}
}

func TestWebDaemon_diagramRegion(t *testing.T) {
	router := newTestWebDaemon(t).NewRouter()
	resp, body := get(t, router, "http://venn.test/diagrams/rect/regions/2")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d: %s", resp.StatusCode, body)
	}
	var got regionResponse
	if err := json.Unmarshal(body, &got); err != nil {
		t.Fatal(err)
	}
	if got.Index != 2 || got.Popcount != 1 || got.Empty {
		t.Errorf("unexpected region %+v", got)
	}
	if d := cmp.Diff([]int{0, 1}, got.Membership); d != "" {
		t.Errorf("unexpected membership (-want +got):\n%s", d)
	}
	if math.Abs(got.Area-2) > 1e-9 {
		t.Errorf("got area %g, want 2", got.Area)
	}

	for _, url := range []string{
		"http://venn.test/diagrams/rect/regions/0",
		"http://venn.test/diagrams/rect/regions/4",
		"http://venn.test/diagrams/nope/regions/1",
		"http://venn.test/diagrams/rect/regions/x",
	} {
		if resp, _ := get(t, router, url); resp.StatusCode != http.StatusNotFound {
			t.Errorf("%s: got status %d, want %d", url, resp.StatusCode, http.StatusNotFound)
		}
	}
}

func TestWebDaemon_degenerateDiagram(t *testing.T) {
	s := newTestWebDaemon(t)
	resp, body := get(t, s.NewRouter(), "http://venn.test/diagrams/square")
	if resp.StatusCode != http.StatusUnprocessableEntity {
		t.Fatalf("got status %d, want %d", resp.StatusCode, http.StatusUnprocessableEntity)
	}
	if !strings.Contains(string(body), "empty region") {
		t.Errorf("body does not mention the empty region: %s", body)
	}
	if n := s.cache.Len(); n != 0 {
		t.Errorf("failed build was cached")
	}
}

func TestWebDaemon_diagramGeoJSON(t *testing.T) {
	resp, body := get(t, newTestWebDaemon(t).NewRouter(), "http://venn.test/diagrams/rect/geojson")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("got status %d: %s", resp.StatusCode, body)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/geo+json" {
		t.Errorf("got content type %q", ct)
	}
	fc, err := geojson.UnmarshalFeatureCollection(body)
	if err != nil {
		t.Fatal(err)
	}
	if len(fc.Features) != 3 {
		t.Fatalf("got %d features, want 3", len(fc.Features))
	}
	for i, f := range fc.Features {
		if got := f.Properties.MustInt("index"); got != i+1 {
			t.Errorf("feature %d has index %d", i, got)
		}
	}
}

func TestWebDaemon_status(t *testing.T) {
	_, body := get(t, newTestWebDaemon(t).NewRouter(), "http://venn.test/status")
	var st webDaemonStatus
	if err := json.Unmarshal(body, &st); err != nil {
		t.Fatal(err)
	}
	if st.Uptime == "" || st.Diagrams != 2 {
		t.Errorf("unexpected status %+v", st)
	}
}

func TestNewWebDaemonInvalid(t *testing.T) {
	c, err := descriptor.Parse([]byte(`{"name": "Line", "n": 3, "curve": "M 0 0 L 1 0 Z"}`))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewWebDaemon(nil, c); err == nil {
		t.Fatal("expected an error for a degenerate curve")
	}
}

func TestWebDaemon_Serve(t *testing.T) {
	s := newTestWebDaemon(t)
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	errc := make(chan error, 1)
	go func() { errc <- s.Serve(ctx, ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/ping")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("got status %d", resp.StatusCode)
	}

	cancel()
	select {
	case err := <-errc:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Errorf("Serve returned %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("server did not shut down")
	}
}
