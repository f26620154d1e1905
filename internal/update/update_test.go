package update

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

const releaseJSON = `{
  "tag_name": "v1.3.0",
  "name": "Johto",
  "html_url": "https://github.com/appengine-ltd/pokedex/releases/tag/v1.3.0",
  "published_at": "2026-09-01T10:00:00Z",
  "assets": [
    {"name": "pokedex_1.3.0_linux_arm64.tar.gz", "size": 1024,
     "browser_download_url": "https://github.com/appengine-ltd/pokedex/releases/download/v1.3.0/pokedex_1.3.0_linux_arm64.tar.gz"}
  ]
}`

func newTestChecker(t *testing.T, status int, body string) *Checker {
	t.Helper()
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/repos/appengine-ltd/pokedex/releases/latest" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return &Checker{
		Repo:    defaultRepo,
		APIBase: srv.URL,
		Hosts:   map[string]struct{}{"127.0.0.1": {}},
		Client:  srv.Client(),
	}
}

func TestCheckReportsNewerRelease(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, releaseJSON)
	res, err := c.Check(context.Background(), "v1.2.4")
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !res.Newer || res.Latest.Tag != "v1.3.0" {
		t.Fatalf("expected newer v1.3.0, got %+v", res)
	}
	if res.Latest.Published.Year() != 2026 {
		t.Fatalf("expected published date, got %v", res.Latest.Published)
	}
	if _, ok := res.Latest.Asset(ArchiveName("pokedex", res.Latest.Tag, "linux", "arm64")); !ok {
		t.Fatalf("expected linux arm64 archive in %+v", res.Latest.Assets)
	}
}

func TestCheckSurfacesHTTPErrors(t *testing.T) {
	c := newTestChecker(t, http.StatusForbidden, `{"message":"rate limited"}`)
	if _, err := c.Check(context.Background(), "v1.0.0"); err == nil {
		t.Fatalf("expected error on 403")
	}
}

func TestLatestRejectsUnlistedHost(t *testing.T) {
	c := newTestChecker(t, http.StatusOK, releaseJSON)
	c.Hosts = map[string]struct{}{"api.github.com": {}}
	if _, err := c.Latest(context.Background()); err == nil {
		t.Fatalf("expected non-allowlisted host to fail")
	}
}

func TestParseReleaseRejectsBadPayloads(t *testing.T) {
	cases := []string{
		`not json`,
		`{"name": "no tag"}`,
		`{"tag_name": "v1.0.0", "assets": [{"name": "x", "browser_download_url": "http://evil.example/x"}]}`,
	}
	for _, body := range cases {
		if _, err := parseRelease([]byte(body)); err == nil {
			t.Fatalf("expected error for %s", body)
		}
	}
}

func TestNewer(t *testing.T) {
	cases := []struct {
		current, latest string
		want            bool
	}{
		{"v1.2.0", "v1.3.0", true},
		{"1.2.0", "v1.2.0", false},
		{"v1.10.0", "v1.9.9", false},
		{"v2.0.0-rc1", "v2.0.0", true},
		{"v2.0.0", "v2.0.0-rc2", false},
		{"dev", "v9.9.9", false},
		{"v1.0.0", "nightly", false},
	}
	for _, tc := range cases {
		if got := Newer(tc.current, tc.latest); got != tc.want {
			t.Fatalf("Newer(%q, %q): expected %v, got %v", tc.current, tc.latest, tc.want, got)
		}
	}
}

func TestValidateRepo(t *testing.T) {
	for _, repo := range []string{"appengine-ltd/pokedex", "org.repo/name-1"} {
		if err := validateRepo(repo); err != nil {
			t.Fatalf("expected valid repo %q, got error: %v", repo, err)
		}
	}
	for _, repo := range []string{"", "owner", "owner/repo/extra", "owner /repo", "../owner/repo"} {
		if err := validateRepo(repo); err == nil {
			t.Fatalf("expected invalid repo %q to fail", repo)
		}
	}
}

func TestValidateHTTPSURL(t *testing.T) {
	allowed := map[string]struct{}{"github.com": {}}
	if err := validateHTTPSURL("https://github.com/appengine-ltd/pokedex", allowed); err != nil {
		t.Fatalf("expected allowed URL to pass: %v", err)
	}
	if err := validateHTTPSURL("http://github.com/appengine-ltd/pokedex", allowed); err == nil {
		t.Fatalf("expected non-https URL to fail")
	}
}
