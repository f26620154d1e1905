// Package update checks the project's GitHub releases for a newer build.
package update

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	defaultRepo = "appengine-ltd/pokedex"
	githubAPI   = "https://api.github.com"

	maxReleaseBytes = 1 << 20
)

var (
	allowedAssetHosts = map[string]struct{}{
		"api.github.com":                        {},
		"github.com":                            {},
		"objects.githubusercontent.com":         {},
		"github-releases.githubusercontent.com": {},
	}
	repoPattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+/[A-Za-z0-9_.-]+$`)
)

// Asset is one downloadable file attached to a release.
type Asset struct {
	Name string
	URL  string
	Size int64
}

type Release struct {
	Tag       string
	Name      string
	Page      string
	Published time.Time
	Assets    []Asset
}

// Asset returns the release asset with the given file name.
func (r Release) Asset(name string) (Asset, bool) {
	for _, a := range r.Assets {
		if a.Name == name {
			return a, true
		}
	}
	return Asset{}, false
}

// Result is the outcome of a check against the running version.
type Result struct {
	Current string
	Latest  Release
	Newer   bool
}

// Checker queries the latest release of Repo. APIBase and Hosts exist so the
// lookup can be pointed at a local server.
type Checker struct {
	Repo    string
	APIBase string
	Hosts   map[string]struct{}
	Client  *http.Client
}

func NewChecker() *Checker {
	return &Checker{
		Repo:    defaultRepo,
		APIBase: githubAPI,
		Hosts:   map[string]struct{}{"api.github.com": {}},
		Client:  &http.Client{Timeout: 20 * time.Second},
	}
}

// Check fetches the latest release and compares it with current.
func (c *Checker) Check(ctx context.Context, current string) (Result, error) {
	rel, err := c.Latest(ctx)
	if err != nil {
		return Result{}, err
	}
	return Result{Current: current, Latest: rel, Newer: Newer(current, rel.Tag)}, nil
}

// Latest fetches the newest published release.
func (c *Checker) Latest(ctx context.Context) (Release, error) {
	if err := validateRepo(c.Repo); err != nil {
		return Release{}, err
	}
	endpoint := fmt.Sprintf("%s/repos/%s/releases/latest", strings.TrimRight(c.APIBase, "/"), c.Repo)
	if err := validateHTTPSURL(endpoint, c.Hosts); err != nil {
		return Release{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Release{}, err
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	// #nosec G704 -- endpoint host is allowlisted above.
	resp, err := c.Client.Do(req)
	if err != nil {
		return Release{}, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReleaseBytes))
	if err != nil {
		return Release{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return Release{}, fmt.Errorf("github latest release: %s: %s", resp.Status, strings.TrimSpace(string(body)))
	}
	return parseRelease(body)
}

func parseRelease(body []byte) (Release, error) {
	if !gjson.ValidBytes(body) {
		return Release{}, errors.New("latest release: invalid JSON")
	}
	doc := gjson.ParseBytes(body)
	rel := Release{
		Tag:  doc.Get("tag_name").String(),
		Name: doc.Get("name").String(),
		Page: doc.Get("html_url").String(),
	}
	if rel.Tag == "" {
		return Release{}, errors.New("latest release has no tag_name")
	}
	if ts := doc.Get("published_at").String(); ts != "" {
		if t, err := time.Parse(time.RFC3339, ts); err == nil {
			rel.Published = t
		}
	}

	var assetErr error
	doc.Get("assets").ForEach(func(_, a gjson.Result) bool {
		asset := Asset{
			Name: a.Get("name").String(),
			URL:  a.Get("browser_download_url").String(),
			Size: a.Get("size").Int(),
		}
		if err := validateHTTPSURL(asset.URL, allowedAssetHosts); err != nil {
			assetErr = fmt.Errorf("invalid asset URL for %s: %w", asset.Name, err)
			return false
		}
		rel.Assets = append(rel.Assets, asset)
		return true
	})
	if assetErr != nil {
		return Release{}, assetErr
	}
	return rel, nil
}

func validateRepo(repo string) error {
	if !repoPattern.MatchString(repo) {
		return fmt.Errorf("invalid repository format: %q", repo)
	}
	return nil
}

func validateHTTPSURL(raw string, allowedHosts map[string]struct{}) error {
	parsed, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if !strings.EqualFold(parsed.Scheme, "https") {
		return fmt.Errorf("unsupported URL scheme: %s", parsed.Scheme)
	}
	host := strings.ToLower(parsed.Hostname())
	if _, ok := allowedHosts[host]; !ok {
		return fmt.Errorf("unsupported URL host: %s", host)
	}
	return nil
}

// ArchiveName is the release asset built for one platform.
func ArchiveName(project, tag, goos, goarch string) string {
	ext := "tar.gz"
	if goos == "windows" {
		ext = "zip"
	}
	return fmt.Sprintf("%s_%s_%s_%s.%s", project, strings.TrimPrefix(tag, "v"), goos, goarch, ext)
}

// Newer reports whether latest is a higher version than current. Development
// builds ("dev" or anything unparsable) never report an update.
func Newer(current, latest string) bool {
	cur, curPre, ok := parseVersion(current)
	if !ok {
		return false
	}
	lat, latPre, ok := parseVersion(latest)
	if !ok {
		return false
	}
	for i := range cur {
		if lat[i] != cur[i] {
			return lat[i] > cur[i]
		}
	}
	// 1.2.0 supersedes 1.2.0-rc1.
	return curPre != "" && latPre == ""
}

func parseVersion(v string) (core [3]int, pre string, ok bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	v, pre, _ = strings.Cut(v, "-")
	parts := strings.Split(v, ".")
	if len(parts) != 3 {
		return core, "", false
	}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return core, "", false
		}
		core[i] = n
	}
	return core, pre, true
}
