package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"gamedex/internal/ai"
	"gamedex/internal/config"
	"gamedex/internal/db"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testPassword = "hunter2"

type fakeAI struct {
	metadata map[string]string
	recs     []ai.Recommendation
	err      error
}

func (f *fakeAI) FetchMetadata(ctx context.Context, title string) (map[string]string, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.metadata, nil
}

func (f *fakeAI) FetchRecommendations(ctx context.Context, query string, catalog []ai.GameFacts, limit int) ([]ai.Recommendation, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.recs, nil
}

func testConfig() config.Config {
	cfg := config.Default()
	cfg.SessionSecretKey = "test-secret-key"
	cfg.FamilyPassword = testPassword
	return cfg
}

func newTestServer(t *testing.T, aiClient ai.Client) *httptest.Server {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("expected sqlite open to succeed, got %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("expected migration to succeed, got %v", err)
	}
	ts := httptest.NewServer(New(conn, testConfig(), aiClient).Handler())
	t.Cleanup(ts.Close)
	return ts
}

// newClient returns a cookie-keeping client that does not follow redirects,
// so tests can assert on Location headers.
func newClient(t *testing.T) *http.Client {
	t.Helper()
	jar, err := cookiejar.New(nil)
	if err != nil {
		t.Fatalf("expected cookie jar, got %v", err)
	}
	return &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

func postForm(t *testing.T, client *http.Client, url string, form url.Values) *http.Response {
	t.Helper()
	resp, err := client.Post(url, "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	if err != nil {
		t.Fatalf("expected request to %s to succeed, got %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func login(t *testing.T, ts *httptest.Server, client *http.Client) {
	t.Helper()
	resp := postForm(t, client, ts.URL+"/login", url.Values{"password": {testPassword}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected login redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/" {
		t.Fatalf("expected redirect to /, got %q", loc)
	}
}

func getJSON(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	resp, err := client.Get(url)
	if err != nil {
		t.Fatalf("expected request to %s to succeed, got %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func doDelete(t *testing.T, client *http.Client, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodDelete, url, nil)
	if err != nil {
		t.Fatalf("expected request build to succeed, got %v", err)
	}
	resp, err := client.Do(req)
	if err != nil {
		t.Fatalf("expected delete %s to succeed, got %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}
