package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"testing"
)

func TestLoginWrongPassword(t *testing.T) {
	ts := newTestServer(t, nil)
	client := newClient(t)

	resp := postForm(t, client, ts.URL+"/login", url.Values{"password": {"wrong"}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login?error=Incorrect+password" {
		t.Fatalf("expected error redirect, got %q", loc)
	}
	if len(resp.Cookies()) != 0 {
		t.Fatalf("expected no session cookie on failure, got %v", resp.Cookies())
	}
}

func TestLoginIssuesSessionCookie(t *testing.T) {
	ts := newTestServer(t, nil)
	client := newClient(t)
	login(t, ts, client)

	resp := getJSON(t, client, ts.URL+"/api/games")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected authenticated list to return 200, got %d", resp.StatusCode)
	}
}

func TestGuardBlocksAnonymous(t *testing.T) {
	ts := newTestServer(t, nil)
	client := newClient(t)

	resp := getJSON(t, client, ts.URL+"/api/games")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 for anonymous API call, got %d", resp.StatusCode)
	}

	resp = postForm(t, client, ts.URL+"/games", url.Values{"title": {"Catan"}})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected redirect for anonymous form post, got %d", resp.StatusCode)
	}
	if loc := resp.Header.Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestLogoutClearsSession(t *testing.T) {
	ts := newTestServer(t, nil)
	client := newClient(t)
	login(t, ts, client)

	resp := postForm(t, client, ts.URL+"/logout", url.Values{})
	if resp.StatusCode != http.StatusSeeOther {
		t.Fatalf("expected logout redirect, got %d", resp.StatusCode)
	}

	resp = getJSON(t, client, ts.URL+"/api/games")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401 after logout, got %d", resp.StatusCode)
	}
}

func TestLoginStatus(t *testing.T) {
	ts := newTestServer(t, nil)
	client := newClient(t)

	resp := getJSON(t, client, ts.URL+"/login")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	var body map[string]bool
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if body["authenticated"] {
		t.Fatal("expected anonymous status before login")
	}

	login(t, ts, client)
	resp = getJSON(t, client, ts.URL+"/login")
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("expected JSON body, got %v", err)
	}
	if !body["authenticated"] {
		t.Fatal("expected authenticated status after login")
	}
}

func TestLoginRateLimited(t *testing.T) {
	ts := newTestServer(t, nil)
	client := newClient(t)

	var lastLocation string
	for i := 0; i < loginBurst+1; i++ {
		resp := postForm(t, client, ts.URL+"/login", url.Values{"password": {"wrong"}})
		lastLocation = resp.Header.Get("Location")
	}
	if lastLocation != "/login?error=Too+many+attempts" {
		t.Fatalf("expected throttled redirect, got %q", lastLocation)
	}
}
