package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/johnnyknox/leaderboard/go/clients"
	"github.com/johnnyknox/leaderboard/go/internal/config"
)

const upstreamBody = `{"success":true,"data":[` +
	`{"uid":"1","name":"Nottingham","wagered":{"this_week":1500,"this_month":2000}},` +
	`{"uid":"2","name":"Bob","wagered":{"this_week":2500,"this_month":2600}},` +
	`{"uid":"3","name":"nobody","wagered":{"this_week":0,"this_month":10}}]}`

func newTestServer(t *testing.T, source clients.ExternalSource) (*Services, *httptest.Server) {
	t.Helper()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(upstreamBody))
	}))
	t.Cleanup(upstream.Close)

	cfg := config.Default()
	cfg.Upstream.BaseURL = upstream.URL
	cfg.Leaderboard.Source = source
	cfg.Leaderboard.PollInterval = 0

	var services *Services
	front := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		setupServer(services, cfg.Port).Handler.ServeHTTP(w, r)
	}))
	t.Cleanup(front.Close)
	cfg.Leaderboard.ProxyURL = front.URL + "/api/leaderboard"

	clock := clockwork.NewFakeClockAt(time.Date(2025, 1, 4, 12, 0, 0, 0, time.UTC))
	var err error
	services, err = setupServices(cfg, clock)
	if err != nil {
		t.Fatalf("setupServices failed: %v", err)
	}
	return services, front
}

func get(t *testing.T, url string) (int, string) {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("GET %s: %v", url, err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, string(body)
}

func TestServerRoutes(t *testing.T) {
	for _, source := range []clients.ExternalSource{clients.ExternalSourceUpstream, clients.ExternalSourceProxy} {
		t.Run(string(source), func(t *testing.T) {
			services, front := newTestServer(t, source)

			if code, body := get(t, front.URL+"/health"); code != http.StatusOK || body != "OK" {
				t.Errorf("health = %d %q", code, body)
			}

			if code, body := get(t, front.URL+"/api/leaderboard"); code != http.StatusOK || body != upstreamBody {
				t.Errorf("proxy = %d %q", code, body)
			}

			if err := services.Poller.RefreshNow(context.Background()); err != nil {
				t.Fatalf("RefreshNow failed: %v", err)
			}

			code, page := get(t, front.URL+"/leaderboard")
			if code != http.StatusOK {
				t.Fatalf("page status = %d", code)
			}
			bob := strings.Index(page, "Bob")
			notts := strings.Index(page, "NOT***AM")
			if bob < 0 || notts < 0 || bob > notts {
				t.Errorf("page rows missing or out of order")
			}
			if strings.Contains(page, "NOB***DY") {
				t.Errorf("zero-wager player should not be listed")
			}
			if !strings.Contains(page, "$2,500.00") {
				t.Errorf("page missing formatted wager")
			}
		})
	}
}
