package jira

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"xtime/internal/domain"
	"xtime/internal/logging"
)

func testAccount(url string) domain.Account {
	return domain.Account{ID: "a1", Email: "dev@example.com", Domain: url + "/"}
}

func TestSearchWorklogs(t *testing.T) {
	var got searchRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/rest/api/3/search/jql" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		user, pass, ok := r.BasicAuth()
		if !ok || user != "dev@example.com" || pass != "secret" {
			t.Errorf("unexpected basic auth %q/%q", user, pass)
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"issues":[
			{"key":"PROJ-1","fields":{"summary":"Login page","worklog":{"worklogs":[
				{"id":"10","started":"2024-05-06T09:00:00.000+0300","timeSpentSeconds":3600},
				{"id":"11","started":"2024-05-01T09:00:00.000+0300","timeSpentSeconds":1800}
			]}}},
			{"key":"PROJ-2","fields":{"summary":"API","worklog":{"worklogs":[
				{"id":"12","started":"2024-05-07T14:30:00.000+0000","timeSpentSeconds":5400}
			]}}}
		]}`))
	}))
	defer srv.Close()

	c := newClient(srv.Client(), logging.Nop())
	from := time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC)

	logs, err := c.SearchWorklogs(context.Background(), testAccount(srv.URL), "secret", from, to)
	if err != nil {
		t.Fatalf("SearchWorklogs: %v", err)
	}

	if got.JQL != WorklogJQL("2024-05-06", "2024-05-12") {
		t.Errorf("unexpected JQL %q", got.JQL)
	}
	if got.MaxResults != 100 || strings.Join(got.Fields, ",") != "worklog,summary" {
		t.Errorf("unexpected request %+v", got)
	}
	if len(logs) != 2 {
		t.Fatalf("expected 2 worklogs in range, got %d: %+v", len(logs), logs)
	}
	if logs[0].IssueKey != "PROJ-1" || logs[0].TimeSpentSeconds != 3600 || logs[0].IssueSummary != "Login page" {
		t.Errorf("unexpected first worklog %+v", logs[0])
	}
	if logs[1].IssueKey != "PROJ-2" || logs[1].Started.Hour() != 14 {
		t.Errorf("unexpected second worklog %+v", logs[1])
	}
}

func TestSearchWorklogs_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte("bad token"))
	}))
	defer srv.Close()

	c := newClient(srv.Client(), logging.Nop())
	_, err := c.SearchWorklogs(context.Background(), testAccount(srv.URL), "x", time.Now(), time.Now())

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	if apiErr.Status != http.StatusUnauthorized || apiErr.Body != "bad token" {
		t.Errorf("unexpected APIError %+v", apiErr)
	}
}

func TestAddWorklog(t *testing.T) {
	var got addWorklogRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rest/api/3/issue/PROJ-7/worklog" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":"100"}`))
	}))
	defer srv.Close()

	c := newClient(srv.Client(), logging.Nop())
	started := time.Date(2024, 5, 6, 9, 0, 0, 0, time.FixedZone("", 3*3600))
	if err := c.AddWorklog(context.Background(), testAccount(srv.URL), "secret", "PROJ-7", 1500, "", started); err != nil {
		t.Fatalf("AddWorklog: %v", err)
	}

	if got.TimeSpentSeconds != 1500 {
		t.Errorf("timeSpentSeconds = %d", got.TimeSpentSeconds)
	}
	if got.Started != "2024-05-06T09:00:00.000+0300" {
		t.Errorf("started = %q", got.Started)
	}
	if got.Comment.Type != "doc" || got.Comment.Content[0].Content[0].Text != "XTime Log" {
		t.Errorf("unexpected comment %+v", got.Comment)
	}
}

func TestAddWorklog_NoRetryOnServerError(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := newClient(srv.Client(), logging.Nop())
	err := c.AddWorklog(context.Background(), testAccount(srv.URL), "secret", "PROJ-7", 60, "x", time.Now())

	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusInternalServerError {
		t.Fatalf("expected 500 APIError, got %v", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("worklog creation must not be retried on 5xx, got %d calls", n)
	}
}

func TestAddWorklog_InvalidInput(t *testing.T) {
	c := newClient(nil, logging.Nop())
	acct := testAccount("http://unused.invalid")

	if err := c.AddWorklog(context.Background(), acct, "t", "", 60, "", time.Now()); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for empty key, got %v", err)
	}
	if err := c.AddWorklog(context.Background(), acct, "t", "PROJ-1", 0, "", time.Now()); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput for zero duration, got %v", err)
	}
}

func TestAddWorklog_RejectsMalformedKey(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	c := newClient(srv.Client(), logging.Nop())
	for _, key := range []string{"../..", "PROJ-1/../../myself", "proj-1", "PROJ", "PROJ-1?x=1", ".."} {
		err := c.AddWorklog(context.Background(), testAccount(srv.URL), "t", key, 60, "", time.Now())
		if !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("AddWorklog(%q): expected ErrInvalidInput, got %v", key, err)
		}
	}
	if n := hits.Load(); n != 0 {
		t.Errorf("malformed keys must not reach the server, got %d requests", n)
	}
}
