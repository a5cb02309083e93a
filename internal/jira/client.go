// Package jira is a small Jira Cloud REST v3 client covering worklog
// search and worklog creation.
package jira

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/rs/zerolog"

	"xtime/internal/domain"
	"xtime/internal/logging"
)

const (
	// TimeLayout is the format Jira uses for worklog "started".
	TimeLayout = "2006-01-02T15:04:05.000-0700"
	dateLayout = "2006-01-02"

	maxResults     = 100
	defaultComment = "XTime Log"
)

// Client talks to Jira Cloud on behalf of one account at a time; the
// account and token are passed per call.
type Client struct {
	search *http.Client
	write  *http.Client
	log    zerolog.Logger
}

// NewClient builds a client. Searches are retried on transient failures;
// worklog creation is only retried when Jira rate-limits the request, so a
// worklog is never posted twice.
func NewClient(log zerolog.Logger) *Client {
	return newClient(nil, log)
}

func newClient(base *http.Client, log zerolog.Logger) *Client {
	log = log.With().Str("component", "jira").Logger()
	return &Client{
		search: retryingClient(base, log, retryablehttp.DefaultRetryPolicy),
		write:  retryingClient(base, log, rateLimitOnly),
		log:    log,
	}
}

func retryingClient(base *http.Client, log zerolog.Logger, policy retryablehttp.CheckRetry) *http.Client {
	rc := retryablehttp.NewClient()
	if base != nil {
		rc.HTTPClient = base
	}
	rc.RetryMax = 3
	rc.RetryWaitMin = 500 * time.Millisecond
	rc.RetryWaitMax = 5 * time.Second
	rc.CheckRetry = policy
	// Hand the last response back so non-2xx bodies reach APIError.
	rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
	rc.Logger = logging.NewLeveledLogger(log)
	return rc.StandardClient()
}

func rateLimitOnly(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	return err == nil && resp != nil && resp.StatusCode == http.StatusTooManyRequests, nil
}

// issueKeyPattern matches Jira issue keys such as PROJ-123.
var issueKeyPattern = regexp.MustCompile(`^[A-Z][A-Z0-9_]+-[0-9]+$`)

// APIError is returned for non-2xx responses.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("jira api error: %d %s", e.Status, strings.TrimSpace(e.Body))
}

type searchRequest struct {
	JQL        string   `json:"jql"`
	Fields     []string `json:"fields"`
	MaxResults int      `json:"maxResults"`
}

type searchResponse struct {
	Issues []struct {
		Key    string `json:"key"`
		Fields struct {
			Summary string `json:"summary"`
			Worklog struct {
				Worklogs []struct {
					ID               string `json:"id"`
					Started          string `json:"started"`
					TimeSpentSeconds int    `json:"timeSpentSeconds"`
				} `json:"worklogs"`
			} `json:"worklog"`
		} `json:"fields"`
	} `json:"issues"`
}

// WorklogJQL returns the query for the current user's worklogs between
// from and to (inclusive, YYYY-MM-DD).
func WorklogJQL(from, to string) string {
	return fmt.Sprintf(`worklogAuthor = currentUser() AND worklogDate >= "%s" AND worklogDate <= "%s"`, from, to)
}

// SearchWorklogs returns the worklogs of the current user whose start date
// lies within [from, to].
func (c *Client) SearchWorklogs(ctx context.Context, acct domain.Account, token string, from, to time.Time) ([]domain.Worklog, error) {
	after, before := from.Format(dateLayout), to.Format(dateLayout)

	body := searchRequest{
		JQL:        WorklogJQL(after, before),
		Fields:     []string{"worklog", "summary"},
		MaxResults: maxResults,
	}
	var res searchResponse
	if err := c.do(ctx, c.search, acct, token, "/rest/api/3/search/jql", body, &res); err != nil {
		return nil, fmt.Errorf("search worklogs: %w", err)
	}

	var out []domain.Worklog
	for _, issue := range res.Issues {
		for _, wl := range issue.Fields.Worklog.Worklogs {
			day, _, _ := strings.Cut(wl.Started, "T")
			if day < after || day > before {
				continue
			}
			started, err := time.Parse(TimeLayout, wl.Started)
			if err != nil {
				c.log.Warn().Err(err).Str("issue", issue.Key).Str("started", wl.Started).Msg("unparseable worklog start")
				continue
			}
			out = append(out, domain.Worklog{
				ID:               wl.ID,
				IssueKey:         issue.Key,
				IssueSummary:     issue.Fields.Summary,
				TimeSpentSeconds: wl.TimeSpentSeconds,
				Started:          started,
			})
		}
	}
	return out, nil
}

type adfText struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type adfNode struct {
	Type    string    `json:"type"`
	Content []adfText `json:"content"`
}

type adfDoc struct {
	Type    string    `json:"type"`
	Version int       `json:"version"`
	Content []adfNode `json:"content"`
}

type addWorklogRequest struct {
	TimeSpentSeconds int    `json:"timeSpentSeconds"`
	Comment          adfDoc `json:"comment"`
	Started          string `json:"started"`
}

// AddWorklog logs seconds against issueKey.
func (c *Client) AddWorklog(ctx context.Context, acct domain.Account, token, issueKey string, seconds int, comment string, started time.Time) error {
	if !issueKeyPattern.MatchString(issueKey) {
		return fmt.Errorf("add worklog: invalid issue key %q: %w", issueKey, domain.ErrInvalidInput)
	}
	if seconds <= 0 {
		return fmt.Errorf("add worklog: positive duration required: %w", domain.ErrInvalidInput)
	}
	if comment == "" {
		comment = defaultComment
	}
	body := addWorklogRequest{
		TimeSpentSeconds: seconds,
		Comment: adfDoc{
			Type:    "doc",
			Version: 1,
			Content: []adfNode{{
				Type:    "paragraph",
				Content: []adfText{{Type: "text", Text: comment}},
			}},
		},
		Started: started.Format(TimeLayout),
	}
	path := "/rest/api/3/issue/" + url.PathEscape(issueKey) + "/worklog"
	if err := c.do(ctx, c.write, acct, token, path, body, nil); err != nil {
		return fmt.Errorf("add worklog %s: %w", issueKey, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, hc *http.Client, acct domain.Account, token, path string, in, out any) error {
	payload, err := json.Marshal(in)
	if err != nil {
		return err
	}
	endpoint := strings.TrimRight(acct.Domain, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.SetBasicAuth(acct.Email, token)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{Status: resp.StatusCode, Body: string(b)}
	}
	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
