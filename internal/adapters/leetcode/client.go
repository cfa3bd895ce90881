package leetcode

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

const (
	graphqlURL     = "https://leetcode.com/graphql"
	profileURLFmt  = "https://leetcode.com/%s/"
	defaultTimeout = 30 * time.Second

	userAgent = "Mozilla/5.0 (compatible; LeetSyncEngine/1.0)"
)

// Client talks to the LeetCode GraphQL endpoint. Retries with exponential
// backoff are handled internally; callers only see ErrSourceUnavailable once
// they are exhausted.
type Client struct {
	username   string
	sessionID  string
	csrfToken  string
	maxRetries int
	httpClient *http.Client
}

var _ domain.ProblemSource = (*Client)(nil)

type Option func(*Client)

// WithSession attaches the session cookie and CSRF token needed for private
// profiles. Public profiles work without it.
func WithSession(sessionID, csrfToken string) Option {
	return func(c *Client) {
		c.sessionID = sessionID
		c.csrfToken = csrfToken
	}
}

func WithMaxRetries(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxRetries = n
		}
	}
}

func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.httpClient.Timeout = d
		}
	}
}

func NewClient(username string, opts ...Option) *Client {
	c := &Client{
		username:   username,
		maxRetries: 3,
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables"`
}

type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) post(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return err
	}

	var lastErr error
	for attempt := 1; attempt <= c.maxRetries; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(1<<(attempt-2)) * time.Second
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, graphqlURL, bytes.NewReader(body))
		if err != nil {
			return err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", userAgent)
		req.Header.Set("Accept", "application/json")
		// Brotli responses break plain decoding; restrict encodings.
		req.Header.Set("Accept-Encoding", "gzip, deflate")
		req.Header.Set("Referer", "https://leetcode.com/")
		if c.sessionID != "" && c.csrfToken != "" {
			req.AddCookie(&http.Cookie{Name: "LEETCODE_SESSION", Value: c.sessionID})
			req.Header.Set("X-CSRFToken", c.csrfToken)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			lastErr = err
			log.Printf("leetcode: request attempt %d failed: %v", attempt, err)
			continue
		}

		data, readErr := io.ReadAll(resp.Body)
		resp.Body.Close()
		if readErr != nil {
			lastErr = readErr
			continue
		}

		if resp.StatusCode != http.StatusOK {
			lastErr = fmt.Errorf("graphql status %d", resp.StatusCode)
			log.Printf("leetcode: attempt %d returned status %d", attempt, resp.StatusCode)
			continue
		}

		var gql graphqlResponse
		if err := json.Unmarshal(data, &gql); err != nil {
			lastErr = fmt.Errorf("non-JSON response: %w", err)
			continue
		}
		if len(gql.Errors) > 0 {
			return fmt.Errorf("%w: graphql error: %s", domain.ErrSourceUnavailable, gql.Errors[0].Message)
		}

		return json.Unmarshal(gql.Data, out)
	}

	return fmt.Errorf("%w: %d attempts failed: %v", domain.ErrSourceUnavailable, c.maxRetries, lastErr)
}

const userStatsQuery = `
query userStats($username: String!) {
  matchedUser(username: $username) {
    username
    profile { realName ranking }
    submitStats { acSubmissionNum { difficulty count submissions } }
  }
}`

func (c *Client) UserStatistics(ctx context.Context) (*domain.UserStatistics, error) {
	var resp struct {
		MatchedUser *struct {
			Username string `json:"username"`
			Profile  struct {
				RealName string `json:"realName"`
				Ranking  int    `json:"ranking"`
			} `json:"profile"`
			SubmitStats struct {
				AcSubmissionNum []struct {
					Difficulty  string `json:"difficulty"`
					Count       int    `json:"count"`
					Submissions int    `json:"submissions"`
				} `json:"acSubmissionNum"`
			} `json:"submitStats"`
		} `json:"matchedUser"`
	}

	if err := c.post(ctx, userStatsQuery, map[string]any{"username": c.username}, &resp); err != nil {
		return nil, err
	}
	if resp.MatchedUser == nil {
		return nil, fmt.Errorf("%w: user %q not found", domain.ErrSourceUnavailable, c.username)
	}

	stats := &domain.UserStatistics{
		Username: resp.MatchedUser.Username,
		RealName: resp.MatchedUser.Profile.RealName,
		Ranking:  resp.MatchedUser.Profile.Ranking,
	}
	for _, s := range resp.MatchedUser.SubmitStats.AcSubmissionNum {
		switch s.Difficulty {
		case "Easy":
			stats.EasySolved = s.Count
		case "Medium":
			stats.MediumSolved = s.Count
		case "Hard":
			stats.HardSolved = s.Count
		}
		stats.TotalSubmissions += s.Submissions
	}
	stats.TotalSolved = stats.EasySolved + stats.MediumSolved + stats.HardSolved
	if stats.TotalSubmissions > 0 {
		stats.AcceptanceRate = float64(stats.TotalSolved) / float64(stats.TotalSubmissions) * 100
	}

	return stats, nil
}

const submissionsQuery = `
query recentSubmissions($username: String!, $limit: Int!) {
  recentSubmissionList(username: $username, limit: $limit) {
    title titleSlug timestamp statusDisplay lang runtime memory
  }
  matchedUser(username: $username) {
    userCalendar { submissionCalendar }
  }
}`

func (c *Client) RecentAcceptedSubmissions(ctx context.Context, limit int) ([]domain.Submission, error) {
	var resp struct {
		RecentSubmissionList []struct {
			Title         string `json:"title"`
			TitleSlug     string `json:"titleSlug"`
			Timestamp     string `json:"timestamp"`
			StatusDisplay string `json:"statusDisplay"`
			Lang          string `json:"lang"`
			Runtime       string `json:"runtime"`
			Memory        string `json:"memory"`
		} `json:"recentSubmissionList"`
		MatchedUser *struct {
			UserCalendar struct {
				SubmissionCalendar string `json:"submissionCalendar"`
			} `json:"userCalendar"`
		} `json:"matchedUser"`
	}

	vars := map[string]any{"username": c.username, "limit": limit}
	if err := c.post(ctx, submissionsQuery, vars, &resp); err != nil {
		return nil, err
	}

	var calendarJSON string
	if resp.MatchedUser != nil {
		calendarJSON = resp.MatchedUser.UserCalendar.SubmissionCalendar
	}
	dailyCounts := parseCalendar(calendarJSON)

	submissions := make([]domain.Submission, 0, len(resp.RecentSubmissionList))
	for _, s := range resp.RecentSubmissionList {
		if s.StatusDisplay != "Accepted" {
			continue
		}

		var ts int64
		var dateSolved string
		if n, err := strconv.ParseInt(s.Timestamp, 10, 64); err == nil {
			ts = n
			dateSolved = time.Unix(n, 0).UTC().Format(domain.DateLayout)
		}

		submissions = append(submissions, domain.Submission{
			Title:      s.Title,
			TitleSlug:  s.TitleSlug,
			Timestamp:  ts,
			Status:     s.StatusDisplay,
			Language:   s.Lang,
			Runtime:    s.Runtime,
			Memory:     s.Memory,
			DateSolved: dateSolved,
			DailyCount: dailyCounts[dateSolved],
		})
	}

	log.Printf("leetcode: fetched %d accepted submissions for %s", len(submissions), c.username)
	return submissions, nil
}

// parseCalendar decodes the submission calendar, a JSON string mapping unix
// timestamps to daily counts. Malformed entries are skipped.
func parseCalendar(calendarJSON string) map[string]int {
	counts := make(map[string]int)
	if calendarJSON == "" {
		return counts
	}

	var raw map[string]int
	if err := json.Unmarshal([]byte(calendarJSON), &raw); err != nil {
		log.Printf("leetcode: unreadable submission calendar: %v", err)
		return counts
	}

	for tsStr, count := range raw {
		ts, err := strconv.ParseInt(tsStr, 10, 64)
		if err != nil {
			continue
		}
		counts[time.Unix(ts, 0).UTC().Format(domain.DateLayout)] = count
	}
	return counts
}

const problemDetailsQuery = `
query problemDetails($titleSlug: String!) {
  question(titleSlug: $titleSlug) {
    questionId title titleSlug difficulty topicTags { name }
    companyTagStats stats isPaidOnly categoryTitle
  }
}`

func (c *Client) ProblemDetails(ctx context.Context, slug string) (*domain.ProblemDetail, error) {
	var resp struct {
		Question *struct {
			QuestionID string `json:"questionId"`
			Title      string `json:"title"`
			TitleSlug  string `json:"titleSlug"`
			Difficulty string `json:"difficulty"`
			TopicTags  []struct {
				Name string `json:"name"`
			} `json:"topicTags"`
			CompanyTagStats string `json:"companyTagStats"`
			Stats           string `json:"stats"`
			IsPaidOnly      bool   `json:"isPaidOnly"`
			CategoryTitle   string `json:"categoryTitle"`
		} `json:"question"`
	}

	if err := c.post(ctx, problemDetailsQuery, map[string]any{"titleSlug": slug}, &resp); err != nil {
		return nil, err
	}
	if resp.Question == nil {
		return nil, fmt.Errorf("%w: problem %q not found", domain.ErrSourceUnavailable, slug)
	}

	q := resp.Question
	topics := make([]string, 0, len(q.TopicTags))
	for _, t := range q.TopicTags {
		topics = append(topics, t.Name)
	}

	return &domain.ProblemDetail{
		ProblemID:      q.QuestionID,
		Title:          q.Title,
		TitleSlug:      q.TitleSlug,
		Difficulty:     q.Difficulty,
		Topics:         topics,
		Companies:      parseCompanies(q.CompanyTagStats),
		IsPaidOnly:     q.IsPaidOnly,
		Category:       q.CategoryTitle,
		AcceptanceRate: parseAcceptanceRate(q.Stats),
	}, nil
}

// parseCompanies decodes companyTagStats, which arrives as a JSON string
// shaped either {"stats": [{"tagName": ...}]} or a bare list.
func parseCompanies(raw string) []string {
	if raw == "" {
		return nil
	}

	var wrapped struct {
		Stats []struct {
			TagName string `json:"tagName"`
		} `json:"stats"`
	}
	if err := json.Unmarshal([]byte(raw), &wrapped); err == nil && len(wrapped.Stats) > 0 {
		names := make([]string, 0, len(wrapped.Stats))
		for _, s := range wrapped.Stats {
			names = append(names, s.TagName)
		}
		return names
	}

	var list []struct {
		TagName string `json:"tagName"`
	}
	if err := json.Unmarshal([]byte(raw), &list); err == nil {
		names := make([]string, 0, len(list))
		for _, s := range list {
			names = append(names, s.TagName)
		}
		return names
	}

	return nil
}

// parseAcceptanceRate pulls acRate out of the stats JSON string; it keeps the
// raw value ("49.5%") so normalization applies one parse-with-fallback path.
func parseAcceptanceRate(raw string) string {
	if raw == "" {
		return ""
	}
	var stats struct {
		AcRate string `json:"acRate"`
	}
	if err := json.Unmarshal([]byte(raw), &stats); err != nil {
		return ""
	}
	return stats.AcRate
}

// TestConnection prefers the GraphQL stats query and falls back to a plain
// profile-page request, mirroring how flaky the GraphQL endpoint can be.
func (c *Client) TestConnection(ctx context.Context) error {
	if stats, err := c.UserStatistics(ctx); err == nil && stats.Username != "" {
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf(profileURLFmt, c.username), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: profile page returned %d", domain.ErrSourceUnavailable, resp.StatusCode)
	}
	log.Printf("leetcode: graphql check failed but profile page reachable for %s", c.username)
	return nil
}
