package sheets

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strconv"
	"strings"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/mbonetti/leetsync-engine/internal/core/domain"
)

const (
	problemsSheet  = "Problems"
	analyticsSheet = "Analytics"
	progressSheet  = "Progress"

	timestampLayout = "2006-01-02 15:04:05"
)

var problemsHeader = []any{
	"Problem Name", "Difficulty", "Topics", "Date Solved",
	"Attempts", "Status", "Problem ID", "Last Updated",
}

var analyticsHeader = []any{
	"Topic", "Total Problems", "Solved", "Percentage",
	"Last Solved", "Easy", "Medium", "Hard",
}

var progressHeader = []any{
	"Date", "Daily Count", "Weekly Count", "Monthly Count",
	"Streak", "Total Solved", "Last Updated",
}

// Client writes the three report worksheets through the Sheets v4 API.
type Client struct {
	svc           *sheets.Service
	spreadsheetID string
}

var _ domain.SheetWriter = (*Client)(nil)

// NewClient authenticates with a service account, from a key file or inline
// JSON, and makes sure the required worksheets exist.
func NewClient(ctx context.Context, spreadsheetID, credentialsPath, credentialsJSON string) (*Client, error) {
	var opts []option.ClientOption
	switch {
	case credentialsJSON != "":
		opts = append(opts, option.WithCredentialsJSON([]byte(credentialsJSON)))
	case credentialsPath != "":
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	default:
		return nil, fmt.Errorf("sheets: either a credentials path or inline JSON is required")
	}
	opts = append(opts, option.WithScopes(sheets.SpreadsheetsScope))

	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to build service: %w", err)
	}

	c := &Client{svc: svc, spreadsheetID: spreadsheetID}
	if err := c.ensureSheets(ctx); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Client) ensureSheets(ctx context.Context) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriterUnavailable, err)
	}

	existing := make(map[string]bool)
	for _, sh := range spreadsheet.Sheets {
		existing[sh.Properties.Title] = true
	}

	var requests []*sheets.Request
	for _, title := range []string{problemsSheet, analyticsSheet, progressSheet} {
		if !existing[title] {
			requests = append(requests, &sheets.Request{
				AddSheet: &sheets.AddSheetRequest{
					Properties: &sheets.SheetProperties{Title: title},
				},
			})
		}
	}

	if len(requests) > 0 {
		_, err := c.svc.Spreadsheets.BatchUpdate(c.spreadsheetID, &sheets.BatchUpdateSpreadsheetRequest{
			Requests: requests,
		}).Context(ctx).Do()
		if err != nil {
			return fmt.Errorf("sheets: failed to create worksheets: %w", err)
		}
		log.Printf("sheets: created %d missing worksheets", len(requests))
	}

	return nil
}

// replaceSheet clears a worksheet and rewrites it, header row first.
func (c *Client) replaceSheet(ctx context.Context, sheet string, header []any, rows [][]any) error {
	clearRange := fmt.Sprintf("%s!A1:Z", sheet)
	if _, err := c.svc.Spreadsheets.Values.Clear(c.spreadsheetID, clearRange, &sheets.ClearValuesRequest{}).Context(ctx).Do(); err != nil {
		return fmt.Errorf("sheets: failed to clear %s: %w", sheet, err)
	}

	values := make([][]any, 0, len(rows)+1)
	values = append(values, header)
	values = append(values, rows...)

	writeRange := fmt.Sprintf("%s!A1", sheet)
	_, err := c.svc.Spreadsheets.Values.Update(c.spreadsheetID, writeRange, &sheets.ValueRange{
		Values: values,
	}).ValueInputOption("USER_ENTERED").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: failed to update %s: %w", sheet, err)
	}

	log.Printf("sheets: wrote %d rows to %s", len(rows), sheet)
	return nil
}

func (c *Client) UpdateProblems(ctx context.Context, records []domain.ProblemRecord) error {
	now := time.Now().Format(timestampLayout)
	rows := make([][]any, 0, len(records))
	for _, r := range records {
		rows = append(rows, []any{
			r.Title,
			r.Difficulty,
			strings.Join(r.Topics, ", "),
			r.DateSolved,
			r.Attempts,
			r.Status,
			r.ProblemID,
			now,
		})
	}
	return c.replaceSheet(ctx, problemsSheet, problemsHeader, rows)
}

func (c *Client) UpdateAnalytics(ctx context.Context, topics map[string]*domain.TopicStat) error {
	names := make([]string, 0, len(topics))
	for name := range topics {
		names = append(names, name)
	}
	sort.Strings(names)

	rows := make([][]any, 0, len(names))
	for _, name := range names {
		st := topics[name]
		rows = append(rows, []any{
			name,
			st.Total,
			st.Solved,
			fmt.Sprintf("=%d/%d", st.Solved, maxInt(st.Total, 1)),
			st.LastSolved,
			st.Easy,
			st.Medium,
			st.Hard,
		})
	}
	return c.replaceSheet(ctx, analyticsSheet, analyticsHeader, rows)
}

func (c *Client) UpdateProgress(ctx context.Context, entries []domain.DailyProgressEntry) error {
	now := time.Now().Format(timestampLayout)
	rows := make([][]any, 0, len(entries))
	for _, e := range entries {
		rows = append(rows, []any{
			e.Date,
			e.DailyCount,
			e.WeeklyCount,
			e.MonthlyCount,
			e.Streak,
			e.TotalSolved,
			now,
		})
	}
	return c.replaceSheet(ctx, progressSheet, progressHeader, rows)
}

// ExistingProblems reads the Problems worksheet back into records. Rows
// without a title are skipped, mirroring the normalizer's contract.
func (c *Client) ExistingProblems(ctx context.Context) ([]domain.ProblemRecord, error) {
	readRange := fmt.Sprintf("%s!A2:H", problemsSheet)
	resp, err := c.svc.Spreadsheets.Values.Get(c.spreadsheetID, readRange).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to read %s: %w", problemsSheet, err)
	}

	records := make([]domain.ProblemRecord, 0, len(resp.Values))
	for _, row := range resp.Values {
		title := cellString(row, 0)
		if title == "" {
			continue
		}

		records = append(records, domain.ProblemRecord{
			Title:      title,
			Difficulty: domain.NormalizeDifficulty(cellString(row, 1)),
			Topics:     splitTopics(cellString(row, 2)),
			DateSolved: cellString(row, 3),
			Attempts:   cellInt(row, 4, 1),
			Status:     cellString(row, 5),
			ProblemID:  cellString(row, 6),
		})
	}

	return records, nil
}

func (c *Client) TestConnection(ctx context.Context) error {
	spreadsheet, err := c.svc.Spreadsheets.Get(c.spreadsheetID).Fields("properties.title").Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrWriterUnavailable, err)
	}
	log.Printf("sheets: connected to spreadsheet %q", spreadsheet.Properties.Title)
	return nil
}

func cellString(row []any, idx int) string {
	if idx >= len(row) {
		return ""
	}
	s, _ := row[idx].(string)
	return strings.TrimSpace(s)
}

func cellInt(row []any, idx, fallback int) int {
	s := cellString(row, idx)
	if s == "" {
		return fallback
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return n
}

func splitTopics(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ", ")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
