package scraper

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.uber.org/zap"

	"courtwatch/internal/model"
)

const (
	// One td per court inside the schedule table.
	courtColumnSelector = "div.content > table > tbody > tr > td"
	courtHeaderSelector = "th"
	// The site misspells the class name.
	availableCellSelector = "td.avaliable"
)

// FetchDay walks the paginated schedule for one date and returns the full
// availability map. Pagination starts at the activity's first page and
// stops at the first page without court columns. Any fetch or parse
// failure aborts the whole day; no partial map is returned.
func (c *Client) FetchDay(ctx context.Context, activity Activity, date time.Time) (model.Availability, error) {
	day := make(model.Availability)
	for page := activity.StartPage(); ; page++ {
		url := c.pageURL(activity, date, page)

		doc, err := c.fetchDocument(ctx, url)
		if err != nil {
			return nil, fmt.Errorf("schedule page %d: %w", page, err)
		}

		courts, columns, err := parseSchedule(doc, activity)
		if err != nil {
			return nil, fmt.Errorf("schedule page %d: %w", page, err)
		}
		if columns == 0 {
			return day, nil
		}

		for court, intervals := range courts {
			day[court] = append(day[court], intervals...)
		}
		c.log.Debug("scraped schedule page",
			zap.Int("page", page),
			zap.Int("columns", columns),
			zap.Int("courts_with_slots", len(courts)))
	}
}

// parseSchedule extracts per-court availability from one schedule page.
// The second return is the number of court columns on the page; zero means
// the page is past the end of pagination. Courts whose every cell is
// booked are left out of the map. Back-to-back intervals are merged.
func parseSchedule(doc *goquery.Document, activity Activity) (model.Availability, int, error) {
	courts := make(model.Availability)
	columns := 0
	var firstErr error

	doc.Find(courtColumnSelector).Each(func(_ int, column *goquery.Selection) {
		columns++
		if firstErr != nil {
			return
		}

		court, intervals, err := parseCourtColumn(column, activity)
		if err != nil {
			firstErr = err
			return
		}
		if len(intervals) == 0 {
			return
		}
		courts[court] = model.MergeAdjacent(intervals)
	})

	if firstErr != nil {
		return nil, columns, firstErr
	}
	return courts, columns, nil
}

func parseCourtColumn(column *goquery.Selection, activity Activity) (int, []model.Interval, error) {
	label := strings.TrimSpace(column.Find(courtHeaderSelector).First().Text())
	court, err := parseCourtLabel(label, activity)
	if err != nil {
		return 0, nil, err
	}

	var intervals []model.Interval
	var firstErr error
	column.Find(availableCellSelector).Each(func(_ int, cell *goquery.Selection) {
		if firstErr != nil {
			return
		}
		text := strings.TrimSpace(cell.Text())
		iv, err := model.ParseInterval(text)
		if err != nil {
			firstErr = &LabelError{Label: text, Err: err}
			return
		}
		intervals = append(intervals, iv)
	})
	if firstErr != nil {
		return 0, nil, firstErr
	}

	return court, intervals, nil
}

// parseCourtLabel strips the activity's fixed prefix from a column header
// and decodes the remainder as the court number.
func parseCourtLabel(label string, activity Activity) (int, error) {
	prefixLen, ok := activity.labelPrefixLen()
	if !ok {
		return 0, &LabelError{Label: label, Err: fmt.Errorf("no label prefix configured for %s", activity)}
	}
	if len(label) <= prefixLen {
		return 0, &LabelError{Label: label, Err: fmt.Errorf("shorter than the %d-byte %s prefix", prefixLen, activity)}
	}

	court, err := strconv.Atoi(label[prefixLen:])
	if err != nil {
		return 0, &LabelError{Label: label, Err: fmt.Errorf("court number: %w", err)}
	}
	if court <= 0 {
		return 0, &LabelError{Label: label, Err: fmt.Errorf("court number %d is not positive", court)}
	}
	return court, nil
}
