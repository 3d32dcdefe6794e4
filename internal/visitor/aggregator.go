// internal/visitor/aggregator.go
package visitor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"portfolio-api/internal/database"
	"portfolio-api/internal/model"
)

const (
	recentVisitsLimit = 10
	defaultDailyLimit = 30
	maxDailyLimit     = 365

	maxHeaderLen = 500
	maxPageLen   = 255
	maxIPLen     = 45
)

// Aggregator records page visits and answers aggregate queries over them.
type Aggregator struct {
	store  database.Store
	logger *slog.Logger
	now    func() time.Time
	loc    *time.Location
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(a *Aggregator) { a.now = now }
}

// WithLocation sets the timezone that decides which calendar day a visit belongs to.
// It defaults to the process-local timezone.
func WithLocation(loc *time.Location) Option {
	return func(a *Aggregator) { a.loc = loc }
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(store database.Store, logger *slog.Logger, opts ...Option) *Aggregator {
	a := &Aggregator{
		store:  store,
		logger: logger.With("component", "visitor"),
		now:    time.Now,
		loc:    time.Local,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// RecordVisit appends a visitor log entry and bumps today's counter in one transaction.
func (a *Aggregator) RecordVisit(ctx context.Context, v model.Visit) (model.VisitSnapshot, error) {
	var snapshot model.VisitSnapshot
	err := a.store.ExecTx(ctx, func(q database.Querier) error {
		var err error
		snapshot, err = a.recordVisit(ctx, q, v)
		return err
	})
	if err != nil {
		return model.VisitSnapshot{}, fmt.Errorf("failed to record visit: %w", err)
	}
	a.logger.Debug("Visit recorded", "page", v.Page, "today_count", snapshot.TodayCount)
	return snapshot, nil
}

func (a *Aggregator) recordVisit(ctx context.Context, q database.Querier, v model.Visit) (model.VisitSnapshot, error) {
	now := a.now().In(a.loc)
	day := calendarDay(now)

	page := v.Page
	if page == "" {
		page = "/"
	}

	if _, err := q.CreateVisitorLog(ctx, database.CreateVisitorLogParams{
		UserID:      toInt8(v.UserID),
		IpAddress:   truncate(v.IP, maxIPLen),
		UserAgent:   truncate(v.UserAgent, maxHeaderLen),
		Referrer:    truncate(v.Referrer, maxHeaderLen),
		PageVisited: truncate(page, maxPageLen),
		VisitDate:   day,
		VisitedAt:   now,
	}); err != nil {
		return model.VisitSnapshot{}, err
	}

	counter, err := q.IncrementDayCounter(ctx, day)
	if err != nil {
		return model.VisitSnapshot{}, err
	}

	total, err := q.SumVisitCounts(ctx)
	if err != nil {
		return model.VisitSnapshot{}, err
	}

	return model.VisitSnapshot{
		Date:       day,
		TodayCount: int64(counter.VisitCount),
		TotalCount: total,
	}, nil
}

// Stats summarizes the visitor log.
func (a *Aggregator) Stats(ctx context.Context) (model.VisitorStats, error) {
	total, err := a.store.SumVisitCounts(ctx)
	if err != nil {
		return model.VisitorStats{}, fmt.Errorf("failed to sum visit counts: %w", err)
	}
	unique, err := a.store.CountDistinctVisitorIPs(ctx)
	if err != nil {
		return model.VisitorStats{}, fmt.Errorf("failed to count distinct visitors: %w", err)
	}
	authenticated, err := a.store.CountAuthenticatedVisits(ctx)
	if err != nil {
		return model.VisitorStats{}, fmt.Errorf("failed to count authenticated visits: %w", err)
	}
	logs, err := a.store.ListRecentVisitorLogs(ctx, recentVisitsLimit)
	if err != nil {
		return model.VisitorStats{}, fmt.Errorf("failed to list recent visits: %w", err)
	}

	recent := make([]model.RecentVisit, len(logs))
	for i, l := range logs {
		recent[i] = model.RecentVisit{
			IP:            l.IpAddress,
			Page:          l.PageVisited,
			Time:          l.VisitedAt,
			Authenticated: l.UserID.Valid,
		}
	}

	return model.VisitorStats{
		TotalVisitors:         total,
		UniqueVisitors:        unique,
		AuthenticatedVisitors: authenticated,
		RecentVisitors:        recent,
	}, nil
}

// DailyStats returns the most recent day counters, newest first, and the all-time total.
// A non-positive limit selects the default of 30 days.
func (a *Aggregator) DailyStats(ctx context.Context, limit int) (model.DailyStats, error) {
	if limit <= 0 {
		limit = defaultDailyLimit
	}
	limit = min(limit, maxDailyLimit)

	rows, err := a.store.ListDayCounters(ctx, int32(limit))
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("failed to list day counters: %w", err)
	}
	total, err := a.store.SumVisitCounts(ctx)
	if err != nil {
		return model.DailyStats{}, fmt.Errorf("failed to sum visit counts: %w", err)
	}

	days := make([]model.DayStat, len(rows))
	for i, r := range rows {
		days[i] = model.DayStat{
			Date:        r.VisitDate.Format(time.DateOnly),
			Count:       int64(r.VisitCount),
			Unique:      int64(r.UniqueVisitors),
			DistinctIPs: r.DistinctIps,
		}
	}
	return model.DailyStats{TotalAllTime: total, DailyStats: days}, nil
}

// Count returns the all-time visit count and today's count.
func (a *Aggregator) Count(ctx context.Context) (model.VisitCount, error) {
	total, err := a.TotalVisits(ctx)
	if err != nil {
		return model.VisitCount{}, err
	}

	var today int64
	counter, err := a.store.GetDayCounter(ctx, calendarDay(a.now().In(a.loc)))
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return model.VisitCount{}, fmt.Errorf("failed to get today's counter: %w", err)
	default:
		today = int64(counter.VisitCount)
	}

	return model.VisitCount{TotalVisitors: total, TodayVisitors: today}, nil
}

// TotalVisits returns the sum of all day counters.
func (a *Aggregator) TotalVisits(ctx context.Context) (int64, error) {
	total, err := a.store.SumVisitCounts(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to sum visit counts: %w", err)
	}
	return total, nil
}

// calendarDay truncates t to midnight in its own location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

func toInt8(id *int64) pgtype.Int8 {
	if id == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *id, Valid: true}
}
