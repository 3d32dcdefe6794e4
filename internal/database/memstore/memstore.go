// internal/database/memstore/memstore.go

// Package memstore is an in-memory database.Store for tests. Transactions are
// serialized and roll back to a snapshot when the callback fails.
package memstore

import (
	"context"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"portfolio-api/internal/database"
)

type state struct {
	users    []database.User
	logs     []database.VisitorLog
	counters map[string]database.VisitorDayCounter
	messages []database.ContactMessage
	nextID   int64
}

func (s state) clone() state {
	c := state{
		users:    slices.Clone(s.users),
		logs:     slices.Clone(s.logs),
		counters: make(map[string]database.VisitorDayCounter, len(s.counters)),
		messages: slices.Clone(s.messages),
		nextID:   s.nextID,
	}
	for k, v := range s.counters {
		c.counters[k] = v
	}
	return c
}

// Store is an in-memory implementation of database.Store.
type Store struct {
	txMu sync.Mutex
	mu   sync.Mutex
	st   state
	fail map[string]error
	now  func() time.Time
}

var _ database.Store = (*Store)(nil)

// New returns an empty Store.
func New() *Store {
	return &Store{
		st:   state{counters: make(map[string]database.VisitorDayCounter)},
		fail: make(map[string]error),
		now:  time.Now,
	}
}

// FailOn makes every later call of the named query return err.
func (s *Store) FailOn(query string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail[query] = err
}

// SetAdmin marks the user with the given external id as an administrator.
func (s *Store) SetAdmin(externalID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.users {
		if s.st.users[i].ExternalID == externalID {
			s.st.users[i].IsAdmin = true
		}
	}
}

// Archive sets the archived flag of a message.
func (s *Store) Archive(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.st.messages {
		if s.st.messages[i].ID == id {
			s.st.messages[i].IsArchived = true
		}
	}
}

// VisitorLogs returns a copy of every stored visitor log entry in insertion order.
func (s *Store) VisitorLogs() []database.VisitorLog {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.logs)
}

// DayCounters returns a copy of every stored day counter keyed by YYYY-MM-DD.
func (s *Store) DayCounters() map[string]database.VisitorDayCounter {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.st.clone().counters
}

// Messages returns a copy of every stored contact message.
func (s *Store) Messages() []database.ContactMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.st.messages)
}

func (s *Store) ExecTx(ctx context.Context, fn func(database.Querier) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	s.mu.Lock()
	snapshot := s.st.clone()
	s.mu.Unlock()

	if err := fn(s); err != nil {
		s.mu.Lock()
		s.st = snapshot
		s.mu.Unlock()
		return err
	}
	return nil
}

func (s *Store) check(query string) error {
	return s.fail[query]
}

func (s *Store) id() int64 {
	s.st.nextID++
	return s.st.nextID
}

func dateKey(t time.Time) string { return t.Format(time.DateOnly) }

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Store) UpsertUser(ctx context.Context, arg database.UpsertUserParams) (database.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("UpsertUser"); err != nil {
		return database.User{}, err
	}
	for i, u := range s.st.users {
		if u.ExternalID == arg.ExternalID {
			s.st.users[i].LastLoginAt = s.now()
			return s.st.users[i], nil
		}
	}
	u := database.User{
		ID:          s.id(),
		ExternalID:  arg.ExternalID,
		Email:       arg.Email,
		Name:        arg.Name,
		CreatedAt:   s.now(),
		LastLoginAt: s.now(),
	}
	s.st.users = append(s.st.users, u)
	return u, nil
}

func (s *Store) CreateVisitorLog(ctx context.Context, arg database.CreateVisitorLogParams) (database.VisitorLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CreateVisitorLog"); err != nil {
		return database.VisitorLog{}, err
	}
	l := database.VisitorLog{
		ID:          s.id(),
		UserID:      arg.UserID,
		IpAddress:   arg.IpAddress,
		UserAgent:   arg.UserAgent,
		Referrer:    arg.Referrer,
		PageVisited: arg.PageVisited,
		VisitDate:   dateOnly(arg.VisitDate),
		VisitedAt:   arg.VisitedAt,
	}
	s.st.logs = append(s.st.logs, l)
	return l, nil
}

func (s *Store) IncrementDayCounter(ctx context.Context, visitDate time.Time) (database.VisitorDayCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("IncrementDayCounter"); err != nil {
		return database.VisitorDayCounter{}, err
	}
	key := dateKey(visitDate)
	c, ok := s.st.counters[key]
	if !ok {
		c = database.VisitorDayCounter{
			VisitDate:      dateOnly(visitDate),
			VisitCount:     1,
			UniqueVisitors: 1,
			CreatedAt:      s.now(),
		}
	} else {
		c.VisitCount++
	}
	c.UpdatedAt = s.now()
	s.st.counters[key] = c
	return c, nil
}

func (s *Store) GetDayCounter(ctx context.Context, visitDate time.Time) (database.VisitorDayCounter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("GetDayCounter"); err != nil {
		return database.VisitorDayCounter{}, err
	}
	c, ok := s.st.counters[dateKey(visitDate)]
	if !ok {
		return database.VisitorDayCounter{}, pgx.ErrNoRows
	}
	return c, nil
}

func (s *Store) SumVisitCounts(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("SumVisitCounts"); err != nil {
		return 0, err
	}
	var sum int64
	for _, c := range s.st.counters {
		sum += int64(c.VisitCount)
	}
	return sum, nil
}

func (s *Store) CountDistinctVisitorIPs(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CountDistinctVisitorIPs"); err != nil {
		return 0, err
	}
	return distinctIPs(s.st.logs, ""), nil
}

func distinctIPs(logs []database.VisitorLog, day string) int64 {
	seen := make(map[string]struct{})
	for _, l := range logs {
		if l.IpAddress == "" || (day != "" && dateKey(l.VisitDate) != day) {
			continue
		}
		seen[l.IpAddress] = struct{}{}
	}
	return int64(len(seen))
}

func (s *Store) CountAuthenticatedVisits(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CountAuthenticatedVisits"); err != nil {
		return 0, err
	}
	var n int64
	for _, l := range s.st.logs {
		if l.UserID.Valid {
			n++
		}
	}
	return n, nil
}

func (s *Store) ListRecentVisitorLogs(ctx context.Context, limit int32) ([]database.VisitorLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("ListRecentVisitorLogs"); err != nil {
		return nil, err
	}
	logs := slices.Clone(s.st.logs)
	slices.SortFunc(logs, func(a, b database.VisitorLog) int {
		if c := b.VisitedAt.Compare(a.VisitedAt); c != 0 {
			return c
		}
		return int(b.ID - a.ID)
	})
	if len(logs) > int(limit) {
		logs = logs[:limit]
	}
	return logs, nil
}

func (s *Store) ListDayCounters(ctx context.Context, limit int32) ([]database.ListDayCountersRow, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("ListDayCounters"); err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(s.st.counters))
	for k := range s.st.counters {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, func(a, b string) int { return strings.Compare(b, a) })
	if len(keys) > int(limit) {
		keys = keys[:limit]
	}
	rows := make([]database.ListDayCountersRow, len(keys))
	for i, k := range keys {
		c := s.st.counters[k]
		rows[i] = database.ListDayCountersRow{
			VisitDate:      c.VisitDate,
			VisitCount:     c.VisitCount,
			UniqueVisitors: c.UniqueVisitors,
			DistinctIps:    distinctIPs(s.st.logs, k),
		}
	}
	return rows, nil
}

func (s *Store) CreateContactMessage(ctx context.Context, arg database.CreateContactMessageParams) (database.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CreateContactMessage"); err != nil {
		return database.ContactMessage{}, err
	}
	m := database.ContactMessage{
		ID:          s.id(),
		UserID:      arg.UserID,
		SenderName:  arg.SenderName,
		SenderEmail: arg.SenderEmail,
		Subject:     arg.Subject,
		MessageBody: arg.MessageBody,
		CompanyName: arg.CompanyName,
		IpAddress:   arg.IpAddress,
		CreatedAt:   s.now(),
	}
	s.st.messages = append(s.st.messages, m)
	return m, nil
}

func (s *Store) CountContactMessages(ctx context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("CountContactMessages"); err != nil {
		return 0, err
	}
	return int64(len(s.st.messages)), nil
}

func (s *Store) ListContactMessages(ctx context.Context, includeArchived bool) ([]database.ContactMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check("ListContactMessages"); err != nil {
		return nil, err
	}
	var out []database.ContactMessage
	for i := len(s.st.messages) - 1; i >= 0; i-- {
		m := s.st.messages[i]
		if m.IsArchived && !includeArchived {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}
