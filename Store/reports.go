package Store

import (
	"sync"
	"time"

	"Pulse/Models"

	"github.com/google/uuid"
)

// Notifier is the fire-and-forget toast sink mutations report into.
type Notifier interface {
	Success(message string)
	Error(message string)
}

// ReportStore holds the authoritative in-memory set of reports for the process
// lifetime. One report per user per calendar day; state resets on restart.
type ReportStore struct {
	mu      sync.RWMutex
	reports []Models.Report
	notify  Notifier
}

func NewReportStore(notify Notifier) *ReportStore {
	return &ReportStore{
		reports: []Models.Report{},
		notify:  notify,
	}
}

// Add upserts a report keyed by (user, calendar day): if a report already
// exists for that user on the same day it is replaced in place, otherwise the
// report is appended. Duplicate days are resolved by replacement, never
// rejected. Returns true when a new entry was created.
//
// The original CreatedAt survives replacement; a report's creation time is set
// once and preserved across updates.
func (s *ReportStore) Add(report Models.Report) bool {
	report.Normalize()
	if report.ID == "" {
		report.ID = uuid.NewString()
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = time.Now()
	}

	s.mu.Lock()
	for i, existing := range s.reports {
		if existing.UserID == report.UserID && Models.SameDay(existing.Date, report.Date) {
			report.CreatedAt = existing.CreatedAt
			s.reports[i] = report
			s.mu.Unlock()
			s.notify.Success("Report updated successfully")
			return false
		}
	}
	s.reports = append(s.reports, report)
	s.mu.Unlock()
	s.notify.Success("Report submitted successfully")
	return true
}

// Update replaces the entry whose ID matches. A missing target is a silent
// no-op, not an error; callers needing to know must look the report up first.
func (s *ReportStore) Update(report Models.Report) {
	report.Normalize()

	s.mu.Lock()
	for i, existing := range s.reports {
		if existing.ID == report.ID {
			report.CreatedAt = existing.CreatedAt
			s.reports[i] = report
			s.mu.Unlock()
			s.notify.Success("Report updated successfully")
			return
		}
	}
	s.mu.Unlock()
}

// Delete removes the entry with the matching ID; no-op if absent.
func (s *ReportStore) Delete(id string) {
	s.mu.Lock()
	for i, existing := range s.reports {
		if existing.ID == id {
			s.reports = append(s.reports[:i], s.reports[i+1:]...)
			s.mu.Unlock()
			s.notify.Success("Report deleted successfully")
			return
		}
	}
	s.mu.Unlock()
}

// Get returns the report with the given ID.
func (s *ReportStore) Get(id string) (Models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, report := range s.reports {
		if report.ID == id {
			return report, true
		}
	}
	return Models.Report{}, false
}

// GetByDate returns the user's report for the calendar day the given timestamp
// falls on, ignoring time-of-day. Pure read, no side effects.
func (s *ReportStore) GetByDate(userID string, date time.Time) (Models.Report, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, report := range s.reports {
		if report.UserID == userID && Models.SameDay(report.Date, date) {
			return report, true
		}
	}
	return Models.Report{}, false
}

// ReportsOn returns every user's report for one calendar day.
func (s *ReportStore) ReportsOn(date time.Time) []Models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Models.Report{}
	for _, report := range s.reports {
		if Models.SameDay(report.Date, date) {
			out = append(out, report)
		}
	}
	return out
}

// Month returns the user's reports falling inside the given month, for
// hydrating the calendar grid.
func (s *ReportStore) Month(userID string, year int, month time.Month) []Models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Models.Report{}
	for _, report := range s.reports {
		if report.UserID == userID && report.Date.Year() == year && report.Date.Month() == month {
			out = append(out, report)
		}
	}
	return out
}

// All returns a snapshot copy of every stored report.
func (s *ReportStore) All() []Models.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Models.Report, len(s.reports))
	copy(out, s.reports)
	return out
}

func (s *ReportStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.reports)
}
