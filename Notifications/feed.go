package Notifications

import (
	"log"
	"sync"
	"time"
)

type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

type Notification struct {
	Level   Level     `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

const feedLimit = 50

// Feed is the toast sink: success/failure messages are kept in a bounded
// in-memory feed the UI polls, and mirrored to the application log. There is
// no acknowledgment contract; delivery is fire-and-forget.
type Feed struct {
	mu      sync.Mutex
	entries []Notification
}

func NewFeed() *Feed {
	return &Feed{entries: []Notification{}}
}

func (f *Feed) Success(message string) {
	f.push(LevelSuccess, message)
}

func (f *Feed) Error(message string) {
	f.push(LevelError, message)
}

func (f *Feed) push(level Level, message string) {
	log.Printf("[%s] %s", level, message)
	f.mu.Lock()
	f.entries = append(f.entries, Notification{Level: level, Message: message, At: time.Now()})
	if len(f.entries) > feedLimit {
		f.entries = f.entries[len(f.entries)-feedLimit:]
	}
	f.mu.Unlock()
}

// Recent returns the buffered notifications, newest last.
func (f *Feed) Recent() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Notification, len(f.entries))
	copy(out, f.entries)
	return out
}

// Drain returns the buffered notifications and clears the feed, so the UI
// shows each toast once.
func (f *Feed) Drain() []Notification {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := f.entries
	f.entries = []Notification{}
	return out
}
