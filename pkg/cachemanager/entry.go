package cachemanager

import (
	"encoding/json"
	"time"
)

// Entry is the stored form of a cached value: the JSON payload plus the moment
// (unix milliseconds) the payload was fetched.
type Entry struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"`
}

func (e *Entry) Decode(v any) error {
	return json.Unmarshal(e.Data, v)
}

func (e *Entry) FetchedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

func (e *Entry) Age(now time.Time) time.Duration {
	return time.Duration(now.UnixMilli()-e.Timestamp) * time.Millisecond
}

// IsFresh reports whether entry is present and younger than ttl at now.
func IsFresh(entry *Entry, ttl time.Duration, now time.Time) bool {
	if entry == nil {
		return false
	}
	return now.UnixMilli()-entry.Timestamp < ttl.Milliseconds()
}
