// Package testing provides test utilities for owning.
package testing

import (
	"testing"

	"github.com/zoobzio/owning"
)

// Account is a test type with a hand-written deep copy.
type Account struct {
	ID     string         `json:"id" yaml:"id" msgpack:"id" bson:"id"`
	Tags   []string       `json:"tags" yaml:"tags" msgpack:"tags" bson:"tags"`
	Limits map[string]int `json:"limits" yaml:"limits" msgpack:"limits" bson:"limits"`
}

// Clone implements owning.Cloner[Account].
func (a Account) Clone() Account {
	c := Account{ID: a.ID}
	if a.Tags != nil {
		c.Tags = append([]string(nil), a.Tags...)
	}
	if a.Limits != nil {
		c.Limits = make(map[string]int, len(a.Limits))
		for k, v := range a.Limits {
			c.Limits[k] = v
		}
	}
	return c
}

// Document is a test type without a Clone method.
// It is copied reflectively unless a codec is registered for it.
type Document struct {
	Title    string   `json:"title" yaml:"title" msgpack:"title" xml:"title" bson:"title"`
	Sections []string `json:"sections" yaml:"sections" msgpack:"sections" xml:"section" bson:"sections"`
}

// DropLog counts Drop calls per session ID.
type DropLog map[string]int

// Session is a test type that records when its owner drops it.
type Session struct {
	ID  string
	Log DropLog
}

// Drop implements owning.Dropper.
func (s *Session) Drop() {
	s.Log[s.ID]++
}

// NewSession returns a session recording drops in log.
func NewSession(id string, log DropLog) *Session {
	return &Session{ID: id, Log: log}
}

// AssertDistinct fails tb unless a and b own different allocations.
func AssertDistinct[T any](tb testing.TB, a, b *owning.Ptr[T]) {
	tb.Helper()
	if a.Valid() && owning.Equal(a, b) {
		tb.Fatalf("%s and %s share an allocation", a, b)
	}
}

// AssertEmpty fails tb unless p owns nothing.
func AssertEmpty[T any](tb testing.TB, p *owning.Ptr[T]) {
	tb.Helper()
	if p.Valid() {
		tb.Fatalf("%s should own nothing", p)
	}
}
