package service

import (
	"context"
	"testing"
	"time"

	"planflow/internal/model"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// fakeStore is an in-memory StateStore.
type fakeStore struct {
	records map[string][]byte
}

func newFakeStore() *fakeStore {
	return &fakeStore{records: make(map[string][]byte)}
}

func (f *fakeStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	v, ok := f.records[key]
	return v, ok, nil
}

func (f *fakeStore) Put(_ context.Context, key string, value []byte) error {
	f.records[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeStore) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(f.records, k)
	}
	return nil
}

// recordingMarker captures MarkCompleted calls.
type recordingMarker struct {
	calls []string
}

func (m *recordingMarker) MarkCompleted(habitID, dayKey string) {
	m.calls = append(m.calls, habitID+"@"+dayKey)
}

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.ParseInLocation(model.DayKeyLayout, s, time.Local)
	if err != nil {
		t.Fatalf("bad day %q: %v", s, err)
	}
	return d
}

func dayPtr(t *testing.T, s string) *time.Time {
	d := day(t, s)
	return &d
}
