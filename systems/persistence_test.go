package systems

import (
	"errors"
	"testing"
	"time"
)

type memStore map[string][]byte

func (m memStore) LoadItem(key string) ([]byte, error) {
	return m[key], nil
}

func (m memStore) SaveItem(key string, data []byte) error {
	m[key] = data
	return nil
}

type failingStore struct{}

func (failingStore) LoadItem(string) ([]byte, error) { return nil, errors.New("disk gone") }
func (failingStore) SaveItem(string, []byte) error   { return errors.New("disk gone") }

func withStore(t *testing.T, s itemStore) {
	t.Helper()
	prev := store
	store = s
	t.Cleanup(func() { store = prev })
}

func TestRecordLevelTime(t *testing.T) {
	tests := []struct {
		name         string
		start        map[int]int64
		unlocked     int
		level        int
		d            time.Duration
		wantBest     bool
		wantMs       int64
		wantUnlocked int
	}{
		{"first finish", nil, 0, 0, 12 * time.Second, true, 12000, 1},
		{"faster", map[int]int64{2: 9000}, 3, 2, 8 * time.Second, true, 8000, 3},
		{"slower", map[int]int64{2: 9000}, 3, 2, 10 * time.Second, false, 9000, 3},
		{"equal is not a best", map[int]int64{1: 5000}, 2, 1, 5 * time.Second, false, 5000, 2},
		{"unlock moves forward", map[int]int64{}, 1, 4, time.Second, true, 1000, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := &SavedProgress{BestTimes: tt.start, Unlocked: tt.unlocked}
			if got := p.RecordLevelTime(tt.level, tt.d); got != tt.wantBest {
				t.Errorf("RecordLevelTime() = %v, want %v", got, tt.wantBest)
			}
			if p.BestTimes[tt.level] != tt.wantMs {
				t.Errorf("BestTimes[%d] = %d, want %d", tt.level, p.BestTimes[tt.level], tt.wantMs)
			}
			if p.Unlocked != tt.wantUnlocked {
				t.Errorf("Unlocked = %d, want %d", p.Unlocked, tt.wantUnlocked)
			}
		})
	}
}

func TestBestTime(t *testing.T) {
	p := &SavedProgress{BestTimes: map[int]int64{0: 61500}}

	if d, ok := p.BestTime(0); !ok || d != 61500*time.Millisecond {
		t.Errorf("BestTime(0) = %v, %v", d, ok)
	}
	if _, ok := p.BestTime(1); ok {
		t.Error("BestTime(1) reported a time for an unplayed level")
	}
}

func TestProgressRoundTrip(t *testing.T) {
	withStore(t, memStore{})

	p := LoadProgress()
	if p.Unlocked != 0 || len(p.BestTimes) != 0 {
		t.Fatalf("LoadProgress() on empty store = %+v", p)
	}
	p.RecordLevelTime(0, 3*time.Second)
	if err := SaveProgress(p); err != nil {
		t.Fatalf("SaveProgress() error = %v", err)
	}

	got := LoadProgress()
	if got.Unlocked != 1 {
		t.Errorf("Unlocked = %d, want 1", got.Unlocked)
	}
	if d, ok := got.BestTime(0); !ok || d != 3*time.Second {
		t.Errorf("BestTime(0) = %v, %v", d, ok)
	}
}

func TestLoadSettingsFallsBack(t *testing.T) {
	tests := []struct {
		name  string
		store itemStore
	}{
		{"no store", nil},
		{"load error", failingStore{}},
		{"corrupt data", memStore{settingsKey: []byte("{not json")}},
	}

	want := DefaultSettings()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withStore(t, tt.store)
			if got := LoadSettings(); *got != *want {
				t.Errorf("LoadSettings() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestSaveSettingsReportsErrors(t *testing.T) {
	withStore(t, failingStore{})
	if err := SaveSettings(DefaultSettings()); err == nil {
		t.Error("SaveSettings() error = nil, want failure from the store")
	}
}
