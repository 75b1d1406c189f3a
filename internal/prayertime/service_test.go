package prayertime

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type fakeFetcher struct {
	snapshot *PrayerTimes
	err      error
	calls    int
}

func (f *fakeFetcher) FetchTimings(ctx context.Context, dateKey string) (*PrayerTimes, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	snap := *f.snapshot
	snap.Date = dateKey
	return &snap, nil
}

func (f *fakeFetcher) Location() string {
	return "Ripponpet, Bangalore"
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to open sqlite test database")

	require.NoError(t, db.AutoMigrate(&PrayerTimes{}))
	return db
}

func newTestService(t *testing.T, fetcher TimingsFetcher) *Service {
	svc := NewService(NewRepository(setupTestDB(t)), fetcher)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 15, 10, 0, 0, 0, time.UTC)
	}
	return svc
}

func TestGetTodayTimesCachesFirstFetch(t *testing.T) {
	fetcher := &fakeFetcher{snapshot: &PrayerTimes{
		HijriDate: "15 Ramadan 1446",
		Fajr:      "05:12",
		Dhuhr:     "12:24",
		Asr:       "15:46",
		Maghrib:   "18:33",
		Isha:      "19:44",
		Location:  "Ripponpet, Bangalore",
	}}
	svc := newTestService(t, fetcher)
	ctx := context.Background()

	first := svc.GetTodayTimes(ctx)
	second := svc.GetTodayTimes(ctx)

	assert.Equal(t, 1, fetcher.calls, "second same-day request must hit the cache")
	assert.Equal(t, first, second)
	assert.Equal(t, "2025-03-15", first.Date)
	assert.Equal(t, "05:12", first.Fajr)
}

func TestGetTodayTimesFallbackOnProviderFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("connection refused")}
	svc := newTestService(t, fetcher)
	ctx := context.Background()

	got := svc.GetTodayTimes(ctx)

	assert.Equal(t, "2025-03-15", got.Date)
	assert.Equal(t, "", got.HijriDate)
	assert.Equal(t, "05:30", got.Fajr)
	assert.Equal(t, "12:30", got.Dhuhr)
	assert.Equal(t, "16:00", got.Asr)
	assert.Equal(t, "18:30", got.Maghrib)
	assert.Equal(t, "19:45", got.Isha)

	// the fallback is not persisted: the next request retries the provider
	svc.GetTodayTimes(ctx)
	assert.Equal(t, 2, fetcher.calls)
}

func TestGetTodayTimesRecoversAfterFailure(t *testing.T) {
	fetcher := &fakeFetcher{err: errors.New("timeout")}
	svc := newTestService(t, fetcher)
	ctx := context.Background()

	svc.GetTodayTimes(ctx)

	fetcher.err = nil
	fetcher.snapshot = &PrayerTimes{Fajr: "05:12", Dhuhr: "12:24", Asr: "15:46", Maghrib: "18:33", Isha: "19:44"}

	got := svc.GetTodayTimes(ctx)
	assert.Equal(t, "05:12", got.Fajr)

	// now cached: no further provider calls
	svc.GetTodayTimes(ctx)
	assert.Equal(t, 2, fetcher.calls)
}

func TestUpsertReplacesSameDay(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Upsert(ctx, &PrayerTimes{Date: "2025-03-15", Fajr: "05:12"}))
	require.NoError(t, repo.Upsert(ctx, &PrayerTimes{Date: "2025-03-15", Fajr: "05:13"}))

	got, err := repo.GetByDate(ctx, "2025-03-15")
	require.NoError(t, err)
	assert.Equal(t, "05:13", got.Fajr)

	var count int64
	require.NoError(t, db.Model(&PrayerTimes{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}
