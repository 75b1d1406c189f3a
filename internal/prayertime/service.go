package prayertime

import (
	"context"
	"log"
	"time"
)

// TimingsFetcher is satisfied by Client; tests substitute their own.
type TimingsFetcher interface {
	FetchTimings(ctx context.Context, dateKey string) (*PrayerTimes, error)
	Location() string
}

type Service struct {
	Repo    Repository
	Fetcher TimingsFetcher

	// now is injectable so tests can pin the calendar day
	now func() time.Time
}

func NewService(repo Repository, fetcher TimingsFetcher) *Service {
	return &Service{
		Repo:    repo,
		Fetcher: fetcher,
		now:     time.Now,
	}
}

// GetTodayTimes returns the cached snapshot for today, fetching and caching
// it on a miss. This path never fails: any provider or store error yields the
// static fallback, which is deliberately not persisted so the next request
// retries the provider.
func (s *Service) GetTodayTimes(ctx context.Context) *PrayerTimes {
	today := s.now().Format("2006-01-02")

	if cached, err := s.Repo.GetByDate(ctx, today); err == nil {
		return cached
	}

	fetched, err := s.Fetcher.FetchTimings(ctx, today)
	if err != nil {
		log.Printf("⚠️ Error fetching prayer times: %v", err)
		return s.fallback(today)
	}

	if err := s.Repo.Upsert(ctx, fetched); err != nil {
		log.Printf("⚠️ Error caching prayer times: %v", err)
	}

	return fetched
}

// fallback returns fixed placeholder times with an empty Hijri date.
func (s *Service) fallback(date string) *PrayerTimes {
	return &PrayerTimes{
		Date:      date,
		HijriDate: "",
		Fajr:      "05:30",
		Dhuhr:     "12:30",
		Asr:       "16:00",
		Maghrib:   "18:30",
		Isha:      "19:45",
		Location:  s.Fetcher.Location(),
	}
}
