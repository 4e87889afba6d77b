package dashboard

import (
	"context"
	"fmt"
	"midcar/pkg/domain"
	"midcar/pkg/logger"
	"midcar/pkg/storage"
	"sync/atomic"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

const (
	summaryKey           = "summary"
	recentSalesLimit     = 5
	expiringPolicyDays   = 30
)

type dashboard struct {
	storage    storage.StatsStorage
	cache      *cache.Cache
	group      singleflight.Group
	generation atomic.Uint64
	now        func() time.Time
}

// New creates a Dashboard memoizing its summary for ttl. now defaults to time.Now.
func New(storage storage.StatsStorage, ttl time.Duration, now func() time.Time) Dashboard {
	if now == nil {
		now = time.Now
	}

	return &dashboard{
		storage: storage,
		cache:   cache.New(ttl, 2*ttl),
		now:     now,
	}
}

func (d *dashboard) Invalidate() {
	d.generation.Add(1)
	d.cache.Delete(summaryKey)
}

// Summary returns the memoized summary or computes it. Concurrent misses
// share one computation.
func (d *dashboard) Summary(ctx context.Context) (*Summary, error) {
	if cached, ok := d.cache.Get(summaryKey); ok {
		return cached.(*Summary), nil //nolint: forcetypeassert
	}

	v, err, _ := d.group.Do(summaryKey, func() (any, error) {
		gen := d.generation.Load()
		summary, err := d.compute(ctx)
		if err != nil {
			return nil, err
		}
		// a write during the computation makes the result stale
		if d.generation.Load() == gen {
			d.cache.SetDefault(summaryKey, summary)
		}

		return summary, nil
	})
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return v.(*Summary), nil //nolint: forcetypeassert
}

func (d *dashboard) compute(ctx context.Context) (*Summary, error) {
	now := d.now()
	y, m, _ := now.Date()
	monthStart := time.Date(y, m, 1, 0, 0, 0, 0, now.Location())
	expiringFrom, expiringBefore := domain.ExpiryWindow(now, expiringPolicyDays)

	s := &Summary{GeneratedAt: now}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		s.VehiclesByStatus, err = d.storage.VehicleCountsByStatus(gctx)

		return wrap(err, "vehicle counts")
	})
	g.Go(func() (err error) {
		s.StockValue, err = d.storage.StockValue(gctx)

		return wrap(err, "stock value")
	})
	g.Go(func() (err error) {
		s.AvgDaysInStock, err = d.storage.AverageDaysInStock(gctx, now)

		return wrap(err, "days in stock")
	})
	g.Go(func() (err error) {
		s.SoldThisMonth, err = d.storage.VehiclesSoldSince(gctx, monthStart)

		return wrap(err, "monthly sales")
	})
	g.Go(func() (err error) {
		s.LeadsByStatus, err = d.storage.LeadCountsByStatus(gctx)

		return wrap(err, "lead counts")
	})
	g.Go(func() (err error) {
		s.NewLeadsThisMonth, err = d.storage.LeadsCreatedSince(gctx, monthStart)

		return wrap(err, "new leads")
	})
	g.Go(func() (err error) {
		s.UnhandledContacts, err = d.storage.UnhandledContactCount(gctx)

		return wrap(err, "pending contacts")
	})
	g.Go(func() (err error) {
		s.ExpiringPolicies, err = d.storage.PoliciesEndingBetween(gctx, expiringFrom, expiringBefore)

		return wrap(err, "expiring policies")
	})
	g.Go(func() (err error) {
		s.RecentSales, err = d.storage.RecentSales(gctx, recentSalesLimit)

		return wrap(err, "recent sales")
	})
	if err := g.Wait(); err != nil {
		logger.Error(ctx, "could not compute dashboard", zap.Error(err))

		return nil, err //nolint: wrapcheck
	}

	won := s.LeadsByStatus[domain.LeadStatusWon]
	if closed := won + s.LeadsByStatus[domain.LeadStatusLost]; closed > 0 {
		s.ConversionRate = float64(won) / float64(closed)
	}
	if s.RecentSales == nil {
		s.RecentSales = []domain.Vehicle{}
	}

	return s, nil
}

func wrap(err error, what string) error {
	if err != nil {
		return fmt.Errorf("could not get %s: %w", what, err)
	}

	return nil
}
