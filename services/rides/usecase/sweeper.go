package usecase

import (
	"context"
	"time"

	"github.com/piresc/campusride/internal/pkg/logger"
	"github.com/piresc/campusride/services/rides"
)

// Sweeper periodically deactivates expired requests and offers
type Sweeper struct {
	requestUC rides.RequestUC
	offerUC   rides.OfferUC
	interval  time.Duration
}

// NewSweeper creates a sweeper ticking every interval
func NewSweeper(requestUC rides.RequestUC, offerUC rides.OfferUC, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Sweeper{requestUC: requestUC, offerUC: offerUC, interval: interval}
}

// Run sweeps until ctx is cancelled
func (s *Sweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	logger.Info("Expiry sweeper started", logger.Duration("interval", s.interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Expiry sweeper stopped")
			return
		case <-ticker.C:
			s.SweepOnce(ctx)
		}
	}
}

// SweepOnce runs a single pass. Offers go first so none outlive their request
// in listings between the two statements.
func (s *Sweeper) SweepOnce(ctx context.Context) (requests, offers int64) {
	offers, err := s.offerUC.ExpireOffers(ctx)
	if err != nil {
		logger.Error("Failed to expire offers", logger.Err(err), logger.Int64("expired", offers))
	}

	requests, err = s.requestUC.ExpireRequests(ctx)
	if err != nil {
		logger.Error("Failed to expire requests", logger.Err(err), logger.Int64("expired", requests))
	}

	if requests > 0 || offers > 0 {
		logger.Info("Expiry sweep finished",
			logger.Int64("requests", requests),
			logger.Int64("offers", offers))
	}
	return requests, offers
}
