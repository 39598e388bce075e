// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
)

// OrphanSweeper is the part of the registration service the sweeper needs.
type OrphanSweeper interface {
	SweepOrphanDevices(ctx context.Context) (int64, error)
}

type orphanSweeper struct {
	sweeper  OrphanSweeper
	interval time.Duration
	logger   *logger.Logger
}

// NewOrphanSweeper returns a worker deleting devices without registrations
// every interval.
func NewOrphanSweeper(sweeper OrphanSweeper, interval time.Duration, logger *logger.Logger) Worker {
	return &orphanSweeper{
		sweeper:  sweeper,
		interval: interval,
		logger:   logger,
	}
}

func (o *orphanSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(o.interval)
	defer ticker.Stop()

	o.logger.Info().Dur("interval", o.interval).Msg("orphan device sweeper started")

	for {
		select {
		case <-ctx.Done():
			o.logger.Info().Msg("orphan device sweeper stopped")
			return
		case <-ticker.C:
			o.sweep(ctx)
		}
	}
}

func (o *orphanSweeper) sweep(ctx context.Context) {
	deleted, err := o.sweeper.SweepOrphanDevices(ctx)
	if err != nil {
		if ctx.Err() == nil {
			o.logger.Err(err).Str("func", "orphanSweeper.sweep").Msg("sweeping orphan devices failed")
		}
		return
	}

	if deleted > 0 {
		o.logger.Info().Int64("deleted", deleted).Msg("orphan devices removed")
	}
}
