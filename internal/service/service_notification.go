// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/metrics"
	"github.com/MKhiriev/go-wallet-issuer/internal/push"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/gammazero/workerpool"
)

// notificationService fans an update out to the devices of an item.
//
// Delivery is at most once per call: transient failures are logged and the
// registration is kept, so the next update or the device's own polling
// catches up. Tokens the push service rejects lose their registration.
type notificationService struct {
	registrations store.RegistrationRepository
	transports    map[models.Kind]push.Transport
	metrics       *metrics.Metrics

	timeout time.Duration
	pool    *workerpool.WorkerPool

	mu      sync.RWMutex
	stopped bool

	logger *logger.Logger
}

func NewNotificationService(registrations store.RegistrationRepository, transports map[models.Kind]push.Transport, concurrency int, timeout time.Duration, metrics *metrics.Metrics, logger *logger.Logger) NotificationService {
	return &notificationService{
		registrations: registrations,
		transports:    transports,
		metrics:       metrics,
		timeout:       timeout,
		pool:          workerpool.New(max(concurrency, 1)),
		logger:        logger,
	}
}

func (s *notificationService) Notify(ctx context.Context, item models.Item) (NotifyReport, error) {
	log := logger.FromContext(ctx).WithItem(item)

	transport, ok := s.transports[item.ItemKind()]
	if !ok {
		return NotifyReport{}, fmt.Errorf("%w: %q", ErrTransportNotExists, item.ItemKind())
	}

	devices, err := s.registrations.DevicesFor(ctx, item.ItemID())
	if err != nil {
		return NotifyReport{}, err
	}
	if len(devices) == 0 {
		log.Debug().Str("func", "notificationService.Notify").Msg("no registered devices")
		return NotifyReport{}, nil
	}

	// one token may be shared by several device library identifiers
	byToken := make(map[string][]models.Device, len(devices))
	tokens := make([]string, 0, len(devices))
	for _, device := range devices {
		token := device.DevicePushToken()
		if _, seen := byToken[token]; !seen {
			tokens = append(tokens, token)
		}
		byToken[token] = append(byToken[token], device)
	}

	report := NotifyReport{Attempted: len(tokens)}

	results, err := transport.Send(ctx, item.ItemTypeIdentifier(), tokens)
	if err != nil {
		report.Failed = len(tokens)
		log.Err(err).Str("func", "notificationService.Notify").Msg("push transport failed")
		return report, fmt.Errorf("%w: %w", ErrPushFailed, err)
	}

	for _, result := range results {
		s.metrics.ObservePush(item.ItemKind(), result.Outcome)

		switch result.Outcome {
		case push.OutcomeDelivered:
			report.Delivered++
		case push.OutcomeInvalidToken:
			for _, device := range byToken[result.Token] {
				if s.prune(ctx, item, device) {
					report.Pruned++
				}
			}
		default:
			report.Failed++
			log.Warn().
				Err(result.Err).
				Str("func", "notificationService.Notify").
				Str("reason", result.Reason).
				Msg("push delivery failed, registration kept")
		}
	}

	log.Info().
		Str("func", "notificationService.Notify").
		Int("attempted", report.Attempted).
		Int("delivered", report.Delivered).
		Int("pruned", report.Pruned).
		Int("failed", report.Failed).
		Msg("update notification sent")

	return report, nil
}

// prune removes the registration of a device whose token was rejected.
func (s *notificationService) prune(ctx context.Context, item models.Item, device models.Device) bool {
	err := s.registrations.DeleteRegistration(ctx, device.ID, item.ItemID())
	switch {
	case errors.Is(err, store.ErrRegistrationNotFound):
		return false
	case err != nil:
		logger.FromContext(ctx).Err(err).
			Str("func", "notificationService.prune").
			Str("device_library_identifier", device.DeviceLibraryIdentifier()).
			Msg("failed to remove registration of invalid token")
		return false
	}

	s.metrics.RegistrationPruned(item.ItemKind())
	return true
}

func (s *notificationService) NotifyAsync(item models.Item) error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.stopped {
		return ErrDispatcherStopped
	}

	s.pool.Submit(func() {
		ctx := s.logger.WithContext(context.Background())
		if s.timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, s.timeout)
			defer cancel()
		}

		if _, err := s.Notify(ctx, item); err != nil {
			s.logger.WithItem(item).Err(err).
				Str("func", "notificationService.NotifyAsync").
				Msg("update notification failed")
		}
	})

	return nil
}

func (s *notificationService) Stop() {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		return
	}
	s.stopped = true
	s.mu.Unlock()

	s.pool.StopWait()
}
