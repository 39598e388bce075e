// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

// registrationRepository is the SQL implementation of
// [RegistrationRepository] over the "devices" and "registrations" tables.
//
// Idempotency is enforced by the unique keys of both tables, never by
// application-level locking.
type registrationRepository struct {
	*DB
	logger *logger.Logger
}

// NewRegistrationRepository constructs a [RegistrationRepository] backed
// by db.
func NewRegistrationRepository(db *DB, logger *logger.Logger) RegistrationRepository {
	logger.Debug().Msg("creating registration repository")
	return &registrationRepository{
		DB:     db,
		logger: logger,
	}
}

// RegisterDevice creates the device (if new) and subscribes it to the
// item. A repeated call for the same pair reports
// [models.RegistrationAlreadyExists] and leaves exactly one row.
func (r *registrationRepository) RegisterDevice(ctx context.Context, libraryID, pushToken string, itemID uuid.UUID, now time.Time) (models.RegistrationStatus, error) {
	log := logger.FromContext(ctx)

	deviceQuery, deviceArgs, err := buildInsertDeviceQuery(r.dialect, libraryID, pushToken, now)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deviceIDQuery, deviceIDArgs, err := buildSelectDeviceIDQuery(r.dialect, libraryID, pushToken)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var status models.RegistrationStatus
	err = r.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, deviceQuery, deviceArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		var deviceID int64
		if err := tx.QueryRowContext(ctx, deviceIDQuery, deviceIDArgs...).Scan(&deviceID); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		regQuery, regArgs, err := buildInsertRegistrationQuery(r.dialect, deviceID, itemID, now)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		res, err := tx.ExecContext(ctx, regQuery, regArgs...)
		if err != nil {
			if isForeignKeyViolation(err) {
				return ErrItemNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		affected, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		status = models.RegistrationAlreadyExists
		if affected > 0 {
			status = models.RegistrationCreated
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "registrationRepository.RegisterDevice").
			Str("device_library_identifier", libraryID).
			Str("serial", itemID.String()).
			Msg("failed to register device")
		return 0, err
	}

	log.Debug().
		Str("func", "registrationRepository.RegisterDevice").
		Str("device_library_identifier", libraryID).
		Str("serial", itemID.String()).
		Stringer("status", status).
		Msg("device registered")

	return status, nil
}

// Unregister removes the registrations of the device library for the item.
func (r *registrationRepository) Unregister(ctx context.Context, libraryID string, itemID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUnregisterQuery(r.dialect, libraryID, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "registrationRepository.Unregister").
			Str("device_library_identifier", libraryID).
			Str("serial", itemID.String()).
			Msg("failed to unregister device")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// ItemsChangedSince returns the serials of the matching items modified
// strictly after since, oldest first, and the greatest modification time
// among them. Items modified concurrently at exactly the cursor time can be
// missed; push delivery covers that case.
func (r *registrationRepository) ItemsChangedSince(ctx context.Context, kind models.Kind, typeID, libraryID string, since time.Time) (models.ChangedItems, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildItemsChangedSinceQuery(r.dialect, kind, typeID, libraryID, since)
	if err != nil {
		return models.ChangedItems{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "registrationRepository.ItemsChangedSince").
			Str("kind", kind.String()).
			Str("type_identifier", typeID).
			Str("device_library_identifier", libraryID).
			Msg("failed to execute changed since query")
		return models.ChangedItems{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var (
		changed models.ChangedItems
		maxTS   int64
	)
	for rows.Next() {
		var (
			serial    string
			updatedAt int64
		)
		if err = rows.Scan(&serial, &updatedAt); err != nil {
			log.Err(err).Str("func", "registrationRepository.ItemsChangedSince").Msg("failed to scan row")
			return models.ChangedItems{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		changed.Serials = append(changed.Serials, serial)
		maxTS = max(maxTS, updatedAt)
	}
	if err = rows.Err(); err != nil {
		return models.ChangedItems{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(changed.Serials) > 0 {
		changed.LastUpdated = fromMicros(maxTS)
	}
	return changed, nil
}

// DevicesFor returns every device registered for the item.
func (r *registrationRepository) DevicesFor(ctx context.Context, itemID uuid.UUID) ([]models.Device, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDevicesForQuery(r.dialect, itemID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "registrationRepository.DevicesFor").
			Str("serial", itemID.String()).
			Msg("failed to execute devices query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	devices := make([]models.Device, 0)
	for rows.Next() {
		var device models.Device
		if err = rows.Scan(&device.ID, &device.LibraryIdentifier, &device.PushToken); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		devices = append(devices, device)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return devices, nil
}

// DeleteRegistration removes a single (device, item) registration.
func (r *registrationRepository) DeleteRegistration(ctx context.Context, deviceID int64, itemID uuid.UUID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteRegistrationQuery(r.dialect, deviceID, itemID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "registrationRepository.DeleteRegistration").
			Int64("device_id", deviceID).
			Str("serial", itemID.String()).
			Msg("failed to delete registration")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if affected, _ := res.RowsAffected(); affected == 0 {
		return ErrRegistrationNotFound
	}
	return nil
}

// DeleteOrphanDevices removes devices with no registrations left.
func (r *registrationRepository) DeleteOrphanDevices(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteOrphanDevicesQuery(r.dialect)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "registrationRepository.DeleteOrphanDevices").Msg("failed to delete orphan devices")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	log.Info().
		Str("func", "registrationRepository.DeleteOrphanDevices").
		Int64("deleted", deleted).
		Msg("orphan devices removed")
	return deleted, nil
}
