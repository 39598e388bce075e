// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	"github.com/MKhiriev/go-wallet-issuer/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

// Timestamps are stored as Unix microseconds so the "changed since" cursor
// compares exactly on every backend.
func toMicros(t time.Time) int64 {
	return t.UnixMicro()
}

func fromMicros(us int64) time.Time {
	return time.UnixMicro(us).UTC()
}

var itemColumns = []string{
	"id",
	"kind",
	"type_identifier",
	"authentication_token",
	"created_at",
	"updated_at",
}

func buildInsertItemQuery(d Dialect, item models.WalletItem) (string, []any, error) {
	return d.builder().
		Insert("items").
		Columns(itemColumns...).
		Values(
			item.ID.String(),
			string(item.Kind),
			item.TypeIdentifier,
			item.AuthenticationToken,
			toMicros(item.CreatedAt),
			toMicros(item.UpdatedAt),
		).
		ToSql()
}

func buildInsertContentQuery(d Dialect, content models.ItemContent) (string, []any, error) {
	return d.builder().
		Insert("item_contents").
		Columns("item_id", "template", "properties", "personalization", "updated_at").
		Values(
			content.ItemID.String(),
			content.Template,
			string(content.Properties),
			nullableJSON(content.Personalization),
			toMicros(content.UpdatedAt),
		).
		ToSql()
}

func buildSelectItemsQuery(d Dialect, kind models.Kind, typeID string, ids ...uuid.UUID) (string, []any, error) {
	serials := make([]string, 0, len(ids))
	for _, id := range ids {
		serials = append(serials, id.String())
	}

	return d.builder().
		Select(itemColumns...).
		From("items").
		Where(sq.Eq{
			"kind":            string(kind),
			"type_identifier": typeID,
			"id":              serials,
		}).
		ToSql()
}

func buildSelectContentQuery(d Dialect, itemID uuid.UUID) (string, []any, error) {
	return d.builder().
		Select("id", "item_id", "template", "properties", "personalization", "updated_at").
		From("item_contents").
		Where(sq.Eq{"item_id": itemID.String()}).
		ToSql()
}

func buildUpdateContentQuery(d Dialect, itemID uuid.UUID, update models.UpdateItemRequest, now time.Time) (string, []any, error) {
	b := d.builder().
		Update("item_contents").
		Set("updated_at", toMicros(now)).
		Where(sq.Eq{"item_id": itemID.String()})

	if update.Template != nil {
		b = b.Set("template", *update.Template)
	}
	if update.Properties != nil {
		b = b.Set("properties", string(*update.Properties))
	}
	if update.Personalization != nil {
		b = b.Set("personalization", nullableJSON(*update.Personalization))
	}

	return b.ToSql()
}

// buildTouchItemQuery moves updated_at to now, or one microsecond past its
// current value when the clock has not advanced, so a mutation is always
// visible to a cursor equal to the previous timestamp.
func buildTouchItemQuery(d Dialect, itemID uuid.UUID, now time.Time) (string, []any, error) {
	return d.builder().
		Update("items").
		Set("updated_at", sq.Expr(d.greatest()+"(updated_at + 1, ?)", toMicros(now))).
		Where(sq.Eq{"id": itemID.String()}).
		Suffix("RETURNING updated_at").
		ToSql()
}

func buildDeleteItemQuery(d Dialect, itemID uuid.UUID) (string, []any, error) {
	return d.builder().
		Delete("items").
		Where(sq.Eq{"id": itemID.String()}).
		ToSql()
}

func buildInsertDeviceQuery(d Dialect, libraryID, pushToken string, now time.Time) (string, []any, error) {
	return d.builder().
		Insert("devices").
		Columns("library_identifier", "push_token", "created_at").
		Values(libraryID, pushToken, toMicros(now)).
		Suffix("ON CONFLICT (library_identifier, push_token) DO NOTHING").
		ToSql()
}

func buildSelectDeviceIDQuery(d Dialect, libraryID, pushToken string) (string, []any, error) {
	return d.builder().
		Select("id").
		From("devices").
		Where(sq.Eq{"library_identifier": libraryID, "push_token": pushToken}).
		ToSql()
}

func buildInsertRegistrationQuery(d Dialect, deviceID int64, itemID uuid.UUID, now time.Time) (string, []any, error) {
	return d.builder().
		Insert("registrations").
		Columns("device_id", "item_id", "created_at").
		Values(deviceID, itemID.String(), toMicros(now)).
		Suffix("ON CONFLICT (device_id, item_id) DO NOTHING").
		ToSql()
}

func buildUnregisterQuery(d Dialect, libraryID string, itemID uuid.UUID) (string, []any, error) {
	devices := d.builder().
		Select("id").
		From("devices").
		Where(sq.Eq{"library_identifier": libraryID})

	return d.builder().
		Delete("registrations").
		Where(sq.Eq{"item_id": itemID.String()}).
		Where(subquery("device_id IN", devices)).
		ToSql()
}

func buildItemsChangedSinceQuery(d Dialect, kind models.Kind, typeID, libraryID string, since time.Time) (string, []any, error) {
	return d.builder().
		Select("i.id", "i.updated_at").
		Distinct().
		From("items i").
		Join("registrations r ON r.item_id = i.id").
		Join("devices d ON d.id = r.device_id").
		Where(sq.Eq{
			"d.library_identifier": libraryID,
			"i.kind":               string(kind),
			"i.type_identifier":    typeID,
		}).
		Where(sq.Gt{"i.updated_at": toMicros(since)}).
		OrderBy("i.updated_at", "i.id").
		ToSql()
}

func buildDevicesForQuery(d Dialect, itemID uuid.UUID) (string, []any, error) {
	return d.builder().
		Select("d.id", "d.library_identifier", "d.push_token").
		From("devices d").
		Join("registrations r ON r.device_id = d.id").
		Where(sq.Eq{"r.item_id": itemID.String()}).
		OrderBy("d.id").
		ToSql()
}

func buildDeleteRegistrationQuery(d Dialect, deviceID int64, itemID uuid.UUID) (string, []any, error) {
	return d.builder().
		Delete("registrations").
		Where(sq.Eq{"device_id": deviceID, "item_id": itemID.String()}).
		ToSql()
}

func buildDeleteOrphanDevicesQuery(d Dialect) (string, []any, error) {
	return d.builder().
		Delete("devices").
		Where("NOT EXISTS (SELECT 1 FROM registrations r WHERE r.device_id = devices.id)").
		ToSql()
}

func buildInsertErrorLogsQuery(d Dialect, kind models.Kind, messages []string, now time.Time) (string, []any, error) {
	b := d.builder().
		Insert("error_logs").
		Columns("kind", "message", "created_at")
	for _, msg := range messages {
		b = b.Values(string(kind), msg, toMicros(now))
	}
	return b.ToSql()
}

var personalizationColumns = []string{
	"item_id",
	"full_name",
	"given_name",
	"family_name",
	"email_address",
	"phone_number",
	"iso_country_code",
	"postal_code",
	"created_at",
}

func buildInsertPersonalizationQuery(d Dialect, info models.PersonalizationInfo) (string, []any, error) {
	return d.builder().
		Insert("personalization_infos").
		Columns(personalizationColumns...).
		Values(
			info.ItemID.String(),
			info.FullName,
			info.GivenName,
			info.FamilyName,
			info.EmailAddress,
			info.PhoneNumber,
			info.ISOCountryCode,
			info.PostalCode,
			toMicros(info.CreatedAt),
		).
		ToSql()
}

func buildCountPersonalizationQuery(d Dialect, itemID uuid.UUID) (string, []any, error) {
	return d.builder().
		Select("COUNT(*)").
		From("personalization_infos").
		Where(sq.Eq{"item_id": itemID.String()}).
		ToSql()
}

// subquery renders "<prefix> (<sub>)" keeping the placeholders of sub
// positional so the outer builder can renumber them.
func subquery(prefix string, sub sq.SelectBuilder) sq.Sqlizer {
	sql, args, err := sub.PlaceholderFormat(sq.Question).ToSql()
	if err != nil {
		return errSqlizer{err}
	}
	return sq.Expr(prefix+" ("+sql+")", args...)
}

type errSqlizer struct{ err error }

func (e errSqlizer) ToSql() (string, []any, error) { return "", nil, e.err }

func nullableJSON(raw []byte) any {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	return string(raw)
}
