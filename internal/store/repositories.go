package store

import "github.com/MKhiriev/go-wallet-issuer/internal/logger"

// Repositories aggregates every repository backed by one database.
type Repositories struct {
	ItemRepository            ItemRepository
	RegistrationRepository    RegistrationRepository
	ErrorLogRepository        ErrorLogRepository
	PersonalizationRepository PersonalizationRepository
}

// NewRepositories builds all repositories over db.
func NewRepositories(db *DB, logger *logger.Logger) *Repositories {
	return &Repositories{
		ItemRepository:            NewItemRepository(db, logger),
		RegistrationRepository:    NewRegistrationRepository(db, logger),
		ErrorLogRepository:        NewErrorLogRepository(db, logger),
		PersonalizationRepository: NewPersonalizationRepository(db, logger),
	}
}
