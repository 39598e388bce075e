package service

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
)

// wallets holds the configuration of every served kind.
type wallets map[models.Kind]config.Wallet

// newWallets collects the enabled kinds of cfg.
func newWallets(cfg *config.StructuredConfig) wallets {
	w := make(wallets)
	for _, kind := range models.Kinds() {
		if wallet := cfg.Kind(kind.String()); wallet.Enabled() {
			w[kind] = wallet
		}
	}
	return w
}

func (w wallets) get(kind models.Kind) (config.Wallet, models.KindSpec, error) {
	wallet, ok := w[kind]
	if !ok {
		return config.Wallet{}, models.KindSpec{}, fmt.Errorf("%w: %q", ErrKindNotSupported, kind)
	}
	return wallet, kind.MustSpec(), nil
}

func (w wallets) templateDir(kind models.Kind, template string) (string, error) {
	wallet, _, err := w.get(kind)
	if err != nil {
		return "", err
	}
	return filepath.Join(wallet.TemplatesDir, template), nil
}

// checkTemplate verifies the template directory exists for kind.
func (w wallets) checkTemplate(kind models.Kind, template string) error {
	dir, err := w.templateDir(kind, template)
	if err != nil {
		return err
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %q", ErrTemplateNotFound, template)
	}
	return nil
}

// parseSerial turns a path serial into an id. Anything that is not a UUID
// cannot name an item, so it reads as not found.
func parseSerial(serial string) (uuid.UUID, error) {
	id, err := uuid.Parse(serial)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %q", store.ErrItemNotFound, serial)
	}
	return id, nil
}
