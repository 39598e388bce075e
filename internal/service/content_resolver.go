package service

import (
	"context"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/store"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

// storeContentResolver reads the content row of an item and maps its
// template name onto the templates root of the item kind.
type storeContentResolver struct {
	items           store.ItemRepository
	personalization store.PersonalizationRepository
	wallets         wallets
}

func NewStoreContentResolver(items store.ItemRepository, personalization store.PersonalizationRepository, wallets map[models.Kind]config.Wallet) ContentResolver {
	return &storeContentResolver{
		items:           items,
		personalization: personalization,
		wallets:         wallets,
	}
}

// Resolve implements [ContentResolver]. The personalization document is
// offered only until the holder has personalized the pass.
func (r *storeContentResolver) Resolve(ctx context.Context, item models.Item) (bundle.Source, error) {
	content, err := r.items.GetContent(ctx, item.ItemID())
	if err != nil {
		return bundle.Source{}, err
	}

	dir, err := r.wallets.templateDir(item.ItemKind(), content.Template)
	if err != nil {
		return bundle.Source{}, err
	}

	source := bundle.Source{
		TemplateDir: dir,
		Properties:  content.Properties,
	}

	if item.ItemKind().MustSpec().SupportsPersonalization && len(content.Personalization) > 0 {
		personalized, err := r.personalization.IsPersonalized(ctx, item.ItemID())
		if err != nil {
			return bundle.Source{}, err
		}
		if !personalized {
			source.Personalization = content.Personalization
		}
	}

	return source, nil
}
