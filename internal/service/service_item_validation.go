package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-wallet-issuer/internal/validators"
	"github.com/MKhiriev/go-wallet-issuer/models"
)

// ItemValidationService checks admin requests before they reach the
// wrapped ItemService.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewWalletValidator(),
	}
}

func (v *ItemValidationService) CreateItem(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.WalletItem{}, fmt.Errorf("error during item validation before saving: %w", err)
	}

	return v.inner.CreateItem(ctx, kind, req)
}

func (v *ItemValidationService) GetItem(ctx context.Context, kind models.Kind, typeID, serial string) (models.WalletItem, error) {
	return v.inner.GetItem(ctx, kind, typeID, serial)
}

func (v *ItemValidationService) GetItems(ctx context.Context, kind models.Kind, typeID string, serials []string) ([]models.WalletItem, error) {
	req := models.BatchBundleRequest{TypeIdentifier: typeID, SerialNumbers: serials}
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, fmt.Errorf("error during batch validation: %w", err)
	}

	return v.inner.GetItems(ctx, kind, typeID, serials)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return models.WalletItem{}, fmt.Errorf("error during item validation before updating: %w", err)
	}

	return v.inner.UpdateItem(ctx, kind, typeID, serial, req)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, kind models.Kind, typeID, serial string) error {
	return v.inner.DeleteItem(ctx, kind, typeID, serial)
}

func (v *ItemValidationService) Authorize(ctx context.Context, kind models.Kind, typeID, serial, authorization string) (models.WalletItem, error) {
	return v.inner.Authorize(ctx, kind, typeID, serial, authorization)
}

func (v *ItemValidationService) Wrap(wrapped ItemService) ItemService {
	v.inner = wrapped
	return v
}
