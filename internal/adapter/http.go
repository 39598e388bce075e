package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/utils"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/go-resty/resty/v2"
)

type httpIssuerAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPIssuerAdapter returns an [IssuerAdapter] for cfg.Address. The
// admin secret is attached to every request.
func NewHTTPIssuerAdapter(cfg config.ClientConfig, logger *logger.Logger) (IssuerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("invalid issuer address: %w", err)
	}

	client := utils.NewHTTPClient()
	client.
		SetBaseURL(baseURL).
		SetHeader(cfg.AdminSecretHeader, cfg.AdminSecret)
	if cfg.RequestTimeout > 0 {
		client.SetTimeout(cfg.RequestTimeout)
	}

	return &httpIssuerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpIssuerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpIssuerAdapter) CreateItem(ctx context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error) {
	var item models.WalletItem

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&item).
		SetPathParam("kind", kind.String()).
		Post("/api/admin/{kind}/items")
	if err != nil {
		return models.WalletItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletItem{}, err
	}

	return item, nil
}

func (h *httpIssuerAdapter) UpdateItem(ctx context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error) {
	var item models.WalletItem

	resp, err := h.jsonRequest(ctx, req).
		SetResult(&item).
		SetPathParams(itemPath(kind, typeID, serial)).
		Put("/api/admin/{kind}/items/{type}/{id}")
	if err != nil {
		return models.WalletItem{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.WalletItem{}, err
	}

	return item, nil
}

func (h *httpIssuerAdapter) DeleteItem(ctx context.Context, kind models.Kind, typeID, serial string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(itemPath(kind, typeID, serial)).
		Delete("/api/admin/{kind}/items/{type}/{id}")
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpIssuerAdapter) BatchBundle(ctx context.Context, kind models.Kind, req models.BatchBundleRequest) ([]byte, error) {
	resp, err := h.jsonRequest(ctx, req).
		SetPathParam("kind", kind.String()).
		Post("/api/admin/{kind}/bundles")
	if err != nil {
		return nil, fmt.Errorf("batch bundle request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Body(), nil
}

func (h *httpIssuerAdapter) PushTokens(ctx context.Context, kind models.Kind, typeID, serial string) ([]string, error) {
	var tokens models.PushTokensResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&tokens).
		SetPathParams(itemPath(kind, typeID, serial)).
		Get(pushPath(kind))
	if err != nil {
		return nil, fmt.Errorf("push tokens request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return tokens.PushTokens, nil
}

func (h *httpIssuerAdapter) SendPush(ctx context.Context, kind models.Kind, typeID, serial string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetPathParams(itemPath(kind, typeID, serial)).
		Post(pushPath(kind))
	if err != nil {
		return fmt.Errorf("send push request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpIssuerAdapter) SweepOrphanDevices(ctx context.Context) (int64, error) {
	var sweep models.OrphanSweepResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&sweep).
		Delete("/api/admin/devices/orphans")
	if err != nil {
		return 0, fmt.Errorf("sweep orphan devices request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	return sweep.Deleted, nil
}

func (h *httpIssuerAdapter) jsonRequest(ctx context.Context, body any) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
}

func itemPath(kind models.Kind, typeID, serial string) map[string]string {
	return map[string]string{
		"kind": kind.String(),
		"type": typeID,
		"id":   serial,
	}
}

// pushPath is served under the device protocol prefix of the kind.
func pushPath(kind models.Kind) string {
	return "/api/" + kind.MustSpec().PathSegment + "/v1/push/{type}/{id}"
}
