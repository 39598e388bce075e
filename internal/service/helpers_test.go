package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zip"
	"github.com/stretchr/testify/require"
)

const (
	testPassType  = "pass.com.example.event"
	testOrderType = "order.com.example.shop"
	testToken     = "0123456789abcdef0123"
)

var (
	errRepo      = errors.New("repository error")
	testNow      = time.Date(2026, 3, 14, 15, 9, 26, 535897000, time.UTC)
	fixedClock   = func() time.Time { return testNow }
	testTemplate = "event"
)

// writeTemplate creates <root>/<name>/ populated with files and returns root.
func writeTemplate(t *testing.T, name string, files map[string]string) string {
	t.Helper()

	root := t.TempDir()
	for rel, body := range files {
		path := filepath.Join(root, name, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, name), 0o755))
	return root
}

func testWallets(passRoot, orderRoot string) map[models.Kind]config.Wallet {
	w := make(map[models.Kind]config.Wallet)
	if passRoot != "" {
		w[models.KindPass] = config.Wallet{
			TemplatesDir:  passRoot,
			WebServiceURL: "https://wallet.example.com/api/passes",
			Signing:       config.Signing{Timeout: time.Second},
		}
	}
	if orderRoot != "" {
		w[models.KindOrder] = config.Wallet{
			TemplatesDir:  orderRoot,
			WebServiceURL: "https://wallet.example.com/api/orders",
			Signing:       config.Signing{Timeout: time.Second},
		}
	}
	return w
}

func testItem(kind models.Kind, typeID string) models.WalletItem {
	return models.WalletItem{
		ID:                  uuid.New(),
		Kind:                kind,
		TypeIdentifier:      typeID,
		AuthenticationToken: testToken,
		CreatedAt:           testNow,
		UpdatedAt:           testNow,
	}
}

func readArchive(t *testing.T, data []byte) ([]string, map[string][]byte) {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	contents := make(map[string][]byte, len(zr.File))
	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		body, err := io.ReadAll(rc)
		require.NoError(t, err)
		require.NoError(t, rc.Close())

		names = append(names, f.Name)
		contents[f.Name] = body
	}
	return names, contents
}

// resolverFunc adapts a function to ContentResolver.
type resolverFunc func(ctx context.Context, item models.Item) (bundle.Source, error)

func (f resolverFunc) Resolve(ctx context.Context, item models.Item) (bundle.Source, error) {
	return f(ctx, item)
}

// fakeNotifier records NotifyAsync calls.
type fakeNotifier struct {
	mu       sync.Mutex
	notified []models.Item
	err      error
}

func (n *fakeNotifier) Notify(_ context.Context, item models.Item) (NotifyReport, error) {
	return NotifyReport{}, n.NotifyAsync(item)
}

func (n *fakeNotifier) NotifyAsync(item models.Item) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.err != nil {
		return n.err
	}
	n.notified = append(n.notified, item)
	return nil
}

func (n *fakeNotifier) Stop() {}

func (n *fakeNotifier) calls() []models.Item {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]models.Item(nil), n.notified...)
}
