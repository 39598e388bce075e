package client

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/MKhiriev/go-wallet-issuer/internal/adapter"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAdapter records the last call and returns canned results.
type fakeAdapter struct {
	kind   models.Kind
	typeID string
	serial string

	created models.CreateItemRequest
	updated models.UpdateItemRequest
	batch   models.BatchBundleRequest
	pushed  bool
	deleted bool

	archive []byte
	tokens  []string
	swept   int64
	err     error
}

func (f *fakeAdapter) Version(context.Context) (string, error) { return "1.2.3", f.err }

func (f *fakeAdapter) CreateItem(_ context.Context, kind models.Kind, req models.CreateItemRequest) (models.WalletItem, error) {
	f.kind, f.created = kind, req
	return models.WalletItem{ID: uuid.Nil, Kind: kind, TypeIdentifier: req.TypeIdentifier}, f.err
}

func (f *fakeAdapter) UpdateItem(_ context.Context, kind models.Kind, typeID, serial string, req models.UpdateItemRequest) (models.WalletItem, error) {
	f.kind, f.typeID, f.serial, f.updated = kind, typeID, serial, req
	return models.WalletItem{Kind: kind, TypeIdentifier: typeID}, f.err
}

func (f *fakeAdapter) DeleteItem(_ context.Context, kind models.Kind, typeID, serial string) error {
	f.kind, f.typeID, f.serial, f.deleted = kind, typeID, serial, true
	return f.err
}

func (f *fakeAdapter) BatchBundle(_ context.Context, kind models.Kind, req models.BatchBundleRequest) ([]byte, error) {
	f.kind, f.batch = kind, req
	return f.archive, f.err
}

func (f *fakeAdapter) PushTokens(_ context.Context, kind models.Kind, typeID, serial string) ([]string, error) {
	f.kind, f.typeID, f.serial = kind, typeID, serial
	return f.tokens, f.err
}

func (f *fakeAdapter) SendPush(_ context.Context, kind models.Kind, typeID, serial string) error {
	f.kind, f.typeID, f.serial, f.pushed = kind, typeID, serial, true
	return f.err
}

func (f *fakeAdapter) SweepOrphanDevices(context.Context) (int64, error) { return f.swept, f.err }

var _ adapter.IssuerAdapter = (*fakeAdapter)(nil)

func run(t *testing.T, fake *fakeAdapter, stdin string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	err := NewApp(fake, strings.NewReader(stdin), &out, logger.Nop()).Run(context.Background(), args)
	return out.String(), err
}

func TestApp_Version(t *testing.T) {
	out, err := run(t, &fakeAdapter{}, "", "version")

	require.NoError(t, err)
	assert.Equal(t, "1.2.3\n", out)
}

func TestApp_CreateFromStdin(t *testing.T) {
	fake := &fakeAdapter{}
	body := `{"type_identifier":"order.com.example","template":"receipt","properties":{"a":1}}`

	out, err := run(t, fake, body, "create", "--kind", "order")
	require.NoError(t, err)

	assert.Equal(t, models.KindOrder, fake.kind)
	assert.Equal(t, "receipt", fake.created.Template)
	assert.JSONEq(t, `{"a":1}`, string(fake.created.Properties))

	var item models.WalletItem
	require.NoError(t, json.Unmarshal([]byte(out), &item))
	assert.Equal(t, "order.com.example", item.TypeIdentifier)
}

func TestApp_CreateEmptyBody(t *testing.T) {
	_, err := run(t, &fakeAdapter{}, "", "create")
	assert.ErrorIs(t, err, ErrEmptyBody)
}

func TestApp_UnknownKind(t *testing.T) {
	_, err := run(t, &fakeAdapter{}, "{}", "create", "--kind", "ticket")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestApp_UpdateFromFile(t *testing.T) {
	fake := &fakeAdapter{}
	path := filepath.Join(t.TempDir(), "update.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"template":"vip"}`), 0o600))

	_, err := run(t, fake, "", "update", "-t", "pass.com.example", "-s", "abc", "-f", path)
	require.NoError(t, err)

	assert.Equal(t, models.KindPass, fake.kind)
	assert.Equal(t, "pass.com.example", fake.typeID)
	assert.Equal(t, "abc", fake.serial)
	require.NotNil(t, fake.updated.Template)
	assert.Equal(t, "vip", *fake.updated.Template)
}

func TestApp_DeleteRequiresItemFlags(t *testing.T) {
	fake := &fakeAdapter{}

	_, err := run(t, fake, "", "delete", "-t", "pass.com.example")
	assert.Error(t, err)
	assert.False(t, fake.deleted)

	_, err = run(t, fake, "", "delete", "-t", "pass.com.example", "-s", "abc")
	require.NoError(t, err)
	assert.True(t, fake.deleted)
}

func TestApp_BundleToFile(t *testing.T) {
	fake := &fakeAdapter{archive: []byte("PK\x03\x04")}
	path := filepath.Join(t.TempDir(), "bundle.pkpasses")

	_, err := run(t, fake, "", "bundle", "-t", "pass.com.example", "-o", path, "a", "b")
	require.NoError(t, err)

	assert.Equal(t, []string{"a", "b"}, fake.batch.SerialNumbers)
	assert.Equal(t, "pass.com.example", fake.batch.TypeIdentifier)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, fake.archive, data)
}

func TestApp_BundleToStdout(t *testing.T) {
	fake := &fakeAdapter{archive: []byte("PK\x03\x04")}

	out, err := run(t, fake, "", "bundle", "-t", "pass.com.example", "-o", "-", "a")
	require.NoError(t, err)
	assert.Equal(t, "PK\x03\x04", out)
}

func TestApp_BundleArgumentErrors(t *testing.T) {
	_, err := run(t, &fakeAdapter{}, "", "bundle", "-t", "pass.com.example", "-o", "-")
	assert.ErrorIs(t, err, ErrNoSerials)

	_, err = run(t, &fakeAdapter{}, "", "bundle", "-t", "pass.com.example", "a")
	assert.ErrorIs(t, err, ErrOutputNeeded)
}

func TestApp_Tokens(t *testing.T) {
	fake := &fakeAdapter{tokens: []string{"one", "two"}}

	out, err := run(t, fake, "", "tokens", "-k", "order", "-t", "order.com.example", "-s", "abc")
	require.NoError(t, err)

	assert.Equal(t, models.KindOrder, fake.kind)
	assert.JSONEq(t, `{"pushTokens":["one","two"]}`, out)
}

func TestApp_Push(t *testing.T) {
	fake := &fakeAdapter{}

	_, err := run(t, fake, "", "push", "-t", "pass.com.example", "-s", "abc")
	require.NoError(t, err)
	assert.True(t, fake.pushed)
}

func TestApp_SweepPropagatesError(t *testing.T) {
	_, err := run(t, &fakeAdapter{err: adapter.ErrUnauthorized}, "", "sweep")
	assert.ErrorIs(t, err, adapter.ErrUnauthorized)

	out, err := run(t, &fakeAdapter{swept: 3}, "", "sweep")
	require.NoError(t, err)
	assert.JSONEq(t, `{"deleted":3}`, out)
}
