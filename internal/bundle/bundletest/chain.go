// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bundletest generates throwaway signing identities for tests: a
// self-signed root, an intermediate playing the WWDR role and a leaf
// certificate with its key, all written to PEM files in a temp directory.
package bundletest

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/pem"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Chain is a generated certificate chain.
type Chain struct {
	Root         *x509.Certificate
	Intermediate *x509.Certificate
	Leaf         *x509.Certificate
	LeafKey      *ecdsa.PrivateKey

	// RootPool trusts only Root.
	RootPool *x509.CertPool

	// PEM files written to a per-test temp directory.
	LeafCertPath     string
	LeafKeyPath      string
	IntermediatePath string
	Dir              string
}

// NewChain creates root → intermediate → leaf and writes the leaf
// certificate, the unencrypted PKCS#8 leaf key and the intermediate to disk.
func NewChain(t *testing.T) *Chain {
	t.Helper()

	rootKey := newKey(t)
	root := issue(t, &x509.Certificate{
		Subject:               pkix.Name{CommonName: "Test Root CA"},
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}, nil, rootKey, rootKey)

	interKey := newKey(t)
	inter := issue(t, &x509.Certificate{
		Subject:               pkix.Name{CommonName: "Test Worldwide Developer Relations"},
		IsCA:                  true,
		BasicConstraintsValid: true,
		KeyUsage:              x509.KeyUsageCertSign | x509.KeyUsageCRLSign,
	}, root, interKey, rootKey)

	leafKey := newKey(t)
	leaf := issue(t, &x509.Certificate{
		Subject:  pkix.Name{CommonName: "Pass Type ID: pass.com.example.test"},
		KeyUsage: x509.KeyUsageDigitalSignature,
	}, inter, leafKey, interKey)

	pool := x509.NewCertPool()
	pool.AddCert(root)

	dir := t.TempDir()
	chain := &Chain{
		Root:             root,
		Intermediate:     inter,
		Leaf:             leaf,
		LeafKey:          leafKey,
		RootPool:         pool,
		Dir:              dir,
		LeafCertPath:     filepath.Join(dir, "certificate.pem"),
		LeafKeyPath:      filepath.Join(dir, "key.pem"),
		IntermediatePath: filepath.Join(dir, "wwdr.pem"),
	}

	WritePEM(t, chain.LeafCertPath, "CERTIFICATE", leaf.Raw)
	keyDER, err := x509.MarshalPKCS8PrivateKey(leafKey)
	require.NoError(t, err)
	WritePEM(t, chain.LeafKeyPath, "PRIVATE KEY", keyDER)
	WritePEM(t, chain.IntermediatePath, "CERTIFICATE", inter.Raw)

	return chain
}

// WritePEM writes a single PEM block to path.
func WritePEM(t *testing.T, path, blockType string, der []byte) {
	t.Helper()
	data := pem.EncodeToMemory(&pem.Block{Type: blockType, Bytes: der})
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

var serial int64

func issue(t *testing.T, tmpl, parent *x509.Certificate, key *ecdsa.PrivateKey, parentKey crypto.Signer) *x509.Certificate {
	t.Helper()

	serial++
	tmpl.SerialNumber = big.NewInt(serial)
	tmpl.NotBefore = time.Now().Add(-time.Hour)
	tmpl.NotAfter = time.Now().Add(24 * time.Hour)
	if parent == nil {
		parent = tmpl
	}

	der, err := x509.CreateCertificate(rand.Reader, tmpl, parent, &key.PublicKey, parentKey)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	return cert
}

func newKey(t *testing.T) *ecdsa.PrivateKey {
	t.Helper()
	key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	require.NoError(t, err)
	return key
}
