// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"crypto"
	"crypto/tls"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"os"

	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/youmark/pkcs8"
	"golang.org/x/crypto/pkcs12"
)

// Credentials is the parsed signing identity: the leaf certificate, its
// private key and the intermediate chain (e.g. the WWDR certificate).
type Credentials struct {
	Certificate *x509.Certificate
	PrivateKey  crypto.PrivateKey
	Chain       []*x509.Certificate
}

// LoadCredentials reads the signing identity described by cfg.
//
// A PKCS#12 bundle (cfg.P12Path) takes precedence over separate PEM
// certificate and key files. The chain file may be PEM or DER encoded and
// may contain several certificates.
func LoadCredentials(cfg config.Signing) (*Credentials, error) {
	var (
		creds *Credentials
		err   error
	)

	if cfg.P12Path != "" {
		creds, err = loadPKCS12(cfg.P12Path, cfg.KeyPassword)
	} else {
		creds, err = loadPEM(cfg.CertPath, cfg.KeyPath, cfg.KeyPassword)
	}
	if err != nil {
		return nil, err
	}

	if cfg.ChainPath != "" {
		data, err := os.ReadFile(cfg.ChainPath)
		if err != nil {
			return nil, fmt.Errorf("%w: reading chain: %w", ErrPemCertificateMissing, err)
		}
		chain, err := parseCertificates(data)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing chain: %w", ErrKeyReadFailed, err)
		}
		creds.Chain = chain
	}

	if err := checkKeyMatchesCertificate(creds.PrivateKey, creds.Certificate); err != nil {
		return nil, err
	}

	return creds, nil
}

// TLSCertificate returns the identity as a TLS client certificate, e.g. for
// certificate-based push authentication.
func (c *Credentials) TLSCertificate() tls.Certificate {
	chain := make([][]byte, 0, len(c.Chain)+1)
	chain = append(chain, c.Certificate.Raw)
	for _, cert := range c.Chain {
		chain = append(chain, cert.Raw)
	}

	return tls.Certificate{
		Certificate: chain,
		PrivateKey:  c.PrivateKey,
		Leaf:        c.Certificate,
	}
}

func loadPEM(certPath, keyPath, password string) (*Credentials, error) {
	if certPath == "" {
		return nil, ErrPemCertificateMissing
	}
	if keyPath == "" {
		return nil, ErrPemPrivateKeyMissing
	}

	certData, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPemCertificateMissing, err)
	}
	certs, err := parseCertificates(certData)
	if err != nil {
		return nil, fmt.Errorf("%w: parsing certificate: %w", ErrKeyReadFailed, err)
	}
	if len(certs) == 0 {
		return nil, ErrPemCertificateMissing
	}

	keyData, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPemPrivateKeyMissing, err)
	}
	key, err := parsePrivateKey(keyData, password)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		Certificate: certs[0],
		PrivateKey:  key,
		Chain:       certs[1:],
	}, nil
}

func loadPKCS12(path, password string) (*Credentials, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPemCertificateMissing, err)
	}

	key, cert, err := pkcs12.Decode(data, password)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyReadFailed, err)
	}

	return &Credentials{
		Certificate: cert,
		PrivateKey:  key,
	}, nil
}

// parseCertificates accepts a PEM file with one or more CERTIFICATE blocks
// or raw DER.
func parseCertificates(data []byte) ([]*x509.Certificate, error) {
	var certs []*x509.Certificate

	rest := data
	for {
		var block *pem.Block
		block, rest = pem.Decode(rest)
		if block == nil {
			break
		}
		if block.Type != "CERTIFICATE" {
			continue
		}
		cert, err := x509.ParseCertificate(block.Bytes)
		if err != nil {
			return nil, err
		}
		certs = append(certs, cert)
	}

	if len(certs) > 0 {
		return certs, nil
	}

	return x509.ParseCertificates(data)
}

func parsePrivateKey(data []byte, password string) (crypto.PrivateKey, error) {
	block, _ := pem.Decode(data)
	if block == nil {
		return nil, ErrPemPrivateKeyMissing
	}

	var (
		key any
		err error
	)

	switch block.Type {
	case "ENCRYPTED PRIVATE KEY":
		if password == "" {
			return nil, fmt.Errorf("%w: key is encrypted but no password is configured", ErrKeyReadFailed)
		}
		key, err = pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(password))
	case "PRIVATE KEY":
		key, err = x509.ParsePKCS8PrivateKey(block.Bytes)
	case "RSA PRIVATE KEY", "EC PRIVATE KEY":
		der := block.Bytes
		//nolint:staticcheck // legacy OpenSSL-encrypted PEM is still what most exports produce
		if x509.IsEncryptedPEMBlock(block) {
			der, err = x509.DecryptPEMBlock(block, []byte(password)) //nolint:staticcheck
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrKeyReadFailed, err)
			}
		}
		if block.Type == "RSA PRIVATE KEY" {
			key, err = x509.ParsePKCS1PrivateKey(der)
		} else {
			key, err = x509.ParseECPrivateKey(der)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported PEM block %q", ErrKeyReadFailed, block.Type)
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrKeyReadFailed, err)
	}

	return key, nil
}

func checkKeyMatchesCertificate(key crypto.PrivateKey, cert *x509.Certificate) error {
	if cert == nil {
		return ErrPemCertificateMissing
	}

	signer, ok := key.(crypto.Signer)
	if !ok {
		return fmt.Errorf("%w: key cannot sign", ErrKeyReadFailed)
	}

	pub, ok := signer.Public().(interface{ Equal(crypto.PublicKey) bool })
	if !ok || !pub.Equal(cert.PublicKey) {
		return fmt.Errorf("%w: %w", ErrKeyReadFailed, errors.New("private key does not match certificate"))
	}

	return nil
}
