// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-wallet-issuer/internal/bundle"
	"github.com/MKhiriev/go-wallet-issuer/internal/config"
	"github.com/MKhiriev/go-wallet-issuer/internal/logger"
	"github.com/MKhiriev/go-wallet-issuer/internal/metrics"
	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/gammazero/workerpool"
)

type bundleService struct {
	resolver ContentResolver
	signers  map[models.Kind]bundle.Signer
	wallets  wallets

	concurrency int
	metrics     *metrics.Metrics

	logger *logger.Logger
}

func NewBundleService(resolver ContentResolver, signers map[models.Kind]bundle.Signer, wallets map[models.Kind]config.Wallet, concurrency int, metrics *metrics.Metrics, logger *logger.Logger) BundleService {
	return &bundleService{
		resolver:    resolver,
		signers:     signers,
		wallets:     wallets,
		concurrency: max(concurrency, 1),
		metrics:     metrics,
		logger:      logger,
	}
}

// Generate runs the pipeline for one item:
//
//	resolve → document → manifest → sign → archive
//
// A failure at any stage aborts the bundle.
func (s *bundleService) Generate(ctx context.Context, item models.Item) (data []byte, err error) {
	started := time.Now()
	defer func() {
		s.metrics.ObserveBundle(item.ItemKind(), started, err)
	}()

	log := logger.FromContext(ctx).WithItem(item)

	wallet, spec, err := s.wallets.get(item.ItemKind())
	if err != nil {
		return nil, err
	}

	source, err := s.resolver.Resolve(ctx, item)
	if err != nil {
		log.Err(err).Str("func", "bundleService.Generate").Msg("failed to resolve item content")
		return nil, err
	}

	document, err := bundle.BuildDocument(spec, source.Properties, item, wallet.WebServiceURL)
	if err != nil {
		log.Err(err).Str("func", "bundleService.Generate").Msg("failed to build item document")
		return nil, err
	}

	manifest, err := bundle.BuildManifest(source.TemplateDir, spec.NewDigest)
	if err != nil {
		log.Err(err).Str("func", "bundleService.Generate").Msg("failed to build manifest")
		return nil, err
	}
	manifest.Remove(bundle.ReservedNames(spec.DocumentFileName)...)
	manifest.Add(spec.DocumentFileName, document, spec.NewDigest)

	manifestJSON, err := manifest.Marshal()
	if err != nil {
		return nil, fmt.Errorf("error marshaling manifest: %w", err)
	}

	signature, err := s.sign(ctx, item.ItemKind(), manifestJSON)
	if err != nil {
		log.Err(err).Str("func", "bundleService.Generate").Msg("failed to sign manifest")
		return nil, err
	}

	data, err = bundle.Archive(bundle.Contents{
		DocumentName:    spec.DocumentFileName,
		Document:        document,
		Manifest:        manifestJSON,
		Signature:       signature,
		Personalization: source.Personalization,
		TemplateDir:     source.TemplateDir,
	})
	if err != nil {
		log.Err(err).Str("func", "bundleService.Generate").Msg("failed to archive bundle")
		return nil, err
	}

	log.Debug().Str("func", "bundleService.Generate").Int("size", len(data)).Msg("bundle generated")
	return data, nil
}

// GenerateBatch generates items on a worker pool. Results are collected by
// index so the outer archive keeps the input order.
func (s *bundleService) GenerateBatch(ctx context.Context, items []models.Item) ([]byte, error) {
	if len(items) == 0 {
		return nil, ErrInvalidNumberOfItems
	}

	kind, typeID := items[0].ItemKind(), items[0].ItemTypeIdentifier()
	for _, item := range items[1:] {
		if item.ItemKind() != kind || item.ItemTypeIdentifier() != typeID {
			return nil, ErrMixedBatch
		}
	}
	if _, _, err := s.wallets.get(kind); err != nil {
		return nil, err
	}
	spec := kind.MustSpec()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		results  = make([][]byte, len(items))
		once     sync.Once
		firstErr error
	)

	pool := workerpool.New(min(s.concurrency, len(items)))
	for i, item := range items {
		pool.Submit(func() {
			if ctx.Err() != nil {
				return
			}
			data, err := s.Generate(ctx, item)
			if err != nil {
				once.Do(func() {
					firstErr = fmt.Errorf("serial %s: %w", item.ItemID(), err)
					cancel()
				})
				return
			}
			results[i] = data
		})
	}
	pool.StopWait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	bundles := make([]bundle.NamedBundle, len(items))
	for i, item := range items {
		bundles[i] = bundle.NamedBundle{
			Name: item.ItemID().String() + spec.Extension,
			Data: results[i],
		}
	}

	return bundle.ArchiveBatch(bundles)
}

func (s *bundleService) SignToken(ctx context.Context, kind models.Kind, token []byte) ([]byte, error) {
	if _, _, err := s.wallets.get(kind); err != nil {
		return nil, err
	}
	return s.sign(ctx, kind, token)
}

// sign bounds the signer by the signing timeout of kind.
func (s *bundleService) sign(ctx context.Context, kind models.Kind, content []byte) ([]byte, error) {
	signer, ok := s.signers[kind]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrSignerNotConfigured, kind)
	}

	if timeout := s.wallets[kind].Signing.Timeout; timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	return signer.Sign(ctx, content)
}
