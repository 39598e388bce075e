// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"bytes"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-wallet-issuer/models"
	"github.com/klauspost/compress/zip"
)

// Contents is everything that goes into a single bundle.
type Contents struct {
	// DocumentName is the file name of the item JSON document,
	// e.g. "pass.json".
	DocumentName string
	Document     []byte
	Manifest     []byte
	Signature    []byte

	// Personalization is optional. When nil no personalization entry is
	// written.
	Personalization []byte

	// TemplateDir holds the static assets copied into the bundle.
	TemplateDir string
}

// NamedBundle is one inner archive of a batch.
type NamedBundle struct {
	Name string
	Data []byte
}

// ReservedNames returns the root-level names the pipeline generates itself.
// Template files with these names are never copied nor digested: the
// generated artifact wins.
func ReservedNames(documentName string) []string {
	return []string{
		documentName,
		models.ManifestFileName,
		models.SignatureFileName,
		models.PersonalizationFileName,
	}
}

// Archive packages c into a zip archive. Generated entries come first,
// followed by template files in lexical path order.
func Archive(c Contents) ([]byte, error) {
	if err := ensureDirectory(c.TemplateDir); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	generated := []NamedBundle{
		{Name: c.DocumentName, Data: c.Document},
		{Name: models.ManifestFileName, Data: c.Manifest},
		{Name: models.SignatureFileName, Data: c.Signature},
	}
	if c.Personalization != nil {
		generated = append(generated, NamedBundle{Name: models.PersonalizationFileName, Data: c.Personalization})
	}

	for _, entry := range generated {
		if err := writeEntry(zw, entry.Name, zip.Deflate, bytes.NewReader(entry.Data)); err != nil {
			return nil, err
		}
	}

	if err := copyTemplate(zw, c.TemplateDir, ReservedNames(c.DocumentName)); err != nil {
		return nil, err
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	return buf.Bytes(), nil
}

// ArchiveBatch wraps complete bundles into an outer archive. Entries are
// stored uncompressed in the given order.
func ArchiveBatch(bundles []NamedBundle) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)

	for _, b := range bundles {
		if err := writeEntry(zw, b.Name, zip.Store, bytes.NewReader(b.Data)); err != nil {
			return nil, err
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrArchiveFailed, err)
	}

	return buf.Bytes(), nil
}

func copyTemplate(zw *zip.Writer, dir string, reserved []string) error {
	skip := make(map[string]struct{}, len(reserved))
	for _, name := range reserved {
		skip[name] = struct{}{}
	}

	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if !d.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(rel)
		if _, ok := skip[name]; ok {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrArchiveFailed, err)
		}
		defer f.Close()

		return writeEntry(zw, name, zip.Deflate, f)
	})
}

func writeEntry(zw *zip.Writer, name string, method uint16, r io.Reader) error {
	w, err := zw.CreateHeader(&zip.FileHeader{
		Name:   name,
		Method: method,
	})
	if err != nil {
		return fmt.Errorf("%w: creating %q: %w", ErrArchiveFailed, name, err)
	}

	if _, err := io.Copy(w, r); err != nil {
		return fmt.Errorf("%w: writing %q: %w", ErrArchiveFailed, name, err)
	}

	return nil
}
