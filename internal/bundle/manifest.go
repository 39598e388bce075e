// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bundle

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"hash"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Manifest maps a bundle-relative, slash-separated path to the lowercase hex
// digest of the file content.
type Manifest map[string]string

// BuildManifest walks dir recursively and digests every regular file with
// newDigest. Directories, symlinks and other special files are skipped.
//
// The result depends only on file content and relative paths, never on
// enumeration order. It returns [ErrTemplateNotDirectory] when dir does not
// resolve to a directory.
func BuildManifest(dir string, newDigest func() hash.Hash) (Manifest, error) {
	if err := ensureDirectory(dir); err != nil {
		return nil, err
	}

	manifest := make(Manifest)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
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

		sum, err := digestFile(path, newDigest)
		if err != nil {
			return err
		}

		manifest[filepath.ToSlash(rel)] = sum
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error walking template directory %q: %w", dir, err)
	}

	return manifest, nil
}

// Add records the digest of an in-memory entry, replacing any template file
// with the same name.
func (m Manifest) Add(name string, content []byte, newDigest func() hash.Hash) {
	m[name] = Digest(content, newDigest)
}

// Remove drops the given entries from the manifest.
func (m Manifest) Remove(names ...string) {
	for _, name := range names {
		delete(m, name)
	}
}

// Marshal serializes the manifest as a JSON object. encoding/json writes
// map keys in sorted order, so equal manifests always produce equal bytes.
func (m Manifest) Marshal() ([]byte, error) {
	return json.Marshal(map[string]string(m))
}

// Digest returns the lowercase hex digest of content.
func Digest(content []byte, newDigest func() hash.Hash) string {
	h := newDigest()
	h.Write(content)
	return hex.EncodeToString(h.Sum(nil))
}

func digestFile(path string, newDigest func() hash.Hash) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := newDigest()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

func ensureDirectory(dir string) error {
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrTemplateNotDirectory, dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrTemplateNotDirectory, dir)
	}
	return nil
}
