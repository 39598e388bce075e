// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the admin command-line client of the issuer.
//
// Each sub-command maps to one call of [adapter.IssuerAdapter]; JSON bodies
// are read from a file or stdin and results are printed to stdout.
package client
