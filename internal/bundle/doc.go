// Package bundle implements the leaf stages of the wallet bundle pipeline:
// hashing template assets into a manifest, producing a detached CMS
// signature over that manifest, and packaging everything into the zip
// layout wallet clients install.
//
// Nothing in this package touches storage or the network. The service
// layer decides what goes into a bundle; this package decides how it is
// laid out and signed.
package bundle
