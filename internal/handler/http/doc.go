// Package http implements the HTTP transport layer of the issuer.
//
// It exposes the wallet web-service protocol once per item kind (under
// /api/passes/v1 and /api/orders/v1), the admin API under /api/admin, the
// version endpoint and the Prometheus scrape endpoint. Request tracing,
// access logging, compression and authorization are handled here before
// requests reach the service layer.
package http
