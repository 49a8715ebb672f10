// Package dashboard implements the extension status dashboard feature.
//
// It cross-references the versions every browser extension store publishes
// against the submission registry and serves the classified result.
//
// # Components
//
//   - Service: Fetches the upstream feed and delegates to the core/reconcile
//     pipeline. Each call works on a fresh snapshot; concurrent calls share a
//     single upstream request.
//   - Handler: Exposes the HTTP endpoints and attaches short-lived caching hints.
//   - Loader: Registers the feature with the application.
//
// # HTTP Endpoints
//
//   - GET /extensions : All classified groups (supports ?status=live|pending|mismatch).
//   - GET /extensions/raw : The upstream document, proxied unmodified.
//   - GET /extensions/:name : One group by canonical name or slug (e.g. 'adblockplus').
//
// A failed upstream fetch yields 502 Bad Gateway; the upstream status code is
// included when the upstream answered with a non-2xx response.
package dashboard
