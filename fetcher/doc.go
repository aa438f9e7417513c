// Package fetcher retrieves OpenAPI documents from upstream services over
// HTTP/HTTPS and decodes them into document values.
//
// Decoding is driven by the response Content-Type: OpenAPI media types
// (application/vnd.oai.openapi*) are tried as JSON first with a YAML
// fallback, plain JSON and YAML types decode directly, and anything else
// falls back to URL-extension and content sniffing. The merge engine never
// sees raw bytes; it only receives already-decoded documents.
//
// FetchAll fans out over all configured sources concurrently with a bounded
// worker limit and a per-source timeout. Failures are isolated per source:
// one unreachable service never aborts retrieval of the others.
package fetcher
