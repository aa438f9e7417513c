package merger

import (
	"github.com/invoxy/spec-mesh/document"
	"github.com/invoxy/spec-mesh/internal/naming"
)

// DefaultProxyPathPrefix is the path prefix used for proxy-mode server
// entries: "/proxy/<sanitized-service-name>".
const DefaultProxyPathPrefix = "/proxy"

// InjectServers ensures every operation in the document has a server entry
// for the given service. In direct mode the entry's url is the raw service
// URL; in proxy mode it is "<prefix>/<sanitized-name>" with a description
// naming the proxied origin. The document is modified in place; callers
// that must preserve the original should Clone first (Merge does).
//
// Injection is idempotent against the raw service URL: an operation whose
// servers already contain an entry with that exact url is skipped. The
// check deliberately compares the raw URL even in proxy mode, so switching
// modes between runs can add a second entry for the same service.
//
// Returns the number of server entries appended.
func InjectServers(doc document.Value, serverURL, serviceName string, proxyMode bool) int {
	return injectServers(doc, serverURL, serviceName, proxyMode, DefaultProxyPathPrefix)
}

func injectServers(doc document.Value, serverURL, serviceName string, proxyMode bool, proxyPrefix string) int {
	injected := 0

	paths := doc.Get("paths")
	if paths.Kind() != document.KindObject {
		return 0
	}

	for _, path := range paths.Keys() {
		item := paths.Get(path)
		if item.Kind() != document.KindObject {
			// tolerant walk: non-object path items are skipped, not errors
			continue
		}

		for _, method := range item.Keys() {
			op := item.Get(method)
			if op.Kind() != document.KindObject {
				continue
			}

			servers := op.Get("servers")
			switch servers.Kind() {
			case document.KindArray:
			case document.KindInvalid:
				servers = document.NewArray()
				op.Set("servers", servers)
			default:
				// existing non-sequence servers field: leave it alone
				continue
			}

			if hasServerURL(servers, serverURL) {
				continue
			}

			servers.Append(buildServerEntry(serverURL, serviceName, proxyMode, proxyPrefix))
			injected++
		}
	}

	return injected
}

// hasServerURL scans a servers sequence for an entry whose url equals the
// raw service URL.
func hasServerURL(servers document.Value, serverURL string) bool {
	for i := 0; i < servers.Len(); i++ {
		if url, ok := servers.At(i).Get("url").AsString(); ok && url == serverURL {
			return true
		}
	}
	return false
}

func buildServerEntry(serverURL, serviceName string, proxyMode bool, proxyPrefix string) document.Value {
	entry := document.NewObject()
	if !proxyMode {
		entry.Set("url", document.String(serverURL))
		return entry
	}

	safe := naming.SafeName(serviceName)
	if safe == "" {
		safe = naming.FallbackName()
	}
	entry.Set("url", document.String(proxyPrefix+"/"+safe))
	entry.Set("description", document.String("Proxied to "+serverURL))
	return entry
}
