// Package merger provides the merge engine that folds OpenAPI documents
// from multiple services into a single document.
//
// The merger processes sources in input order: each source's document is
// copied, given per-operation server entries (direct origin URLs or
// reverse-proxy paths), optionally tag-namespaced by service, and then
// folded into accumulating path, schema, and component maps. Name
// collisions are resolved with a two-level scheme: the first writer keeps
// the bare key, later writers get "<key>_<sourceName>". Every rename is
// reported as a structured warning; collisions are never fatal.
//
// # Quick Start
//
//	result, err := merger.MergeWithOptions(
//		merger.WithSources(
//			merger.Source{Name: "users", URL: "http://users:8080", Document: usersDoc, Enabled: true},
//			merger.Source{Name: "billing", URL: "http://billing:8080", Document: billingDoc, Enabled: true},
//		),
//		merger.WithGrouping(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if result.Empty() {
//		log.Fatal("no sources contributed")
//	}
//	for _, w := range result.Warnings {
//		log.Println(w)
//	}
//
// Or create a reusable Merger instance:
//
//	m := merger.New(merger.Config{Grouping: true})
//	result, err := m.Merge(sources)
//
// # Determinism
//
// The fold is sequential and order-sensitive: the caller-determined source
// order decides which source wins an unprefixed key. Merging the same
// sources in the same order always produces the same document, including
// key order.
//
// The merge engine performs no I/O. Document retrieval belongs to the
// fetcher package and proxy reachability to the probe package; the engine
// only ever receives decoded documents and a proxy-mode boolean.
package merger
