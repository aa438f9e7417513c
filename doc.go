// Package specmesh provides tools for aggregating OpenAPI Specification (OAS)
// documents from multiple upstream services into a single merged document.
//
// spec-mesh is built for API gateways that front many independent services,
// each publishing its own OpenAPI or Swagger document. It fetches every
// service's document, validates it, and folds them all into one internally
// consistent specification with per-operation server entries and optional
// per-service tag namespacing.
//
// # Overview
//
// The library consists of these primary packages:
//
//   - document: a tagged-union value type for semi-structured OAS trees
//   - merger: the deterministic merge engine, server injection, tag
//     namespacing, and merged-document metadata
//   - validator: structural validation of candidate documents
//   - fetcher: concurrent retrieval and decoding of upstream documents
//   - probe: reverse-proxy reachability checks
//   - config: YAML configuration for sources and merge settings
//
// # Quick Start
//
// Merge two already-decoded documents:
//
//	import "github.com/invoxy/spec-mesh/merger"
//
//	result, err := merger.MergeWithOptions(
//		merger.WithSources(
//			merger.Source{Name: "users", URL: "http://users:8080", Document: usersDoc},
//			merger.Source{Name: "billing", URL: "http://billing:8080", Document: billingDoc},
//		),
//		merger.WithGrouping(true),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("merged %d paths, %d collisions\n",
//		result.Document.Get("paths").Len(), result.CollisionCount)
//
// Fetch documents from configured sources first:
//
//	cfg, _ := config.Load("config.yml")
//	f := fetcher.New()
//	sources, errs := f.FetchAll(ctx, cfg.Sources)
//	for _, e := range errs {
//		log.Printf("excluded %s: %v", e.Name, e.Err)
//	}
//	result, err := merger.New(merger.Config{Grouping: cfg.Settings.GroupingEnabled()}).Merge(sources)
//
// # Command Line
//
// The specmesh CLI wraps the library:
//
//	specmesh merge -config config.yml -o merged.yaml
//	specmesh validate http://users:8080/openapi.json
//	specmesh mcp
package specmesh
