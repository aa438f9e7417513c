// Package document provides a tagged-union value type for semi-structured
// OpenAPI Specification trees.
//
// OpenAPI documents arrive from upstream services as arbitrary JSON or YAML
// with optional fields throughout. Rather than asserting concrete Go types at
// every step of a walk, this package models a document as a Value with an
// explicit Kind (null, bool, number, string, array, object) and safe
// accessors that return an absence signal instead of failing. Every
// traversal in the merger and validator packages is expressed as total
// pattern matches over Value.
//
// Object fields preserve insertion order, so decoding and re-encoding a
// document keeps its key order, and merged output is deterministic.
//
// # Quick Start
//
// Decode, inspect, and re-encode a document:
//
//	doc, err := document.DecodeJSON(data)
//	if err != nil {
//		log.Fatal(err)
//	}
//	title, ok := doc.Get("info").Get("title").AsString()
//	if !ok {
//		log.Fatal("document has no info.title")
//	}
//	out, _ := json.Marshal(doc) // uses ordered marshaling
//
// The zero Value has KindInvalid and represents absence: chained Get calls
// on missing keys are safe and simply propagate the invalid value.
package document
