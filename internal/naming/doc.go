// Package naming provides shared service-name normalization utilities.
//
// Upstream service names arrive as arbitrary configuration strings and are
// used both as merge-conflict disambiguators and as reverse-proxy path
// segments, so they must be reduced to safe tokens first.
package naming
