// Package api implements the HTTP request-handling layer: request
// decoding and validation, delegation to the persistence port, and the
// normalization of every outcome into the fixed two-shape response
// envelope with the matching status code.
package api
