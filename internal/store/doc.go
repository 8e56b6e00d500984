// Package store defines the persistence interfaces consumed by the API
// layer, along with the sentinel errors that classify persistence
// failures. Concrete implementations live under internal/platform.
package store
