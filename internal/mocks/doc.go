// Package mocks provides hand-rolled test doubles for the store
// interfaces. Each mock records its calls and lets tests override behavior
// per method through function fields.
package mocks
