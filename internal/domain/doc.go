// Package domain defines the core business entities of the users API
// and the validation rules they must satisfy before persistence.
package domain
