// Package domain defines the key and identity models shared across the app.
// It contains plain types and contracts (interfaces) only; the types and
// interfaces subpackages hold the definitions and this package re-exports them.
package domain
