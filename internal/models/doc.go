// Package models defines the records persisted by the wellkeeper stores and
// the view models derived from them.
package models
