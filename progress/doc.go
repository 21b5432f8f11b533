// Package progress keeps step counters for a single task run. The tracker
// travels in the context so every step can report without a global registry.
package progress
