// Package domain holds the core data model of the assessment: the
// question catalog node types, visibility conditions, and the per-session
// state. It has no dependencies on adapters or engines; everything else
// depends on it.
package domain
