// Package cxrules defines the CXR-series issue codes reported while loading,
// materializing and indexing cursor trees.
//
// Every code has a stable numeric and textual identity, so issues can be
// filtered and compared across runs and output formats.
//
// # Structure
//
// Codes follow the format “CXR<NNN>: <Name>” and are grouped by area:
//
//	000–009  Handle lifetime and validity
//	010–029  Object model and registry
//	030–039  Native parser output
//	040–049  Source span index
//
// Example:
//
//	cxrules.CXR010KindMismatch.String()      → "CXR010: KindMismatch"
//	cxrules.CXR010KindMismatch.Description() → "Wrapper discriminants disagree with its handle."
//
// # Notes
//
//   - Codes are stable; never renumber existing ones.
//   - New codes take the next free slot of their area.
package cxrules
