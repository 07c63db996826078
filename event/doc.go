// Package event defines the closed taxonomy of form lifecycle events.
//
// Every binding names exactly one Kind. A Kind is either global (fires
// at the form level, no target component) or component-scoped
// (requires one or more named target components). The classification
// is fixed: it is part of the taxonomy, never derived from how a
// binding was declared.
//
// Kinds also carries the fixed order the dispatcher processes kinds
// in, grouped by family so each family's component resolution runs as
// one batch.
package event
