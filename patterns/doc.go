// Package patterns holds the fifteen design-pattern demonstrations behind the
// interactive menu.
//
// # Reading Guide
//
// Start with registry.go: it lists every demo in menu order and is the only
// coupling point between this package and the CLI. Each pattern then lives in
// its own file (builder.go, factory.go, ...) containing the toy types for the
// scenario plus a Demo* function that narrates the walkthrough.
//
// Demos write all narration to an io.Writer so tests can capture it; none of
// them share state with another demo. The one deliberate exception is
// singleton.go, whose process-wide AuditLog is the exhibit itself.
package patterns
