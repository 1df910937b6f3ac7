// Package javadts converts Javadoc class pages into TypeScript declarations.
// It extracts the class identity, inheritance list and member summary tables
// from a page, maps every Java type to a TypeScript type, and emits
// interface declarations suitable for stubbing bindings.
//
// This package contains domain types, interfaces and the pure conversion
// core following Ben Johnson's Standard Package Layout. Implementations
// that depend on third-party libraries live in subdirectories named after
// their primary dependency (e.g., goquery/, sqlite/, rod/).
package javadts
