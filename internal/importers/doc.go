// Package importers implements the bulk CSV import pipeline shared by every
// importable entity kind.
//
// # Architecture
//
//	CSV text → Tokenize → []RawRow → Normalize<Kind> → <Kind>Row → Resolver → Store.Create<Kind>
//
// Tokenize is entity-agnostic. Each kind has a declarative FieldTable that
// maps canonical fields to ordered candidate header keys, so the system
// schema and the conference-tool export dialect are handled by the same
// code path. Resolver turns group and speaker names into ids for a single
// call, creating groups on first reference.
//
// Importer processes rows sequentially and never aborts on a row-level
// problem: missing fields, duplicates and backend failures each add one
// message to Result.Errors and the next row is processed.
//
// # Adding a New Kind
//
//  1. Add the kind to entities.ImportKinds
//  2. Define a FieldTable and a Normalize function in fields.go/normalize.go
//  3. Add a Store interface and an import<Kind> runner in kinds.go
//  4. Add a template in templates.go
package importers
