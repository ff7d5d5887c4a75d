// Package pkg provides the libraries behind copurchase.
//
// # Overview
//
// copurchase reads a product metadata dump in which every product lists the
// products most often bought together with it, and answers questions about
// categories: how connected a category's products are, and how often they
// are bought alongside products of the same or another category.
//
// # Data Flow
//
//	metadata dump (.txt / .gz)
//	         ↓
//	    [source]   ordered lines
//	         ↓
//	    [record]   one Record per blank-line-terminated block
//	         ↓
//	    [dataset]  symmetric [graph] + metadata [catalog], then reconciled
//	         ↓
//	    [stats]    per-category aggregates
//	         ↓
//	    [report]   text, json, dot or svg
//
// [pipeline] runs these stages; [io] saves and restores a dataset as
// node-link JSON so the dump need not be re-parsed.
//
// # Supporting Packages
//
//   - [config]: TOML settings file
//   - [errors]: structured error codes
//   - [observability]: optional instrumentation hooks
//   - [buildinfo]: version information set at build time
package pkg
