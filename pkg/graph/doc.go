// Package graph provides the product co-purchase graph.
//
// A [Graph] maps each product identifier to the list of identifiers it is
// connected to. The relation is forced symmetric while building: when a
// record for A lists B as similar, B's list receives A and A's list receives
// B, regardless of whether the record for B ever mentions A.
//
// # Construction
//
// [Graph.AddSimilar] is the only mutating operation. For identifier I with
// related list R it:
//
//  1. appends I to the list of every r in R, creating missing entries
//  2. assigns R to I's entry if I has none yet
//  3. appends every r in R to I's entry
//
// Steps 2 and 3 together mean a freshly created entry holds R twice. Degrees
// are list lengths, duplicates included. Entries are never removed.
//
// # Concurrency
//
// A Graph is a plain map. Build it from one goroutine, then share it
// read-only.
package graph
