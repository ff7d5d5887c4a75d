// Package io provides JSON import and export for co-purchase datasets.
//
// # Overview
//
// A dataset is a graph plus its metadata catalog (see [dataset.Pair]). This
// package serializes both halves into one node-link document so a parsed
// dataset can be cached, inspected with external tools, or fed back into
// the analyzer without re-scanning the raw metadata dump.
//
// # JSON Format
//
//	{
//	  "nodes": [
//	    {"id": "A", "title": "Patterns", "category": "Book", "in_graph": true, "in_catalog": true},
//	    {"id": "B", "in_graph": true}
//	  ],
//	  "edges": [
//	    {"from": "A", "to": "B"},
//	    {"from": "B", "to": "A"}
//	  ]
//	}
//
// Nodes are sorted by id. in_graph marks identifiers with an adjacency entry
// (possibly empty); in_catalog marks identifiers with metadata. Every
// adjacency-list entry becomes one edge, in list order, so duplicates in the
// lists survive a round trip.
//
// # Import
//
// Use [ImportJSON] to read a dataset from a file path, or [ReadJSON] to read
// from any io.Reader. Edges must reference a node with in_graph set.
//
// # Export
//
// Use [ExportJSON] to write a dataset to a file, or [WriteJSON] to write to
// any io.Writer.
//
// [dataset.Pair]: github.com/matzehuels/copurchase/pkg/dataset.Pair
package io
