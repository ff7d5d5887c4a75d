// Package record parses the blank-line-delimited co-purchase metadata format
// into [Record] values.
//
// # Format
//
// Each product is a block of lines terminated by a blank line. Four line
// prefixes are recognized (case-sensitive, leading spaces included):
//
//	ASIN: 0827229534
//	  title: Patterns of Preaching: A Sermon Sampler
//	  group: Book
//	  similar: 5  0804215715  156101074X  0687023955  0687074231  082721619X
//
// The first token after "similar:" is a count; it is discarded and never
// compared with the number of identifiers that follow. Every other line
// (Id, salesrank, categories, reviews) is ignored.
//
// # Record Boundaries
//
// A blank line closes the current record. A record is emitted only if an
// identifier has been seen; a trailing block with no closing blank line is
// never emitted.
//
// Identifier, title and category carry over from one record to the next
// until a marker line overwrites them, so a product without a "group:" line
// inherits the previous product's category. The related list is cleared
// after every emitted record. [Options.ResetOnClose] clears every field
// instead.
//
// The parser never fails on malformed input. Read and decode failures come
// from the line source and are passed through unchanged.
package record
