// Package settle computes pairwise debt settlements from a list of shared
// expenses among a fixed roster of people. It is designed to be local-first
// and auditable: the expense book is a human-readable JSONL file, and every
// computation is a pure function over it.
//
// The core functionalities include:
//   - Book Management: Recording shared expenses and the participant roster
//     in an append-only, version-controllable record.
//   - Settlement Engine: A stateless pipeline converting expenses into
//     per-person net balances, and balances into a short list of directed
//     payments via greedy debt netting.
//   - Exact Arithmetic: All amounts are handled in exact decimal minor units,
//     so the sum of all balances is exactly zero, never "close to zero".
//   - Data Persistence: Encoding and decoding the book to and from JSONL,
//     and importing/exporting spreadsheet rows.
//
// This package serves as the foundational logic for the `scs` command-line
// tool.
package settle
