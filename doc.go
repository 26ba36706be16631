// Package silver loads and queries the silver market datasets behind the
// silver dashboard: state-wise purchase volumes and historical monthly prices.
//
// The core functionalities include:
//   - Dataset loading: decoding the two CSV files into immutable collections,
//     deriving a calendar date for each monthly price and dropping rows that
//     cannot be parsed.
//   - Dataset caching: an explicit load-or-get cache keyed by path with an
//     injectable invalidation policy.
//   - Queries: price bands, month filters and a stable top-N ranking.
//   - Price calculator: weight and unit conversion priced in INR or USD.
//
// This package is the foundational logic for the `silver` command-line tool.
package silver
