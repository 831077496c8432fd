// Package schwabkest turns a Charles Schwab year-end summary PDF into an
// Austrian capital-gains tax report. It is a single-pass, deterministic
// pipeline: identical input text always yields identical records and summary.
//
// The core functionalities include:
//   - Statement Extraction: locating stock-sale rows in extracted page text
//     through a versioned grammar, recovering typed records from the
//     multi-line context that text extraction produces.
//   - Exchange Rate Resolution: a sorted, bundled ECB table mapping dates to
//     USD/EUR rates, with deterministic nearest-date fallback.
//   - Gain Calculation: pricing every sale in both currencies under the
//     moving-average cost method, with decimal arithmetic throughout.
//   - Tax Aggregation: the flat 27,5% KESt over the aggregate gain, floored
//     at zero for loss years.
//   - Reporting: spreadsheet, JSON, and markdown renditions of the result.
//
// This package serves as the foundational logic for the `kest` command-line
// tool.
package schwabkest
