// Package jsonl builds in-memory data frames from JSON Lines input. This
// source uses https://github.com/tidwall/gjson to process data, and supports
// column names formatted as gjson paths.
package jsonl
