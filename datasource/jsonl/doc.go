// Package jsonl parses JSON Lines rule definitions. This parser uses
// https://github.com/tidwall/gjson to process data, treating each line as one
// rule definition with a required name and an optional properties object.
package jsonl
