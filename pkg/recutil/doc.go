// Package recutil defines the Record data model that the logging pipeline
// operates on and provides helpers for reading and functionally updating
// nested values.
//
// A Record is an arbitrarily nested structure of string-keyed mappings,
// slices and scalars, the shape that comes out of decoding JSON into
// map[string]any. No schema is assumed and any key may be absent. All
// helpers treat missing data as the default path and never return errors.
package recutil
