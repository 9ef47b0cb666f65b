// Package config loads and exports linker options and store metadata
// from plain-text "NAME = VALUE" files: numbers, booleans, single-quoted
// strings, and bracketed numeric vectors, with '#' or '%' line comments.
//
// The parser is a hand-written scanner that uses text/scanner's number
// tokenizer for scalar numbers (never a general eval of the file's
// contents), per the restricted-grammar requirement: arbitrary code in
// an options file must never run. Unknown keys are silently ignored for
// forward compatibility. LoadLinkerOptions type-checks recognized keys
// against LinkerOptions' field shapes and fails with ErrWrongValueType;
// LoadMetadata skips a reserved metadata key whose value has the wrong
// shape, without an error.
package config
