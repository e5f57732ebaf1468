// Package config loads a training recipe from YAML and wires it into
// a ready-to-run provider.Provider: which files to stream, in what
// order, how to decode their targets, which augmentors to chain, and
// how to pack the resulting batches.
//
// A recipe separates declaration from wiring the same way the
// teacher's own configuration package does: Load parses and
// validates, filling in defaults for anything left unset; Build
// performs the actual construction, so a caller can inspect or modify
// a parsed recipe before committing to it.
package config
