// Package hcl implements the HCL-backed content loader: the format-specific
// side of the content.Loader interface.
//
// Content ships as .hcl definition files, one or more `hull` and `part`
// blocks per file, split across files and directories however the content
// author likes. The loader discovers every definition file under the
// configured paths, parses the files concurrently, and merges the results
// into a single content.Set. Record names must be unique across the whole
// content tree; a duplicate is a content bug and fails the load.
//
// Only static values are supported in definition files. There is no
// expression language and no cross-file references, which keeps a content
// file exactly as deterministic as the records it declares.
package hcl
