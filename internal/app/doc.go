// Package app contains the core application logic: constructing the content
// stores, kicking off the asynchronous definition-file parse, and reporting
// or verifying the resulting checksums. It is decoupled from any specific
// entrypoint like a CLI or server.
package app
