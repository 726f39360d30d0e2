// Package scan discovers local config files for the Envie front-end.
//
// The front-end offers to import existing configuration when a project is
// opened; this package supplies the candidates: .env variants and
// config.local.yaml files, found either by walking a directory tree or by
// expanding user-supplied glob patterns (with ** support).
//
// node_modules and .git directories are always skipped.
package scan
