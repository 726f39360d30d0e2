// Package workflows implements the host's operations as testable units
// behind the CLI commands.
//
// Each workflow takes a context, an explicit storage root, and an Options
// struct, and returns a Result struct describing what happened. Commands own
// all terminal output; workflows never print.
//
// The contract surfaced to the front-end maps onto two of them:
//
//	check_vault_exists -> Check (never fails)
//	nuke_vault         -> Nuke  (surfaces I/O errors)
//
// Bootstrap covers the shell's startup duties: storage root creation, engine
// salt provisioning, and installation identity.
package workflows
