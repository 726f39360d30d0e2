// Package configs manages Envie Host settings and configuration files.
//
// Two kinds of state live here:
//
//   - HostSettings: paths resolved once at startup from platform conventions.
//     The storage root (vault files, salt, audit log) defaults to
//     $XDG_DATA_HOME/envie, the configuration directory to the user config
//     dir. Resolution failure is fatal; no operation can run without a
//     storage root.
//
//   - HostConfig: the persisted host.toml with the installation UUID, an
//     optional storage-dir override, and the window chrome defaults handed
//     to the webview shell.
//
// The vault locator itself never reads these globals; commands resolve the
// storage root here and pass it down explicitly.
package configs
