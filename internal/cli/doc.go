// Package cli wires the netgraph commands together.
//
// The root command starts the dashboard directly; "init" writes a default
// config file and "version" prints build information. Flag values override
// the config file only when set explicitly, so `netgraph -i 2` works the same
// with or without a config file present.
package cli
