// Package config is the external collaborator that turns CLI flags
// (spf13/pflag) overlaid on environment variables overlaid on built-in
// defaults into a small struct of recognized options. Parse failures and
// overflow are non-fatal — the default is kept and the failure is reported
// to the caller rather than aborting.
package config
