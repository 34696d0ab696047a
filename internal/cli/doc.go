// Package cli implements the interactive wellkeeper terminal client: a small
// REPL over the water, beverage, focus, settings, reminder and backup
// services. Handlers call a service, re-read what they need and print it;
// nothing is cached between commands.
package cli
