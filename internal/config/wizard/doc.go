// Package wizard implements the interactive setup flow for supado.
//
// The wizard collects operator credentials (prompted without terminal
// echo) and deployment parameters, and turns the answers into a
// config.Config. Selection fields are constrained to enumerated option
// tables, so invalid choices are re-prompted in place rather than
// rejected after the fact.
package wizard
