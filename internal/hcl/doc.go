// Package hcl provides the concrete HCL implementation of the configuration
// loading interface defined in the `config` package. It is responsible for
// file parsing, expression evaluation and HCL-to-model translation.
//
// A configuration file declares one block per puzzle:
//
//	puzzle "day7" {
//	  input        = "input/day7"
//	  target       = defaults.target
//	  workers      = 4
//	  check_cycles = true
//	}
//
// Expressions are evaluated against a fixed context exposing the `defaults`
// object and a few string functions (lower, upper, trimspace, format).
package hcl
