// Package hcl provides the HCL implementation of config.Loader.
//
// A pipeline file holds at most one `defaults` block and any number of
// `step "<name>"` blocks:
//
//	defaults {
//	  significance     = 2
//	  check_name       = "Revenue"
//	  stop_run_on_fail = true
//	}
//
//	step "rows" {
//	  func_left      = "csv_count"
//	  kwargs_left    = { path = "data/orders.csv" }
//	  func_right     = "constant"
//	  kwargs_right   = { value = 1200 }
//	  severity_level = 4
//	}
//
// Attribute expressions are evaluated without variables or functions and
// converted from cty values into plain Go values.
package hcl
