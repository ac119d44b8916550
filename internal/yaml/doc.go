// Package yaml provides the YAML implementation of config.Loader.
//
// A pipeline file is a single mapping. The reserved key DEFAULT holds the
// default section; every other key is a step, executed in the order it
// appears in the file:
//
//	DEFAULT:
//	  significance: 2
//	  logger: revenue
//	rows:
//	  func_left: csv_count
//	  kwargs_left: {path: data/orders.csv}
//	  func_right: constant
//	  kwargs_right: {value: 1200}
//	  severity_level: 4
//
// Documents are decoded through yaml.Node so that mapping order survives.
package yaml
