// Package export writes a site's routing results to disk in the two
// formats the command-line tool supports: Graphviz .dot graphs of the raw
// site-routing graph, and JSON dumps of the shaped per-pin-pair routing
// formulas. Both formats are gated by a shared Selector so a caller can
// restrict output to a named allow-list of site types or opt every site
// type in at once.
package export
