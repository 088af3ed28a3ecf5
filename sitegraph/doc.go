// Package sitegraph builds the intra-site routing graph the router walks:
// a dense node array of pin-instances plus an N×N adjacency matrix, derived
// from a site type's BELs, BEL pins, site wires, and site pseudo-pips.
//
// Construction is a pure function of a devicemodel.DeviceView and a site
// type index; the resulting Graph is immutable and safe to share, unmutated,
// across concurrent router workers. Virtual-constant augmentation
// (AddVirtualConstants) is the one supported post-construction mutation,
// intended to run once, before any router worker starts reading the graph.
package sitegraph
