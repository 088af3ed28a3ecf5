// Package siteresult shapes router output into the form a placer consumes:
// formatted pin-pair names, a term-count sort on each formula's cubes, and
// the derived out-of-site source/sink index used to stitch routes across
// site boundaries.
//
// Nothing here performs routing; it is a pure transformation over the
// map[batch.Pair]router.NodeResult values batch.RouteSite produces.
package siteresult
