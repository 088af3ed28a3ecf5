// Package devicemodel declares the read-only contracts the site graph
// builder needs from a loaded device description. It never parses bytes
// itself — devicefile (or a test fixture) provides the concrete
// implementation, and the site graph builder depends only on these
// interfaces, so neither side needs to know the other's representation.
package devicemodel
