// Package devicefile loads a devicemodel.DeviceView from an on-disk device
// description, either a raw (uncompressed, memory-mappable) binary or a
// gzip-compressed stream of the same binary layout.
//
// The on-disk layout is this port's own: the real FPGA-interchange
// capnproto schema this tool originally consumed is out of scope (see
// spec.md §1, "loading the device-description binary... the core consumes
// a read-only view"). What devicefile guarantees is the devicemodel
// contract, not wire compatibility with the original tool's device files.
package devicefile
