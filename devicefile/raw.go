package devicefile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/edsrzf/mmap-go"
)

// OpenRaw loads a Device from an uncompressed device file at path via a
// read-only memory mapping, matching the "zero-copy view built... from a
// raw (uncompressed) memory-mappable binary" contract. The mapping is
// unmapped once decoding completes; Device itself holds no reference to
// the mapping.
func OpenRaw(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("devicefile: open %s: %w", path, err)
	}
	defer f.Close()

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("devicefile: mmap %s: %w", path, err)
	}
	defer m.Unmap()

	dev, err := decodeDevice(bytes.NewReader(m))
	if err != nil {
		return nil, fmt.Errorf("devicefile: decode %s: %w", path, err)
	}
	return dev, nil
}

// EncodeRaw writes dev to path as an uncompressed device file, the
// counterpart OpenRaw memory-maps back.
func EncodeRaw(path string, dev *Device) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("devicefile: create %s: %w", path, err)
	}
	defer f.Close()

	if err := EncodeDevice(f, dev); err != nil {
		return fmt.Errorf("devicefile: encode %s: %w", path, err)
	}
	return nil
}
