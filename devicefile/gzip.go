package devicefile

import (
	"fmt"
	"os"

	"github.com/klauspost/compress/gzip"
)

// OpenGzip loads a Device from a gzip-compressed device file at path,
// matching the "or from a gzip-compressed stream" half of the device
// loading contract.
func OpenGzip(path string) (*Device, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("devicefile: open %s: %w", path, err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("devicefile: gzip header %s: %w", path, err)
	}
	defer gz.Close()

	dev, err := decodeDevice(gz)
	if err != nil {
		return nil, fmt.Errorf("devicefile: decode %s: %w", path, err)
	}
	return dev, nil
}

// EncodeGzip writes dev to path as a gzip-compressed device file, the
// counterpart OpenGzip reads. Used by tests and by any future device-file
// authoring tool; preprocess/route-pair only ever read device files.
func EncodeGzip(path string, dev *Device) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("devicefile: create %s: %w", path, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	if err := EncodeDevice(gz, dev); err != nil {
		gz.Close()
		return fmt.Errorf("devicefile: encode %s: %w", path, err)
	}
	return gz.Close()
}
