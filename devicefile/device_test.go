package devicefile_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/antmicro/nisp/devicefile"
	"github.com/antmicro/nisp/devicemodel"
	"github.com/stretchr/testify/require"
)

type siteTypeFixture struct {
	name       uint32
	bels       []devicemodel.BEL
	pins       []devicemodel.BELPin
	wires      []devicemodel.SiteWire
	pseudoPips []devicemodel.SitePseudoPip
}

func (f siteTypeFixture) Name() uint32                            { return f.name }
func (f siteTypeFixture) BELs() []devicemodel.BEL                 { return f.bels }
func (f siteTypeFixture) BELPins() []devicemodel.BELPin           { return f.pins }
func (f siteTypeFixture) Wires() []devicemodel.SiteWire           { return f.wires }
func (f siteTypeFixture) PseudoPips() []devicemodel.SitePseudoPip { return f.pseudoPips }

func sampleDevice() *devicefile.Device {
	strs := []string{"SLICEL", "A", "A.o", "B", "B.i"}
	st := siteTypeFixture{
		name: 0,
		bels: []devicemodel.BEL{
			{Name: 1, Category: devicemodel.LogicOrRouting, PinIndices: []int{0}},
			{Name: 3, Category: devicemodel.LogicOrRouting, PinIndices: []int{1}},
		},
		pins: []devicemodel.BELPin{
			{Name: 2, BEL: 0, Direction: devicemodel.Output},
			{Name: 4, BEL: 1, Direction: devicemodel.Input},
		},
		wires: []devicemodel.SiteWire{{PinIndices: []int{0, 1}}},
	}
	return devicefile.NewDevice(strs, []devicemodel.SiteTypeView{st}, nil)
}

func requireSameShape(t *testing.T, want *devicefile.Device, got devicemodel.DeviceView) {
	t.Helper()

	require.Equal(t, want.SiteTypeCount(), got.SiteTypeCount())
	for i := 0; i < want.SiteTypeCount(); i++ {
		ws, gs := want.SiteType(i), got.SiteType(i)
		require.Equal(t, ws.Name(), gs.Name())
		require.Equal(t, ws.BELs(), gs.BELs())
		require.Equal(t, ws.BELPins(), gs.BELPins())
		require.Equal(t, ws.Wires(), gs.Wires())
		require.Equal(t, ws.PseudoPips(), gs.PseudoPips())
	}

	for id := uint32(0); ; id++ {
		ws, wok := want.Strings().Lookup(id)
		gs, gok := got.Strings().Lookup(id)
		require.Equal(t, wok, gok)
		if !wok {
			break
		}
		require.Equal(t, ws, gs)
	}
}

func TestDevicefile_RawRoundTrip(t *testing.T) {
	t.Parallel()

	dev := sampleDevice()
	path := filepath.Join(t.TempDir(), "device.bin")
	require.NoError(t, devicefile.EncodeRaw(path, dev))

	got, err := devicefile.OpenRaw(path)
	require.NoError(t, err)
	requireSameShape(t, dev, got)
}

func TestDevicefile_GzipRoundTrip(t *testing.T) {
	t.Parallel()

	dev := sampleDevice()
	path := filepath.Join(t.TempDir(), "device.bin.gz")
	require.NoError(t, devicefile.EncodeGzip(path, dev))

	got, err := devicefile.OpenGzip(path)
	require.NoError(t, err)
	requireSameShape(t, dev, got)
}

func TestDevicefile_OpenRawMissingFile(t *testing.T) {
	t.Parallel()

	_, err := devicefile.OpenRaw(filepath.Join(t.TempDir(), "missing.bin"))
	require.Error(t, err)
}

func TestDevicefile_OpenRawBadMagic(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "garbage.bin")
	require.NoError(t, os.WriteFile(path, []byte("not a device file at all, padding"), 0o644))

	_, err := devicefile.OpenRaw(path)
	require.ErrorIs(t, err, devicefile.ErrBadMagic)
}
