package sitegraph_test

import (
	"testing"

	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/sitegraph"
	"github.com/stretchr/testify/require"
)

func TestGraph_SuccessorsAndDrivers(t *testing.T) {
	t.Parallel()

	dev := deviceFixture{
		strings: strs("SITE", "M", "M.q", "X", "X.o", "S", "S.i"),
		siteTypes: []siteTypeFixture{
			{
				name: 0,
				bels: []devicemodel.BEL{
					{Name: 1, PinIndices: []int{0}},
					{Name: 3, PinIndices: []int{1}},
					{Name: 5, PinIndices: []int{2}},
				},
				pins: []devicemodel.BELPin{
					{Name: 2, BEL: 0, Direction: devicemodel.Output},
					{Name: 4, BEL: 1, Direction: devicemodel.Output},
					{Name: 6, BEL: 2, Direction: devicemodel.Input},
				},
				wires: []devicemodel.SiteWire{{PinIndices: []int{0, 1, 2}}},
			},
		},
	}

	g, err := sitegraph.Build(dev, 0)
	require.NoError(t, err)

	sink := sitegraph.PinID(2)
	require.ElementsMatch(t, []sitegraph.PinID{sink}, g.Successors(0))
	require.ElementsMatch(t, []sitegraph.PinID{sink}, g.Successors(1))
	require.Empty(t, g.Successors(sink))

	require.ElementsMatch(t, []sitegraph.PinID{0, 1}, g.Drivers(sink))
	require.Empty(t, g.Drivers(0))
}

func TestGraph_NameAndBELIndex(t *testing.T) {
	t.Parallel()

	dev := deviceFixture{
		strings: strs("SITE", "A", "A.o", "A.i"),
		siteTypes: []siteTypeFixture{
			{
				name: 0,
				bels: []devicemodel.BEL{
					{Name: 1, PinIndices: []int{0, 1}},
				},
				pins: []devicemodel.BELPin{
					{Name: 2, BEL: 0, Direction: devicemodel.Output},
					{Name: 2, BEL: 0, Direction: devicemodel.Input},
				},
			},
		},
	}

	g, err := sitegraph.Build(dev, 0)
	require.NoError(t, err)

	require.Equal(t, 0, g.BELIndex(0))
	require.Equal(t, 0, g.BELIndex(1))
	require.Equal(t, "A", g.BELName(0).Resolve(dev.Strings(), nil))
	require.Equal(t, devicemodel.Output, g.Direction(0))
	require.Equal(t, devicemodel.Input, g.Direction(1))
}
