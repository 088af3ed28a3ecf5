package main

import (
	"fmt"

	"github.com/antmicro/nisp/batch"
	"github.com/antmicro/nisp/devicefile"
	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/export"
	"github.com/antmicro/nisp/intern"
	"github.com/antmicro/nisp/router"
	"github.com/antmicro/nisp/sitegraph"
	"github.com/antmicro/nisp/siteresult"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type preprocessOptions struct {
	raw          bool
	tileTypes    []string
	threads      int
	dot          []string
	dotPrefix    string
	json         []string
	jsonPrefix   string
	noFormulaOpt bool
}

func newPreprocessCommand(logger *zap.Logger) *cobra.Command {
	var opts preprocessOptions

	cmd := &cobra.Command{
		Use:   "preprocess <device> [bba]",
		Short: "Route every site type in a device file and export the resulting caches",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				logger.Info("bba output is out of scope for this port; ignoring", zap.String("bba", args[1]))
			}
			return runPreprocess(logger, args[0], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.raw, "raw", false, "use raw (uncompressed) device file")
	flags.StringSliceVar(&opts.tileTypes, "tile-types", nil, "tile types to be routed (default: all)")
	flags.IntVar(&opts.threads, "threads", 1, "number of goroutines used during preprocessing")
	flags.StringSliceVar(&opts.dot, "dot", nil, "tile types to export as graphviz .dot graphs (':all' for every tile type)")
	flags.StringVar(&opts.dotPrefix, "dot-prefix", "", "directory for saving .dot files")
	flags.StringSliceVar(&opts.json, "json", nil, "tile types to export their routing cache as JSON (':all' for every tile type)")
	flags.StringVar(&opts.jsonPrefix, "json-prefix", "", "directory for saving .json files")
	flags.BoolVar(&opts.noFormulaOpt, "no-formula-opt", false, "do not optimize logic formulas for constraints")

	return cmd
}

func runPreprocess(logger *zap.Logger, devicePath string, opts preprocessOptions) error {
	if opts.threads == 0 {
		return fmt.Errorf("nisp: --threads must not be 0")
	}

	dev, err := openDevice(devicePath, opts.raw)
	if err != nil {
		return err
	}

	dotSelector := export.NewSelector(opts.dot, opts.dotPrefix, ".dot")
	jsonSelector := export.NewSelector(opts.json, opts.jsonPrefix, ".json")

	tileTypes := selectedTileTypes(dev, opts.tileTypes)

	routerOpts := router.DefaultOptions()
	routerOpts.Optimize = !opts.noFormulaOpt

	for _, idx := range tileTypes {
		pool := intern.NewPool()
		siteType := dev.SiteType(idx)
		name := resolveName(dev.Strings(), siteType.Name())

		logger.Info("processing tile type", zap.String("name", name))

		g, err := sitegraph.Build(dev, idx, sitegraph.WithVirtualConstants(pool))
		if err != nil {
			return fmt.Errorf("nisp: building graph for %q: %w", name, err)
		}

		if err := dotSelector.Export(name, func() (string, error) {
			return export.RenderDot(g, dev.Strings(), pool, name)
		}); err != nil {
			return fmt.Errorf("nisp: exporting dot for %q: %w", name, err)
		}

		pairs, err := batch.RouteSite(g, batch.Options{Workers: opts.threads, Router: routerOpts})
		if err != nil {
			return fmt.Errorf("nisp: routing %q: %w", name, err)
		}
		site := siteresult.Assemble(g, dev.Strings(), pool, pairs)
		logger.Info("routed tile type", zap.String("name", name), zap.Int("pairs", len(pairs)))

		if err := jsonSelector.Export(name, func() (string, error) {
			raw, err := export.ToJSON(g, dev.Strings(), pool, site)
			return string(raw), err
		}); err != nil {
			return fmt.Errorf("nisp: exporting JSON for %q: %w", name, err)
		}
	}
	return nil
}

func openDevice(path string, raw bool) (*devicefile.Device, error) {
	if raw {
		return devicefile.OpenRaw(path)
	}
	return devicefile.OpenGzip(path)
}

func resolveName(strings devicemodel.StringTable, idx uint32) string {
	name, ok := strings.Lookup(idx)
	if !ok {
		return fmt.Sprintf("<unknown:%d>", idx)
	}
	return name
}

// selectedTileTypes returns every site type index in dev whose resolved
// name appears in accepted, or every index when accepted is empty.
func selectedTileTypes(dev *devicefile.Device, accepted []string) []int {
	if len(accepted) == 0 {
		indices := make([]int, dev.SiteTypeCount())
		for i := range indices {
			indices[i] = i
		}
		return indices
	}

	allow := make(map[string]bool, len(accepted))
	for _, name := range accepted {
		allow[name] = true
	}

	var indices []int
	for i := 0; i < dev.SiteTypeCount(); i++ {
		if allow[resolveName(dev.Strings(), dev.SiteType(i).Name())] {
			indices = append(indices, i)
		}
	}
	return indices
}
