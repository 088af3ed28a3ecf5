package main

import (
	"fmt"

	"github.com/antmicro/nisp/batch"
	"github.com/antmicro/nisp/devicemodel"
	"github.com/antmicro/nisp/export"
	"github.com/antmicro/nisp/intern"
	"github.com/antmicro/nisp/router"
	"github.com/antmicro/nisp/sitegraph"
	"github.com/antmicro/nisp/siteresult"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type routePairOptions struct {
	raw          bool
	noFormulaOpt bool
}

func newRoutePairCommand(logger *zap.Logger) *cobra.Command {
	var opts routePairOptions

	cmd := &cobra.Command{
		Use:   "route-pair <device> <tile-type> <source-pin> <sink-pin>",
		Short: "Route a single source-sink pin pair within one site type and print its formulas",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoutePair(logger, args[0], args[1], args[2], args[3], opts)
		},
	}

	flags := cmd.Flags()
	flags.BoolVar(&opts.raw, "raw", false, "use raw (uncompressed) device file")
	flags.BoolVar(&opts.noFormulaOpt, "no-formula-opt", false, "do not optimize logic formulas for constraints")

	return cmd
}

func runRoutePair(logger *zap.Logger, devicePath, tileType, sourceSpec, sinkSpec string, opts routePairOptions) error {
	dev, err := openDevice(devicePath, opts.raw)
	if err != nil {
		return err
	}

	idx, err := findSiteTypeByName(dev, tileType)
	if err != nil {
		return err
	}

	pool := intern.NewPool()
	g, err := sitegraph.Build(dev, idx, sitegraph.WithVirtualConstants(pool))
	if err != nil {
		return fmt.Errorf("nisp: building graph for %q: %w", tileType, err)
	}

	source, err := findPinByName(g, dev.Strings(), pool, sourceSpec)
	if err != nil {
		return err
	}
	sink, err := findPinByName(g, dev.Strings(), pool, sinkSpec)
	if err != nil {
		return err
	}

	type path []sitegraph.PinID
	paths := make(map[sitegraph.PinID]path)
	extend := func(f router.Frame[path]) path {
		p := append(append(path{}, f.Accumulator...), f.Node)
		paths[f.Node] = p
		return p
	}

	routerOpts := router.DefaultOptions()
	routerOpts.Optimize = !opts.noFormulaOpt

	results, err := router.Route(g, source, path{source}, extend, routerOpts)
	if err != nil {
		return fmt.Errorf("nisp: routing %q -> %q: %w", sourceSpec, sinkSpec, err)
	}

	result, ok := results[sink]
	if !ok || result.IsEmpty() {
		logger.Info("no routing relationship found", zap.String("source", sourceSpec), zap.String("sink", sinkSpec))
		return nil
	}

	site := siteresult.Assemble(g, dev.Strings(), pool, map[batch.Pair]router.NodeResult{
		{Source: source, Sink: sink}: result,
	})

	var hops []string
	for _, p := range paths[sink] {
		hops = append(hops, siteresult.FormatPinName(g, dev.Strings(), pool, p))
	}
	logger.Info("routed pair",
		zap.String("source", sourceSpec),
		zap.String("sink", sinkSpec),
		zap.Strings("path", hops),
	)

	raw, err := export.ToJSON(g, dev.Strings(), pool, site)
	if err != nil {
		return fmt.Errorf("nisp: formatting result: %w", err)
	}
	fmt.Println(string(raw))
	return nil
}

func findSiteTypeByName(dev devicemodel.DeviceView, name string) (int, error) {
	for i := 0; i < dev.SiteTypeCount(); i++ {
		if s, ok := dev.Strings().Lookup(dev.SiteType(i).Name()); ok && s == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("nisp: no tile type named %q", name)
}

func findPinByName(g *sitegraph.Graph, strings devicemodel.StringTable, pool *intern.Pool, name string) (sitegraph.PinID, error) {
	for p := sitegraph.PinID(0); int(p) < g.PinCount(); p++ {
		if siteresult.FormatPinName(g, strings, pool, p) == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("nisp: no pin named %q", name)
}
