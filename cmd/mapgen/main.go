package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"terrapath/internal/config"
	"terrapath/internal/mapgen"
)

func main() {
	cfgPath := flag.String("config", "", "config file (YAML, merged over defaults)")
	out := flag.String("out", "map.json", "output map file")
	csvOut := flag.String("csv", "", "also write cell records as CSV")
	cols := flag.Int("cols", 0, "grid columns (default from config world size)")
	rows := flag.Int("rows", 0, "grid rows (default from config world size)")
	seed := flag.Int64("seed", 0, "random seed (0 = from config, then time)")
	water := flag.Float64("water", -1, "water ratio 0..1 (default from config)")
	regions := flag.Int("regions", -1, "elevated region count (default from config)")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	opts := cfg.Generator
	if *seed != 0 {
		opts.Seed = *seed
	}
	if *water >= 0 {
		opts.WaterRatio = *water
	}
	if *regions >= 0 {
		opts.ElevatedRegionCount = *regions
	}

	gridCols, gridRows := *cols, *rows
	if gridCols <= 0 {
		gridCols = int(cfg.World.Width / cfg.World.CellSize)
	}
	if gridRows <= 0 {
		gridRows = int(cfg.World.Height / cfg.World.CellSize)
	}

	slog.Info("generating terrain",
		"cols", gridCols, "rows", gridRows,
		"seed", opts.Seed, "water_ratio", opts.WaterRatio,
		"elevated_regions", opts.ElevatedRegionCount)

	grid := mapgen.Generate(gridCols, gridRows, opts)

	comp := grid.Composition()
	slog.Info("terrain composition",
		"water", fmt.Sprintf("%.1f%%", comp.Water*100),
		"flat", fmt.Sprintf("%.1f%%", comp.Flat*100),
		"elevated1", fmt.Sprintf("%.1f%%", comp.Elevated1*100),
		"elevated2", fmt.Sprintf("%.1f%%", comp.Elevated2*100),
		"ramp", fmt.Sprintf("%.1f%%", comp.Ramp*100))

	if err := grid.SaveFile(*out); err != nil {
		slog.Error("failed to write map", "path", *out, "error", err)
		os.Exit(1)
	}
	slog.Info("map written", "path", *out)

	if *csvOut != "" {
		f, err := os.Create(*csvOut)
		if err != nil {
			slog.Error("failed to create csv", "path", *csvOut, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		if err := grid.WriteCSV(f); err != nil {
			slog.Error("failed to write csv", "path", *csvOut, "error", err)
			os.Exit(1)
		}
		slog.Info("csv written", "path", *csvOut)
	}
}
