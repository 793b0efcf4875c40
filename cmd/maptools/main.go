package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"terrapath/internal/config"
	"terrapath/internal/terrain"
	"terrapath/pkg/terrapath"
)

func usage() {
	fmt.Fprintln(os.Stderr, `Usage:
  maptools info <map.json>                 print dimensions, composition and region stats
  maptools csv <map.json> <out.csv>        export a map to CSV cell records
  maptools fromcsv <in.csv> <map.json>     rebuild a map from CSV cell records
  maptools check <map.json> <x1,y1> <x2,y2>  probe reachability between two grid cells`)
	os.Exit(2)
}

func main() {
	flag.Usage = usage
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	args := flag.Args()
	if len(args) < 2 {
		usage()
	}

	var err error
	switch args[0] {
	case "info":
		err = runInfo(args[1])
	case "csv":
		if len(args) != 3 {
			usage()
		}
		err = runCSV(args[1], args[2])
	case "fromcsv":
		if len(args) != 3 {
			usage()
		}
		err = runFromCSV(args[1], args[2])
	case "check":
		if len(args) != 4 {
			usage()
		}
		err = runCheck(args[1], args[2], args[3])
	default:
		usage()
	}
	if err != nil {
		slog.Error("command failed", "command", args[0], "error", err)
		os.Exit(1)
	}
}

func runInfo(path string) error {
	grid, err := terrain.LoadFile(path)
	if err != nil {
		return err
	}

	comp := grid.Composition()
	regions := grid.WalkableRegions()

	fmt.Printf("map:        %s\n", path)
	fmt.Printf("size:       %dx%d\n", grid.Width(), grid.Height())
	fmt.Printf("water:      %.1f%%\n", comp.Water*100)
	fmt.Printf("flat:       %.1f%%\n", comp.Flat*100)
	fmt.Printf("elevated1:  %.1f%%\n", comp.Elevated1*100)
	fmt.Printf("elevated2:  %.1f%%\n", comp.Elevated2*100)
	fmt.Printf("ramp:       %.1f%%\n", comp.Ramp*100)
	fmt.Printf("regions:    %d (largest %d, mean %.1f, stddev %.1f)\n",
		regions.Count, regions.Largest, regions.Mean, regions.StdDev)
	return nil
}

func runCSV(mapPath, csvPath string) error {
	grid, err := terrain.LoadFile(mapPath)
	if err != nil {
		return err
	}
	f, err := os.Create(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := grid.WriteCSV(f); err != nil {
		return err
	}
	slog.Info("csv written", "path", csvPath, "cells", grid.Width()*grid.Height())
	return nil
}

func runFromCSV(csvPath, mapPath string) error {
	f, err := os.Open(csvPath)
	if err != nil {
		return err
	}
	defer f.Close()
	grid, err := terrain.ReadCSV(f)
	if err != nil {
		return err
	}
	if err := grid.SaveFile(mapPath); err != nil {
		return err
	}
	slog.Info("map written", "path", mapPath, "size",
		fmt.Sprintf("%dx%d", grid.Width(), grid.Height()))
	return nil
}

// runCheck loads a map into a path engine with cell size 1 and probes
// whether a route exists between two cells given as "col,row".
func runCheck(path, from, to string) error {
	grid, err := terrain.LoadFile(path)
	if err != nil {
		return err
	}

	fc, fr, err := parseCell(from)
	if err != nil {
		return err
	}
	tc, tr, err := parseCell(to)
	if err != nil {
		return err
	}

	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	engine := terrapath.NewEngine(&terrapath.Config{
		WorldWidth:   float64(grid.Width()),
		WorldHeight:  float64(grid.Height()),
		CellSize:     1,
		MaxPathNodes: cfg.Pathfinding.MaxNodes,
	})
	engine.ApplyTerrain(grid)

	start := engine.GridToWorld(fc, fr)
	goal := engine.GridToWorld(tc, tr)
	route := engine.FindPathSmooth(start.X, start.Y, goal.X, goal.Y)
	if len(route) == 0 {
		fmt.Printf("no route from (%d,%d) to (%d,%d)\n", fc, fr, tc, tr)
		return nil
	}
	fmt.Printf("route found: %d waypoints, length %.2f cells\n",
		len(route), terrapath.PathLength(route))
	return nil
}

func parseCell(s string) (col, row int, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid cell %q, want col,row", s)
	}
	col, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	row, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid cell %q: %w", s, err)
	}
	return col, row, nil
}
