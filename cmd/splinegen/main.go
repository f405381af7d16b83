// splinegen is a CLI utility for generating and inspecting spline surfaces.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/splinefield/internal/config"
	"github.com/Faultbox/splinefield/internal/logger"
	"github.com/Faultbox/splinefield/internal/mesh"
	"github.com/Faultbox/splinefield/pkg/surface"
)

func main() {
	// Global flags (-config, -seed, -cps, ...) come before the command
	config.ParseFlags()
	args := config.Args()

	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]

	switch command {
	case "help", "-h", "--help":
		printUsage()
		return
	case "stats", "lattice", "patch":
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	switch command {
	case "stats":
		err = cmdStats(cfg, args)
	case "lattice":
		err = cmdLattice(cfg, args)
	case "patch":
		err = cmdPatch(cfg, args)
	}
	if err != nil {
		logger.Error("command failed", zap.String("command", command), zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logger.Sync()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`splinegen - bicubic B-spline height field generator

Usage:
  splinegen [global options] <command> [options]

Commands:
  stats                  Generate the surface and print buffer statistics
  lattice [-row n]       Print the control point lattice
  patch <k> <u> <v>      Evaluate point and normal of patch k at (u, v)
  help                   Show this message

Global options:
  -config <file>         Config file (default: ./splinefield.yaml)
  -seed <n>              Height generator seed
  -cps <n>               Control points per lattice side
  -segments <n>          Subdivisions per patch per axis
  -workers <n>           Tessellation goroutines
  -debug                 Enable debug logging

Examples:
  splinegen stats
  splinegen -seed 42 -cps 4 -segments 1 stats
  splinegen lattice -row 0
  splinegen patch 5 0.5 0.25`)
}

func cmdStats(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("stats", flag.ExitOnError)
	fs.Parse(args)

	start := time.Now()
	s, err := surface.New(cfg.Surface.Params(), surface.WithWorkers(cfg.Surface.WorkerCount()))
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	logger.Debug("surface generated", zap.Duration("elapsed", elapsed))

	stats, err := mesh.ComputeStats(s.PosBuf(), s.NorBuf())
	if err != nil {
		return err
	}

	p := s.Params()
	fmt.Printf("Control points: %d x %d\n", p.NumSideCps, p.NumSideCps)
	fmt.Printf("Interval:       %.6f\n", s.Lattice().Interval())
	fmt.Printf("Patches:        %d\n", s.PatchCount())
	fmt.Printf("Segments:       %d\n", p.Segments)
	fmt.Printf("Seed:           %d\n", p.Seed)
	fmt.Printf("Vertices:       %d\n", stats.Vertices)
	fmt.Printf("Triangles:      %d\n", stats.Triangles)
	fmt.Printf("Buffer floats:  %d\n", len(s.PosBuf()))
	fmt.Printf("Bounds min:     %v\n", stats.Bounds.Min)
	fmt.Printf("Bounds max:     %v\n", stats.Bounds.Max)
	fmt.Printf("Normal length:  [%.6f, %.6f]\n", stats.MinNormalLen, stats.MaxNormalLen)
	fmt.Printf("Checksum:       %016x\n", stats.Checksum)
	fmt.Printf("Time:           %v\n", elapsed)
	return nil
}

func cmdLattice(cfg *config.Config, args []string) error {
	fs := flag.NewFlagSet("lattice", flag.ExitOnError)
	row := fs.Int("row", -1, "Print only this row (-1 = all)")
	fs.Parse(args)

	p := cfg.Surface.Params()
	if err := p.Validate(); err != nil {
		return err
	}
	l := surface.NewLattice(p.Clamped())

	first, last := 0, l.Size()-1
	if *row >= 0 {
		if *row >= l.Size() {
			return fmt.Errorf("row %d out of range [0, %d)", *row, l.Size())
		}
		first, last = *row, *row
	}

	fmt.Printf("Lattice %d x %d, interval %.6f\n", l.Size(), l.Size(), l.Interval())
	for r := first; r <= last; r++ {
		for c := range l.Size() {
			pt := l.At(r, c)
			fmt.Printf("  [%2d,%2d] %10.4f %10.4f %10.4f\n", r, c, pt.X, pt.Y, pt.Z)
		}
	}
	return nil
}

func cmdPatch(cfg *config.Config, args []string) error {
	if len(args) < 3 {
		fmt.Fprintln(os.Stderr, "Usage: splinegen patch <k> <u> <v>")
		os.Exit(1)
	}

	k, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("patch index: %w", err)
	}
	u, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return fmt.Errorf("u: %w", err)
	}
	v, err := strconv.ParseFloat(args[2], 64)
	if err != nil {
		return fmt.Errorf("v: %w", err)
	}

	s, err := surface.New(cfg.Surface.Params(), surface.WithWorkers(cfg.Surface.WorkerCount()))
	if err != nil {
		return err
	}
	patch, err := s.Patch(k)
	if err != nil {
		return err
	}

	pt := patch.Point(u, v)
	dU, dV := patch.Tangents(u, v)
	n := patch.Normal(u, v)

	fmt.Printf("Patch %d at (u=%g, v=%g)\n", k, u, v)
	fmt.Printf("  point:  %10.6f %10.6f %10.6f\n", pt.X, pt.Y, pt.Z)
	fmt.Printf("  dP/du:  %10.6f %10.6f %10.6f\n", dU.X, dU.Y, dU.Z)
	fmt.Printf("  dP/dv:  %10.6f %10.6f %10.6f\n", dV.X, dV.Y, dV.Z)
	fmt.Printf("  normal: %10.6f %10.6f %10.6f\n", n.X, n.Y, n.Z)
	return nil
}
