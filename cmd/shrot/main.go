// shrot is a CLI utility for rotating precomputed SH lighting.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/midgard-prt/internal/config"
	"github.com/Faultbox/midgard-prt/internal/logger"
	"github.com/Faultbox/midgard-prt/pkg/sh"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "rotate", "rot":
		cmdRotate(args)
	case "pack":
		cmdPack(args)
	case "operators", "ops":
		cmdOperators(args)
	case "basis":
		cmdBasis(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shrot - spherical harmonics lighting rotation for PRT

Usage:
  shrot <command> [options]

Commands:
  rotate [-light f] [-axis x,y,z] [-angle deg]   Rotate and pack light.txt per channel
  pack [-light f]                                Pack light.txt per channel, no rotation
  operators [-axis x,y,z] [-angle deg]           Print band 1 and band 2 rotation operators
  basis <x> <y> <z>                              Evaluate the SH basis at a direction
  config [-o file] [-force]                      Write the effective config as YAML

Common options:
  -config <file>   YAML config (default ./prt.yaml)
  -format <fmt>    text or yaml
  -debug           Debug logging on stderr

Examples:
  shrot rotate -light light.txt -axis 0,1,0 -angle 90
  shrot pack -light light.txt -format yaml
  shrot operators -axis 1,0,0 -angle 45
  shrot config -angle 30 -o prt.yaml`)
}

// setup parses args, loads config and starts logging. It exits on error.
func setup(name string, args []string) (*config.Config, *flag.FlagSet) {
	return setupFlags(flag.NewFlagSet(name, flag.ExitOnError), args)
}

// setupFlags is setup for commands that register their own flags on fs.
func setupFlags(fs *flag.FlagSet, args []string) (*config.Config, *flag.FlagSet) {
	flags := config.RegisterFlags(fs)
	fs.Parse(args)

	cfg, err := config.Load(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	logger.Sugar.Debugf("Config: %+v", cfg)

	return cfg, fs
}

func loadTable(cfg *config.Config) sh.Table {
	table, err := sh.LoadTable(cfg.Lighting.PrecomputePath)
	if err != nil {
		logger.Error("failed to load precomputed lighting", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("loaded precomputed lighting", zap.String("path", cfg.Lighting.PrecomputePath))
	return table
}

func cmdRotate(args []string) {
	cfg, _ := setup("rotate", args)
	defer logger.Sync()

	table := loadTable(cfg)
	rot := cfg.Rotation.Matrix()

	r := sh.NewRotator(logger.Named("sh"))
	packed, err := r.RotatePrecomputeL(table, rot)
	if err != nil {
		logger.Error("rotation failed", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("rotated precomputed lighting",
		zap.Float64s("axis", cfg.Rotation.Axis[:]),
		zap.Float64("angle_deg", cfg.Rotation.AngleDeg),
	)

	if err := writePacked(os.Stdout, cfg.Output, packed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdPack(args []string) {
	cfg, _ := setup("pack", args)
	defer logger.Sync()

	packed := sh.PackPrecomputeL(loadTable(cfg))
	if err := writePacked(os.Stdout, cfg.Output, packed); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdOperators(args []string) {
	cfg, _ := setup("operators", args)
	defer logger.Sync()

	r := sh.NewRotator(logger.Named("sh"))
	ops, err := r.Operators(cfg.Rotation.Matrix())
	if err != nil {
		logger.Error("building operators failed", zap.Error(err))
		os.Exit(1)
	}

	if err := writeOperators(os.Stdout, cfg.Output, ops); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdBasis(args []string) {
	cfg, fs := setup("basis", args)
	defer logger.Sync()

	if fs.NArg() != 3 {
		fmt.Fprintln(os.Stderr, "Usage: shrot basis <x> <y> <z>")
		os.Exit(1)
	}

	var dir [3]float64
	for i := range dir {
		v, err := strconv.ParseFloat(fs.Arg(i), 64)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: bad coordinate %q: %v\n", fs.Arg(i), err)
			os.Exit(1)
		}
		dir[i] = v
	}

	if err := writeBasis(os.Stdout, cfg.Output, dir); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	out := fs.String("o", "", "Output path (default: user config directory)")
	force := fs.Bool("force", false, "Replace an existing file")
	cfg, _ := setupFlags(fs, args)
	defer logger.Sync()

	path, err := writeConfig(cfg, *out, *force)
	if err != nil {
		logger.Error("writing config failed", zap.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Info("wrote config", zap.String("path", path))
	fmt.Println(path)
}
