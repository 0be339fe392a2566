// shadowtool is a CLI utility for inspecting shadow presets and the meshes they produce.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/shadowmesh/internal/config"
	"github.com/Faultbox/shadowmesh/internal/logger"
)

var errUsage = errors.New("usage")

func main() {
	config.ParseFlags()

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

	args := config.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	args = args[1:]
	logger.Debug("running command", zap.String("command", command), zap.Strings("args", args))

	switch command {
	case "presets", "ls":
		err = cmdPresets(os.Stdout, cfg, args)
	case "tessellate", "t":
		err = cmdTessellate(os.Stdout, cfg, args)
	case "help", "-h", "--help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}

	if errors.Is(err, errUsage) {
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`shadowtool - soft shadow mesh utility

Usage:
  shadowtool [global flags] <command> [options]

Global flags:
  -config <file>   Config file (default ./shadowmesh.yaml)
  -theme <name>    dark or light, picks the default shadow
  -debug           Enable debug logging

Commands:
  presets [-format table|yaml]        List shadow presets and theme shadows
  tessellate [options]                Tessellate a shadow and print the mesh

Tessellate options:
  -preset <name>          Start from a preset instead of the theme window shadow
  -extrusion <points>     Override the extrusion
  -color <#rrggbbaa>      Override the color
  -rect x0,y0,x1,y1       Rect that casts the shadow (default 0,0,100,50)
  -radius <points>        Corner radius of that rect (default from config)
  -format stats|yaml|obj  Output format (default stats)

Examples:
  shadowtool presets
  shadowtool tessellate -preset small-dark -rect 0,0,100,50 -radius 4
  shadowtool -theme light tessellate -format obj > shadow.obj`)
}
