package main

import (
	"flag"

	"raycaster/internal/config"
)

// Command-line flags. Flags that mirror a config field only override the
// file when they are given explicitly.
var (
	// configPathFlag points at a YAML config file.
	configPathFlag = flag.String("config", "", "path to a YAML config file (defaults to $"+config.EnvPath+")")

	// mapFileFlag loads a map file instead of generating one.
	mapFileFlag = flag.String("map", "", "map file to load instead of generating one")

	mapEncodingFlag = flag.String("map-encoding", "digit", "map file encoding: digit or glyph")

	// generatorFlag selects the random map generator.
	generatorFlag = flag.String("generator", "uniform", "random map generator: uniform or noise")

	// seedFlag fixes the map generation seed.
	seedFlag = flag.Int64("seed", 0, "map generation seed (0 picks one from the clock)")

	// saveMapFlag writes the active map to a file on startup.
	saveMapFlag = flag.String("save-map", "", "write the active map to this path")

	// rendererFlag chooses the front end.
	rendererFlag = flag.String("renderer", "window", "front end: window or term")

	// columnsFlag sets the number of rays per frame.
	columnsFlag = flag.Int("columns", 0, "rays per frame (0 = one per pixel column)")

	// fovDegreesFlag adjusts the player's field of view.
	fovDegreesFlag = flag.Float64("fov-deg", defaultFOVDegrees, "field of view angle (degrees)")

	// showMapFlag toggles the minimap overlay.
	showMapFlag = flag.Bool("show-map", true, "render the minimap overlay")

	// occludeLineOfSightFlag hides minimap cells that are not in the
	// player's line of sight.
	occludeLineOfSightFlag = flag.Bool("occlude-line-of-sight", false, "hide minimap cells outside the player's line of sight")

	// debugFlag enables the FPS and sweep overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and sweep timing overlay")

	// recordDefaultPGO triggers a scripted walk to produce default.pgo.
	recordDefaultPGO = flag.Bool("record-default-pgo", false, "walk randomly for 15s while capturing default.pgo")

	metricsAddrFlag = flag.String("metrics-addr", "", "serve Prometheus metrics on this address")

	logLevelFlag = flag.String("log-level", "info", "log level (trace, debug, info, warn, error)")
)

// applyFlagOverrides copies explicitly set flags onto cfg.
func applyFlagOverrides(fs *flag.FlagSet, cfg *config.Config) {
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "map":
			cfg.Map.File = *mapFileFlag
		case "map-encoding":
			cfg.Map.Encoding = *mapEncodingFlag
		case "generator":
			cfg.Map.Generator = *generatorFlag
		case "seed":
			cfg.Map.Seed = *seedFlag
		case "renderer":
			cfg.Render.Backend = *rendererFlag
		case "columns":
			cfg.Screen.Columns = *columnsFlag
		case "fov-deg":
			cfg.Player.FOVDegrees = *fovDegreesFlag
		case "metrics-addr":
			cfg.Metrics.Addr = *metricsAddrFlag
		case "log-level":
			cfg.Log.Level = *logLevelFlag
		}
	})
}
