package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/maze-solver/internal/imaging"
	"github.com/ironsheep/maze-solver/internal/maze"
	"github.com/ironsheep/maze-solver/internal/server"
	"github.com/ironsheep/maze-solver/internal/solve"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// Exit codes
const (
	exitOK       = 0
	exitIO       = 1
	exitUsage    = 2
	exitEndpoint = 3
	exitNoPath   = 4
	exitBuild    = 5
)

var errConfig = errors.New("invalid configuration")

func main() {
	// Handle --version, --help and --mcp before anything else
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("maze-solve %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printHelp(os.Stdout)
			return
		}
	}

	// Configure logging to stderr (stdout carries results or MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	debug := os.Getenv("MAZE_SOLVER_LOG_LEVEL") == "debug"
	if debug {
		log.Printf("Maze Solver v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}

	cfg, pathColor, err := configFromEnv(os.Getenv)
	if err != nil {
		fmt.Fprintf(os.Stderr, "maze-solve: %v\n", err)
		os.Exit(exitUsage)
	}

	if len(os.Args) > 1 && os.Args[1] == "--mcp" {
		srv := server.New(
			server.WithConfig(cfg),
			server.WithPathColor(pathColor),
			server.WithVersion(Version),
		)
		if err := srv.Run(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	os.Exit(run(os.Args[1:], cfg, pathColor, debug, os.Stdout, os.Stderr))
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "maze-solve - shortest path through a maze image")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage: maze-solve input.png start_x,start_y end_x,end_y output.png")
	fmt.Fprintln(w, "       maze-solve --mcp")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Endpoints may also be given as a marker colour, e.g. #00FF00.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  --mcp            Serve the maze tools over MCP on stdin/stdout")
	fmt.Fprintln(w, "  --version, -v    Print version information")
	fmt.Fprintln(w, "  --help, -h       Print this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment variables:")
	fmt.Fprintln(w, "  MAZE_SOLVER_LOG_LEVEL=debug          Enable debug logging and phase timings")
	fmt.Fprintln(w, "  MAZE_SOLVER_CHANNEL=red              Channel used to find walls (red, green, blue, luma)")
	fmt.Fprintln(w, "  MAZE_SOLVER_CHANNEL_THRESHOLD=100    Channel values at or below this are walls")
	fmt.Fprintln(w, "  MAZE_SOLVER_ALPHA_THRESHOLD=255      Only pixels with alpha >= 255-N can be walls")
	fmt.Fprintln(w, "  MAZE_SOLVER_PATH_COLOR=#FF0000       Colour of the drawn solution")
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "   maze-solve input.png start_x,start_y end_x,end_y output.png")
}

// configFromEnv reads the classifier and solution colour. Unset variables
// keep their defaults.
func configFromEnv(getenv func(string) string) (maze.Config, color.NRGBA, error) {
	cfg := maze.DefaultConfig()
	pathColor := imaging.SolutionColor

	if v := getenv("MAZE_SOLVER_CHANNEL"); v != "" {
		ch, err := maze.ParseChannel(v)
		if err != nil {
			return cfg, pathColor, fmt.Errorf("MAZE_SOLVER_CHANNEL: %w", err)
		}
		cfg.Channel = ch
	}
	if v := getenv("MAZE_SOLVER_CHANNEL_THRESHOLD"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return cfg, pathColor, fmt.Errorf("%w: MAZE_SOLVER_CHANNEL_THRESHOLD %q: want 0-255", errConfig, v)
		}
		cfg.ChannelThreshold = uint8(n)
	}
	if v := getenv("MAZE_SOLVER_ALPHA_THRESHOLD"); v != "" {
		n, err := strconv.ParseUint(v, 10, 8)
		if err != nil {
			return cfg, pathColor, fmt.Errorf("%w: MAZE_SOLVER_ALPHA_THRESHOLD %q: want 0-255", errConfig, v)
		}
		cfg.AlphaThreshold = uint8(n)
	}
	if v := getenv("MAZE_SOLVER_PATH_COLOR"); v != "" {
		c, err := imaging.ParseHexColor(v)
		if err != nil {
			return cfg, pathColor, fmt.Errorf("%w: MAZE_SOLVER_PATH_COLOR: %v", errConfig, err)
		}
		pathColor = c
	}

	return cfg, pathColor, cfg.Validate()
}

// run solves one maze from the positional arguments and returns the exit code.
func run(args []string, cfg maze.Config, pathColor color.NRGBA, debug bool, stdout, stderr io.Writer) int {
	if len(args) != 4 {
		printUsage(stdout)
		return exitOK
	}

	fail := func(err error) int {
		fmt.Fprintf(stderr, "maze-solve: %v\n", err)
		return exitCode(err)
	}

	start, err := solve.ParseEndpoint(args[1])
	if err != nil {
		return fail(fmt.Errorf("start: %w", err))
	}
	end, err := solve.ParseEndpoint(args[2])
	if err != nil {
		return fail(fmt.Errorf("end: %w", err))
	}

	res, err := solve.Run(imaging.NewImageCache(), solve.Query{
		Input:     args[0],
		Output:    args[3],
		Start:     start,
		End:       end,
		Config:    cfg,
		PathColor: pathColor,
	})
	if err != nil {
		return fail(err)
	}

	if debug {
		log.Printf("load: %.3fs", res.Timings.Load.Seconds())
		log.Printf("build: %.3fs", res.Timings.Build.Seconds())
		log.Printf("flood: %.3fs", res.Timings.Flood.Seconds())
		log.Printf("trace: %.3fs", res.Timings.Trace.Seconds())
		log.Printf("draw_solution: %.3fs", res.Timings.Draw.Seconds())
		log.Printf("save: %.3fs", res.Timings.Save.Seconds())
	}

	fmt.Fprintf(stdout, "%s -> %s: distance %d (%d cells), wrote %s\n",
		res.Start, res.End, res.Distance, res.Path.Len(), res.Output)
	return exitOK
}

// exitCode maps an error from the solve pipeline to a process exit code.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, solve.ErrBadCoordinate),
		errors.Is(err, imaging.ErrUnsupportedFormat),
		errors.Is(err, maze.ErrUnknownChannel),
		errors.Is(err, errConfig):
		return exitUsage
	case errors.Is(err, maze.ErrInvalidEndpoint),
		errors.Is(err, solve.ErrMarkerNotFound):
		return exitEndpoint
	case errors.Is(err, maze.ErrNoPathFound):
		return exitNoPath
	case errors.Is(err, maze.ErrBuild),
		errors.Is(err, maze.ErrNotFlooded),
		errors.Is(err, maze.ErrBrokenField):
		return exitBuild
	default:
		return exitIO
	}
}
