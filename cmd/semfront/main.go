// Command semfront is the minimal driver described in §6: it loads a
// CompilerConfig, registers package roots, parses the given entry
// paths, runs the build-graph and name-resolution phases to a fixed
// point, and prints diagnostics. Argument parsing is hand-rolled over
// os.Args, matching the teacher's own cmd/funxy/main.go convention
// rather than reaching for the flag package.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sparkfront/semfront/internal/ast"
	"github.com/sparkfront/semfront/internal/compiler"
	"github.com/sparkfront/semfront/internal/config"
	"github.com/sparkfront/semfront/internal/diagnostics"
	"github.com/sparkfront/semfront/internal/passes"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [-config path] [-color auto|always|never] <entry-path>...\n", os.Args[0])
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	configPath := ""
	colorFlag := ""
	var entries []string

	args := os.Args[1:]
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-help", "--help", "-h":
			usage()
			os.Exit(0)
		case "-config":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "semfront: -config requires a path")
				os.Exit(2)
			}
			i++
			configPath = args[i]
		case "-color":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "semfront: -color requires a value")
				os.Exit(2)
			}
			i++
			colorFlag = args[i]
		default:
			entries = append(entries, args[i])
		}
	}
	if len(entries) == 0 {
		usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "semfront: loading config: %s\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	if colorFlag != "" {
		cfg.Color = colorFlag
	}

	reporter := diagnostics.NewReporter(os.Stdout, os.Stdout, colorMode(cfg.Color))
	ctx, c := compiler.New(unimplementedParser{}, reporter)

	for _, root := range cfg.Roots {
		dir := root.Path
		if configPath != "" && !filepath.IsAbs(dir) {
			dir = filepath.Join(filepath.Dir(configPath), dir)
		}
		if _, err := c.AddRoot(dir); err != nil {
			fmt.Fprintf(os.Stderr, "semfront: adding root %q: %s\n", root.Path, err)
			os.Exit(1)
		}
	}
	for _, entry := range entries {
		if _, err := c.ParseImportSource(entry); err != nil {
			fmt.Fprintf(os.Stderr, "semfront: parsing %q: %s\n", entry, err)
			os.Exit(1)
		}
	}

	runToFixedPoint(ctx, c, cfg.Essentials)

	if reporter.HasErrors() {
		fmt.Fprintf(os.Stderr, "semfront: %d error(s)\n", reporter.ErrorCount())
		os.Exit(1)
	}
}

// runToFixedPoint drives the build-graph phase then the naming+
// resolution phase over the growing module set, re-running both until
// a round adds no new modules — the same "keep running until the
// module set stops growing" discipline §4.6/§5 describes for transitive
// imports discovered mid-pass. The essentials table is loaded once,
// after the first build-graph phase and before the first resolution
// phase, so the entry modules' top-level members exist when the
// well-known names are looked up.
func runToFixedPoint(ctx *compiler.Context, c *compiler.Compiler, essentialsCfg config.EssentialsConfig) {
	buildPhase := compiler.NewPhase("buildgraph", ctx, passes.BuildGraph{})
	resolvePhase := compiler.NewPhase("resolution", ctx, passes.Naming{}, passes.Resolution{})

	essentialsLoaded := false
	for {
		before := len(c.Modules())
		buildPhase.Input = c.Modules()
		buildPhase.Run()
		if !essentialsLoaded {
			c.LoadEssentials(essentialsCfg)
			essentialsLoaded = true
		}
		resolvePhase.Input = buildPhase.Input
		resolvePhase.Run()
		if len(c.Modules()) == before {
			return
		}
	}
}

func colorMode(s string) diagnostics.ColorMode {
	switch s {
	case "always":
		return diagnostics.ColorAlways
	case "never":
		return diagnostics.ColorNever
	default:
		return diagnostics.ColorAuto
	}
}

// unimplementedParser is the stand-in Parser collaborator: this module
// consumes a syntax tree through the ast package's interfaces but ships
// no lexer/parser of its own (see DESIGN.md, "ast boundary"). A host
// embedding this compiler as a library supplies a real one by
// implementing compiler.Parser and passing it to compiler.New instead.
type unimplementedParser struct{}

func (unimplementedParser) ParseFile(path string) (*ast.Program, error) {
	return nil, fmt.Errorf("no parser wired: semfront is a semantic-analysis library; embed it with a real compiler.Parser implementation to parse %q", path)
}
