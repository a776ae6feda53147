// synthd CLI - Command-line interface for the synthd test data generator
package main

import (
	"fmt"
	"os"

	"github.com/synthd/synthd/pkg/cli"
)

// Build-time variables set via ldflags
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

// Command represents a registered CLI command.
type Command struct {
	Name  string
	Short string
	Run   func(args []string) error
}

// Registry holds all registered commands.
type Registry struct {
	commands map[string]*Command
	ordered  []*Command
}

func newRegistry() *Registry {
	return &Registry{commands: make(map[string]*Command)}
}

func (r *Registry) register(cmd *Command) {
	r.commands[cmd.Name] = cmd
	r.ordered = append(r.ordered, cmd)
}

func (r *Registry) lookup(name string) (*Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// buildRegistry creates the command registry with all CLI commands.
func buildRegistry() *Registry {
	reg := newRegistry()

	reg.register(&Command{Name: "generate", Short: "Generate users, products, and orders", Run: cli.RunGenerate})
	reg.register(&Command{Name: "export", Short: "Export the dataset to json, csv, or yaml", Run: cli.RunExport})
	reg.register(&Command{
		Name: "version", Short: "Show version information",
		Run: func(args []string) error {
			return cli.RunVersion(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}, args)
		},
	})

	return reg
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	reg := buildRegistry()

	if len(args) == 0 {
		printUsage(reg)
		return nil
	}

	switch args[0] {
	case "--help", "-h", "help":
		printUsage(reg)
		return nil
	case "--version", "-v":
		return cli.RunVersion(cli.BuildInfo{Version: Version, Commit: Commit, BuildDate: BuildDate}, nil)
	}

	cmd, ok := reg.lookup(args[0])
	if !ok {
		return fmt.Errorf("unknown command: %s\n\nRun 'synthd --help' for usage", args[0])
	}
	return cmd.Run(args[1:])
}

func printUsage(reg *Registry) {
	fmt.Print("synthd - Realistic relational test data generator\n\n")
	fmt.Print("Usage:\n")
	fmt.Print("  synthd <command> [flags]       Run a specific command\n")
	fmt.Print("  synthd --help                  Show this help message\n\n")

	fmt.Print("Commands:\n")
	for _, cmd := range reg.ordered {
		fmt.Printf("  %-12s %s\n", cmd.Name, cmd.Short)
	}

	fmt.Print(`
Global Flags:
  -h, --help      Show this help message
  -v, --version   Show version information

Examples:
  # Generate a dataset with defaults and export it as JSON
  synthd generate -e json

  # Reproducible seeded generation in another locale
  synthd generate --locale fa_IR --seed 42

  # Export an existing database to CSV files
  synthd export -f csv --db synthd.db -o out

Run 'synthd <command> --help' for more information on a command.
`)
}
