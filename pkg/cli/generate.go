package cli

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/synthd/synthd/pkg/config"
	"github.com/synthd/synthd/pkg/engine"
	"github.com/synthd/synthd/pkg/enhance"
	"github.com/synthd/synthd/pkg/export"
	"github.com/synthd/synthd/pkg/faker"
)

// RunGenerate handles the generate command.
func RunGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)

	configPath := fs.String("config", "", "Config file (YAML or JSON)")
	users := fs.Int("users", 0, "Number of users to generate")
	fs.IntVar(users, "u", 0, "Number of users (shorthand)")
	products := fs.Int("products", 0, "Number of products to generate")
	fs.IntVar(products, "p", 0, "Number of products (shorthand)")
	orders := fs.Int("orders", 0, "Number of orders to generate")
	fs.IntVar(orders, "n", 0, "Number of orders (shorthand)")
	locale := fs.String("locale", "", "Locale for generated values (e.g. en-US, fa-IR)")
	seed := fs.Uint64("seed", 0, "PRNG seed for reproducible output (0 = random)")
	db := fs.String("db", "", "Database file (empty or :memory: for in-memory)")
	out := fs.String("out", "", "Directory for export files")
	fs.StringVar(out, "o", "", "Directory for export files (shorthand)")
	format := fs.String("export", "", "Export after generating: json, csv, yaml")
	fs.StringVar(format, "e", "", "Export format (shorthand)")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")

	fs.Usage = func() {
		fmt.Fprint(os.Stderr, `Usage: synthd generate [flags]

Generate users, products, and orders into the database, optionally
exporting the full dataset afterwards.

Flags:
      --config       Config file (YAML or JSON)
  -u, --users        Number of users to generate (default: 10)
  -p, --products     Number of products to generate (default: 20)
  -n, --orders       Number of orders to generate (default: 50)
      --locale       Locale for generated values (default: en-US)
      --seed         PRNG seed for reproducible output (0 = random)
      --db           Database file (default: synthd.db, :memory: for none)
  -o, --out          Directory for export files (default: .)
  -e, --export       Export after generating: json, csv, yaml
      --log-level    Log level: debug, info, warn, error (default: info)

Examples:
  # Generate with defaults (10 users, 20 products, 50 orders)
  synthd generate

  # Reproducible Persian-locale dataset, exported to JSON
  synthd generate --locale fa-IR --seed 42 -e json

  # Large dataset into a named database file
  synthd generate -u 1000 -p 200 -n 5000 --db fixtures.db
`)
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Explicitly set flags override the config file.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "users", "u":
			cfg.Users = *users
		case "products", "p":
			cfg.Products = *products
		case "orders", "n":
			cfg.Orders = *orders
		case "locale":
			cfg.Locale = *locale
		case "seed":
			cfg.Seed = *seed
		case "db":
			cfg.DB = *db
		case "out", "o":
			cfg.Out = *out
		case "export", "e":
			cfg.Export = *format
		case "log-level":
			cfg.Log.Level = *logLevel
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := newLogger(cfg.Log)

	var fk *faker.Faker
	if cfg.Seed != 0 {
		fk = faker.NewSeeded(cfg.Locale, cfg.Seed)
	} else {
		fk = faker.New(cfg.Locale)
	}

	enhancer, err := enhance.New(&cfg.Enhancer)
	if err != nil {
		return fmt.Errorf("configure enhancer: %w", err)
	}

	st, err := openStore(cfg.DB)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	eng := engine.New(st, engine.NewFactory(fk, enhancer, log), fk, log)
	summary, genErr := eng.Generate(cfg.Users, cfg.Products, cfg.Orders)

	fmt.Printf("Generated %d users, %d products, %d orders (run %s, locale %s)\n",
		summary.Users, summary.Products, summary.Orders, summary.RunID, fk.Locale())

	if genErr != nil {
		var refErr *engine.ReferenceError
		if errors.As(genErr, &refErr) {
			return fmt.Errorf("order generation aborted after %d orders: %w", summary.Orders, genErr)
		}
		return genErr
	}

	if cfg.Export != "" {
		result, err := export.New(st, cfg.Out, log).Export(export.ParseFormat(cfg.Export))
		if err != nil {
			return err
		}
		for _, f := range result.Files {
			fmt.Printf("Exported %s\n", f)
		}
	}
	return nil
}
