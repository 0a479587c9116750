package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - watch:         Drive the viewport sync controller from JSON events on stdin
// - cycle:         Tap a flavor through the availability cycle with undo
// - hash-password: Print a bcrypt hash for admin.passwordHash
// - migrate:       Create the PostGIS schema using config.yaml

func main() {
	watchCmd := flag.NewFlagSet("watch", flag.ExitOnError)
	cycleCmd := flag.NewFlagSet("cycle", flag.ExitOnError)
	hashCmd := flag.NewFlagSet("hash-password", flag.ExitOnError)
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)

	// shared data source flags
	watchSource := registerSourceFlags(watchCmd)
	watchSettle := watchCmd.Duration("settle", time.Second, "Time to wait for in-flight fetches after stdin closes")
	watchThreshold := watchCmd.Int("cluster-zoom", 13, "Highest zoom rendered as clusters")

	cycleSource := registerSourceFlags(cycleCmd)
	cycleStore := cycleCmd.Int64("store", 0, "Store ID")
	cycleFlavor := cycleCmd.String("flavor", "", "Flavor name")
	cycleTaps := cycleCmd.Int("taps", 1, "Number of taps before the undo window closes")
	cycleUndo := cycleCmd.Bool("undo", false, "Undo after tapping")
	cycleWindow := cycleCmd.Duration("window", 3*time.Second, "Undo window")

	hashPassword := hashCmd.String("password", "", "Password to hash (reads LOCATOR_ADMIN_PASSWORD when empty)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ctlFlags{
		Watch: watchFlags{
			cmd:       watchCmd,
			source:    watchSource,
			settle:    watchSettle,
			threshold: watchThreshold,
		},
		Cycle: cycleFlags{
			cmd:     cycleCmd,
			source:  cycleSource,
			storeID: cycleStore,
			flavor:  cycleFlavor,
			taps:    cycleTaps,
			undo:    cycleUndo,
			window:  cycleWindow,
		},
		Hash: hashFlags{
			cmd:      hashCmd,
			password: hashPassword,
		},
		Migrate: migrateFlags{
			cmd: migrateCmd,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Watch   watchFlags
	Cycle   cycleFlags
	Hash    hashFlags
	Migrate migrateFlags
}

type sourceFlags struct {
	api       *string
	session   *string
	stores    *string
	flavors   *string
	verbosity *string
}

type watchFlags struct {
	cmd       *flag.FlagSet
	source    sourceFlags
	settle    *time.Duration
	threshold *int
}

type cycleFlags struct {
	cmd     *flag.FlagSet
	source  sourceFlags
	storeID *int64
	flavor  *string
	taps    *int
	undo    *bool
	window  *time.Duration
}

type hashFlags struct {
	cmd      *flag.FlagSet
	password *string
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

func registerSourceFlags(cmd *flag.FlagSet) sourceFlags {
	return sourceFlags{
		api:       cmd.String("api", "", "Base URL of a running locator API, e.g. http://localhost:8080"),
		session:   cmd.String("session", "", "Session ID sent as X-Session-Id"),
		stores:    cmd.String("stores", "", "Store JSON file for the in-memory backend"),
		flavors:   cmd.String("flavors", "", "Flavor JSON file for the in-memory backend"),
		verbosity: cmd.String("log-level", "warn", "Log level (debug, info, warn, error)"),
	}
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "watch":
		return handleWatch(ctx, flags)
	case "cycle":
		return handleCycle(ctx, flags)
	case "hash-password":
		return handleHashPassword(flags)
	case "migrate":
		return handleMigrate(ctx, flags)
	case "help", "-h", "--help":
		printUsage()

		return nil
	default:
		printUsage()

		return errors.Errorf("unknown subcommand: %s", os.Args[1])
	}
}

func handleWatch(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Watch.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse watch command")
	}

	backend, err := openBackend(flags.Watch.source)
	if err != nil {
		return err
	}

	return runWatch(ctx, backend, watchOptions{
		in:        os.Stdin,
		out:       os.Stdout,
		settle:    *flags.Watch.settle,
		threshold: *flags.Watch.threshold,
	})
}

func handleCycle(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Cycle.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse cycle command")
	}

	if *flags.Cycle.storeID <= 0 || *flags.Cycle.flavor == "" {
		flags.Cycle.cmd.Usage()

		return errors.New("--store and --flavor are required")
	}

	backend, err := openBackend(flags.Cycle.source)
	if err != nil {
		return err
	}

	return runCycle(ctx, backend, cycleOptions{
		out:     os.Stdout,
		storeID: *flags.Cycle.storeID,
		flavor:  *flags.Cycle.flavor,
		taps:    *flags.Cycle.taps,
		undo:    *flags.Cycle.undo,
		window:  *flags.Cycle.window,
	})
}

func handleHashPassword(flags *ctlFlags) error {
	if err := flags.Hash.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse hash-password command")
	}

	password := *flags.Hash.password
	if password == "" {
		password = os.Getenv("LOCATOR_ADMIN_PASSWORD")
	}

	hash, err := hashAdminPassword(password)
	if err != nil {
		return err
	}

	fmt.Println(hash)

	return nil
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate command")
	}

	return runMigrate(ctx)
}

func printUsage() {
	fmt.Println("Locator Client Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  locatorctl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  watch          Feed viewport events (JSON lines on stdin) to the sync controller")
	fmt.Println("  cycle          Cycle a flavor's availability for one store")
	fmt.Println("  hash-password  Print a bcrypt hash for the admin password")
	fmt.Println("  migrate        Create the database schema")
	fmt.Println()
	fmt.Println("Data source (watch, cycle):")
	fmt.Println("  --api URL                  Talk to a running locator API")
	fmt.Println("  --stores FILE --flavors FILE  Run against an in-memory dataset")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  echo '{\"south\":25.0,\"west\":121.5,\"north\":25.1,\"east\":121.6,\"zoom\":12}' | locatorctl watch --api http://localhost:8080")
	fmt.Println("  locatorctl cycle --stores stores.json --flavors flavors.json --store 1 --flavor Mango --taps 2")
	fmt.Println("  locatorctl hash-password --password secret")
	fmt.Println("  locatorctl migrate")
}
