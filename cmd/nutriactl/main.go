package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"nutria/config"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - migrate: Create or update the database schema
// - token:   Sign an access token for a user id

func main() {
	migrateCmd := flag.NewFlagSet("migrate", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	tokenUser := tokenCmd.Uint("user", 0, "User id placed in the token subject")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flags := ctlFlags{
		Migrate: migrateFlags{cmd: migrateCmd},
		Token:   tokenFlags{cmd: tokenCmd, user: tokenUser},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Migrate migrateFlags
	Token   tokenFlags
}

type migrateFlags struct {
	cmd *flag.FlagSet
}

type tokenFlags struct {
	cmd  *flag.FlagSet
	user *uint
}

func runSubcommand(ctx context.Context, flags *ctlFlags) error {
	switch os.Args[1] {
	case "migrate":
		return handleMigrate(ctx, flags)
	case "token":
		return handleToken(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleMigrate(ctx context.Context, flags *ctlFlags) error {
	if err := flags.Migrate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse migrate flags")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runMigrate(ctx, cfg)
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.user == 0 {
		return errors.New("--user flag is required for token command")
	}

	cfg, err := config.New()
	if err != nil {
		return err
	}

	return runToken(os.Stdout, cfg, *flags.Token.user)
}

func printUsage() {
	fmt.Println("Usage: nutriactl <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  migrate     Create or update the database schema")
	fmt.Println("  token       Sign an access token for a user")
	fmt.Println("")
	fmt.Println("Use 'nutriactl <command> -h' for more information about a command.")
}
