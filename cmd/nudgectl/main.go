package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - vapid: Generate a VAPID key pair for webPush
// - token: Sign an access token with secretKey.access
// - link:  Attach a client to a coach in a local SQLite database

func main() {
	vapidCmd := flag.NewFlagSet("vapid", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)
	linkCmd := flag.NewFlagSet("link", flag.ExitOnError)

	// token parameters
	tokenSecret := tokenCmd.String("secret", os.Getenv("SECRETKEY_ACCESS"), "HMAC secret the service validates with")
	tokenUser := tokenCmd.String("user", "", "User ID placed in the sub claim")
	tokenRoles := tokenCmd.String("roles", "client", "Comma-separated roles (client, coach, admin)")
	tokenTTL := tokenCmd.Duration("ttl", time.Hour, "Token lifetime")

	// link parameters
	linkDSN := linkCmd.String("dsn", "nudge.db", "SQLite DSN")
	linkCoach := linkCmd.String("coach", "", "Coach user ID")
	linkClient := linkCmd.String("client", "", "Client user ID")
	linkPrimary := linkCmd.Bool("primary", true, "Also set the client's primary coach")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	flags := ctlFlags{
		Vapid: vapidFlags{
			cmd: vapidCmd,
		},
		Token: tokenFlags{
			cmd:    tokenCmd,
			secret: tokenSecret,
			user:   tokenUser,
			roles:  tokenRoles,
			ttl:    tokenTTL,
		},
		Link: linkFlags{
			cmd:     linkCmd,
			dsn:     linkDSN,
			coach:   linkCoach,
			client:  linkClient,
			primary: linkPrimary,
		},
	}

	if err := runSubcommand(&flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ctlFlags struct {
	Vapid vapidFlags
	Token tokenFlags
	Link  linkFlags
}

type vapidFlags struct {
	cmd *flag.FlagSet
}

type tokenFlags struct {
	cmd    *flag.FlagSet
	secret *string
	user   *string
	roles  *string
	ttl    *time.Duration
}

type linkFlags struct {
	cmd     *flag.FlagSet
	dsn     *string
	coach   *string
	client  *string
	primary *bool
}

func runSubcommand(flags *ctlFlags) error {
	switch os.Args[1] {
	case "vapid":
		return handleVapid(flags)
	case "token":
		return handleToken(flags)
	case "link":
		return handleLink(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleVapid(flags *ctlFlags) error {
	if err := flags.Vapid.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse vapid flags")
	}

	return runVapid(os.Stdout)
}

func handleToken(flags *ctlFlags) error {
	if err := flags.Token.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse token flags")
	}

	if *flags.Token.user == "" {
		return errors.New("-user is required")
	}

	return runToken(os.Stdout, *flags.Token.secret, *flags.Token.user, strings.Split(*flags.Token.roles, ","), *flags.Token.ttl)
}

func handleLink(flags *ctlFlags) error {
	if err := flags.Link.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse link flags")
	}

	if *flags.Link.coach == "" || *flags.Link.client == "" {
		return errors.New("-coach and -client are required")
	}

	return runLink(*flags.Link.dsn, *flags.Link.coach, *flags.Link.client, *flags.Link.primary)
}

func printUsage() {
	fmt.Println("Nudge operator tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  nudgectl <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  vapid     Generate a VAPID key pair")
	fmt.Println("  token     Sign an access token for local testing")
	fmt.Println("  link      Attach a client to a coach in a SQLite database")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  nudgectl vapid")
	fmt.Println("  nudgectl token -secret change-me-access-secret -user <uuid> -roles admin")
	fmt.Println("  nudgectl link -dsn nudge.db -coach <uuid> -client <uuid>")
}
