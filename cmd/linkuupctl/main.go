package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - show:     Fetch an employee with schedule and assigned services
// - save:     Create or update an employee from a form file
// - services: List the service catalog of a place

func main() {
	showCmd := flag.NewFlagSet("show", flag.ExitOnError)
	saveCmd := flag.NewFlagSet("save", flag.ExitOnError)
	servicesCmd := flag.NewFlagSet("services", flag.ExitOnError)

	showID := showCmd.String("id", "", "Employee ID to fetch")

	savePlace := saveCmd.String("place", "", "Place the employee belongs to")
	saveFile := saveCmd.String("file", "", "Path to the employee form JSON file")

	servicesPlace := servicesCmd.String("place", "", "Place to list services for")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := newApp()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	switch os.Args[1] {
	case "show":
		err = parseAndRun(showCmd, func() error { return app.runShow(ctx, *showID) })
	case "save":
		err = parseAndRun(saveCmd, func() error { return app.runSave(ctx, *savePlace, *saveFile) })
	case "services":
		err = parseAndRun(servicesCmd, func() error { return app.runServices(ctx, *servicesPlace) })
	default:
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseAndRun(cmd *flag.FlagSet, run func() error) error {
	if err := cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "parse flags")
	}

	return run()
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: linkuupctl <show|save|services> [flags]")
	fmt.Fprintln(os.Stderr, "  show     -id <employee-id>")
	fmt.Fprintln(os.Stderr, "  save     -place <place-id> -file <form.json>")
	fmt.Fprintln(os.Stderr, "  services -place <place-id>")
}
