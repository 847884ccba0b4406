// Package main is the wininf inspector: it parses Windows INF driver
// installation files and prints their contents.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/urfave/cli/v2"

	"github.com/dshills/wininf"
)

func main() {
	app := &cli.App{
		Name:  "wininf",
		Usage: "inspect Windows INF driver installation files",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "buffer-size",
				Value: 1024,
				Usage: "read buffer size in bytes",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log debug traces to stderr",
			},
		},
		Commands: []*cli.Command{
			dumpCommand(),
			getCommand(),
			sectionsCommand(),
			stringsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArg parses the INF file named by the first argument, honoring the
// global flags.
func parseArg(c *cli.Context) (*wininf.Document, error) {
	path := c.Args().First()
	if path == "" {
		return nil, errors.New("missing INF file argument")
	}
	opts := []wininf.Option{wininf.WithBufferSize(c.Int("buffer-size"))}
	if c.Bool("verbose") {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		opts = append(opts, wininf.WithLogger(logger))
	}
	return wininf.ParseFile(path, opts...)
}

func dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the parsed document as JSON",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			doc, err := parseArg(c)
			if err != nil {
				return err
			}
			out, err := renderJSON(doc)
			if err != nil {
				return err
			}
			_, err = os.Stdout.Write(pretty.Pretty(out))
			return err
		},
	}
}

func getCommand() *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print one value, addressed by a gjson path like 'Version.0.value'",
		ArgsUsage: "FILE PATH",
		Action: func(c *cli.Context) error {
			doc, err := parseArg(c)
			if err != nil {
				return err
			}
			path := c.Args().Get(1)
			if path == "" {
				return errors.New("missing query path")
			}
			out, err := renderJSON(doc)
			if err != nil {
				return err
			}
			res := gjson.GetBytes(out, path)
			if !res.Exists() {
				return fmt.Errorf("no value at %q", path)
			}
			fmt.Println(res.String())
			return nil
		},
	}
}

func sectionsCommand() *cli.Command {
	return &cli.Command{
		Name:      "sections",
		Usage:     "list section names and entry counts",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			doc, err := parseArg(c)
			if err != nil {
				return err
			}
			for _, name := range sortedNames(doc) {
				fmt.Printf("%s\t%d\n", name, len(doc.Sections[name].Entries))
			}
			return nil
		},
	}
}

func stringsCommand() *cli.Command {
	return &cli.Command{
		Name:      "strings",
		Usage:     "print the raw [Strings] table (no %Token% substitution)",
		ArgsUsage: "FILE",
		Action: func(c *cli.Context) error {
			doc, err := parseArg(c)
			if err != nil {
				return err
			}
			strs := doc.Strings()
			keys := make([]string, 0, len(strs))
			for k := range strs {
				keys = append(keys, k)
			}
			slices.Sort(keys)
			for _, k := range keys {
				fmt.Printf("%s = %s\n", k, strs[k])
			}
			return nil
		},
	}
}

func sortedNames(doc *wininf.Document) []string {
	names := make([]string, 0, len(doc.Sections))
	for name := range doc.Sections {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
