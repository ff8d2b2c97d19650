// Command rpcgen renders the typed RPC wrappers of package solana from the
// YAML method catalogue.
package main

import (
	"bytes"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "rpcgen",
		Usage: "Generate RPC method wrappers from a catalogue",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "in",
				Value: "methods.yaml",
				Usage: "Method catalogue",
			},
			&cli.StringFlag{
				Name:  "out",
				Value: "methods.g.go",
				Usage: "Generated file",
			},
		},
		Action: func(cCtx *cli.Context) error {
			return run(cCtx.String("in"), cCtx.String("out"))
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(in, out string) error {
	cat, err := LoadCatalogue(in)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := generateFile(cat).Render(&buf); err != nil {
		return errors.Wrap(err, "render")
	}
	return errors.Wrap(os.WriteFile(out, buf.Bytes(), 0o644), "write")
}
