package main

import (
	"log"
	"os"

	"github.com/icey9527/tim2"
	"github.com/urfave/cli/v2"
)

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func twoArgs(c *cli.Context) (string, string) {
	if c.NArg() < 2 {
		cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
	}
	return c.Args().Get(0), c.Args().Get(1)
}

func newConverter(c *cli.Context, parts bool) (*tim2.TIM2, error) {
	logger := log.New(os.Stderr, "", 0)

	return tim2.New(c.String("db"), logger, tim2.Options{
		Parts:   parts,
		Format:  c.String("format"),
		Indexed: c.Bool("indexed"),
		Workers: c.Int("workers"),
	})
}

func main() {
	app := cli.NewApp()

	app.Name = "tim2png"
	app.Usage = "PlayStation 2 TIM2 texture converter"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "db",
			EnvVars: []string{"TIM2_DB"},
			Usage:   "catalog database; containers recorded there are skipped",
		},
		&cli.StringFlag{
			Name:    "format",
			EnvVars: []string{"TIM2_FORMAT"},
			Value:   "png",
			Usage:   "output encoding, png or qoi",
		},
		&cli.BoolFlag{
			Name:  "indexed",
			Usage: "quantize PNG output to a 256 color palette",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"j"},
			Usage:   "concurrent file conversions (0 = one per CPU)",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "tm2",
			Usage:       "Convert legacy single picture containers",
			Description: "Converts every .tm2 file under INPUT into OUTPUT.",
			ArgsUsage:   "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				input, output := twoArgs(c)

				t, err := newConverter(c, false)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer t.Close()

				if err := t.ConvertTM2(input, output); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "tex",
			Usage:       "Convert chained multi picture containers",
			Description: "Converts every .tex file under INPUT into OUTPUT, mirroring the directory layout.",
			ArgsUsage:   "INPUT OUTPUT",
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "parts",
					Usage: "also write each picture before composition",
				},
			},
			Action: func(c *cli.Context) error {
				input, output := twoArgs(c)

				t, err := newConverter(c, c.Bool("parts"))
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer t.Close()

				if err := t.ConvertTex(input, output); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
		{
			Name:        "scan",
			Usage:       "Extract containers embedded in arbitrary files",
			Description: "Searches INPUT for embedded chained containers and writes each one into OUTPUT. Cue sheets are scanned through their first data track.",
			ArgsUsage:   "INPUT OUTPUT",
			Action: func(c *cli.Context) error {
				input, output := twoArgs(c)

				t, err := newConverter(c, false)
				if err != nil {
					return cli.NewExitError(err, 1)
				}
				defer t.Close()

				if err := t.Scan(input, output); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
