package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/storagebrowser/storage/pkg/browse"
	"github.com/storagebrowser/storage/pkg/config"
	"github.com/storagebrowser/storage/pkg/cursor"
	"github.com/storagebrowser/storage/pkg/pathref"
	"github.com/storagebrowser/storage/pkg/server"
	"github.com/storagebrowser/storage/pkg/version"
	"github.com/urfave/cli/v2"
)

func main() {
	log := logger.New()

	app := &cli.App{
		Name:        "storage",
		Usage:       "CLI to browse the configured storage root",
		Description: "Reads directory pages the same way the browse endpoint does and converts path references and paging tokens.",
		Version:     version.Version,
		Commands: []*cli.Command{
			{
				Name:      "ls",
				Usage:     "print one page of a directory",
				ArgsUsage: "<directory>",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "token", Usage: "paging token returned by a previous page"},
					&cli.IntFlag{Name: "page-size", Usage: "number of entries per page (defaults to the configured page size)"},
				},
				Action: func(c *cli.Context) error {
					dir, err := directoryArg(c)
					if err != nil {
						return err
					}
					position, err := cursor.Decode(c.String("token"))
					if err != nil {
						return errors.WithStack(err)
					}

					svc, err := browseService()
					if err != nil {
						return err
					}

					page, err := svc.ReadPage(c.Context, dir, position, c.Int("page-size"))
					if err != nil {
						return errors.WithStack(err)
					}

					return printJSON(browse.BrowseResponse{
						Items:     page.Items,
						NextToken: cursor.Encode(page.NextPosition),
						HasMore:   page.HasMore,
						Dir:       dir,
					})
				},
			},
			{
				Name:      "pages",
				Usage:     "follow paging tokens until a directory is exhausted",
				ArgsUsage: "<directory>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "page-size", Usage: "number of entries per page (defaults to the configured page size)"},
				},
				Action: func(c *cli.Context) error {
					dir, err := directoryArg(c)
					if err != nil {
						return err
					}

					svc, err := browseService()
					if err != nil {
						return err
					}

					var position int64
					for n := 1; ; n++ {
						page, err := svc.ReadPage(c.Context, dir, position, c.Int("page-size"))
						if err != nil {
							return errors.WithStack(err)
						}

						fmt.Printf("page %d (token %q)\n", n, cursor.Encode(position))
						for _, item := range page.Items {
							fmt.Printf("  %s\n", describe(item))
						}

						if !page.HasMore {
							fmt.Printf("%d entries\n", page.NextPosition)
							return nil
						}
						position = page.NextPosition
					}
				},
			},
			{
				Name:      "encode",
				Usage:     "encode an absolute path into a path reference",
				ArgsUsage: "<path>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one path")
					}
					fmt.Println(pathref.Encode(c.Args().First()))
					return nil
				},
			},
			{
				Name:      "decode",
				Usage:     "decode a path reference into an absolute path",
				ArgsUsage: "<reference>",
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one reference")
					}
					path, err := pathref.Decode(c.Args().First())
					if err != nil {
						return errors.WithStack(err)
					}
					fmt.Println(path)
					return nil
				},
			},
			{
				Name:      "token",
				Usage:     "encode a position into a paging token, or decode a token with --decode",
				ArgsUsage: "<position|token>",
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "decode", Aliases: []string{"d"}, Usage: "decode a token instead of encoding a position"},
				},
				Action: func(c *cli.Context) error {
					if c.NArg() != 1 {
						return errors.New("expected exactly one argument")
					}
					arg := c.Args().First()

					if c.Bool("decode") {
						position, err := cursor.Decode(arg)
						if err != nil {
							return errors.WithStack(err)
						}
						fmt.Println(position)
						return nil
					}

					position, err := strconv.ParseInt(arg, 10, 64)
					if err != nil || position < 0 {
						return errors.Errorf("position must be a non-negative integer, got %q", arg)
					}
					fmt.Println(cursor.Encode(position))
					return nil
				},
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Err(err).Fatal("storage error")
	}
}

func browseService() (*browse.Service, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, errors.WithStack(err)
	}
	svc, err := server.NewBrowseService(cfg)
	return svc, errors.WithStack(err)
}

// directoryArg accepts either a plain absolute path or a path reference.
func directoryArg(c *cli.Context) (string, error) {
	if c.NArg() != 1 {
		return "", errors.New("expected exactly one directory")
	}
	arg := c.Args().First()
	if len(arg) > 0 && arg[0] == '/' {
		return arg, nil
	}
	dir, err := pathref.Decode(arg)
	return dir, errors.WithStack(err)
}

func describe(item browse.Item) string {
	kind := "-"
	if item.FileType != nil {
		kind = *item.FileType
	}
	return fmt.Sprintf("%-10s %10d  %s", kind, item.Size, item.Name)
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errors.WithStack(err)
	}
	fmt.Println(string(data))
	return nil
}
