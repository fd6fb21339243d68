package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/robinjoseph08/golib/logger"
	"github.com/storagebrowser/storage/pkg/browse"
	"github.com/storagebrowser/storage/pkg/filetype"
)

func main() {
	log := logger.New()

	var opts struct {
		Root     string   `short:"r" long:"root" default:"/" description:"Directory to confine browsing to"`
		PageSize int      `short:"n" long:"page-size" default:"50" description:"Number of entries per page"`
		Exclude  []string `short:"x" long:"exclude" description:"Glob pattern of names to hide (repeatable)"`
		Verbose  bool     `short:"v" long:"verbose" description:"Print every item"`
	}

	args, err := flags.Parse(&opts)
	if err != nil {
		log.Err(err).Fatal("flags parse error")
	}

	if len(args) != 1 {
		fmt.Println("go run ./cmd/scripts/debug/walk-pages [-r root] [-n page-size] <directory>")
		os.Exit(1)
	}

	classifier := filetype.NewClassifier(filetype.NewRegistry(filetype.Image, filetype.Video, filetype.Audio, filetype.Text))
	svc := browse.NewService(
		browse.NewRootFs(opts.Root),
		browse.NewFormatter(classifier),
		browse.NewExcludeFilter(opts.Exclude),
		opts.PageSize,
	)

	ctx := log.WithContext(context.Background())
	seen := map[string]int{}
	var position int64
	pages := 0
	for {
		page, err := svc.ReadPage(ctx, args[0], position, opts.PageSize)
		if err != nil {
			log.Err(err).Fatal("read page error")
		}
		pages++

		for i, item := range page.Items {
			if position == 0 && i == 0 && item.Name == browse.BackItemName {
				continue
			}
			seen[item.Name]++
			if opts.Verbose {
				fmt.Printf("%4d  %s\n", pages, item.Name)
			}
		}

		position = page.NextPosition
		if !page.HasMore {
			break
		}
	}

	duplicates := 0
	for name, count := range seen {
		if count > 1 {
			duplicates++
			fmt.Printf("duplicate: %s (%d times)\n", name, count)
		}
	}
	fmt.Printf("pages=%d entries=%d unique=%d duplicates=%d\n", pages, position, len(seen), duplicates)
}
