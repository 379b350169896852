package main

import (
	"context"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ivanvanderbyl/tablemark"
)

func main() {
	cmd := &cli.Command{
		Name:  "tablemark",
		Usage: "Rewrite HTML tables inside markdown files as pipe tables",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage:   "Single file to rewrite in place",
			},
			&cli.StringFlag{
				Name:  "docs",
				Usage: "Docs root directory to walk for *.md files",
				Value: "docs",
			},
			&cli.StringFlag{
				Name:  "only",
				Usage: "Only process files whose path contains this substring",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "Report counts without writing any file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log a summary per file",
			},
		},
		Action: rewrite,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func rewrite(_ context.Context, cmd *cli.Command) error {
	cfg := tablemark.DefaultConfig()
	cfg.EnableLogging = cmd.Bool("verbose")
	converter := tablemark.NewConverterWithConfig(cfg)

	files, err := collectFiles(cmd)
	if err != nil {
		return err
	}

	dryRun := cmd.Bool("dry-run")
	var filesWithTables, tablesFound, tablesConverted int

	for _, path := range files {
		var summary tablemark.Summary
		if dryRun {
			data, err := os.ReadFile(path)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			_, summary = converter.ConvertDocument(string(data))
		} else {
			summary, err = converter.RewriteFile(path)
			if err != nil {
				return err
			}
		}

		if summary.RegionsFound > 0 {
			filesWithTables++
			tablesFound += summary.RegionsFound
			tablesConverted += summary.RegionsConverted
		}
	}

	fmt.Printf("files_with_tables: %d\n", filesWithTables)
	fmt.Printf("tables_found: %d\n", tablesFound)
	fmt.Printf("tables_converted: %d\n", tablesConverted)
	return nil
}

func collectFiles(cmd *cli.Command) ([]string, error) {
	if file := cmd.String("file"); file != "" {
		return []string{file}, nil
	}

	root := cmd.String("docs")
	only := cmd.String("only")

	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}
		if only != "" && !strings.Contains(path, only) {
			return nil
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}
