package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/heshanpadmasiri/javaCSharp/diagnostics"
	"github.com/heshanpadmasiri/javaCSharp/java"
	log "github.com/sirupsen/logrus"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: javaCSharp [flags] <input> [output]\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "input is a .java file or a directory of .java files.\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Without output a single file is written to stdout.\n\nFlags:\n")
	flag.PrintDefaults()
}

func main() {
	configPath := flag.String("config", "", "path of the TOML config (default ./Config.toml)")
	mappingsPath := flag.String("mappings", "", "path of the YAML or TOML syntax mappings")
	jobs := flag.Int("jobs", runtime.NumCPU(), "number of files converted in parallel")
	watch := flag.Bool("watch", false, "keep converting changed files of the input directory")
	overwrite := flag.Bool("overwrite", false, "overwrite existing .cs files")
	verbose := flag.Bool("v", false, "verbose logging")
	flag.Usage = usage
	flag.Parse()

	diagnostics.Setup(*verbose)

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		flag.Usage()
		os.Exit(2)
	}
	inputPath := args[0]
	var outputPath string
	if len(args) > 1 {
		outputPath = args[1]
	}

	opts, err := loadOptions(*configPath, *mappingsPath)
	diagnostics.Fatal("loading options failed", err)

	info, err := os.Stat(inputPath)
	diagnostics.Fatal("reading input failed", err)

	if !info.IsDir() {
		diagnostics.Fatal("conversion failed", convertSingle(opts, inputPath, outputPath))
		return
	}

	if outputPath == "" {
		outputPath = inputPath
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	result, err := convertDirectory(ctx, opts, inputPath, outputPath, *jobs, *overwrite)
	if err != nil && !errors.Is(err, context.Canceled) {
		diagnostics.Fatal("batch conversion failed", err)
	}
	log.WithFields(log.Fields{
		"converted": result.Converted,
		"skipped":   result.Skipped,
		"failed":    result.Failed,
	}).Info("batch conversion finished")

	if *watch {
		err := watchDirectory(ctx, opts, inputPath, outputPath)
		if err != nil && !errors.Is(err, context.Canceled) {
			diagnostics.Fatal("watching input failed", err)
		}
	}
}

// convertSingle converts one file, writing to stdout when outputPath is empty
func convertSingle(opts *java.Options, inputPath, outputPath string) error {
	if outputPath != "" {
		return convertFile(opts, inputPath, outputPath)
	}
	source, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	logWarning := diagnostics.WarningLogger(inputPath)
	opts.OnWarning(func(w java.Warning) {
		logWarning(w.Message, w.Line)
	})
	result, err := java.ConvertText(source, opts)
	if err != nil {
		return err
	}
	fmt.Print(result)
	return nil
}
