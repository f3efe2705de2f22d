package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/heshanpadmasiri/javaCSharp/diagnostics"
	"github.com/heshanpadmasiri/javaCSharp/java"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// batchResult counts the outcome of a directory conversion
type batchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// outputPath maps a java file below inputDir onto the mirrored .cs path below outputDir
func outputPath(inputDir, outputDir, javaFile string) (string, error) {
	rel, err := filepath.Rel(inputDir, javaFile)
	if err != nil {
		return "", err
	}
	return filepath.Join(outputDir, strings.TrimSuffix(rel, filepath.Ext(rel))+".cs"), nil
}

// sidecarPath returns the .warning or .error file written next to a .cs output
func sidecarPath(csFile, ext string) string {
	return strings.TrimSuffix(csFile, filepath.Ext(csFile)) + ext
}

// convertFile converts one java file into csFile. Warnings are logged and
// written to a .warning file; a failed conversion writes a .error file.
func convertFile(opts *java.Options, javaFile, csFile string) error {
	source, err := os.ReadFile(javaFile)
	if err != nil {
		return fmt.Errorf("reading %s: %w", javaFile, err)
	}

	var warnings strings.Builder
	logWarning := diagnostics.WarningLogger(javaFile)
	opts.OnWarning(func(w java.Warning) {
		logWarning(w.Message, w.Line)
		fmt.Fprintf(&warnings, "Line %d: %s\n", w.Line, w.Message)
	})

	result, convErr := java.ConvertText(source, opts)
	if warnings.Len() > 0 {
		if err := os.WriteFile(sidecarPath(csFile, ".warning"), []byte(warnings.String()), 0o644); err != nil {
			return fmt.Errorf("writing warnings of %s: %w", javaFile, err)
		}
	}
	if convErr != nil {
		if err := os.WriteFile(sidecarPath(csFile, ".error"), []byte(convErr.Error()+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing error of %s: %w", javaFile, err)
		}
		return fmt.Errorf("converting %s: %w", javaFile, convErr)
	}
	if err := os.WriteFile(csFile, []byte(result), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", csFile, err)
	}
	return nil
}

// collectJavaFiles lists the .java files below dir in lexical order
func collectJavaFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.EqualFold(filepath.Ext(path), ".java") {
			files = append(files, path)
		}
		return nil
	})
	return files, err
}

// convertDirectory converts every java file below inputDir into the mirrored
// tree below outputDir using up to jobs goroutines. A failing file is logged
// and counted; it does not stop the other conversions.
func convertDirectory(ctx context.Context, opts *java.Options, inputDir, outputDir string, jobs int, overwrite bool) (batchResult, error) {
	var result batchResult
	files, err := collectJavaFiles(inputDir)
	if err != nil {
		return result, fmt.Errorf("listing %s: %w", inputDir, err)
	}

	var mu sync.Mutex
	count := func(field *int) {
		mu.Lock()
		defer mu.Unlock()
		*field++
	}

	g, gctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for _, javaFile := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			csFile, err := outputPath(inputDir, outputDir, javaFile)
			if err != nil {
				return err
			}
			if !overwrite {
				if _, err := os.Stat(csFile); err == nil {
					log.WithField("file", csFile).Info("output exists, skipping")
					count(&result.Skipped)
					return nil
				}
			}
			if err := os.MkdirAll(filepath.Dir(csFile), 0o755); err != nil {
				return fmt.Errorf("creating output directory for %s: %w", csFile, err)
			}
			if err := convertFile(opts.Clone(), javaFile, csFile); err != nil {
				log.WithField("file", javaFile).WithError(err).Error("conversion failed")
				count(&result.Failed)
				return nil
			}
			log.WithField("file", javaFile).Debug("converted")
			count(&result.Converted)
			return nil
		})
	}
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return result, err
	}
	return result, ctx.Err()
}
