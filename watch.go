package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/heshanpadmasiri/javaCSharp/java"
	log "github.com/sirupsen/logrus"
)

// watchDirectory reconverts java files below inputDir whenever they are
// written or created, until ctx is cancelled. New directories are watched
// as they appear.
func watchDirectory(ctx context.Context, opts *java.Options, inputDir, outputDir string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := addRecursive(watcher, inputDir); err != nil {
		return err
	}
	log.WithField("dir", inputDir).Info("watching for changes")

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			handleEvent(watcher, opts, inputDir, outputDir, ev)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.WithError(err).Warn("watcher error")
		}
	}
}

func handleEvent(watcher *fsnotify.Watcher, opts *java.Options, inputDir, outputDir string, ev fsnotify.Event) {
	if ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
		return
	}
	if ev.Op&fsnotify.Create != 0 {
		if info, err := os.Stat(ev.Name); err == nil && info.IsDir() {
			if err := addRecursive(watcher, ev.Name); err != nil {
				log.WithField("dir", ev.Name).WithError(err).Warn("watching new directory failed")
			}
			return
		}
	}
	if !strings.EqualFold(filepath.Ext(ev.Name), ".java") {
		return
	}
	csFile, err := outputPath(inputDir, outputDir, ev.Name)
	if err != nil {
		log.WithField("file", ev.Name).WithError(err).Error("resolving output failed")
		return
	}
	if err := os.MkdirAll(filepath.Dir(csFile), 0o755); err != nil {
		log.WithField("file", csFile).WithError(err).Error("creating output directory failed")
		return
	}
	if err := convertFile(opts.Clone(), ev.Name, csFile); err != nil {
		log.WithField("file", ev.Name).WithError(err).Error("conversion failed")
		return
	}
	log.WithField("file", ev.Name).Info("converted")
}

func addRecursive(watcher *fsnotify.Watcher, dir string) error {
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("watching %s: %w", path, err)
		}
		return nil
	})
}
