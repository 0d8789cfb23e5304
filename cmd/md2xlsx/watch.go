package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// defaultDebounce is the delay between a change event and reconversion.
// Editors often emit several events per save; the delay coalesces them
// into one run.
const defaultDebounce = 300 * time.Millisecond

// ErrInvalidDebounce indicates a bad --debounce value.
var ErrInvalidDebounce = errors.New("invalid debounce duration")

// resolveDebounce parses the debounce flag, applying the default when unset.
func resolveDebounce(flagValue string) (time.Duration, error) {
	if flagValue == "" {
		return defaultDebounce, nil
	}

	d, err := time.ParseDuration(flagValue)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDebounce, flagValue)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%w: %v (must be positive)", ErrInvalidDebounce, d)
	}
	return d, nil
}

// relevantEvent reports whether a filesystem event should trigger a
// reconversion. Chmod-only events and non-markdown files are ignored.
func relevantEvent(ev fsnotify.Event, nameFilter string) bool {
	if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
		return false
	}

	name := filepath.Base(ev.Name)
	if nameFilter != "" {
		return name == nameFilter
	}

	ext := filepath.Ext(name)
	return ext == ".md" || ext == ".markdown"
}

// runWatch converts once, then reconverts whenever the watched path
// changes. Conversion errors are reported but do not stop the loop; it
// runs until ctx is canceled.
func runWatch(ctx context.Context, positionalArgs []string, flags *watchFlags, env *Environment) error {
	debounce, err := resolveDebounce(flags.debounce)
	if err != nil {
		return err
	}

	cfg, err := loadConfigWithEnv(flags.common.config, env.Config)
	if err != nil {
		return err
	}
	applyEnvConfig(loadEnvConfig(), cfg)

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}

	info, err := os.Stat(inputPath)
	if err != nil {
		return err
	}

	// Watch the parent directory for single files: editors replace files
	// on save, which drops inode-level watches.
	watchDir := inputPath
	var nameFilter string
	if !info.IsDir() {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return err
		}
		watchDir = filepath.Dir(inputPath)
		nameFilter = filepath.Base(inputPath)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(watchDir); err != nil {
		return fmt.Errorf("watching %s: %w", watchDir, err)
	}

	convertOnce := func() {
		if err := runConvert(ctx, positionalArgs, &flags.convertFlags, env); err != nil {
			fmt.Fprintf(env.Stderr, "Error: %v%s\n", err, hintFor(err))
		}
	}

	// Initial conversion before the first change
	convertOnce()

	if !flags.common.quiet {
		fmt.Fprintf(env.Stdout, "Watching %s (debounce %v)\n", inputPath, debounce)
	}

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevantEvent(ev, nameFilter) {
				continue
			}
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)

		case <-timer.C:
			convertOnce()

		case werr, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(env.Stderr, "watch error: %v\n", werr)
		}
	}
}
