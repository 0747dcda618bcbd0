// Package main is the entry point for otreewatch, a small demonstration of
// the observable tree: it watches a JSON or TOML config file and prints the
// old and new values for every subscribed path whenever the file changes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/dshills/otree"
	"github.com/dshills/otree/store/mapstore"
	"github.com/dshills/otree/watch"
)

type options struct {
	file     string
	paths    pathList
	debounce time.Duration
}

// pathList collects repeated -path flags.
type pathList []string

func (p *pathList) String() string {
	return strings.Join(*p, ",")
}

func (p *pathList) Set(value string) error {
	*p = append(*p, value)
	return nil
}

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()
	if opts.file == "" || len(opts.paths) == 0 {
		fmt.Fprintln(os.Stderr, "Usage: otreewatch -file config.json -path config/usb/enabled [-path ...]")
		return 2
	}

	dec, err := decoderFor(opts.file)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	tree := otree.New[any](mapstore.New())

	for _, p := range opts.paths {
		path := otree.Parse(p)
		sig := tree.ModificationSignal(path)
		if sig == nil {
			fmt.Fprintf(os.Stderr, "Error: empty path %q\n", p)
			return 2
		}
		name := path.String()
		conn := sig.Connect(func(oldValue, newValue any) {
			fmt.Printf("%s: %s -> %s\n", name, render(oldValue), render(newValue))
		})
		defer conn.Disconnect()
	}

	reloader := watch.NewReloader(opts.file, dec, tree,
		watch.WithDebounce(opts.debounce),
		watch.WithErrorHandler(func(err error) {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		}),
	)
	if err := reloader.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to watch %s: %v\n", opts.file, err)
		return 1
	}
	defer reloader.Close()

	// Wait for interrupt
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	<-signals

	return 0
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.file, "file", "", "config file to watch (.json or .toml)")
	flag.Var(&opts.paths, "path", "path to subscribe to (repeatable)")
	flag.DurationVar(&opts.debounce, "debounce", watch.DefaultDebounce, "delay before reloading after a change")
	flag.Parse()
	return opts
}

func decoderFor(file string) (watch.Decoder[any], error) {
	switch ext := filepath.Ext(file); ext {
	case ".json":
		return watch.JSONMap(), nil
	case ".toml":
		return watch.TOML(), nil
	default:
		return nil, fmt.Errorf("unsupported config format %q", ext)
	}
}

// render formats a tree value for one-line output.
func render(v any) string {
	if v == nil {
		return "<unset>"
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(data)
}
