// Command tag-dump-tool prints the raw structure of audio tags: every
// ID3v2 frame, FLAC comment, picture and skipped block, or the comments
// of a Vorbis/Opus comment packet. Useful to confirm what the codecs read.
//
// Usage:
//
//	tag-dump-tool [-config dump.toml] [-strict] [-show-binary] file...
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

const app = "tag-dump-tool"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(app, flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	logLevel := fs.String("log-level", "", "log level: debug|info|warn|error")
	strict := fs.Bool("strict", false, "fail on the first frame or block that does not decode")
	showBinary := fs.Bool("show-binary", false, "print binary payloads as hex")
	maxSize := fs.Int("max-decompressed-size", 0, "limit for inflated ID3v2 frames, in bytes")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <file>...\n", app)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fs.Usage()
		return 2
	}

	cfg := defaultConfig()
	if *configPath != "" {
		var err error
		if cfg, err = loadConfig(*configPath, cfg); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}

	// Flags given on the command line override the file.
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			level, err := zerolog.ParseLevel(*logLevel)
			if err != nil {
				flagErr = fmt.Errorf("parse -log-level: %w", err)
				return
			}
			cfg.LogLevel = level
		case "strict":
			cfg.Strict = *strict
		case "show-binary":
			cfg.ShowBinary = *showBinary
		case "max-decompressed-size":
			if *maxSize > 0 {
				cfg.MaxDecompressedSize = *maxSize
			}
		}
	})
	if flagErr != nil {
		fmt.Fprintf(stderr, "Error: %v\n", flagErr)
		return 2
	}

	logger := newLogger(stderr, app, cfg.LogLevel)
	o := cfg.options(logger)

	status := 0
	for _, path := range fs.Args() {
		if err := dumpFile(stdout, path, cfg, o); err != nil {
			logger.Error().Err(err).Str("path", path).Msg("dump failed")
			status = 1
		}
	}
	return status
}
