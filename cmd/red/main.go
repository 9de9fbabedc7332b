// Command red is a terminal file viewer built on the rut console
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/debug"

	"go.uber.org/zap"

	"github.com/lixenwraith/rut/terminal"
)

var (
	debugFlag   = flag.Bool("debug", false, "Write debug logs to logs/red.log")
	themeFlag   = flag.String("theme", "", "Path to a TOML theme file")
	backendFlag = flag.String("backend", "", "Console backend: native or tcell (default from RUT_BACKEND)")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the viewer crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(os.Stdout)
			// Use \r\n for raw mode compatibility to avoid zig-zag output
			fmt.Fprintf(os.Stderr, "\r\n\x1b[31mRED CRASHED: %v\x1b[0m\r\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "Failure: %v\n", err)
		os.Exit(1)
	}
}

func run(path string) error {
	log, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	defer log.Sync()

	theme, err := LoadTheme(*themeFlag)
	if err != nil {
		return err
	}

	buf := newScratchBuffer()
	if path != "" {
		if buf, err = loadBuffer(path, theme.Buffer.TabWidth); err != nil {
			return err
		}
	}

	opts := []terminal.Option{terminal.WithLogger(log)}
	if *backendFlag != "" {
		opts = append(opts, terminal.WithBackend(*backendFlag))
	}
	console, err := terminal.Open(opts...)
	if err != nil {
		return fmt.Errorf("failed to open console: %w", err)
	}
	log.Debug("console ready", zap.String("buffer", buf.name), zap.Int("lines", buf.lineCount()))

	runErr := newApp(console, theme, buf, log).run()
	// Restore before the caller prints anything
	if err := console.Close(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
