/*
DESCRIPTION
  rpeg is a command-line tool for compressing plain-PPM images to the rpeg
  lossy format and decompressing them back.

LICENSE
  Copyright (C) 2024 the Australian Ocean Lab (AusOcean). All Rights Reserved.

  The Software and all intellectual property rights associated
  therewith, including but not limited to copyrights, trademarks,
  patents, and trade secrets, are and will remain the exclusive
  property of the Australian Ocean Lab (AusOcean).
*/

// Package rpeg is a command-line tool for compressing plain-PPM images to
// the rpeg lossy format and decompressing them back.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"

	rpeg "github.com/ausocean/rpeg/codec/rpeg"
	"github.com/ausocean/utils/logging"
)

// Logging configuration.
const (
	logMaxSize   = 10 // MB
	logMaxBackup = 3
	logMaxAge    = 28 // days
	logVerbosity = logging.Info
	logSuppress  = true
)

const pkg = "rpeg: "

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "compress":
		runCompress(os.Args[2:])
	case "decompress":
		runDecompress(os.Args[2:])
	default:
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rpeg <compress|decompress> [-in file] [-logfile path]")
}

func runCompress(args []string) {
	fs := flag.NewFlagSet("compress", flag.ExitOnError)
	in := fs.String("in", "", "input plain-PPM path (stdin if omitted)")
	logFile := fs.String("logfile", "", "rotating log file path (stderr if omitted)")
	fs.Parse(args)

	l := newLogger(*logFile)

	src, closeSrc, err := openInput(*in)
	if err != nil {
		l.Error("could not open input", "error", err)
		os.Exit(1)
	}
	defer closeSrc()

	enc := rpeg.NewEncoder(os.Stdout)
	n, err := enc.Write(src)
	if err != nil {
		l.Error("compression failed", "error", err)
		os.Exit(1)
	}
	l.Info("compressed image", "bytes", n)
}

func runDecompress(args []string) {
	fs := flag.NewFlagSet("decompress", flag.ExitOnError)
	in := fs.String("in", "", "input rpeg path (stdin if omitted)")
	logFile := fs.String("logfile", "", "rotating log file path (stderr if omitted)")
	fs.Parse(args)

	l := newLogger(*logFile)

	src, closeSrc, err := openInput(*in)
	if err != nil {
		l.Error("could not open input", "error", err)
		os.Exit(1)
	}
	defer closeSrc()

	dec := rpeg.NewDecoder(os.Stdout)
	n, err := dec.Write(src)
	if err != nil {
		l.Error("decompression failed", "error", err)
		os.Exit(1)
	}
	l.Info("decompressed image", "bytes", n)
}

// newLogger returns a logging.Logger that writes to path if given, rotating
// via lumberjack, and to stderr otherwise.
func newLogger(path string) logging.Logger {
	var w io.Writer = os.Stderr
	if path != "" {
		w = &lumberjack.Logger{
			Filename:   path,
			MaxSize:    logMaxSize,
			MaxBackups: logMaxBackup,
			MaxAge:     logMaxAge,
		}
	}
	return logging.New(logVerbosity, w, logSuppress)
}

// openInput opens path for reading, or returns os.Stdin if path is empty.
// The returned close function is always safe to call.
func openInput(path string) (io.Reader, func() error, error) {
	if path == "" {
		return os.Stdin, func() error { return nil }, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, func() error { return nil }, fmt.Errorf("%s%w", pkg, err)
	}
	return f, f.Close, nil
}
