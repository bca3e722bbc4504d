package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/terokarvinen/hoto"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Files []string `arg:"" optional:"" help:"HTML and MAFF files."`

	Format   string `short:"f" default:"{h1}.{ext}" help:"Output format with {variable} placeholders. See --suggest for available variables."`
	Suggest  bool   `short:"s" help:"Suggest tags and metadata for files, showing both variables and matches."`
	Rename   bool   `help:"Rename files to the formatted name."`
	NoAction bool   `short:"n" help:"Do not modify any files, only show what would happen."`
	Verbose  bool   `short:"v" help:"Verbose output."`
	Debug    bool   `short:"d" help:"Debug output."`
}

// Dependencies holds all services and configuration for command
// execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Sources hoto.SourceReader
	Renamer hoto.Renamer
}
