package main

import (
	"fmt"

	"github.com/terokarvinen/hoto"
	"github.com/terokarvinen/hoto/etree"
	"github.com/terokarvinen/hoto/goquery"
	"github.com/terokarvinen/hoto/template"
)

// Run processes each input file in order. A failure on one file is
// reported and does not stop the rest; the returned error reflects
// whether any file failed.
func (c *CLI) Run(deps *Dependencies) error {
	if len(c.Files) == 0 {
		fmt.Fprintln(deps.Stderr, "Usage: 'hoto foo.html'. Try --help.")
		return nil
	}

	tmpl, err := template.Parse(template.Prepare(c.Format))
	if err != nil {
		return err
	}

	failed := 0
	for _, path := range c.Files {
		if err := c.processFile(deps, tmpl, path); err != nil {
			fmt.Fprintf(deps.Stderr, "%s: %s\n", path, hoto.ErrorMessage(err))
			deps.Logger.Debug("processing failed", "path", path, "code", hoto.ErrorCode(err))
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(c.Files))
	}
	return nil
}

// processFile runs the full pipeline for one path: load, extract,
// format, then print, suggest, or rename.
func (c *CLI) processFile(deps *Dependencies, tmpl *template.Template, path string) error {
	deps.Logger.Info("processing file", "path", path)

	src, err := deps.Sources.Read(path)
	if err != nil {
		return err
	}

	ns := &hoto.Namespace{
		Source: src,
		Sel:    goquery.New(src.HTML),
		RDF:    etree.Parse(src.RDF),
	}

	if c.Suggest {
		c.printSuggestions(deps, path, ns)
		return nil
	}

	formatted, err := tmpl.Render(ns)
	if err != nil {
		return err
	}

	if !c.Rename {
		fmt.Fprintln(deps.Stdout, formatted)
		return nil
	}

	plan, err := deps.Renamer.Plan(src, formatted)
	if err != nil {
		return err
	}
	if c.NoAction {
		deps.Logger.Warn("simulating only, no files will be modified (--no-action)")
	}
	fmt.Fprintf(deps.Stdout, "%q ->\n\t%q\n", plan.OldPath, plan.NewPath)
	if err := deps.Renamer.Apply(plan, c.NoAction); err != nil {
		return err
	}
	if !c.NoAction {
		deps.Logger.Info("renamed file", "from", plan.OldPath, "to", plan.NewPath)
	}
	return nil
}

// printSuggestions lists every candidate variable with its extracted
// value, marking misses so they stay visible.
func (c *CLI) printSuggestions(deps *Dependencies, path string, ns *hoto.Namespace) {
	fmt.Fprintln(deps.Stdout, "##", path)
	for _, s := range hoto.Suggest(ns) {
		fmt.Fprintf(deps.Stdout, "%s - %s\n", s.Value, s.Variable)
	}
}
