package main_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terokarvinen/hoto"
	main "github.com/terokarvinen/hoto/cmd/hoto"
	"github.com/terokarvinen/hoto/mock"
)

func testDeps(sources hoto.SourceReader, renamer hoto.Renamer) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	return &main.Dependencies{
		Ctx:     context.Background(),
		Stdout:  stdout,
		Stderr:  stderr,
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Sources: sources,
		Renamer: renamer,
	}, stdout, stderr
}

func TestCLI_Run_RenameUsesPlanAndApply(t *testing.T) {
	t.Parallel()

	sources := &mock.SourceReader{
		ReadFn: func(path string) (*hoto.Source, error) {
			return &hoto.Source{
				Path: path,
				Kind: hoto.KindMarkup,
				HTML: "<h1>Tero Karvinen</h1>",
			}, nil
		},
	}

	var appliedDryRun *bool
	renamer := &mock.Renamer{
		PlanFn: func(src *hoto.Source, formatted string) (*hoto.RenamePlan, error) {
			assert.Equal(t, "Tero Karvinen.html", formatted)
			return &hoto.RenamePlan{OldPath: src.Path, NewPath: "Tero Karvinen.html"}, nil
		},
		ApplyFn: func(plan *hoto.RenamePlan, dryRun bool) error {
			appliedDryRun = &dryRun
			return nil
		},
	}

	deps, stdout, _ := testDeps(sources, renamer)
	cli := &main.CLI{
		Files:  []string{"index.html"},
		Format: "{h1}.{ext}",
		Rename: true,
	}

	err := cli.Run(deps)

	require.NoError(t, err)
	require.NotNil(t, appliedDryRun, "Apply must be called")
	assert.False(t, *appliedDryRun)
	assert.Contains(t, stdout.String(), "Tero Karvinen.html")
}

func TestCLI_Run_NoActionForcesDryRun(t *testing.T) {
	t.Parallel()

	sources := &mock.SourceReader{
		ReadFn: func(path string) (*hoto.Source, error) {
			return &hoto.Source{Path: path, Kind: hoto.KindMarkup, HTML: "<h1>x</h1>"}, nil
		},
	}
	var appliedDryRun *bool
	renamer := &mock.Renamer{
		PlanFn: func(src *hoto.Source, formatted string) (*hoto.RenamePlan, error) {
			return &hoto.RenamePlan{OldPath: src.Path, NewPath: "x.html"}, nil
		},
		ApplyFn: func(plan *hoto.RenamePlan, dryRun bool) error {
			appliedDryRun = &dryRun
			return nil
		},
	}

	deps, _, _ := testDeps(sources, renamer)
	cli := &main.CLI{
		Files:    []string{"index.html"},
		Format:   "{h1}.{ext}",
		Rename:   true,
		NoAction: true,
	}

	err := cli.Run(deps)

	require.NoError(t, err)
	require.NotNil(t, appliedDryRun)
	assert.True(t, *appliedDryRun)
}

func TestCLI_Run_PrintOnlyNeverTouchesTheRenamer(t *testing.T) {
	t.Parallel()

	sources := &mock.SourceReader{
		ReadFn: func(path string) (*hoto.Source, error) {
			return &hoto.Source{Path: path, Kind: hoto.KindMarkup, HTML: "<h1>Tero Karvinen</h1>"}, nil
		},
	}
	renamer := &mock.Renamer{
		PlanFn: func(*hoto.Source, string) (*hoto.RenamePlan, error) {
			t.Fatal("Plan must not be called without --rename")
			return nil, nil
		},
		ApplyFn: func(*hoto.RenamePlan, bool) error {
			t.Fatal("Apply must not be called without --rename")
			return nil
		},
	}

	deps, stdout, _ := testDeps(sources, renamer)
	cli := &main.CLI{Files: []string{"index.html"}, Format: "{h1}.{ext}"}

	err := cli.Run(deps)

	require.NoError(t, err)
	assert.Equal(t, "Tero Karvinen.html\n", stdout.String())
}

func TestCLI_Run_UndefinedVariableFailsTheFile(t *testing.T) {
	t.Parallel()

	sources := &mock.SourceReader{
		ReadFn: func(path string) (*hoto.Source, error) {
			return &hoto.Source{Path: path, Kind: hoto.KindMarkup, HTML: "<p>no heading here</p>"}, nil
		},
	}

	deps, stdout, stderr := testDeps(sources, &mock.Renamer{})
	cli := &main.CLI{Files: []string{"bare.html"}, Format: "{h1}.{ext}"}

	err := cli.Run(deps)

	require.Error(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "h1")
}

func TestCLI_Run_ReadErrorsDoNotStopTheBatch(t *testing.T) {
	t.Parallel()

	sources := &mock.SourceReader{
		ReadFn: func(path string) (*hoto.Source, error) {
			if path == "bad.html" {
				return nil, hoto.Errorf(hoto.ENOTFOUND, "%q does not exist", path)
			}
			return &hoto.Source{Path: path, Kind: hoto.KindMarkup, HTML: "<h1>ok</h1>"}, nil
		},
	}

	deps, stdout, stderr := testDeps(sources, &mock.Renamer{})
	cli := &main.CLI{Files: []string{"bad.html", "good.html"}, Format: "{h1}"}

	err := cli.Run(deps)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 of 2")
	assert.Equal(t, "ok\n", stdout.String())
	assert.Contains(t, stderr.String(), "bad.html")
}
