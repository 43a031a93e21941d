// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"seqgen/internal/cli"
	"seqgen/internal/cmdutil"
	"seqgen/internal/export"
	"seqgen/internal/sequence"
	"seqgen/internal/trays"
	"seqgen/internal/version"
	"seqgen/internal/writers"
)

const name = "seqgen"

// Exit codes.
const (
	ExitOK          = 0
	ExitAborted     = 1
	ExitUsage       = 2
	ExitIO          = 3
	ExitInterrupted = 130
)

// RunContext parses argv, builds the run sequence and exports it. Answers to
// the directory-reuse question are read from stdin.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	flush := func(code int) int {
		if e := outw.Flush(); writers.IsBrokenPipe(e) {
			return code
		} else if e != nil {
			_, _ = fmt.Fprintln(stderr, e)
			return ExitIO
		}
		return code
	}

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)
	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(ExitOK)
		case errors.Is(err, cli.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flush(ExitOK)
		}
		_, _ = fmt.Fprintf(stderr, "error: %v\n", err)
		_, _ = fmt.Fprintf(stderr, "run '%s -h' for usage\n", name)
		return ExitUsage
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(ExitOK)
	}

	log := cmdutil.NewLogger(stderr, opts.Quiet, opts.Verbose)
	defer func() { _ = log.Sync() }()

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info("sample order seed", zap.Int64("seed", seed))

	m, err := trays.New(opts.Start, opts.End,
		trays.WithLayout(opts.Layout()),
		trays.WithStart(opts.StartSlot),
		trays.WithBlank(opts.BlankSlot),
		trays.WithStandard(opts.StandardSlot),
		trays.WithRand(rand.New(rand.NewSource(seed))),
	)
	if err != nil {
		log.Error("cannot place samples", zap.Error(err))
		return ExitUsage
	}
	log.Debug("samples placed",
		zap.Int("samples", m.Len()),
		zap.Stringer("first_slot", m.Slots()[m.StartIndex()]),
		zap.Stringer("blank", m.Blank()),
		zap.Stringer("standard", m.Standard()))

	seq, err := sequence.Build(m, opts.SequenceConfig())
	if err != nil {
		log.Error("cannot build sequence", zap.Error(err))
		return ExitUsage
	}
	c := seq.Counts()
	log.Info("sequence built",
		zap.Int("injections", seq.Len()),
		zap.Int("samples", c.Samples),
		zap.Int("blanks", c.Blanks),
		zap.Int("standards", c.Standards))

	if opts.PrintMap {
		if err := writers.WriteTrayMap(outw, m); err != nil {
			return flush(ioFailure(log, err))
		}
	}
	if opts.JSON {
		if err := writers.Write(writers.FormatJSON, outw, seq); err != nil {
			return flush(ioFailure(log, err))
		}
	}
	if code := flush(ExitOK); code != ExitOK {
		return code
	}
	if ctx.Err() != nil {
		return ExitInterrupted
	}
	if opts.DryRun {
		log.Info("dry run, no files written")
		return ExitOK
	}

	return exportFiles(log, opts, seq, stdin, stderr)
}

func exportFiles(log *zap.Logger, opts cli.Options, seq *sequence.Sequence, stdin io.Reader, stderr io.Writer) int {
	var confirm export.Confirmer = export.AlwaysYes
	if !opts.Yes {
		confirm = export.Prompt(stdin, stderr)
	}
	if err := export.PrepareDir(opts.Dir, confirm); err != nil {
		if errors.Is(err, export.ErrAborted) {
			log.Warn("goodbye", zap.String("dir", opts.Dir))
			return ExitAborted
		}
		return ioFailure(log, err)
	}

	files := []struct{ path, format string }{
		{opts.MSPath(), writers.FormatMS},
		{opts.LCPath(), writers.FormatLC},
	}
	if err := export.CheckAbsent(opts.MSPath(), opts.LCPath()); err != nil {
		log.Error("refusing to overwrite", zap.Error(err))
		return ExitUsage
	}
	for _, f := range files {
		f := f
		err := export.WriteFile(f.path, func(w io.Writer) error { return writers.Write(f.format, w, seq) })
		if err != nil {
			return ioFailure(log, err)
		}
		log.Info("wrote sequence file", zap.String("format", f.format), zap.String("path", f.path))
	}
	return ExitOK
}

func ioFailure(log *zap.Logger, err error) int {
	log.Error("output failed", zap.Error(err))
	return ExitIO
}

// Run is RunContext without cancellation.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
