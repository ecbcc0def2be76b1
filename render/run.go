// Package render implements "render" command: it builds selectors from
// definition files and outputs their canonical text.
package render

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	yaml "gopkg.in/yaml.v3"

	"cssb/common"
	"cssb/exchange"
	"cssb/selector"
	"cssb/sheet"
	"cssb/state"
)

type options struct {
	format    common.OutputFmt
	separator string
	failFast  bool
}

func Run(ctx context.Context, cmd *cli.Command) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("render")

	sources := cmd.Args().Slice()
	if len(sources) == 0 {
		return errors.New("no selector definitions have been specified")
	}

	opts := options{
		format:    env.Cfg.Render.Format,
		separator: env.Cfg.Render.Separator,
		failFast:  env.Cfg.Render.FailFast || cmd.Bool("fail-fast"),
	}
	if to := cmd.String("to"); len(to) > 0 {
		format, err := common.ParseOutputFmt(to)
		if err != nil {
			log.Warn("Unknown output format requested, using configured one", zap.Error(err), zap.Stringer("format", opts.format))
		} else {
			opts.format = format
		}
	}

	out := io.Writer(os.Stdout)
	if dst := cmd.String("output"); len(dst) > 0 {
		f, err := os.Create(dst)
		if err != nil {
			return fmt.Errorf("unable to create destination file '%s': %w", dst, err)
		}
		defer f.Close()
		out = f
	}

	log.Info("Processing starting", zap.Strings("sources", sources), zap.Stringer("format", opts.format))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, sources, out, opts, env.Builder(), log)
}

// process handles the rendering independently of CLI framework. Selectors
// from all sources are written together, sources which failed are reported
// in the returned error.
func process(ctx context.Context, sources []string, w io.Writer, opts options, b *selector.Builder, log *zap.Logger) error {
	var (
		all  = make([]sheet.Rendered, 0)
		errs error
	)
	for _, src := range sources {
		if err := ctx.Err(); err != nil {
			return err
		}

		entries, err := buildSheet(src, b)
		all = append(all, sheet.Render(entries)...)
		log.Debug("Selector definitions processed", zap.String("source", src), zap.Int("selectors", len(entries)))

		if err != nil {
			if opts.failFast {
				return err
			}
			log.Warn("Unable to process selector definitions", zap.String("source", src), zap.Error(err))
			errs = multierr.Append(errs, err)
		}
	}

	if err := write(w, all, opts); err != nil {
		return multierr.Append(errs, fmt.Errorf("unable to write rendered selectors: %w", err))
	}
	return errs
}

func buildSheet(src string, b *selector.Builder) ([]sheet.Entry, error) {
	sh, err := sheet.LoadFile(src)
	if err != nil {
		return nil, err
	}
	entries, err := sh.Build(b)
	if err != nil {
		return entries, fmt.Errorf("%s: %w", src, err)
	}
	return entries, nil
}

func write(w io.Writer, items []sheet.Rendered, opts options) error {
	switch opts.format {
	case common.OutputFmtJson:
		text, err := exchange.ToJSON(items)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, text)
		return err
	case common.OutputFmtYaml:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(items); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, it := range items {
			if _, err := fmt.Fprintf(w, "%s%s%s\n", it.Name, opts.separator, it.Selector); err != nil {
				return err
			}
		}
		return nil
	}
}
