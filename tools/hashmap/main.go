package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"hashbox/boxes"
	"hashbox/controller/hashmap"
	"hashbox/input"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type HashmapArgs struct {
	Input       string `arg:"positional,required" help:"file with comma separated operations" json:"input,omitempty"`
	Dev         bool   `arg:"--dev,env:HASHMAP_DEV" default:"false" help:"use the development logger" json:"dev,omitempty"`
	MetricsFile string `arg:"--metrics-file,env:HASHMAP_METRICS_FILE" help:"write table stats in prometheus text format to this file" json:"metrics_file,omitempty"`
}

func newLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	return config.Build(
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
	)
}

func run(ctx context.Context, args HashmapArgs, logger *zap.Logger, out io.Writer) error {
	tokens, err := input.ReadFile(args.Input)
	if err != nil {
		return err
	}
	logger.Debug("read input", zap.String("path", args.Input), zap.Int("tokens", len(tokens)))

	res, err := hashmap.Run(ctx, tokens, logger)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Sum of steps: %d\n", res.Checksum)
	fmt.Fprintf(out, "Power: %d\n", res.Power)

	if len(args.MetricsFile) > 0 {
		if err := writeMetrics(args.MetricsFile, res.Table, logger); err != nil {
			return err
		}
	}
	return nil
}

func writeMetrics(path string, tbl *boxes.Table, logger *zap.Logger) error {
	reg := prometheus.NewRegistry()
	reporter, err := boxes.NewReporter(reg)
	if err != nil {
		return errors.Wrap(err, "failed to register stats")
	}
	reporter.Report(tbl)
	if err := prometheus.WriteToTextfile(path, reg); err != nil {
		return errors.Wrapf(err, "failed to write metrics to %s", path)
	}
	logger.Info("wrote metrics", zap.String("path", path))
	return nil
}

func main() {
	var flags HashmapArgs
	arg.MustParse(&flags)

	logger, err := newLogger(flags.Dev)
	if err != nil {
		panic(fmt.Errorf("failed to construct logger: %v", err))
	}
	_ = zap.ReplaceGlobals(logger)
	defer logger.Sync()

	if err := run(context.Background(), flags, logger, os.Stdout); err != nil {
		logger.Error("hashmap failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}
