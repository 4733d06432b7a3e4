package hashmap

import (
	"context"

	"hashbox/boxes"
	"hashbox/lib/hash"
	"hashbox/lib/step"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

type Result struct {
	Checksum uint64              `json:"checksum"`
	Power    uint64              `json:"power"`
	Entries  int                 `json:"entries"`
	Digest   uint64              `json:"digest"`
	Stats    boxes.StatsSnapshot `json:"stats"`

	Table *boxes.Table `json:"-"`
}

// Run computes the checksum of tokens and then replays them against a new
// table. Every token is parsed before the table is touched, so a malformed
// token fails the whole run without producing a partial result.
func Run(ctx context.Context, tokens []string, logger *zap.Logger) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	tbl, checksum, err := Replay(ctx, tokens, logger)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Checksum: checksum,
		Power:    tbl.Power(),
		Entries:  tbl.Len(),
		Digest:   tbl.Digest(),
		Stats:    tbl.Stats(),
		Table:    tbl,
	}
	logger.Info("replayed tokens",
		zap.Int("tokens", len(tokens)),
		zap.Uint64("checksum", res.Checksum),
		zap.Uint64("power", res.Power),
		zap.Int("entries", res.Entries),
		zap.Uint64("digest", res.Digest),
	)
	return res, nil
}

// Replay is like Run but returns the final table for callers that need more
// than the summary
func Replay(ctx context.Context, tokens []string, logger *zap.Logger) (*boxes.Table, uint64, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	checksum := hash.Checksum(tokens)
	steps, err := step.ParseAll(tokens)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse operations")
	}
	tbl := boxes.New()
	for i, s := range steps {
		if err := ctx.Err(); err != nil {
			return nil, 0, errors.Wrapf(err, "stopped after %d of %d operations", i, len(steps))
		}
		tbl.Apply(s)
		if ce := logger.Check(zap.DebugLevel, "applied operation"); ce != nil {
			ce.Write(
				zap.Int("index", i),
				zap.Stringer("kind", s.Kind),
				zap.String("label", s.Label),
				zap.Uint64("value", s.Value),
				zap.Uint8("bucket", hash.Sum(s.Label)),
			)
		}
	}
	return tbl, checksum, nil
}
