// Copyright (c) 2024 Fantom Foundation
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at fantom.foundation/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

package gen

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/dsnet/golib/unitconv"
	"golang.org/x/sync/errgroup"
	"pgregory.net/rand"
)

// SampleConfig configures the parallel sampling of ForEach.
type SampleConfig struct {
	// Count is the number of examples to draw.
	Count int
	// Jobs is the number of examples drawn and consumed simultaneously. If
	// not positive, the number of CPUs is used.
	Jobs int
	// Seed makes runs reproducible: example i is drawn from a random source
	// seeded with (Seed, i), independent of the order examples are processed.
	Seed uint64
	// Logger receives progress reports. If nil, nothing is logged.
	Logger *slog.Logger
	// ProgressInterval is the period of progress reports. If not positive,
	// five seconds are used.
	ProgressInterval time.Duration
}

// ForEach draws cfg.Count independent examples from g on parallel goroutines
// and passes each of them to consume together with its index. The first
// error, either from drawing or consuming an example, stops the run and is
// returned. Since examples do not share a random source, consume sees the
// same values for the same seed in every run.
func ForEach[T any](ctx context.Context, g Generator[T], cfg SampleConfig, consume func(index int, value T) error) error {
	jobs := cfg.Jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	interval := cfg.ProgressInterval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var counter atomic.Int64
	report := func(msg string, start, now time.Time) {
		elapsed := now.Sub(start)
		rate := 0.0
		if elapsed > 0 {
			rate = float64(counter.Load()) / elapsed.Seconds()
		}
		logger.Info(msg,
			slog.Int64("examples", counter.Load()),
			slog.Int("total", cfg.Count),
			slog.String("rate", unitconv.FormatPrefix(rate, unitconv.SI, 0)+"/s"),
			slog.Duration("elapsed", elapsed),
		)
	}

	start := time.Now()
	done := make(chan struct{})
	printerDone := make(chan struct{})
	go func() {
		defer close(printerDone)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case now := <-ticker.C:
				report("sampling in progress", start, now)
			}
		}
	}()

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i := 0; i < cfg.Count; i++ {
		if groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}
			value, err := Draw(g, rand.New(cfg.Seed, uint64(i)))
			if err != nil {
				return fmt.Errorf("failed to draw example %d: %w", i, err)
			}
			counter.Add(1)
			return consume(i, value)
		})
	}
	err := group.Wait()

	close(done)
	<-printerDone

	if err != nil {
		logger.Error("sampling aborted", slog.Int64("examples", counter.Load()), slog.Any("error", err))
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	report("sampling finished", start, time.Now())
	return nil
}
