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
	"bytes"
	"context"
	"errors"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"testing"
)

func TestForEach_ResultsDoNotDependOnNumberOfJobs(t *testing.T) {
	lists, err := SliceOf(Ints[int32](), Between(0, 5))
	if err != nil {
		t.Fatalf("failed to create generator: %v", err)
	}

	collect := func(jobs int) [][]int32 {
		const count = 40
		res := make([][]int32, count)
		var mutex sync.Mutex
		cfg := SampleConfig{Count: count, Jobs: jobs, Seed: 42}
		err := ForEach(context.Background(), lists, cfg, func(i int, value []int32) error {
			mutex.Lock()
			defer mutex.Unlock()
			res[i] = value
			return nil
		})
		if err != nil {
			t.Fatalf("sampling failed: %v", err)
		}
		return res
	}

	sequential := collect(1)
	parallel := collect(8)
	for i := range sequential {
		if !slices.Equal(sequential[i], parallel[i]) {
			t.Errorf("example %d differs: %v vs %v", i, sequential[i], parallel[i])
		}
	}
}

func TestForEach_StopsOnConsumerError(t *testing.T) {
	errStop := errors.New("stop")
	err := ForEach(context.Background(), Just(1), SampleConfig{Count: 100, Jobs: 2}, func(i int, _ int) error {
		if i == 3 {
			return errStop
		}
		return nil
	})
	if !errors.Is(err, errStop) {
		t.Errorf("consumer error not returned, got %v", err)
	}
}

func TestForEach_ReportsGenerationErrors(t *testing.T) {
	never := Filter(Just(1), func(int) bool { return false })
	err := ForEach(context.Background(), never, SampleConfig{Count: 3, Jobs: 1}, func(int, int) error {
		t.Errorf("no value should be consumed")
		return nil
	})
	if !errors.Is(err, ErrUnsatisfiable) {
		t.Errorf("generation error not returned, got %v", err)
	}
}

func TestForEach_HonorsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := ForEach(ctx, Just(1), SampleConfig{Count: 10}, func(int, int) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected cancellation error, got %v", err)
	}
}

func TestForEach_LogsSummary(t *testing.T) {
	var buffer bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buffer, nil))
	err := ForEach(context.Background(), Just(1), SampleConfig{Count: 5, Jobs: 2, Logger: logger}, func(int, int) error { return nil })
	if err != nil {
		t.Fatalf("sampling failed: %v", err)
	}
	out := buffer.String()
	if !strings.Contains(out, "sampling finished") || !strings.Contains(out, "\"examples\":5") {
		t.Errorf("missing summary in log output: %s", out)
	}
}
