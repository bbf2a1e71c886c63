// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package collegium

import (
	"context"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// BatchResult pairs a query with its answer or failure.
type BatchResult struct {
	Query  string
	Answer *Answer
	Err    error
}

// BatchProcessor answers many queries concurrently over a shared
// worker pool. The lexicon is read-only and each query carries its own
// pipeline state, so queries never contend with each other.
type BatchProcessor struct {
	assistant *Assistant
	pool      *ants.Pool
	logger    *slog.Logger
}

// BatchOption configures a BatchProcessor.
type BatchOption func(*BatchProcessor) error

// WithPoolSize sets the worker pool size.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) BatchOption {
	return func(p *BatchProcessor) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchLogger sets a custom logger.
// Default is slog.Default().
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(p *BatchProcessor) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewBatchProcessor creates a batch processor over the assistant.
func NewBatchProcessor(assistant *Assistant, opts ...BatchOption) (*BatchProcessor, error) {
	if assistant == nil {
		return nil, ErrAssistantRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &BatchProcessor{
		assistant: assistant,
		pool:      pool,
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			p.Release()
			return nil, err
		}
	}

	return p, nil
}

// Process answers all queries and returns results in input order.
// Per-query failures are reported in the result, not returned.
func (p *BatchProcessor) Process(ctx context.Context, queries []string) []BatchResult {
	results := make([]BatchResult, len(queries))

	var wg sync.WaitGroup
	for i, query := range queries {
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			answer, err := p.assistant.Answer(ctx, query)
			if err != nil {
				p.logger.Error("error answering query", "query", query, "err", err)
			}
			results[i] = BatchResult{Query: query, Answer: answer, Err: err}
		})
		if err != nil {
			wg.Done()
			results[i] = BatchResult{Query: query, Err: err}
		}
	}
	wg.Wait()

	return results
}

// Release releases the worker pool.
// The processor should not be used after calling Release.
func (p *BatchProcessor) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
