// Package batch runs the analysis of many documents concurrently.
//
// Every document is analyzed by its own worker with no state shared with the other workers.
// Workers send their results to a single collector through a channel; the collector returns
// once every worker has finished. Each dispatched document yields exactly one [Outcome]:
// either a report or an explicit failure.
package batch

import (
	"errors"
	"fmt"

	"github.com/Drolfothesgnir/htmlscan/analyzer"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ErrWorkerPanic marks the failure of a worker which panicked during the analysis.
var ErrWorkerPanic = errors.New("analysis worker panicked")

// Outcome is the result of one document's analysis: the Report on success, or Err on failure.
type Outcome struct {
	DocumentID string
	Report     analyzer.Report
	Err        error
}

// Failed reports whether the document could not be analyzed.
func (o Outcome) Failed() bool {
	return o.Err != nil
}

// Dispatcher fans the documents out to the workers and collects their outcomes.
type Dispatcher struct {
	analyzer *analyzer.Analyzer

	// maxWorkers caps the number of the simultaneously running workers, non-positive means no cap.
	maxWorkers int
}

// NewDispatcher creates a Dispatcher running a with at most maxWorkers workers at once.
// A non-positive maxWorkers starts every worker immediately.
func NewDispatcher(a *analyzer.Analyzer, maxWorkers int) *Dispatcher {
	return &Dispatcher{
		analyzer:   a,
		maxWorkers: maxWorkers,
	}
}

// Dispatch analyzes every source in its own worker and blocks until all of them finished.
//
// The returned slice has exactly one Outcome per source, in the order of completion.
// There is no timeout and no cancellation.
func (d *Dispatcher) Dispatch(sources []Source) []Outcome {
	results := make(chan Outcome, len(sources))

	var g errgroup.Group
	if d.maxWorkers > 0 {
		g.SetLimit(d.maxWorkers)
	}

	for _, src := range sources {
		g.Go(func() error {
			results <- d.work(src)
			return nil
		})
	}

	// workers never return errors, failures travel as outcomes
	_ = g.Wait()
	close(results)

	outcomes := make([]Outcome, 0, len(sources))
	for out := range results {
		if out.Failed() {
			log.Warn().Err(out.Err).Str("document_id", out.DocumentID).Msg("document analysis failed")
		}
		outcomes = append(outcomes, out)
	}

	return outcomes
}

// DispatchDocuments is a shortcut for dispatching already loaded documents.
func (d *Dispatcher) DispatchDocuments(docs []analyzer.Document) []Outcome {
	return d.Dispatch(FromDocuments(docs))
}

// work runs the whole pipeline for a single source. It always returns an Outcome,
// turning load errors and panics into failures.
func (d *Dispatcher) work(src Source) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out.Report = analyzer.Report{}
			out.Err = fmt.Errorf("%w: %v", ErrWorkerPanic, r)
		}
	}()

	out.DocumentID = src.ID()

	text, err := src.Load()
	if err != nil {
		out.Err = err
		return
	}

	out.Report = d.analyzer.Analyze(analyzer.Document{ID: out.DocumentID, Text: text})
	return
}
