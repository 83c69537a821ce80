// Package batch runs many requests at once.
package batch

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/tidwall/jsonc"

	"github.com/favonia/cronkit/internal/action"
	"github.com/favonia/cronkit/internal/pp"
)

// ErrEmpty is returned by [Load] when there are no requests.
var ErrEmpty = errors.New("no requests")

// Load reads a JSON array of requests. Comments and trailing commas are allowed.
func Load(data []byte) ([]action.Request, error) {
	var reqs []action.Request
	if err := json.Unmarshal(jsonc.ToJSON(data), &reqs); err != nil {
		return nil, fmt.Errorf("failed to read requests: %w", err)
	}
	if len(reqs) == 0 {
		return nil, ErrEmpty
	}
	return reqs, nil
}

// Run dispatches all requests concurrently against the same reference instant.
// Results and log messages are in the order of the requests.
func Run(ppfmt pp.PP, reqs []action.Request, now time.Time) []action.Result {
	results := make([]action.Result, len(reqs))
	queues := make([]pp.QueuedPP, len(reqs))

	var wg sync.WaitGroup
	for i, req := range reqs {
		queues[i] = pp.NewQueued(ppfmt)
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = action.Dispatch(req, now)
			if !results[i].OK() {
				queues[i].Infof(pp.EmojiBatch, "Request #%d (%s) failed", i+1, req.Action)
			}
		}()
	}
	wg.Wait()

	for _, q := range queues {
		q.Flush()
	}
	return results
}
