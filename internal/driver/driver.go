// Package driver implements the end-to-end sample run: create a named
// container, append a deterministic sequence of items, and report the
// count if it strictly exceeds a threshold.
//
// The run is a straight-line sequence with no retries or concurrency.
// Output formatting is left to the caller; Run only computes the Result.
package driver

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/shinji-kodama/item-sample/internal/config"
	"github.com/shinji-kodama/item-sample/internal/model"
)

// FallbackMessage is reported when the count does not exceed the threshold.
const FallbackMessage = "Not enough items"

// Result is the outcome of a single run.
type Result struct {
	// RunID uniquely identifies this run in JSON output and verbose logs.
	RunID string

	// Container is the populated container.
	Container *model.Container

	// Threshold is the value the count was compared against.
	Threshold int

	// Exceeded reports whether Container.Count() > Threshold.
	Exceeded bool

	// Message is the single line the run prints.
	Message string
}

// ItemName builds the name of the i-th item: prefix followed by the
// decimal index, e.g. ItemName("item_", 3) == "item_3".
func ItemName(prefix string, i int) string {
	return prefix + strconv.Itoa(i)
}

// Populate appends n items named ItemName(prefix, 0) through
// ItemName(prefix, n-1). A non-positive n appends nothing.
func Populate(c *model.Container, prefix string, n int) {
	for i := 0; i < n; i++ {
		c.Append(ItemName(prefix, i))
	}
}

// Message returns the line reported for a given count. The comparison is
// strict: a count equal to the threshold yields FallbackMessage.
func Message(count, threshold int) string {
	if count > threshold {
		return fmt.Sprintf("We have %d items", count)
	}
	return FallbackMessage
}

// Run executes the sample run described by cfg.
// The only error source is an invalid configuration.
func Run(cfg config.Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := model.NewContainer(cfg.Name)
	Populate(c, cfg.ItemPrefix, cfg.Items)

	count := c.Count()
	return &Result{
		RunID:     uuid.NewString(),
		Container: c,
		Threshold: cfg.Threshold,
		Exceeded:  count > cfg.Threshold,
		Message:   Message(count, cfg.Threshold),
	}, nil
}
