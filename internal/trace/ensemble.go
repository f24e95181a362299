package trace

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Params names one array configuration to trace.
type Params struct {
	Capacity int
	GrowStep int
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d", p.Capacity, p.GrowStep)
}

// ParseParams reads "<capacity>x<step>", e.g. "5x3".
func ParseParams(s string) (Params, error) {
	c, g, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return Params{}, fmt.Errorf("trace: %q is not <capacity>x<step>", s)
	}
	capacity, err := strconv.Atoi(c)
	if err != nil {
		return Params{}, fmt.Errorf("trace: bad capacity in %q: %w", s, err)
	}
	step, err := strconv.Atoi(g)
	if err != nil {
		return Params{}, fmt.Errorf("trace: bad step in %q: %w", s, err)
	}
	return Params{Capacity: capacity, GrowStep: step}, nil
}

// Ensemble records one trace per configuration, each on its own goroutine
// and its own array.
type Ensemble struct {
	params []Params
	adds   int
}

func NewEnsemble(params []Params, adds int) *Ensemble {
	return &Ensemble{params: params, adds: adds}
}

// Run returns traces in the order the params were given.
func (e *Ensemble) Run(ctx context.Context) ([]*Trace, error) {
	results := make([]*Trace, len(e.params))
	errs := make([]error, len(e.params))

	var wg sync.WaitGroup
	for i, p := range e.params {
		wg.Add(1)
		go func(idx int, p Params) {
			defer wg.Done()

			if err := ctx.Err(); err != nil {
				errs[idx] = err
				return
			}
			tr, err := Record(p.Capacity, p.GrowStep, e.adds)
			if err != nil {
				errs[idx] = fmt.Errorf("%s: %w", p, err)
				return
			}
			results[idx] = tr
		}(i, p)
	}

	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}

	return results, nil
}
