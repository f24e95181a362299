package storage

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/dynarray/internal/trace"
)

var (
	ErrNotFound       = errors.New("storage: run not found")
	ErrUnknownBackend = errors.New("storage: unknown backend")
)

type RunMetadata struct {
	ID              string    `json:"id"`
	Timestamp       time.Time `json:"timestamp"`
	InitialCapacity int       `json:"initial_capacity"`
	GrowStep        int       `json:"grow_step"`
	Samples         int       `json:"samples"`
	FinalCapacity   int       `json:"final_capacity"`
	Reallocs        int       `json:"reallocs"`
	Utilization     float64   `json:"utilization"`
}

// Store persists growth traces.
type Store interface {
	Init() error
	Save(tr *trace.Trace) (string, error)
	List() ([]RunMetadata, error)
	Load(runID string) (*RunMetadata, error)
	LoadSamples(runID string) ([]trace.Sample, error)
	Close() error
}

// Open returns the store for backend ("file" or "bolt") rooted at dir.
// The store is initialized.
func Open(backend, dir string) (Store, error) {
	var st Store
	switch backend {
	case "file", "":
		st = NewFileStore(dir)
	case "bolt":
		st = NewBoltStore(dir)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, backend)
	}
	if err := st.Init(); err != nil {
		return nil, err
	}
	return st, nil
}

func newMetadata(tr *trace.Trace) RunMetadata {
	return RunMetadata{
		ID:              fmt.Sprintf("%dx%d_%s", tr.InitialCapacity, tr.GrowStep, uuid.NewString()),
		Timestamp:       time.Now(),
		InitialCapacity: tr.InitialCapacity,
		GrowStep:        tr.GrowStep,
		Samples:         len(tr.Samples),
		FinalCapacity:   tr.FinalCapacity(),
		Reallocs:        tr.Reallocs,
		Utilization:     tr.Utilization(),
	}
}

func sortRuns(runs []RunMetadata) {
	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
}
