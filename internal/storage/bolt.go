package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/boltdb/bolt"

	"github.com/san-kum/dynarray/internal/trace"
)

var (
	runsBucket    = []byte("runs")
	samplesBucket = []byte("samples")
)

// BoltStore keeps every run in a single bolt database, metadata and
// samples in separate buckets keyed by run id.
type BoltStore struct {
	baseDir string
	db      *bolt.DB
}

func NewBoltStore(baseDir string) *BoltStore {
	return &BoltStore{baseDir: baseDir}
}

func (s *BoltStore) Path() string {
	return filepath.Join(s.baseDir, "runs.db")
}

func (s *BoltStore) Init() error {
	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return err
	}
	db, err := bolt.Open(s.Path(), 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return err
	}
	err = db.Update(func(tx *bolt.Tx) error {
		for _, name := range [][]byte{runsBucket, samplesBucket} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return err
	}
	s.db = db
	return nil
}

func (s *BoltStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *BoltStore) Save(tr *trace.Trace) (string, error) {
	meta := newMetadata(tr)
	metaData, err := json.Marshal(meta)
	if err != nil {
		return "", err
	}
	sampleData, err := json.Marshal(tr.Samples)
	if err != nil {
		return "", err
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		key := []byte(meta.ID)
		if err := tx.Bucket(runsBucket).Put(key, metaData); err != nil {
			return err
		}
		return tx.Bucket(samplesBucket).Put(key, sampleData)
	})
	if err != nil {
		return "", err
	}
	return meta.ID, nil
}

func (s *BoltStore) List() ([]RunMetadata, error) {
	runs := make([]RunMetadata, 0)
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var meta RunMetadata
			if err := json.Unmarshal(v, &meta); err != nil {
				return fmt.Errorf("storage: run %s: %w", k, err)
			}
			runs = append(runs, meta)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	sortRuns(runs)
	return runs, nil
}

func (s *BoltStore) Load(runID string) (*RunMetadata, error) {
	var meta RunMetadata
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(runID))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return json.Unmarshal(v, &meta)
	})
	if err != nil {
		return nil, err
	}
	return &meta, nil
}

func (s *BoltStore) LoadSamples(runID string) ([]trace.Sample, error) {
	var samples []trace.Sample
	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(samplesBucket).Get([]byte(runID))
		if v == nil {
			return fmt.Errorf("%w: %s", ErrNotFound, runID)
		}
		return json.Unmarshal(v, &samples)
	})
	if err != nil {
		return nil, err
	}
	if samples == nil {
		samples = []trace.Sample{}
	}
	return samples, nil
}
