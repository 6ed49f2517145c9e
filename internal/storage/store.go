package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/san-kum/qwell/internal/solver"
	"github.com/san-kum/qwell/internal/wells"
)

const (
	metadataFile = "metadata.json"
	spectrumFile = "spectrum.csv"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Timestamp time.Time       `json:"timestamp"`
	Structure wells.Structure `json:"structure"`
	Basis     int             `json:"basis"`
	L         float64         `json:"l"`
	H         float64         `json:"h"`
	Energies  []float64       `json:"energies"`
}

// Save writes the metadata and the coefficient table of result under a new
// run id and returns the id.
func (s *Store) Save(name string, st wells.Structure, result *solver.Result) (string, error) {
	runID := fmt.Sprintf("%s_%s", name, uuid.NewString()[:8])
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Name:      name,
		Timestamp: time.Now(),
		Structure: st,
		Basis:     result.Basis,
		L:         result.L,
		H:         result.H,
		Energies:  result.Energies,
	}

	metaFile, err := os.Create(filepath.Join(runDir, metadataFile))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, spectrumFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)

	header := []string{"state", "energy"}
	for n := 1; n <= result.Basis; n++ {
		header = append(header, fmt.Sprintf("c%d", n))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for k, e := range result.Energies {
		row := []string{strconv.Itoa(k), strconv.FormatFloat(e, 'g', -1, 64)}
		for _, c := range result.Vectors[k] {
			row = append(row, strconv.FormatFloat(c, 'g', -1, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return runID, nil
}

// List returns the metadata of every readable run, oldest first.
func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadResult rebuilds the solver result of a saved run from its metadata
// and coefficient table.
func (s *Store) LoadResult(runID string) (*solver.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(filepath.Join(s.baseDir, runID, spectrumFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	res := &solver.Result{
		Energies: make([]float64, 0, len(meta.Energies)),
		Vectors:  make([][]float64, 0, len(meta.Energies)),
		L:        meta.L,
		H:        meta.H,
		Basis:    meta.Basis,
	}

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		e, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", spectrumFile, i, err)
		}

		vec := make([]float64, 0, len(record)-2)
		for j := 2; j < len(record); j++ {
			c, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: %w", spectrumFile, i, err)
			}
			vec = append(vec, c)
		}
		res.Energies = append(res.Energies, e)
		res.Vectors = append(res.Vectors, vec)
	}

	return res, nil
}
