// Package manifest records what a pipeline run produced so exports and charts
// can be traced back to their input.
package manifest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/isacmj7/stroke-prediction-analysis/internal/utils"
)

const runFileName = "run.yaml"

// Artifact is one file produced by a run.
type Artifact struct {
	Kind string `yaml:"kind"` // "table" or "chart"
	Path string `yaml:"path"`
}

// Run is the persisted record of one pipeline execution.
type Run struct {
	ID            string     `yaml:"id"`
	Input         string     `yaml:"input"`
	LoadedRows    int        `yaml:"loaded_rows"`
	CleanRows     int        `yaml:"clean_rows"`
	TotalPatients int        `yaml:"total_patients"`
	StrokeCases   int        `yaml:"stroke_cases"`
	NoStrokeCases int        `yaml:"no_stroke_cases"`
	StrokeRate    float64    `yaml:"stroke_rate"`
	Artifacts     []Artifact `yaml:"artifacts"`
	CreatedAt     time.Time  `yaml:"created_at"`
}

// NewRun constructs an in-memory run record. Call Save to persist.
func NewRun(input string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Input:     input,
		CreatedAt: time.Now(),
	}
}

// AddArtifact appends a produced file to the run record.
func (r *Run) AddArtifact(kind, path string) {
	r.Artifacts = append(r.Artifacts, Artifact{Kind: kind, Path: path})
}

// Save writes run.yaml into dir using atomic write.
func (r *Run) Save(dir string) error {
	if dir == "" {
		return errors.New("manifest directory not set")
	}
	if err := utils.EnsureDir(dir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	data, err := yaml.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshal run: %w", err)
	}
	return utils.SafeWriteFile(filepath.Join(dir, runFileName), data)
}

// LoadRun reads a run.yaml from the provided directory.
func LoadRun(dir string) (*Run, error) {
	path := filepath.Join(dir, runFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read run: %w", err)
	}
	var r Run
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("parse run: %w", err)
	}
	return &r, nil
}
