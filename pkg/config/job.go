package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/pelletier/go-toml/v2"

	"overlayr/pkg/models"
)

// LoadJobFile reads a TOML job file on top of the default job. Keys missing
// from the file keep their default values.
func LoadJobFile(path string) (models.OverlayJob, error) {
	file, err := os.Open(path)
	if err != nil {
		return models.OverlayJob{}, fmt.Errorf("open job file: %w", err)
	}
	defer file.Close()

	job, err := ReadJob(file)
	if err != nil {
		return models.OverlayJob{}, fmt.Errorf("job file %s: %w", path, err)
	}
	return job, nil
}

func ReadJob(r io.Reader) (models.OverlayJob, error) {
	job := models.DefaultOverlayJob()

	decoder := toml.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&job); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return models.OverlayJob{}, fmt.Errorf("unknown keys: %s", strict.String())
		}
		return models.OverlayJob{}, err
	}
	return job, nil
}

// WriteJobFile writes job as TOML to path, creating or truncating it.
func WriteJobFile(path string, job models.OverlayJob) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create job file: %w", err)
	}

	if err := WriteJob(file, job); err != nil {
		file.Close()
		return fmt.Errorf("job file %s: %w", path, err)
	}
	return file.Close()
}

// WriteJob encodes job as TOML.
func WriteJob(w io.Writer, job models.OverlayJob) error {
	return toml.NewEncoder(w).Encode(job)
}
