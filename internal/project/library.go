package project

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/piwi3910/mixcalc/internal/model"
)

// DefaultLibraryPath returns the default file path for the reference library.
func DefaultLibraryPath() string {
	return filepath.Join(DefaultConfigDir(), "library.json")
}

// SaveLibrary writes the chemical catalog and coverage table to a JSON file.
func SaveLibrary(path string, lib model.Library) error {
	return writeJSON(path, lib)
}

// LoadLibrary reads the reference library from the specified JSON file.
// If the file does not exist, it returns the default library and saves it.
func LoadLibrary(path string) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			lib := model.DefaultLibrary()
			if saveErr := SaveLibrary(path, lib); saveErr != nil {
				return lib, saveErr
			}
			return lib, nil
		}
		return model.Library{}, err
	}
	var lib model.Library
	if err := json.Unmarshal(data, &lib); err != nil {
		return model.Library{}, fmt.Errorf("failed to parse library: %w", err)
	}
	return lib, nil
}

// LoadOrCreateLibrary loads the library from the default path.
// If the file does not exist, it creates one with the built-in data.
func LoadOrCreateLibrary() (model.Library, string, error) {
	path := DefaultLibraryPath()
	lib, err := LoadLibrary(path)
	return lib, path, err
}

// ImportLibrary merges chemicals and surfaces from a JSON file into the
// existing library. Duplicate IDs are skipped.
func ImportLibrary(path string, existing model.Library) (model.Library, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return existing, err
	}
	var imported model.Library
	if err := json.Unmarshal(data, &imported); err != nil {
		return existing, fmt.Errorf("failed to parse library: %w", err)
	}

	chemIDs := make(map[string]bool, len(existing.Chemicals))
	for _, c := range existing.Chemicals {
		chemIDs[c.ID] = true
	}
	surfaceIDs := make(map[string]bool, len(existing.Surfaces))
	for _, s := range existing.Surfaces {
		surfaceIDs[s.ID] = true
	}

	for _, c := range imported.Chemicals {
		if !chemIDs[c.ID] {
			existing.Chemicals = append(existing.Chemicals, c)
			chemIDs[c.ID] = true
		}
	}

	for _, s := range imported.Surfaces {
		if !surfaceIDs[s.ID] {
			existing.Surfaces = append(existing.Surfaces, s)
			surfaceIDs[s.ID] = true
		}
	}

	return existing, nil
}
