package roster

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// FileFormat represents the supported roster file formats
type FileFormat int

const (
	FormatUnknown FileFormat = iota
	FormatTOML               // Human-editable roster
	FormatBinary             // msgpack roster for machine exchange
)

// DetectFormat picks the roster format from the file extension.
func DetectFormat(filename string) FileFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return FormatTOML
	case ".bin":
		return FormatBinary
	}
	return FormatUnknown
}

// Load reads a roster file, detecting the format from its extension.
func Load(filename string) (*Roster, error) {
	switch DetectFormat(filename) {
	case FormatTOML:
		return loadTOML(filename)
	case FormatBinary:
		return loadBinary(filename)
	}
	return nil, fmt.Errorf("unsupported roster file %s (expected .toml or .bin)", filename)
}

func loadTOML(filename string) (*Roster, error) {
	var r Roster
	if _, err := toml.DecodeFile(filename, &r); err != nil {
		return nil, fmt.Errorf("failed to parse roster %s: %w", filename, err)
	}
	validate(&r, filename)
	return &r, nil
}

func loadBinary(filename string) (*Roster, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read roster %s: %w", filename, err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("roster %s is empty", filename)
	}
	var r Roster
	if err := msgpack.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to decode roster %s: %w", filename, err)
	}
	validate(&r, filename)
	return &r, nil
}

// SaveBinary writes the roster in msgpack form.
func SaveBinary(r *Roster, filename string) error {
	data, err := msgpack.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to encode roster: %w", err)
	}
	return os.WriteFile(filename, data, 0644)
}

// validate warns about entries that produce degenerate or colliding
// suggestion labels. The roster is loaded as-is either way; precedence
// between colliding entries is the engine's concern.
func validate(r *Roster, filename string) {
	seen := make(map[string]bool, len(r.People))
	for _, p := range r.People {
		if p.Email == "" {
			log.Warnf("roster %s: person %q has no email", filename, p.FullName)
			continue
		}
		if seen[p.Email] {
			log.Warnf("roster %s: duplicate email %s", filename, p.Email)
		}
		seen[p.Email] = true
	}
	log.Debugf("roster %s loaded: %d streams, %d people", filename, len(r.Streams), len(r.People))
}
