package config

import (
	"fmt"
	"os"

	"github.com/bgrewell/peggle-kit/pkg/pak"
)

// LoadStagesFile reads and parses a stages.cfg file from disk.
func LoadStagesFile(path string) (*StageConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseStages(string(data))
}

// LoadStagesFromArchive reads and parses a stages.cfg entry out of an
// already-open archive.
func LoadStagesFromArchive(a *pak.Archive, name string) (*StageConfig, error) {
	e, err := a.Get(name)
	if err != nil {
		return nil, err
	}
	return ParseStages(string(e.Payload))
}

// SaveStagesFile renders and writes a StageConfig to disk.
func SaveStagesFile(cfg *StageConfig, path string) error {
	return os.WriteFile(path, []byte(EmitStages(cfg)), 0o644)
}

// SaveStagesToArchive renders a StageConfig and stores it in an archive,
// replacing any existing entry under that name.
func SaveStagesToArchive(a *pak.Archive, name string, cfg *StageConfig) error {
	return upsert(a, name, []byte(EmitStages(cfg)))
}

// LoadTrophiesFile reads and parses a trophy.cfg file from disk.
func LoadTrophiesFile(path string) (*TrophyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseTrophies(string(data))
}

// LoadTrophiesFromArchive reads and parses a trophy.cfg entry out of an
// already-open archive.
func LoadTrophiesFromArchive(a *pak.Archive, name string) (*TrophyConfig, error) {
	e, err := a.Get(name)
	if err != nil {
		return nil, err
	}
	return ParseTrophies(string(e.Payload))
}

// SaveTrophiesFile renders and writes a TrophyConfig to disk.
func SaveTrophiesFile(cfg *TrophyConfig, path string) error {
	return os.WriteFile(path, []byte(EmitTrophies(cfg)), 0o644)
}

// SaveTrophiesToArchive renders a TrophyConfig and stores it in an archive.
func SaveTrophiesToArchive(a *pak.Archive, name string, cfg *TrophyConfig) error {
	return upsert(a, name, []byte(EmitTrophies(cfg)))
}

// LoadCharactersFile reads and parses a characters.cfg file from disk.
func LoadCharactersFile(path string) (*CharacterConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return ParseCharacters(string(data))
}

// LoadCharactersFromArchive reads and parses a characters.cfg entry out of
// an already-open archive.
func LoadCharactersFromArchive(a *pak.Archive, name string) (*CharacterConfig, error) {
	e, err := a.Get(name)
	if err != nil {
		return nil, err
	}
	return ParseCharacters(string(e.Payload))
}

// SaveCharactersFile renders and writes a CharacterConfig to disk.
func SaveCharactersFile(cfg *CharacterConfig, path string) error {
	return os.WriteFile(path, []byte(EmitCharacters(cfg)), 0o644)
}

// SaveCharactersToArchive renders a CharacterConfig and stores it in an archive.
func SaveCharactersToArchive(a *pak.Archive, name string, cfg *CharacterConfig) error {
	return upsert(a, name, []byte(EmitCharacters(cfg)))
}

func upsert(a *pak.Archive, name string, data []byte) error {
	if a.Has(name) {
		return a.Update(name, data)
	}
	return a.Add(name, data)
}
