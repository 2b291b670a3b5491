package utils

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// DirStatus reports whether a directory is present and can hold new files.
type DirStatus struct {
	Exists   bool
	Writable bool
	Err      error
}

// FileExists reports whether path exists on fs.
func FileExists(fs afero.Fs, path string) bool {
	ok, err := afero.Exists(fs, path)
	return err == nil && ok
}

// PrepareDir creates dir on fs when missing and probes it for write access.
func PrepareDir(fs afero.Fs, dir string) DirStatus {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		log.Warnf("Cannot create directory %s: %v", dir, err)
		return DirStatus{Err: err}
	}

	probe, err := afero.TempFile(fs, dir, ".triesearch-*")
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dir, err)
		return DirStatus{Exists: true, Err: err}
	}
	name := probe.Name()
	probe.Close()
	_ = fs.Remove(name)

	return DirStatus{Exists: true, Writable: true}
}

// ExecutableDir returns the directory holding the running binary.
func ExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}

// ReadTOML decodes the TOML file at path into v.
func ReadTOML(fs afero.Fs, path string, v any) error {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return err
	}
	if err := toml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("invalid TOML in %s: %w", path, err)
	}
	return nil
}

// WriteTOML encodes v and writes it to path, replacing any existing file.
func WriteTOML(fs afero.Fs, path string, v any) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return afero.WriteFile(fs, path, buf.Bytes(), 0o644)
}
