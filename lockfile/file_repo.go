package lockfile

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-yaml"
)

// lockfileYAML is the on-disk YAML shape of a lockfile.
type lockfileYAML struct {
	Generated   time.Time                 `yaml:"generated"`
	Version     int                       `yaml:"lockfile_version"`
	Activations map[string]activationYAML `yaml:"activations"`
}

type activationYAML struct {
	Modes       []string `yaml:"modes,omitempty"`
	RequestedBy []string `yaml:"requested_by,omitempty"`
	Constraint  string   `yaml:"constraint,omitempty"`
	Resolved    string   `yaml:"resolved,omitempty"`
	Digest      string   `yaml:"sha256"`
}

func toYAML(l *Lockfile) *lockfileYAML {
	out := &lockfileYAML{
		Generated:   l.Generated,
		Version:     l.Version,
		Activations: make(map[string]activationYAML, len(l.Activations)),
	}
	for name, lock := range l.Activations {
		out.Activations[name] = activationYAML{
			Modes:       lock.Modes,
			RequestedBy: lock.RequestedBy,
			Constraint:  lock.Constraint,
			Resolved:    lock.Resolved,
			Digest:      lock.Digest,
		}
	}
	return out
}

func (y *lockfileYAML) toEntity() *Lockfile {
	out := &Lockfile{
		Generated:   y.Generated,
		Version:     y.Version,
		Activations: make(map[string]ActivationLock, len(y.Activations)),
	}
	for name, lock := range y.Activations {
		out.Activations[name] = ActivationLock{
			Subsystem:   name,
			Modes:       lock.Modes,
			RequestedBy: lock.RequestedBy,
			Constraint:  lock.Constraint,
			Resolved:    lock.Resolved,
			Digest:      lock.Digest,
		}
	}
	return out
}

// FileRepository loads and saves lockfiles on the local filesystem.
type FileRepository struct{}

// NewFileRepository creates a new FileRepository.
func NewFileRepository() *FileRepository {
	return &FileRepository{}
}

// Load reads a lockfile from path. A missing file loads as nil without
// error; a present but invalid lockfile is an error.
func (r *FileRepository) Load(path string) (*Lockfile, error) {
	dir := filepath.Dir(path)
	base := filepath.Base(path)

	root, err := os.OpenRoot(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening directory %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.Open(base)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening lockfile %q: %w", base, err)
	}
	defer func() { _ = file.Close() }()

	var out lockfileYAML
	if err := yaml.NewDecoder(file).Decode(&out); err != nil {
		return nil, fmt.Errorf("decoding lockfile YAML: %w", err)
	}

	lock := out.toEntity()
	if err := lock.Validate(); err != nil {
		return nil, fmt.Errorf("invalid lockfile: %w", err)
	}
	return lock, nil
}

// Save writes a lockfile to path, creating parent directories as needed.
func (r *FileRepository) Save(lock *Lockfile, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("creating directory %q: %w", dir, err)
	}

	root, err := os.OpenRoot(dir)
	if err != nil {
		return fmt.Errorf("opening directory for write %q: %w", dir, err)
	}
	defer func() { _ = root.Close() }()

	file, err := root.OpenFile(filepath.Base(path), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating lockfile: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := yaml.NewEncoder(file)
	defer func() { _ = encoder.Close() }()

	if err := encoder.Encode(toYAML(lock)); err != nil {
		return fmt.Errorf("encoding lockfile: %w", err)
	}
	return nil
}

// Exists reports whether a lockfile exists at path.
func (r *FileRepository) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}
