package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/hashicorp/go-hclog"
)

// BackupKind tells how the previous settings file was preserved
type BackupKind int

const (
	BackupNone      BackupKind = iota // No previous file
	BackupOrdinary                    // Previous file parsed fine
	BackupCorrupted                   // Previous file could not be parsed
)

// String returns the tag used in backup file names
func (k BackupKind) String() string {
	switch k {
	case BackupOrdinary:
		return "backup"
	case BackupCorrupted:
		return "corrupted"
	default:
		return "none"
	}
}

// Result describes what a Write did
type Result struct {
	SettingsPath string
	BackupPath   string // Empty when Backup is BackupNone
	Backup       BackupKind
	ParseErr     error  // Why the previous file was treated as corrupted
	Data         []byte // Bytes written to SettingsPath
}

// Writer writes project identities into <root>/<Dir>/settings.json
type Writer struct {
	Dir    string
	Now    func() time.Time
	Logger hclog.Logger
}

// NewWriter returns a Writer for the given configuration directory name.
// An empty dir means DefaultDir; a nil logger discards output.
func NewWriter(dir string, logger hclog.Logger) *Writer {
	if dir == "" {
		dir = DefaultDir
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Writer{Dir: dir, Now: time.Now, Logger: logger}
}

// Path returns the settings file path for a workspace root
func (w *Writer) Path(root string) string {
	return filepath.Join(root, w.dir(), FileName)
}

func (w *Writer) dir() string {
	if w.Dir == "" {
		return DefaultDir
	}
	return w.Dir
}

func (w *Writer) logger() hclog.Logger {
	if w.Logger == nil {
		return hclog.NewNullLogger()
	}
	return w.Logger
}

func (w *Writer) now() time.Time {
	if w.Now == nil {
		return time.Now()
	}
	return w.Now()
}

// Write merges the identity for projectName and color into the workspace
// settings. A previous file is copied aside first; if it cannot be parsed
// it is copied under a "corrupted" name and the merge starts from nothing.
// Only filesystem failures are returned as errors.
func (w *Writer) Write(root, projectName, color string) (*Result, error) {
	log := w.logger()
	configDir := filepath.Join(root, w.dir())
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", configDir, err)
	}

	res := &Result{SettingsPath: filepath.Join(configDir, FileName)}

	base := Settings{}
	existing, err := os.ReadFile(res.SettingsPath)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debug("no existing settings", "path", res.SettingsPath)
	case err != nil:
		return nil, fmt.Errorf("reading %s: %w", res.SettingsPath, err)
	default:
		parsed, perr := Parse(existing)
		res.Backup = BackupOrdinary
		if perr != nil {
			res.Backup = BackupCorrupted
			res.ParseErr = perr
			log.Warn("existing settings are not valid JSON, starting fresh", "path", res.SettingsPath, "error", perr)
		} else {
			base = parsed
		}

		backup, err := w.backup(res.SettingsPath, res.Backup, existing)
		if err != nil {
			return nil, err
		}
		res.BackupPath = backup
		log.Info("saved previous settings", "backup", backup, "kind", res.Backup)
	}

	merged := Merge(base, Identity(projectName, color))
	data, err := Encode(merged)
	if err != nil {
		return nil, fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(res.SettingsPath, data, 0644); err != nil {
		return nil, fmt.Errorf("writing %s: %w", res.SettingsPath, err)
	}
	res.Data = data

	log.Info("wrote workspace settings", "path", res.SettingsPath, "project", projectName, "color", color)
	return res, nil
}

// backup writes data next to settingsPath as <name>.<kind>.<epoch-ms>.
// An existing file is never overwritten; the timestamp is bumped instead.
func (w *Writer) backup(settingsPath string, kind BackupKind, data []byte) (string, error) {
	ms := w.now().UnixMilli()
	for {
		path := settingsPath + "." + kind.String() + "." + strconv.FormatInt(ms, 10)
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
		if errors.Is(err, os.ErrExist) {
			ms++
			continue
		}
		if err != nil {
			return "", fmt.Errorf("creating backup %s: %w", path, err)
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return "", fmt.Errorf("writing backup %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			return "", fmt.Errorf("writing backup %s: %w", path, err)
		}
		return path, nil
	}
}
