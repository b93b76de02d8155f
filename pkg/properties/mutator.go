package properties

import (
	"io/fs"
	"strings"

	"github.com/arthur-debert/sdcops/pkg/errors"
	"github.com/arthur-debert/sdcops/pkg/filesystem"
	"github.com/arthur-debert/sdcops/pkg/logging"
	"github.com/arthur-debert/sdcops/pkg/types"
	"github.com/rs/zerolog"
)

// Request describes one property update.
type Request struct {
	// Dest is the properties file to edit. It must be an existing regular file.
	Dest string
	// Parameter is the key to set, matched literally.
	Parameter string
	// Value is the desired value.
	Value string
	// Backup moves the original file aside before rewriting it.
	Backup bool
	// DryRun computes the result without touching the filesystem.
	DryRun bool
	// Diff attaches a unified diff of the change to the result.
	Diff bool
}

// Result reports the outcome of Apply.
type Result struct {
	Dest       string `json:"dest" yaml:"dest"`
	Parameter  string `json:"parameter" yaml:"parameter"`
	OldValue   string `json:"old_value" yaml:"old_value"`
	NewValue   string `json:"new_value" yaml:"new_value"`
	Changed    bool   `json:"changed" yaml:"changed"`
	DryRun     bool   `json:"dry_run" yaml:"dry_run"`
	BackupPath string `json:"backup_file,omitempty" yaml:"backup_file,omitempty"`
	Checksum   string `json:"checksum" yaml:"checksum"`
	Diff       string `json:"diff,omitempty" yaml:"diff,omitempty"`
}

// Options contains configuration for the mutator
type Options struct {
	// Filesystem operations interface for testing
	FS     types.FS
	Logger zerolog.Logger
}

// Mutator applies property updates to files on FS.
type Mutator struct {
	fs     types.FS
	logger zerolog.Logger
}

// New creates a new mutator instance
func New(opts Options) *Mutator {
	logger := opts.Logger
	if logger.GetLevel() == zerolog.Disabled {
		logger = logging.GetLogger("properties")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	return &Mutator{
		fs:     fsys,
		logger: logger,
	}
}

// Validate checks the request fields that do not need the filesystem.
func (r Request) Validate() error {
	if r.Dest == "" {
		return errors.New(errors.ErrInvalidInput, "destination file must be specified")
	}
	if r.Parameter == "" || r.Value == "" {
		return errors.New(errors.ErrInvalidInput, "both parameter name and value must be specified").
			WithDetail("parameter", r.Parameter)
	}
	if strings.ContainsAny(r.Parameter, "\r\n") || strings.ContainsAny(r.Value, "\r\n") {
		return errors.New(errors.ErrInvalidInput, "parameter name and value must be single-line").
			WithDetail("parameter", r.Parameter)
	}
	return nil
}

// Apply sets req.Parameter to req.Value in req.Dest.
//
// A key that appears on no line, active or commented, is a NOT_FOUND
// error and leaves the file untouched. Changed compares only the old and
// new values: a commented-out line whose value already equals req.Value is
// still rewritten as an active line, but is not reported as a change.
func (m *Mutator) Apply(req Request) (*Result, error) {
	logger, _ := logging.WithInvocation(m.logger)
	logger = logger.With().
		Str("dest", req.Dest).
		Str("parameter", req.Parameter).
		Bool("dryRun", req.DryRun).
		Logger()
	done := logging.LogOperationStart(logger, "properties.apply")
	defer done()

	if err := req.Validate(); err != nil {
		return nil, err
	}

	target, err := m.resolveDest(req.Dest)
	if err != nil {
		return nil, err
	}
	if target != req.Dest {
		logger = logger.With().Str("target", target).Logger()
	}

	info, err := m.statDest(target)
	if err != nil {
		return nil, err
	}

	data, err := m.fs.ReadFile(target)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", target)
	}
	original := string(data)

	updated, oldValue, found := rewrite(original, req.Parameter, req.Value)
	if !found {
		logger.Debug().Msg("Parameter not present in file")
		return nil, errors.Newf(errors.ErrNotFound, "parameter '%s' not found", req.Parameter).
			WithDetail("dest", req.Dest)
	}

	result := &Result{
		Dest:      req.Dest,
		Parameter: req.Parameter,
		OldValue:  oldValue,
		NewValue:  req.Value,
		Changed:   oldValue != req.Value,
		DryRun:    req.DryRun,
		Checksum:  Checksum([]byte(updated)),
	}

	if req.Diff {
		diff, err := unifiedDiff(req.Dest, original, updated)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrInternal, "cannot render diff")
		}
		result.Diff = diff
	}

	if req.DryRun {
		logger.Info().
			Bool("changed", result.Changed).
			Msg("Dry run - no changes made")
		return result, nil
	}

	if updated == original {
		logger.Debug().Msg("Content already up to date")
		return result, nil
	}

	if req.Backup {
		backupPath, err := makeBackup(m.fs, target)
		if err != nil {
			return nil, err
		}
		result.BackupPath = backupPath
		logger.Debug().Str("backup", backupPath).Msg("Original moved to backup")
	}

	if err := filesystem.AtomicWrite(m.fs, target, []byte(updated), info.Mode().Perm()); err != nil {
		if result.BackupPath != "" {
			if rbErr := m.fs.Rename(result.BackupPath, target); rbErr != nil {
				logger.Error().Err(rbErr).Str("backup", result.BackupPath).Msg("Failed to restore backup")
			}
		}
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write %s", req.Dest)
	}

	logger.Info().
		Str("oldValue", oldValue).
		Bool("changed", result.Changed).
		Msg("Property updated")

	return result, nil
}

// resolveDest follows symlinks so the file behind a link is rewritten in
// place. A dangling path is returned as is for statDest to report.
func (m *Mutator) resolveDest(dest string) (string, error) {
	target, err := filesystem.ResolveSymlinks(m.fs, dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return dest, nil
		}
		return "", errors.Wrapf(err, errors.ErrFileAccess, "cannot resolve %s", dest)
	}
	return target, nil
}

// statDest checks that dest is an existing regular file.
func (m *Mutator) statDest(dest string) (fs.FileInfo, error) {
	info, err := m.fs.Stat(dest)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Newf(errors.ErrInvalidInput, "file '%s' does not exist", dest)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot stat %s", dest)
	}
	if info.IsDir() {
		return nil, errors.Newf(errors.ErrInvalidInput, "destination '%s' should be a properties file, but is a directory", dest)
	}
	return info, nil
}
