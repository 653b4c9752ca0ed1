// Package uploader copies local CSV files into object storage, one
// object per file, key = prefix + base filename.
package uploader

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"

	"github.com/Richard-Gidi/Ridewise/internal/files/filesystem"
	"github.com/Richard-Gidi/Ridewise/internal/storage"
	"github.com/Richard-Gidi/Ridewise/pkg/ridewise"
)

// FileResult records the outcome for one source file.
type FileResult struct {
	Name string
	Key  string
	Size int64
	Err  error
}

// Report summarizes one upload run.
type Report struct {
	RunID    uuid.UUID
	Files    []FileResult
	Uploaded int
	Failed   int
}

// Uploader copies CSV files from a local directory into an ObjectStore.
type Uploader struct {
	fs    filesystem.Provider
	store storage.ObjectStore
	log   ridewise.Logger
}

// New creates an Uploader.
func New(fs filesystem.Provider, store storage.ObjectStore, log ridewise.Logger) *Uploader {
	return &Uploader{fs: fs, store: store, log: log}
}

// Upload transfers every *.csv file directly inside dir (non-recursive)
// to the store under prefix + basename, overwriting existing objects.
//
// A file that fails to read or transfer is recorded and skipped; the
// remaining files still upload. When any file failed, the returned
// error wraps ridewise.ErrUploadFailed and aggregates the per-file
// causes. The report is returned in both cases.
func (u *Uploader) Upload(ctx context.Context, dir, prefix string) (*Report, error) {
	info, err := u.fs.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("source directory %q: %w", dir, ridewise.ErrSourceDirNotFound)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %q is not a directory: %w", dir, ridewise.ErrSourceDirNotFound)
	}

	entries, err := u.fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing source directory %q: %w", dir, err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	report := &Report{RunID: uuid.New()}
	var errs *multierror.Error

	for _, name := range names {
		result := FileResult{Name: name, Key: prefix + name}

		content, err := u.fs.ReadFile(filepath.Join(dir, name))
		if err == nil {
			result.Size = int64(len(content))
			err = u.store.Put(ctx, result.Key, content)
		}

		if err != nil {
			result.Err = err
			report.Failed++
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", name, err))
			u.log.Error("uploading %s: %v", name, err)
		} else {
			report.Uploaded++
			u.log.Info("Uploaded %s to %s", name, result.Key)
		}

		report.Files = append(report.Files, result)

		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}

	u.log.Info("Upload complete: %d uploaded, %d failed", report.Uploaded, report.Failed)

	if err := errs.ErrorOrNil(); err != nil {
		return report, fmt.Errorf("%w: %v", ridewise.ErrUploadFailed, err)
	}
	return report, nil
}
