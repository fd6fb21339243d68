package browse

import (
	"context"
	"io"
	"io/fs"
	"path/filepath"
	"syscall"

	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/spf13/afero"
)

// DefaultPageSize is used when no page size is given.
const DefaultPageSize = 50

// Service reads directories one page at a time. It keeps no state between
// calls: everything needed to resume is in the position handed back to the
// client.
type Service struct {
	fs        afero.Fs
	formatter *Formatter
	exclude   *ExcludeFilter
	pageSize  int
}

func NewService(fsys afero.Fs, formatter *Formatter, exclude *ExcludeFilter, pageSize int) *Service {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Service{
		fs:        fsys,
		formatter: formatter,
		exclude:   exclude,
		pageSize:  pageSize,
	}
}

// PageSize is the configured number of real entries per page.
func (s *Service) PageSize() int {
	return s.pageSize
}

// ReadPage lists up to pageSize entries of dir, starting at the entry with
// the given enumeration offset.
//
// Entries are enumerated lazily in filesystem order. An entry whose metadata
// can't be read (usually because it was removed mid-scan) is dropped without
// taking a slot, so it neither fills the page nor shifts later offsets.
// Directories come before files within the page. The first page starts with
// the BACK item, which never counts toward the page size or the next
// position.
//
// Offsets aren't stable if the directory changes between calls: entries added
// or removed before the position shift everything after them, so a paging
// sequence over a changing directory can skip or repeat entries.
func (s *Service) ReadPage(ctx context.Context, dir string, position int64, pageSize int) (*Page, error) {
	if pageSize <= 0 {
		pageSize = s.pageSize
	}
	if position < 0 {
		position = 0
	}
	dir = filepath.Clean(dir)

	log := logger.FromContext(ctx).Data(logger.Data{"dir": dir, "position": position})

	info, err := s.fs.Stat(dir)
	if err != nil {
		return nil, classifyError(dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Wrapf(ErrDirectoryNotFound, "%s is not a directory", dir)
	}

	f, err := s.fs.Open(dir)
	if err != nil {
		return nil, classifyError(dir, err)
	}
	defer f.Close()

	var (
		dirs, files []Item
		counter     int64
		collected   int
		skipped     int
		hasMore     bool
	)

scan:
	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.WithStack(err)
		}

		names, readErr := f.Readdirnames(pageSize)
		for _, name := range names {
			if err := ctx.Err(); err != nil {
				return nil, errors.WithStack(err)
			}
			if s.exclude.Excludes(name) {
				continue
			}

			entry, err := s.stat(dir, name)
			if err != nil {
				skipped++
				log.Debug("skipping entry", logger.Data{"name": name, "error": err.Error()})
				continue
			}

			if counter < position {
				counter++
				continue
			}

			if collected == pageSize {
				hasMore = true
				break scan
			}

			item := s.formatter.Format(entry)
			if entry.IsDir {
				dirs = append(dirs, item)
			} else {
				files = append(files, item)
			}
			collected++
			counter++
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				break
			}
			return nil, classifyError(dir, readErr)
		}
		if len(names) == 0 {
			break
		}
	}

	items := make([]Item, 0, len(dirs)+len(files)+1)
	if position == 0 {
		items = append(items, s.formatter.FormatUp(dir))
	}
	items = append(items, dirs...)
	items = append(items, files...)

	log.Debug("read directory page", logger.Data{"items": collected, "skipped": skipped, "has_more": hasMore})

	return &Page{
		Items:        items,
		NextPosition: position + int64(collected),
		HasMore:      hasMore,
	}, nil
}

func (s *Service) stat(dir, name string) (Entry, error) {
	path := filepath.Join(dir, name)
	info, err := s.fs.Stat(path)
	if err != nil {
		return Entry{}, errors.WithStack(err)
	}

	entry := Entry{
		Name:         name,
		AbsolutePath: path,
		IsDir:        info.IsDir(),
	}
	if !entry.IsDir {
		entry.Size = info.Size()
	}
	return entry, nil
}

func classifyError(dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, syscall.ENOTDIR):
		return errors.Wrapf(ErrDirectoryNotFound, "%s", dir)
	case errors.Is(err, fs.ErrPermission):
		return errors.Wrapf(ErrDirectoryAccess, "%s", dir)
	default:
		return errors.Wrapf(err, "failed to read %s", dir)
	}
}
