package files

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	apperrors "checkna/internal/errors"
)

// FileInfo represents information about a discovered file
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time
}

// Discovery provides file discovery operations
type Discovery struct {
	basePath string
}

// NewDiscovery creates a new file discovery instance
func NewDiscovery(basePath string) *Discovery {
	return &Discovery{basePath: basePath}
}

// FindExcelFiles finds all Excel files in the specified directory
func (d *Discovery) FindExcelFiles(dir string) ([]FileInfo, error) {
	fullPath := d.resolve(dir)

	entries, err := os.ReadDir(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", fullPath, err)
	}

	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		name := entry.Name()
		if strings.HasSuffix(strings.ToLower(name), ".xlsx") ||
			strings.HasSuffix(strings.ToLower(name), ".xls") {
			info, err := entry.Info()
			if err != nil {
				continue
			}

			files = append(files, FileInfo{
				Path:    filepath.Join(fullPath, name),
				Name:    name,
				Size:    info.Size(),
				ModTime: info.ModTime(),
			})
		}
	}

	// Sort by modification time (oldest first)
	sort.Slice(files, func(i, j int) bool {
		return files[i].ModTime.Before(files[j].ModTime)
	})

	return files, nil
}

// FindTableFiles finds Excel files whose name contains the table identifier,
// matching the *<id>*.xlsx naming of the published BPS tables. Returns a
// missing-input error when nothing matches.
func (d *Discovery) FindTableFiles(dir, tableID string) ([]FileInfo, error) {
	files, err := d.FindExcelFiles(dir)
	if err != nil {
		return nil, err
	}

	var matched []FileInfo
	for _, file := range files {
		if strings.Contains(file.Name, tableID) {
			matched = append(matched, file)
		}
	}

	if len(matched) == 0 {
		return nil, apperrors.MissingInputError(tableID, d.resolve(dir))
	}

	return matched, nil
}

// FindTableFile returns the first file matching the table identifier.
// Name-sorted so repeated runs over the same directory pick the same file.
func (d *Discovery) FindTableFile(dir, tableID string) (FileInfo, error) {
	matched, err := d.FindTableFiles(dir, tableID)
	if err != nil {
		return FileInfo{}, err
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})

	return matched[0], nil
}

// resolve joins relative directories onto the discovery base path
func (d *Discovery) resolve(dir string) string {
	if filepath.IsAbs(dir) {
		return dir
	}
	return filepath.Join(d.basePath, dir)
}
