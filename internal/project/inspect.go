package project

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
)

// FileInfo describes a script selected for packaging.
type FileInfo struct {
	Path    string
	Name    string
	Size    int64
	ModTime time.Time

	InRepo bool
	Branch string
	Commit string
	Dirty  bool
}

// Inspect stats path and, when it sits in a git work tree, records the
// checked-out branch, the short HEAD hash and whether the tree has changes.
// Repository problems are not errors; InRepo is simply false.
func Inspect(path string) (FileInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return FileInfo{}, fmt.Errorf("resolve %s: %w", path, err)
	}
	st, err := os.Stat(abs)
	if err != nil {
		return FileInfo{}, fmt.Errorf("inspect %s: %w", path, err)
	}
	if st.IsDir() {
		return FileInfo{}, fmt.Errorf("inspect %s: is a directory", path)
	}

	info := FileInfo{
		Path:    abs,
		Name:    st.Name(),
		Size:    st.Size(),
		ModTime: st.ModTime(),
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return info, nil
	}
	info.InRepo = true

	head, err := repo.Head()
	if err == nil {
		info.Branch = head.Name().Short()
		info.Commit = head.Hash().String()[:7]
	}

	wt, err := repo.Worktree()
	if err != nil {
		return info, nil
	}
	status, err := wt.Status()
	if err == nil {
		info.Dirty = !status.IsClean()
	}
	return info, nil
}

// IsNotExist reports whether err came from a missing file.
func IsNotExist(err error) bool {
	return errors.Is(err, os.ErrNotExist)
}

// HumanSize formats n bytes with binary units.
func HumanSize(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGTPE"[exp])
}
