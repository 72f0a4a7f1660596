package seisutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// EnsureDir creates the directory dst together with any missing parent
// components. Nothing is done if dst already exists.
func EnsureDir(dst string) error {
	if err := os.MkdirAll(dst, 0o755); err != nil {
		return errors.Wrapf(err, "seisutil: cannot create directory %q", dst)
	}
	return nil
}

// EnsureDirs creates all missing parent components of the target path dst.
// The leaf component itself is not created; use EnsureDir if the target is
// a directory.
func EnsureDirs(dst string) error {
	dir := filepath.Dir(dst)
	if dir == "" || dir == "." {
		return nil
	}
	return EnsureDir(dir)
}

// SelectFiles recursively collects files under the given entry paths and
// returns their absolute path names.
//
// If pattern is non-empty, only files whose path matches the pattern are
// included. If additionally selector is non-nil it is called with the
// values of the pattern's named capture groups and the file is included
// only when it returns true.
//
// To find all files ending in ".mseed" or ".msd":
//
//	SelectFiles(paths, `\.(mseed|msd)$`, nil)
//
// To find all files named "$year.$doy" for one particular year:
//
//	SelectFiles(paths, `(?P<year>\d{4})\.(?P<doy>\d{3})$`,
//		func(groups map[string]string) bool { return groups["year"] == "2009" })
func SelectFiles(paths []string, pattern string, selector func(groups map[string]string) bool) ([]string, error) {
	var re *regexp.Regexp
	if pattern != "" {
		var err error
		re, err = regexp.Compile(pattern)
		if err != nil {
			return nil, errors.Wrap(err, "seisutil: invalid file selection pattern")
		}
	}

	var good []string
	addFile := func(path string) error {
		if re != nil {
			m := re.FindStringSubmatch(path)
			if m == nil {
				logrus.Debugf("pattern %q does not match %q", pattern, path)
				return nil
			}
			groups := make(map[string]string)
			for i, name := range re.SubexpNames() {
				if i > 0 && name != "" {
					groups[name] = m[i]
				}
			}
			if selector != nil && !selector(groups) {
				return nil
			}
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return errors.Wrapf(err, "seisutil: cannot resolve %q", path)
		}
		good = append(good, abs)
		return nil
	}

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, errors.Wrapf(err, "seisutil: cannot stat %q", path)
		}
		if !info.IsDir() {
			if err := addFile(path); err != nil {
				return nil, err
			}
			continue
		}
		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			return addFile(p)
		})
		if err != nil {
			return nil, errors.Wrapf(err, "seisutil: cannot walk %q", path)
		}
	}
	return good, nil
}
