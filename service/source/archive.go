package source

import (
	"archive/tar"
	"compress/gzip"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// Archive writes gzip compressed tar of root (symlinks to the root itself are followed); entries are rooted at prefix and
// any file or directory whose base name matches an exclude pattern is skipped.
func Archive(writer io.Writer, root, prefix string, excludes []string) error {
	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return fmt.Errorf("failed to resolve %v: %w", root, err)
	}
	root = resolved
	gzipWriter := gzip.NewWriter(writer)
	tarWriter := tar.NewWriter(gzipWriter)
	err = filepath.WalkDir(root, func(location string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		relative, err := filepath.Rel(root, location)
		if err != nil {
			return err
		}
		if relative != "." && isExcluded(entry.Name(), excludes) {
			if entry.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		name := path.Join(prefix, filepath.ToSlash(relative))
		return addEntry(tarWriter, location, name, entry)
	})
	if err != nil {
		return fmt.Errorf("failed to archive %v: %w", root, err)
	}
	if err = tarWriter.Close(); err != nil {
		return err
	}
	return gzipWriter.Close()
}

func addEntry(writer *tar.Writer, location, name string, entry fs.DirEntry) error {
	info, err := entry.Info()
	if err != nil {
		return err
	}
	link := ""
	if info.Mode()&os.ModeSymlink != 0 {
		if link, err = os.Readlink(location); err != nil {
			return err
		}
	}
	header, err := tar.FileInfoHeader(info, link)
	if err != nil {
		return err
	}
	header.Name = name
	if info.IsDir() {
		header.Name += "/"
	}
	if err = writer.WriteHeader(header); err != nil {
		return err
	}
	if !info.Mode().IsRegular() {
		return nil
	}
	file, err := os.Open(location)
	if err != nil {
		return err
	}
	defer file.Close()
	_, err = io.Copy(writer, file)
	return err
}

func isExcluded(name string, excludes []string) bool {
	for _, pattern := range excludes {
		if matched, _ := path.Match(pattern, name); matched {
			return true
		}
	}
	return false
}
