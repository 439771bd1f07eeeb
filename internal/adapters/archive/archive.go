// Package archive packs the state directory into a gzipped tarball for
// export and unpacks it again on import.
package archive

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"

	"github.com/dnflock/dnflock/internal/core/domain"
)

// Tarball implements ports.Archiver with tar + gzip.
type Tarball struct{}

// New creates a tarball archiver.
func New() *Tarball {
	return &Tarball{}
}

// Pack writes the contents of srcDir into a gzipped tarball at destFile.
// Entries use paths relative to srcDir, so an archive can be unpacked
// into any target directory.
func (Tarball) Pack(srcDir, destFile string) error {
	srcDir = filepath.Clean(srcDir)

	out, err := os.Create(destFile)
	if err != nil {
		return zerr.Wrap(err, "failed to create archive file")
	}
	defer out.Close()

	gz := gzip.NewWriter(out)
	tw := tar.NewWriter(gz)

	err = filepath.WalkDir(srcDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(srcDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		header, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(rel)

		if err := tw.WriteHeader(header); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		return zerr.Wrap(err, "failed to pack state directory")
	}

	if err := tw.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive")
	}
	if err := gz.Close(); err != nil {
		return zerr.Wrap(err, "failed to finalize archive compression")
	}
	return out.Close()
}

// Unpack extracts the archive at srcFile into destDir. Entry paths are
// validated against traversal outside destDir. The archive must contain
// the analyzed manual list, otherwise it is not a dnflock export.
func (Tarball) Unpack(srcFile, destDir string) error {
	in, err := os.Open(srcFile)
	if err != nil {
		return zerr.Wrap(err, "failed to open archive file")
	}
	defer in.Close()

	gz, err := gzip.NewReader(in)
	if err != nil {
		return zerr.Wrap(err, "archive is not gzip compressed")
	}
	defer gz.Close()

	destDir = filepath.Clean(destDir)
	if err := os.MkdirAll(destDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create target directory")
	}

	sawManual := false
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return zerr.Wrap(err, "failed to read archive")
		}

		target, err := secureJoin(destDir, header.Name)
		if err != nil {
			return err
		}
		if header.Name == domain.ManualFileName {
			sawManual = true
		}

		switch header.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory from archive")
			}
		case tar.TypeReg:
			if err := os.MkdirAll(filepath.Dir(target), domain.DirPerm); err != nil {
				return zerr.Wrap(err, "failed to create directory from archive")
			}
			f, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, domain.FilePerm)
			if err != nil {
				return zerr.Wrap(err, "failed to create file from archive")
			}
			//nolint:gosec // state archives are small text files
			if _, err := io.Copy(f, tr); err != nil {
				f.Close()
				return zerr.Wrap(err, "failed to extract file from archive")
			}
			if err := f.Close(); err != nil {
				return zerr.Wrap(err, "failed to close extracted file")
			}
		}
	}

	if !sawManual {
		return domain.ErrArchiveMissingState
	}
	return nil
}

// secureJoin joins an archive entry name under dest and rejects entries
// that would escape it.
func secureJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	if target != dest && !strings.HasPrefix(target, dest+string(os.PathSeparator)) {
		return "", zerr.With(zerr.New("archive entry escapes target directory"), "entry", name)
	}
	return target, nil
}
