// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package odp

import (
	"archive/zip"
	"fmt"
	"os"
	"path/filepath"
)

// WriteArchive assembles the staged parts into a zip container at dest.
// The mimetype entry is written first and stored uncompressed; OpenDocument
// consumers sniff the first entry's raw bytes to detect the document type.
// The remaining parts are deflated.
func WriteArchive(stagingDir, dest string) error {
	f, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating archive %s: %w", dest, err)
	}
	if err := writeEntries(f, stagingDir); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing archive %s: %w", dest, err)
	}
	return nil
}

func writeEntries(f *os.File, stagingDir string) error {
	w := zip.NewWriter(f)

	mime, err := os.ReadFile(filepath.Join(stagingDir, mimetypeFile))
	if err != nil {
		return fmt.Errorf("reading staged mimetype: %w", err)
	}
	mw, err := w.CreateHeader(&zip.FileHeader{
		Name:   mimetypeFile,
		Method: zip.Store,
	})
	if err != nil {
		return fmt.Errorf("writing mimetype entry: %w", err)
	}
	if _, err := mw.Write(mime); err != nil {
		return fmt.Errorf("writing mimetype entry: %w", err)
	}

	for _, name := range []string{manifestFile, contentFile, stylesFile, metaFile} {
		data, err := os.ReadFile(filepath.Join(stagingDir, filepath.FromSlash(name)))
		if err != nil {
			return fmt.Errorf("reading staged %s: %w", name, err)
		}
		ew, err := w.Create(name)
		if err != nil {
			return fmt.Errorf("writing %s entry: %w", name, err)
		}
		if _, err := ew.Write(data); err != nil {
			return fmt.Errorf("writing %s entry: %w", name, err)
		}
	}

	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing archive: %w", err)
	}
	return nil
}
