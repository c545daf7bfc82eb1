// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package odp

import (
	"fmt"
	"os"
	"path/filepath"
)

// Part filenames inside the package. The manifest lives under META-INF; the
// rest sit at the archive root next to the mimetype.
const (
	mimetypeFile = "mimetype"
	manifestDir  = "META-INF"
	manifestFile = "META-INF/manifest.xml"
	contentFile  = "content.xml"
	stylesFile   = "styles.xml"
	metaFile     = "meta.xml"
)

// stagingDirName is the fixed staging location under the system temp
// directory. Using a fixed name lets a run sweep up remnants a previously
// interrupted run left behind.
const stagingDirName = "docpress-odp-staging"

// StagingDir returns the fixed staging path for this host.
func StagingDir() string {
	return filepath.Join(os.TempDir(), stagingDirName)
}

// Stage writes the package parts plus the mimetype into the staging
// directory and returns its path. Any pre-existing staging directory is
// removed first. The caller owns cleanup via Cleanup, which must run even
// when archiving fails.
func Stage(pkg Package) (string, error) {
	dir := StagingDir()
	if err := os.RemoveAll(dir); err != nil {
		return "", fmt.Errorf("clearing staging directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(dir, manifestDir), 0o755); err != nil {
		return "", fmt.Errorf("creating staging directory: %w", err)
	}

	parts := map[string]string{
		mimetypeFile: Mimetype,
		manifestFile: pkg.Manifest,
		contentFile:  pkg.Content,
		stylesFile:   pkg.Styles,
		metaFile:     pkg.Meta,
	}
	for name, data := range parts {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(data), 0o644); err != nil {
			return "", fmt.Errorf("staging %s: %w", name, err)
		}
	}
	return dir, nil
}

// Cleanup removes the staging directory. A removal failure is reported but
// is not fatal to a conversion that already produced its archive.
func Cleanup(dir string) error {
	if err := os.RemoveAll(dir); err != nil {
		return fmt.Errorf("removing staging directory: %w", err)
	}
	return nil
}
