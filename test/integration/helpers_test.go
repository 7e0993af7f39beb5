package integration

import (
	"os"
	"path/filepath"
	"testing"
)

// copyFixtureToTemp copies a fixture site directory to a temp directory
// and returns the path to the copy.
func copyFixtureToTemp(t *testing.T, fixtureName, tempDir string) string {
	t.Helper()

	fixtureDir, err := filepath.Abs(filepath.Join("../fixtures/sites", fixtureName))
	if err != nil {
		t.Fatalf("failed to get fixture path: %v", err)
	}

	destDir := filepath.Join(tempDir, fixtureName)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		t.Fatalf("failed to create destination directory: %v", err)
	}

	err = filepath.Walk(fixtureDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(fixtureDir, path)
		if err != nil {
			return err
		}

		destPath := filepath.Join(destDir, relPath)

		if info.IsDir() {
			return os.MkdirAll(destPath, info.Mode())
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		return os.WriteFile(destPath, data, info.Mode())
	})

	if err != nil {
		t.Fatalf("failed to copy fixture: %v", err)
	}

	return destDir
}

// chdir changes into dir for the rest of the test.
func chdir(t *testing.T, dir string) {
	t.Helper()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get current directory: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("failed to change to %s: %v", dir, err)
	}
	t.Cleanup(func() { _ = os.Chdir(origDir) })
}

// assertSameFile fails unless got and want have identical contents.
func assertSameFile(t *testing.T, got, want string) {
	t.Helper()

	gotData, err := os.ReadFile(got)
	if err != nil {
		t.Fatalf("failed to read %s: %v", got, err)
	}
	wantData, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("failed to read %s: %v", want, err)
	}
	if string(gotData) != string(wantData) {
		t.Errorf("%s differs from %s\n--- got ---\n%s\n--- want ---\n%s", got, want, gotData, wantData)
	}
}
