// Package mt5 locates the MetaTrader 5 "MQL5/Files" sandbox folder and
// writes files an Expert Advisor can read from it.
package mt5

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

// Environment is the slice of the host an auto-detection looks at.
type Environment struct {
	GOOS    string
	HomeDir string
	// Exists reports whether a directory exists.
	Exists func(path string) bool
	// ReadDir lists the entry names in a directory.
	ReadDir func(path string) ([]string, error)
}

// HostEnvironment describes the running machine.
func HostEnvironment() Environment {
	home, _ := os.UserHomeDir()
	return Environment{
		GOOS:    runtime.GOOS,
		HomeDir: home,
		Exists: func(path string) bool {
			info, err := os.Stat(path)
			return err == nil && info.IsDir()
		},
		ReadDir: func(path string) ([]string, error) {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, err
			}
			names := make([]string, 0, len(entries))
			for _, e := range entries {
				if e.IsDir() {
					names = append(names, e.Name())
				}
			}
			return names, nil
		},
	}
}

// DetectFilesDir returns the first MQL5/Files folder found for env, or ""
// when no terminal installation is visible.
//
// Windows keeps one data folder per installed terminal under
// %APPDATA%/MetaQuotes/Terminal/<hash>; the first one carrying MQL5/Files
// wins. Wine and macOS installs use fixed locations.
func DetectFilesDir(env Environment) string {
	terminalRoot := filepath.Join(env.HomeDir, "AppData", "Roaming", "MetaQuotes", "Terminal")

	if env.GOOS == "windows" && env.Exists(terminalRoot) {
		if names, err := env.ReadDir(terminalRoot); err == nil {
			for _, name := range names {
				files := filepath.Join(terminalRoot, name, "MQL5", "Files")
				if env.Exists(files) {
					return files
				}
			}
		}
	}

	candidates := []string{
		filepath.Join(env.HomeDir, ".wine", "drive_c", "Program Files", "MetaTrader 5", "MQL5", "Files"),
		"/Applications/MetaTrader 5.app/Contents/Resources/MQL5/Files",
	}
	for _, path := range candidates {
		if env.Exists(path) {
			return path
		}
	}
	return ""
}

// WriteFile replaces path with content. The data goes to a temporary file
// in the same directory first and is renamed over path, so the terminal
// never reads a half-written line.
func WriteFile(path string, content string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
