package assets

import (
	"errors"
	"os"
	"path/filepath"
)

// DirName is the asset directory name searched for by FindRoot.
const DirName = "assets"

// Candidates returns the directories searched for assets, in order: next
// to the executable, then the working directory.
func Candidates(exePath string) []string {
	var dirs []string
	if exePath != "" {
		dirs = append(dirs, filepath.Join(filepath.Dir(exePath), DirName))
	}
	return append(dirs, DirName)
}

// FindRoot returns the first candidate that is a directory.
func FindRoot(candidates []string) (string, error) {
	for _, dir := range candidates {
		info, err := os.Stat(dir)
		if err == nil && info.IsDir() {
			return dir, nil
		}
	}
	return "", &LoadError{
		Key:  DirName,
		Path: filepath.Join(candidates...),
		Err:  errors.New("no asset directory found"),
	}
}
