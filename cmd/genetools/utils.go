package main

import (
	"os"
	"path/filepath"
	"strings"
)

func mapPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		var home, err = os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~/"))
	}
	if strings.HasPrefix(path, "./") {
		var exePath, err = os.Executable()
		if err != nil {
			return path
		}
		return filepath.Join(filepath.Dir(exePath), strings.TrimPrefix(path, "./"))
	}
	return path
}
