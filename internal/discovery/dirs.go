package discovery

import (
	"os"
	"path/filepath"
	"runtime"
)

// DefaultExclude drops uninstaller shortcuts that live next to the real ones
var DefaultExclude = []string{"uninstall"}

// DefaultBaseDirs returns the platform's application shortcut locations,
// per-user locations first.
func DefaultBaseDirs() []string {
	if runtime.GOOS == "windows" {
		return windowsStartMenuDirs(os.Getenv("APPDATA"), os.Getenv("PROGRAMDATA"))
	}
	home, _ := os.UserHomeDir()
	return xdgApplicationDirs(home, os.Getenv("XDG_DATA_HOME"), os.Getenv("XDG_DATA_DIRS"))
}

// DefaultExtensions returns the shortcut file extensions used on this platform
func DefaultExtensions() []string {
	if runtime.GOOS == "windows" {
		return []string{"lnk"}
	}
	return []string{"desktop"}
}

func windowsStartMenuDirs(appData, programData string) []string {
	var dirs []string
	for _, root := range []string{appData, programData} {
		if root == "" {
			continue
		}
		dirs = append(dirs, filepath.Join(root, "Microsoft", "Windows", "Start Menu", "Programs"))
	}
	return dirs
}

// xdgApplicationDirs follows the XDG base directory spec defaults when the
// variables are unset.
func xdgApplicationDirs(home, dataHome, dataDirs string) []string {
	if dataHome == "" && home != "" {
		dataHome = filepath.Join(home, ".local", "share")
	}
	if dataDirs == "" {
		dataDirs = "/usr/local/share" + string(filepath.ListSeparator) + "/usr/share"
	}

	var dirs []string
	if dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}
	for _, d := range filepath.SplitList(dataDirs) {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}
	return dirs
}
