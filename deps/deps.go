// Package deps checks for external binaries the application shells out to.
package deps

import (
	"fmt"
	"os/exec"
)

const (
	MpvInstallURL = "https://mpv.io/installation/"
)

// DependencyError contains information about a missing dependency
type DependencyError struct {
	Name       string
	InstallURL string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("%s not found. Install from: %s", e.Name, e.InstallURL)
}

// CheckMpv checks if mpv is installed and available in PATH.
// mpv is only needed for local preview playback; cutting happens remotely.
func CheckMpv() error {
	_, err := exec.LookPath("mpv")
	if err != nil {
		return &DependencyError{
			Name:       "mpv",
			InstallURL: MpvInstallURL,
		}
	}
	return nil
}

// CheckAll checks all dependencies and returns a slice of errors for missing ones
func CheckAll() []error {
	var errors []error

	if err := CheckMpv(); err != nil {
		errors = append(errors, err)
	}

	return errors
}
