package mpv

import (
	"os/exec"

	"github.com/user/cliphunter-tui/deps"
)

// Launch starts mpv paused on the given media URL or file with the IPC
// socket enabled. It checks that mpv is installed first and returns an error
// with an install link if not. Returns the *exec.Cmd for the running process
// which can be used for cleanup.
func Launch(mediaURL string) (*exec.Cmd, error) {
	if err := deps.CheckMpv(); err != nil {
		return nil, err
	}

	// Start paused so a trim session controls when playback begins.
	cmd := exec.Command("mpv",
		"--input-ipc-server="+DefaultSocketPath,
		"--pause",
		"--keep-open=yes",
		mediaURL,
	)

	// Start the process (non-blocking)
	if err := cmd.Start(); err != nil {
		return nil, err
	}

	return cmd, nil
}
