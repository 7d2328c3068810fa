package notify

import (
	"log"
	"os/exec"
	"runtime"

	"github.com/gen2brain/beeep"
)

// PlayCue plays the due-soon alert cue. Best effort only: when the
// configured sound file cannot be played (no file, no player on the host)
// it falls back to a system beep, and any remaining failure is logged and
// swallowed.
func PlayCue(soundPath string) {
	if soundPath != "" {
		if player := findPlayer(); player != "" {
			err := exec.Command(player, soundPath).Run()
			if err == nil {
				return
			}
			log.Printf("sound playback blocked: %v", err)
		}
	}

	if err := beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration); err != nil {
		log.Printf("beep blocked: %v", err)
	}
}

func findPlayer() string {
	var candidates []string
	switch runtime.GOOS {
	case "darwin":
		candidates = []string{"afplay"}
	case "linux":
		candidates = []string{"paplay", "aplay", "mpg123"}
	default:
		return ""
	}

	for _, c := range candidates {
		if path, err := exec.LookPath(c); err == nil {
			return path
		}
	}
	return ""
}
