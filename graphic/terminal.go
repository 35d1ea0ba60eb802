package graphic

import (
	"os"
	"strings"
)

// normalizeTerminal works around TERMINFO settings that break terminfo
// lookups under tmux.
//
// Returns a function that restores the original environment.
func normalizeTerminal() (func(), error) {
	prevTERMINFO, hadTERMINFO := os.LookupEnv("TERMINFO")

	if strings.HasPrefix(os.Getenv("TERM"), "tmux") {
		if err := os.Unsetenv("TERMINFO"); err != nil {
			return nil, err
		}
	}

	restore := func() {
		if !hadTERMINFO {
			os.Unsetenv("TERMINFO")
			return
		}

		if err := os.Setenv("TERMINFO", prevTERMINFO); err != nil {
			panic(err)
		}
	}

	return restore, nil
}
