package validateargs

import (
	"fmt"
	"strings"
)

// flags whose values end up in the process list when passed as arguments
var sensitiveArgs = []string{"-sentry-dsn"}

// Sensitive checks if arguments carrying secrets have been passed on the
// command line instead of the environment or a config file
func Sensitive(args []string) error {
	var found []string

	for _, sensitiveArg := range sensitiveArgs {
		for _, arg := range args {
			if arg == sensitiveArg || arg == "-"+sensitiveArg ||
				strings.HasPrefix(arg, sensitiveArg+"=") || strings.HasPrefix(arg, "-"+sensitiveArg+"=") {
				found = append(found, sensitiveArg)
				break
			}
		}
	}

	if len(found) > 0 {
		return fmt.Errorf("%s should not be passed as a command line argument", strings.Join(found, ", "))
	}

	return nil
}
