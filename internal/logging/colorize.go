// SPDX-License-Identifier: MIT

package logging

import (
	"fmt"

	"github.com/rs/zerolog"
)

const (
	colorRed     = 31
	colorGreen   = 32
	colorYellow  = 33
	colorBlue    = 34
	colorMagenta = 35

	colorBold = 1
)

// colorize wraps s in ANSI code c.
func colorize(s any, c int) string {
	return fmt.Sprintf("\x1b[%dm%v\x1b[0m", c, s)
}

// formatLevel is the console level column: three colored letters.
func formatLevel() zerolog.Formatter {
	return func(i any) string {
		ll, _ := i.(string)
		switch ll {
		case "trace":
			return colorize("TRC", colorBlue)
		case "debug":
			return colorize("DBG", colorMagenta)
		case "info":
			return colorize("INF", colorGreen)
		case "warn":
			return colorize("WRN", colorYellow)
		case "error":
			return colorize("ERR", colorRed)
		case "fatal":
			return colorize(colorize("FTL", colorRed), colorBold)
		default:
			return colorize("???", colorBold)
		}
	}
}

func formatErrFieldName() zerolog.Formatter {
	return func(i any) string { return fmt.Sprintf("%s=", i) }
}

func formatErrFieldValue() zerolog.Formatter {
	return func(i any) string { return colorize(i, colorRed) }
}
