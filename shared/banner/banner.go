// Package banner prints the application title banner.
package banner

import (
	"fmt"
	"os"
	"strings"

	"github.com/thirukguru/govcloud-fsx-inventory/shared/ansi"
	"github.com/thirukguru/govcloud-fsx-inventory/shared/console"
	"golang.org/x/term"
)

type bannerColor int

const (
	bannerAmazonOrange bannerColor = iota
	bannerIBMBlue
	bannerSpotifyGreen
	bannerNetflixRed
	bannerTwitchPurple
	bannerSkypeBlue
)

var bannerTitleColors = []string{
	"\x1b[38;2;255;153;0m",  // Amazon Orange
	"\x1b[38;2;15;98;254m",  // IBM Blue
	"\x1b[38;2;30;215;96m",  // Spotify Green
	"\x1b[38;2;229;9;20m",   // Netflix Red
	"\x1b[38;2;145;70;255m", // Twitch Purple
	"\x1b[38;2;0;175;240m",  // Skype Blue
}

var bannerTitleColorNames = []string{
	"AmazonOrange",
	"IBMBlue",
	"SpotifyGreen",
	"NetflixRed",
	"TwitchPurple",
	"SkypeBlue",
}

const (
	bannerTitleColorDefault        = bannerAmazonOrange
	bannerTitleColorBlueBackground = bannerAmazonOrange
	bannerTitleColorEnv            = "GOVCLOUD_FSX_BANNER_COLOR"
)

var titleLines = []string{
	" ██████╗  ██████╗  ██╗   ██╗        ███████╗ ███████╗ ██╗  ██╗",
	"██╔════╝ ██╔═══██╗ ██║   ██║        ██╔════╝ ██╔════╝ ╚██╗██╔╝",
	"██║  ███╗██║   ██║ ██║   ██║ █████╗ █████╗   ███████╗  ╚███╔╝ ",
	"██║   ██║██║   ██║ ╚██╗ ██╔╝ ╚════╝ ██╔══╝   ╚════██║  ██╔██╗ ",
	"╚██████╔╝╚██████╔╝  ╚████╔╝         ██║      ███████║ ██╔╝ ██╗",
	" ╚═════╝  ╚═════╝    ╚═══╝          ╚═╝      ╚══════╝ ╚═╝  ╚═╝",
}

func printCenteredLines(lines []string, width int) {
	for _, line := range lines {
		pad := 0

		if width > len(line) {
			pad = (width - len(line)) / 2
		}

		if pad > 0 {
			fmt.Print(strings.Repeat(" ", pad))
		}

		fmt.Println(line)
	}
}

func bannerTitleColor() bannerColor {
	if color, ok := bannerTitleColorFromEnv(); ok {
		return color
	}

	if console.IsBlueBackground() {
		return bannerTitleColorBlueBackground
	}

	return bannerTitleColorDefault
}

func bannerTitleColorFromEnv() (bannerColor, bool) {
	raw := strings.TrimSpace(os.Getenv(bannerTitleColorEnv))

	if raw == "" {
		return 0, false
	}

	for idx, color := range bannerTitleColors {
		name := bannerTitleColorName(bannerColor(idx))
		if strings.EqualFold(raw, name) || raw == color {
			return bannerColor(idx), true
		}
	}

	return 0, false
}

func bannerTitleColorName(color bannerColor) string {
	if color < 0 || int(color) >= len(bannerTitleColorNames) {
		return ""
	}

	return bannerTitleColorNames[int(color)]
}

// DrawBannerTitle prints the application title banner to stdout.
func DrawBannerTitle() {
	ansi.EnableANSI()

	width := 80

	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
	}

	fmt.Print(bannerTitleColors[bannerTitleColor()])
	printCenteredLines(titleLines, width)
	fmt.Print("\x1b[0m")
}
