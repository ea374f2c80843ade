package tui

import (
	"fmt"

	"github.com/muesli/termenv"
)

// PrintBanner outputs the ASCII art banner shown at the start of an
// interactive assessment.
func PrintBanner() {
	p := termenv.ColorProfile()
	// Blue-to-teal scheme, compass theme
	s1 := termenv.String(`  ____        _        _  __`).Foreground(p.Color("#60a5fa"))
	s2 := termenv.String(` |  _ \  __ _| |_ __ _| |/ /___  _ __ ___  _ __   __ _ ___ ___`).Foreground(p.Color("#38bdf8"))
	s3 := termenv.String(` | | | |/ _' | __/ _' | ' // _ \| '_ ' _ \| '_ \ / _' / __/ __|`).Foreground(p.Color("#22d3ee"))
	s4 := termenv.String(` | |_| | (_| | || (_| | . \ (_) | | | | | | |_) | (_| \__ \__ \`).Foreground(p.Color("#2dd4bf"))
	s5 := termenv.String(` |____/ \__,_|\__\__,_|_|\_\___/|_| |_| |_| .__/ \__,_|___/___/`).Foreground(p.Color("#34d399"))
	s6 := termenv.String(`                                          |_|`).Foreground(p.Color("#4ade80"))

	fmt.Println()
	fmt.Println(s1)
	fmt.Println(s2)
	fmt.Println(s3)
	fmt.Println(s4)
	fmt.Println(s5)
	fmt.Println(s6)
	fmt.Println()
}
