// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command okcolor generates an accessible OKLCH color palette for a
// base hue and prints it as terminal swatches or design tokens.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/okcolor/oklch"
	"cogentcore.org/okcolor/palette"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var (
	hue    float32
	mode   string
	dark   bool
	seed   string
	format string
	output string
)

var rootCmd = &cobra.Command{
	Use:   "okcolor",
	Short: "okcolor generates accessible OKLCH color palettes",
	Long: `okcolor generates a perceptually uniform color system from a base hue:
an 11-stop shade scale (50 through 950), harmony companion swatches, and
WCAG contrast annotations for every color.`,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().Float32Var(&hue, "hue", 250, "base hue in degrees (any value, normalized to 0-360)")
	rootCmd.Flags().StringVar(&mode, "mode", "monochromatic", "harmony mode: monochromatic, analogous, complementary, or triadic")
	rootCmd.Flags().BoolVar(&dark, "dark", false, "mirror the shade scale for a dark color scheme")
	rootCmd.Flags().StringVar(&seed, "seed", "", "seed hex color to take the base hue from, such as #4285f4")
	rootCmd.Flags().StringVar(&format, "format", "swatches", "output format: swatches, css, json, or toml")
	rootCmd.Flags().StringVarP(&output, "output", "o", "", "output file (defaults to stdout; ignored for swatches)")
}

func run(cmd *cobra.Command, args []string) error {
	var hm palette.HarmonyMode
	if err := hm.UnmarshalText([]byte(mode)); err != nil {
		return err
	}
	cfg := palette.Config{Hue: hue, Mode: hm, Dark: dark}
	if seed != "" {
		c, err := oklch.FromHex(seed)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("hue") {
			slog.Warn("both --hue and --seed given; using the seed color hue", "seed", seed)
		}
		cfg.Hue = c.Hue
	}
	p := palette.New(cfg)

	switch format {
	case "swatches":
		printSwatches(p)
		return nil
	case "css":
		return write([]byte(p.CSS()))
	case "json":
		b, err := p.JSON()
		if err != nil {
			return err
		}
		return write(append(b, '\n'))
	case "toml":
		b, err := p.TOML()
		if err != nil {
			return err
		}
		return write(b)
	default:
		return fmt.Errorf("invalid format %q", format)
	}
}

func write(b []byte) error {
	if output == "" {
		_, err := os.Stdout.Write(b)
		return err
	}
	return os.WriteFile(output, b, 0666)
}

func printSwatches(p *palette.Palette) {
	prof := termenv.ColorProfile()
	for _, sw := range p.Scale.Shades {
		fmt.Println(swatchLine(prof, sw))
	}
	if p.Harmony.Mode != palette.Monochromatic {
		fmt.Println()
		for _, sw := range p.Harmony.Swatches {
			fmt.Println(swatchLine(prof, sw))
		}
	}
}

func swatchLine(prof termenv.Profile, sw palette.Swatch) string {
	label := fmt.Sprintf(" %-5s %s  %.2f:1 ", sw.Name, sw.Hex, sw.Contrast)
	s := termenv.String(label).
		Background(prof.Color(sw.Hex)).
		Foreground(prof.Color(sw.Text.Hex()))
	if !sw.AA {
		s = s.Italic()
	}
	return s.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
