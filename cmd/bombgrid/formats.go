package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/bombgrid/internal/registry"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List supported grid formats",
	Long:  `Shows the grid formats registered in bombgrid and the file extensions they handle.`,
	Run:   runFormats,
}

func runFormats(_ *cobra.Command, _ []string) {
	formats := registry.List()

	if len(formats) == 0 {
		fmt.Println("No formats available.")
		return
	}

	fmt.Println("Available formats:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range formats {
		if len(f.Name) > maxNameLen {
			maxNameLen = len(f.Name)
		}
	}

	// Print header
	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Extensions")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "----------")

	// Print formats
	for _, f := range formats {
		fmt.Printf("  %-*s  %s\n", maxNameLen, f.Name, strings.Join(f.Extensions, " "))
	}

	fmt.Println()
	fmt.Println("Files with other extensions are read as text; use --format to override.")
}
