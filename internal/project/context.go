// Package project supplies the shared project context that is embedded in
// every agent prompt. The context is assembled once per session from a fixed
// list of documentation files in the project root.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EmptyContext is returned when none of the configured files exist.
const EmptyContext = "(No project files found.)"

// Supplier loads project documentation into a prompt-ready block.
type Supplier struct {
	root  string
	files []string
}

// NewSupplier creates a Supplier reading the named files relative to root.
// Missing files are skipped silently.
func NewSupplier(root string, files []string) *Supplier {
	return &Supplier{root: root, files: files}
}

// Load reads each configured file and renders it as a fenced section headed
// by the file name. Sections are joined by blank lines; when no file exists
// the EmptyContext placeholder is returned so prompts never carry an empty
// project section.
func (s *Supplier) Load() string {
	var parts []string
	for _, name := range s.files {
		data, err := os.ReadFile(filepath.Join(s.root, name))
		if err != nil {
			continue
		}
		parts = append(parts, fmt.Sprintf("### %s\n```\n%s\n```", name, string(data)))
	}
	if len(parts) == 0 {
		return EmptyContext
	}
	return strings.Join(parts, "\n\n")
}
