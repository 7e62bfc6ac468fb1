package content

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed builtin/portfolio.yaml
var builtinFS embed.FS

// ErrInvalidContent wraps every validation failure.
var ErrInvalidContent = errors.New("invalid content")

// Builtin returns the portfolio bundled with folio.
func Builtin() (*Portfolio, error) {
	data, err := builtinFS.ReadFile("builtin/portfolio.yaml")
	if err != nil {
		return nil, fmt.Errorf("read builtin portfolio: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse builtin portfolio: %w", err)
	}
	p.Source = "builtin"
	return p, nil
}

// LoadFile reads and validates a portfolio YAML file.
func LoadFile(path string) (*Portfolio, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read portfolio: %w", err)
	}
	p, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse portfolio %s: %w", path, err)
	}
	p.Source = path
	return p, nil
}

// SearchPaths returns the portfolio files looked up when none is given, in
// precedence order.
func SearchPaths(projectDir string) []string {
	paths := make([]string, 0, 2)
	if projectDir != "" {
		paths = append(paths, filepath.Join(projectDir, ".folio", "portfolio.yaml"))
	}
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		paths = append(paths, filepath.Join(home, ".config", "folio", "portfolio.yaml"))
	}
	return paths
}

// Load returns the portfolio at path when set. Otherwise the first existing
// search path wins, falling back to the builtin portfolio.
func Load(path, projectDir string) (*Portfolio, error) {
	if strings.TrimSpace(path) != "" {
		return LoadFile(path)
	}
	for _, candidate := range SearchPaths(projectDir) {
		if _, err := os.Stat(candidate); err == nil {
			return LoadFile(candidate)
		}
	}
	return Builtin()
}

func parse(data []byte) (*Portfolio, error) {
	var p Portfolio
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// Validate checks required fields and id uniqueness per section.
func (p *Portfolio) Validate() error {
	if strings.TrimSpace(p.Personal.Name) == "" {
		return fmt.Errorf("%w: personal.name is required", ErrInvalidContent)
	}

	sections := map[string][]string{
		"experience":     make([]string, 0, len(p.Experience)),
		"education":      make([]string, 0, len(p.Education)),
		"projects":       make([]string, 0, len(p.Projects)),
		"certifications": make([]string, 0, len(p.Certifications)),
	}
	for _, e := range p.Experience {
		sections["experience"] = append(sections["experience"], e.ID)
	}
	for _, e := range p.Education {
		sections["education"] = append(sections["education"], e.ID)
	}
	for _, e := range p.Projects {
		sections["projects"] = append(sections["projects"], e.ID)
	}
	for _, e := range p.Certifications {
		sections["certifications"] = append(sections["certifications"], e.ID)
	}

	for _, name := range []string{"experience", "education", "projects", "certifications"} {
		seen := make(map[string]bool)
		for i, id := range sections[name] {
			if strings.TrimSpace(id) == "" {
				return fmt.Errorf("%w: %s[%d] has no id", ErrInvalidContent, name, i)
			}
			if seen[id] {
				return fmt.Errorf("%w: duplicate %s id %q", ErrInvalidContent, name, id)
			}
			seen[id] = true
		}
	}

	for i, s := range p.Skills {
		if strings.TrimSpace(s.Category) == "" {
			return fmt.Errorf("%w: skills[%d] has no category", ErrInvalidContent, i)
		}
	}
	return nil
}
