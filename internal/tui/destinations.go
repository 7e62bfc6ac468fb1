package tui

import (
	"fmt"

	"github.com/opencode-ai/folio/internal/content"
	"github.com/opencode-ai/folio/internal/tui/components"
)

type destination int

const (
	destHome destination = iota
	destExperience
	destSkills
	destEducation
	destProjects
	destCertifications
	destContact
	destTheme
	destinationCount
)

var destinationInfo = [destinationCount]struct {
	label string
	icon  string
}{
	destHome:           {"Home", "⌂"},
	destExperience:     {"Experience", "◆"},
	destSkills:         {"Skills", "★"},
	destEducation:      {"Education", "◎"},
	destProjects:       {"Projects", "▣"},
	destCertifications: {"Certifications", "✔"},
	destContact:        {"Contact", "✉"},
	destTheme:          {"Theme", "◑"},
}

func (d destination) Label() string {
	if d < 0 || d >= destinationCount {
		return "Unknown"
	}
	return destinationInfo[d].label
}

func (d destination) Icon() string {
	if d < 0 || d >= destinationCount {
		return "?"
	}
	return destinationInfo[d].icon
}

// destinationFromKey maps "1"-"8" to a destination.
func destinationFromKey(k string) (destination, bool) {
	if len(k) != 1 || k[0] < '1' || k[0] > '0'+byte(destinationCount) {
		return 0, false
	}
	return destination(k[0] - '1'), true
}

// paletteItems lists every destination plus the individual records, so
// typing a company or project name jumps to its screen.
func paletteItems(p *content.Portfolio) []components.PaletteItem {
	items := make([]components.PaletteItem, 0, int(destinationCount)+16)
	for d := destHome; d < destinationCount; d++ {
		items = append(items, components.PaletteItem{
			Label:       d.Label(),
			Description: fmt.Sprintf("screen %d", int(d)+1),
			Target:      int(d),
		})
	}
	if p == nil {
		return items
	}
	for _, exp := range p.Experience {
		items = append(items, components.PaletteItem{
			Label:       exp.Company,
			Description: exp.Position,
			Keywords:    exp.Technologies,
			Target:      int(destExperience),
		})
	}
	for _, proj := range p.Projects {
		items = append(items, components.PaletteItem{
			Label:       proj.Title,
			Description: "project",
			Target:      int(destProjects),
		})
	}
	for _, cert := range p.Certifications {
		items = append(items, components.PaletteItem{
			Label:       cert.Name,
			Description: cert.Issuer,
			Target:      int(destCertifications),
		})
	}
	return items
}
