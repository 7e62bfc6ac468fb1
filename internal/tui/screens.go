package tui

import (
	"fmt"
	"strings"

	"github.com/opencode-ai/folio/internal/content"
	"github.com/opencode-ai/folio/internal/tui/components"
)

// screenCards builds the cards for a content destination. Link focus is
// applied later by markFocusedLink.
func screenCards(d destination, p *content.Portfolio) []components.Card {
	if p == nil {
		return nil
	}
	switch d {
	case destHome:
		return homeCards(p)
	case destExperience:
		cards := make([]components.Card, 0, len(p.Experience))
		for _, exp := range p.Experience {
			cards = append(cards, components.Card{
				Title:    exp.Position,
				Subtitle: exp.Company,
				Meta:     []string{exp.Duration, exp.Location},
				Body:     exp.Description,
				Bullets:  true,
				Tags:     exp.Technologies,
			})
		}
		return cards
	case destSkills:
		cards := make([]components.Card, 0, len(p.Skills))
		for _, cat := range p.Skills {
			cards = append(cards, components.Card{
				Title: cat.Category,
				Tags:  cat.Skills,
			})
		}
		return cards
	case destEducation:
		cards := make([]components.Card, 0, len(p.Education))
		for _, edu := range p.Education {
			card := components.Card{
				Title:    edu.Degree,
				Subtitle: edu.Institution,
				Meta:     []string{edu.Duration, edu.Location},
			}
			if edu.Description != "" {
				card.Body = []string{edu.Description}
			}
			cards = append(cards, card)
		}
		return cards
	case destProjects:
		cards := make([]components.Card, 0, len(p.Projects))
		for _, proj := range p.Projects {
			card := components.Card{
				Title: proj.Title,
				Body:  []string{proj.Description},
				Note:  proj.Note,
			}
			for _, link := range proj.Links() {
				card.Links = append(card.Links, components.CardLink{Label: link.Label, URL: link.URL})
			}
			cards = append(cards, card)
		}
		return cards
	case destCertifications:
		cards := make([]components.Card, 0, len(p.Certifications))
		for _, cert := range p.Certifications {
			card := components.Card{
				Title:    cert.Name,
				Subtitle: cert.Issuer,
				Meta:     []string{cert.Date},
			}
			if cert.CredentialID != "" {
				card.Meta = append(card.Meta, "Credential ID: "+cert.CredentialID)
			}
			if cert.CredentialURL != "" {
				card.Links = []components.CardLink{{Label: "Verify", URL: cert.CredentialURL}}
			}
			cards = append(cards, card)
		}
		return cards
	case destContact:
		items := p.ContactItems()
		cards := make([]components.Card, 0, len(items))
		for _, item := range items {
			cards = append(cards, components.Card{
				Title: contactIcon(item.Icon) + " " + item.Title,
				Body:  []string{item.Value},
				Links: []components.CardLink{{Label: item.Title, URL: item.URL}},
			})
		}
		return cards
	}
	return nil
}

func homeCards(p *content.Portfolio) []components.Card {
	var links []components.CardLink
	for _, item := range p.ContactItems() {
		links = append(links, components.CardLink{Label: item.Title, URL: item.URL})
	}

	nav := make([]string, 0, destinationCount-1)
	for d := destExperience; d < destinationCount; d++ {
		nav = append(nav, fmt.Sprintf("%d  %s %s", int(d)+1, d.Icon(), d.Label()))
	}

	return []components.Card{
		{
			Title:    p.Personal.Name,
			Subtitle: p.Personal.Title,
			Meta:     []string{p.Personal.Location},
			Links:    links,
		},
		{
			Title: "Explore",
			Body:  nav,
		},
	}
}

func contactIcon(icon string) string {
	switch icon {
	case "email":
		return "✉"
	case "linkedin":
		return "in"
	case "github":
		return "⌥"
	default:
		return "•"
	}
}

// screenLinks flattens the links of cards in display order.
func screenLinks(cards []components.Card) []components.CardLink {
	var links []components.CardLink
	for _, card := range cards {
		links = append(links, card.Links...)
	}
	return links
}

// markFocusedLink flags the link at index focus and the card holding it.
// It returns the card index, or -1.
func markFocusedLink(cards []components.Card, focus int) int {
	if focus < 0 {
		return -1
	}
	n := 0
	for i := range cards {
		links := make([]components.CardLink, len(cards[i].Links))
		copy(links, cards[i].Links)
		cards[i].Links = links
		for j := range cards[i].Links {
			if n == focus {
				cards[i].Links[j].Focused = true
				cards[i].Focused = true
				return i
			}
			n++
		}
	}
	return -1
}

func screenTitle(d destination, p *content.Portfolio) string {
	if p == nil {
		return d.Label()
	}
	switch d {
	case destExperience:
		return fmt.Sprintf("Experience (%d)", len(p.Experience))
	case destProjects:
		return fmt.Sprintf("Projects (%d)", len(p.Projects))
	case destCertifications:
		return fmt.Sprintf("Certifications (%d)", len(p.Certifications))
	case destSkills:
		total := 0
		for _, cat := range p.Skills {
			total += len(cat.Skills)
		}
		return fmt.Sprintf("Skills (%d)", total)
	default:
		return d.Label()
	}
}

func emptyFor(d destination) bool {
	return d != destHome && d != destTheme
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}
