// Package content provides the portfolio records shown by folio.
package content

import "strings"

// Portfolio is the full set of content screens.
type Portfolio struct {
	Personal       PersonalInfo    `yaml:"personal"`
	Experience     []Experience    `yaml:"experience"`
	Skills         []SkillCategory `yaml:"skills"`
	Education      []Education     `yaml:"education"`
	Projects       []Project       `yaml:"projects"`
	Certifications []Certification `yaml:"certifications"`

	Source string `yaml:"-"` // file path or "builtin"
}

// PersonalInfo identifies the portfolio owner.
type PersonalInfo struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Social   Social `yaml:"social"`
	Avatar   Avatar `yaml:"avatar"`
}

// Social holds profile URLs.
type Social struct {
	LinkedIn string `yaml:"linkedin"`
	GitHub   string `yaml:"github"`
}

// Avatar is the drawer monogram.
type Avatar struct {
	Initials string `yaml:"initials"`
}

// Experience is one job.
type Experience struct {
	ID           string   `yaml:"id"`
	Company      string   `yaml:"company"`
	Position     string   `yaml:"position"`
	Duration     string   `yaml:"duration"`
	Location     string   `yaml:"location"`
	Description  []string `yaml:"description"`
	Technologies []string `yaml:"technologies"`
}

// SkillCategory groups related skills.
type SkillCategory struct {
	Category string   `yaml:"category"`
	Skills   []string `yaml:"skills"`
}

// Education is one degree or school.
type Education struct {
	ID          string `yaml:"id"`
	Degree      string `yaml:"degree"`
	Institution string `yaml:"institution"`
	Duration    string `yaml:"duration"`
	Location    string `yaml:"location"`
	Description string `yaml:"description,omitempty"`
}

// Project is a shipped app or site. All URLs are optional.
type Project struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Description  string `yaml:"description"`
	GitHubURL    string `yaml:"github_url,omitempty"`
	LiveURL      string `yaml:"live_url,omitempty"`
	ImageURL     string `yaml:"image_url,omitempty"`
	PlayStoreURL string `yaml:"play_store_url,omitempty"`
	AppStoreURL  string `yaml:"app_store_url,omitempty"`
	Note         string `yaml:"note,omitempty"`
}

// Link is a labelled URL.
type Link struct {
	Label string
	URL   string
}

// Links returns the project's non-empty URLs in display order.
func (p Project) Links() []Link {
	candidates := []Link{
		{Label: "Play Store", URL: p.PlayStoreURL},
		{Label: "App Store", URL: p.AppStoreURL},
		{Label: "Live", URL: p.LiveURL},
		{Label: "GitHub", URL: p.GitHubURL},
	}
	links := make([]Link, 0, len(candidates))
	for _, l := range candidates {
		if strings.TrimSpace(l.URL) != "" {
			links = append(links, l)
		}
	}
	return links
}

// Certification is a course or credential.
type Certification struct {
	ID            string `yaml:"id"`
	Name          string `yaml:"name"`
	Issuer        string `yaml:"issuer"`
	Date          string `yaml:"date"`
	CredentialID  string `yaml:"credential_id,omitempty"`
	CredentialURL string `yaml:"credential_url,omitempty"`
}

// ContactItem is a row on the contact screen.
type ContactItem struct {
	Icon  string
	Title string
	Value string
	URL   string
}

// ContactItems derives the contact rows. Rows whose source field is empty
// are omitted.
func (p *Portfolio) ContactItems() []ContactItem {
	items := make([]ContactItem, 0, 3)
	if email := strings.TrimSpace(p.Personal.Email); email != "" {
		items = append(items, ContactItem{Icon: "email", Title: "Email", Value: email, URL: "mailto:" + email})
	}
	if url := strings.TrimSpace(p.Personal.Social.LinkedIn); url != "" {
		items = append(items, ContactItem{Icon: "linkedin", Title: "LinkedIn", Value: stripScheme(url), URL: url})
	}
	if url := strings.TrimSpace(p.Personal.Social.GitHub); url != "" {
		items = append(items, ContactItem{Icon: "github", Title: "GitHub", Value: stripScheme(url), URL: url})
	}
	return items
}

// Initials returns the avatar monogram, computed from the name when unset.
func (p *PersonalInfo) Initials() string {
	if p.Avatar.Initials != "" {
		return p.Avatar.Initials
	}
	var b strings.Builder
	for _, word := range strings.Fields(p.Name) {
		b.WriteString(strings.ToUpper(string([]rune(word)[0])))
		if b.Len() >= 2 {
			break
		}
	}
	return b.String()
}

func stripScheme(url string) string {
	url = strings.TrimPrefix(url, "https://")
	return strings.TrimPrefix(url, "http://")
}
