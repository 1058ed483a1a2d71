package models

import (
	"strings"
	"time"
)

// AdminUser is the single privileged account allowed into the dashboard.
// Non-staff accounts can exist but can never log in.
type AdminUser struct {
	ID           uint `gorm:"primarykey"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Username     string `gorm:"size:150;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:255;not null"`
	IsStaff      bool   `gorm:"not null;default:false"`
}

// About holds the content of the about section. At most one row is ever
// meaningful; the store treats the first row as "the" about record.
type About struct {
	ID              uint `gorm:"primarykey"`
	Name            string `gorm:"size:200"`
	Role            string `gorm:"size:200"`
	Institution     string `gorm:"size:200"`
	Bio             string
	Interests       string
	ExperienceLevel string `gorm:"size:100"`
	ProfileImage    *string
	UpdatedAt       time.Time
}

// Skill categories. Stored as the short key, rendered via CategoryDisplay.
const (
	CategoryLanguage  = "language"
	CategoryFramework = "framework"
	CategoryTool      = "tool"
	CategoryDatabase  = "database"
)

var categoryDisplayNames = map[string]string{
	CategoryLanguage:  "Programming Language",
	CategoryFramework: "Framework",
	CategoryTool:      "Tool",
	CategoryDatabase:  "Database",
}

// SkillCategory pairs a stored category key with its display name.
type SkillCategory struct {
	Key     string
	Display string
}

// SkillCategories lists the valid categories in the order they should appear
// in select inputs.
func SkillCategories() []SkillCategory {
	return []SkillCategory{
		{CategoryLanguage, categoryDisplayNames[CategoryLanguage]},
		{CategoryFramework, categoryDisplayNames[CategoryFramework]},
		{CategoryTool, categoryDisplayNames[CategoryTool]},
		{CategoryDatabase, categoryDisplayNames[CategoryDatabase]},
	}
}

// ValidCategory reports whether key is one of the known skill categories.
func ValidCategory(key string) bool {
	_, ok := categoryDisplayNames[key]
	return ok
}

type Skill struct {
	ID          uint   `gorm:"primarykey"`
	Name        string `gorm:"size:100;not null"`
	Category    string `gorm:"size:20;not null"`
	Proficiency int    `gorm:"default:50"`
	SortOrder   int    `gorm:"default:0"`
}

// CategoryDisplay returns the human-readable category name, falling back to
// the raw key for values stored before a category was known.
func (s Skill) CategoryDisplay() string {
	if display, ok := categoryDisplayNames[s.Category]; ok {
		return display
	}
	return s.Category
}

// SkillGroup is one category bucket in display order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// GroupSkills buckets skills by category display name. Groups appear in
// first-occurrence order of their category within the input slice, not
// alphabetically.
func GroupSkills(skills []Skill) []SkillGroup {
	index := make(map[string]int, len(skills))
	var groups []SkillGroup
	for _, skill := range skills {
		display := skill.CategoryDisplay()
		i, ok := index[display]
		if !ok {
			i = len(groups)
			index[display] = i
			groups = append(groups, SkillGroup{Category: display})
		}
		groups[i].Skills = append(groups[i].Skills, skill)
	}
	return groups
}

type Project struct {
	ID              uint   `gorm:"primarykey"`
	Title           string `gorm:"size:200;not null"`
	Description     string `gorm:"not null"`
	LongDescription *string
	Image           string `gorm:"size:255"`
	Technologies    string `gorm:"size:500;not null"`
	GithubURL       *string
	LiveURL         *string
	SortOrder       int `gorm:"default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TechnologyList splits the comma-separated technologies field for display.
func (p Project) TechnologyList() []string {
	var out []string
	for _, tech := range strings.Split(p.Technologies, ",") {
		if tech = strings.TrimSpace(tech); tech != "" {
			out = append(out, tech)
		}
	}
	return out
}

type ContactMessage struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:200;not null"`
	Email     string `gorm:"size:254;not null"`
	Message   string `gorm:"not null"`
	CreatedAt time.Time
	IsRead    bool          `gorm:"not null;default:false"`
	Reply     *MessageReply `gorm:"foreignKey:MessageID;constraint:OnDelete:CASCADE"`
}

// MessageReply is the admin's reply to a contact message. At most one per
// message; deleting the message deletes the reply with it.
type MessageReply struct {
	ID        uint   `gorm:"primarykey"`
	MessageID uint   `gorm:"not null;uniqueIndex"`
	ReplyText string `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// All lists every entity for migration, in dependency order.
func All() []any {
	return []any{
		&AdminUser{},
		&About{},
		&Skill{},
		&Project{},
		&ContactMessage{},
		&MessageReply{},
	}
}
