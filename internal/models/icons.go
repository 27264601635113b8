package models

import (
	"encoding/json"
	"fmt"
	"sort"
)

// IconID identifies one icon from the fixed catalog rendered by the frontend
type IconID string

// IconLibrary is the frontend icon pack an IconID belongs to
type IconLibrary string

const (
	IconLibraryFontAwesome IconLibrary = "react-icons/fa"
	IconLibrarySimple      IconLibrary = "react-icons/si"
)

// IconSpec describes how the frontend renders an icon
type IconSpec struct {
	Library IconLibrary `json:"library"`
	Label   string      `json:"label"`
	Color   string      `json:"color"`
}

// DefaultIconID is used when a skill is created without an icon
const DefaultIconID IconID = "FaCog"

var iconCatalog = map[IconID]IconSpec{
	"FaReact":            {IconLibraryFontAwesome, "React", "#61DAFB"},
	"FaNodeJs":           {IconLibraryFontAwesome, "Node.js", "#339933"},
	"FaJs":               {IconLibraryFontAwesome, "JavaScript", "#F7DF1E"},
	"FaPython":           {IconLibraryFontAwesome, "Python", "#3776AB"},
	"FaJava":             {IconLibraryFontAwesome, "Java", "#007396"},
	"FaPhp":              {IconLibraryFontAwesome, "PHP", "#777BB4"},
	"FaGithub":           {IconLibraryFontAwesome, "GitHub", "#181717"},
	"FaGitAlt":           {IconLibraryFontAwesome, "Git", "#F05032"},
	"FaDocker":           {IconLibraryFontAwesome, "Docker", "#2496ED"},
	"FaAws":              {IconLibraryFontAwesome, "AWS", "#FF9900"},
	"FaCss3Alt":          {IconLibraryFontAwesome, "CSS3", "#1572B6"},
	"FaHtml5":            {IconLibraryFontAwesome, "HTML5", "#E34F26"},
	"FaCog":              {IconLibraryFontAwesome, "Generic", "#6B7280"},
	"SiMongodb":          {IconLibrarySimple, "MongoDB", "#47A248"},
	"SiExpress":          {IconLibrarySimple, "Express", "#000000"},
	"SiTailwindcss":      {IconLibrarySimple, "Tailwind CSS", "#06B6D4"},
	"SiFigma":            {IconLibrarySimple, "Figma", "#F24E1E"},
	"SiAdobeillustrator": {IconLibrarySimple, "Illustrator", "#FF9A00"},
	"SiAdobephotoshop":   {IconLibrarySimple, "Photoshop", "#31A8FF"},
	"SiSketch":           {IconLibrarySimple, "Sketch", "#F7B500"},
	"SiCanva":            {IconLibrarySimple, "Canva", "#00C4CC"},
	"SiMysql":            {IconLibrarySimple, "MySQL", "#4479A1"},
	"SiPostgresql":       {IconLibrarySimple, "PostgreSQL", "#4169E1"},
	"SiRedis":            {IconLibrarySimple, "Redis", "#DC382D"},
	"SiNextdotjs":        {IconLibrarySimple, "Next.js", "#000000"},
	"SiVuedotjs":         {IconLibrarySimple, "Vue.js", "#4FC08D"},
	"SiAngular":          {IconLibrarySimple, "Angular", "#DD0031"},
	"SiDjango":           {IconLibrarySimple, "Django", "#092E20"},
	"SiFlask":            {IconLibrarySimple, "Flask", "#000000"},
	"SiPostman":          {IconLibrarySimple, "Postman", "#FF6C37"},
	"SiJira":             {IconLibrarySimple, "Jira", "#0052CC"},
	"SiSlack":            {IconLibrarySimple, "Slack", "#4A154B"},
	"SiNotion":           {IconLibrarySimple, "Notion", "#000000"},
	"SiTypescript":       {IconLibrarySimple, "TypeScript", "#3178C6"},
}

// Spec returns the catalog entry for id
func (id IconID) Spec() (IconSpec, bool) {
	spec, ok := iconCatalog[id]
	return spec, ok
}

func (id IconID) IsValid() bool {
	_, ok := iconCatalog[id]
	return ok
}

// IconCatalogEntry is one row of the public icon catalog
type IconCatalogEntry struct {
	ID IconID `json:"id"`
	IconSpec
}

// IconCatalog returns every known icon sorted by id
func IconCatalog() []IconCatalogEntry {
	entries := make([]IconCatalogEntry, 0, len(iconCatalog))
	for id, spec := range iconCatalog {
		entries = append(entries, IconCatalogEntry{ID: id, IconSpec: spec})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })
	return entries
}

// SkillIcon is the stored icon reference of a skill. Library is resolved from
// the catalog when rendered and ignored on input.
type SkillIcon struct {
	Name      IconID `json:"name"`
	Size      string `json:"size,omitempty"`
	ClassName string `json:"className,omitempty"`
}

// Validate rejects icons missing from the catalog
func (i SkillIcon) Validate() error {
	if !i.Name.IsValid() {
		return fmt.Errorf("unknown icon %q", i.Name)
	}
	return nil
}

func (i SkillIcon) MarshalJSON() ([]byte, error) {
	spec, _ := i.Name.Spec()
	return json.Marshal(struct {
		Name      IconID      `json:"name"`
		Library   IconLibrary `json:"library"`
		Size      string      `json:"size,omitempty"`
		ClassName string      `json:"className,omitempty"`
	}{i.Name, spec.Library, i.Size, i.ClassName})
}
