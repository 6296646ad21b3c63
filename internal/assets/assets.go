package assets

import "fmt"

// Built-in asset names.
const (
	StyleName          = "style"
	SearchScriptName   = "search"
	CategoryScriptName = "category"
	CopyScriptName     = "copy"
)

// Template names. Every page executes "base", which pulls in the page's
// "content" block and the shared "card" partial.
const (
	TemplateBase     = "base"
	TemplateHome     = "home"
	TemplateDeal     = "deal"
	TemplateCategory = "category"
	TemplateCard     = "card"
)

// TemplateNames lists every template a TemplateSet holds.
func TemplateNames() []string {
	return []string{TemplateBase, TemplateHome, TemplateDeal, TemplateCategory, TemplateCard}
}

// TemplateSet holds the raw page templates used by one build.
type TemplateSet struct {
	Base     string
	Home     string
	Deal     string
	Category string
	Card     string
}

// LoadTemplateSet loads every template through loader.
func LoadTemplateSet(loader AssetLoader) (*TemplateSet, error) {
	ts := &TemplateSet{}
	targets := map[string]*string{
		TemplateBase:     &ts.Base,
		TemplateHome:     &ts.Home,
		TemplateDeal:     &ts.Deal,
		TemplateCategory: &ts.Category,
		TemplateCard:     &ts.Card,
	}
	for _, name := range TemplateNames() {
		content, err := loader.LoadTemplate(name)
		if err != nil {
			return nil, fmt.Errorf("loading template %s: %w", name, err)
		}
		*targets[name] = content
	}
	return ts, nil
}

// Bundle is the set of static files written at the site root.
type Bundle struct {
	Style          string
	SearchScript   string
	CategoryScript string
	CopyScript     string
}

// LoadBundle loads the stylesheet and scripts through loader.
func LoadBundle(loader AssetLoader) (*Bundle, error) {
	style, err := loader.LoadStyle(StyleName)
	if err != nil {
		return nil, fmt.Errorf("loading stylesheet: %w", err)
	}
	searchJS, err := loader.LoadScript(SearchScriptName)
	if err != nil {
		return nil, fmt.Errorf("loading search script: %w", err)
	}
	categoryJS, err := loader.LoadScript(CategoryScriptName)
	if err != nil {
		return nil, fmt.Errorf("loading category script: %w", err)
	}
	copyJS, err := loader.LoadScript(CopyScriptName)
	if err != nil {
		return nil, fmt.Errorf("loading copy script: %w", err)
	}
	return &Bundle{Style: style, SearchScript: searchJS, CategoryScript: categoryJS, CopyScript: copyJS}, nil
}
