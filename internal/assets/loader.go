package assets

// AssetLoader defines the contract for loading site assets by name.
// Names never include a directory or an extension.
type AssetLoader interface {
	// LoadStyle loads a stylesheet (styles/{name}.css).
	LoadStyle(name string) (string, error)

	// LoadScript loads a browser script (scripts/{name}.js).
	LoadScript(name string) (string, error)

	// LoadTemplate loads a page template (templates/{name}.html).
	LoadTemplate(name string) (string, error)
}

// kind describes one asset family: its directory, extension and the
// error returned when a name is missing.
type kind struct {
	dir      string
	ext      string
	notFound error
}

var (
	styleKind    = kind{dir: "styles", ext: ".css", notFound: ErrStyleNotFound}
	scriptKind   = kind{dir: "scripts", ext: ".js", notFound: ErrScriptNotFound}
	templateKind = kind{dir: "templates", ext: ".html", notFound: ErrTemplateNotFound}
)
