// Package assets provides the page templates, stylesheet and browser
// scripts used to build a site. Assets can be loaded from embedded files or
// overridden one by one from a directory.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from the go:embed filesystem
//	    ├── FilesystemLoader  - loads from a custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver is the loader used by the generator. It tries the custom
// FilesystemLoader first and falls back to EmbeddedLoader when the asset is
// not found, so a site can override a single template and keep the rest.
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   └── style.css            # Site stylesheet
//	├── scripts/
//	│   ├── search.js            # Search box
//	│   └── category.js          # Category grid/table toggle and sorting
//	└── templates/
//	    ├── base.html            # Page chrome (head, nav, footer)
//	    ├── home.html            # Homepage content
//	    ├── deal.html            # Deal detail content
//	    ├── category.html        # Category listing content
//	    └── card.html            # Deal card partial
//
// # Security
//
// Asset names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
