// Package assets provides the default brand marks used by print templates.
//
// # Loader Architecture
//
// The package implements a layered loading system:
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in marks)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// EmbeddedLoader provides the built-in logo and icon for each theme,
// embedded at compile time.
//
// FilesystemLoader allows users to provide their own default marks from a
// directory, with path traversal protection and symlink resolution.
//
// AssetResolver tries the custom FilesystemLoader first, falling back to
// EmbeddedLoader if the mark is not found. This enables overriding a single
// mark (for example only the dark icon) while keeping the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── marks/
//	    ├── light/
//	    │   ├── logo.svg|png   # wide logo on light backgrounds
//	    │   └── icon.svg|png   # square icon on light backgrounds
//	    └── dark/
//	        ├── logo.svg|png
//	        └── icon.svg|png
//
// # Security
//
// Theme and kind names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
