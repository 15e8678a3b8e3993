package language

import (
	"path/filepath"
	"strings"
)

// defaultLanguages maps lowercased file extensions (with dot) to
// language labels. Unmapped extensions are not an error; the entry
// simply carries no language.
var defaultLanguages = map[string]string{
	".go":    "Go",
	".ts":    "TypeScript",
	".tsx":   "TypeScript",
	".js":    "JavaScript",
	".jsx":   "JavaScript",
	".mjs":   "JavaScript",
	".py":    "Python",
	".rb":    "Ruby",
	".rs":    "Rust",
	".java":  "Java",
	".kt":    "Kotlin",
	".swift": "Swift",
	".c":     "C",
	".h":     "C",
	".cpp":   "C++",
	".cc":    "C++",
	".hpp":   "C++",
	".cs":    "C#",
	".php":   "PHP",
	".pl":    "Perl",
	".sh":    "Shell",
	".bash":  "Shell",
	".ps1":   "PowerShell",
	".sql":   "SQL",
	".html":  "HTML",
	".htm":   "HTML",
	".css":   "CSS",
	".scss":  "SCSS",
	".json":  "JSON",
	".yaml":  "YAML",
	".yml":   "YAML",
	".toml":  "TOML",
	".xml":   "XML",
	".md":    "Markdown",
	".txt":   "Text",
}

// binaryExtensions are never read during content-map builds; the
// lookup is case-insensitive
var binaryExtensions = map[string]bool{
	".exe":   true,
	".dll":   true,
	".so":    true,
	".dylib": true,
	".bin":   true,
	".jpg":   true,
	".jpeg":  true,
	".png":   true,
	".gif":   true,
	".pdf":   true,
	".zip":   true,
	".tar":   true,
	".gz":    true,
}

// Table resolves extensions to language labels. The zero value is not
// usable; construct with NewTable or LoadTable.
type Table struct {
	languages map[string]string
}

// NewTable returns a table with the built-in mappings
func NewTable() *Table {
	languages := make(map[string]string, len(defaultLanguages))
	for ext, lang := range defaultLanguages {
		languages[ext] = lang
	}
	return &Table{languages: languages}
}

// Detect returns the language label for an extension, or "" when the
// extension is unknown
func (t *Table) Detect(extension string) string {
	return t.languages[strings.ToLower(extension)]
}

// Extensions returns all known extensions
func (t *Table) Extensions() []string {
	exts := make([]string, 0, len(t.languages))
	for ext := range t.languages {
		exts = append(exts, ext)
	}
	return exts
}

// Extension returns the lowercased extension of a path, including the
// leading dot. Files without an extension yield ""
func Extension(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

// IsBinary reports whether the extension belongs to the binary set
func IsBinary(extension string) bool {
	return binaryExtensions[strings.ToLower(extension)]
}
