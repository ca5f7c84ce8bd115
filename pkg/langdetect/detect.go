// Package langdetect decides whether an input file holds Lua source.
// It uses go-enry for extension, shebang, and classifier based detection,
// backed by a few Lua-specific patterns for extensionless snippets.
package langdetect

import (
	"bytes"
	"path"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language names returned by Detect.
const (
	LangLua  = "lua"
	langText = "text"
	langBash = "bash"
)

// classifierCandidates are the languages the classifier chooses between when
// neither the path nor the content settle the question.
//
//nolint:gochecknoglobals // lookup table
var classifierCandidates = []string{
	"Lua", "MoonScript", "Python", "Ruby", "Shell", "Perl",
	"JavaScript", "TypeScript", "Go", "C", "C++", "JSON", "YAML",
}

// luaInterpreters are shebang interpreters that run Lua, without version suffix.
//
//nolint:gochecknoglobals // lookup table
var luaInterpreters = map[string]bool{
	"lua":    true,
	"luajit": true,
}

// Detect returns the lowercase language of a file.
// Returns "text" if detection fails or confidence is low. path may be empty.
func Detect(path string, content []byte) string {
	// Strategy 1: the file extension.
	if path != "" {
		if lang, safe := enry.GetLanguageByExtension(path); safe {
			return normalize(lang)
		}
	}

	if len(bytes.TrimSpace(content)) == 0 {
		return langText
	}

	// Strategy 2: the shebang line. enry is not decisive for every Lua
	// interpreter, so those are recognised first.
	if luaInterpreters[shebangInterpreter(content)] {
		return LangLua
	}
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	// Strategy 3: constructs that only Lua writes this way.
	if looksLikeLua(content) {
		return LangLua
	}

	// Strategy 4: the classifier, trusted only when it is confident.
	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return langText
}

// IsLua reports whether path and content look like Lua source.
func IsLua(path string, content []byte) bool {
	return Detect(path, content) == LangLua
}

// looksLikeLua requires a block closed by a bare "end" line together with a
// Lua block opener, and rejects Ruby style definitions.
func looksLikeLua(content []byte) bool {
	hasEnd := false
	hasOpener := false

	for line := range bytes.Lines(content) {
		trimmed := bytes.TrimSpace(line)
		switch {
		case len(trimmed) == 0:
			continue
		case bytes.HasPrefix(trimmed, []byte("def ")), bytes.HasPrefix(trimmed, []byte("class ")):
			return false
		case isEndLine(trimmed):
			hasEnd = true
		}

		text := string(trimmed)
		if strings.HasPrefix(text, "local function ") ||
			strings.HasPrefix(text, "function ") ||
			strings.HasSuffix(text, " then") ||
			strings.Contains(text, "= function(") ||
			strings.HasPrefix(text, "elseif ") ||
			strings.HasPrefix(text, "repeat") {
			hasOpener = true
		}
	}

	return hasEnd && hasOpener
}

// isEndLine matches "end" optionally followed by a separator or a comment.
func isEndLine(trimmed []byte) bool {
	if !bytes.HasPrefix(trimmed, []byte("end")) {
		return false
	}
	rest := trimmed[len("end"):]
	return len(rest) == 0 || rest[0] == ')' || rest[0] == ',' || rest[0] == ';' || bytes.HasPrefix(rest, []byte(" --"))
}

// normalize converts go-enry language names to lowercase identifiers.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}

// shebangInterpreter returns the interpreter named by a "#!" first line, looking
// through env and dropping a trailing version such as the 5.4 of lua5.4.
func shebangInterpreter(content []byte) string {
	line, _, _ := bytes.Cut(content, []byte("\n"))
	rest, ok := bytes.CutPrefix(bytes.TrimRight(line, "\r"), []byte("#!"))
	if !ok {
		return ""
	}

	fields := strings.Fields(string(rest))
	if len(fields) == 0 {
		return ""
	}

	interpreter := path.Base(fields[0])
	if interpreter == "env" {
		interpreter = ""
		for _, field := range fields[1:] {
			if strings.HasPrefix(field, "-") || strings.Contains(field, "=") {
				continue
			}
			interpreter = path.Base(field)
			break
		}
	}

	return strings.TrimRight(interpreter, "0123456789.")
}
