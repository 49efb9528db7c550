// Package langdetect guesses the language of code block contents. It uses
// go-enry for shebangs and classification, after a set of cheap patterns
// that recognise the languages most common in documentation.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"

	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// Unknown is returned when no language is recognised.
const Unknown = "text"

// candidates limits the classifier to languages seen in docs.
//
//nolint:gochecknoglobals // Read-only lookup table.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "TOML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// pattern recognises one language from the content and its trimmed form.
type pattern struct {
	lang  string
	match func(content, trimmed []byte, text string) bool
}

// patterns are tried in order; earlier entries are more specific.
//
//nolint:gochecknoglobals // Read-only lookup table.
var patterns = []pattern{
	{"go", func(_, trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("package "))
	}},
	{"diff", func(_, trimmed []byte, text string) bool {
		return bytes.HasPrefix(trimmed, []byte("diff --git ")) ||
			(strings.Contains(text, "\n@@ ") && strings.Contains(text, "\n+")) ||
			(bytes.HasPrefix(trimmed, []byte("--- ")) && strings.Contains(text, "\n+++ "))
	}},
	{"python", func(_, _ []byte, text string) bool {
		if strings.Contains(text, "def ") && strings.Contains(text, "):") {
			return true
		}
		if strings.Contains(text, "__name__") || strings.Contains(text, "__main__") {
			return true
		}
		// Go groups imports in parentheses.
		if strings.Contains(text, "import ") && !strings.Contains(text, "import (") {
			return strings.Contains(text, "from ") || strings.HasPrefix(strings.TrimSpace(text), "import ")
		}
		return false
	}},
	{"html", func(_, trimmed []byte, _ string) bool {
		lower := bytes.ToLower(trimmed)
		for _, tag := range []string{"<!doctype html", "<html", "<head>", "<body>"} {
			if bytes.Contains(lower, []byte(tag)) {
				return true
			}
		}
		return false
	}},
	{"json", func(_, trimmed []byte, _ string) bool {
		return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
			bytes.Contains(trimmed, []byte(`"`))
	}},
	{"dockerfile", func(content, trimmed []byte, _ string) bool {
		return bytes.HasPrefix(trimmed, []byte("FROM ")) ||
			(bytes.Contains(content, []byte("\nFROM ")) && bytes.Contains(content, []byte("\nRUN "))) ||
			(bytes.Contains(content, []byte("WORKDIR ")) && bytes.Contains(content, []byte("COPY ")))
	}},
	{"sql", func(_, _ []byte, text string) bool {
		upper := strings.ToUpper(strings.TrimSpace(text))
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(_, _ []byte, text string) bool {
		return strings.Contains(text, "fn main()") ||
			strings.Contains(text, "println!") ||
			strings.Contains(text, "let mut ")
	}},
	{"javascript", func(_, _ []byte, text string) bool {
		return strings.Contains(text, "=>") ||
			strings.Contains(text, "const ") ||
			strings.Contains(text, "let ") ||
			strings.Contains(text, "console.log")
	}},
	{"yaml", func(content, _ []byte, _ string) bool {
		return yamlKeys(content) >= 2
	}},
}

// Detect returns a fence tag for content, or Unknown.
func Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return Unknown
	}

	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	trimmed := bytes.TrimSpace(content)
	text := string(content)
	for _, p := range patterns {
		if p.match(content, trimmed, text) {
			return p.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier(content, candidates); safe && lang != "" {
		return normalize(lang)
	}

	return Unknown
}

// ForCodeBlock returns the block's own tag when it has one. Otherwise it
// returns a guess from the code, with guessed set.
func ForCodeBlock(cb *mdast.CodeBlock) (lang string, guessed bool) {
	if cb == nil {
		return Unknown, false
	}
	if tag := strings.TrimSpace(cb.Tag); tag != "" {
		if i := strings.IndexAny(tag, " \t{"); i > 0 {
			tag = tag[:i]
		}
		return tag, false
	}
	return Detect([]byte(cb.Code)), true
}

// yamlKeys counts "key: value" lines and root list items. Lines that look
// like code are not counted.
func yamlKeys(content []byte) int {
	count := 0
	for line := range bytes.SplitSeq(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) &&
			!bytes.ContainsAny(line, "({") &&
			line[0] != '"' {
			count++
		}
		if bytes.HasPrefix(line, []byte("- ")) {
			count++
		}
	}
	return count
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
