package config

// Template returns a commented starter configuration. Every setting is
// shown at its default.
func Template() []byte {
	return []byte(`# mdast configuration
# Searched for as .mdast.yml or .mdast.yaml from the working directory up.

# Markdown flavor: commonmark or gfm
flavor: gfm

# Styled output: auto, always, or never
color: auto

parser:
  # Read a leading --- block as YAML front matter
  front_matter: true
  # Recognize [^label] footnotes
  footnotes: true

dump:
  # Show a source preview next to each node
  text: true
  # Guess a language for code blocks without an info string
  detect_language: true
  # Preview width; 0 follows the terminal
  width: 0

check:
  extensions:
    - .md
    - .markdown
  # Glob patterns to skip; ** spans directories
  exclude:
    - node_modules
    - vendor/**
  follow_symlinks: false
  # Reject larger files; 0 means unlimited
  max_bytes: 0
`)
}
