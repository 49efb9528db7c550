package cli

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/disrupted/dprint-plugin-markdown/internal/ui/pretty"
	"github.com/disrupted/dprint-plugin-markdown/pkg/config"
	"github.com/disrupted/dprint-plugin-markdown/pkg/mdast"
)

// kindsAnnotation marks commands whose help lists the node kinds.
const kindsAnnotation = "mdast/kinds"

const helpTemplate = `{{ heading .CommandPath }}{{ if .Version }} {{ dim .Version }}{{ end }}
{{ with (or .Long .Short) }}
{{ trimRight . }}
{{ end }}
{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Commands:" }}
{{- range .Commands }}{{ if (or .IsAvailableCommand (eq .Name "help")) }}
  {{ command (pad .Name .NamePadding) }} {{ .Short }}
{{- end }}{{ end }}
{{- end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags }}
{{- end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags }}
{{- end }}
{{- if index .Annotations "mdast/kinds" }}

{{ heading "Node kinds:" }}
{{ kinds }}
{{- end }}
{{- if .HasAvailableSubCommands }}

Run "{{ command .CommandPath }} [command] --help" for details on a command.
{{- end }}
`

// HelpFormatter renders Cobra help with the same palette as the tree dump.
type HelpFormatter struct {
	styles *pretty.Styles
	tmpl   *template.Template
}

// NewHelpFormatter creates a help formatter for the given color mode.
func NewHelpFormatter(colorMode config.ColorMode, writer io.Writer) *HelpFormatter {
	h := &HelpFormatter{styles: pretty.NewStyles(pretty.IsColorEnabled(colorMode, writer))}
	h.tmpl = template.Must(template.New("help").Funcs(template.FuncMap{
		"heading":   h.styles.SummaryTitle.Render,
		"command":   h.styles.Block.Render,
		"dim":       h.styles.Dim.Render,
		"pad":       pad,
		"trimRight": func(s string) string { return strings.TrimRight(s, " \t\n") },
		"flags":     h.flagUsages,
		"kinds":     h.kindList,
	}).Parse(helpTemplate))
	return h
}

// ApplyToCommand installs the help and usage functions on cmd. Subcommands
// inherit them.
func (h *HelpFormatter) ApplyToCommand(cmd *cobra.Command) {
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.Render(c.OutOrStdout(), c); err != nil {
			c.PrintErrln(err)
		}
	})
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.Render(c.OutOrStderr(), c)
	})
}

// Render writes the help text for cmd to w.
func (h *HelpFormatter) Render(w io.Writer, cmd *cobra.Command) error {
	if err := h.tmpl.Execute(w, cmd); err != nil {
		return fmt.Errorf("render help for %s: %w", cmd.Name(), err)
	}
	return nil
}

// flagUsages colors flag names in pflag's usage listing. Lines are split at
// the first run of three spaces, which pflag puts between the flag and its
// description.
func (h *HelpFormatter) flagUsages(set *pflag.FlagSet) string {
	usages := strings.TrimRight(set.FlagUsages(), "\n")

	lines := strings.Split(usages, "\n")
	for i, line := range lines {
		spec, desc, found := strings.Cut(line, "   ")
		if !found {
			continue
		}
		lines[i] = h.flagSpec(spec) + "   " + desc
	}
	return strings.Join(lines, "\n")
}

func (h *HelpFormatter) flagSpec(spec string) string {
	indent := spec[:len(spec)-len(strings.TrimLeft(spec, " "))]
	fields := strings.Fields(spec)
	for i, field := range fields {
		name, comma := strings.CutSuffix(field, ",")
		if strings.HasPrefix(name, "-") {
			name = h.styles.Attr.Render(name)
		} else {
			name = h.styles.Dim.Render(name)
		}
		if comma {
			name += ","
		}
		fields[i] = name
	}
	return indent + strings.Join(fields, " ")
}

// kindList lists block and inline node kinds on one line each.
func (h *HelpFormatter) kindList() string {
	var blocks, inlines []string
	for k := range mdast.KindCount {
		kind := mdast.Kind(k)
		switch {
		case kind.IsBlock():
			blocks = append(blocks, h.styles.Block.Render(kind.String()))
		case kind.IsInline():
			inlines = append(inlines, h.styles.Inline.Render(kind.String()))
		}
	}
	return "  block:  " + strings.Join(blocks, ", ") + "\n" +
		"  inline: " + strings.Join(inlines, ", ")
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
