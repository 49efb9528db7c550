package configloader

import "github.com/disrupted/dprint-plugin-markdown/pkg/config"

// merge combines two configurations, with override taking precedence:
//   - scalars overwrite when non-zero
//   - optional toggles overwrite when non-nil, so false can unset true
//   - slices replace entirely when non-nil
func merge(base, override *config.Config) *config.Config {
	if base == nil {
		return override.Clone()
	}
	if override == nil {
		return base.Clone()
	}

	result := base.Clone()

	if override.Flavor != "" {
		result.Flavor = override.Flavor
	}
	if override.Color != "" {
		result.Color = override.Color
	}

	mergeBool(&result.Parser.FrontMatter, override.Parser.FrontMatter)
	mergeBool(&result.Parser.Footnotes, override.Parser.Footnotes)

	mergeBool(&result.Dump.Text, override.Dump.Text)
	mergeBool(&result.Dump.DetectLanguage, override.Dump.DetectLanguage)
	if override.Dump.Width != 0 {
		result.Dump.Width = override.Dump.Width
	}
	if override.Dump.Raw {
		result.Dump.Raw = true
	}

	if override.Check.Extensions != nil {
		result.Check.Extensions = append([]string(nil), override.Check.Extensions...)
	}
	if override.Check.Exclude != nil {
		result.Check.Exclude = append([]string(nil), override.Check.Exclude...)
	}
	if override.Check.FollowSymlinks {
		result.Check.FollowSymlinks = true
	}
	if override.Check.MaxBytes != 0 {
		result.Check.MaxBytes = override.Check.MaxBytes
	}
	if override.Check.Jobs != 0 {
		result.Check.Jobs = override.Check.Jobs
	}

	return result
}

func mergeBool(dst **bool, src *bool) {
	if src != nil {
		*dst = config.Bool(*src)
	}
}

// MergeAll merges configurations in order, later ones taking precedence.
func MergeAll(configs ...*config.Config) *config.Config {
	var result *config.Config
	for _, cfg := range configs {
		result = merge(result, cfg)
	}
	return result
}
