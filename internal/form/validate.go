package form

import (
	"fmt"

	"formtree/internal/diagnostic"
	"formtree/internal/match"
	"formtree/pathtree"
)

// Validate checks a form definition for structural problems.
// Errors make the form unusable; warnings flag fields whose values can be
// overwritten when the tree is built.
func Validate(f *Form) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if f == nil {
		res.AddError("form_is_nil", "form is nil", "", "")
		return res
	}

	if f.Version != "" && f.Version != CurrentVersion {
		res.AddWarning("unsupported_version",
			fmt.Sprintf("form version %q is not %q; fields are read as version %q", f.Version, CurrentVersion, CurrentVersion),
			"", "")
	}

	seenNames := map[string]int{}
	resolved := make([]pathtree.Path, len(f.Fields))

	for i := range f.Fields {
		field := &f.Fields[i]

		if field.Name == "" {
			res.AddError("empty_field_name", fmt.Sprintf("field #%d has no name", i+1), "", field.Path.String())
		} else if prev, ok := seenNames[field.Name]; ok {
			res.AddError("duplicate_field",
				fmt.Sprintf("duplicate field %q (first declared as field #%d)", field.Name, prev+1),
				field.Name, field.Path.String())
		} else {
			seenNames[field.Name] = i
		}

		kind, kindErr := field.Kind()
		if kindErr != nil {
			d := res.AddError("unknown_type",
				fmt.Sprintf("unknown type %q (want string, bool or number)", field.Type),
				field.Name, field.Path.String())

			if best := match.Rank(field.Type, pathtree.KindNames()).AboveThreshold(match.DefaultMinScore).Best(); best != nil {
				d.WithSuggestions(best.Name)
			}
		}

		path, err := field.Path.Resolve()
		if err != nil {
			res.AddError("invalid_path", err.Error(), field.Name, field.Path.String())
		} else {
			resolved[i] = path
		}

		if field.Default != nil && kindErr == nil && field.Default.Kind() != kind {
			res.AddError("default_type_mismatch",
				fmt.Sprintf("default %q is a %s, field type is %s", field.Default.String(), field.Default.Kind(), kind),
				field.Name, field.Path.String())
		}
	}

	validatePathOverlaps(res, f, resolved)

	return res
}

// validatePathOverlaps warns about fields whose values are overwritten by
// other fields when the tree is built.
func validatePathOverlaps(res *diagnostic.Diagnostics, f *Form, resolved []pathtree.Path) {
	for i := range f.Fields {
		if resolved[i] == nil {
			continue
		}

		for j := range f.Fields {
			if i == j || resolved[j] == nil {
				continue
			}

			a, b := resolved[i], resolved[j]

			switch {
			case len(a) == len(b) && hasPrefix(b, a):
				// Same slot: the later field in declaration order wins.
				if i < j {
					res.AddWarning("duplicate_path",
						fmt.Sprintf("field %q writes the same path as %q; %q wins when both are set",
							f.Fields[i].Name, f.Fields[j].Name, f.Fields[j].Name),
						f.Fields[i].Name, a.String())
				}

			case len(a) < len(b) && hasPrefix(b, a):
				res.AddWarning("path_conflict",
					fmt.Sprintf("value of %q is replaced by a container when %q (%s) is set",
						f.Fields[i].Name, f.Fields[j].Name, b.String()),
					f.Fields[i].Name, a.String())
			}
		}
	}
}

func hasPrefix(p, prefix pathtree.Path) bool {
	if len(prefix) > len(p) {
		return false
	}

	for i := range prefix {
		if p[i] != prefix[i] {
			return false
		}
	}

	return true
}
