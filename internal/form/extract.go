package form

import (
	"fmt"
	"sort"
	"strconv"

	"formtree/internal/diagnostic"
	"formtree/internal/match"
	"formtree/pathtree"
)

// ExtractConfig holds configuration for answer extraction.
type ExtractConfig struct {
	// IncludeHidden extracts hidden fields too.
	IncludeHidden bool
	// IncludeDisabled extracts disabled fields too.
	IncludeDisabled bool
	// CoerceStrings converts string answers for bool and number fields
	// ("true", "42") instead of reporting a type mismatch.
	CoerceStrings bool
	// MaxSuggestions caps "did you mean" suggestions for unknown answers.
	MaxSuggestions int
	// MinSuggestionScore is the lowest similarity worth suggesting.
	MinSuggestionScore float64
}

// DefaultExtractConfig returns the default extraction configuration.
func DefaultExtractConfig() ExtractConfig {
	return ExtractConfig{
		IncludeHidden:      false,
		IncludeDisabled:    false,
		CoerceStrings:      false,
		MaxSuggestions:     match.DefaultMaxSuggestions,
		MinSuggestionScore: match.DefaultMinScore,
	}
}

// Extract turns answers into tree entries, one per active field that ends up
// with a value. Entries follow declaration order. When the returned
// diagnostics hold errors no entries are returned.
func Extract(f *Form, answers Answers, cfg ExtractConfig) ([]pathtree.Entry, *diagnostic.Diagnostics) {
	res := Validate(f)
	if res.HasErrors() {
		return nil, res
	}

	entries, found := collect(f, answers, cfg)
	res.Merge(found)

	if res.HasErrors() {
		return nil, res
	}

	return entries, res
}

// collect applies answers and defaults to the fields of a valid form.
func collect(f *Form, answers Answers, cfg ExtractConfig) ([]pathtree.Entry, *diagnostic.Diagnostics) {
	res := &diagnostic.Diagnostics{}

	var entries []pathtree.Entry

	for i := range f.Fields {
		field := &f.Fields[i]
		path, _ := field.Path.Resolve()

		answer, answered := answers[field.Name]

		if !field.Active(cfg) {
			if answered {
				res.AddInfo("answer_ignored",
					fmt.Sprintf("answer for inactive field %q ignored", field.Name),
					field.Name, path.String())
			}

			continue
		}

		var value pathtree.Scalar

		switch {
		case answered:
			value = answer
		case field.Default != nil:
			value = field.Default.Scalar
		case field.Required:
			res.AddError("missing_required",
				fmt.Sprintf("required field %q has no answer", field.Name),
				field.Name, path.String())

			continue
		default:
			continue
		}

		kind, _ := field.Kind()

		converted, err := convert(value, kind, cfg.CoerceStrings)
		if err != nil {
			res.AddError("answer_type_mismatch", err.Error(), field.Name, path.String())
			continue
		}

		entries = append(entries, pathtree.Entry{Path: path, Value: converted})
	}

	reportUnknownAnswers(res, f, answers, cfg)

	return entries, res
}

// convert checks value against kind, parsing strings when coerce is set.
func convert(value pathtree.Scalar, kind pathtree.Kind, coerce bool) (pathtree.Scalar, error) {
	if value.Kind() == kind {
		return value, nil
	}

	str, isString := value.Str()
	if coerce && isString {
		switch kind {
		case pathtree.KindBool:
			b, err := strconv.ParseBool(str)
			if err == nil {
				return pathtree.BoolValue(b), nil
			}
		case pathtree.KindNumber:
			n, err := pathtree.ParseNumber(str)
			if err == nil {
				return n, nil
			}
		}
	}

	return pathtree.Scalar{}, fmt.Errorf("answer %q is a %s, field type is %s", value.String(), value.Kind(), kind)
}

func reportUnknownAnswers(res *diagnostic.Diagnostics, f *Form, answers Answers, cfg ExtractConfig) {
	names := f.FieldNames()

	var unknown []string

	for name := range answers {
		if f.FieldByName(name) == nil {
			unknown = append(unknown, name)
		}
	}

	sort.Strings(unknown)

	for _, name := range unknown {
		res.AddWarning("unknown_answer", fmt.Sprintf("answer %q matches no field", name), name, "").
			WithSuggestions(match.Suggest(name, names, cfg.MinSuggestionScore, cfg.MaxSuggestions)...)
	}
}
