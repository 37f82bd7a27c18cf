// Package prompt asks the active fields of a form on the terminal and
// returns the answers.
package prompt

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"formtree/internal/common"
	"formtree/internal/form"
	"formtree/pathtree"
)

// Question is one field prepared for asking, with the raw text or toggle the
// widget edits.
type Question struct {
	Field *form.Field
	Kind  pathtree.Kind
	Group string

	Text   string
	Toggle bool
}

// Questions prepares the active fields of f, pre-filled with their defaults.
// Fields are grouped by the first segment of their path, in order of first
// appearance.
func Questions(f *form.Form, cfg form.ExtractConfig) ([]*Question, error) {
	var questions []*Question

	for i := range f.Fields {
		field := &f.Fields[i]
		if !field.Active(cfg) {
			continue
		}

		kind, err := field.Kind()
		if err != nil {
			return nil, fmt.Errorf("field %q: %w", field.Name, err)
		}

		q := &Question{Field: field, Kind: kind, Group: field.Path.First()}

		if field.Default != nil {
			if b, ok := field.Default.Bool(); ok {
				q.Toggle = b
			} else {
				q.Text = field.Default.String()
			}
		}

		questions = append(questions, q)
	}

	return questions, nil
}

// Validate checks the current text of a string or number question.
func (q *Question) Validate(text string) error {
	if text == "" {
		if q.Field.Required {
			return errors.New("required")
		}

		return nil
	}

	if q.Kind == pathtree.KindNumber {
		if _, err := pathtree.ParseNumber(text); err != nil {
			return errors.New("not a number")
		}
	}

	return nil
}

// Answer converts the edited question into an answer. ok is false for an
// optional text question left empty.
func (q *Question) Answer() (pathtree.Scalar, bool, error) {
	switch q.Kind {
	case pathtree.KindBool:
		return pathtree.BoolValue(q.Toggle), true, nil
	case pathtree.KindNumber:
		if q.Text == "" {
			return pathtree.Scalar{}, false, nil
		}

		n, err := pathtree.ParseNumber(q.Text)
		if err != nil {
			return pathtree.Scalar{}, false, fmt.Errorf("field %q: %w", q.Field.Name, err)
		}

		return n, true, nil
	default:
		if q.Text == "" && q.Field.Default == nil {
			return pathtree.Scalar{}, false, nil
		}

		return pathtree.StringValue(q.Text), true, nil
	}
}

// Collect turns edited questions into answers.
func Collect(questions []*Question) (form.Answers, error) {
	answers := form.Answers{}

	for _, q := range questions {
		v, ok, err := q.Answer()
		if err != nil {
			return nil, err
		}

		if ok {
			answers[q.Field.Name] = v
		}
	}

	return answers, nil
}

// Prompter runs the interactive form.
type Prompter struct {
	Input      io.Reader
	Output     io.Writer
	Accessible bool
}

// Ask asks every active field of f and returns the answers.
func (p *Prompter) Ask(f *form.Form, cfg form.ExtractConfig) (form.Answers, error) {
	questions, err := Questions(f, cfg)
	if err != nil {
		return nil, err
	}

	if common.IsEmpty(questions) {
		return form.Answers{}, nil
	}

	hf := huh.NewForm(groups(f.Title, questions)...).WithAccessible(p.Accessible)
	if p.Input != nil {
		hf = hf.WithInput(p.Input)
	}

	if p.Output != nil {
		hf = hf.WithOutput(p.Output)
	}

	if err := hf.Run(); err != nil {
		return nil, fmt.Errorf("prompt: %w", err)
	}

	return Collect(questions)
}

func groups(title string, questions []*Question) []*huh.Group {
	var (
		order  []string
		fields = map[string][]huh.Field{}
	)

	for _, q := range questions {
		if _, ok := fields[q.Group]; !ok {
			order = append(order, q.Group)
		}

		fields[q.Group] = append(fields[q.Group], widget(q))
	}

	out := make([]*huh.Group, 0, len(order))

	for i, name := range order {
		g := huh.NewGroup(fields[name]...)
		if i == 0 && title != "" {
			g = g.Title(title)
		}

		out = append(out, g)
	}

	return out
}

func widget(q *Question) huh.Field {
	if q.Kind == pathtree.KindBool {
		return huh.NewConfirm().
			Title(q.Field.DisplayLabel()).
			Description(q.Field.Description).
			Value(&q.Toggle)
	}

	return huh.NewInput().
		Title(q.Field.DisplayLabel()).
		Description(q.Field.Description).
		Validate(q.Validate).
		Value(&q.Text)
}
