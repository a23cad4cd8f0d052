package app

import (
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/specialistvlad/sheetgo/internal/sheet"
	"github.com/specialistvlad/sheetgo/internal/value"
	"github.com/zclconf/go-cty/cty"
	ctyjson "github.com/zclconf/go-cty/cty/json"
)

// Renderer writes an evaluated sheet.
type Renderer interface {
	Render(w io.Writer, name string, report *sheet.Report) error
}

// colorEnabled reports whether w is a terminal that should get colored
// output.
func colorEnabled(w io.Writer, noColor bool) bool {
	if noColor {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// TextRenderer writes one aligned line per entry. Derived values are
// highlighted when Color is set.
type TextRenderer struct {
	Color bool
}

func (r *TextRenderer) Render(w io.Writer, name string, report *sheet.Report) error {
	paint := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if r.Color {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	var (
		title   = paint(color.Bold)
		derived = paint(color.FgCyan)
		faint   = paint(color.Faint)
		failed  = paint(color.FgRed)
		warn    = paint(color.FgYellow)
	)

	width := 0
	for _, e := range report.Entries {
		width = max(width, utf8.RuneCountInString(e.Path.String()))
	}

	if name != "" {
		if _, err := fmt.Fprintln(w, title.Sprintf("sheet %s", name)); err != nil {
			return err
		}
	}
	for _, e := range report.Entries {
		var shown string
		switch e.Status {
		case sheet.StatusValue:
			text := value.Lit(e.Value).String()
			if e.Derived {
				text = derived.Sprint(text)
			}
			shown = text
		case sheet.StatusError:
			shown = failed.Sprintf("error: %v", e.Err)
		default:
			shown = faint.Sprintf("(%s)", e.Status)
		}

		line := fmt.Sprintf("%-*s  %s", width, e.Path.String(), shown)
		for _, v := range e.Violations {
			line += "  " + warn.Sprintf("! %s", v)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// JSONRenderer writes the sheet as a single JSON object:
//
//	{"sheet": ..., "values": {path: value}, "deferred": [path], "unset": [path],
//	 "errors": {path: message}, "violations": {path: [message]}}
type JSONRenderer struct{}

func (r *JSONRenderer) Render(w io.Writer, name string, report *sheet.Report) error {
	values := make(map[string]cty.Value)
	errs := make(map[string]cty.Value)
	violations := make(map[string]cty.Value)
	var deferred, unset []string

	for _, e := range report.Entries {
		path := e.Path.String()
		switch e.Status {
		case sheet.StatusValue:
			v, err := value.ToCty(e.Value)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			values[path] = v
		case sheet.StatusDeferred:
			deferred = append(deferred, path)
		case sheet.StatusUnset:
			unset = append(unset, path)
		case sheet.StatusError:
			errs[path] = cty.StringVal(e.Err.Error())
		}

		if len(e.Violations) > 0 {
			msgs := make([]string, 0, len(e.Violations))
			for _, v := range e.Violations {
				msgs = append(msgs, v.String())
			}
			violations[path] = stringList(msgs)
		}
	}

	doc := cty.ObjectVal(map[string]cty.Value{
		"sheet":      cty.StringVal(name),
		"values":     cty.ObjectVal(values),
		"deferred":   stringList(deferred),
		"unset":      stringList(unset),
		"errors":     mapOf(errs, cty.String),
		"violations": mapOf(violations, cty.List(cty.String)),
	})

	out, err := ctyjson.Marshal(doc, doc.Type())
	if err != nil {
		return err
	}
	out = append(out, '\n')
	_, err = w.Write(out)
	return err
}

func stringList(ss []string) cty.Value {
	if len(ss) == 0 {
		return cty.ListValEmpty(cty.String)
	}
	vals := make([]cty.Value, len(ss))
	for i, s := range ss {
		vals[i] = cty.StringVal(s)
	}
	return cty.ListVal(vals)
}

func mapOf(m map[string]cty.Value, elem cty.Type) cty.Value {
	if len(m) == 0 {
		return cty.MapValEmpty(elem)
	}
	return cty.MapVal(m)
}
