package diag

import "fmt"

// Argument is a name/value pair, the Go rendering of a variadic
// `MakePrintRecord_ArgumentList(name0, value0, name1, value1, …)` call.
// Using a slice of Argument instead of a flat variadic list sidesteps
// mismatched name/value arity entirely (Go has no compile-time variadic
// arity checking the way a C++ template pack does): mismatched pairing
// is simply not expressible.
type Argument struct {
	Name string
	Value any
}

// Arg is a convenience constructor for Argument.
func Arg(name string, value any) Argument { return Argument{Name: name, Value: value} }

// MakePrintRecord_Argument renders a single "name: value" section.
func MakePrintRecord_Argument(name string, value any) *PrintRecord {
	return MakePrintRecord(fmt.Sprintf("%s: %v", name, value), ThemeDefault)
}

// MakePrintRecord_ArgumentList renders a newline-joined "name: value" list.
func MakePrintRecord_ArgumentList(args ...Argument) *PrintRecord {
	r := &PrintRecord{}
	for i, a := range args {
		text := fmt.Sprintf("%s: %v", a.Name, a.Value)
		if i != len(args)-1 {
			text += "\n"
		}
		r.AppendSection(text, ThemeDefault)
	}
	return r
}

// MakePrintRecord_AssertText composes a title followed by an indented
// argument list. When exactly two string-valued arguments are given
// they're treated as an expected/actual pair and rendered as a unified
// diff instead of a flat argument list, since that's almost always what
// an equality assertion failure wants.
func MakePrintRecord_AssertText(title string, args ...Argument) *PrintRecord {
	r := MakePrintRecord(title+"\n", ThemeError)

	if len(args) == 2 {
		expected, eok := args[0].Value.(string)
		actual, aok := args[1].Value.(string)
		if eok && aok {
			body := RenderTextDiff(args[0].Name, expected, args[1].Name, actual)
			body.AddIndent(1)
			return r.Append(body)
		}
	}

	body := MakePrintRecord_ArgumentList(args...)
	body.AddIndent(1)
	return r.Append(body)
}

// MakePrintRecord_SourceLocation renders a source location as a single
// section.
func MakePrintRecord_SourceLocation(loc SourceLocation) *PrintRecord {
	return MakePrintRecord(loc.String(), ThemeDebug)
}
