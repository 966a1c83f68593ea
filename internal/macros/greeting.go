package macros

import (
	"strings"
	"text/template"
)

// greetingTmpl is the function-like text macro of the demo: a fixed
// template with a single substitution point.
var greetingTmpl = template.Must(template.New("greeting").Parse(
	"Hello, {{.Name}}! Welcome to the game."))

// Greeting expands the greeting template for the given name.
func Greeting(name string) string {
	var b strings.Builder
	// The template is fixed and the data is a plain struct; execution
	// cannot fail at runtime.
	if err := greetingTmpl.Execute(&b, struct{ Name string }{Name: name}); err != nil {
		panic(err)
	}
	return b.String()
}
