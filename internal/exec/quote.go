package exec

import (
	"strings"

	"github.com/felixgeelhaar/vstask/internal/task"
)

// Script renders the line written to the shell's stdin for def.
//
// Shell tasks pass the command through untouched and quote an argument only
// when it contains whitespace or quotes. Process tasks quote the command and
// every argument so the shell runs them literally.
func Script(def *task.Definition, vars Variables) string {
	command := vars.Expand(def.Command)

	var b strings.Builder
	switch def.Type {
	case task.TypeProcess:
		b.WriteString(quote(command))
		for _, arg := range def.Args {
			b.WriteByte(' ')
			b.WriteString(quote(vars.Expand(arg)))
		}
	default:
		b.WriteString(command)
		for _, arg := range def.Args {
			arg = vars.Expand(arg)
			b.WriteByte(' ')
			if needsQuoting(arg) {
				b.WriteString(quote(arg))
			} else {
				b.WriteString(arg)
			}
		}
	}
	return b.String()
}

func needsQuoting(s string) bool {
	return s == "" || strings.ContainsAny(s, " \t\n\r\v\f'\"")
}

// quote wraps s in single quotes: foo'bar -> 'foo'\''bar'
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
