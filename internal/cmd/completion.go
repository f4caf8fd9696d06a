package cmd

import (
	"strings"
	"text/template"
)

var completionTemplate = template.Must(template.New("completion").Parse(`#!/bin/bash
_{{.Prog}}()
{
    local cur prev flags opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"
    flags="{{.Completable}}"
    opts="$(${COMP_WORDS[0]} -l 2>/dev/null)"

    case "${prev}" in
{{- if .Terminal}}
        {{.Terminal}}) COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) ) ;;
{{- end}}
        *) COMPREPLY=( $(compgen -W "${flags} ${opts}" -- ${cur}) ) ;;
    esac
}
complete -F _{{.Prog}} {{.Prog}}
`))

// RenderCompletion returns a bash completion script for prog.
//
// Completable flags are offered in long form. After a terminal flag only
// task names are offered; task names come from running "prog -l".
func RenderCompletion(flags []Flag, prog string) string {
	var completable, terminal []string
	for _, f := range flags {
		if f.Completable {
			completable = append(completable, "--"+f.Long)
		}
		if f.Terminal {
			terminal = append(terminal, f.Names()...)
		}
	}

	var b strings.Builder
	// The template only interpolates strings; Execute cannot fail.
	_ = completionTemplate.Execute(&b, struct {
		Prog        string
		Completable string
		Terminal    string
	}{
		Prog:        prog,
		Completable: strings.Join(completable, " "),
		Terminal:    strings.Join(terminal, "|"),
	})
	return b.String()
}
