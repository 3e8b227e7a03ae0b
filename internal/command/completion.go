// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/staranto/curvenotego/internal/meta"
)

const bashCompletionScript = `# bash completion for curvenote
_curvenote()
{
    local cur=${COMP_WORDS[COMP_CWORD]}
    local root="--api-url --debug -d --site-url --token --version -v --help"
    local outputs="--attrs -a --color -c --filter -f --output -o --titles -t"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "build completion project user whoami $root" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
    build)
        COMPREPLY=( $(compgen -W "--config --out $root" -- "$cur") )
        ;;
    project|user)
        COMPREPLY=( $(compgen -W "$outputs $root" -- "$cur") )
        ;;
    completion)
        COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
        ;;
    *)
        COMPREPLY=( $(compgen -W "$root" -- "$cur") )
        ;;
    esac
}
complete -F _curvenote curvenote
`

const zshCompletionScript = `#compdef curvenote
_curvenote() {
  local -a root outputs
  root=(
    '--api-url[API base URL]:url:'
    '(-d --debug)'{-d,--debug}'[debug logging]'
    '--site-url[site base URL]:url:'
    '--token[API token, - for stdin]:token:'
  )
  outputs=(
    '(-a --attrs)'{-a,--attrs}'[attributes]:attrs:'
    '(-c --color)'{-c,--color}'[color output]'
    '(-f --filter)'{-f,--filter}'[filters]:filter:'
    '(-o --output)'{-o,--output}'[output format]:format:(text json yaml raw)'
    '(-t --titles)'{-t,--titles}'[show titles]'
  )

  if (( CURRENT == 2 )); then
    _values 'command' build completion project user whoami
    return
  fi

  case $words[2] in
    build)
      _arguments $root '--config[project file]:file:_files' '--out[output directory]:dir:_directories'
      ;;
    project|user)
      _arguments $root $outputs
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments $root
      ;;
  esac
}

if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _curvenote curvenote
`

func CompletionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := cmd.Args().First()
	if shell == "" {
		// Try to detect from SHELL.
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			shell = "zsh"
		case strings.HasSuffix(sh, "bash"):
			shell = "bash"
		}
	}

	w := outWriter(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		return errors.New("usage: curvenote completion [bash|zsh]")
	}
	return nil
}

func CompletionCommandBuilder(cmd *cli.Command, meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "curvenote completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: CompletionCommandAction,
	}
}
