package cmd

import (
	"fmt"
)

type CompletionCmd struct {
	Shell string `arg:"" help:"Shell type: bash, zsh, or fish"`
}

func (c *CompletionCmd) Run() error {
	switch c.Shell {
	case "bash":
		return c.generateBash()
	case "zsh":
		return c.generateZsh()
	case "fish":
		return c.generateFish()
	default:
		return fmt.Errorf("unsupported shell: %s (supported: bash, zsh, fish)", c.Shell)
	}
}

func (c *CompletionCmd) generateBash() error {
	script := `# bash completion for facestl

_facestl_completions() {
    local cur prev opts
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    # Main commands
    if [[ ${COMP_CWORD} -eq 1 ]]; then
        opts="export inspect init completion version"
        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        export)
            case "${prev}" in
                -o|--export-dir)
                    COMPREPLY=( $(compgen -d -- ${cur}) )
                    return 0
                    ;;
                --format)
                    COMPREPLY=( $(compgen -W "binary ascii" -- ${cur}) )
                    return 0
                    ;;
                *)
                    if [[ ${cur} == -* ]]; then
                        opts="-o --export-dir --format --dry-run -h --help"
                        COMPREPLY=( $(compgen -W "${opts}" -- ${cur}) )
                    else
                        COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
                    fi
                    return 0
                    ;;
            esac
            ;;
        inspect)
            if [[ ${prev} == "-c" || ${prev} == "--config" ]]; then
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            else
                COMPREPLY=( $(compgen -f -X '!*.@(yaml|yml)' -- ${cur}) )
            fi
            return 0
            ;;
        init)
            if [[ ${cur} == -* ]]; then
                COMPREPLY=( $(compgen -W "-o --output -h --help" -- ${cur}) )
            fi
            return 0
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh fish" -- ${cur}) )
            return 0
            ;;
    esac
}

complete -F _facestl_completions facestl
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) generateZsh() error {
	script := `#compdef facestl

_facestl() {
    local -a commands
    commands=(
        'export:Export color-classified face groups to STL files'
        'inspect:Inspect a scene snapshot and preview face groups'
        'init:Print or write a sample job configuration'
        'completion:Generate shell completion scripts'
        'version:Show version information'
    )

    if (( CURRENT == 2 )); then
        _describe 'command' commands
        return
    fi

    case "${words[2]}" in
        export)
            _arguments \
                '(-o --export-dir)'{-o,--export-dir}'[Override the export directory]:directory:_directories' \
                '--format[STL format]:format:(binary ascii)' \
                '--dry-run[Classify without writing files]' \
                '*:config file:_files -g "*.(yaml|yml)"'
            ;;
        inspect)
            _arguments \
                '(-c --config)'{-c,--config}'[Job configuration]:config file:_files -g "*.(yaml|yml)"' \
                '*:scene file:_files -g "*.(yaml|yml)"'
            ;;
        init)
            _arguments \
                '(-o --output)'{-o,--output}'[Write to file]:file:_files'
            ;;
        completion)
            _values 'shell' bash zsh fish
            ;;
    esac
}

_facestl "$@"
`
	fmt.Print(script)
	return nil
}

func (c *CompletionCmd) generateFish() error {
	script := `# fish completion for facestl

complete -c facestl -f

complete -c facestl -n '__fish_use_subcommand' -a export -d 'Export color-classified face groups to STL files'
complete -c facestl -n '__fish_use_subcommand' -a inspect -d 'Inspect a scene snapshot and preview face groups'
complete -c facestl -n '__fish_use_subcommand' -a init -d 'Print or write a sample job configuration'
complete -c facestl -n '__fish_use_subcommand' -a completion -d 'Generate shell completion scripts'
complete -c facestl -n '__fish_use_subcommand' -a version -d 'Show version information'

complete -c facestl -n '__fish_seen_subcommand_from export' -s o -l export-dir -d 'Override the export directory' -x -a '(__fish_complete_directories)'
complete -c facestl -n '__fish_seen_subcommand_from export' -l format -d 'STL format' -x -a 'binary ascii'
complete -c facestl -n '__fish_seen_subcommand_from export' -l dry-run -d 'Classify without writing files'
complete -c facestl -n '__fish_seen_subcommand_from export' -k -x -a '(__fish_complete_suffix .yaml .yml)'

complete -c facestl -n '__fish_seen_subcommand_from inspect' -s c -l config -d 'Job configuration' -k -x -a '(__fish_complete_suffix .yaml .yml)'
complete -c facestl -n '__fish_seen_subcommand_from inspect' -k -x -a '(__fish_complete_suffix .yaml .yml)'

complete -c facestl -n '__fish_seen_subcommand_from init' -s o -l output -d 'Write to file' -r

complete -c facestl -n '__fish_seen_subcommand_from completion' -x -a 'bash zsh fish'
`
	fmt.Print(script)
	return nil
}
