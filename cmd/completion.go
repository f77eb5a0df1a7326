package cmd

import (
	"fmt"
	"os"
)

// Completion outputs shell completion scripts
func Completion(shell string) {
	switch shell {
	case "bash":
		fmt.Print(bashCompletion)
	case "zsh":
		fmt.Print(zshCompletion)
	case "fish":
		fmt.Print(fishCompletion)
	default:
		fmt.Fprintf(os.Stderr, "Unknown shell: %s\nSupported: bash, zsh, fish\n", shell)
		os.Exit(1)
	}
}

const bashCompletion = `_sealbox() {
    local cur prev words cword
    _init_completion || return

    local commands="init keygen encrypt decrypt drivers status help completion"

    if [[ $cword -eq 1 ]]; then
        COMPREPLY=($(compgen -W "$commands" -- "$cur"))
        return
    fi

    local cmd="${words[1]}"
    case "$cmd" in
        init)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "--driver" -- "$cur"))
            fi
            ;;
        keygen)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "--length" -- "$cur"))
            fi
            ;;
        encrypt|decrypt)
            if [[ "$cur" == -* ]]; then
                COMPREPLY=($(compgen -W "--driver --key" -- "$cur"))
            else
                _filedir
            fi
            ;;
        help)
            COMPREPLY=($(compgen -W "$commands" -- "$cur"))
            ;;
        completion)
            COMPREPLY=($(compgen -W "bash zsh fish" -- "$cur"))
            ;;
    esac
}

complete -F _sealbox sealbox
`

const zshCompletion = `#compdef sealbox

_sealbox() {
    local -a commands
    commands=(
        'init:Create a .sealbox store with a fresh key'
        'keygen:Generate a random key as hex'
        'encrypt:Encrypt stdin or a file to base64'
        'decrypt:Decrypt base64 input back to plaintext'
        'drivers:List drivers and their availability'
        'status:Show resolved configuration and store state'
        'help:Show help for a command'
        'completion:Generate shell completions'
    )

    _arguments -C \
        '1: :->command' \
        '*: :->args'

    case "$state" in
        command)
            _describe -t commands 'sealbox commands' commands
            ;;
        args)
            case "${words[2]}" in
                init)
                    _arguments '--driver[Driver to configure]'
                    ;;
                keygen)
                    _arguments '--length[Key length in bytes]'
                    ;;
                encrypt|decrypt)
                    _arguments \
                        '--driver[Driver to use]' \
                        '--key[Hex-encoded key material]' \
                        '*:file:_files'
                    ;;
                help)
                    _describe -t commands 'sealbox commands' commands
                    ;;
                completion)
                    _values 'shell' bash zsh fish
                    ;;
            esac
            ;;
    esac
}

_sealbox "$@"
`

const fishCompletion = `# sealbox fish completions

set -l commands init keygen encrypt decrypt drivers status help completion

complete -c sealbox -f

# Commands
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a init -d 'Create a .sealbox store'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a keygen -d 'Generate a random key'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a encrypt -d 'Encrypt stdin or a file'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a decrypt -d 'Decrypt base64 input'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a drivers -d 'List driver availability'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a status -d 'Show configuration'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a help -d 'Show help'
complete -c sealbox -n "not __fish_seen_subcommand_from $commands" -a completion -d 'Generate completions'

# init flags
complete -c sealbox -n "__fish_seen_subcommand_from init" -l driver -d 'Driver to configure'

# keygen flags
complete -c sealbox -n "__fish_seen_subcommand_from keygen" -l length -d 'Key length in bytes'

# encrypt/decrypt flags and files
complete -c sealbox -n "__fish_seen_subcommand_from encrypt decrypt" -l driver -d 'Driver to use'
complete -c sealbox -n "__fish_seen_subcommand_from encrypt decrypt" -l key -d 'Hex-encoded key'
complete -c sealbox -n "__fish_seen_subcommand_from encrypt decrypt" -F

# help completions
complete -c sealbox -n "__fish_seen_subcommand_from help" -a "$commands"

# completion completions
complete -c sealbox -n "__fish_seen_subcommand_from completion" -a "bash zsh fish"
`
