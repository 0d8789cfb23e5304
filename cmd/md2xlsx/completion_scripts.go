package main

import (
	"fmt"
	"io"
	"strings"
)

// commandWords returns the space-separated command list.
func commandWords(cmds []commandDef) string {
	names := make([]string, 0, len(cmds))
	for _, c := range cmds {
		names = append(names, c.Name)
	}
	return strings.Join(names, " ")
}

// flagWords returns the space-separated flag spellings for wordlists.
func flagWords(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "--"+f.Long)
		if f.Short != "" {
			words = append(words, "-"+f.Short)
		}
	}
	return strings.Join(words, " ")
}

// prevPattern returns the bash case pattern matching a flag.
func prevPattern(f flagDef) string {
	if f.Short != "" {
		return fmt.Sprintf("-%s|--%s", f.Short, f.Long)
	}
	return "--" + f.Long
}

// valuedFlags filters flags that complete a specific value kind.
func valuedFlags(flags []flagDef) []flagDef {
	var out []flagDef
	for _, f := range flags {
		switch f.Type {
		case flagEnum, flagFile, flagDir:
			out = append(out, f)
		}
	}
	return out
}

// generateBash writes a bash completion script built on compgen wordlists.
func generateBash(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# bash completion for md2xlsx\n\n")
	b.WriteString("_md2xlsx_completions() {\n")
	b.WriteString("    local cur prev\n")
	b.WriteString("    COMPREPLY=()\n")
	b.WriteString("    cur=\"${COMP_WORDS[COMP_CWORD]}\"\n")
	b.WriteString("    prev=\"${COMP_WORDS[COMP_CWORD-1]}\"\n\n")

	b.WriteString("    if [[ ${COMP_CWORD} -eq 1 ]]; then\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", commandWords(cmds))
	b.WriteString("        return 0\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${COMP_WORDS[1]}\" in\n")
	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 && !cmd.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", cmd.Name)

		if valued := valuedFlags(cmd.Flags); len(valued) > 0 {
			b.WriteString("        case \"${prev}\" in\n")
			for _, f := range valued {
				fmt.Fprintf(&b, "        %s)\n", prevPattern(f))
				switch f.Type {
				case flagEnum:
					fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", strings.Join(f.Values, " "))
				case flagDir:
					b.WriteString("            COMPREPLY=( $(compgen -d -- \"${cur}\") )\n")
				default:
					b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
				}
				b.WriteString("            return 0\n")
				b.WriteString("            ;;\n")
			}
			b.WriteString("        esac\n")
		}

		b.WriteString("        if [[ ${cur} == -* ]]; then\n")
		fmt.Fprintf(&b, "            COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", flagWords(cmd.Flags))
		if cmd.TakesFiles {
			b.WriteString("        else\n")
			b.WriteString("            COMPREPLY=( $(compgen -f -- \"${cur}\") )\n")
		}
		b.WriteString("        fi\n")
		b.WriteString("        ;;\n")
	}
	b.WriteString("    completion)\n")
	b.WriteString("        COMPREPLY=( $(compgen -W \"bash zsh fish powershell\" -- \"${cur}\") )\n")
	b.WriteString("        ;;\n")
	b.WriteString("    help)\n")
	fmt.Fprintf(&b, "        COMPREPLY=( $(compgen -W \"%s\" -- \"${cur}\") )\n", commandWords(cmds))
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("complete -F _md2xlsx_completions md2xlsx\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// zshSanitize strips characters that break _arguments descriptions.
func zshSanitize(s string) string {
	s = strings.ReplaceAll(s, "[", "(")
	s = strings.ReplaceAll(s, "]", ")")
	s = strings.ReplaceAll(s, "'", "")
	return s
}

// zshGlob converts a comma-separated glob list to a zsh alternation glob.
func zshGlob(glob string) string {
	pats := strings.Split(glob, ",")
	if len(pats) == 1 {
		return glob
	}
	exts := make([]string, 0, len(pats))
	for _, p := range pats {
		exts = append(exts, strings.TrimPrefix(p, "*."))
	}
	return "*.(" + strings.Join(exts, "|") + ")"
}

// zshSpec renders one _arguments spec for a flag.
func zshSpec(f flagDef) string {
	desc := zshSanitize(f.Desc)
	spelling := "--" + f.Long
	switch f.Type {
	case flagBool:
		return fmt.Sprintf("'%s[%s]'", spelling, desc)
	case flagEnum:
		return fmt.Sprintf("'%s[%s]:value:(%s)'", spelling, desc, strings.Join(f.Values, " "))
	case flagFile:
		return fmt.Sprintf("'%s[%s]:file:_files -g \"%s\"'", spelling, desc, zshGlob(f.FileGlob))
	case flagDir:
		return fmt.Sprintf("'%s[%s]:directory:_files -/'", spelling, desc)
	default:
		return fmt.Sprintf("'%s[%s]:value:'", spelling, desc)
	}
}

// generateZsh writes a zsh completion script using _arguments and _describe.
func generateZsh(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("#compdef md2xlsx\n")
	b.WriteString("# zsh completion for md2xlsx\n\n")

	b.WriteString("_md2xlsx() {\n")
	b.WriteString("    local -a commands\n")
	b.WriteString("    commands=(\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s:%s'\n", c.Name, zshSanitize(c.Desc))
	}
	b.WriteString("    )\n\n")

	b.WriteString("    if (( CURRENT == 2 )); then\n")
	b.WriteString("        _describe 'command' commands\n")
	b.WriteString("        return\n")
	b.WriteString("    fi\n\n")

	b.WriteString("    case \"${words[2]}\" in\n")
	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 && !cmd.TakesFiles {
			continue
		}
		fmt.Fprintf(&b, "    %s)\n", cmd.Name)

		specs := make([]string, 0, len(cmd.Flags)+1)
		for _, f := range cmd.Flags {
			specs = append(specs, zshSpec(f))
		}
		if cmd.TakesFiles {
			specs = append(specs, fmt.Sprintf("'*:markdown file:_files -g \"%s\"'", zshGlob(cmd.FilePattern)))
		}
		b.WriteString("        _arguments \\\n            ")
		b.WriteString(strings.Join(specs, " \\\n            "))
		b.WriteString("\n        ;;\n")
	}
	b.WriteString("    completion)\n")
	b.WriteString("        _arguments '*:shell:(bash zsh fish powershell)'\n")
	b.WriteString("        ;;\n")
	b.WriteString("    help)\n")
	fmt.Fprintf(&b, "        _arguments '*:command:(%s)'\n", commandWords(cmds))
	b.WriteString("        ;;\n")
	b.WriteString("    esac\n")
	b.WriteString("}\n\n")
	b.WriteString("_md2xlsx \"$@\"\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// fishSanitize strips quotes that break single-quoted fish strings.
func fishSanitize(s string) string {
	return strings.ReplaceAll(s, "'", "")
}

// generateFish writes a fish completion script.
func generateFish(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# fish completion for md2xlsx\n\n")

	b.WriteString("function __fish_md2xlsx_needs_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -eq 1\n")
	b.WriteString("end\n\n")

	b.WriteString("function __fish_md2xlsx_using_command\n")
	b.WriteString("    set -l cmd (commandline -opc)\n")
	b.WriteString("    test (count $cmd) -gt 1; and test $cmd[2] = $argv[1]\n")
	b.WriteString("end\n\n")

	b.WriteString("# Commands\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "complete -c md2xlsx -f -n __fish_md2xlsx_needs_command -a %s -d '%s'\n", c.Name, fishSanitize(c.Desc))
	}
	b.WriteString("\n")

	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "# %s flags\n", cmd.Name)
		for _, f := range cmd.Flags {
			fmt.Fprintf(&b, "complete -c md2xlsx -n '__fish_md2xlsx_using_command %s'", cmd.Name)
			fmt.Fprintf(&b, " -l %s", f.Long)
			if f.Short != "" {
				fmt.Fprintf(&b, " -s %s", f.Short)
			}
			fmt.Fprintf(&b, " -d '%s'", fishSanitize(f.Desc))
			switch f.Type {
			case flagBool:
				// toggles take no argument
			case flagEnum:
				fmt.Fprintf(&b, " -x -a '%s'", strings.Join(f.Values, " "))
			case flagDir:
				b.WriteString(" -r -a '(__fish_complete_directories)'")
			default:
				b.WriteString(" -r")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("# completion shells\n")
	b.WriteString("complete -c md2xlsx -n '__fish_md2xlsx_using_command completion' -x -a 'bash zsh fish powershell'\n")
	fmt.Fprintf(&b, "complete -c md2xlsx -n '__fish_md2xlsx_using_command help' -x -a '%s'\n", commandWords(cmds))

	_, err := io.WriteString(w, b.String())
	return err
}

// psSanitize doubles quotes for single-quoted PowerShell strings.
func psSanitize(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}

// psFlagList renders the PowerShell array literal of flag spellings.
func psFlagList(flags []flagDef) string {
	var words []string
	for _, f := range flags {
		words = append(words, "'--"+f.Long+"'")
		if f.Short != "" {
			words = append(words, "'-"+f.Short+"'")
		}
	}
	return strings.Join(words, ", ")
}

// generatePowerShell writes a PowerShell argument completer.
func generatePowerShell(w io.Writer) error {
	cmds := getCommands()
	var b strings.Builder

	b.WriteString("# PowerShell completion for md2xlsx\n")
	b.WriteString("Register-ArgumentCompleter -Native -CommandName md2xlsx -ScriptBlock {\n")
	b.WriteString("    param($wordToComplete, $commandAst, $cursorPosition)\n\n")

	b.WriteString("    $commands = [ordered]@{\n")
	for _, c := range cmds {
		fmt.Fprintf(&b, "        '%s' = '%s'\n", c.Name, psSanitize(c.Desc))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $flags = @{\n")
	for _, cmd := range cmds {
		if len(cmd.Flags) == 0 {
			continue
		}
		fmt.Fprintf(&b, "        '%s' = @(%s)\n", cmd.Name, psFlagList(cmd.Flags))
	}
	b.WriteString("    }\n\n")

	b.WriteString("    $elements = $commandAst.CommandElements | ForEach-Object { $_.ToString() }\n")
	b.WriteString("    if ($elements.Count -le 1 -or ($elements.Count -eq 2 -and $wordToComplete)) {\n")
	b.WriteString("        $commands.Keys | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $commands[$_])\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    $command = $elements[1]\n")
	b.WriteString("    if ($command -eq 'completion') {\n")
	b.WriteString("        'bash', 'zsh', 'fish', 'powershell' | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("        return\n")
	b.WriteString("    }\n\n")

	b.WriteString("    if ($flags.ContainsKey($command)) {\n")
	b.WriteString("        $flags[$command] | Where-Object { $_ -like \"$wordToComplete*\" } | ForEach-Object {\n")
	b.WriteString("            [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterName', $_)\n")
	b.WriteString("        }\n")
	b.WriteString("    }\n")
	b.WriteString("}\n")

	_, err := io.WriteString(w, b.String())
	return err
}
