// Package repl provides an interactive shell for assembling and
// inspecting SAM instructions.
package repl

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/akhildatla/samisa/pkg/asm"
	"github.com/akhildatla/samisa/pkg/isa"
)

const (
	promptAsm = "sam> "
	promptHex = "hex> "
)

// Mode represents the REPL input mode.
type Mode int

const (
	ModeAsm Mode = iota // Assembly mode: lines are assembled and dumped
	ModeHex             // Hex mode: lines are hex bytes to decode
)

// REPL provides an interactive Read-Eval-Print Loop.
type REPL struct {
	mode    Mode
	history []string
}

// New creates a new REPL instance.
func New() *REPL {
	return &REPL{
		mode:    ModeAsm,
		history: []string{},
	}
}

// SetMode sets the REPL input mode.
func (r *REPL) SetMode(mode Mode) {
	r.mode = mode
}

// Start starts the REPL loop.
func (r *REPL) Start(in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)

	fmt.Fprintln(out, "SAM REPL - Structured Action Machine ISA")
	fmt.Fprintln(out, "Type 'help' for available commands, 'quit' to exit")
	fmt.Fprintln(out)

	for {
		if r.mode == ModeAsm {
			fmt.Fprint(out, promptAsm)
		} else {
			fmt.Fprint(out, promptHex)
		}

		if !scanner.Scan() {
			break
		}

		line := scanner.Text()

		handled, quit := r.handleCommand(line, out)
		if quit {
			break
		}
		if handled {
			continue
		}

		r.eval(line, out)
	}
}

func (r *REPL) handleCommand(line string, out io.Writer) (handled, quit bool) {
	parts := strings.Fields(strings.TrimSpace(line))
	if len(parts) == 0 {
		return true, false
	}

	switch parts[0] {
	case "quit", "exit", "q":
		fmt.Fprintln(out, "Goodbye!")
		return true, true

	case "help", "h", "?":
		r.printHelp(out)
		return true, false

	case "mode":
		if len(parts) > 1 {
			switch parts[1] {
			case "asm":
				r.mode = ModeAsm
				fmt.Fprintln(out, "Switched to assembly mode")
			case "hex":
				r.mode = ModeHex
				fmt.Fprintln(out, "Switched to hex mode")
			default:
				fmt.Fprintln(out, "Unknown mode. Use 'asm' or 'hex'")
			}
		} else {
			if r.mode == ModeAsm {
				fmt.Fprintln(out, "Current mode: asm")
			} else {
				fmt.Fprintln(out, "Current mode: hex")
			}
		}
		return true, false

	case "history":
		for i, cmd := range r.history {
			fmt.Fprintf(out, "%3d: %s\n", i+1, cmd)
		}
		return true, false
	}

	return false, false
}

func (r *REPL) eval(input string, out io.Writer) {
	if strings.TrimSpace(input) == "" {
		return
	}

	r.history = append(r.history, input)

	var ext isa.ExtendedInstruction
	var err error

	if r.mode == ModeAsm {
		ext, err = asm.AssembleLine(input)
	} else {
		ext, err = decodeHex(input)
	}

	if err != nil {
		fmt.Fprintf(out, "Error: %v\n", err)
		return
	}

	describe(ext, out)
}

// decodeHex decodes a pasted hex dump. Six bytes is a bare base
// instruction; anything longer must be a full extended instruction.
func decodeHex(input string) (isa.ExtendedInstruction, error) {
	cleaned := strings.Map(func(r rune) rune {
		if r == ' ' || r == '\t' {
			return -1
		}
		return r
	}, strings.TrimSpace(input))
	cleaned = strings.TrimPrefix(cleaned, "0x")

	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return isa.ExtendedInstruction{}, fmt.Errorf("invalid hex: %v", err)
	}

	if len(b) == isa.InstructionSize {
		base, err := isa.ParseOne(b)
		if err != nil {
			return isa.ExtendedInstruction{}, err
		}
		return isa.NewExtended(base), nil
	}
	return isa.ParseExtended(b)
}

func describe(ext isa.ExtendedInstruction, out io.Writer) {
	fmt.Fprintf(out, "bytes:    % X\n", ext.ToBytes())
	fmt.Fprintf(out, "asm:      %s\n", asm.Format(ext))
	fmt.Fprintf(out, "action:   %s\n", ext.Base.Action)
	fmt.Fprintf(out, "subject:  %s\n", ext.Base.Subject)
	fmt.Fprintf(out, "modifier: %s\n", ext.Base.Modifier)

	switch p := ext.Payload.(type) {
	case isa.CalcPayload:
		fmt.Fprintf(out, "payload:  CALC %s\n", p)
	case isa.TimePayload:
		fmt.Fprintf(out, "payload:  TIME %s\n", p)
	}
}

func (r *REPL) printHelp(out io.Writer) {
	fmt.Fprintln(out, "SAM REPL Commands:")
	fmt.Fprintln(out, "  help, h, ?      Show this help")
	fmt.Fprintln(out, "  quit, exit, q   Exit the REPL")
	fmt.Fprintln(out, "  mode [asm|hex]  Show or switch input mode")
	fmt.Fprintln(out, "  history         Show input history")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Assembly mode: type a statement to assemble and dump it")
	fmt.Fprintln(out, "  GREET USER VOICE=CASUAL")
	fmt.Fprintln(out, "  CALCULATE NUMBER CALC ADD 15 7")
	fmt.Fprintln(out, "  RESPOND TIME TIME 1735300000 3 HOUR 0")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Hex mode: paste instruction bytes to decode them")
	fmt.Fprintln(out, "  01 00 00 02 98 00")
}
