// Package asm implements the textual assembly form of SAM instructions:
// a lexer, parser, assembler, and disassembler.
//
// Each statement occupies one line:
//
//	RESPOND TIME, TONE=POSITIVE TIME 1735300000 3 HOUR 0
//	CALCULATE NUMBER CALC ADD 15 7
//	RETRIEVE RAG:0x0A3
//	; comments run to end of line
//
// Commas between operands are optional. Disassembler output is valid
// assembler input and round-trips to identical bytes.
package asm

import (
	"fmt"

	"github.com/akhildatla/samisa/pkg/isa"
)

// Assemble assembles source text into extended instructions.
func Assemble(source string) ([]isa.ExtendedInstruction, error) {
	tokens := NewLexer(source).Tokenize()
	statements, err := NewParser(tokens).Parse()
	if err != nil {
		return nil, err
	}

	instructions := make([]isa.ExtendedInstruction, 0, len(statements))
	for _, stmt := range statements {
		ext, err := assembleStatement(stmt)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, ext)
	}
	return instructions, nil
}

// AssembleLine assembles a single statement, as typed at the REPL.
func AssembleLine(line string) (isa.ExtendedInstruction, error) {
	instructions, err := Assemble(line)
	if err != nil {
		return isa.ExtendedInstruction{}, err
	}
	if len(instructions) != 1 {
		return isa.ExtendedInstruction{}, fmt.Errorf("expected one statement, got %d", len(instructions))
	}
	return instructions[0], nil
}

// AssembleStream assembles source text into a framed instruction stream.
func AssembleStream(source string) ([]byte, error) {
	instructions, err := Assemble(source)
	if err != nil {
		return nil, err
	}
	return isa.EncodeStream(instructions), nil
}

func assembleStatement(stmt Statement) (isa.ExtendedInstruction, error) {
	var zero isa.ExtendedInstruction

	action, ok := isa.ActionFromName(stmt.Action)
	if !ok {
		return zero, fmt.Errorf("line %d: unknown action %q", stmt.Line, stmt.Action)
	}

	subject, err := resolveSubject(stmt)
	if err != nil {
		return zero, err
	}

	modifier, err := resolveModifier(stmt)
	if err != nil {
		return zero, err
	}

	base := isa.NewInstruction(action, subject, modifier)

	switch {
	case stmt.Calc != nil:
		calc, err := resolveCalc(stmt)
		if err != nil {
			return zero, err
		}
		return isa.WithCalc(base, calc), nil

	case stmt.Time != nil:
		tm, err := resolveTime(stmt)
		if err != nil {
			return zero, err
		}
		return isa.WithTime(base, tm), nil

	default:
		return isa.NewExtended(base), nil
	}
}

func resolveSubject(stmt Statement) (isa.Subject, error) {
	switch stmt.RefKind {
	case RefRAG:
		if stmt.RefID < 0 || stmt.RefID > int64(isa.MaxRAGDocID) {
			return 0, fmt.Errorf("line %d: RAG document id %d out of range 0-0x%03X",
				stmt.Line, stmt.RefID, isa.MaxRAGDocID)
		}
		return isa.RAGRef(uint16(stmt.RefID)), nil

	case RefTRM:
		if stmt.RefID < 0 || stmt.RefID > 0xFF {
			return 0, fmt.Errorf("line %d: TRM model id %d out of range 0-255",
				stmt.Line, stmt.RefID)
		}
		return isa.TRMRef(uint8(stmt.RefID)), nil
	}

	if stmt.Subject == "" {
		return isa.SubjectNull, nil
	}
	subject, ok := isa.SubjectFromName(stmt.Subject)
	if !ok {
		return 0, fmt.Errorf("line %d: unknown subject %q", stmt.Line, stmt.Subject)
	}
	return subject, nil
}

func resolveModifier(stmt Statement) (isa.Modifier, error) {
	m := isa.DefaultModifier()

	for _, f := range stmt.Fields {
		switch f.Key {
		case "VOICE":
			v, ok := isa.VoiceFromName(f.Value)
			if !ok {
				return 0, fmt.Errorf("line %d: unknown voice %q", stmt.Line, f.Value)
			}
			m = m.WithVoice(v)
		case "TONE":
			t, ok := isa.ToneFromName(f.Value)
			if !ok {
				return 0, fmt.Errorf("line %d: unknown tone %q", stmt.Line, f.Value)
			}
			m = m.WithTone(t)
		case "WARMTH":
			w, ok := isa.WarmthFromName(f.Value)
			if !ok {
				return 0, fmt.Errorf("line %d: unknown warmth %q", stmt.Line, f.Value)
			}
			m = m.WithWarmth(w)
		case "FORMAT":
			fm, ok := isa.FormatFromName(f.Value)
			if !ok {
				return 0, fmt.Errorf("line %d: unknown format %q", stmt.Line, f.Value)
			}
			m = m.WithFormat(fm)
		case "ACCURACY":
			a, ok := isa.AccuracyFromName(f.Value)
			if !ok {
				return 0, fmt.Errorf("line %d: unknown accuracy %q", stmt.Line, f.Value)
			}
			m = m.WithAccuracy(a)
		case "URGENCY":
			u, ok := isa.UrgencyFromName(f.Value)
			if !ok {
				return 0, fmt.Errorf("line %d: unknown urgency %q", stmt.Line, f.Value)
			}
			m = m.WithUrgency(u)
		case "PRESET":
			p, err := presetByName(f.Value)
			if err != nil {
				return 0, fmt.Errorf("line %d: %v", stmt.Line, err)
			}
			m = p
		default:
			return 0, fmt.Errorf("line %d: unknown modifier field %q", stmt.Line, f.Key)
		}
	}

	return m, nil
}

func presetByName(name string) (isa.Modifier, error) {
	switch name {
	case "DEFAULT":
		return isa.DefaultModifier(), nil
	case "CRISIS":
		return isa.CrisisModifier(), nil
	case "PROFESSIONAL":
		return isa.ProfessionalModifier(), nil
	case "FRIENDLY":
		return isa.FriendlyModifier(), nil
	default:
		return 0, fmt.Errorf("unknown preset %q", name)
	}
}

func resolveCalc(stmt Statement) (isa.CalcPayload, error) {
	form := stmt.Calc
	op, ok := isa.OpFromName(form.Op)
	if !ok {
		return isa.CalcPayload{}, fmt.Errorf("line %d: unknown operation %q", stmt.Line, form.Op)
	}
	if form.Unary {
		return isa.UnaryCalc(op, form.A), nil
	}
	return isa.NewCalc(op, form.A, form.B), nil
}

func resolveTime(stmt Statement) (isa.TimePayload, error) {
	form := stmt.Time
	unit, ok := isa.TimeUnitFromName(form.Unit)
	if !ok {
		return isa.TimePayload{}, fmt.Errorf("line %d: unknown time unit %q", stmt.Line, form.Unit)
	}
	if form.Delta < -(1<<31) || form.Delta > (1<<31)-1 {
		return isa.TimePayload{}, fmt.Errorf("line %d: delta %d out of range", stmt.Line, form.Delta)
	}
	if form.TZ < -12 || form.TZ > 14 {
		return isa.TimePayload{}, fmt.Errorf("line %d: timezone offset %d out of range -12 to +14",
			stmt.Line, form.TZ)
	}
	tm := isa.TimeDelta(form.Reference, int32(form.Delta), unit)
	return tm.WithTZ(int8(form.TZ)), nil
}
