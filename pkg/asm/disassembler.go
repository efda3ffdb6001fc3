package asm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akhildatla/samisa/pkg/isa"
)

// Format renders one instruction as a single assembly statement. The
// output is valid assembler input and assembles back to identical bytes.
func Format(ext isa.ExtendedInstruction) string {
	var sb strings.Builder
	sb.WriteString(ext.Base.Action.Name())

	if s := formatSubject(ext.Base.Subject); s != "" {
		sb.WriteByte(' ')
		sb.WriteString(s)
	}

	for _, f := range modifierFields(ext.Base.Modifier) {
		sb.WriteByte(' ')
		sb.WriteString(f)
	}

	switch p := ext.Payload.(type) {
	case isa.CalcPayload:
		fmt.Fprintf(&sb, " CALC %s %s %s", p.Op.Name(), formatFloat(p.A), formatFloat(p.B))
	case isa.TimePayload:
		fmt.Fprintf(&sb, " TIME %d %d %s %d", p.Reference, p.Delta, p.Unit, p.TZOffset)
	}

	return sb.String()
}

// Disassemble renders instructions as assembly source, one per line.
func Disassemble(instructions []isa.ExtendedInstruction) string {
	var sb strings.Builder
	for _, ext := range instructions {
		sb.WriteString(Format(ext))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// DisassembleStream decodes a framed instruction stream and renders it as
// assembly source with a header comment.
func DisassembleStream(data []byte) (string, error) {
	instructions, err := isa.DecodeStream(data)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "; %d instructions\n", len(instructions))
	sb.WriteString(Disassemble(instructions))
	return sb.String(), nil
}

func formatSubject(s isa.Subject) string {
	if id, ok := s.RAGDocID(); ok {
		return fmt.Sprintf("RAG:0x%03X", id)
	}
	if id, ok := s.TRMModelID(); ok {
		return fmt.Sprintf("TRM:%d", id)
	}
	if s == isa.SubjectNull {
		return ""
	}
	return s.Name()
}

// modifierFields emits KEY=VALUE pairs for every non-default field.
func modifierFields(m isa.Modifier) []string {
	var fields []string
	if v := m.Voice(); v != isa.VoiceNeutral {
		fields = append(fields, "VOICE="+v.String())
	}
	if t := m.Tone(); t != isa.ToneNeutral {
		fields = append(fields, "TONE="+t.String())
	}
	if w := m.Warmth(); w != isa.WarmthCold {
		fields = append(fields, "WARMTH="+w.String())
	}
	if f := m.Format(); f != isa.FormatProse {
		fields = append(fields, "FORMAT="+f.String())
	}
	if a := m.Accuracy(); a != isa.AccuracyLow {
		fields = append(fields, "ACCURACY="+a.String())
	}
	if u := m.Urgency(); u != isa.UrgencyLow {
		fields = append(fields, "URGENCY="+u.String())
	}
	return fields
}

// formatFloat renders operands with the fewest digits that survive a
// round trip through the parser.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
