package asm

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/akhildatla/samisa/pkg/isa"
)

func TestAssembleLine_Simple(t *testing.T) {
	ext, err := AssembleLine("GREET USER")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}

	want := isa.NewExtended(isa.Simple(isa.ActionGreet, isa.SubjectUser))
	if diff := cmp.Diff(want, ext); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLine_Modifiers(t *testing.T) {
	ext, err := AssembleLine("GREET USER, VOICE=CASUAL, TONE=POSITIVE, WARMTH=WARM")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}

	// The field-by-field form must equal the friendly preset.
	want := isa.NewExtended(isa.NewInstruction(isa.ActionGreet, isa.SubjectUser, isa.FriendlyModifier()))
	if diff := cmp.Diff(want, ext); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLine_Preset(t *testing.T) {
	ext, err := AssembleLine("REASSURE ANXIETY PRESET=CRISIS")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}
	if ext.Base.Modifier != isa.CrisisModifier() {
		t.Errorf("expected crisis modifier, got %v", ext.Base.Modifier)
	}
}

func TestAssembleLine_Calc(t *testing.T) {
	ext, err := AssembleLine("CALCULATE NUMBER CALC ADD 15 7")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}

	want := isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber), isa.NewCalc(isa.OpAdd, 15, 7))
	if diff := cmp.Diff(want, ext); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLine_UnaryCalc(t *testing.T) {
	ext, err := AssembleLine("CALCULATE NUMBER CALC SQRT 144")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}

	calc, ok := ext.AsCalc()
	if !ok {
		t.Fatal("expected calc payload")
	}
	if calc.Op != isa.OpSqrt || calc.A != 144 || calc.B != 0 {
		t.Errorf("wrong payload: %v", calc)
	}
}

func TestAssembleLine_Time(t *testing.T) {
	ext, err := AssembleLine("RESPOND TIME TIME 1735300000 3 HOUR -8")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}

	want := isa.WithTime(isa.Simple(isa.ActionRespond, isa.SubjectTime),
		isa.TimeDelta(1735300000, 3, isa.UnitHour).WithTZ(-8))
	if diff := cmp.Diff(want, ext); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestAssembleLine_References(t *testing.T) {
	ext, err := AssembleLine("RETRIEVE RAG:0x0A3")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}
	if id, ok := ext.Base.Subject.RAGDocID(); !ok || id != 0x0A3 {
		t.Errorf("expected RAG doc 0x0A3, got %v", ext.Base.Subject)
	}

	ext, err = AssembleLine("CHAIN TRM:3")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}
	if id, ok := ext.Base.Subject.TRMModelID(); !ok || id != 3 {
		t.Errorf("expected TRM model 3, got %v", ext.Base.Subject)
	}
}

func TestAssemble_Program(t *testing.T) {
	source := `
; greeting program
GREET USER PRESET=FRIENDLY
CALCULATE NUMBER CALC MUL 6 7
HALT
`
	instructions, err := Assemble(source)
	if err != nil {
		t.Fatalf("Assemble failed: %v", err)
	}
	if len(instructions) != 3 {
		t.Fatalf("expected 3 instructions, got %d", len(instructions))
	}
	if instructions[0].Base.Action != isa.ActionGreet ||
		instructions[1].Base.Action != isa.ActionCalculate ||
		instructions[2].Base.Action != isa.ActionHalt {
		t.Errorf("wrong actions: %v", instructions)
	}
}

func TestAssemble_Errors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		substr string
	}{
		{"unknown action", "FROB USER", "unknown action"},
		{"unknown subject", "GREET NOBODY", "unknown subject"},
		{"unknown field", "GREET USER COLOR=RED", "unknown modifier field"},
		{"unknown field value", "GREET USER VOICE=LOUD", "unknown voice"},
		{"unknown preset", "GREET USER PRESET=ANGRY", "unknown preset"},
		{"unknown operation", "CALCULATE NUMBER CALC XOR 1 2", "unknown operation"},
		{"unknown unit", "RESPOND TIME TIME 0 5 FORTNIGHT", "unknown time unit"},
		{"rag out of range", "RETRIEVE RAG:0x1000", "out of range"},
		{"trm out of range", "CHAIN TRM:256", "out of range"},
		{"tz out of range", "RESPOND TIME TIME 0 0 SECOND 15", "out of range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Assemble(tt.source)
			if err == nil {
				t.Fatalf("expected error for %q", tt.source)
			}
			if !strings.Contains(err.Error(), tt.substr) {
				t.Errorf("expected %q in error, got %q", tt.substr, err)
			}
		})
	}
}

func TestAssembleLine_NonFiniteOperands(t *testing.T) {
	// The unsigned spellings are plain idents; the signed ones come from
	// the disassembler.
	ext, err := AssembleLine("CALCULATE NUMBER CALC ADD NaN Inf")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}
	calc, ok := ext.AsCalc()
	if !ok {
		t.Fatal("expected calc payload")
	}
	if !math.IsNaN(calc.A) {
		t.Errorf("expected NaN operand A, got %g", calc.A)
	}
	if !math.IsInf(calc.B, 1) {
		t.Errorf("expected +Inf operand B, got %g", calc.B)
	}

	ext, err = AssembleLine("CALCULATE NUMBER CALC SUB +Inf -Inf")
	if err != nil {
		t.Fatalf("AssembleLine failed: %v", err)
	}
	calc, _ = ext.AsCalc()
	if !math.IsInf(calc.A, 1) || !math.IsInf(calc.B, -1) {
		t.Errorf("expected +Inf and -Inf, got %g %g", calc.A, calc.B)
	}
}

func TestAssembleLine_MultipleStatements(t *testing.T) {
	if _, err := AssembleLine("GREET USER\nHALT"); err == nil {
		t.Error("expected error for two statements")
	}
}

func TestAssembleStream(t *testing.T) {
	data, err := AssembleStream("GREET USER\nHALT\n")
	if err != nil {
		t.Fatalf("AssembleStream failed: %v", err)
	}

	instructions, err := isa.DecodeStream(data)
	if err != nil {
		t.Fatalf("DecodeStream failed: %v", err)
	}
	if len(instructions) != 2 {
		t.Errorf("expected 2 records, got %d", len(instructions))
	}
}

func TestDisassemble_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		ext  isa.ExtendedInstruction
	}{
		{"bare", isa.NewExtended(isa.Simple(isa.ActionHalt, isa.SubjectNull))},
		{"subject", isa.NewExtended(isa.Simple(isa.ActionGreet, isa.SubjectUser))},
		{"modifiers", isa.NewExtended(isa.NewInstruction(isa.ActionReassure, isa.SubjectAnxiety,
			isa.CrisisModifier()))},
		{"rag ref", isa.NewExtended(isa.Simple(isa.ActionRetrieve, isa.RAGRef(0x0A3)))},
		{"trm ref", isa.NewExtended(isa.Simple(isa.ActionChain, isa.TRMRef(7)))},
		{"calc", isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber),
			isa.NewCalc(isa.OpDiv, 1, 3))},
		{"calc large", isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber),
			isa.NewCalc(isa.OpMul, 1e6, 2.5e-3))},
		{"sqrt", isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber),
			isa.UnaryCalc(isa.OpSqrt, 144))},
		{"calc infinities", isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber),
			isa.NewCalc(isa.OpDiv, math.Inf(1), math.Inf(-1)))},
		{"calc nan", isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber),
			isa.NewCalc(isa.OpMul, math.NaN(), 2))},
		{"time", isa.WithTime(isa.Simple(isa.ActionRespond, isa.SubjectTime),
			isa.TimeDelta(1735300000, -5, isa.UnitMinute).WithTZ(-8))},
		{"time on null subject", isa.WithTime(isa.Simple(isa.ActionSetTimer, isa.SubjectNull),
			isa.TimeDelta(0, 30, isa.UnitSecond))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line := Format(tt.ext)
			back, err := AssembleLine(line)
			if err != nil {
				t.Fatalf("reassembling %q: %v", line, err)
			}
			if !bytes.Equal(back.ToBytes(), tt.ext.ToBytes()) {
				t.Errorf("%q: bytes differ after round trip", line)
			}
		})
	}
}

func TestDisassembleStream(t *testing.T) {
	source := "GREET USER VOICE=CASUAL TONE=POSITIVE WARMTH=WARM\nCALCULATE NUMBER CALC ADD 15 7\nHALT\n"
	data, err := AssembleStream(source)
	if err != nil {
		t.Fatalf("AssembleStream failed: %v", err)
	}

	text, err := DisassembleStream(data)
	if err != nil {
		t.Fatalf("DisassembleStream failed: %v", err)
	}
	if !strings.HasPrefix(text, "; 3 instructions\n") {
		t.Errorf("missing header: %q", text)
	}

	// Disassembly must assemble back to the identical stream.
	again, err := AssembleStream(text)
	if err != nil {
		t.Fatalf("reassembling disassembly: %v", err)
	}
	if !bytes.Equal(data, again) {
		t.Errorf("stream differs after round trip")
	}
}

func TestFormat_KnownLines(t *testing.T) {
	tests := []struct {
		ext  isa.ExtendedInstruction
		want string
	}{
		{isa.NewExtended(isa.Simple(isa.ActionHalt, isa.SubjectNull)), "HALT"},
		{isa.NewExtended(isa.Simple(isa.ActionGreet, isa.SubjectUser)), "GREET USER"},
		{isa.NewExtended(isa.Simple(isa.ActionRetrieve, isa.RAGRef(0x0A3))), "RETRIEVE RAG:0x0A3"},
		{isa.WithCalc(isa.Simple(isa.ActionCalculate, isa.SubjectNumber),
			isa.NewCalc(isa.OpAdd, 15, 7)), "CALCULATE NUMBER CALC ADD 15 7"},
		{isa.WithTime(isa.Simple(isa.ActionRespond, isa.SubjectTime),
			isa.TimeDelta(1735300000, 3, isa.UnitHour)), "RESPOND TIME TIME 1735300000 3 HOUR 0"},
	}

	for _, tt := range tests {
		if got := Format(tt.ext); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}
