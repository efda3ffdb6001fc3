package isa

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
)

// InstructionSize is the size of a base instruction in bytes.
const InstructionSize = 6

// Instruction is a complete 6-byte instruction: action, subject, modifier.
// Instructions are plain values; encoding is total and decoding returns a
// typed error for malformed input.
type Instruction struct {
	Action   Action
	Subject  Subject
	Modifier Modifier
}

// NewInstruction builds an instruction from its three fields.
func NewInstruction(action Action, subject Subject, modifier Modifier) Instruction {
	return Instruction{Action: action, Subject: subject, Modifier: modifier}
}

// Simple builds an instruction with the default modifier.
func Simple(action Action, subject Subject) Instruction {
	return NewInstruction(action, subject, DefaultModifier())
}

// ToBytes serializes the instruction to 6 big-endian bytes.
func (in Instruction) ToBytes() [InstructionSize]byte {
	var b [InstructionSize]byte
	binary.BigEndian.PutUint16(b[0:2], in.Action.Code())
	binary.BigEndian.PutUint16(b[2:4], in.Subject.Code())
	binary.BigEndian.PutUint16(b[4:6], in.Modifier.Word())
	return b
}

// AppendBytes appends the 6-byte encoding to dst and returns the result.
func (in Instruction) AppendBytes(dst []byte) []byte {
	b := in.ToBytes()
	return append(dst, b[:]...)
}

// ParseOne decodes a single instruction from the first 6 bytes of b.
// Trailing bytes are not inspected.
func ParseOne(b []byte) (Instruction, error) {
	if len(b) < InstructionSize {
		return Instruction{}, fmt.Errorf("%w: got %d bytes, need %d",
			ErrBufferTooShort, len(b), InstructionSize)
	}

	action, err := ActionFromCode(binary.BigEndian.Uint16(b[0:2]))
	if err != nil {
		return Instruction{}, err
	}
	subject, err := SubjectFromCode(binary.BigEndian.Uint16(b[2:4]))
	if err != nil {
		return Instruction{}, err
	}
	modifier := ModifierFromWord(binary.BigEndian.Uint16(b[4:6]))

	return NewInstruction(action, subject, modifier), nil
}

// ParseAll decodes a buffer of back-to-back 6-byte instructions.
// The buffer length must be an exact multiple of InstructionSize.
func ParseAll(b []byte) ([]Instruction, error) {
	if len(b)%InstructionSize != 0 {
		return nil, fmt.Errorf("%w: %d bytes is not a multiple of %d",
			ErrTrailingBytes, len(b), InstructionSize)
	}

	instructions := make([]Instruction, 0, len(b)/InstructionSize)
	for off := 0; off < len(b); off += InstructionSize {
		in, err := ParseOne(b[off : off+InstructionSize])
		if err != nil {
			return nil, fmt.Errorf("instruction %d: %w", off/InstructionSize, err)
		}
		instructions = append(instructions, in)
	}
	return instructions, nil
}

// EncodeAll serializes instructions back to back.
func EncodeAll(instructions []Instruction) []byte {
	b := make([]byte, 0, len(instructions)*InstructionSize)
	for _, in := range instructions {
		b = in.AppendBytes(b)
	}
	return b
}

// NeedsRAG reports whether executing this instruction requires a
// document lookup.
func (in Instruction) NeedsRAG() bool { return in.Subject.IsRAGReference() }

// IsChainCall reports whether this instruction hands off to another TRM.
func (in Instruction) IsChainCall() bool {
	return in.Action.IsChain() || in.Subject.IsTRMReference()
}

// IsSystem reports whether this is a system instruction.
func (in Instruction) IsSystem() bool { return in.Action.IsSystem() }

// OpcodeString returns the compact hex form, e.g. "0107:0101:0000".
func (in Instruction) OpcodeString() string {
	return fmt.Sprintf("%04X:%04X:%04X",
		in.Action.Code(), in.Subject.Code(), in.Modifier.Word())
}

// FromOpcodeString parses the compact hex form produced by OpcodeString.
func FromOpcodeString(s string) (Instruction, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 3 {
		return Instruction{}, fmt.Errorf("invalid opcode string %q: need ACT:SUBJ:MOD", s)
	}

	words := make([]uint16, 3)
	for i, part := range parts {
		v, err := strconv.ParseUint(part, 16, 16)
		if err != nil {
			return Instruction{}, fmt.Errorf("invalid opcode string %q: %w", s, err)
		}
		words[i] = uint16(v)
	}

	action, err := ActionFromCode(words[0])
	if err != nil {
		return Instruction{}, err
	}
	subject, err := SubjectFromCode(words[1])
	if err != nil {
		return Instruction{}, err
	}
	return NewInstruction(action, subject, ModifierFromWord(words[2])), nil
}

func (in Instruction) String() string {
	return fmt.Sprintf("[%s | %s | %s]", in.Action, in.Subject, in.Modifier)
}

// Builder constructs instructions fluently. Setters may be chained in any
// order; Build always succeeds. Unset fields default to SubjectNull and
// the default modifier.
type Builder struct {
	action   Action
	subject  Subject
	modifier Modifier
}

// NewBuilder starts a builder with the required action.
func NewBuilder(action Action) *Builder {
	return &Builder{action: action, subject: SubjectNull, modifier: DefaultModifier()}
}

// Subject sets the subject.
func (b *Builder) Subject(s Subject) *Builder {
	b.subject = s
	return b
}

// Modifier replaces the whole modifier word.
func (b *Builder) Modifier(m Modifier) *Builder {
	b.modifier = m
	return b
}

// Voice sets the voice field.
func (b *Builder) Voice(v Voice) *Builder {
	b.modifier = b.modifier.WithVoice(v)
	return b
}

// Tone sets the tone field.
func (b *Builder) Tone(t Tone) *Builder {
	b.modifier = b.modifier.WithTone(t)
	return b
}

// Warmth sets the warmth field.
func (b *Builder) Warmth(w Warmth) *Builder {
	b.modifier = b.modifier.WithWarmth(w)
	return b
}

// Format sets the format field.
func (b *Builder) Format(f Format) *Builder {
	b.modifier = b.modifier.WithFormat(f)
	return b
}

// Accuracy sets the accuracy field.
func (b *Builder) Accuracy(a Accuracy) *Builder {
	b.modifier = b.modifier.WithAccuracy(a)
	return b
}

// Urgency sets the urgency field.
func (b *Builder) Urgency(u Urgency) *Builder {
	b.modifier = b.modifier.WithUrgency(u)
	return b
}

// Build produces the instruction.
func (b *Builder) Build() Instruction {
	return NewInstruction(b.action, b.subject, b.modifier)
}
