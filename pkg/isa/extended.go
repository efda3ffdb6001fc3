package isa

import (
	"encoding/binary"
	"fmt"
	"math"
	"time"
)

// Extended instruction wire format:
//
//	[BASE:6][TAG:1][PAYLOAD:N]
//
// where N is fixed by the tag: 0 (None), 17 (Calc), 14 (Time). The total
// length is fully determined by the tag, never by payload content.

// PayloadType is the 1-byte tag selecting the payload shape.
type PayloadType uint8

const (
	PayloadNone PayloadType = 0x00
	PayloadCalc PayloadType = 0x01
	PayloadTime PayloadType = 0x02
)

// Fixed payload sizes in bytes.
const (
	CalcPayloadSize = 17 // [OP:1][A:8][B:8]
	TimePayloadSize = 14 // [REF:8][DELTA:4][UNIT:1][TZ:1]
)

// PayloadTypeFromByte resolves a tag byte, rejecting undefined tags.
func PayloadTypeFromByte(b byte) (PayloadType, error) {
	switch PayloadType(b) {
	case PayloadNone, PayloadCalc, PayloadTime:
		return PayloadType(b), nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnknownPayloadType, b)
	}
}

// PayloadSize returns the fixed payload length for the tag.
func (pt PayloadType) PayloadSize() int {
	switch pt {
	case PayloadCalc:
		return CalcPayloadSize
	case PayloadTime:
		return TimePayloadSize
	default:
		return 0
	}
}

// TotalSize returns the full extended instruction length for the tag:
// 6 base bytes + 1 tag byte + payload.
func (pt PayloadType) TotalSize() int {
	return InstructionSize + 1 + pt.PayloadSize()
}

func (pt PayloadType) String() string {
	switch pt {
	case PayloadNone:
		return "NONE"
	case PayloadCalc:
		return "CALC"
	case PayloadTime:
		return "TIME"
	default:
		return "UNKNOWN"
	}
}

// Op is a calculator operation, encoded as its ASCII symbol byte.
type Op uint8

const (
	OpAdd  Op = '+' // 0x2B
	OpSub  Op = '-' // 0x2D
	OpMul  Op = '*' // 0x2A
	OpDiv  Op = '/' // 0x2F
	OpMod  Op = '%' // 0x25
	OpPow  Op = '^' // 0x5E
	OpSqrt Op = 'S' // 0x53, unary: operand B is carried but ignored
)

// OpFromByte resolves an operation byte, rejecting undefined codes.
func OpFromByte(b byte) (Op, error) {
	switch Op(b) {
	case OpAdd, OpSub, OpMul, OpDiv, OpMod, OpPow, OpSqrt:
		return Op(b), nil
	default:
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnknownOperation, b)
	}
}

// OpFromName resolves an operation mnemonic like "ADD".
func OpFromName(name string) (Op, bool) {
	switch name {
	case "ADD":
		return OpAdd, true
	case "SUB":
		return OpSub, true
	case "MUL":
		return OpMul, true
	case "DIV":
		return OpDiv, true
	case "MOD":
		return OpMod, true
	case "POW":
		return OpPow, true
	case "SQRT":
		return OpSqrt, true
	default:
		return 0, false
	}
}

// Name returns the operation mnemonic.
func (op Op) Name() string {
	switch op {
	case OpAdd:
		return "ADD"
	case OpSub:
		return "SUB"
	case OpMul:
		return "MUL"
	case OpDiv:
		return "DIV"
	case OpMod:
		return "MOD"
	case OpPow:
		return "POW"
	case OpSqrt:
		return "SQRT"
	default:
		return "UNKNOWN"
	}
}

// Symbol returns the display symbol.
func (op Op) Symbol() string {
	if op == OpSqrt {
		return "sqrt"
	}
	return string(rune(op))
}

// TimeUnit is the unit of a time payload delta.
type TimeUnit uint8

const (
	UnitSecond TimeUnit = iota
	UnitMinute
	UnitHour
	UnitDay
	UnitWeek
	UnitMonth
	UnitYear
)

var timeUnitNames = [...]string{"SECOND", "MINUTE", "HOUR", "DAY", "WEEK", "MONTH", "YEAR"}

// Seconds per unit. Month and year use the 30-day / 365-day conventions.
var timeUnitSeconds = [...]int64{1, 60, 3600, 86400, 604800, 2592000, 31536000}

// TimeUnitFromByte resolves a unit byte, rejecting undefined codes.
func TimeUnitFromByte(b byte) (TimeUnit, error) {
	if int(b) >= len(timeUnitNames) {
		return 0, fmt.Errorf("%w: 0x%02X", ErrUnknownTimeUnit, b)
	}
	return TimeUnit(b), nil
}

// TimeUnitFromName resolves a unit name like "HOUR".
func TimeUnitFromName(name string) (TimeUnit, bool) {
	for i, n := range timeUnitNames {
		if n == name {
			return TimeUnit(i), true
		}
	}
	return 0, false
}

// Seconds returns the length of the unit in seconds.
func (u TimeUnit) Seconds() int64 {
	if int(u) >= len(timeUnitSeconds) {
		return 0
	}
	return timeUnitSeconds[u]
}

func (u TimeUnit) String() string {
	if int(u) >= len(timeUnitNames) {
		return "UNKNOWN"
	}
	return timeUnitNames[u]
}

// Payload is the closed set of extended instruction payloads:
// NonePayload, CalcPayload, or TimePayload.
type Payload interface {
	Type() PayloadType
	appendTo(dst []byte) []byte
}

// NonePayload is the empty payload.
type NonePayload struct{}

func (NonePayload) Type() PayloadType          { return PayloadNone }
func (NonePayload) appendTo(dst []byte) []byte { return dst }

// CalcPayload carries a calculator operation and two float64 operands.
// Wire form: [OP:1][A:8 BE][B:8 BE] = 17 bytes.
type CalcPayload struct {
	Op Op
	A  float64
	B  float64
}

// NewCalc builds a binary calculator payload.
func NewCalc(op Op, a, b float64) CalcPayload {
	return CalcPayload{Op: op, A: a, B: b}
}

// UnaryCalc builds a unary payload (sqrt); operand B stays zero.
func UnaryCalc(op Op, a float64) CalcPayload {
	return CalcPayload{Op: op, A: a}
}

func (p CalcPayload) Type() PayloadType { return PayloadCalc }

// ToBytes serializes the payload to its 17-byte wire form.
func (p CalcPayload) ToBytes() [CalcPayloadSize]byte {
	var b [CalcPayloadSize]byte
	b[0] = byte(p.Op)
	binary.BigEndian.PutUint64(b[1:9], math.Float64bits(p.A))
	binary.BigEndian.PutUint64(b[9:17], math.Float64bits(p.B))
	return b
}

func (p CalcPayload) appendTo(dst []byte) []byte {
	b := p.ToBytes()
	return append(dst, b[:]...)
}

// parseCalcPayload decodes exactly CalcPayloadSize bytes.
func parseCalcPayload(b []byte) (CalcPayload, error) {
	op, err := OpFromByte(b[0])
	if err != nil {
		return CalcPayload{}, err
	}
	return CalcPayload{
		Op: op,
		A:  math.Float64frombits(binary.BigEndian.Uint64(b[1:9])),
		B:  math.Float64frombits(binary.BigEndian.Uint64(b[9:17])),
	}, nil
}

func (p CalcPayload) String() string {
	if p.Op == OpSqrt {
		return fmt.Sprintf("sqrt(%g)", p.A)
	}
	return fmt.Sprintf("%g %s %g", p.A, p.Op.Symbol(), p.B)
}

// TimePayload carries a temporal reference point.
// Wire form: [REF:8 BE][DELTA:4 BE][UNIT:1][TZ:1] = 14 bytes.
type TimePayload struct {
	// Reference is a Unix timestamp in seconds.
	Reference int64
	// Delta shifts the reference; positive is the future.
	Delta int32
	// Unit scales the delta.
	Unit TimeUnit
	// TZOffset is the timezone offset in hours (-12 to +14).
	TZOffset int8
}

// TimeAt builds a payload pointing at a fixed timestamp.
func TimeAt(reference int64) TimePayload {
	return TimePayload{Reference: reference}
}

// TimeDelta builds a payload offset from a reference timestamp.
func TimeDelta(reference int64, delta int32, unit TimeUnit) TimePayload {
	return TimePayload{Reference: reference, Delta: delta, Unit: unit}
}

// TimeNow builds a payload referencing the current wall clock.
func TimeNow() TimePayload {
	return TimePayload{Reference: time.Now().Unix()}
}

// WithTZ returns a copy with the timezone offset set.
func (p TimePayload) WithTZ(offset int8) TimePayload {
	p.TZOffset = offset
	return p
}

func (p TimePayload) Type() PayloadType { return PayloadTime }

// ToBytes serializes the payload to its 14-byte wire form.
func (p TimePayload) ToBytes() [TimePayloadSize]byte {
	var b [TimePayloadSize]byte
	binary.BigEndian.PutUint64(b[0:8], uint64(p.Reference))
	binary.BigEndian.PutUint32(b[8:12], uint32(p.Delta))
	b[12] = byte(p.Unit)
	b[13] = byte(p.TZOffset)
	return b
}

func (p TimePayload) appendTo(dst []byte) []byte {
	b := p.ToBytes()
	return append(dst, b[:]...)
}

// parseTimePayload decodes exactly TimePayloadSize bytes.
func parseTimePayload(b []byte) (TimePayload, error) {
	unit, err := TimeUnitFromByte(b[12])
	if err != nil {
		return TimePayload{}, err
	}
	return TimePayload{
		Reference: int64(binary.BigEndian.Uint64(b[0:8])),
		Delta:     int32(binary.BigEndian.Uint32(b[8:12])),
		Unit:      unit,
		TZOffset:  int8(b[13]),
	}, nil
}

func (p TimePayload) String() string {
	return fmt.Sprintf("ref=%d delta=%+d %s tz=%+d", p.Reference, p.Delta, p.Unit, p.TZOffset)
}

// ExtendedInstruction is a base instruction plus a tagged payload.
type ExtendedInstruction struct {
	Base    Instruction
	Payload Payload
}

// NewExtended wraps a base instruction with no payload.
func NewExtended(base Instruction) ExtendedInstruction {
	return ExtendedInstruction{Base: base, Payload: NonePayload{}}
}

// WithCalc wraps a base instruction with a calculator payload.
func WithCalc(base Instruction, calc CalcPayload) ExtendedInstruction {
	return ExtendedInstruction{Base: base, Payload: calc}
}

// WithTime wraps a base instruction with a time payload.
func WithTime(base Instruction, tm TimePayload) ExtendedInstruction {
	return ExtendedInstruction{Base: base, Payload: tm}
}

// ByteSize returns the total serialized length: 7, 24, or 21.
func (e ExtendedInstruction) ByteSize() int {
	return e.Payload.Type().TotalSize()
}

// ToBytes serializes to base bytes, tag byte, payload bytes.
func (e ExtendedInstruction) ToBytes() []byte {
	return e.AppendBytes(make([]byte, 0, e.ByteSize()))
}

// AppendBytes appends the serialized form to dst and returns the result.
func (e ExtendedInstruction) AppendBytes(dst []byte) []byte {
	dst = e.Base.AppendBytes(dst)
	dst = append(dst, byte(e.Payload.Type()))
	return e.Payload.appendTo(dst)
}

// ParseExtended decodes one extended instruction. The buffer after the tag
// byte must exactly match the tag's fixed payload length. Decoding is
// atomic: any failure returns only the error.
func ParseExtended(b []byte) (ExtendedInstruction, error) {
	if len(b) < InstructionSize+1 {
		return ExtendedInstruction{}, fmt.Errorf("%w: got %d bytes, need at least %d",
			ErrBufferTooShort, len(b), InstructionSize+1)
	}

	base, err := ParseOne(b[:InstructionSize])
	if err != nil {
		return ExtendedInstruction{}, err
	}

	pt, err := PayloadTypeFromByte(b[InstructionSize])
	if err != nil {
		return ExtendedInstruction{}, err
	}

	rest := b[InstructionSize+1:]
	if len(rest) != pt.PayloadSize() {
		return ExtendedInstruction{}, fmt.Errorf("%w: tag %s needs %d payload bytes, got %d",
			ErrPayloadLengthMismatch, pt, pt.PayloadSize(), len(rest))
	}

	switch pt {
	case PayloadCalc:
		calc, err := parseCalcPayload(rest)
		if err != nil {
			return ExtendedInstruction{}, err
		}
		return WithCalc(base, calc), nil
	case PayloadTime:
		tm, err := parseTimePayload(rest)
		if err != nil {
			return ExtendedInstruction{}, err
		}
		return WithTime(base, tm), nil
	default:
		return NewExtended(base), nil
	}
}

// AsCalc returns the calculator payload if present.
func (e ExtendedInstruction) AsCalc() (CalcPayload, bool) {
	calc, ok := e.Payload.(CalcPayload)
	return calc, ok
}

// AsTime returns the time payload if present.
func (e ExtendedInstruction) AsTime() (TimePayload, bool) {
	tm, ok := e.Payload.(TimePayload)
	return tm, ok
}

func (e ExtendedInstruction) String() string {
	switch p := e.Payload.(type) {
	case CalcPayload:
		return fmt.Sprintf("%s + %s", e.Base, p)
	case TimePayload:
		return fmt.Sprintf("%s @ %s", e.Base, p)
	default:
		return e.Base.String()
	}
}
