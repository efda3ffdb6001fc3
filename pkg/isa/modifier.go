package isa

import "fmt"

// Modifier is a 16-bit bit-packed style word.
//
// Layout (MSB to LSB):
//
//	Bit:  15  14  13  12  11  10   9   8   7   6   5   4   3   2   1   0
//	      [--VOICE--][--TONE--][-WARMTH-][-FORMAT-][-ACCUR-][-URGEN-][resv]
//
// Each field is 2 bits wide, so every bit pattern names exactly one of
// its four variants. Bits 3-0 are reserved: cleared on encode, ignored
// on decode. The zero value is the default modifier and encodes to 0x0000.
type Modifier uint16

// Field shift offsets and masks.
const (
	voiceShift    = 14
	toneShift     = 12
	warmthShift   = 10
	formatShift   = 8
	accuracyShift = 6
	urgencyShift  = 4

	voiceMask    uint16 = 0x3 << voiceShift
	toneMask     uint16 = 0x3 << toneShift
	warmthMask   uint16 = 0x3 << warmthShift
	formatMask   uint16 = 0x3 << formatShift
	accuracyMask uint16 = 0x3 << accuracyShift
	urgencyMask  uint16 = 0x3 << urgencyShift

	reservedMask uint16 = 0x000F
)

// Voice is the speaking style field (bits 15-14).
type Voice uint8

const (
	VoiceNeutral Voice = iota
	VoiceFormal
	VoiceCasual
	VoiceTechnical
)

// Tone is the emotional tone field (bits 13-12).
type Tone uint8

const (
	ToneNeutral Tone = iota
	TonePositive
	ToneEmpathetic
	ToneCautious
)

// Warmth is the interpersonal warmth field (bits 11-10).
type Warmth uint8

const (
	WarmthCold Warmth = iota
	WarmthNeutral
	WarmthWarm
	WarmthVeryWarm
)

// Format is the output format field (bits 9-8).
type Format uint8

const (
	FormatProse Format = iota
	FormatBulleted
	FormatNumbered
	FormatStructured
)

// Accuracy is the confidence field (bits 7-6).
type Accuracy uint8

const (
	AccuracyLow Accuracy = iota
	AccuracyMedium
	AccuracyHigh
	AccuracyVerified
)

// Urgency is the priority field (bits 5-4).
type Urgency uint8

const (
	UrgencyLow Urgency = iota
	UrgencyNormal
	UrgencyHigh
	UrgencyCritical
)

var (
	voiceNames    = [4]string{"NEUTRAL", "FORMAL", "CASUAL", "TECHNICAL"}
	toneNames     = [4]string{"NEUTRAL", "POSITIVE", "EMPATHETIC", "CAUTIOUS"}
	warmthNames   = [4]string{"COLD", "NEUTRAL", "WARM", "VERY_WARM"}
	formatNames   = [4]string{"PROSE", "BULLETED", "NUMBERED", "STRUCTURED"}
	accuracyNames = [4]string{"LOW", "MEDIUM", "HIGH", "VERIFIED"}
	urgencyNames  = [4]string{"LOW", "NORMAL", "HIGH", "CRITICAL"}
)

func (v Voice) String() string    { return voiceNames[v&3] }
func (t Tone) String() string     { return toneNames[t&3] }
func (w Warmth) String() string   { return warmthNames[w&3] }
func (f Format) String() string   { return formatNames[f&3] }
func (a Accuracy) String() string { return accuracyNames[a&3] }
func (u Urgency) String() string  { return urgencyNames[u&3] }

func indexOf(names [4]string, name string) (uint8, bool) {
	for i, n := range names {
		if n == name {
			return uint8(i), true
		}
	}
	return 0, false
}

// VoiceFromName and the sibling lookups resolve uppercase field value
// names as used in the text assembly form.
func VoiceFromName(name string) (Voice, bool) {
	i, ok := indexOf(voiceNames, name)
	return Voice(i), ok
}

func ToneFromName(name string) (Tone, bool) {
	i, ok := indexOf(toneNames, name)
	return Tone(i), ok
}

func WarmthFromName(name string) (Warmth, bool) {
	i, ok := indexOf(warmthNames, name)
	return Warmth(i), ok
}

func FormatFromName(name string) (Format, bool) {
	i, ok := indexOf(formatNames, name)
	return Format(i), ok
}

func AccuracyFromName(name string) (Accuracy, bool) {
	i, ok := indexOf(accuracyNames, name)
	return Accuracy(i), ok
}

func UrgencyFromName(name string) (Urgency, bool) {
	i, ok := indexOf(urgencyNames, name)
	return Urgency(i), ok
}

// NewModifier packs all six style fields into a word.
func NewModifier(v Voice, t Tone, w Warmth, f Format, a Accuracy, u Urgency) Modifier {
	return DefaultModifier().
		WithVoice(v).
		WithTone(t).
		WithWarmth(w).
		WithFormat(f).
		WithAccuracy(a).
		WithUrgency(u)
}

// ModifierFromWord decodes a raw 16-bit word. Reserved bits are dropped,
// so the result always re-encodes with bits 3-0 zero.
func ModifierFromWord(w uint16) Modifier {
	return Modifier(w &^ reservedMask)
}

// Word returns the encoded 16-bit word with reserved bits clear.
func (m Modifier) Word() uint16 { return uint16(m) &^ reservedMask }

func (m Modifier) Voice() Voice       { return Voice(uint16(m) >> voiceShift & 0x3) }
func (m Modifier) Tone() Tone         { return Tone(uint16(m) >> toneShift & 0x3) }
func (m Modifier) Warmth() Warmth     { return Warmth(uint16(m) >> warmthShift & 0x3) }
func (m Modifier) Format() Format     { return Format(uint16(m) >> formatShift & 0x3) }
func (m Modifier) Accuracy() Accuracy { return Accuracy(uint16(m) >> accuracyShift & 0x3) }
func (m Modifier) Urgency() Urgency   { return Urgency(uint16(m) >> urgencyShift & 0x3) }

func (m Modifier) set(mask uint16, shift int, v uint8) Modifier {
	return Modifier(uint16(m)&^mask | uint16(v&0x3)<<shift)
}

func (m Modifier) WithVoice(v Voice) Modifier       { return m.set(voiceMask, voiceShift, uint8(v)) }
func (m Modifier) WithTone(t Tone) Modifier         { return m.set(toneMask, toneShift, uint8(t)) }
func (m Modifier) WithWarmth(w Warmth) Modifier     { return m.set(warmthMask, warmthShift, uint8(w)) }
func (m Modifier) WithFormat(f Format) Modifier     { return m.set(formatMask, formatShift, uint8(f)) }
func (m Modifier) WithAccuracy(a Accuracy) Modifier { return m.set(accuracyMask, accuracyShift, uint8(a)) }
func (m Modifier) WithUrgency(u Urgency) Modifier   { return m.set(urgencyMask, urgencyShift, uint8(u)) }

// DefaultModifier returns the all-default word: neutral voice and tone,
// cold warmth, prose format, low accuracy and urgency. Encodes to 0x0000.
func DefaultModifier() Modifier { return 0 }

// CrisisModifier is the preset for crisis responses: empathetic, warm,
// critical urgency.
func CrisisModifier() Modifier {
	return DefaultModifier().
		WithTone(ToneEmpathetic).
		WithWarmth(WarmthWarm).
		WithUrgency(UrgencyCritical)
}

// ProfessionalModifier is the preset for formal output with neutral warmth.
func ProfessionalModifier() Modifier {
	return DefaultModifier().
		WithVoice(VoiceFormal).
		WithWarmth(WarmthNeutral)
}

// FriendlyModifier is the preset for casual, upbeat, warm output.
func FriendlyModifier() Modifier {
	return DefaultModifier().
		WithVoice(VoiceCasual).
		WithTone(TonePositive).
		WithWarmth(WarmthWarm)
}

func (m Modifier) String() string {
	return fmt.Sprintf("MOD(0x%04X:%s/%s/%s/%s/%s/%s)",
		m.Word(), m.Voice(), m.Tone(), m.Warmth(), m.Format(), m.Accuracy(), m.Urgency())
}
