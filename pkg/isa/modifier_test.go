package isa

import "testing"

func TestModifier_DefaultEncodesToZero(t *testing.T) {
	m := DefaultModifier()
	if m.Word() != 0x0000 {
		t.Errorf("expected 0x0000, got 0x%04X", m.Word())
	}
	if m.Voice() != VoiceNeutral || m.Tone() != ToneNeutral || m.Warmth() != WarmthCold ||
		m.Format() != FormatProse || m.Accuracy() != AccuracyLow || m.Urgency() != UrgencyLow {
		t.Errorf("default fields not all zero variants: %v", m)
	}
}

// Exhaustive field test: each of the four values of each field must encode
// into its own bit position and extract back, without touching the other
// fields.
func TestModifier_FieldExhaustive(t *testing.T) {
	fields := []struct {
		name  string
		set   func(Modifier, uint8) Modifier
		get   func(Modifier) uint8
		shift int
	}{
		{"voice", func(m Modifier, v uint8) Modifier { return m.WithVoice(Voice(v)) },
			func(m Modifier) uint8 { return uint8(m.Voice()) }, voiceShift},
		{"tone", func(m Modifier, v uint8) Modifier { return m.WithTone(Tone(v)) },
			func(m Modifier) uint8 { return uint8(m.Tone()) }, toneShift},
		{"warmth", func(m Modifier, v uint8) Modifier { return m.WithWarmth(Warmth(v)) },
			func(m Modifier) uint8 { return uint8(m.Warmth()) }, warmthShift},
		{"format", func(m Modifier, v uint8) Modifier { return m.WithFormat(Format(v)) },
			func(m Modifier) uint8 { return uint8(m.Format()) }, formatShift},
		{"accuracy", func(m Modifier, v uint8) Modifier { return m.WithAccuracy(Accuracy(v)) },
			func(m Modifier) uint8 { return uint8(m.Accuracy()) }, accuracyShift},
		{"urgency", func(m Modifier, v uint8) Modifier { return m.WithUrgency(Urgency(v)) },
			func(m Modifier) uint8 { return uint8(m.Urgency()) }, urgencyShift},
	}

	for _, f := range fields {
		t.Run(f.name, func(t *testing.T) {
			for v := uint8(0); v < 4; v++ {
				m := f.set(DefaultModifier(), v)

				if got := f.get(m); got != v {
					t.Errorf("value %d: extracted %d", v, got)
				}
				if want := uint16(v) << f.shift; m.Word() != want {
					t.Errorf("value %d: word 0x%04X, expected 0x%04X", v, m.Word(), want)
				}

				// Setting against an all-ones background must clear only
				// this field's bits.
				full := ModifierFromWord(0xFFF0)
				m = f.set(full, v)
				if got := f.get(m); got != v {
					t.Errorf("value %d on full word: extracted %d", v, got)
				}
				if cleared := m.Word() | uint16(0x3)<<f.shift; cleared != 0xFFF0 {
					t.Errorf("value %d disturbed other fields: 0x%04X", v, m.Word())
				}
			}
		})
	}
}

func TestNewModifier(t *testing.T) {
	m := NewModifier(VoiceCasual, TonePositive, WarmthWarm,
		FormatProse, AccuracyLow, UrgencyLow)
	if m != FriendlyModifier() {
		t.Errorf("expected friendly word 0x%04X, got 0x%04X",
			FriendlyModifier().Word(), m.Word())
	}

	m = NewModifier(VoiceTechnical, ToneCautious, WarmthVeryWarm,
		FormatStructured, AccuracyVerified, UrgencyCritical)
	if m.Word() != 0xFFF0 {
		t.Errorf("all-max fields should pack to 0xFFF0, got 0x%04X", m.Word())
	}
}

func TestModifier_ReservedBits(t *testing.T) {
	// Reserved bits are dropped on decode, so the round trip normalizes them.
	m := ModifierFromWord(0xA44F)
	if m.Word() != 0xA440 {
		t.Errorf("expected reserved bits cleared, got 0x%04X", m.Word())
	}
	if m.Voice() != VoiceCasual || m.Tone() != ToneEmpathetic ||
		m.Warmth() != WarmthNeutral || m.Accuracy() != AccuracyMedium {
		t.Errorf("field extraction wrong: %v", m)
	}
}

func TestModifier_Presets(t *testing.T) {
	crisis := CrisisModifier()
	if crisis.Tone() != ToneEmpathetic || crisis.Warmth() != WarmthWarm ||
		crisis.Urgency() != UrgencyCritical {
		t.Errorf("crisis preset wrong: %v", crisis)
	}
	if crisis.Voice() != VoiceNeutral || crisis.Format() != FormatProse ||
		crisis.Accuracy() != AccuracyLow {
		t.Errorf("crisis preset should leave other fields default: %v", crisis)
	}

	pro := ProfessionalModifier()
	if pro.Voice() != VoiceFormal || pro.Warmth() != WarmthNeutral {
		t.Errorf("professional preset wrong: %v", pro)
	}

	friendly := FriendlyModifier()
	if friendly.Voice() != VoiceCasual || friendly.Tone() != TonePositive ||
		friendly.Warmth() != WarmthWarm {
		t.Errorf("friendly preset wrong: %v", friendly)
	}
}

func TestModifier_PresetsDistinct(t *testing.T) {
	words := map[uint16]string{0x0000: "default"}
	for name, m := range map[string]Modifier{
		"crisis":       CrisisModifier(),
		"professional": ProfessionalModifier(),
		"friendly":     FriendlyModifier(),
	} {
		if prev, ok := words[m.Word()]; ok {
			t.Errorf("%s and %s share word 0x%04X", name, prev, m.Word())
		}
		words[m.Word()] = name
	}
}

func TestModifier_FieldNames(t *testing.T) {
	v, ok := VoiceFromName("TECHNICAL")
	if !ok || v != VoiceTechnical {
		t.Errorf("VoiceFromName(TECHNICAL): got %v, ok=%v", v, ok)
	}
	w, ok := WarmthFromName("VERY_WARM")
	if !ok || w != WarmthVeryWarm {
		t.Errorf("WarmthFromName(VERY_WARM): got %v, ok=%v", w, ok)
	}
	if _, ok := ToneFromName("SARCASTIC"); ok {
		t.Error("expected SARCASTIC to be unknown")
	}

	if VoiceCasual.String() != "CASUAL" {
		t.Errorf("expected CASUAL, got %s", VoiceCasual)
	}
	if UrgencyCritical.String() != "CRITICAL" {
		t.Errorf("expected CRITICAL, got %s", UrgencyCritical)
	}
}
