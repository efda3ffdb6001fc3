package isa

import "fmt"

// Subject represents a 2-byte subject/topic code.
//
// Subjects are organized into categories by high byte:
//
//	0x00xx  System       (NULL, SELF, USER, CONTEXT)
//	0x01xx  Common       (WEATHER, TIME, DATE, SCHEDULE, ...)
//	0x02xx  Math/Science (NUMBER, EQUATION, PHYSICS, CHEMISTRY)
//	0x03xx  Technology   (COMPUTER, SOFTWARE, HARDWARE, AI, API)
//	0x04xx  Knowledge    (DOCUMENTATION, CONCEPT)
//	0x05xx  Emotions     (FEELINGS, STRESS, ANXIETY)
//	0x06xx  TRM refs     (dynamic model identifiers)
//	0xE0xx  RAG refs     (dynamic document identifiers)
//
// The TRM and RAG ranges carry dynamically bound identifiers rather than
// named constants; every code inside them is defined.
type Subject uint16

const (
	// ===== System Subjects (0x0000-0x00FF) =====
	SubjectNull    Subject = 0x0000
	SubjectSelf    Subject = 0x0001
	SubjectUser    Subject = 0x0002
	SubjectContext Subject = 0x0003

	// ===== Common Topics (0x0100-0x01FF) =====
	SubjectWeather  Subject = 0x0100
	SubjectTime     Subject = 0x0101
	SubjectDate     Subject = 0x0102
	SubjectSchedule Subject = 0x0103
	SubjectHealth   Subject = 0x0104
	SubjectHelp     Subject = 0x0105
	SubjectTimezone Subject = 0x0106

	// ===== Math/Science (0x0200-0x02FF) =====
	SubjectNumber    Subject = 0x0200
	SubjectEquation  Subject = 0x0201
	SubjectPhysics   Subject = 0x0202
	SubjectChemistry Subject = 0x0203

	// ===== Technology (0x0300-0x03FF) =====
	SubjectComputer Subject = 0x0300
	SubjectSoftware Subject = 0x0301
	SubjectHardware Subject = 0x0302
	SubjectAI       Subject = 0x0303
	SubjectAPI      Subject = 0x0304

	// ===== Knowledge (0x0400-0x04FF) =====
	SubjectDocumentation Subject = 0x0400
	SubjectConcept       Subject = 0x0401

	// ===== Emotions (0x0500-0x05FF) =====
	SubjectFeelings Subject = 0x0500
	SubjectStress   Subject = 0x0501
	SubjectAnxiety  Subject = 0x0502
)

// Dynamic reference ranges.
const (
	TRMRefStart uint16 = 0x0600
	TRMRefEnd   uint16 = 0x06FF
	RAGRefStart uint16 = 0xE000
	RAGRefEnd   uint16 = 0xEFFF

	// MaxRAGDocID is the largest document ID a RAG reference can carry.
	MaxRAGDocID uint16 = RAGRefEnd - RAGRefStart
)

var subjectNames = map[Subject]string{
	SubjectNull:          "NULL",
	SubjectSelf:          "SELF",
	SubjectUser:          "USER",
	SubjectContext:       "CONTEXT",
	SubjectWeather:       "WEATHER",
	SubjectTime:          "TIME",
	SubjectDate:          "DATE",
	SubjectSchedule:      "SCHEDULE",
	SubjectHealth:        "HEALTH",
	SubjectHelp:          "HELP",
	SubjectTimezone:      "TIMEZONE",
	SubjectNumber:        "NUMBER",
	SubjectEquation:      "EQUATION",
	SubjectPhysics:       "PHYSICS",
	SubjectChemistry:     "CHEMISTRY",
	SubjectComputer:      "COMPUTER",
	SubjectSoftware:      "SOFTWARE",
	SubjectHardware:      "HARDWARE",
	SubjectAI:            "AI",
	SubjectAPI:           "API",
	SubjectDocumentation: "DOCUMENTATION",
	SubjectConcept:       "CONCEPT",
	SubjectFeelings:      "FEELINGS",
	SubjectStress:        "STRESS",
	SubjectAnxiety:       "ANXIETY",
}

var subjectCodes = make(map[string]Subject, len(subjectNames))

func init() {
	for s, name := range subjectNames {
		subjectCodes[name] = s
	}
}

// SubjectFromCode resolves a raw 2-byte code to a defined subject.
// Named constants and the TRM/RAG dynamic ranges are accepted;
// everything else is rejected.
func SubjectFromCode(code uint16) (Subject, error) {
	s := Subject(code)
	if _, ok := subjectNames[s]; ok {
		return s, nil
	}
	if s.IsTRMReference() || s.IsRAGReference() {
		return s, nil
	}
	return 0, fmt.Errorf("%w: 0x%04X", ErrUnknownSubjectCode, code)
}

// SubjectFromName returns the subject for a name like "WEATHER".
// Dynamic references have no names; use RAGRef and TRMRef.
func SubjectFromName(name string) (Subject, bool) {
	s, ok := subjectCodes[name]
	return s, ok
}

// RAGRef builds a RAG document reference. Document IDs above MaxRAGDocID
// are clamped to the top of the range.
func RAGRef(docID uint16) Subject {
	if docID > MaxRAGDocID {
		docID = MaxRAGDocID
	}
	return Subject(RAGRefStart + docID)
}

// TRMRef builds a reference to another TRM model.
func TRMRef(modelID uint8) Subject {
	return Subject(TRMRefStart + uint16(modelID))
}

// Code returns the raw 2-byte code.
func (s Subject) Code() uint16 { return uint16(s) }

// Category returns the category byte (high byte).
func (s Subject) Category() uint8 { return uint8(s >> 8) }

// Subcategory returns the low byte.
func (s Subject) Subcategory() uint8 { return uint8(s) }

func (s Subject) IsSystem() bool      { return s <= 0x00FF }
func (s Subject) IsCommonTopic() bool { return s >= 0x0100 && s <= 0x01FF }
func (s Subject) IsMathScience() bool { return s >= 0x0200 && s <= 0x02FF }
func (s Subject) IsTechnology() bool  { return s >= 0x0300 && s <= 0x03FF }
func (s Subject) IsKnowledge() bool   { return s >= 0x0400 && s <= 0x04FF }
func (s Subject) IsEmotion() bool     { return s >= 0x0500 && s <= 0x05FF }

// IsTRMReference reports whether the subject chains to another TRM model.
func (s Subject) IsTRMReference() bool {
	return uint16(s) >= TRMRefStart && uint16(s) <= TRMRefEnd
}

// IsRAGReference reports whether the subject requires a document lookup.
func (s Subject) IsRAGReference() bool {
	return uint16(s) >= RAGRefStart && uint16(s) <= RAGRefEnd
}

// RAGDocID returns the document ID of a RAG reference.
func (s Subject) RAGDocID() (uint16, bool) {
	if !s.IsRAGReference() {
		return 0, false
	}
	return uint16(s) - RAGRefStart, true
}

// TRMModelID returns the model ID of a TRM reference.
func (s Subject) TRMModelID() (uint8, bool) {
	if !s.IsTRMReference() {
		return 0, false
	}
	return uint8(uint16(s) - TRMRefStart), true
}

// Name returns the subject name, "RAG_REF"/"TRM_REF" for dynamic
// references, or "UNKNOWN" for undefined codes.
func (s Subject) Name() string {
	if name, ok := subjectNames[s]; ok {
		return name
	}
	if s.IsRAGReference() {
		return "RAG_REF"
	}
	if s.IsTRMReference() {
		return "TRM_REF"
	}
	return "UNKNOWN"
}

func (s Subject) String() string {
	if id, ok := s.RAGDocID(); ok {
		return fmt.Sprintf("SUBJ(RAG:0x%03X)", id)
	}
	if id, ok := s.TRMModelID(); ok {
		return fmt.Sprintf("SUBJ(TRM:0x%02X)", id)
	}
	return fmt.Sprintf("SUBJ(0x%04X:%s)", uint16(s), s.Name())
}
