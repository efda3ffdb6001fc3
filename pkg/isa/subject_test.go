package isa

import (
	"errors"
	"testing"
)

func TestSubjectFromCode_RoundTrip(t *testing.T) {
	for subject, name := range subjectNames {
		got, err := SubjectFromCode(subject.Code())
		if err != nil {
			t.Errorf("%s: SubjectFromCode(0x%04X) failed: %v", name, subject.Code(), err)
			continue
		}
		if got != subject {
			t.Errorf("%s: expected %v, got %v", name, subject, got)
		}
	}
}

func TestSubjectFromCode_DynamicRanges(t *testing.T) {
	// Every code inside the TRM and RAG ranges is defined.
	for _, code := range []uint16{TRMRefStart, 0x0642, TRMRefEnd, RAGRefStart, 0xE0A3, RAGRefEnd} {
		if _, err := SubjectFromCode(code); err != nil {
			t.Errorf("SubjectFromCode(0x%04X) should accept dynamic reference: %v", code, err)
		}
	}
}

func TestSubjectFromCode_Unknown(t *testing.T) {
	tests := []struct {
		name string
		code uint16
	}{
		{"unassigned in system range", 0x0004},
		{"unassigned in common range", 0x0107},
		{"just above TRM range", 0x0700},
		{"just below RAG range", 0xDFFF},
		{"just above RAG range", 0xF000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := SubjectFromCode(tt.code); !errors.Is(err, ErrUnknownSubjectCode) {
				t.Errorf("expected ErrUnknownSubjectCode for 0x%04X, got %v", tt.code, err)
			}
		})
	}
}

func TestSubject_Categories(t *testing.T) {
	if !SubjectNull.IsSystem() {
		t.Error("NULL should be a system subject")
	}
	if !SubjectWeather.IsCommonTopic() || !SubjectTime.IsCommonTopic() {
		t.Error("WEATHER and TIME should be common topics")
	}
	if !SubjectNumber.IsMathScience() {
		t.Error("NUMBER should be math/science")
	}
	if !SubjectAPI.IsTechnology() {
		t.Error("API should be technology")
	}
	if !SubjectDocumentation.IsKnowledge() {
		t.Error("DOCUMENTATION should be knowledge")
	}
	if !SubjectStress.IsEmotion() {
		t.Error("STRESS should be an emotion subject")
	}
}

func TestSubject_RAGRef(t *testing.T) {
	ref := RAGRef(0x0A3)
	if !ref.IsRAGReference() {
		t.Error("RAGRef result should be a RAG reference")
	}
	if ref.Code() != 0xE0A3 {
		t.Errorf("expected 0xE0A3, got 0x%04X", ref.Code())
	}
	id, ok := ref.RAGDocID()
	if !ok || id != 0x0A3 {
		t.Errorf("expected doc ID 0x0A3, got 0x%03X (ok=%v)", id, ok)
	}

	// IDs past the range clamp to the top.
	if RAGRef(0xFFFF).Code() != RAGRefEnd {
		t.Errorf("expected clamp to 0x%04X, got 0x%04X", RAGRefEnd, RAGRef(0xFFFF).Code())
	}

	if SubjectUser.IsRAGReference() {
		t.Error("USER should not be a RAG reference")
	}
	if _, ok := SubjectUser.RAGDocID(); ok {
		t.Error("USER should have no doc ID")
	}
}

func TestSubject_TRMRef(t *testing.T) {
	ref := TRMRef(5)
	if !ref.IsTRMReference() {
		t.Error("TRMRef result should be a TRM reference")
	}
	if ref.Code() != 0x0605 {
		t.Errorf("expected 0x0605, got 0x%04X", ref.Code())
	}
	id, ok := ref.TRMModelID()
	if !ok || id != 5 {
		t.Errorf("expected model ID 5, got %d (ok=%v)", id, ok)
	}
	if SubjectUser.IsTRMReference() {
		t.Error("USER should not be a TRM reference")
	}
}

func TestSubject_Name(t *testing.T) {
	if SubjectTime.Name() != "TIME" {
		t.Errorf("expected TIME, got %s", SubjectTime.Name())
	}
	if RAGRef(1).Name() != "RAG_REF" {
		t.Errorf("expected RAG_REF, got %s", RAGRef(1).Name())
	}
	if TRMRef(1).Name() != "TRM_REF" {
		t.Errorf("expected TRM_REF, got %s", TRMRef(1).Name())
	}
	if Subject(0x9999).Name() != "UNKNOWN" {
		t.Errorf("expected UNKNOWN, got %s", Subject(0x9999).Name())
	}
}
