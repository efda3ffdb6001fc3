// Package isa defines the SAM instruction set: a fixed 6-byte big-endian
// opcode format for machine-checkable AI output.
//
// A base instruction is three 2-byte fields:
//
//	[ACT_HI][ACT_LO][SUBJ_HI][SUBJ_LO][MOD_HI][MOD_LO]
//
// Extended instructions append a 1-byte payload tag and a fixed-size
// operand payload (see ExtendedInstruction).
package isa

import "fmt"

// Action represents a 2-byte action code.
//
// Actions are organized into categories by high byte:
//
//	0x00xx  System    (NOP, HALT, ERROR, STATUS)
//	0x01xx  Response  (GREET, CONFIRM, DENY, RESPOND, ...)
//	0x02xx  Query     (ASK, REQUEST, SEARCH, RETRIEVE)
//	0x03xx  Knowledge (DEFINE, DESCRIBE, COMPARE, SUMMARIZE, ...)
//	0x04xx  Skill     (CALCULATE, SET_TIMER, KNOWLEDGE_SEARCH)
//	0x05xx  Emotion   (EMPATHY, CONCERN, ENCOURAGEMENT, REASSURE)
//	0x06xx  Template  (TEMPLATE_LOAD, TEMPLATE_FILL)
//	0x07xx  Chain     (CHAIN, FORK, MERGE)
type Action uint16

const (
	// ===== System Actions (0x0000-0x00FF) =====
	ActionNop    Action = 0x0000
	ActionHalt   Action = 0x0001
	ActionError  Action = 0x0002
	ActionStatus Action = 0x0003

	// ===== Response Actions (0x0100-0x01FF) =====
	ActionGreet     Action = 0x0100
	ActionConfirm   Action = 0x0101
	ActionDeny      Action = 0x0102
	ActionExplain   Action = 0x0103
	ActionClarify   Action = 0x0104
	ActionApologize Action = 0x0105
	ActionThank     Action = 0x0106
	ActionRespond   Action = 0x0107

	// ===== Query Actions (0x0200-0x02FF) =====
	ActionAsk      Action = 0x0200
	ActionRequest  Action = 0x0201
	ActionSearch   Action = 0x0202
	ActionRetrieve Action = 0x0203

	// ===== Knowledge Actions (0x0300-0x03FF) =====
	ActionDefine     Action = 0x0300
	ActionDescribe   Action = 0x0301
	ActionCompare    Action = 0x0302
	ActionSummarize  Action = 0x0303
	ActionExplainHow Action = 0x0304
	ActionExplainWhy Action = 0x0305

	// ===== Skill Actions (0x0400-0x04FF) =====
	ActionCalculate       Action = 0x0400
	ActionSetTimer        Action = 0x0401
	ActionKnowledgeSearch Action = 0x0402

	// ===== Emotion Actions (0x0500-0x05FF) =====
	ActionEmpathy       Action = 0x0500
	ActionConcern       Action = 0x0501
	ActionEncouragement Action = 0x0502
	ActionReassure      Action = 0x0503

	// ===== Template Actions (0x0600-0x06FF) =====
	ActionTemplateLoad Action = 0x0600
	ActionTemplateFill Action = 0x0601

	// ===== Chain Actions (0x0700-0x07FF) =====
	ActionChain Action = 0x0700
	ActionFork  Action = 0x0701
	ActionMerge Action = 0x0702
)

var actionNames = map[Action]string{
	ActionNop:             "NOP",
	ActionHalt:            "HALT",
	ActionError:           "ERROR",
	ActionStatus:          "STATUS",
	ActionGreet:           "GREET",
	ActionConfirm:         "CONFIRM",
	ActionDeny:            "DENY",
	ActionExplain:         "EXPLAIN",
	ActionClarify:         "CLARIFY",
	ActionApologize:       "APOLOGIZE",
	ActionThank:           "THANK",
	ActionRespond:         "RESPOND",
	ActionAsk:             "ASK",
	ActionRequest:         "REQUEST",
	ActionSearch:          "SEARCH",
	ActionRetrieve:        "RETRIEVE",
	ActionDefine:          "DEFINE",
	ActionDescribe:        "DESCRIBE",
	ActionCompare:         "COMPARE",
	ActionSummarize:       "SUMMARIZE",
	ActionExplainHow:      "EXPLAIN_HOW",
	ActionExplainWhy:      "EXPLAIN_WHY",
	ActionCalculate:       "CALCULATE",
	ActionSetTimer:        "SET_TIMER",
	ActionKnowledgeSearch: "KNOWLEDGE_SEARCH",
	ActionEmpathy:         "EMPATHY",
	ActionConcern:         "CONCERN",
	ActionEncouragement:   "ENCOURAGEMENT",
	ActionReassure:        "REASSURE",
	ActionTemplateLoad:    "TEMPLATE_LOAD",
	ActionTemplateFill:    "TEMPLATE_FILL",
	ActionChain:           "CHAIN",
	ActionFork:            "FORK",
	ActionMerge:           "MERGE",
}

var actionCodes = make(map[string]Action, len(actionNames))

func init() {
	for a, name := range actionNames {
		actionCodes[name] = a
	}
}

// ActionFromCode resolves a raw 2-byte code to a defined action.
// Codes that have no assigned action are rejected, including
// unassigned codes inside a defined category range.
func ActionFromCode(code uint16) (Action, error) {
	a := Action(code)
	if _, ok := actionNames[a]; !ok {
		return 0, fmt.Errorf("%w: 0x%04X", ErrUnknownActionCode, code)
	}
	return a, nil
}

// ActionFromName returns the action for a mnemonic like "GREET".
func ActionFromName(name string) (Action, bool) {
	a, ok := actionCodes[name]
	return a, ok
}

// Code returns the raw 2-byte code.
func (a Action) Code() uint16 { return uint16(a) }

// Category returns the category byte (high byte).
func (a Action) Category() uint8 { return uint8(a >> 8) }

// Subcategory returns the low byte.
func (a Action) Subcategory() uint8 { return uint8(a) }

// Name returns the mnemonic, or "UNKNOWN" for undefined codes.
func (a Action) Name() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "UNKNOWN"
}

func (a Action) IsSystem() bool    { return a <= 0x00FF }
func (a Action) IsResponse() bool  { return a >= 0x0100 && a <= 0x01FF }
func (a Action) IsQuery() bool     { return a >= 0x0200 && a <= 0x02FF }
func (a Action) IsKnowledge() bool { return a >= 0x0300 && a <= 0x03FF }
func (a Action) IsSkill() bool     { return a >= 0x0400 && a <= 0x04FF }
func (a Action) IsEmotion() bool   { return a >= 0x0500 && a <= 0x05FF }
func (a Action) IsTemplate() bool  { return a >= 0x0600 && a <= 0x06FF }
func (a Action) IsChain() bool     { return a >= 0x0700 && a <= 0x07FF }

func (a Action) String() string {
	return fmt.Sprintf("ACT(0x%04X:%s)", uint16(a), a.Name())
}
