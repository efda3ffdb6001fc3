package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akhildatla/samisa/pkg/asm"
	"github.com/akhildatla/samisa/pkg/isa"
)

func init() {
	cmd := &cobra.Command{
		Use:   "inspect <hex bytes...>",
		Short: "Decode instruction bytes and print their fields",
		Long: "Decode hex-encoded instruction bytes. Six bytes is a bare base\n" +
			"instruction; longer input must be a full extended instruction.",
		Args: cobra.MinimumNArgs(1),
		Run:  runInspect,
	}

	cmd.Flags().Bool("json", false, "Emit JSON instead of text")

	RootCmd.AddCommand(cmd)
}

type inspectReport struct {
	Bytes    string `json:"bytes"`
	Asm      string `json:"asm"`
	Action   string `json:"action"`
	Subject  string `json:"subject"`
	Modifier struct {
		Word     string `json:"word"`
		Voice    string `json:"voice"`
		Tone     string `json:"tone"`
		Warmth   string `json:"warmth"`
		Format   string `json:"format"`
		Accuracy string `json:"accuracy"`
		Urgency  string `json:"urgency"`
	} `json:"modifier"`
	Payload string `json:"payload,omitempty"`
}

func runInspect(cmd *cobra.Command, args []string) {
	asJSON, _ := cmd.Flags().GetBool("json")

	cleaned := strings.ReplaceAll(strings.Join(args, ""), " ", "")
	cleaned = strings.TrimPrefix(cleaned, "0x")

	b, err := hex.DecodeString(cleaned)
	if err != nil {
		exitErr("decode hex", err)
	}

	var ext isa.ExtendedInstruction
	if len(b) == isa.InstructionSize {
		base, err := isa.ParseOne(b)
		if err != nil {
			exitErr("parse instruction", err)
		}
		ext = isa.NewExtended(base)
	} else {
		ext, err = isa.ParseExtended(b)
		if err != nil {
			exitErr("parse instruction", err)
		}
	}

	report := buildReport(ext)

	if asJSON {
		out, _ := json.MarshalIndent(report, "", "  ")
		fmt.Println(string(out))
		return
	}

	fmt.Printf("bytes:    %s\n", report.Bytes)
	fmt.Printf("asm:      %s\n", report.Asm)
	fmt.Printf("action:   %s\n", report.Action)
	fmt.Printf("subject:  %s\n", report.Subject)
	fmt.Printf("modifier: %s voice=%s tone=%s warmth=%s format=%s accuracy=%s urgency=%s\n",
		report.Modifier.Word, report.Modifier.Voice, report.Modifier.Tone,
		report.Modifier.Warmth, report.Modifier.Format,
		report.Modifier.Accuracy, report.Modifier.Urgency)
	if report.Payload != "" {
		fmt.Printf("payload:  %s\n", report.Payload)
	}
}

func buildReport(ext isa.ExtendedInstruction) inspectReport {
	var r inspectReport
	r.Bytes = fmt.Sprintf("% X", ext.ToBytes())
	r.Asm = asm.Format(ext)
	r.Action = ext.Base.Action.String()
	r.Subject = ext.Base.Subject.String()

	m := ext.Base.Modifier
	r.Modifier.Word = fmt.Sprintf("0x%04X", m.Word())
	r.Modifier.Voice = m.Voice().String()
	r.Modifier.Tone = m.Tone().String()
	r.Modifier.Warmth = m.Warmth().String()
	r.Modifier.Format = m.Format().String()
	r.Modifier.Accuracy = m.Accuracy().String()
	r.Modifier.Urgency = m.Urgency().String()

	switch p := ext.Payload.(type) {
	case isa.CalcPayload:
		r.Payload = fmt.Sprintf("CALC %s", p)
	case isa.TimePayload:
		r.Payload = fmt.Sprintf("TIME %s", p)
	}
	return r
}
