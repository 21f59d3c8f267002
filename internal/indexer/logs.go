package indexer

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
	"github.com/deriverse/drv-smart-contract-common/internal/report"
)

// ProgramEvent is one decoded log record of a transaction.
type ProgramEvent struct {
	Signature string
	Slot      uint64
	BlockTime int64
	// LogIndex is the position of the record among the program's records
	// in the transaction.
	LogIndex int
	LogType  uint8
	Kind     string
	Report   report.Report
}

// TxFailure is a transaction the program rejected with a custom code.
type TxFailure struct {
	Signature        string
	Slot             uint64
	BlockTime        int64
	InstructionIndex int
	Code             uint32
	Name             string
	Message          string
}

// LogBatch is what one transaction's log lines yield.
type LogBatch struct {
	Events      []ProgramEvent
	Diagnostics []*drverr.Diagnostic
	// Skipped counts "Program data:" lines of the program that did not
	// decode.
	Skipped int
}

// ParseLogs decodes the records and error diagnostics emitted by programID.
// Lines printed while another program is on top of the invocation stack are
// ignored.
func ParseLogs(programID solana.PublicKey, signature string, slot uint64, blockTime int64, lines []string) LogBatch {
	var (
		batch LogBatch
		stack []string
	)
	target := programID.String()
	for _, line := range lines {
		if id, ok := invokedProgram(line); ok {
			stack = append(stack, id)
			continue
		}
		if id, ok := finishedProgram(line); ok {
			if n := len(stack); n > 0 && stack[n-1] == id {
				stack = stack[:n-1]
			}
			continue
		}
		if len(stack) == 0 || stack[len(stack)-1] != target {
			continue
		}

		if diag, ok := drverr.ParseDiagnostic(line); ok {
			batch.Diagnostics = append(batch.Diagnostics, diag)
			continue
		}
		r, ok, err := report.ParseProgramData(line)
		if !ok {
			continue
		}
		if err != nil {
			batch.Skipped++
			continue
		}
		batch.Events = append(batch.Events, ProgramEvent{
			Signature: signature,
			Slot:      slot,
			BlockTime: blockTime,
			LogIndex:  len(batch.Events),
			LogType:   r.LogType(),
			Kind:      report.Name(r.LogType()),
			Report:    r,
		})
	}
	return batch
}

// invokedProgram matches "Program <id> invoke [depth]".
func invokedProgram(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "Program ")
	if !ok {
		return "", false
	}
	id, tail, ok := strings.Cut(rest, " ")
	if !ok || !strings.HasPrefix(tail, "invoke [") {
		return "", false
	}
	return id, true
}

// finishedProgram matches "Program <id> success" and "Program <id> failed: ...".
func finishedProgram(line string) (string, bool) {
	rest, ok := strings.CutPrefix(line, "Program ")
	if !ok {
		return "", false
	}
	id, tail, ok := strings.Cut(rest, " ")
	if !ok || (tail != "success" && !strings.HasPrefix(tail, "failed")) {
		return "", false
	}
	return id, true
}

// FailureFromError decodes a transaction error carrying a custom program
// code. ok is false for errors of other shapes.
func FailureFromError(signature string, slot uint64, blockTime int64, txErr any) (TxFailure, bool) {
	index, code, ok := drverr.ParseInstructionError(txErr)
	if !ok {
		return TxFailure{}, false
	}
	failure := TxFailure{
		Signature:        signature,
		Slot:             slot,
		BlockTime:        blockTime,
		InstructionIndex: index,
		Code:             code,
		Name:             fmt.Sprintf("Custom(%d)", code),
	}
	if kind, known := drverr.LookupCode(code); known {
		failure.Name = kind.Name()
		failure.Message = kind.Template()
	}
	return failure, true
}

// Annotate replaces the template message with the rendered one from the
// transaction's own diagnostic, when the program logged it.
func (f *TxFailure) Annotate(diagnostics []*drverr.Diagnostic) {
	for _, diag := range diagnostics {
		if diag.Code == f.Code {
			f.Message = diag.Msg
			return
		}
	}
}
