package instruction

import (
	"fmt"
	"log/slog"

	"github.com/gagliardetto/solana-go"

	"github.com/deriverse/drv-smart-contract-common/internal/drverr"
)

// HandlerFunc executes one instruction. data still carries the opcode byte.
type HandlerFunc func(accounts []*solana.AccountMeta, data []byte) error

// Dispatcher routes raw instructions to handlers after the opcode and
// account-count checks pass.
type Dispatcher struct {
	logger   *slog.Logger
	handlers map[uint8]HandlerFunc
}

func NewDispatcher(logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		logger:   logger,
		handlers: make(map[uint8]HandlerFunc),
	}
}

// Handle registers fn for meta. Registering a retired or unknown opcode
// panics.
func (d *Dispatcher) Handle(meta Meta, fn HandlerFunc) {
	if _, ok := Lookup(meta.Number); !ok {
		panic(fmt.Sprintf("instruction: opcode %d is not registered", meta.Number))
	}
	d.handlers[meta.Number] = fn
}

// Dispatch checks the opcode and the account count, then runs the handler.
// The account guard runs before any payload bytes are read.
func (d *Dispatcher) Dispatch(accounts []*solana.AccountMeta, data []byte) error {
	if len(data) == 0 {
		return drverr.New(drverr.InvalidDataFormat, 1, 0)
	}
	meta, ok := Lookup(data[0])
	if !ok {
		return drverr.New(drverr.UnknownInstruction, data[0])
	}
	if err := CheckAccounts(meta, len(accounts)); err != nil {
		return err
	}
	fn, ok := d.handlers[meta.Number]
	if !ok {
		return drverr.New(drverr.UnknownInstruction, data[0])
	}
	if err := fn(accounts, data); err != nil {
		d.logger.Debug("instruction failed", "instruction", meta.Name, "err", err)
		return err
	}
	return nil
}

// CheckAccounts fails when fewer than meta.MinAccounts accounts are supplied.
func CheckAccounts(meta Meta, actual int) error {
	if actual < meta.MinAccounts {
		return drverr.New(drverr.InvalidAccountsAmount, meta.MinAccounts, actual)
	}
	return nil
}
