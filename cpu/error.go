package cpu

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/hexaflex/chip8/translate"
)

var f = translate.From

// Known runtime errors.
var (
	ErrUnsupportedOpcode = errors.New(f("unsupported opcode"))
	ErrStackOverflow     = errors.New(f("stack overflow"))
	ErrStackUnderflow    = errors.New(f("stack underflow"))
	ErrProgramTooLarge   = errors.New(f("program too large"))
	ErrEmptyProgram      = errors.New(f("empty program"))
)

// Error defines a runtime error raised by a single instruction.
type Error struct {
	Instruction
	Err error
}

// NewError creates a new error for the given instruction.
func NewError(instr *Instruction, err error) *Error {
	return &Error{
		Instruction: *instr,
		Err:         err,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("%03x: %04x: %s", e.IP, e.Opcode, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsFatal returns true if err halts the machine until it is reset.
func IsFatal(err error) bool {
	return errors.Is(err, ErrStackOverflow) || errors.Is(err, ErrStackUnderflow)
}
