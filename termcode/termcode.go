// Package termcode implements a compact binary serialization of a term
// tree: each constructor becomes a one-byte opcode followed, for OpVar, by
// a two-byte big-endian operand. Abstractions and applications carry no
// operand of their own — their children simply follow immediately in
// prefix order, so the whole stream can be read back by a single
// recursive-descent pass. The opcode/operand-width idiom and BigEndian
// operand packing are carried over from this evaluator's bytecode
// ancestor, repurposed here for serializing terms rather than instructions
// for a stack machine.
package termcode

import (
	"encoding/binary"
	"fmt"
	"strings"

	"blc/term"
)

// Opcode identifies which term constructor a byte in the stream encodes.
type Opcode byte

const (
	// OpVar is followed by a two-byte big-endian de Bruijn index.
	OpVar Opcode = iota
	// OpAbs is followed immediately by its body's encoding.
	OpAbs
	// OpApp is followed immediately by its function's encoding, then its
	// argument's encoding.
	OpApp
)

var opcodeNames = map[Opcode]string{
	OpVar: "OpVar",
	OpAbs: "OpAbs",
	OpApp: "OpApp",
}

func (op Opcode) String() string {
	if name, ok := opcodeNames[op]; ok {
		return name
	}
	return fmt.Sprintf("Opcode(%d)", byte(op))
}

// Instructions is a completed termcode byte stream.
type Instructions []byte

// Encode serialises t into a termcode byte stream in prefix order.
func Encode(t term.Term) Instructions {
	var out Instructions
	out = appendTerm(out, t)
	return out
}

func appendTerm(out Instructions, t term.Term) Instructions {
	switch v := t.(type) {
	case term.Var:
		out = append(out, byte(OpVar))
		var operand [2]byte
		binary.BigEndian.PutUint16(operand[:], uint16(v.Index))
		return append(out, operand[:]...)
	case term.Abs:
		out = append(out, byte(OpAbs))
		return appendTerm(out, v.Body)
	case term.App:
		out = append(out, byte(OpApp))
		out = appendTerm(out, v.Func)
		return appendTerm(out, v.Arg)
	default:
		return out
	}
}

// DecodeErrorKind classifies a failure reading a termcode stream.
type DecodeErrorKind int

const (
	// ErrTruncatedStream is raised when the stream ends where an opcode
	// byte was expected.
	ErrTruncatedStream DecodeErrorKind = iota
	// ErrTruncatedOperand is raised when an OpVar's two-byte operand
	// runs past the end of the stream.
	ErrTruncatedOperand
	// ErrUnknownOpcode is raised when a byte does not match any defined
	// opcode.
	ErrUnknownOpcode
)

// DecodeError is the error kind produced while reading a termcode stream.
type DecodeError struct {
	Kind    DecodeErrorKind
	Offset  int
	Message string
}

func (e DecodeError) Error() string {
	return fmt.Sprintf("termcode decode error at byte %d: %s", e.Offset, e.Message)
}

func decodeErr(kind DecodeErrorKind, offset int, message string) DecodeError {
	return DecodeError{Kind: kind, Offset: offset, Message: message}
}

// Decode reads a single term from the start of ins. Trailing bytes beyond
// the term's encoding are ignored, mirroring parser.ParseBLC's treatment
// of a top-level term's unconsumed tail.
func Decode(ins Instructions) (term.Term, error) {
	t, _, err := decodeAt(ins, 0)
	return t, err
}

func decodeAt(ins Instructions, pos int) (term.Term, int, error) {
	if pos >= len(ins) {
		return nil, pos, decodeErr(ErrTruncatedStream, pos, "expected an opcode, found end of stream")
	}

	switch Opcode(ins[pos]) {
	case OpVar:
		if pos+3 > len(ins) {
			return nil, pos, decodeErr(ErrTruncatedOperand, pos, "OpVar operand runs past end of stream")
		}
		index := binary.BigEndian.Uint16(ins[pos+1 : pos+3])
		return term.Var{Index: int(index)}, pos + 3, nil

	case OpAbs:
		body, next, err := decodeAt(ins, pos+1)
		if err != nil {
			return nil, next, err
		}
		return term.Abs{Body: body}, next, nil

	case OpApp:
		fn, next, err := decodeAt(ins, pos+1)
		if err != nil {
			return nil, next, err
		}
		arg, next2, err := decodeAt(ins, next)
		if err != nil {
			return nil, next2, err
		}
		return term.App{Func: fn, Arg: arg}, next2, nil

	default:
		return nil, pos, decodeErr(ErrUnknownOpcode, pos, fmt.Sprintf("unknown opcode byte %d", ins[pos]))
	}
}

// Disassemble renders ins as a human-readable listing, one line per opcode
// encountered, in the order it appears in the stream.
func Disassemble(ins Instructions) string {
	var sb strings.Builder
	pos := 0
	for pos < len(ins) {
		op := Opcode(ins[pos])
		switch op {
		case OpVar:
			if pos+3 > len(ins) {
				fmt.Fprintf(&sb, "%04d ERROR truncated OpVar operand\n", pos)
				return sb.String()
			}
			index := binary.BigEndian.Uint16(ins[pos+1 : pos+3])
			fmt.Fprintf(&sb, "%04d %s %d\n", pos, op, index)
			pos += 3
		case OpAbs, OpApp:
			fmt.Fprintf(&sb, "%04d %s\n", pos, op)
			pos++
		default:
			fmt.Fprintf(&sb, "%04d ERROR unknown opcode %d\n", pos, ins[pos])
			pos++
		}
	}
	return sb.String()
}
