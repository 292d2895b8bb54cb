// This file is part of Emu816.
//
// Emu816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu816.  If not, see <https://www.gnu.org/licenses/>.

package instructions

import (
	_ "embed"
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/emu816/emu816/curated"
)

//go:embed instructions.csv
var definitionsCSV string

// Sentinal error patterns for the instructions package.
const (
	DefinitionError    = "instructions: line %d: %v"
	DefinitionCSVError = "instructions: %v"
)

var addressingModeTokens = map[string]AddressingMode{
	"IMP":   Implied,
	"ACC":   Accumulator,
	"IMM":   Immediate,
	"REL":   Relative,
	"RELL":  RelativeLong,
	"DP":    Direct,
	"DPX":   DirectIndexedX,
	"DPY":   DirectIndexedY,
	"DPI":   DirectIndirect,
	"DPXI":  DirectIndexedIndirect,
	"DPIY":  DirectIndirectIndexed,
	"DPIL":  DirectIndirectLong,
	"DPILY": DirectIndirectLongIndexed,
	"ABS":   Absolute,
	"ABSX":  AbsoluteIndexedX,
	"ABSY":  AbsoluteIndexedY,
	"ABSL":  AbsoluteLong,
	"ABSLX": AbsoluteLongIndexedX,
	"ABSI":  AbsoluteIndirect,
	"ABSXI": AbsoluteIndexedIndirect,
	"ABSIL": AbsoluteIndirectLong,
	"SR":    StackRelative,
	"SRIY":  StackRelativeIndirectIndexed,
	"BLK":   BlockMove,
}

var effectTokens = map[string]Category{
	"READ":       Read,
	"WRITE":      Write,
	"MODIFY":     Modify,
	"FLOW":       Flow,
	"SUBROUTINE": Subroutine,
	"STACK":      Stack,
	"CONTROL":    Control,
}

// immediateWidth returns how the immediate operand is sized for the operator
func immediateWidth(op Operator) (ImmediateWidth, bool) {
	switch op {
	case Adc, And, Bit, Cmp, Eor, Lda, Ora, Sbc:
		return AccumulatorWidth, true
	case Cpx, Cpy, Ldx, Ldy:
		return IndexWidth, true
	case Rep, Sep, Wdm:
		return ByteWidth, true
	}
	return NoImmediate, false
}

// GetDefinitions returns the table of instruction definitions for the 65C816,
// indexed by opcode. Opcodes without a definition have a nil entry.
func GetDefinitions() ([256]*Definition, error) {
	var table [256]*Definition

	r := csv.NewReader(strings.NewReader(definitionsCSV))
	r.Comment = '#'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1

	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return table, curated.Errorf(DefinitionCSVError, err)
		}
		line, _ := r.FieldPos(0)

		if len(rec) < 3 || len(rec) > 4 {
			return table, curated.Errorf(DefinitionError, line, "wrong number of fields")
		}
		for i := range rec {
			rec[i] = strings.TrimSpace(rec[i])
		}

		opcode, err := strconv.ParseUint(strings.TrimPrefix(rec[0], "0x"), 16, 8)
		if err != nil {
			return table, curated.Errorf(DefinitionError, line, err)
		}
		if table[opcode] != nil {
			return table, curated.Errorf(DefinitionError, line, "duplicate opcode")
		}

		defn := &Definition{OpCode: uint8(opcode)}

		var ok bool
		defn.Operator, ok = operatorFromMnemonic(rec[1])
		if !ok {
			return table, curated.Errorf(DefinitionError, line, "unknown operator "+rec[1])
		}

		defn.AddressingMode, ok = addressingModeTokens[rec[2]]
		if !ok {
			return table, curated.Errorf(DefinitionError, line, "unknown addressing mode "+rec[2])
		}

		if defn.AddressingMode == Immediate {
			defn.Immediate, ok = immediateWidth(defn.Operator)
			if !ok {
				return table, curated.Errorf(DefinitionError, line, "operator cannot take an immediate operand")
			}
		}

		if len(rec) == 4 {
			defn.Effect, ok = effectTokens[rec[3]]
			if !ok {
				return table, curated.Errorf(DefinitionError, line, "unknown effect "+rec[3])
			}
		}

		table[opcode] = defn
	}

	return table, nil
}
