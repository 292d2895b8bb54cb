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

// Operator defines which operation is performed by the instruction.
type Operator int

// List of valid Operator values.
const (
	Nop Operator = iota
	Adc
	And
	Asl
	Bcc
	Bcs
	Beq
	Bit
	Bmi
	Bne
	Bpl
	Bra
	Brl
	Bvc
	Bvs
	Clc
	Cld
	Cli
	Clv
	Cmp
	Cpx
	Cpy
	Dec
	Dex
	Dey
	Eor
	Inc
	Inx
	Iny
	Jml
	Jmp
	Jsl
	Jsr
	Lda
	Ldx
	Ldy
	Lsr
	Mvn
	Mvp
	Ora
	Pea
	Pei
	Per
	Pha
	Phb
	Phd
	Phk
	Php
	Phx
	Phy
	Pla
	Plb
	Pld
	Plp
	Plx
	Ply
	Rep
	Rol
	Ror
	Rtl
	Rts
	Sbc
	Sec
	Sed
	Sei
	Sep
	Sta
	Stp
	Stx
	Sty
	Stz
	Tax
	Tay
	Tcd
	Tcs
	Tdc
	Trb
	Tsb
	Tsc
	Tsx
	Txa
	Txs
	Txy
	Tya
	Tyx
	Wai
	Wdm
	Xba
	Xce
)

var operatorNames = [...]string{
	Nop: "NOP",
	Adc: "ADC",
	And: "AND",
	Asl: "ASL",
	Bcc: "BCC",
	Bcs: "BCS",
	Beq: "BEQ",
	Bit: "BIT",
	Bmi: "BMI",
	Bne: "BNE",
	Bpl: "BPL",
	Bra: "BRA",
	Brl: "BRL",
	Bvc: "BVC",
	Bvs: "BVS",
	Clc: "CLC",
	Cld: "CLD",
	Cli: "CLI",
	Clv: "CLV",
	Cmp: "CMP",
	Cpx: "CPX",
	Cpy: "CPY",
	Dec: "DEC",
	Dex: "DEX",
	Dey: "DEY",
	Eor: "EOR",
	Inc: "INC",
	Inx: "INX",
	Iny: "INY",
	Jml: "JML",
	Jmp: "JMP",
	Jsl: "JSL",
	Jsr: "JSR",
	Lda: "LDA",
	Ldx: "LDX",
	Ldy: "LDY",
	Lsr: "LSR",
	Mvn: "MVN",
	Mvp: "MVP",
	Ora: "ORA",
	Pea: "PEA",
	Pei: "PEI",
	Per: "PER",
	Pha: "PHA",
	Phb: "PHB",
	Phd: "PHD",
	Phk: "PHK",
	Php: "PHP",
	Phx: "PHX",
	Phy: "PHY",
	Pla: "PLA",
	Plb: "PLB",
	Pld: "PLD",
	Plp: "PLP",
	Plx: "PLX",
	Ply: "PLY",
	Rep: "REP",
	Rol: "ROL",
	Ror: "ROR",
	Rtl: "RTL",
	Rts: "RTS",
	Sbc: "SBC",
	Sec: "SEC",
	Sed: "SED",
	Sei: "SEI",
	Sep: "SEP",
	Sta: "STA",
	Stp: "STP",
	Stx: "STX",
	Sty: "STY",
	Stz: "STZ",
	Tax: "TAX",
	Tay: "TAY",
	Tcd: "TCD",
	Tcs: "TCS",
	Tdc: "TDC",
	Trb: "TRB",
	Tsb: "TSB",
	Tsc: "TSC",
	Tsx: "TSX",
	Txa: "TXA",
	Txs: "TXS",
	Txy: "TXY",
	Tya: "TYA",
	Tyx: "TYX",
	Wai: "WAI",
	Wdm: "WDM",
	Xba: "XBA",
	Xce: "XCE",
}

func (op Operator) String() string {
	if op >= 0 && int(op) < len(operatorNames) {
		return operatorNames[op]
	}
	return "unknown operator"
}

// operatorFromMnemonic returns the Operator for the mnemonic. The mnemonic
// must be upper case.
func operatorFromMnemonic(mnemonic string) (Operator, bool) {
	for i, s := range operatorNames {
		if s == mnemonic {
			return Operator(i), true
		}
	}
	return Nop, false
}
