package cpu

// row is the table-construction-time shape of a decode.Entry: data only,
// no exec wrapper yet. Kept separate from Entry so the 256-line literal
// below reads as a flat opcode table, the same shape as the teacher's own
// disassemble.go mnemonic/mode listing.
type row struct {
	mnem   string
	mode   AddressingMode
	cycles uint8
	class  opClass
	fn     func(*CPU) uint8
}

// nmosTable is the full NMOS 6502 opcode map: 151 legal opcodes plus the
// ~105 documented illegal opcodes (SLO/RLA/SRE/RRA/DCP/ISC/LAX/SAX/ANC/
// ALR/ARR/ANE/LXA/SBX/SHA/SHX/SHY/TAS/LAS/JAM and the illegal NOP/SBC
// duplicates), grounded on the teacher's disassemble.go classification
// and processOpcode addressing-mode pairing. Unlisted combinations don't
// occur: every one of the 256 byte values has an entry.
var nmosTable = [256]row{
	0x00: {"BRK", ModeIMP, 7, classOther, execBRK},
	0x01: {"ORA", ModeIZX, 6, classLoad, execORA},
	0x02: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x03: {"SLO", ModeIZX, 8, classRMW, execSLO},
	0x04: {"NOP", ModeZP0, 3, classLoad, execNOP},
	0x05: {"ORA", ModeZP0, 3, classLoad, execORA},
	0x06: {"ASL", ModeZP0, 5, classRMW, execASL},
	0x07: {"SLO", ModeZP0, 5, classRMW, execSLO},
	0x08: {"PHP", ModeIMP, 3, classOther, execPHP},
	0x09: {"ORA", ModeIMM, 2, classLoad, execORA},
	0x0A: {"ASL", ModeACC, 2, classOther, execASL},
	0x0B: {"ANC", ModeIMM, 2, classLoad, execANC},
	0x0C: {"NOP", ModeABS, 4, classLoad, execNOP},
	0x0D: {"ORA", ModeABS, 4, classLoad, execORA},
	0x0E: {"ASL", ModeABS, 6, classRMW, execASL},
	0x0F: {"SLO", ModeABS, 6, classRMW, execSLO},

	0x10: {"BPL", ModeREL, 2, classOther, execBPL},
	0x11: {"ORA", ModeIZY, 5, classLoad, execORA},
	0x12: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x13: {"SLO", ModeIZY, 8, classRMW, execSLO},
	0x14: {"NOP", ModeZPX, 4, classLoad, execNOP},
	0x15: {"ORA", ModeZPX, 4, classLoad, execORA},
	0x16: {"ASL", ModeZPX, 6, classRMW, execASL},
	0x17: {"SLO", ModeZPX, 6, classRMW, execSLO},
	0x18: {"CLC", ModeIMP, 2, classOther, execCLC},
	0x19: {"ORA", ModeABY, 4, classLoad, execORA},
	0x1A: {"NOP", ModeIMP, 2, classOther, execNOP},
	0x1B: {"SLO", ModeABY, 7, classRMW, execSLO},
	0x1C: {"NOP", ModeABX, 4, classLoad, execNOP},
	0x1D: {"ORA", ModeABX, 4, classLoad, execORA},
	0x1E: {"ASL", ModeABX, 7, classRMW, execASL},
	0x1F: {"SLO", ModeABX, 7, classRMW, execSLO},

	0x20: {"JSR", ModeABS, 6, classOther, execJSR},
	0x21: {"AND", ModeIZX, 6, classLoad, execAND},
	0x22: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x23: {"RLA", ModeIZX, 8, classRMW, execRLA},
	0x24: {"BIT", ModeZP0, 3, classLoad, execBIT},
	0x25: {"AND", ModeZP0, 3, classLoad, execAND},
	0x26: {"ROL", ModeZP0, 5, classRMW, execROL},
	0x27: {"RLA", ModeZP0, 5, classRMW, execRLA},
	0x28: {"PLP", ModeIMP, 4, classOther, execPLP},
	0x29: {"AND", ModeIMM, 2, classLoad, execAND},
	0x2A: {"ROL", ModeACC, 2, classOther, execROL},
	0x2B: {"ANC", ModeIMM, 2, classLoad, execANC},
	0x2C: {"BIT", ModeABS, 4, classLoad, execBIT},
	0x2D: {"AND", ModeABS, 4, classLoad, execAND},
	0x2E: {"ROL", ModeABS, 6, classRMW, execROL},
	0x2F: {"RLA", ModeABS, 6, classRMW, execRLA},

	0x30: {"BMI", ModeREL, 2, classOther, execBMI},
	0x31: {"AND", ModeIZY, 5, classLoad, execAND},
	0x32: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x33: {"RLA", ModeIZY, 8, classRMW, execRLA},
	0x34: {"NOP", ModeZPX, 4, classLoad, execNOP},
	0x35: {"AND", ModeZPX, 4, classLoad, execAND},
	0x36: {"ROL", ModeZPX, 6, classRMW, execROL},
	0x37: {"RLA", ModeZPX, 6, classRMW, execRLA},
	0x38: {"SEC", ModeIMP, 2, classOther, execSEC},
	0x39: {"AND", ModeABY, 4, classLoad, execAND},
	0x3A: {"NOP", ModeIMP, 2, classOther, execNOP},
	0x3B: {"RLA", ModeABY, 7, classRMW, execRLA},
	0x3C: {"NOP", ModeABX, 4, classLoad, execNOP},
	0x3D: {"AND", ModeABX, 4, classLoad, execAND},
	0x3E: {"ROL", ModeABX, 7, classRMW, execROL},
	0x3F: {"RLA", ModeABX, 7, classRMW, execRLA},

	0x40: {"RTI", ModeIMP, 6, classOther, execRTI},
	0x41: {"EOR", ModeIZX, 6, classLoad, execEOR},
	0x42: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x43: {"SRE", ModeIZX, 8, classRMW, execSRE},
	0x44: {"NOP", ModeZP0, 3, classLoad, execNOP},
	0x45: {"EOR", ModeZP0, 3, classLoad, execEOR},
	0x46: {"LSR", ModeZP0, 5, classRMW, execLSR},
	0x47: {"SRE", ModeZP0, 5, classRMW, execSRE},
	0x48: {"PHA", ModeIMP, 3, classOther, execPHA},
	0x49: {"EOR", ModeIMM, 2, classLoad, execEOR},
	0x4A: {"LSR", ModeACC, 2, classOther, execLSR},
	0x4B: {"ALR", ModeIMM, 2, classLoad, execALR},
	0x4C: {"JMP", ModeABS, 3, classOther, execJMP},
	0x4D: {"EOR", ModeABS, 4, classLoad, execEOR},
	0x4E: {"LSR", ModeABS, 6, classRMW, execLSR},
	0x4F: {"SRE", ModeABS, 6, classRMW, execSRE},

	0x50: {"BVC", ModeREL, 2, classOther, execBVC},
	0x51: {"EOR", ModeIZY, 5, classLoad, execEOR},
	0x52: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x53: {"SRE", ModeIZY, 8, classRMW, execSRE},
	0x54: {"NOP", ModeZPX, 4, classLoad, execNOP},
	0x55: {"EOR", ModeZPX, 4, classLoad, execEOR},
	0x56: {"LSR", ModeZPX, 6, classRMW, execLSR},
	0x57: {"SRE", ModeZPX, 6, classRMW, execSRE},
	0x58: {"CLI", ModeIMP, 2, classOther, execCLI},
	0x59: {"EOR", ModeABY, 4, classLoad, execEOR},
	0x5A: {"NOP", ModeIMP, 2, classOther, execNOP},
	0x5B: {"SRE", ModeABY, 7, classRMW, execSRE},
	0x5C: {"NOP", ModeABX, 4, classLoad, execNOP},
	0x5D: {"EOR", ModeABX, 4, classLoad, execEOR},
	0x5E: {"LSR", ModeABX, 7, classRMW, execLSR},
	0x5F: {"SRE", ModeABX, 7, classRMW, execSRE},

	0x60: {"RTS", ModeIMP, 6, classOther, execRTS},
	0x61: {"ADC", ModeIZX, 6, classLoad, execADC},
	0x62: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x63: {"RRA", ModeIZX, 8, classRMW, execRRA},
	0x64: {"NOP", ModeZP0, 3, classLoad, execNOP},
	0x65: {"ADC", ModeZP0, 3, classLoad, execADC},
	0x66: {"ROR", ModeZP0, 5, classRMW, execROR},
	0x67: {"RRA", ModeZP0, 5, classRMW, execRRA},
	0x68: {"PLA", ModeIMP, 4, classOther, execPLA},
	0x69: {"ADC", ModeIMM, 2, classLoad, execADC},
	0x6A: {"ROR", ModeACC, 2, classOther, execROR},
	0x6B: {"ARR", ModeIMM, 2, classLoad, execARR},
	0x6C: {"JMP", ModeIND, 5, classOther, execJMP},
	0x6D: {"ADC", ModeABS, 4, classLoad, execADC},
	0x6E: {"ROR", ModeABS, 6, classRMW, execROR},
	0x6F: {"RRA", ModeABS, 6, classRMW, execRRA},

	0x70: {"BVS", ModeREL, 2, classOther, execBVS},
	0x71: {"ADC", ModeIZY, 5, classLoad, execADC},
	0x72: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x73: {"RRA", ModeIZY, 8, classRMW, execRRA},
	0x74: {"NOP", ModeZPX, 4, classLoad, execNOP},
	0x75: {"ADC", ModeZPX, 4, classLoad, execADC},
	0x76: {"ROR", ModeZPX, 6, classRMW, execROR},
	0x77: {"RRA", ModeZPX, 6, classRMW, execRRA},
	0x78: {"SEI", ModeIMP, 2, classOther, execSEI},
	0x79: {"ADC", ModeABY, 4, classLoad, execADC},
	0x7A: {"NOP", ModeIMP, 2, classOther, execNOP},
	0x7B: {"RRA", ModeABY, 7, classRMW, execRRA},
	0x7C: {"NOP", ModeABX, 4, classLoad, execNOP},
	0x7D: {"ADC", ModeABX, 4, classLoad, execADC},
	0x7E: {"ROR", ModeABX, 7, classRMW, execROR},
	0x7F: {"RRA", ModeABX, 7, classRMW, execRRA},

	0x80: {"NOP", ModeIMM, 2, classLoad, execNOP},
	0x81: {"STA", ModeIZX, 6, classStore, execSTA},
	0x82: {"NOP", ModeIMM, 2, classLoad, execNOP},
	0x83: {"SAX", ModeIZX, 6, classStore, execSAX},
	0x84: {"STY", ModeZP0, 3, classStore, execSTY},
	0x85: {"STA", ModeZP0, 3, classStore, execSTA},
	0x86: {"STX", ModeZP0, 3, classStore, execSTX},
	0x87: {"SAX", ModeZP0, 3, classStore, execSAX},
	0x88: {"DEY", ModeIMP, 2, classOther, execDEY},
	0x89: {"NOP", ModeIMM, 2, classLoad, execNOP},
	0x8A: {"TXA", ModeIMP, 2, classOther, execTXA},
	0x8B: {"ANE", ModeIMM, 2, classLoad, execANE},
	0x8C: {"STY", ModeABS, 4, classStore, execSTY},
	0x8D: {"STA", ModeABS, 4, classStore, execSTA},
	0x8E: {"STX", ModeABS, 4, classStore, execSTX},
	0x8F: {"SAX", ModeABS, 4, classStore, execSAX},

	0x90: {"BCC", ModeREL, 2, classOther, execBCC},
	0x91: {"STA", ModeIZY, 6, classStore, execSTA},
	0x92: {"JAM", ModeIMP, 1, classOther, execJAM},
	0x93: {"SHA", ModeIZY, 6, classStore, execSHA},
	0x94: {"STY", ModeZPX, 4, classStore, execSTY},
	0x95: {"STA", ModeZPX, 4, classStore, execSTA},
	0x96: {"STX", ModeZPY, 4, classStore, execSTX},
	0x97: {"SAX", ModeZPY, 4, classStore, execSAX},
	0x98: {"TYA", ModeIMP, 2, classOther, execTYA},
	0x99: {"STA", ModeABY, 5, classStore, execSTA},
	0x9A: {"TXS", ModeIMP, 2, classOther, execTXS},
	0x9B: {"TAS", ModeABY, 5, classStore, execTAS},
	0x9C: {"SHY", ModeABX, 5, classStore, execSHY},
	0x9D: {"STA", ModeABX, 5, classStore, execSTA},
	0x9E: {"SHX", ModeABY, 5, classStore, execSHX},
	0x9F: {"SHA", ModeABY, 5, classStore, execSHA},

	0xA0: {"LDY", ModeIMM, 2, classLoad, execLDY},
	0xA1: {"LDA", ModeIZX, 6, classLoad, execLDA},
	0xA2: {"LDX", ModeIMM, 2, classLoad, execLDX},
	0xA3: {"LAX", ModeIZX, 6, classLoad, execLAX},
	0xA4: {"LDY", ModeZP0, 3, classLoad, execLDY},
	0xA5: {"LDA", ModeZP0, 3, classLoad, execLDA},
	0xA6: {"LDX", ModeZP0, 3, classLoad, execLDX},
	0xA7: {"LAX", ModeZP0, 3, classLoad, execLAX},
	0xA8: {"TAY", ModeIMP, 2, classOther, execTAY},
	0xA9: {"LDA", ModeIMM, 2, classLoad, execLDA},
	0xAA: {"TAX", ModeIMP, 2, classOther, execTAX},
	0xAB: {"LXA", ModeIMM, 2, classLoad, execLXA},
	0xAC: {"LDY", ModeABS, 4, classLoad, execLDY},
	0xAD: {"LDA", ModeABS, 4, classLoad, execLDA},
	0xAE: {"LDX", ModeABS, 4, classLoad, execLDX},
	0xAF: {"LAX", ModeABS, 4, classLoad, execLAX},

	0xB0: {"BCS", ModeREL, 2, classOther, execBCS},
	0xB1: {"LDA", ModeIZY, 5, classLoad, execLDA},
	0xB2: {"JAM", ModeIMP, 1, classOther, execJAM},
	0xB3: {"LAX", ModeIZY, 5, classLoad, execLAX},
	0xB4: {"LDY", ModeZPX, 4, classLoad, execLDY},
	0xB5: {"LDA", ModeZPX, 4, classLoad, execLDA},
	0xB6: {"LDX", ModeZPY, 4, classLoad, execLDX},
	0xB7: {"LAX", ModeZPY, 4, classLoad, execLAX},
	0xB8: {"CLV", ModeIMP, 2, classOther, execCLV},
	0xB9: {"LDA", ModeABY, 4, classLoad, execLDA},
	0xBA: {"TSX", ModeIMP, 2, classOther, execTSX},
	0xBB: {"LAS", ModeABY, 4, classLoad, execLAS},
	0xBC: {"LDY", ModeABX, 4, classLoad, execLDY},
	0xBD: {"LDA", ModeABX, 4, classLoad, execLDA},
	0xBE: {"LDX", ModeABY, 4, classLoad, execLDX},
	0xBF: {"LAX", ModeABY, 4, classLoad, execLAX},

	0xC0: {"CPY", ModeIMM, 2, classLoad, execCPY},
	0xC1: {"CMP", ModeIZX, 6, classLoad, execCMP},
	0xC2: {"NOP", ModeIMM, 2, classLoad, execNOP},
	0xC3: {"DCP", ModeIZX, 8, classRMW, execDCP},
	0xC4: {"CPY", ModeZP0, 3, classLoad, execCPY},
	0xC5: {"CMP", ModeZP0, 3, classLoad, execCMP},
	0xC6: {"DEC", ModeZP0, 5, classRMW, execDEC},
	0xC7: {"DCP", ModeZP0, 5, classRMW, execDCP},
	0xC8: {"INY", ModeIMP, 2, classOther, execINY},
	0xC9: {"CMP", ModeIMM, 2, classLoad, execCMP},
	0xCA: {"DEX", ModeIMP, 2, classOther, execDEX},
	0xCB: {"SBX", ModeIMM, 2, classLoad, execSBX},
	0xCC: {"CPY", ModeABS, 4, classLoad, execCPY},
	0xCD: {"CMP", ModeABS, 4, classLoad, execCMP},
	0xCE: {"DEC", ModeABS, 6, classRMW, execDEC},
	0xCF: {"DCP", ModeABS, 6, classRMW, execDCP},

	0xD0: {"BNE", ModeREL, 2, classOther, execBNE},
	0xD1: {"CMP", ModeIZY, 5, classLoad, execCMP},
	0xD2: {"JAM", ModeIMP, 1, classOther, execJAM},
	0xD3: {"DCP", ModeIZY, 8, classRMW, execDCP},
	0xD4: {"NOP", ModeZPX, 4, classLoad, execNOP},
	0xD5: {"CMP", ModeZPX, 4, classLoad, execCMP},
	0xD6: {"DEC", ModeZPX, 6, classRMW, execDEC},
	0xD7: {"DCP", ModeZPX, 6, classRMW, execDCP},
	0xD8: {"CLD", ModeIMP, 2, classOther, execCLD},
	0xD9: {"CMP", ModeABY, 4, classLoad, execCMP},
	0xDA: {"NOP", ModeIMP, 2, classOther, execNOP},
	0xDB: {"DCP", ModeABY, 7, classRMW, execDCP},
	0xDC: {"NOP", ModeABX, 4, classLoad, execNOP},
	0xDD: {"CMP", ModeABX, 4, classLoad, execCMP},
	0xDE: {"DEC", ModeABX, 7, classRMW, execDEC},
	0xDF: {"DCP", ModeABX, 7, classRMW, execDCP},

	0xE0: {"CPX", ModeIMM, 2, classLoad, execCPX},
	0xE1: {"SBC", ModeIZX, 6, classLoad, execSBC},
	0xE2: {"NOP", ModeIMM, 2, classLoad, execNOP},
	0xE3: {"ISC", ModeIZX, 8, classRMW, execISC},
	0xE4: {"CPX", ModeZP0, 3, classLoad, execCPX},
	0xE5: {"SBC", ModeZP0, 3, classLoad, execSBC},
	0xE6: {"INC", ModeZP0, 5, classRMW, execINC},
	0xE7: {"ISC", ModeZP0, 5, classRMW, execISC},
	0xE8: {"INX", ModeIMP, 2, classOther, execINX},
	0xE9: {"SBC", ModeIMM, 2, classLoad, execSBC},
	0xEA: {"NOP", ModeIMP, 2, classOther, execNOP},
	0xEB: {"SBC", ModeIMM, 2, classLoad, execSBC},
	0xEC: {"CPX", ModeABS, 4, classLoad, execCPX},
	0xED: {"SBC", ModeABS, 4, classLoad, execSBC},
	0xEE: {"INC", ModeABS, 6, classRMW, execINC},
	0xEF: {"ISC", ModeABS, 6, classRMW, execISC},

	0xF0: {"BEQ", ModeREL, 2, classOther, execBEQ},
	0xF1: {"SBC", ModeIZY, 5, classLoad, execSBC},
	0xF2: {"JAM", ModeIMP, 1, classOther, execJAM},
	0xF3: {"ISC", ModeIZY, 8, classRMW, execISC},
	0xF4: {"NOP", ModeZPX, 4, classLoad, execNOP},
	0xF5: {"SBC", ModeZPX, 4, classLoad, execSBC},
	0xF6: {"INC", ModeZPX, 6, classRMW, execINC},
	0xF7: {"ISC", ModeZPX, 6, classRMW, execISC},
	0xF8: {"SED", ModeIMP, 2, classOther, execSED},
	0xF9: {"SBC", ModeABY, 4, classLoad, execSBC},
	0xFA: {"NOP", ModeIMP, 2, classOther, execNOP},
	0xFB: {"ISC", ModeABY, 7, classRMW, execISC},
	0xFC: {"NOP", ModeABX, 4, classLoad, execNOP},
	0xFD: {"SBC", ModeABX, 4, classLoad, execSBC},
	0xFE: {"INC", ModeABX, 7, classRMW, execINC},
	0xFF: {"ISC", ModeABX, 7, classRMW, execISC},
}

// illegalOnNMOS lists the opcodes that are undocumented on NMOS and, per
// spec.md's noted 65C02 delta, become documented no-ops (or WAI/STP) on
// CMOS instead of the illegal-opcode behavior above.
var illegalOnNMOS = map[uint8]bool{
	0x02: true, 0x03: true, 0x04: true, 0x07: true, 0x0B: true, 0x0C: true,
	0x0F: true, 0x12: true, 0x13: true, 0x14: true, 0x17: true, 0x1A: true,
	0x1B: true, 0x1C: true, 0x1F: true, 0x22: true, 0x23: true, 0x27: true,
	0x2B: true, 0x2F: true, 0x32: true, 0x33: true, 0x34: true, 0x37: true,
	0x3A: true, 0x3B: true, 0x3C: true, 0x3F: true, 0x42: true, 0x43: true,
	0x44: true, 0x47: true, 0x4B: true, 0x4F: true, 0x52: true, 0x53: true,
	0x54: true, 0x57: true, 0x5A: true, 0x5B: true, 0x5C: true, 0x5F: true,
	0x62: true, 0x63: true, 0x64: true, 0x67: true, 0x6B: true, 0x6F: true,
	0x72: true, 0x73: true, 0x74: true, 0x77: true, 0x7A: true, 0x7B: true,
	0x7C: true, 0x7F: true, 0x80: true, 0x82: true, 0x83: true, 0x87: true,
	0x89: true, 0x8B: true, 0x8F: true, 0x92: true, 0x93: true, 0x97: true,
	0x9B: true, 0x9C: true, 0x9E: true, 0x9F: true, 0xA3: true, 0xA7: true,
	0xAB: true, 0xAF: true, 0xB2: true, 0xB3: true, 0xB7: true, 0xBB: true,
	0xBF: true, 0xC2: true, 0xC3: true, 0xC7: true, 0xCB: true, 0xCF: true,
	0xD2: true, 0xD3: true, 0xD4: true, 0xD7: true, 0xDA: true, 0xDB: true,
	0xDC: true, 0xDF: true, 0xE2: true, 0xE3: true, 0xE7: true, 0xEB: true,
	0xEF: true, 0xF2: true, 0xF3: true, 0xF4: true, 0xF7: true, 0xFA: true,
	0xFB: true, 0xFC: true, 0xFF: true,
}

// legalOrIllegalEntry builds the decode.Entry for one opcode under the
// given variant. On CMOS, undocumented slots resolve to a same-length
// NOP (preserving PC advancement and cycle count) except the two slots
// the 65C02 repurposed as WAI/STP, and the four RMW abs,X shift
// instructions drop one cycle (DESIGN.md Open Question decision 1).
func legalOrIllegalEntry(op uint8, cmos bool) Entry {
	r := nmosTable[op]

	if cmos && illegalOnNMOS[op] {
		switch op {
		case 0xCB:
			r = row{"WAI", ModeIMP, 3, classOther, execJAM}
		case 0xDB:
			r = row{"STP", ModeIMP, 3, classOther, execJAM}
		default:
			r = row{"NOP", r.mode, r.cycles, r.class, execNOP}
		}
	}

	if cmos {
		switch op {
		case 0x1E, 0x3E, 0x5E, 0x7E: // ASL/ROL/LSR/ROR abs,X
			r.cycles--
		}
	}

	return Entry{
		Mnemonic: r.mnem,
		Mode:     r.mode,
		Cycles:   r.cycles,
		class:    r.class,
		exec:     r.fn,
	}
}
