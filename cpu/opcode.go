package cpu

import (
	"fmt"
	"strings"
)

// Op is a decoded operation.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_CLS        = Op(0)  // CLS
	OP_RET        = Op(1)  // RET
	OP_SKP        = Op(2)  // SKP Vx
	OP_SKNP       = Op(3)  // SKNP Vx
	OP_LD_VX_DT   = Op(4)  // LD Vx, DT
	OP_LD_VX_K    = Op(5)  // LD Vx, K
	OP_LD_DT_VX   = Op(6)  // LD DT, Vx
	OP_LD_ST_VX   = Op(7)  // LD ST, Vx
	OP_ADD_I_VX   = Op(8)  // ADD I, Vx
	OP_LD_F_VX    = Op(9)  // LD F, Vx
	OP_LD_B_VX    = Op(10) // LD B, Vx
	OP_LD_MEM_VX  = Op(11) // LD [I], Vx
	OP_LD_VX_MEM  = Op(12) // LD Vx, [I]
	OP_SE_VX_VY   = Op(13) // SE Vx, Vy
	OP_LD_VX_VY   = Op(14) // LD Vx, Vy
	OP_OR_VX_VY   = Op(15) // OR Vx, Vy
	OP_AND_VX_VY  = Op(16) // AND Vx, Vy
	OP_XOR_VX_VY  = Op(17) // XOR Vx, Vy
	OP_ADD_VX_VY  = Op(18) // ADD Vx, Vy
	OP_SUB_VX_VY  = Op(19) // SUB Vx, Vy
	OP_SHR_VX_VY  = Op(20) // SHR Vx, Vy
	OP_SUBN_VX_VY = Op(21) // SUBN Vx, Vy
	OP_SHL_VX_VY  = Op(22) // SHL Vx, Vy
	OP_SNE_VX_VY  = Op(23) // SNE Vx, Vy
	OP_SYS        = Op(24) // SYS addr
	OP_JP         = Op(25) // JP addr
	OP_CALL       = Op(26) // CALL addr
	OP_SE_VX_KK   = Op(27) // SE Vx, byte
	OP_SNE_VX_KK  = Op(28) // SNE Vx, byte
	OP_LD_VX_KK   = Op(29) // LD Vx, byte
	OP_ADD_VX_KK  = Op(30) // ADD Vx, byte
	OP_LD_I       = Op(31) // LD I, addr
	OP_JP_V0      = Op(32) // JP V0, addr
	OP_RND        = Op(33) // RND Vx, byte
	OP_DRW        = Op(34) // DRW Vx, Vy, nibble
)

// OP_COUNT is the number of operations in the instruction set.
const OP_COUNT = 35

// Arity groups operations by the shape of their operand.
type Arity int

//go:generate go tool stringer -linecomment -type=Arity
const (
	ARITY_NONE  = Arity(0) // none
	ARITY_ONE   = Arity(1) // nybble
	ARITY_TWO   = Arity(2) // pair
	ARITY_THREE = Arity(3) // triple
)

// Arity returns the operand shape of the operation.
func (op Op) Arity() Arity {
	switch {
	case op <= OP_RET:
		return ARITY_NONE
	case op <= OP_LD_VX_MEM:
		return ARITY_ONE
	case op <= OP_SNE_VX_VY:
		return ARITY_TWO
	default:
		return ARITY_THREE
	}
}

// Pattern returns the canonical bit pattern of the operation, with
// operand nybbles as 'x', 'y', 'k', 'n'.
func (op Op) Pattern() (pattern string) {
	for _, entry := range decodeTable {
		if entry.op == op {
			pattern = entry.pattern
			break
		}
	}
	return
}

// decodeEntry is a mask-and-compare rule.
type decodeEntry struct {
	mask    uint16
	match   uint16
	op      Op
	pattern string
}

// decodeTable is checked in order. The two literal codes come first, then
// masks of decreasing specificity.
var decodeTable = [OP_COUNT]decodeEntry{
	{0xffff, 0x00e0, OP_CLS, "00E0"},
	{0xffff, 0x00ee, OP_RET, "00EE"},

	{0xf0ff, 0xe09e, OP_SKP, "Ex9E"},
	{0xf0ff, 0xe0a1, OP_SKNP, "ExA1"},
	{0xf0ff, 0xf007, OP_LD_VX_DT, "Fx07"},
	{0xf0ff, 0xf00a, OP_LD_VX_K, "Fx0A"},
	{0xf0ff, 0xf015, OP_LD_DT_VX, "Fx15"},
	{0xf0ff, 0xf018, OP_LD_ST_VX, "Fx18"},
	{0xf0ff, 0xf01e, OP_ADD_I_VX, "Fx1E"},
	{0xf0ff, 0xf029, OP_LD_F_VX, "Fx29"},
	{0xf0ff, 0xf033, OP_LD_B_VX, "Fx33"},
	{0xf0ff, 0xf055, OP_LD_MEM_VX, "Fx55"},
	{0xf0ff, 0xf065, OP_LD_VX_MEM, "Fx65"},

	{0xf00f, 0x5000, OP_SE_VX_VY, "5xy0"},
	{0xf00f, 0x8000, OP_LD_VX_VY, "8xy0"},
	{0xf00f, 0x8001, OP_OR_VX_VY, "8xy1"},
	{0xf00f, 0x8002, OP_AND_VX_VY, "8xy2"},
	{0xf00f, 0x8003, OP_XOR_VX_VY, "8xy3"},
	{0xf00f, 0x8004, OP_ADD_VX_VY, "8xy4"},
	{0xf00f, 0x8005, OP_SUB_VX_VY, "8xy5"},
	{0xf00f, 0x8006, OP_SHR_VX_VY, "8xy6"},
	{0xf00f, 0x8007, OP_SUBN_VX_VY, "8xy7"},
	{0xf00f, 0x800e, OP_SHL_VX_VY, "8xyE"},
	{0xf00f, 0x9000, OP_SNE_VX_VY, "9xy0"},

	{0xf000, 0x0000, OP_SYS, "0nnn"},
	{0xf000, 0x1000, OP_JP, "1nnn"},
	{0xf000, 0x2000, OP_CALL, "2nnn"},
	{0xf000, 0x3000, OP_SE_VX_KK, "3xkk"},
	{0xf000, 0x4000, OP_SNE_VX_KK, "4xkk"},
	{0xf000, 0x6000, OP_LD_VX_KK, "6xkk"},
	{0xf000, 0x7000, OP_ADD_VX_KK, "7xkk"},
	{0xf000, 0xa000, OP_LD_I, "Annn"},
	{0xf000, 0xb000, OP_JP_V0, "Bnnn"},
	{0xf000, 0xc000, OP_RND, "Cxkk"},
	{0xf000, 0xd000, OP_DRW, "Dxyn"},
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op   Op
	Word uint16
}

// Decode classifies an instruction word.
//
// Words that match no operation return an ErrDecode.
func Decode(word uint16) (in Instruction, err error) {
	for _, entry := range decodeTable {
		if word&entry.mask != entry.match {
			continue
		}

		in = Instruction{Op: entry.op, Word: word}
		return
	}

	err = ErrDecode(word)
	return
}

// Arity returns the operand shape of the instruction.
func (in Instruction) Arity() Arity {
	return in.Op.Arity()
}

// X returns the first register index.
func (in Instruction) X() Nybble {
	return NybbleOf(in.Word)
}

// Y returns the second register index.
func (in Instruction) Y() Nybble {
	return PairOf(in.Word).Y()
}

// N returns the lowest nybble.
func (in Instruction) N() byte {
	return TripleOf(in.Word).N()
}

// KK returns the low byte.
func (in Instruction) KK() byte {
	return TripleOf(in.Word).Byte()
}

// NNN returns the 12-bit address.
func (in Instruction) NNN() uint16 {
	return TripleOf(in.Word).Addr()
}

// Operands returns the assembly operand text, with the operand names
// of the mnemonic replaced by their values.
func (in Instruction) Operands() string {
	mnemonic := in.Op.String()
	_, args, ok := strings.Cut(mnemonic, " ")
	if !ok {
		return ""
	}

	return strings.NewReplacer(
		"Vx", "V"+in.X().String(),
		"Vy", "V"+in.Y().String(),
		"byte", fmt.Sprintf("0x%02X", in.KK()),
		"addr", fmt.Sprintf("0x%03X", in.NNN()),
		"nibble", fmt.Sprintf("%d", in.N()),
	).Replace(args)
}

// String returns the decode trace of the instruction.
func (in Instruction) String() string {
	mnemonic, _, _ := strings.Cut(in.Op.String(), " ")
	return strings.TrimSpace(fmt.Sprintf("%04X %v %v %v", in.Word, in.Op.Pattern(), mnemonic, in.Operands()))
}
