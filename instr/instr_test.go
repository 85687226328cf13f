package instr_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"

	"github.com/sarchlab/tiscc/instr"
)

var _ = Describe("Encode", func() {
	It("should encode MOV with destination in bits [14:12]", func() {
		w, err := instr.Encode("MOV", "5", "ACC")
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(instr.Word(0x1005)))
	})

	It("should encode MOV between registers", func() {
		w, err := instr.Encode("MOV", "UP", "DOWN")
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(instr.Word(0x7E00)))
	})

	It("should encode negative literals in 11 bits", func() {
		w, err := instr.Encode("ADD", "-1", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(instr.Word(0x87FF)))
	})

	DescribeTable("fixed high bits do not depend on operands",
		func(mnemonic string, mask, pattern instr.Word, operands [][2]string) {
			for _, ops := range operands {
				w, err := instr.Encode(mnemonic, ops[0], ops[1])
				Expect(err).NotTo(HaveOccurred())
				Expect(w & mask).To(Equal(pattern))
			}
		},
		Entry("MOV", "MOV", instr.Word(0x8000), instr.Word(0x0000),
			[][2]string{{"1", "NIL"}, {"-1024", "ACC"}, {"LEFT", "RIGHT"}}),
		Entry("ADD", "ADD", instr.Word(0xF000), instr.Word(0x8000),
			[][2]string{{"0", ""}, {"ACC", ""}, {"-1", ""}}),
		Entry("SUB", "SUB", instr.Word(0xF000), instr.Word(0x8000),
			[][2]string{{"0", ""}, {"ANY", ""}, {"1023", ""}}),
		Entry("JRO", "JRO", instr.Word(0xF000), instr.Word(0x8000),
			[][2]string{{"0", ""}, {"LAST", ""}, {"-3", ""}}),
		Entry("JMP", "JMP", instr.Word(0xFFFF), instr.Word(0xC000),
			[][2]string{{"loop", ""}, {"", ""}}),
		Entry("JEZ", "JEZ", instr.Word(0xFFFF), instr.Word(0xC400),
			[][2]string{{"loop", ""}}),
		Entry("JNZ", "JNZ", instr.Word(0xFFFF), instr.Word(0xC800),
			[][2]string{{"loop", ""}}),
		Entry("JGZ", "JGZ", instr.Word(0xFFFF), instr.Word(0xCC00),
			[][2]string{{"loop", ""}}),
		Entry("JLZ", "JLZ", instr.Word(0xFFFF), instr.Word(0xD000),
			[][2]string{{"loop", ""}}),
		Entry("NEG", "NEG", instr.Word(0xFFFF), instr.Word(0xE000),
			[][2]string{{"", ""}, {"ACC", "5"}}),
		Entry("SAV", "SAV", instr.Word(0xFFFF), instr.Word(0xE200),
			[][2]string{{"", ""}}),
		Entry("SWP", "SWP", instr.Word(0xFFFF), instr.Word(0xE400),
			[][2]string{{"", ""}}),
		Entry("NOP", "NOP", instr.Word(0xFFFF), instr.Word(0x0000),
			[][2]string{{"", ""}}),
	)

	It("should OR the sub-op constant into ADD, SUB and JRO", func() {
		add, _ := instr.Encode("ADD", "ACC", "")
		sub, _ := instr.Encode("SUB", "ACC", "")
		jro, _ := instr.Encode("JRO", "ACC", "")
		Expect(add).To(Equal(instr.Word(0x8900)))
		Expect(sub).To(Equal(instr.Word(0x8901)))
		Expect(jro).To(Equal(instr.Word(0x8902)))
	})

	It("should encode a missing mnemonic as NOP", func() {
		w, err := instr.Encode("", "", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(BeZero())
	})

	It("should recover from unknown opcodes with NOP", func() {
		w, err := instr.Encode("HCF", "1", "")
		Expect(w).To(BeZero())
		Expect(errors.Is(err, instr.ErrUnknownOpcode)).To(BeTrue())
		Expect(err.Error()).To(ContainSubstring("HCF"))
	})

	It("should match mnemonics case-sensitively", func() {
		_, err := instr.Encode("mov", "1", "ACC")
		Expect(errors.Is(err, instr.ErrUnknownOpcode)).To(BeTrue())
	})

	It("should report both operands of a MOV", func() {
		w, err := instr.Encode("MOV", "5000", "FOO")
		Expect(errors.Is(err, instr.ErrLiteralRange)).To(BeTrue())
		Expect(errors.Is(err, instr.ErrUnknownRegister)).To(BeTrue())
		Expect(w).To(Equal(instr.Word(5000 & 0x7FF)))
	})

	It("should recover a MOV to a missing destination as NIL", func() {
		w, err := instr.Encode("MOV", "1", "")
		Expect(errors.Is(err, instr.ErrUnknownRegister)).To(BeTrue())
		Expect(w).To(Equal(instr.Word(0x0001)))
	})
})

var _ = Describe("Word", func() {
	It("should classify jumps by the top three bits", func() {
		Expect(instr.IdleWord.IsJump()).To(BeTrue())
		Expect(instr.Word(0xD000).IsJump()).To(BeTrue())
		Expect(instr.Word(0xE000).IsJump()).To(BeFalse())
		Expect(instr.Word(0x8000).IsJump()).To(BeFalse())
		Expect(instr.Word(0x0000).IsJump()).To(BeFalse())
	})

	It("should set and read the target field", func() {
		w := instr.Word(0xC800).WithTarget(9)
		Expect(w).To(Equal(instr.Word(0xC800 | 9<<6)))
		Expect(w.Target()).To(Equal(9))

		w = w.WithTarget(2)
		Expect(w.Target()).To(Equal(2))
		Expect(w & 0xFC3F).To(Equal(instr.Word(0xC800)))
	})

	It("should print as four hex digits", func() {
		Expect(instr.Word(0x1005).String()).To(Equal("1005"))
	})
})

var _ = Describe("ISA", func() {
	It("should look up opcodes by mnemonic", func() {
		op, ok := instr.DefaultISA.Lookup("JGZ")
		Expect(ok).To(BeTrue())
		Expect(op.Class).To(Equal(instr.ClassJump))
		Expect(op.Base).To(Equal(instr.Word(0xCC00)))
	})

	It("should encode with a custom ISA", func() {
		isa := instr.NewISA("test")
		isa.Register(instr.Opcode{Mnemonic: "HLT", Class: instr.ClassNullary, Base: 0xEE00})

		w, err := isa.Encode("HLT", "", "")
		Expect(err).NotTo(HaveOccurred())
		Expect(w).To(Equal(instr.Word(0xEE00)))

		_, err = isa.Encode("MOV", "1", "ACC")
		Expect(errors.Is(err, instr.ErrUnknownOpcode)).To(BeTrue())
		Expect(isa.Name()).To(Equal("test"))
	})
})
