package encoding_test

import (
	"bytes"
	"io"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sarchlab/tiscc/core"
	"github.com/sarchlab/tiscc/encoding"
	"github.com/sarchlab/tiscc/instr"
)

func program(index int, words map[int]uint16, labels ...core.Binding) core.Program {
	n := core.NewNode(index)
	for slot, w := range words {
		n.Slots[slot] = core.Resolved{Value: instr.Word(w)}
	}
	n.Labels = labels
	p, _ := core.Resolve(n)
	return p
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("no space left on device")
}

var _ = Describe("HexEmitter", func() {
	It("should write the header and little-endian words", func() {
		var buf bytes.Buffer
		e := encoding.NewHexEmitter(&buf)

		Expect(e.EmitNode(program(0, map[int]uint16{0: 0x1005}))).To(Succeed())
		Expect(e.Flush()).To(Succeed())

		idle := "00c0 00c0 00c0 00c0\n"
		Expect(buf.String()).To(Equal(
			"\n00\n" +
				"0510 00c0 00c0 00c0\n" +
				idle + idle + idle))
	})

	It("should return a write error from Flush", func() {
		e := encoding.NewHexEmitter(failingWriter{})

		Expect(e.EmitNode(program(1, nil))).To(Succeed())
		Expect(e.Flush()).To(MatchError(ContainSubstring("no space left")))
	})

	It("should write nodes in order with hex headers", func() {
		var buf bytes.Buffer
		e := encoding.NewHexEmitter(&buf)

		Expect(e.EmitNode(program(10, nil))).To(Succeed())
		Expect(e.EmitNode(program(255, map[int]uint16{15: 0xE400}))).To(Succeed())
		Expect(e.Flush()).To(Succeed())

		lines := strings.Split(buf.String(), "\n")
		Expect(lines[1]).To(Equal("0a"))
		Expect(lines[7]).To(Equal("ff"))
		Expect(lines[11]).To(Equal("00c0 00c0 00c0 00e4"))
	})
})

var _ = Describe("ProgEmitter", func() {
	It("should write the programming command stream", func() {
		var buf bytes.Buffer
		e := encoding.NewProgEmitter(&buf)

		Expect(e.EmitNode(program(3, map[int]uint16{0: 0x8001}))).To(Succeed())
		Expect(e.Flush()).To(Succeed())

		out := buf.Bytes()
		Expect(out).To(HaveLen(2 + 2*core.NumSlots))
		Expect(out[:4]).To(Equal([]byte{encoding.CmdProgramNode, 3, 0x01, 0x80}))
		Expect(out[4:6]).To(Equal([]byte{0x00, 0xC0}))
	})
})

var _ = Describe("YAMLEmitter", func() {
	It("should write one document per node", func() {
		var buf bytes.Buffer
		e := encoding.NewYAMLEmitter(&buf)

		Expect(e.EmitNode(program(1, map[int]uint16{0: 0x1005, 1: 0xC000},
			core.Binding{Name: "top", Slot: 0, Line: 2}))).To(Succeed())
		Expect(e.EmitNode(program(2, nil))).To(Succeed())
		Expect(e.Flush()).To(Succeed())

		dec := yaml.NewDecoder(&buf)

		var first, second encoding.NodeDocument
		Expect(dec.Decode(&first)).To(Succeed())
		Expect(dec.Decode(&second)).To(Succeed())
		Expect(dec.Decode(&encoding.NodeDocument{})).To(MatchError(io.EOF))

		Expect(first.Node).To(Equal(1))
		Expect(first.Words).To(HaveLen(core.NumSlots))
		Expect(first.Words[0]).To(Equal("1005"))
		Expect(first.Words[1]).To(Equal("c000"))
		Expect(first.Labels).To(Equal(map[string]int{"top": 0}))

		Expect(second.Node).To(Equal(2))
		Expect(second.Labels).To(BeEmpty())
	})

	It("should map duplicate labels to the lowest slot", func() {
		doc := encoding.NewNodeDocument(program(0, nil,
			core.Binding{Name: "x", Slot: 6},
			core.Binding{Name: "x", Slot: 2},
		))
		Expect(doc.Labels).To(Equal(map[string]int{"x": 2}))
	})
})

var _ = Describe("NewEmitter", func() {
	DescribeTable("formats",
		func(name string, ok bool) {
			f, err := encoding.ParseFormat(name)
			if !ok {
				Expect(err).To(HaveOccurred())
				return
			}
			Expect(err).NotTo(HaveOccurred())

			e, err := encoding.NewEmitter(f, io.Discard)
			Expect(err).NotTo(HaveOccurred())
			Expect(e).NotTo(BeNil())
		},
		Entry("hex", "hex", true),
		Entry("yaml", "yaml", true),
		Entry("prog", "prog", true),
		Entry("unknown", "ihex", false),
	)
})
