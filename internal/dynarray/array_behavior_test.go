package dynarray_test

import (
	"bytes"
	"log"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/dynarray/internal/dynarray"
)

func filled(capacity, grow int, values ...int) *dynarray.DynamicArray[int] {
	a, err := dynarray.New[int](capacity, grow)
	Expect(err).NotTo(HaveOccurred())
	for _, v := range values {
		a.Add(v)
	}
	return a
}

var _ = Describe("DynamicArray", func() {
	Describe("construction", func() {
		DescribeTable("valid parameters",
			func(capacity, grow int) {
				a, err := dynarray.New[string](capacity, grow)
				Expect(err).NotTo(HaveOccurred())
				Expect(a.Capacity()).To(Equal(capacity))
				Expect(a.IsEmpty()).To(BeTrue())
				Expect(a.UpperBound()).To(Equal(-1))
			},
			Entry("empty", 0, 1),
			Entry("demo", 5, 3),
			Entry("large step", 8, 100),
		)

		DescribeTable("invalid parameters fall back to an empty array",
			func(capacity, grow int, want error) {
				a, err := dynarray.New[int](capacity, grow)
				Expect(err).To(MatchError(want))
				Expect(a.Capacity()).To(BeZero())
				Expect(a.GrowStep()).To(Equal(1))

				a.Add(1)
				Expect(a.Capacity()).To(Equal(1))
			},
			Entry("negative capacity", -1, 1, dynarray.ErrInvalidCapacity),
			Entry("zero grow step", 3, 0, dynarray.ErrInvalidGrowStep),
		)
	})

	Describe("growth", func() {
		It("grows by the configured step only when full", func() {
			a := filled(5, 3)
			caps := []int{}
			for i := 0; i < 9; i++ {
				a.Add(i)
				caps = append(caps, a.Capacity())
			}
			Expect(caps).To(Equal([]int{5, 5, 5, 5, 5, 8, 8, 8, 11}))
			Expect(a.UpperBound()).To(Equal(8))
		})
	})

	Describe("the demonstration sequence", func() {
		var (
			a   *dynarray.DynamicArray[int]
			out *bytes.Buffer
		)

		BeforeEach(func() {
			out = &bytes.Buffer{}
			a = filled(5, 3, 10, 20, 30)
		})

		It("prints each stage", func() {
			a.Print(out)
			Expect(a.Set(1, 50)).To(Succeed())
			a.Print(out)
			Expect(a.InsertAt(1, 40)).To(Succeed())
			Expect(a.Capacity()).To(Equal(5))
			a.Print(out)
			Expect(a.RemoveAt(2)).To(Succeed())
			a.Print(out)

			Expect(out.String()).To(Equal(
				"Array elements: 10 20 30\n" +
					"Array elements: 10 50 30\n" +
					"Array elements: 10 40 50 30\n" +
					"Array elements: 10 40 30\n"))
		})
	})

	Describe("misuse", func() {
		var (
			a    *dynarray.DynamicArray[int]
			diag *bytes.Buffer
		)

		BeforeEach(func() {
			diag = &bytes.Buffer{}
			a, _ = dynarray.New[int](4, 2, dynarray.WithLogger(log.New(diag, "", 0)))
			a.Add(1)
			a.Add(2)
		})

		AfterEach(func() {
			Expect(a.Values()).To(Equal([]int{1, 2}))
			Expect(a.Capacity()).To(Equal(4))
			Expect(diag.String()).To(HavePrefix("Error: "))
		})

		It("returns the zero value from Get", func() {
			v, err := a.Get(2)
			Expect(v).To(BeZero())
			Expect(err).To(MatchError(dynarray.ErrIndexOutOfRange))
		})

		It("ignores Set outside the range", func() {
			Expect(a.Set(-1, 9)).To(MatchError(dynarray.ErrIndexOutOfRange))
		})

		It("ignores RemoveAt outside the range", func() {
			Expect(a.RemoveAt(2)).To(HaveOccurred())
		})

		It("ignores InsertAt past the end", func() {
			Expect(a.InsertAt(3, 9)).To(HaveOccurred())
		})

		It("returns no pointer from At", func() {
			p, err := a.At(7)
			Expect(p).To(BeNil())
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("copies", func() {
		It("are independent in both directions", func() {
			src := filled(4, 2, 1, 2, 3)
			dst := dynarray.Default[int]()
			dst.CopyFrom(src)

			Expect(dst.Set(0, 9)).To(Succeed())
			src.Add(4)

			Expect(src.Values()).To(Equal([]int{1, 2, 3, 4}))
			Expect(dst.Values()).To(Equal([]int{9, 2, 3}))
			Expect(dst.Capacity()).To(Equal(4))
			Expect(dst.GrowStep()).To(Equal(2))
		})
	})

	Describe("capacity management", func() {
		It("shrinks to fit after removals", func() {
			a := filled(8, 4, 1, 2, 3, 4, 5)
			Expect(a.RemoveAt(0)).To(Succeed())
			Expect(a.RemoveAt(3)).To(Succeed())
			a.ShrinkToFit()
			Expect(a.Capacity()).To(Equal(3))
			Expect(a.Values()).To(Equal([]int{2, 3, 4}))
		})

		It("clears regardless of prior state", func() {
			a := filled(2, 7, 1, 2, 3)
			a.Clear()
			Expect(a.Capacity()).To(BeZero())
			Expect(a.IsEmpty()).To(BeTrue())
			Expect(a.String()).To(Equal("Array is empty."))
		})
	})
})
