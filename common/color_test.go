package common_test

import (
	"math"

	. "github.com/wizlan/wizlight/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"
)

var _ = Describe("Color", func() {
	DescribeTable("NewColorRGB truncates scaled channels",
		func(r, g, b float64, want Color) {
			Expect(NewColorRGB(r, g, b)).To(Equal(want))
		},
		Entry("red", 1.0, 0.0, 0.0, Color{Red: 255}),
		Entry("grey", 0.5, 0.5, 0.5, Color{Red: 127, Green: 127, Blue: 127}),
		Entry("just below one", 0.999, 0.0, 0.0, Color{Red: 254}),
		Entry("negative saturates", -0.5, 0.0, 0.0, Color{}),
		Entry("above one saturates", 2.0, 1.5, 1.0, Color{Red: 255, Green: 255, Blue: 255}),
		Entry("NaN is zero", math.NaN(), 0.0, 0.0, Color{}),
	)

	DescribeTable("NewColorHSV",
		func(hue float64, want Color) {
			Expect(NewColorHSV(hue, 1, 1)).To(Equal(want))
		},
		Entry("red", 0.0, Color{Red: 255}),
		Entry("green", 120.0, Color{Green: 255}),
		Entry("blue", 240.0, Color{Blue: 255}),
		Entry("wraps past 360", 360.0, Color{Red: 255}),
		Entry("wraps negative hues", -120.0, Color{Blue: 255}),
	)

	It("should keep one channel at full value for saturated hues", func() {
		for hue := 0.0; hue < 360; hue += 10 {
			c := NewColorHSV(hue, 1, 1)
			Expect([]uint8{c.Red, c.Green, c.Blue}).To(ContainElement(uint8(255)))
		}
	})
})
