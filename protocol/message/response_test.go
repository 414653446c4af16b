package message_test

import (
	"errors"

	. "github.com/wizlan/wizlight/protocol/message"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/wizlan/wizlight/common"
)

func configWithPWMRange(pwmRange string) string {
	return `{"method":"getUserConfig","env":"pro","result":{"fadeIn":0,"fadeOut":0,"fadeNight":false,"dftDim":100,"pwmRange":` +
		pwmRange + `,"whiteRange":[2200,6500],"extRange":[2200,6500],"po":true}}`
}

var _ = Describe("Response", func() {
	const userConfig = `{"method":"getUserConfig","env":"pro","result":{"fadeIn":450,"fadeOut":500,"fadeNight":true,"dftDim":80,"pwmRange":[5,95],"whiteRange":[6500,2200],"extRange":[2200,6500],"po":false}}`

	It("should decode a successful setPilot", func() {
		resp, err := Decode([]byte(`{"method":"setPilot","result":{"success":true},"env":"pro"}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Method).To(Equal(MethodSetPilot))
		Expect(resp.Env).To(Equal(`pro`))
		Expect(resp.Result).To(Equal(SetPilotResult{Success: true}))
		Expect(resp.Error).To(BeNil())
	})

	It("should decode a refused setPilot", func() {
		resp, err := Decode([]byte(`{"method":"setPilot","result":{"success":false},"env":"pro"}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Result).To(Equal(SetPilotResult{Success: false}))
	})

	It("should decode a user config preserving range order", func() {
		resp, err := Decode([]byte(userConfig))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Result.Method()).To(Equal(MethodGetUserConfig))
		Expect(resp.Result).To(Equal(UserConfigResult{UserConfig: UserConfig{
			FadeIn:         450,
			FadeOut:        500,
			FadeNight:      true,
			DefaultDimming: 80,
			PWMRange:       [2]uint32{5, 95},
			WhiteRange:     [2]uint32{6500, 2200},
			ExtRange:       [2]uint32{2200, 6500},
			PowerOutput:    false,
		}}))
	})

	It("should ignore fields it does not know about", func() {
		resp, err := Decode([]byte(`{"method":"setPilot","env":"pro","id":7,"result":{"success":true,"extra":1}}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Result).To(Equal(SetPilotResult{Success: true}))
	})

	It("should decode an error reply", func() {
		resp, err := Decode([]byte(`{"method":"setPilot","id":1,"error":{"code":-32600,"message":"Invalid Request"}}`))
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.Result).To(BeNil())
		Expect(resp.Error).To(Equal(&RemoteError{Code: -32600, Message: `Invalid Request`}))
		Expect(resp.Error.Error()).To(ContainSubstring(`Invalid Request`))
	})

	DescribeTable("decode failures",
		func(data string, sentinel error) {
			resp, err := Decode([]byte(data))
			Expect(resp).To(BeNil())
			Expect(errors.Is(err, common.ErrParse)).To(BeTrue())
			if sentinel != nil {
				Expect(errors.Is(err, sentinel)).To(BeTrue())
			}
		},
		Entry("truncated object", `{"method":"setPilot","result":{"succ`, nil),
		Entry("not an object", `[1,2,3]`, nil),
		Entry("empty datagram", ``, nil),
		Entry("invalid utf-8", "{\"method\":\"\xff\"}", ErrInvalidUTF8),
		Entry("unknown method", `{"method":"getPilot","env":"pro","result":{"state":true}}`, ErrUnknownMethod),
		Entry("missing method", `{"env":"pro","result":{"success":true}}`, ErrMissingField),
		Entry("missing env", `{"method":"setPilot","result":{"success":true}}`, ErrMissingField),
		Entry("missing result", `{"method":"setPilot","env":"pro"}`, ErrMissingField),
		Entry("null result", `{"method":"setPilot","env":"pro","result":null}`, ErrMissingField),
		Entry("missing success", `{"method":"setPilot","env":"pro","result":{}}`, ErrMissingField),
		Entry("wrong success type", `{"method":"setPilot","env":"pro","result":{"success":"yes"}}`, nil),
		Entry("missing config field", `{"method":"getUserConfig","env":"pro","result":{"fadeIn":0,"fadeOut":0,"fadeNight":false,"dftDim":100,"pwmRange":[0,100],"whiteRange":[0,100],"po":true}}`, ErrMissingField),
		Entry("config shaped like setPilot", `{"method":"getUserConfig","env":"pro","result":{"success":true}}`, ErrMissingField),
		Entry("short range", configWithPWMRange(`[5]`), ErrInvalidRange),
		Entry("long range", configWithPWMRange(`[5,95,7]`), ErrInvalidRange),
		Entry("empty range", configWithPWMRange(`[]`), ErrInvalidRange),
		Entry("range of strings", configWithPWMRange(`["5","95"]`), nil),
		Entry("error reply with unknown method", `{"method":"bogus","error":{"code":-1,"message":"x"}}`, ErrUnknownMethod),
	)

	It("should decode an error reply to any command it can send", func() {
		for _, method := range []Method{MethodSetPilot, MethodGetPilot, MethodGetUserConfig} {
			resp, err := Decode([]byte(`{"method":"` + method.String() + `","error":{"code":-32601,"message":"Method not found"}}`))
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.Method).To(Equal(method))
			Expect(resp.Error.Code).To(Equal(-32601))
		}
	})

	It("should round trip a getUserConfig exchange", func() {
		data, err := Encode(GetUserConfig{})
		Expect(err).NotTo(HaveOccurred())
		Expect(data).To(MatchJSON(`{"method":"getUserConfig","params":{}}`))

		resp, err := Decode([]byte(userConfig))
		Expect(err).NotTo(HaveOccurred())
		cfg := resp.Result.(UserConfigResult).UserConfig
		Expect(cfg.PWMRange).To(Equal([2]uint32{5, 95}))
		Expect(cfg.WhiteRange).To(Equal([2]uint32{6500, 2200}))
	})
})
