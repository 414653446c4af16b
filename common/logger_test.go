package common_test

import (
	. "github.com/wizlan/wizlight/common"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"github.com/stretchr/testify/mock"
	"github.com/wizlan/wizlight/mocks"
)

var _ = Describe("Logger", func() {
	var mockLogger *mocks.Logger

	BeforeEach(func() {
		mockLogger = new(mocks.Logger)
		SetLogger(mockLogger)
	})

	AfterEach(func() {
		SetLogger(nil)
	})

	It("should prefix messages", func() {
		mockLogger.On(`Debugf`, `[wizlight] hello %s`, mock.Anything).Return().Once()
		mockLogger.On(`Infof`, `[wizlight] hello %s`, mock.Anything).Return().Once()
		mockLogger.On(`Warnf`, `[wizlight] hello %s`, mock.Anything).Return().Once()
		mockLogger.On(`Errorf`, `[wizlight] hello %s`, mock.Anything).Return().Once()
		Log.Debugf(`hello %s`, `world`)
		Log.Infof(`hello %s`, `world`)
		Log.Warnf(`hello %s`, `world`)
		Log.Errorf(`hello %s`, `world`)
		mockLogger.AssertExpectations(GinkgoT())
	})

	It("should pass arguments through", func() {
		mockLogger.On(`Infof`, mock.Anything, []interface{}{`world`, 2}).Return().Once()
		Log.Infof(`hello %s %d`, `world`, 2)
		mockLogger.AssertExpectations(GinkgoT())
	})

	It("should drop messages once reset to the stub", func() {
		SetLogger(nil)
		Log.Debugf(`dropped`)
		mockLogger.AssertNotCalled(GinkgoT(), `Debugf`, mock.Anything, mock.Anything)
	})

	It("should panic from the stub on fatal messages", func() {
		SetLogger(nil)
		Expect(func() { Log.Fatalf(`boom %d`, 1) }).To(PanicWith(`[wizlight] boom 1`))
		Expect(func() { Log.Panicf(`boom`) }).To(Panic())
	})
})
