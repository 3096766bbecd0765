package animate_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestAnimate(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Animate Suite")
}
