package ber_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestBer(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "ber Suite")
}
