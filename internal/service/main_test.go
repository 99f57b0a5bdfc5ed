package service_test

import (
	"testing"

	"go.uber.org/goleak"

	"github.com/limbo/myfit/internal/service"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	goleak.VerifyTestMain(m)
}
