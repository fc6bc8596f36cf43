package divtest_test

import (
	"testing"

	"github.com/eacrawford02/sdiv"
	"github.com/eacrawford02/sdiv/divtest"
)

func newDivider(t *testing.T, m, n int, signed bool) *sdiv.Divider {
	t.Helper()
	d, err := sdiv.New(sdiv.Config{NumeratorWidth: m, DenominatorWidth: n, Signed: signed})
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestCompare(t *testing.T) {
	for _, signed := range []bool{false, true} {
		divtest.Compare(t, newDivider(t, 32, 32, signed), 2000)
		divtest.Compare(t, newDivider(t, 64, 64, signed), 2000)
		divtest.Compare(t, newDivider(t, 24, 11, signed), 2000)
	}
}

func TestCompareExhaustive(t *testing.T) {
	for _, signed := range []bool{false, true} {
		divtest.CompareExhaustive(t, newDivider(t, 4, 4, signed))
		divtest.CompareExhaustive(t, newDivider(t, 8, 8, signed))
		divtest.CompareExhaustive(t, newDivider(t, 10, 3, signed))
	}
}
