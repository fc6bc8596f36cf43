// Throwaway harness: drives a single division through the pipeline and
// dumps the stage registers on every tick.
package main

import (
	"flag"
	"log"

	"github.com/eacrawford02/sdiv"
)

var (
	mWidth   = flag.Int("m", 32, "numerator width in bits")
	nWidth   = flag.Int("n", 32, "denominator width in bits")
	num      = flag.Int64("x", -18, "numerator")
	den      = flag.Int64("y", 5, "denominator")
	unsigned = flag.Bool("u", false, "treat operands as unsigned")
)

func main() {
	flag.Parse()
	log.SetFlags(0)

	d, err := sdiv.New(sdiv.Config{
		NumeratorWidth:   *mWidth,
		DenominatorWidth: *nWidth,
		Signed:           !*unsigned,
	})
	if err != nil {
		if d == nil {
			log.Fatal(err)
		}
		log.Print("warning: ", err)
	}

	log.Printf("dividing %d by %d (%d/%d bits, latency %d ticks)", *num, *den, *mWidth, *nWidth, d.Latency())

	valid, q, r := d.Tick(true, uint64(*num), uint64(*den))
	for tick := 0; ; tick++ {
		for i := 0; i < d.Latency(); i++ {
			s := d.Stage(i)
			if !s.Valid {
				continue
			}
			log.Printf("t=%3d slot %2d: rem=%#x num=%#x quot=%#x div=%#x neg=%v",
				tick, i, s.Rem, s.Num, s.Quot, s.Div, s.Neg)
		}
		if valid {
			log.Printf("result after %d ticks: q=%#x (%d) r=%#x (%d)",
				tick, q, sdiv.SignExtend(q, *mWidth), r, int64(r))
			return
		}
		valid, q, r = d.Tick(false, 0, 0)
	}
}
