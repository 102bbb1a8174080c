// ecbench measures scalar-multiplication throughput on secp256k1.
// Every operation is independent, so the workers run with no
// coordination beyond the final tally.
package main

import (
	"crypto/rand"
	"flag"
	"math/big"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/smallyu/go-weierstrass/pkg/secp256k1"
)

func main() {
	var (
		workers   = flag.Int("workers", 4, "number of concurrent workers")
		ops       = flag.Int("ops", 256, "scalar multiplications per worker")
		basePoint = flag.Bool("base", true, "multiply the generator (false: a derived point)")
	)
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	point := secp256k1.Generator()
	if !*basePoint {
		p, err := secp256k1.ScalarBaseMul(big.NewInt(0xec))
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to derive the bench point")
		}
		point = p
	}

	logger.Info().
		Int("workers", *workers).
		Int("ops_per_worker", *ops).
		Bool("base_point", *basePoint).
		Msg("starting scalar multiplication benchmark")

	var done atomic.Int64
	var wg sync.WaitGroup
	start := time.Now()

	for w := 0; w < *workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < *ops; i++ {
				k, err := rand.Int(rand.Reader, secp256k1.N())
				if err != nil {
					logger.Error().Err(err).Int("worker", w).Msg("failed to draw a scalar")
					return
				}
				if _, err := secp256k1.ScalarMul(point, k); err != nil {
					logger.Error().Err(err).Int("worker", w).Msg("scalar multiplication failed")
					return
				}
				done.Add(1)
			}
		}(w)
	}

	wg.Wait()
	elapsed := time.Since(start)

	total := done.Load()
	logger.Info().
		Int64("ops", total).
		Dur("elapsed", elapsed).
		Float64("ops_per_sec", float64(total)/elapsed.Seconds()).
		Msg("finished")
}
