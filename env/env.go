package env

import (
	"os"
)

// gorgonia links go4.org/unsafe/assume-no-moving-gc, which refuses to start on Go releases it
// has not vetted unless this variable names the running toolchain.
const assumeNoMovingGC = "ASSUME_NO_MOVING_GC_UNSAFE_RISK_IT_WITH"

func init() {
	if _, ok := os.LookupEnv(assumeNoMovingGC); !ok {
		os.Setenv(assumeNoMovingGC, "go1.24")
	}
}
