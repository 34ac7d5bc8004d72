package fieldbench

import "time"

// Workload shape of the fixed benchmark run.
const BENCH_LANES = 32
const BENCH_LENGTH = 1 << 24
const BENCH_WIDTH = 4

// Bitrates are reported in decimal gigabytes.
const GIGABYTE = 1e9

// Appended to the element kind's name to label the chain benchmark.
const CHAIN_SUFFIX = " (No RAM)"

// Elapsed times below this are too short for the clock to resolve, and the
// bitrate derived from them is reported as undefined.
const MIN_ELAPSED = time.Microsecond
