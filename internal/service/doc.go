// Package service wires the pipeline stages together: one generation cycle
// per call, synchronous end to end, with the external generation boundary as
// the only blocking step.
package service
