// Package accept supplies the pluggable move acceptors the local-search
// phase consults after evaluating each candidate (spec §4.K). Every
// acceptor follows the same lifecycle: PhaseStarted once, IsAccepted per
// candidate, StepEnded once per committed step, PhaseEnded once.
package accept
