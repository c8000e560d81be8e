package ports

import "context"

// BridgeResult is the captured outcome of one bridge process that started.
type BridgeResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

func (r BridgeResult) Success() bool {
	return r.ExitCode == 0
}

// BridgeRunner starts the bridge program and waits for it to exit. A non-nil
// error means the process could not be launched; exit failures are reported
// through BridgeResult.ExitCode.
type BridgeRunner interface {
	Run(ctx context.Context, program string, args []string) (BridgeResult, error)
}
