package application

import (
	"context"
	"strings"
	"testing"

	"github.com/bnema/badb/internal/ports"
	"github.com/bnema/badb/internal/ports/mocks"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/mock"
)

const ambiguityStderr = "adb: more than one device/emulator\n"

func mockAnyContext() interface{} {
	return mock.MatchedBy(func(ctx context.Context) bool { return ctx != nil })
}

func mockMenuPrefix() interface{} {
	return mock.MatchedBy(func(text string) bool { return strings.HasPrefix(text, selectionHeader+"\n") })
}

func newTestService(t *testing.T, session *Session) (*Service, *mocks.MockBridgeRunner, *mocks.MockPrompter) {
	t.Helper()

	runner := mocks.NewMockBridgeRunner(t)
	prompter := mocks.NewMockPrompter(t)
	service := NewService(runner, prompter, session, Options{}, zerolog.Nop())

	return service, runner, prompter
}

func expectRun(runner *mocks.MockBridgeRunner, args []string, result ports.BridgeResult) {
	runner.EXPECT().Run(mockAnyContext(), "adb", args).Return(result, nil).Once()
}

func ok(stdout string) ports.BridgeResult {
	return ports.BridgeResult{Stdout: stdout}
}

func failed(stderr string) ports.BridgeResult {
	return ports.BridgeResult{Stderr: stderr, ExitCode: 1}
}
