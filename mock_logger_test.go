package weft_test

import (
	"context"
	"testing"

	"go.uber.org/mock/gomock"
	weft "go.weft.dev/weft"
	"go.weft.dev/weft/mocks"
)

// TestLoggerReceivesNotReadyDiagnostics uses a generated mock to assert the
// installed Logger is told about a not-ready External asset and a skipped
// requirement, without caring about exact message text.
func TestLoggerReceivesNotReadyDiagnostics(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)

	blocked := &fileState{exists: false}
	nodeB := externalTask("B", blocked)
	nodeA := basicTask("A", &fileState{exists: false}, weft.ReqOf(nodeB))

	logger.EXPECT().Warn(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	logger.EXPECT().Info(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(1)
	logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	logger.EXPECT().Error(gomock.Any(), gomock.Any()).AnyTimes()

	res, err := weft.Run(context.Background(), nodeA, weft.WithWorkers(1), weft.WithLogger(logger))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Ready {
		t.Fatalf("expected workflow to remain not-ready")
	}
}
