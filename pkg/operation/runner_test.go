// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package operation

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gitlab.com/tozd/go/errors"
)

// 🔧 MockOperation is a mock implementation of the Operation interface
type MockOperation struct {
	mock.Mock
}

func (m *MockOperation) Execute(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func TestOperationRunner(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))
	ctx := logger.WithContext(context.Background())

	t.Run("runs_in_order", func(t *testing.T) {
		var order []string
		first := &MockOperation{}
		first.On("Execute", mock.Anything).Run(func(mock.Arguments) { order = append(order, "first") }).Return(nil)
		second := &MockOperation{}
		second.On("Execute", mock.Anything).Run(func(mock.Arguments) { order = append(order, "second") }).Return(nil)

		err := NewRunner(&logger).Run(ctx, first, second)
		require.NoError(t, err)
		assert.Equal(t, []string{"first", "second"}, order)
		first.AssertExpectations(t)
		second.AssertExpectations(t)
	})

	t.Run("stops_at_first_error", func(t *testing.T) {
		boom := errors.Base("boom")
		failing := &MockOperation{}
		failing.On("Execute", mock.Anything).Return(boom)
		after := &MockOperation{}

		err := NewRunner(&logger).Run(ctx, failing, after)
		require.Error(t, err)
		assert.True(t, errors.Is(err, boom))
		assert.Contains(t, err.Error(), "executing operation")
		after.AssertNotCalled(t, "Execute", mock.Anything)
	})

	t.Run("cancelled_context", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		op := &MockOperation{}
		err := NewRunner(nil).Run(cctx, op)
		require.Error(t, err)
		assert.True(t, errors.Is(err, context.Canceled))
		op.AssertNotCalled(t, "Execute", mock.Anything)
	})

	t.Run("rewriter_as_operation", func(t *testing.T) {
		ctx, cfg, console, logger := createTestEnv(t, map[string]string{"a.dart": "// ✨ shiny\n"})
		rw := newTestRewriter(t, cfg, console, logger, nil)

		require.NoError(t, NewRunner(logger).Run(ctx, rw))
		assert.Equal(t, "// shiny\n", readFile(t, cfg.Root, "a.dart"))
	})
}
