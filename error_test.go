package headscan_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/TsuyoshiKashiwazaki/headscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := headscan.Errorf(headscan.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, headscan.ENOTFOUND, headscan.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", headscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, headscan.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, headscan.EINTERNAL, headscan.ErrorCode(errors.New("boom")))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", headscan.Errorf(headscan.EINVALID, "bad input"))

	assert.Equal(t, headscan.EINVALID, headscan.ErrorCode(err))
	assert.Equal(t, "bad input", headscan.ErrorMessage(err))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, headscan.ErrorMessage(nil))
}
