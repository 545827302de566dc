package stockquote_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/stockquote"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := stockquote.Errorf(stockquote.EINVALID, "invalid symbol: %q", "")

	assert.Equal(t, stockquote.EINVALID, stockquote.ErrorCode(err))
	assert.Equal(t, "invalid symbol: \"\"", stockquote.ErrorMessage(err))
	assert.Equal(t, "invalid symbol: \"\"", err.Error())
}

func TestWrapError(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection refused")
	err := stockquote.WrapError(stockquote.ETRANSPORT, cause, "cannot connect to %s", "finance.yahoo.com")

	assert.Equal(t, stockquote.ETRANSPORT, stockquote.ErrorCode(err))
	assert.Equal(t, "cannot connect to finance.yahoo.com", stockquote.ErrorMessage(err))
	assert.Equal(t, "cannot connect to finance.yahoo.com: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("quote: %w", stockquote.Errorf(stockquote.ENODATA, "no historical price data found"))

	assert.Equal(t, stockquote.ENODATA, stockquote.ErrorCode(err))
	assert.Equal(t, "no historical price data found", stockquote.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")

	assert.Equal(t, stockquote.EINTERNAL, stockquote.ErrorCode(err))
	assert.Equal(t, "Internal error.", stockquote.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stockquote.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, stockquote.ErrorMessage(nil))
}
