package guild

import (
	"errors"
	"fmt"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func TestErrorTypeOf(t *testing.T) {
	tests := map[string]struct {
		err  error
		want ErrorType
	}{
		"nil":           {err: nil, want: ErrorTypeNone},
		"validation":    {err: fmt.Errorf("%w: bad name", ErrValidation), want: ErrorTypeValidation},
		"not found":     {err: fmt.Errorf("%w: guild", ErrNotFound), want: ErrorTypeNotFound},
		"authorization": {err: ErrAuthorization, want: ErrorTypeAuthorization},
		"duplicate":     {err: ErrDuplicate, want: ErrorTypeDuplicate},
		"upstream":      {err: upstream("list members", errors.New("timeout")), want: ErrorTypeUpstream},
		"unclassified":  {err: errors.New("boom"), want: ErrorTypeUpstream},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ErrorTypeOf(tc.err))
		})
	}
}

func TestUpstream_KeepsCause(t *testing.T) {
	cause := errors.New("timeout")
	err := upstream("list members", cause)

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "upstream failure: list members: timeout", err.Error())
}

func TestDateKey(t *testing.T) {
	tests := map[string]struct {
		at   time.Time
		want string
	}{
		"before midnight UTC+9": {at: time.Date(2024, 5, 1, 14, 59, 59, 0, time.UTC), want: "2024-05-01"},
		"after midnight UTC+9":  {at: time.Date(2024, 5, 1, 15, 0, 0, 0, time.UTC), want: "2024-05-02"},
		"year boundary":         {at: time.Date(2023, 12, 31, 15, 30, 0, 0, time.UTC), want: "2024-01-01"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, dateKey(tc.at))
		})
	}
}
