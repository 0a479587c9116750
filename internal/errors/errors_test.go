package errors

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsContextDone(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil},
		{name: "plain", err: New("boom")},
		{name: "canceled", err: context.Canceled, want: true},
		{name: "wrapped deadline", err: Wrap(context.DeadlineExceeded, "cluster stores"), want: true},
		{name: "joined", err: Join(New("rollback"), context.Canceled), want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsContextDone(tt.err))
		})
	}
}

type codeError struct{ code string }

func (e *codeError) Error() string { return e.code }

func TestAsType(t *testing.T) {
	err := Wrap(&codeError{code: "WRITE_CONFLICT"}, "set availability")

	got, ok := AsType[*codeError](err)
	assert.True(t, ok)
	assert.Equal(t, "WRITE_CONFLICT", got.code)

	_, ok = AsType[*codeError](New("other"))
	assert.False(t, ok)
}
