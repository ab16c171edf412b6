package diag

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestException_IsEmpty(t *testing.T) {
	t.Parallel()

	var e *Exception
	assert.True(t, e.IsEmpty())

	e = NewExceptionText("boom")
	assert.False(t, e.IsEmpty())
}

func TestException_ChainRejectsSelfReference(t *testing.T) {
	t.Parallel()

	e := NewExceptionText("root cause")
	e.Chain(e)

	assert.Nil(t, e.Next())
}

func TestException_ChainRejectsCycle(t *testing.T) {
	t.Parallel()

	a := NewExceptionText("a")
	b := NewExceptionText("b")
	a.Chain(b)
	b.Chain(a)

	assert.Same(t, b, a.Next())
	assert.Nil(t, b.Next())
}

func TestException_ErrorRendersChain(t *testing.T) {
	t.Parallel()

	root := NewExceptionText("disk full")
	wrapped := NewExceptionText("failed to write asset")
	wrapped.Chain(root)

	assert.Equal(t, "failed to write asset: disk full", wrapped.Error())
}

func TestException_CapturesSourceLocation(t *testing.T) {
	t.Parallel()

	e := NewExceptionText("x")
	assert.NotEmpty(t, e.Location().File)
	assert.Positive(t, e.Location().Line)
}
